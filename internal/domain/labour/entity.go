package labour

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

// Labour is a daily-wage worker. DailyRate is paid per standard 8-hour day.
type Labour struct {
	ID          string
	OwnerID     string
	Name        string
	Email       *string
	Phone       *string
	Address     *string
	Aadhar      *string
	BankAccount *string
	DailyRate   decimal.Decimal
	Designation *string
	PhotoURL    *string
	JoinDate    *time.Time
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
