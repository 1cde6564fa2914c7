package advance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusPaid
}

// Advance is cash handed to a worker ahead of payday. While pending it is
// recovered from the salary of the month it was granted in.
type Advance struct {
	ID        string
	OwnerID   string
	LabourID  string
	Amount    decimal.Decimal
	Reason    *string
	Date      time.Time
	DueDate   *time.Time
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time

	LabourName *string
}
