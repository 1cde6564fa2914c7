package deduction

import (
	"time"

	"github.com/shopspring/decimal"
)

// Deduction is withheld from the salary of the month it is dated in.
// Deductions carry no status.
type Deduction struct {
	ID        string
	OwnerID   string
	LabourID  string
	Amount    decimal.Decimal
	Type      string
	Reason    *string
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time

	LabourName *string
}
