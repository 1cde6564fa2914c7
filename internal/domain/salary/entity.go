package salary

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

// Salary is the computed pay for one worker in one month. There is at most
// one per (LabourID, Month); recalculation overwrites it.
type Salary struct {
	ID              string
	OwnerID         string
	LabourID        string
	Month           string
	BasicSalary     decimal.Decimal
	DaysPresent     decimal.Decimal // fractional working days
	OvertimeHours   decimal.Decimal // hours beyond the standard day only
	OvertimePay     decimal.Decimal
	TotalAdvance    decimal.Decimal
	TotalDeductions decimal.Decimal
	NetSalary       decimal.Decimal
	Status          Status
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO / Join
	LabourName *string
}

// AttendanceTally is a month of attendance reduced to pay-bearing counts.
type AttendanceTally struct {
	FullDays           int // present + overtime
	HalfDays           int
	WorkingDays        decimal.Decimal
	OvertimeExtraHours decimal.Decimal
}

// PayComponents is what the worker earned before adjustments.
type PayComponents struct {
	DailyRate   decimal.Decimal
	HourlyRate  decimal.Decimal
	BasicSalary decimal.Decimal
	OvertimePay decimal.Decimal
}

// Adjustments are amounts recovered from the month's earnings.
type Adjustments struct {
	TotalAdvance    decimal.Decimal
	TotalDeductions decimal.Decimal
}
