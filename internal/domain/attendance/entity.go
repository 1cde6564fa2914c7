package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPresent  Status = "present"
	StatusAbsent   Status = "absent"
	StatusHalfDay  Status = "half-day"
	StatusOvertime Status = "overtime"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusHalfDay, StatusOvertime:
		return true
	}
	return false
}

// StandardHours is the length of a regular working day.
var StandardHours = decimal.NewFromInt(8)

// Attendance is one worker's mark for one calendar day. Hours is the total
// worked that day, including the standard 8 on overtime days.
type Attendance struct {
	ID        string
	OwnerID   string
	LabourID  string
	Date      time.Time
	Status    Status
	Hours     decimal.Decimal
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO / Join
	LabourName *string
}
