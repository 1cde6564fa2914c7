package leave

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

type Leave struct {
	ID        string
	OwnerID   string
	LabourID  string
	StartDate time.Time
	EndDate   time.Time
	Type      string
	Reason    *string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time

	LabourName *string
}

// Days returns the inclusive number of calendar days covered.
func (l Leave) Days() int {
	return int(l.EndDate.Sub(l.StartDate).Hours()/24) + 1
}
