package salary

import (
	"context"

	"github.com/labourhub/labour-backend-go/internal/domain/attendance"
	"github.com/labourhub/labour-backend-go/internal/domain/labour"
	"github.com/labourhub/labour-backend-go/internal/pkg/utils"
	"github.com/shopspring/decimal"
)

// SalaryRepository defines data access methods for salary records.
// All methods include ownerID to keep accounts isolated from each other.
type SalaryRepository interface {
	// Upsert writes the record keyed by (labour, month), replacing every
	// computed field and resetting status to pending.
	Upsert(ctx context.Context, s Salary) (Salary, error)
	GetByID(ctx context.Context, id, ownerID string) (Salary, error)
	List(ctx context.Context, ownerID string, filter SalaryFilter) ([]Salary, int64, error)
	// UpdateStatus touches status only.
	UpdateStatus(ctx context.Context, id, ownerID string, status Status) (Salary, error)
	Delete(ctx context.Context, id, ownerID string) error
	GetSummary(ctx context.Context, ownerID, month string) (SalarySummaryResponse, error)
}

// The calculation reads from these narrower contracts so it does not depend
// on the full CRUD surface of each record type.

type LabourReader interface {
	GetByID(ctx context.Context, id, ownerID string) (labour.Labour, error)
}

type AttendanceReader interface {
	ListByLabour(ctx context.Context, labourID, ownerID string, period *utils.Period) ([]attendance.Attendance, error)
}

type AdvanceReader interface {
	SumPending(ctx context.Context, labourID, ownerID string, period utils.Period) (decimal.Decimal, error)
}

type DeductionReader interface {
	SumForPeriod(ctx context.Context, labourID, ownerID string, period utils.Period) (decimal.Decimal, error)
}
