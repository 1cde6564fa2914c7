package advance

import (
	"context"

	"github.com/labourhub/labour-backend-go/internal/pkg/utils"
	"github.com/shopspring/decimal"
)

// AdvanceRepository scopes every call by ownerID.
type AdvanceRepository interface {
	Create(ctx context.Context, a Advance) (Advance, error)
	ListByLabour(ctx context.Context, labourID, ownerID string) ([]Advance, error)
	List(ctx context.Context, ownerID string, filter AdvanceFilter) ([]Advance, error)
	UpdateStatus(ctx context.Context, id, ownerID string, status Status) (Advance, error)
	Delete(ctx context.Context, id, ownerID string) error

	// SumPending totals pending advances dated inside the period. Zero when none match.
	SumPending(ctx context.Context, labourID, ownerID string, period utils.Period) (decimal.Decimal, error)
}
