package deduction

import (
	"context"

	"github.com/labourhub/labour-backend-go/internal/pkg/utils"
	"github.com/shopspring/decimal"
)

type DeductionRepository interface {
	Create(ctx context.Context, d Deduction) (Deduction, error)
	ListByLabour(ctx context.Context, labourID, ownerID string) ([]Deduction, error)
	List(ctx context.Context, ownerID string, month *string) ([]Deduction, error)
	Update(ctx context.Context, id, ownerID string, req UpdateDeductionRequest) (Deduction, error)
	Delete(ctx context.Context, id, ownerID string) error

	// SumForPeriod totals every deduction dated inside the period. Zero when none match.
	SumForPeriod(ctx context.Context, labourID, ownerID string, period utils.Period) (decimal.Decimal, error)
}
