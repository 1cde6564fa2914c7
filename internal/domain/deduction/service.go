package deduction

import "context"

type DeductionService interface {
	Create(ctx context.Context, req CreateDeductionRequest) (DeductionResponse, error)
	ListByLabour(ctx context.Context, labourID string) ([]DeductionResponse, error)
	List(ctx context.Context, month *string) ([]DeductionResponse, error)
	Update(ctx context.Context, id string, req UpdateDeductionRequest) (DeductionResponse, error)
	Delete(ctx context.Context, id string) error
}
