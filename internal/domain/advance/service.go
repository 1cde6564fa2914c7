package advance

import "context"

type AdvanceService interface {
	Create(ctx context.Context, req CreateAdvanceRequest) (AdvanceResponse, error)
	ListByLabour(ctx context.Context, labourID string) ([]AdvanceResponse, error)
	List(ctx context.Context, filter AdvanceFilter) ([]AdvanceResponse, error)
	UpdateStatus(ctx context.Context, id string, req UpdateAdvanceStatusRequest) (AdvanceResponse, error)
	Delete(ctx context.Context, id string) error
}
