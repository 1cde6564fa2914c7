package leave

import "context"

type LeaveService interface {
	Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	ListByLabour(ctx context.Context, labourID string) ([]LeaveResponse, error)
	List(ctx context.Context, status *string) ([]LeaveResponse, error)
	UpdateStatus(ctx context.Context, id string, req UpdateLeaveStatusRequest) (LeaveResponse, error)
	Delete(ctx context.Context, id string) error
}
