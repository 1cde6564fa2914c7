package leave

import "context"

type LeaveRepository interface {
	Create(ctx context.Context, l Leave) (Leave, error)
	ListByLabour(ctx context.Context, labourID, ownerID string) ([]Leave, error)
	List(ctx context.Context, ownerID string, status *Status) ([]Leave, error)
	UpdateStatus(ctx context.Context, id, ownerID string, status Status) (Leave, error)
	Delete(ctx context.Context, id, ownerID string) error
}
