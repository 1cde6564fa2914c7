package labour

import "context"

// LabourRepository persists workers.
// All methods take ownerID so that one account can never read or mutate
// another account's workers.
type LabourRepository interface {
	Create(ctx context.Context, l Labour) (Labour, error)
	GetByID(ctx context.Context, id, ownerID string) (Labour, error)
	List(ctx context.Context, ownerID string, filter LabourFilter) ([]Labour, int64, error)
	Update(ctx context.Context, id, ownerID string, req UpdateLabourRequest) (Labour, error)
	Delete(ctx context.Context, id, ownerID string) error
}

// LabourReader is the lookup other modules use to confirm a worker belongs
// to the caller before touching its records.
type LabourReader interface {
	GetByID(ctx context.Context, id, ownerID string) (Labour, error)
}
