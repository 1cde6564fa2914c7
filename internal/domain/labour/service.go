package labour

import "context"

type LabourService interface {
	Create(ctx context.Context, req CreateLabourRequest) (LabourResponse, error)
	GetByID(ctx context.Context, id string) (LabourResponse, error)
	List(ctx context.Context, filter LabourFilter) (ListLabourResponse, error)
	Update(ctx context.Context, id string, req UpdateLabourRequest) (LabourResponse, error)
	Delete(ctx context.Context, id string) error
}
