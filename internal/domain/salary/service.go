package salary

import "context"

type SalaryService interface {
	// Calculate derives and stores the salary for one worker and month.
	Calculate(ctx context.Context, req CalculateSalaryRequest) (CalculateSalaryResponse, error)
	GetByID(ctx context.Context, id string) (SalaryResponse, error)
	List(ctx context.Context, filter SalaryFilter) (ListSalaryResponse, error)
	ListByLabour(ctx context.Context, labourID string) ([]SalaryResponse, error)
	ListByMonth(ctx context.Context, month string) ([]SalaryResponse, error)
	UpdateStatus(ctx context.Context, id string, req UpdateSalaryStatusRequest) (SalaryResponse, error)
	Delete(ctx context.Context, id string) error
	GetSummary(ctx context.Context, month string) (SalarySummaryResponse, error)
}
