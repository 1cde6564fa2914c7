package attendance

import "context"

type AttendanceService interface {
	Mark(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)
	ListByLabour(ctx context.Context, labourID string, month *string) ([]AttendanceResponse, error)
	ListByMonth(ctx context.Context, month string) ([]AttendanceResponse, error)
	List(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)
	Delete(ctx context.Context, id string) error
}
