package attendance

import (
	"context"

	"github.com/labourhub/labour-backend-go/internal/pkg/utils"
)

// AttendanceRepository defines data access methods for attendance records.
// All methods include ownerID to keep accounts isolated from each other.
type AttendanceRepository interface {
	// Upsert inserts a mark or replaces the existing one for (labour, date).
	Upsert(ctx context.Context, a Attendance) (Attendance, error)

	GetByID(ctx context.Context, id, ownerID string) (Attendance, error)

	// ListByLabour returns a worker's marks, optionally restricted to a month.
	ListByLabour(ctx context.Context, labourID, ownerID string, period *utils.Period) ([]Attendance, error)

	List(ctx context.Context, ownerID string, filter AttendanceFilter) ([]Attendance, int64, error)

	Delete(ctx context.Context, id, ownerID string) error
}
