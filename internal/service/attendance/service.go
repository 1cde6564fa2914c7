package attendance

import (
	"context"
	"time"

	"github.com/labourhub/labour-backend-go/internal/domain/attendance"
	"github.com/labourhub/labour-backend-go/internal/domain/labour"
	"github.com/labourhub/labour-backend-go/internal/pkg/jwt"
	"github.com/labourhub/labour-backend-go/internal/pkg/utils"
	"github.com/labourhub/labour-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	labourRepo labour.LabourReader
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, labourRepo labour.LabourReader) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		labourRepo:           labourRepo,
	}
}

// Mark records a worker's status for a day. A second mark for the same
// day replaces the first.
func (a *AttendanceServiceImpl) Mark(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	ownerID, err := jwt.OwnerIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	worker, err := a.labourRepo.GetByID(ctx, req.LabourID, ownerID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return attendance.AttendanceResponse{}, validator.ValidationErrors{{Field: "date", Message: "date must be in YYYY-MM-DD format"}}
	}

	saved, err := a.AttendanceRepository.Upsert(ctx, attendance.Attendance{
		OwnerID:  ownerID,
		LabourID: worker.ID,
		Date:     date,
		Status:   attendance.Status(req.Status),
		Hours:    *req.Hours,
		Notes:    req.Notes,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return mapToAttendanceResponse(saved), nil
}

// ListByLabour implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListByLabour(ctx context.Context, labourID string, month *string) ([]attendance.AttendanceResponse, error) {
	if !validator.IsValidUUID(labourID) {
		return nil, labour.ErrLabourNotFound
	}
	ownerID, err := jwt.OwnerIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var period *utils.Period
	if month != nil {
		p, err := utils.ParseMonth(*month)
		if err != nil {
			return nil, err
		}
		period = &p
	}

	if _, err := a.labourRepo.GetByID(ctx, labourID, ownerID); err != nil {
		return nil, err
	}

	records, err := a.AttendanceRepository.ListByLabour(ctx, labourID, ownerID, period)
	if err != nil {
		return nil, err
	}
	return mapToAttendanceResponses(records), nil
}

// ListByMonth returns every mark in the month across all of the caller's workers.
func (a *AttendanceServiceImpl) ListByMonth(ctx context.Context, month string) ([]attendance.AttendanceResponse, error) {
	if _, err := utils.ParseMonth(month); err != nil {
		return nil, err
	}
	ownerID, err := jwt.OwnerIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	filter := attendance.AttendanceFilter{Month: &month, Page: 1, Limit: 100}
	responses := []attendance.AttendanceResponse{}
	for {
		records, total, err := a.AttendanceRepository.List(ctx, ownerID, filter)
		if err != nil {
			return nil, err
		}
		responses = append(responses, mapToAttendanceResponses(records)...)
		if len(records) == 0 || int64(len(responses)) >= total {
			return responses, nil
		}
		filter.Page++
	}
}

// List implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}
	ownerID, err := jwt.OwnerIDFromContext(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, total, err := a.AttendanceRepository.List(ctx, ownerID, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	totalPages := int(total) / filter.Limit
	if int(total)%filter.Limit > 0 {
		totalPages++
	}

	return attendance.ListAttendanceResponse{
		Attendances: mapToAttendanceResponses(records),
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  totalPages,
	}, nil
}

// Delete implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return attendance.ErrAttendanceNotFound
	}
	ownerID, err := jwt.OwnerIDFromContext(ctx)
	if err != nil {
		return err
	}
	return a.AttendanceRepository.Delete(ctx, id, ownerID)
}

func mapToAttendanceResponse(a attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:         a.ID,
		LabourID:   a.LabourID,
		LabourName: a.LabourName,
		Date:       a.Date.Format("2006-01-02"),
		Status:     string(a.Status),
		Hours:      a.Hours,
		Notes:      a.Notes,
		CreatedAt:  a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  a.UpdatedAt.Format(time.RFC3339),
	}
}

func mapToAttendanceResponses(records []attendance.Attendance) []attendance.AttendanceResponse {
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, mapToAttendanceResponse(r))
	}
	return responses
}
