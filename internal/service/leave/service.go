package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/labourhub/labour-backend-go/internal/domain/labour"
	"github.com/labourhub/labour-backend-go/internal/domain/leave"
	"github.com/labourhub/labour-backend-go/internal/pkg/jwt"
	"github.com/labourhub/labour-backend-go/internal/pkg/validator"
)

const dateLayout = "2006-01-02"

type LeaveServiceImpl struct {
	leaveRepo  leave.LeaveRepository
	labourRepo labour.LabourReader
}

func NewLeaveService(leaveRepo leave.LeaveRepository, labourRepo labour.LabourReader) leave.LeaveService {
	return &LeaveServiceImpl{
		leaveRepo:  leaveRepo,
		labourRepo: labourRepo,
	}
}

// Create files a leave request. New requests start pending.
func (s *LeaveServiceImpl) Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	ownerID, err := jwt.OwnerIDFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	worker, err := s.labourRepo.GetByID(ctx, req.LabourID, ownerID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	startDate, _ := time.Parse(dateLayout, req.StartDate)
	endDate, _ := time.Parse(dateLayout, req.EndDate)

	created, err := s.leaveRepo.Create(ctx, leave.Leave{
		OwnerID:   ownerID,
		LabourID:  worker.ID,
		StartDate: startDate,
		EndDate:   endDate,
		Type:      req.Type,
		Reason:    req.Reason,
		Status:    leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	slog.Info("leave requested", "leave_id", created.ID, "labour_id", worker.ID, "days", created.Days())
	return mapToLeaveResponse(created), nil
}

func (s *LeaveServiceImpl) ListByLabour(ctx context.Context, labourID string) ([]leave.LeaveResponse, error) {
	if !validator.IsValidUUID(labourID) {
		return nil, labour.ErrLabourNotFound
	}
	ownerID, err := jwt.OwnerIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.labourRepo.GetByID(ctx, labourID, ownerID); err != nil {
		return nil, err
	}

	records, err := s.leaveRepo.ListByLabour(ctx, labourID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}
	return mapToLeaveResponses(records), nil
}

func (s *LeaveServiceImpl) List(ctx context.Context, status *string) ([]leave.LeaveResponse, error) {
	var filter *leave.Status
	if status != nil {
		st := leave.Status(*status)
		if !st.IsValid() {
			return nil, leave.ErrInvalidStatus
		}
		filter = &st
	}
	ownerID, err := jwt.OwnerIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.leaveRepo.List(ctx, ownerID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}
	return mapToLeaveResponses(records), nil
}

// UpdateStatus approves, rejects or reopens a request. Any transition is allowed.
func (s *LeaveServiceImpl) UpdateStatus(ctx context.Context, id string, req leave.UpdateLeaveStatusRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}
	if !validator.IsValidUUID(id) {
		return leave.LeaveResponse{}, leave.ErrLeaveNotFound
	}
	ownerID, err := jwt.OwnerIDFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	updated, err := s.leaveRepo.UpdateStatus(ctx, id, ownerID, leave.Status(req.Status))
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return mapToLeaveResponse(updated), nil
}

func (s *LeaveServiceImpl) Delete(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return leave.ErrLeaveNotFound
	}
	ownerID, err := jwt.OwnerIDFromContext(ctx)
	if err != nil {
		return err
	}
	return s.leaveRepo.Delete(ctx, id, ownerID)
}

func mapToLeaveResponse(l leave.Leave) leave.LeaveResponse {
	return leave.LeaveResponse{
		ID:         l.ID,
		LabourID:   l.LabourID,
		LabourName: l.LabourName,
		StartDate:  l.StartDate.Format(dateLayout),
		EndDate:    l.EndDate.Format(dateLayout),
		Days:       l.Days(),
		Type:       l.Type,
		Reason:     l.Reason,
		Status:     string(l.Status),
		CreatedAt:  l.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  l.UpdatedAt.Format(time.RFC3339),
	}
}

func mapToLeaveResponses(records []leave.Leave) []leave.LeaveResponse {
	responses := make([]leave.LeaveResponse, 0, len(records))
	for _, l := range records {
		responses = append(responses, mapToLeaveResponse(l))
	}
	return responses
}
