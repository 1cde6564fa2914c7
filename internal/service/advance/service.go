package advance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/labourhub/labour-backend-go/internal/domain/advance"
	"github.com/labourhub/labour-backend-go/internal/domain/labour"
	"github.com/labourhub/labour-backend-go/internal/pkg/jwt"
	"github.com/labourhub/labour-backend-go/internal/pkg/validator"
)

const dateLayout = "2006-01-02"

type AdvanceServiceImpl struct {
	advanceRepo advance.AdvanceRepository
	labourRepo  labour.LabourReader
	now         func() time.Time
}

func NewAdvanceService(advanceRepo advance.AdvanceRepository, labourRepo labour.LabourReader) advance.AdvanceService {
	return &AdvanceServiceImpl{
		advanceRepo: advanceRepo,
		labourRepo:  labourRepo,
		now:         time.Now,
	}
}

// Create records a new advance as pending. Without a date it is dated today.
func (s *AdvanceServiceImpl) Create(ctx context.Context, req advance.CreateAdvanceRequest) (advance.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return advance.AdvanceResponse{}, err
	}

	ownerID, err := jwt.OwnerIDFromContext(ctx)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	worker, err := s.labourRepo.GetByID(ctx, req.LabourID, ownerID)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	now := s.now().UTC()
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if req.Date != nil {
		if date, err = time.Parse(dateLayout, *req.Date); err != nil {
			return advance.AdvanceResponse{}, validator.ValidationErrors{{Field: "date", Message: "date must be in YYYY-MM-DD format"}}
		}
	}

	var dueDate *time.Time
	if req.DueDate != nil {
		parsed, err := time.Parse(dateLayout, *req.DueDate)
		if err != nil {
			return advance.AdvanceResponse{}, validator.ValidationErrors{{Field: "due_date", Message: "due_date must be in YYYY-MM-DD format"}}
		}
		dueDate = &parsed
	}

	created, err := s.advanceRepo.Create(ctx, advance.Advance{
		OwnerID:  ownerID,
		LabourID: worker.ID,
		Amount:   req.Amount,
		Reason:   req.Reason,
		Date:     date,
		DueDate:  dueDate,
		Status:   advance.StatusPending,
	})
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	slog.Info("advance created", "advance_id", created.ID, "labour_id", worker.ID, "amount", created.Amount.String())
	return mapToAdvanceResponse(created), nil
}

func (s *AdvanceServiceImpl) ListByLabour(ctx context.Context, labourID string) ([]advance.AdvanceResponse, error) {
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

	records, err := s.advanceRepo.ListByLabour(ctx, labourID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list advances: %w", err)
	}
	return mapToAdvanceResponses(records), nil
}

func (s *AdvanceServiceImpl) List(ctx context.Context, filter advance.AdvanceFilter) ([]advance.AdvanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	ownerID, err := jwt.OwnerIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.advanceRepo.List(ctx, ownerID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list advances: %w", err)
	}
	return mapToAdvanceResponses(records), nil
}

// UpdateStatus marks an advance paid (recovered) or back to pending.
func (s *AdvanceServiceImpl) UpdateStatus(ctx context.Context, id string, req advance.UpdateAdvanceStatusRequest) (advance.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return advance.AdvanceResponse{}, err
	}
	if !validator.IsValidUUID(id) {
		return advance.AdvanceResponse{}, advance.ErrAdvanceNotFound
	}
	ownerID, err := jwt.OwnerIDFromContext(ctx)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	updated, err := s.advanceRepo.UpdateStatus(ctx, id, ownerID, advance.Status(req.Status))
	if err != nil {
		return advance.AdvanceResponse{}, err
	}
	return mapToAdvanceResponse(updated), nil
}

func (s *AdvanceServiceImpl) Delete(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return advance.ErrAdvanceNotFound
	}
	ownerID, err := jwt.OwnerIDFromContext(ctx)
	if err != nil {
		return err
	}
	return s.advanceRepo.Delete(ctx, id, ownerID)
}

func mapToAdvanceResponse(a advance.Advance) advance.AdvanceResponse {
	var dueDate *string
	if a.DueDate != nil {
		formatted := a.DueDate.Format(dateLayout)
		dueDate = &formatted
	}
	return advance.AdvanceResponse{
		ID:         a.ID,
		LabourID:   a.LabourID,
		LabourName: a.LabourName,
		Amount:     a.Amount,
		Reason:     a.Reason,
		Date:       a.Date.Format(dateLayout),
		DueDate:    dueDate,
		Status:     string(a.Status),
		CreatedAt:  a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  a.UpdatedAt.Format(time.RFC3339),
	}
}

func mapToAdvanceResponses(records []advance.Advance) []advance.AdvanceResponse {
	responses := make([]advance.AdvanceResponse, 0, len(records))
	for _, a := range records {
		responses = append(responses, mapToAdvanceResponse(a))
	}
	return responses
}
