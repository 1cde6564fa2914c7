package deduction

import (
	"context"
	"fmt"
	"time"

	"github.com/labourhub/labour-backend-go/internal/domain/deduction"
	"github.com/labourhub/labour-backend-go/internal/domain/labour"
	"github.com/labourhub/labour-backend-go/internal/pkg/jwt"
	"github.com/labourhub/labour-backend-go/internal/pkg/utils"
	"github.com/labourhub/labour-backend-go/internal/pkg/validator"
)

type DeductionServiceImpl struct {
	deduction.DeductionRepository
	labourRepo labour.LabourReader
	now        func() time.Time
}

func NewDeductionService(deductionRepo deduction.DeductionRepository, labourRepo labour.LabourReader) deduction.DeductionService {
	return &DeductionServiceImpl{
		DeductionRepository: deductionRepo,
		labourRepo:          labourRepo,
		now:                 time.Now,
	}
}

// Create implements deduction.DeductionService.
func (d *DeductionServiceImpl) Create(ctx context.Context, req deduction.CreateDeductionRequest) (deduction.DeductionResponse, error) {
	if err := req.Validate(); err != nil {
		return deduction.DeductionResponse{}, err
	}

	ownerID, err := jwt.OwnerIDFromContext(ctx)
	if err != nil {
		return deduction.DeductionResponse{}, err
	}

	worker, err := d.labourRepo.GetByID(ctx, req.LabourID, ownerID)
	if err != nil {
		return deduction.DeductionResponse{}, err
	}

	now := d.now().UTC()
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if req.Date != nil {
		if date, err = time.Parse("2006-01-02", *req.Date); err != nil {
			return deduction.DeductionResponse{}, validator.ValidationErrors{{Field: "date", Message: "date must be in YYYY-MM-DD format"}}
		}
	}

	created, err := d.DeductionRepository.Create(ctx, deduction.Deduction{
		OwnerID:  ownerID,
		LabourID: worker.ID,
		Amount:   req.Amount,
		Type:     req.Type,
		Reason:   req.Reason,
		Date:     date,
	})
	if err != nil {
		return deduction.DeductionResponse{}, err
	}
	return mapToDeductionResponse(created), nil
}

// ListByLabour implements deduction.DeductionService.
func (d *DeductionServiceImpl) ListByLabour(ctx context.Context, labourID string) ([]deduction.DeductionResponse, error) {
	if !validator.IsValidUUID(labourID) {
		return nil, labour.ErrLabourNotFound
	}
	ownerID, err := jwt.OwnerIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := d.labourRepo.GetByID(ctx, labourID, ownerID); err != nil {
		return nil, err
	}

	records, err := d.DeductionRepository.ListByLabour(ctx, labourID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list deductions: %w", err)
	}
	return mapToDeductionResponses(records), nil
}

// List implements deduction.DeductionService.
func (d *DeductionServiceImpl) List(ctx context.Context, month *string) ([]deduction.DeductionResponse, error) {
	if month != nil {
		if _, err := utils.ParseMonth(*month); err != nil {
			return nil, err
		}
	}
	ownerID, err := jwt.OwnerIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	records, err := d.DeductionRepository.List(ctx, ownerID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list deductions: %w", err)
	}
	return mapToDeductionResponses(records), nil
}

// Update implements deduction.DeductionService.
func (d *DeductionServiceImpl) Update(ctx context.Context, id string, req deduction.UpdateDeductionRequest) (deduction.DeductionResponse, error) {
	if err := req.Validate(); err != nil {
		return deduction.DeductionResponse{}, err
	}
	if !validator.IsValidUUID(id) {
		return deduction.DeductionResponse{}, deduction.ErrDeductionNotFound
	}
	ownerID, err := jwt.OwnerIDFromContext(ctx)
	if err != nil {
		return deduction.DeductionResponse{}, err
	}

	updated, err := d.DeductionRepository.Update(ctx, id, ownerID, req)
	if err != nil {
		return deduction.DeductionResponse{}, err
	}
	return mapToDeductionResponse(updated), nil
}

// Delete implements deduction.DeductionService.
func (d *DeductionServiceImpl) Delete(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return deduction.ErrDeductionNotFound
	}
	ownerID, err := jwt.OwnerIDFromContext(ctx)
	if err != nil {
		return err
	}
	return d.DeductionRepository.Delete(ctx, id, ownerID)
}

func mapToDeductionResponse(d deduction.Deduction) deduction.DeductionResponse {
	return deduction.DeductionResponse{
		ID:         d.ID,
		LabourID:   d.LabourID,
		LabourName: d.LabourName,
		Amount:     d.Amount,
		Type:       d.Type,
		Reason:     d.Reason,
		Date:       d.Date.Format("2006-01-02"),
		CreatedAt:  d.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  d.UpdatedAt.Format(time.RFC3339),
	}
}

func mapToDeductionResponses(records []deduction.Deduction) []deduction.DeductionResponse {
	responses := make([]deduction.DeductionResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, mapToDeductionResponse(r))
	}
	return responses
}
