package labour

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/labourhub/labour-backend-go/internal/domain/labour"
	"github.com/labourhub/labour-backend-go/internal/pkg/jwt"
	"github.com/labourhub/labour-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type LabourServiceImpl struct {
	labourRepo labour.LabourRepository
}

func NewLabourService(labourRepo labour.LabourRepository) labour.LabourService {
	return &LabourServiceImpl{labourRepo: labourRepo}
}

// Create implements labour.LabourService.
func (s *LabourServiceImpl) Create(ctx context.Context, req labour.CreateLabourRequest) (labour.LabourResponse, error) {
	if err := req.Validate(); err != nil {
		return labour.LabourResponse{}, err
	}

	ownerID, err := jwt.OwnerIDFromContext(ctx)
	if err != nil {
		return labour.LabourResponse{}, err
	}

	newLabour := labour.Labour{
		OwnerID:     ownerID,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		Aadhar:      req.Aadhar,
		BankAccount: req.BankAccount,
		DailyRate:   decimal.Zero,
		Designation: req.Designation,
		PhotoURL:    req.PhotoURL,
		Status:      labour.StatusActive,
	}
	if req.DailyRate != nil {
		newLabour.DailyRate = *req.DailyRate
	}
	if req.Status != nil {
		newLabour.Status = labour.Status(*req.Status)
	}
	if req.JoinDate != nil {
		joinDate, err := time.Parse("2006-01-02", *req.JoinDate)
		if err != nil {
			return labour.LabourResponse{}, validator.ValidationErrors{{Field: "join_date", Message: "join_date must be in YYYY-MM-DD format"}}
		}
		newLabour.JoinDate = &joinDate
	}

	created, err := s.labourRepo.Create(ctx, newLabour)
	if err != nil {
		return labour.LabourResponse{}, err
	}

	slog.Info("labour created", "labour_id", created.ID, "owner_id", ownerID)
	return mapToLabourResponse(created), nil
}

// GetByID implements labour.LabourService.
func (s *LabourServiceImpl) GetByID(ctx context.Context, id string) (labour.LabourResponse, error) {
	if !validator.IsValidUUID(id) {
		return labour.LabourResponse{}, labour.ErrLabourNotFound
	}
	ownerID, err := jwt.OwnerIDFromContext(ctx)
	if err != nil {
		return labour.LabourResponse{}, err
	}

	l, err := s.labourRepo.GetByID(ctx, id, ownerID)
	if err != nil {
		return labour.LabourResponse{}, err
	}
	return mapToLabourResponse(l), nil
}

// List implements labour.LabourService.
func (s *LabourServiceImpl) List(ctx context.Context, filter labour.LabourFilter) (labour.ListLabourResponse, error) {
	if err := filter.Validate(); err != nil {
		return labour.ListLabourResponse{}, err
	}
	ownerID, err := jwt.OwnerIDFromContext(ctx)
	if err != nil {
		return labour.ListLabourResponse{}, err
	}

	labours, total, err := s.labourRepo.List(ctx, ownerID, filter)
	if err != nil {
		return labour.ListLabourResponse{}, fmt.Errorf("failed to list labours: %w", err)
	}

	totalPages := int(total) / filter.Limit
	if int(total)%filter.Limit > 0 {
		totalPages++
	}

	responses := make([]labour.LabourResponse, 0, len(labours))
	for _, l := range labours {
		responses = append(responses, mapToLabourResponse(l))
	}

	return labour.ListLabourResponse{
		Labours:    responses,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}

// Update implements labour.LabourService.
func (s *LabourServiceImpl) Update(ctx context.Context, id string, req labour.UpdateLabourRequest) (labour.LabourResponse, error) {
	if err := req.Validate(); err != nil {
		return labour.LabourResponse{}, err
	}
	if !validator.IsValidUUID(id) {
		return labour.LabourResponse{}, labour.ErrLabourNotFound
	}
	ownerID, err := jwt.OwnerIDFromContext(ctx)
	if err != nil {
		return labour.LabourResponse{}, err
	}

	updated, err := s.labourRepo.Update(ctx, id, ownerID, req)
	if err != nil {
		return labour.LabourResponse{}, err
	}
	return mapToLabourResponse(updated), nil
}

// Delete removes the worker together with every attendance, advance,
// deduction, leave and salary row that references it.
func (s *LabourServiceImpl) Delete(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return labour.ErrLabourNotFound
	}
	ownerID, err := jwt.OwnerIDFromContext(ctx)
	if err != nil {
		return err
	}

	if err := s.labourRepo.Delete(ctx, id, ownerID); err != nil {
		return err
	}
	slog.Info("labour deleted", "labour_id", id, "owner_id", ownerID)
	return nil
}

func mapToLabourResponse(l labour.Labour) labour.LabourResponse {
	var joinDate *string
	if l.JoinDate != nil {
		formatted := l.JoinDate.Format("2006-01-02")
		joinDate = &formatted
	}

	return labour.LabourResponse{
		ID:          l.ID,
		Name:        l.Name,
		Email:       l.Email,
		Phone:       l.Phone,
		Address:     l.Address,
		Aadhar:      l.Aadhar,
		BankAccount: l.BankAccount,
		DailyRate:   l.DailyRate,
		Designation: l.Designation,
		PhotoURL:    l.PhotoURL,
		JoinDate:    joinDate,
		Status:      string(l.Status),
		CreatedAt:   l.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   l.UpdatedAt.Format(time.RFC3339),
	}
}
