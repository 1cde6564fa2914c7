package deduction

import (
	"github.com/labourhub/labour-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateDeductionRequest struct {
	LabourID string          `json:"labour_id" validate:"required,uuid"`
	Amount   decimal.Decimal `json:"amount"`
	Type     string          `json:"type" validate:"required,max=50"`
	Reason   *string         `json:"reason,omitempty" validate:"omitempty,max=500"`
	Date     *string         `json:"date,omitempty" validate:"omitempty,date"`
}

func (r *CreateDeductionRequest) Validate() error {
	var errs validator.ValidationErrors
	if err := validator.Struct(r); err != nil {
		fieldErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		errs = append(errs, fieldErrs...)
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be greater than 0",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateDeductionRequest struct {
	Amount *decimal.Decimal `json:"amount,omitempty"`
	Type   *string          `json:"type,omitempty" validate:"omitempty,min=1,max=50"`
	Reason *string          `json:"reason,omitempty" validate:"omitempty,max=500"`
}

func (r *UpdateDeductionRequest) Validate() error {
	var errs validator.ValidationErrors
	if err := validator.Struct(r); err != nil {
		fieldErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		errs = append(errs, fieldErrs...)
	}
	if r.Amount != nil && !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be greater than 0",
		})
	}
	if r.Amount == nil && r.Type == nil && r.Reason == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "at least one of amount, type or reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DeductionResponse struct {
	ID         string          `json:"id"`
	LabourID   string          `json:"labour_id"`
	LabourName *string         `json:"labour_name,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Type       string          `json:"type"`
	Reason     *string         `json:"reason,omitempty"`
	Date       string          `json:"date"`
	CreatedAt  string          `json:"created_at"`
	UpdatedAt  string          `json:"updated_at"`
}
