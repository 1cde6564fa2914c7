package advance

import (
	"github.com/labourhub/labour-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateAdvanceRequest struct {
	LabourID string          `json:"labour_id" validate:"required,uuid"`
	Amount   decimal.Decimal `json:"amount"`
	Reason   *string         `json:"reason,omitempty" validate:"omitempty,max=500"`
	Date     *string         `json:"date,omitempty" validate:"omitempty,date"`
	DueDate  *string         `json:"due_date,omitempty" validate:"omitempty,date"`
}

func (r *CreateAdvanceRequest) Validate() error {
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

type UpdateAdvanceStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending paid"`
}

func (r *UpdateAdvanceStatusRequest) Validate() error {
	return validator.Struct(r)
}

type AdvanceFilter struct {
	Status *string `json:"status,omitempty"`
	Month  *string `json:"month,omitempty"`
}

func (f *AdvanceFilter) Validate() error {
	var errs validator.ValidationErrors
	if f.Status != nil && !Status(*f.Status).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: ErrInvalidStatus.Error()})
	}
	if f.Month != nil {
		if _, ok := validator.IsValidMonth(*f.Month); !ok {
			errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be in YYYY-MM format"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AdvanceResponse struct {
	ID         string          `json:"id"`
	LabourID   string          `json:"labour_id"`
	LabourName *string         `json:"labour_name,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Reason     *string         `json:"reason,omitempty"`
	Date       string          `json:"date"`
	DueDate    *string         `json:"due_date,omitempty"`
	Status     string          `json:"status"`
	CreatedAt  string          `json:"created_at"`
	UpdatedAt  string          `json:"updated_at"`
}
