package labour

import (
	"strings"

	"github.com/labourhub/labour-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateLabourRequest struct {
	Name        string           `json:"name" validate:"required,max=255"`
	Email       *string          `json:"email,omitempty" validate:"omitempty,email"`
	Phone       *string          `json:"phone,omitempty" validate:"omitempty,max=50"`
	Address     *string          `json:"address,omitempty"`
	Aadhar      *string          `json:"aadhar,omitempty" validate:"omitempty,max=20"`
	BankAccount *string          `json:"bank_account,omitempty" validate:"omitempty,max=50"`
	DailyRate   *decimal.Decimal `json:"daily_rate,omitempty"`
	Designation *string          `json:"designation,omitempty" validate:"omitempty,max=100"`
	PhotoURL    *string          `json:"photo_url,omitempty" validate:"omitempty,url"`
	JoinDate    *string          `json:"join_date,omitempty" validate:"omitempty,date"`
	Status      *string          `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

func (r *CreateLabourRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)

	var errs validator.ValidationErrors
	if err := validator.Struct(r); err != nil {
		fieldErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		errs = append(errs, fieldErrs...)
	}
	if r.DailyRate != nil && r.DailyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "daily_rate",
			Message: ErrNegativeDailyRate.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateLabourRequest struct {
	Name        *string          `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Email       *string          `json:"email,omitempty" validate:"omitempty,email"`
	Phone       *string          `json:"phone,omitempty" validate:"omitempty,max=50"`
	Address     *string          `json:"address,omitempty"`
	Aadhar      *string          `json:"aadhar,omitempty" validate:"omitempty,max=20"`
	BankAccount *string          `json:"bank_account,omitempty" validate:"omitempty,max=50"`
	DailyRate   *decimal.Decimal `json:"daily_rate,omitempty"`
	Designation *string          `json:"designation,omitempty" validate:"omitempty,max=100"`
	PhotoURL    *string          `json:"photo_url,omitempty" validate:"omitempty,url"`
	JoinDate    *string          `json:"join_date,omitempty" validate:"omitempty,date"`
	Status      *string          `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

func (r *UpdateLabourRequest) Validate() error {
	var errs validator.ValidationErrors
	if err := validator.Struct(r); err != nil {
		fieldErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		errs = append(errs, fieldErrs...)
	}
	if r.DailyRate != nil && r.DailyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "daily_rate",
			Message: ErrNegativeDailyRate.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LabourFilter struct {
	Search  *string `json:"search,omitempty"`
	Status  *string `json:"status,omitempty"`
	Page    int     `json:"page"`
	Limit   int     `json:"limit"`
	SortBy  string  `json:"sort_by"`
	SortDir string  `json:"sort_dir"`
}

func (f *LabourFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && !Status(*f.Status).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: active, inactive",
		})
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
	if f.SortDir != "" && f.SortDir != "asc" && f.SortDir != "desc" {
		errs = append(errs, validator.ValidationError{
			Field:   "sort_dir",
			Message: "sort_dir must be asc or desc",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LabourResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Email       *string         `json:"email,omitempty"`
	Phone       *string         `json:"phone,omitempty"`
	Address     *string         `json:"address,omitempty"`
	Aadhar      *string         `json:"aadhar,omitempty"`
	BankAccount *string         `json:"bank_account,omitempty"`
	DailyRate   decimal.Decimal `json:"daily_rate"`
	Designation *string         `json:"designation,omitempty"`
	PhotoURL    *string         `json:"photo_url,omitempty"`
	JoinDate    *string         `json:"join_date,omitempty"`
	Status      string          `json:"status"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

type ListLabourResponse struct {
	Labours    []LabourResponse `json:"labours"`
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
}
