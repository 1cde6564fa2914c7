package attendance

import (
	"github.com/labourhub/labour-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type MarkAttendanceRequest struct {
	LabourID string           `json:"labour_id" validate:"required,uuid"`
	Date     string           `json:"date" validate:"required,date"`
	Status   string           `json:"status,omitempty"`
	Hours    *decimal.Decimal `json:"hours,omitempty"`
	Notes    *string          `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// Validate fills the defaults (present, 8 hours) before checking the request.
func (r *MarkAttendanceRequest) Validate() error {
	if r.Status == "" {
		r.Status = string(StatusPresent)
	}
	if r.Hours == nil {
		hours := StandardHours
		r.Hours = &hours
	}

	var errs validator.ValidationErrors
	if err := validator.Struct(r); err != nil {
		fieldErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		errs = append(errs, fieldErrs...)
	}
	if !Status(r.Status).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: ErrInvalidStatus.Error(),
		})
	}
	if r.Hours.IsNegative() || r.Hours.GreaterThan(decimal.NewFromInt(24)) {
		errs = append(errs, validator.ValidationError{
			Field:   "hours",
			Message: ErrInvalidHours.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceFilter struct {
	LabourID *string `json:"labour_id,omitempty"`
	Month    *string `json:"month,omitempty"`
	Status   *string `json:"status,omitempty"`
	Page     int     `json:"page"`
	Limit    int     `json:"limit"`
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.LabourID != nil && !validator.IsValidUUID(*f.LabourID) {
		errs = append(errs, validator.ValidationError{
			Field:   "labour_id",
			Message: "labour_id must be a valid UUID",
		})
	}
	if f.Month != nil {
		if _, ok := validator.IsValidMonth(*f.Month); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: "month must be in YYYY-MM format",
			})
		}
	}
	if f.Status != nil && !Status(*f.Status).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: ErrInvalidStatus.Error(),
		})
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID         string          `json:"id"`
	LabourID   string          `json:"labour_id"`
	LabourName *string         `json:"labour_name,omitempty"`
	Date       string          `json:"date"`
	Status     string          `json:"status"`
	Hours      decimal.Decimal `json:"hours"`
	Notes      *string         `json:"notes,omitempty"`
	CreatedAt  string          `json:"created_at"`
	UpdatedAt  string          `json:"updated_at"`
}

type ListAttendanceResponse struct {
	Attendances []AttendanceResponse `json:"attendances"`
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
}
