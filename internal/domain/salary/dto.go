package salary

import (
	"strings"

	"github.com/labourhub/labour-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CalculateSalaryRequest struct {
	LabourID string `json:"labour_id"`
	Month    string `json:"month"`
}

func (r *CalculateSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	r.LabourID = strings.TrimSpace(r.LabourID)
	r.Month = strings.TrimSpace(r.Month)

	if validator.IsEmpty(r.LabourID) {
		errs = append(errs, validator.ValidationError{Field: "labour_id", Message: "labour_id is required"})
	} else if !validator.IsValidUUID(r.LabourID) {
		errs = append(errs, validator.ValidationError{Field: "labour_id", Message: ErrInvalidLabourID.Error()})
	}

	if validator.IsEmpty(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month is required"})
	} else if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{Field: "month", Message: ErrInvalidMonth.Error()})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateSalaryStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateSalaryStatusRequest) Validate() error {
	if !Status(r.Status).IsValid() {
		return validator.ValidationErrors{{Field: "status", Message: ErrInvalidStatus.Error()}}
	}
	return nil
}

type SalaryFilter struct {
	LabourID  *string `json:"labour_id,omitempty"`
	Month     *string `json:"month,omitempty"`
	Status    *string `json:"status,omitempty"`
	Page      int     `json:"page"`
	Limit     int     `json:"limit"`
	SortBy    string  `json:"sort_by"`
	SortOrder string  `json:"sort_order"`
}

func (f *SalaryFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.LabourID != nil && !validator.IsValidUUID(*f.LabourID) {
		errs = append(errs, validator.ValidationError{Field: "labour_id", Message: ErrInvalidLabourID.Error()})
	}
	if f.Month != nil {
		if _, ok := validator.IsValidMonth(*f.Month); !ok {
			errs = append(errs, validator.ValidationError{Field: "month", Message: ErrInvalidMonth.Error()})
		}
	}
	if f.Status != nil && !Status(*f.Status).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: ErrInvalidStatus.Error()})
	}
	if f.SortOrder != "" && f.SortOrder != "asc" && f.SortOrder != "desc" {
		errs = append(errs, validator.ValidationError{Field: "sort_order", Message: "sort_order must be asc or desc"})
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

type SalaryResponse struct {
	ID              string          `json:"id"`
	LabourID        string          `json:"labour_id"`
	LabourName      *string         `json:"labour_name,omitempty"`
	Month           string          `json:"month"`
	BasicSalary     decimal.Decimal `json:"basic_salary"`
	DaysPresent     decimal.Decimal `json:"days_present"`
	OvertimeHours   decimal.Decimal `json:"overtime_hours"`
	OvertimePay     decimal.Decimal `json:"overtime_pay"`
	TotalAdvance    decimal.Decimal `json:"total_advance"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetSalary       decimal.Decimal `json:"net_salary"`
	Status          string          `json:"status"`
	CreatedAt       string          `json:"created_at"`
	UpdatedAt       string          `json:"updated_at"`
}

// SalaryBreakdown exposes the intermediate figures of a calculation.
type SalaryBreakdown struct {
	FullDays   int             `json:"full_days"`
	HalfDays   int             `json:"half_days"`
	DailyRate  decimal.Decimal `json:"daily_rate"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
}

type CalculateSalaryResponse struct {
	SalaryResponse
	Breakdown SalaryBreakdown `json:"breakdown"`
}

type ListSalaryResponse struct {
	Salaries   []SalaryResponse `json:"salaries"`
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
}

type SalarySummaryResponse struct {
	Month            string          `json:"month"`
	TotalLabours     int             `json:"total_labours"`
	TotalBasicSalary decimal.Decimal `json:"total_basic_salary"`
	TotalOvertimePay decimal.Decimal `json:"total_overtime_pay"`
	TotalAdvance     decimal.Decimal `json:"total_advance"`
	TotalDeductions  decimal.Decimal `json:"total_deductions"`
	TotalNetSalary   decimal.Decimal `json:"total_net_salary"`
	PendingCount     int             `json:"pending_count"`
	PaidCount        int             `json:"paid_count"`
}
