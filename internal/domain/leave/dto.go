package leave

import (
	"github.com/labourhub/labour-backend-go/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	LabourID  string  `json:"labour_id" validate:"required,uuid"`
	StartDate string  `json:"start_date" validate:"required,date"`
	EndDate   string  `json:"end_date" validate:"required,date"`
	Type      string  `json:"type" validate:"required,max=50"`
	Reason    *string `json:"reason,omitempty" validate:"omitempty,max=500"`
}

func (r *CreateLeaveRequest) Validate() error {
	if err := validator.Struct(r); err != nil {
		return err
	}

	start, _ := validator.IsValidDate(r.StartDate)
	end, _ := validator.IsValidDate(r.EndDate)
	if end.Before(start) {
		return validator.ValidationErrors{{
			Field:   "end_date",
			Message: ErrInvalidDateRange.Error(),
		}}
	}
	return nil
}

type UpdateLeaveStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateLeaveStatusRequest) Validate() error {
	if !Status(r.Status).IsValid() {
		return ErrInvalidStatus
	}
	return nil
}

type LeaveResponse struct {
	ID         string  `json:"id"`
	LabourID   string  `json:"labour_id"`
	LabourName *string `json:"labour_name,omitempty"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Days       int     `json:"days"`
	Type       string  `json:"type"`
	Reason     *string `json:"reason,omitempty"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}
