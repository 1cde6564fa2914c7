package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labourhub/labour-backend-go/internal/domain/advance"
	"github.com/labourhub/labour-backend-go/internal/domain/attendance"
	"github.com/labourhub/labour-backend-go/internal/domain/auth"
	"github.com/labourhub/labour-backend-go/internal/domain/deduction"
	"github.com/labourhub/labour-backend-go/internal/domain/labour"
	"github.com/labourhub/labour-backend-go/internal/domain/leave"
	"github.com/labourhub/labour-backend-go/internal/domain/salary"
	"github.com/labourhub/labour-backend-go/internal/domain/user"
	"github.com/labourhub/labour-backend-go/internal/pkg/jwt"
	"github.com/labourhub/labour-backend-go/internal/pkg/utils"
	"github.com/labourhub/labour-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, jwt.ErrMissingClaims):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token has been revoked")

	// User
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already taken")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminAccessRequired):
		Forbidden(w, err.Error())

	// Labour
	case errors.Is(err, labour.ErrLabourNotFound):
		NotFound(w, "Labour not found")
	case errors.Is(err, labour.ErrInvalidLabourID),
		errors.Is(err, labour.ErrNegativeDailyRate):
		BadRequest(w, err.Error(), nil)

	// Attendance
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidStatus),
		errors.Is(err, attendance.ErrInvalidHours):
		BadRequest(w, err.Error(), nil)

	// Advance and deduction
	case errors.Is(err, advance.ErrAdvanceNotFound):
		NotFound(w, "Advance not found")
	case errors.Is(err, advance.ErrInvalidStatus):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, deduction.ErrDeductionNotFound):
		NotFound(w, "Deduction not found")

	// Leave
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrInvalidStatus),
		errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, err.Error(), nil)

	// Salary
	case errors.Is(err, salary.ErrSalaryNotFound):
		NotFound(w, "Salary record not found")
	case errors.Is(err, salary.ErrInvalidMonth),
		errors.Is(err, utils.ErrInvalidMonth):
		BadRequest(w, "Month must be in YYYY-MM format", nil)
	case errors.Is(err, salary.ErrInvalidStatus),
		errors.Is(err, salary.ErrInvalidLabourID):
		BadRequest(w, err.Error(), nil)

	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
