package response

import (
	"errors"
	"net/http"

	"github.com/haergo/haergo-backend-go/internal/domain/attendance"
	"github.com/haergo/haergo-backend-go/internal/domain/auth"
	"github.com/haergo/haergo-backend-go/internal/domain/employee"
	"github.com/haergo/haergo-backend-go/internal/domain/face"
	"github.com/haergo/haergo-backend-go/internal/domain/leave"
	"github.com/haergo/haergo-backend-go/internal/domain/overtime"
	"github.com/haergo/haergo-backend-go/internal/domain/shift"
	"github.com/haergo/haergo-backend-go/internal/domain/user"
	"github.com/haergo/haergo-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth / user errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrUnauthenticated), errors.Is(err, auth.ErrTokenInvalid):
		Unauthorized(w, "Authentication required")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrInsufficientPermissions),
		errors.Is(err, user.ErrAdminPrivilegeRequired),
		errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, err.Error())

	// Employee errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Attendance errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn),
		errors.Is(err, attendance.ErrAlreadyClockedOut),
		errors.Is(err, attendance.ErrNotClockedIn):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrOutsideOfficeRadius),
		errors.Is(err, attendance.ErrClientAddressRequired),
		errors.Is(err, attendance.ErrInvalidAttendanceMode),
		errors.Is(err, attendance.ErrInvalidCoordinates):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrUnauthorized):
		Forbidden(w, err.Error())

	// Leave errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrUnknownLeaveType):
		BadRequest(w, "Unknown leave type", nil)
	case errors.Is(err, leave.ErrInsufficientBalance),
		errors.Is(err, leave.ErrMinNoticeViolation),
		errors.Is(err, leave.ErrMaxSpanExceeded),
		errors.Is(err, leave.ErrNoWorkingDays),
		errors.Is(err, leave.ErrRejectReasonRequired):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrNotRequestOwner):
		Forbidden(w, err.Error())

	// Overtime errors
	case errors.Is(err, overtime.ErrOvertimeRequestNotFound):
		NotFound(w, "Overtime request not found")
	case errors.Is(err, overtime.ErrZeroDuration):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, overtime.ErrOvertimeRequestAlreadyProcessed):
		Conflict(w, "Overtime request already processed")
	case errors.Is(err, overtime.ErrNotRequestOwner):
		Forbidden(w, err.Error())

	// Shift errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrAssignmentNotFound):
		NotFound(w, "Shift assignment not found")
	case errors.Is(err, shift.ErrShiftNameExists):
		Conflict(w, "A shift with that name already exists")
	case errors.Is(err, shift.ErrShiftInUse):
		Conflict(w, "Shift has active assignments and cannot be deleted")

	// Face errors
	case errors.Is(err, face.ErrFaceProfileNotFound):
		NotFound(w, "Face profile not found")
	case errors.Is(err, face.ErrInvalidDescriptorLen):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
