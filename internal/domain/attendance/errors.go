package attendance

import "errors"

// Attendance domain errors
var (
	// Clock-in errors
	ErrAlreadyClockedIn      = errors.New("you have already clocked in today")
	ErrOutsideOfficeRadius   = errors.New("you are outside the office radius")
	ErrClientAddressRequired = errors.New("client address is required for client visits")
	ErrInvalidAttendanceMode = errors.New("invalid attendance mode")
	ErrInvalidCoordinates    = errors.New("invalid coordinates")

	// Clock-out errors
	ErrNotClockedIn      = errors.New("you have not clocked in yet")
	ErrAlreadyClockedOut = errors.New("you have already clocked out")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrUnauthorized       = errors.New("unauthorized to access this attendance record")
)
