package shift

import "errors"

var (
	ErrShiftNotFound      = errors.New("shift not found")
	ErrShiftNameExists    = errors.New("a shift with that name already exists")
	ErrShiftInUse         = errors.New("shift has active assignments and cannot be deleted")
	ErrAssignmentNotFound = errors.New("shift assignment not found")
)
