package overtime

import "errors"

var (
	ErrOvertimeRequestNotFound         = errors.New("overtime request not found")
	ErrOvertimeRequestAlreadyProcessed = errors.New("overtime request already processed")
	ErrZeroDuration                    = errors.New("overtime duration must be greater than zero")
	ErrNotRequestOwner                 = errors.New("overtime request belongs to another employee")
)
