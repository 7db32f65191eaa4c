package leave

import "errors"

var (
	ErrLeaveRequestNotFound         = errors.New("leave request not found")
	ErrUnknownLeaveType             = errors.New("unknown leave type")
	ErrInsufficientBalance          = errors.New("insufficient leave balance")
	ErrMinNoticeViolation           = errors.New("request does not meet the minimum notice period")
	ErrMaxSpanExceeded              = errors.New("request exceeds the maximum days per request")
	ErrNoWorkingDays                = errors.New("requested range contains no working days")
	ErrLeaveRequestAlreadyProcessed = errors.New("leave request already processed")
	ErrRejectReasonRequired         = errors.New("a reason is required when rejecting a leave request")
	ErrNotRequestOwner              = errors.New("leave request belongs to another employee")
)
