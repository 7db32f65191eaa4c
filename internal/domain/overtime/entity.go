package overtime

import (
	"time"

	"github.com/haergo/haergo-backend-go/internal/domain/approval"
)

// Policy for overtime approvals: manager tier, no note required on reject.
var Policy = approval.Policy{
	RequiredTier:           approval.TierManager,
	ReasonRequiredOnReject: false,
}

type OvertimeRequest struct {
	ID          string
	EmployeeID  string
	Date        time.Time
	StartClock  string // HH:MM
	EndClock    string // HH:MM, wraps past midnight when before StartClock
	Hours       float64
	Reason      string
	Status      approval.Status
	ResolvedBy  *string
	ResolvedAt  *time.Time
	ResolveNote *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO / Join
	EmployeeName *string
}
