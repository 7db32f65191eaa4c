package leave

import (
	"time"

	"github.com/haergo/haergo-backend-go/internal/domain/approval"
)

// LeaveType is a policy entry in the static leave catalog.
type LeaveType struct {
	Code              string        `json:"code"`
	Name              string        `json:"name"`
	AnnualQuota       *int          `json:"annual_quota"` // nil means unlimited
	DeductsBalance    bool          `json:"deducts_balance"`
	RequiredTier      approval.Tier `json:"required_tier"`
	MinNoticeDays     int           `json:"min_notice_days"`
	MaxDaysPerRequest int           `json:"max_days_per_request"`
	NeedsAttachment   bool          `json:"needs_attachment"` // advisory, never blocks submission
}

// Catalog is the fixed leave policy table. Codes are stable identifiers
// used in requests and storage.
var Catalog = map[string]LeaveType{
	"annual": {
		Code:              "annual",
		Name:              "Annual Leave",
		AnnualQuota:       intPtr(14),
		DeductsBalance:    true,
		RequiredTier:      approval.TierManager,
		MinNoticeDays:     3,
		MaxDaysPerRequest: 14,
	},
	"sick": {
		Code:              "sick",
		Name:              "Sick Leave",
		AnnualQuota:       nil,
		DeductsBalance:    false,
		RequiredTier:      approval.TierManager,
		MinNoticeDays:     0,
		MaxDaysPerRequest: 14,
		NeedsAttachment:   true,
	},
	"permission": {
		Code:              "permission",
		Name:              "Personal Permission",
		AnnualQuota:       intPtr(3),
		DeductsBalance:    true,
		RequiredTier:      approval.TierManager,
		MinNoticeDays:     1,
		MaxDaysPerRequest: 3,
	},
	"maternity": {
		Code:              "maternity",
		Name:              "Maternity Leave",
		AnnualQuota:       intPtr(90),
		DeductsBalance:    false,
		RequiredTier:      approval.TierHR,
		MinNoticeDays:     14,
		MaxDaysPerRequest: 90,
	},
	"marriage": {
		Code:              "marriage",
		Name:              "Marriage Leave",
		AnnualQuota:       intPtr(3),
		DeductsBalance:    false,
		RequiredTier:      approval.TierHR,
		MinNoticeDays:     7,
		MaxDaysPerRequest: 3,
	},
	"bereavement": {
		Code:              "bereavement",
		Name:              "Bereavement Leave",
		AnnualQuota:       intPtr(3),
		DeductsBalance:    false,
		RequiredTier:      approval.TierManager,
		MinNoticeDays:     0,
		MaxDaysPerRequest: 7,
	},
}

// CatalogOrder keeps listing output stable.
var CatalogOrder = []string{"annual", "sick", "permission", "maternity", "marriage", "bereavement"}

func intPtr(v int) *int { return &v }

// LeaveRequest entity
type LeaveRequest struct {
	ID            string
	EmployeeID    string
	TypeCode      string
	StartDate     time.Time
	EndDate       time.Time
	WorkingDays   int
	Reason        string
	AttachmentURL *string
	Status        approval.Status
	ResolvedBy    *string
	ResolvedAt    *time.Time
	ResolveNote   *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// DTO / Join
	EmployeeName *string
}
