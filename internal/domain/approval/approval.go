// Package approval holds the shared approval-workflow rules used by the
// leave and overtime modules. A request moves pending -> approved or
// pending -> rejected exactly once; which roles may resolve it depends on
// the request's approval tier.
package approval

import (
	"github.com/haergo/haergo-backend-go/internal/domain/user"
)

// Tier identifies who must resolve a request.
type Tier string

const (
	TierManager Tier = "manager" // manager, hr or admin may resolve
	TierHR      Tier = "hr"      // hr or admin may resolve
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Policy describes how one request kind moves through the workflow.
type Policy struct {
	RequiredTier           Tier
	ReasonRequiredOnReject bool
}

// Authorize reports whether role may resolve a request of the given tier.
// Admin resolves everything; hr covers both tiers; manager covers only the
// manager tier.
func Authorize(role user.Role, tier Tier) bool {
	switch role {
	case user.RoleAdmin:
		return true
	case user.RoleHR:
		return true
	case user.RoleManager:
		return tier == TierManager
	default:
		return false
	}
}

// IsTerminal reports whether a status can no longer change.
func IsTerminal(s Status) bool {
	return s == StatusApproved || s == StatusRejected
}
