package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haergo/haergo-backend-go/internal/domain/approval"
)

func TestCatalogConsistency(t *testing.T) {
	require.Len(t, CatalogOrder, len(Catalog))

	for _, code := range CatalogOrder {
		lt, ok := Catalog[code]
		require.True(t, ok, "catalog order references unknown code %q", code)
		assert.Equal(t, code, lt.Code)
		assert.NotEmpty(t, lt.Name)
		assert.Greater(t, lt.MaxDaysPerRequest, 0)
		if lt.DeductsBalance {
			assert.NotNil(t, lt.AnnualQuota, "%s deducts balance but has no quota", code)
		}
	}

	// Sick leave is the only unlimited type.
	for code, lt := range Catalog {
		if code == "sick" {
			assert.Nil(t, lt.AnnualQuota)
		} else {
			assert.NotNil(t, lt.AnnualQuota, "%s should carry a quota", code)
		}
	}

	// Maternity and marriage escalate to the HR tier.
	assert.Equal(t, approval.TierHR, Catalog["maternity"].RequiredTier)
	assert.Equal(t, approval.TierHR, Catalog["marriage"].RequiredTier)
	assert.Equal(t, approval.TierManager, Catalog["annual"].RequiredTier)
}

func TestLeaveRequestToResponse_AttachmentAdvisory(t *testing.T) {
	lr := LeaveRequest{
		ID:          "lr-1",
		EmployeeID:  "emp-1",
		TypeCode:    "sick",
		StartDate:   time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
		WorkingDays: 2,
		Status:      approval.StatusPending,
	}

	// Sick leave without an attachment flags the advisory.
	resp := lr.ToResponse()
	assert.True(t, resp.NeedsAttachment)
	assert.Equal(t, "Sick Leave", resp.TypeName)

	// With an attachment the advisory clears.
	url := "https://files.haergo.com/certificates/abc.pdf"
	lr.AttachmentURL = &url
	resp = lr.ToResponse()
	assert.False(t, resp.NeedsAttachment)

	// Types that never need one stay clear either way.
	lr.TypeCode = "annual"
	lr.AttachmentURL = nil
	resp = lr.ToResponse()
	assert.False(t, resp.NeedsAttachment)
	assert.Equal(t, "Annual Leave", resp.TypeName)
}

func TestSubmitLeaveRequestValidate(t *testing.T) {
	valid := SubmitLeaveRequest{
		TypeCode:  "annual",
		StartDate: "2026-03-09",
		EndDate:   "2026-03-13",
		Reason:    "holiday",
	}
	assert.NoError(t, valid.Validate())

	reversed := valid
	reversed.StartDate, reversed.EndDate = reversed.EndDate, reversed.StartDate
	assert.Error(t, reversed.Validate())

	crossYear := valid
	crossYear.StartDate = "2026-12-28"
	crossYear.EndDate = "2027-01-05"
	assert.Error(t, crossYear.Validate())

	noReason := valid
	noReason.Reason = "  "
	assert.Error(t, noReason.Validate())
}
