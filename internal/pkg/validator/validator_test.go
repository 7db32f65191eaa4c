package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("budi@haergo.com"))
	assert.True(t, IsValidEmail("first.last+tag@sub.domain.co.id"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail("@haergo.com"))
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2024-03-11")
	assert.True(t, ok)
	assert.Equal(t, 2024, date.Year())

	_, ok = IsValidDate("11-03-2024")
	assert.False(t, ok)

	_, ok = IsValidDate("2024-13-01")
	assert.False(t, ok)
}

func TestIsValidClock(t *testing.T) {
	assert.True(t, IsValidClock("09:00"))
	assert.True(t, IsValidClock("23:59"))
	assert.False(t, IsValidClock("24:00"))
	assert.False(t, IsValidClock("9am"))
}

func TestIsValidMonth(t *testing.T) {
	month, ok := IsValidMonth("2024-03")
	assert.True(t, ok)
	assert.Equal(t, 2024, month.Year())

	_, ok = IsValidMonth("2024-3")
	assert.False(t, ok)
}

func TestIsInSlice(t *testing.T) {
	modes := []string{"office", "remote", "client_visit"}
	assert.True(t, IsInSlice("office", modes))
	assert.False(t, IsInSlice("wfh", modes))
	assert.False(t, IsInSlice("office", nil))
}

func TestIsValidDateTime(t *testing.T) {
	_, ok := IsValidDateTime("2024-01-15T10:30:00Z")
	assert.True(t, ok)

	_, ok = IsValidDateTime("2024-01-15T10:30:00+07:00")
	assert.True(t, ok)

	_, ok = IsValidDateTime("2024-01-15 10:30:00")
	assert.False(t, ok)
}
