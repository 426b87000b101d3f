package scrape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestParsePublicationDateTime_WellFormed verifies the normal case.
func TestParsePublicationDateTime_WellFormed(t *testing.T) {
	got := ParsePublicationDateTime("12 September 2025 | 15.22 WIB")

	assert.Equal(t, "2025-09-12", got.Date)
	assert.Equal(t, "15:22:00", got.Time)
	assert.Equal(t, "WIB", got.Timezone)
}

// TestParsePublicationDateTime_Empty verifies empty input yields all-empty
// fields.
func TestParsePublicationDateTime_Empty(t *testing.T) {
	got := ParsePublicationDateTime("")

	assert.Equal(t, PublicationDateTime{}, got)
}

// TestParsePublicationDateTime_Garbage verifies input without the pipe
// separator yields all-empty fields.
func TestParsePublicationDateTime_Garbage(t *testing.T) {
	assert.Equal(t, PublicationDateTime{}, ParsePublicationDateTime("garbage"))
	assert.Equal(t, PublicationDateTime{}, ParsePublicationDateTime("a | b | c"))
}

// TestParsePublicationDateTime_UnknownMonth verifies an unrecognized month
// name maps to "01" instead of failing.
func TestParsePublicationDateTime_UnknownMonth(t *testing.T) {
	got := ParsePublicationDateTime("12 Septembruary 2025 | 15.22 WIB")

	assert.Equal(t, "2025-01-12", got.Date)
	assert.Equal(t, "15:22:00", got.Time)
}

// TestParsePublicationDateTime_SingleDigits verifies zero-padding of day,
// hour, and minute.
func TestParsePublicationDateTime_SingleDigits(t *testing.T) {
	got := ParsePublicationDateTime("1 May 2025 | 9.5 WIB")

	assert.Equal(t, "2025-05-01", got.Date)
	assert.Equal(t, "09:05:00", got.Time)
	assert.Equal(t, "WIB", got.Timezone)
}

// TestParsePublicationDateTime_PartialFailures verifies a malformed part
// only blanks its own field.
func TestParsePublicationDateTime_PartialFailures(t *testing.T) {
	// Malformed time with a valid date still yields the date.
	got := ParsePublicationDateTime("12 September 2025 | 1522 WIB")
	assert.Equal(t, "2025-09-12", got.Date)
	assert.Empty(t, got.Time)
	assert.Equal(t, "WIB", got.Timezone)

	// Malformed date with a valid time still yields the time.
	got = ParsePublicationDateTime("September 2025 | 15.22 WIB")
	assert.Empty(t, got.Date)
	assert.Equal(t, "15:22:00", got.Time)
}

// TestParsePublicationDateTime_NoTimezone verifies a missing timezone token
// leaves that field empty without affecting the time.
func TestParsePublicationDateTime_NoTimezone(t *testing.T) {
	got := ParsePublicationDateTime("12 September 2025 | 15.22")

	assert.Equal(t, "2025-09-12", got.Date)
	assert.Equal(t, "15:22:00", got.Time)
	assert.Empty(t, got.Timezone)
}
