package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bloodlink-bd/bloodlink-web/internal/domain/entity"
)

// A fixed afternoon so "Today" style labels don't depend on wall time.
var now = time.Date(2026, time.August, 29, 15, 30, 0, 0, time.UTC)

func TestDueLabels(t *testing.T) {
	cases := []struct {
		date  string
		label string
		badge string
	}{
		{"", "Date not set", "badge-ghost"},
		{"not-a-date", "Invalid date", "badge-ghost"},
		{"2026-08-27", "Overdue by 2 days", "badge-error"},
		{"2026-08-28", "Overdue by 1 day", "badge-error"},
		{"2026-08-29", "Today", "badge-warning"},
		{"2026-08-30", "Tomorrow", "badge-warning"},
		{"2026-08-31", "In 2 days", "badge-info"},
		{"2026-09-01", "In 3 days", "badge-info"},
		{"2026-09-02", "In 4 days", "badge-outline"},
		{"2026-09-05", "In 7 days", "badge-outline"},
		{"2026-09-06", "On Sep 6, 2026", "badge-ghost"},
		{"2027-01-02", "On Jan 2, 2027", "badge-ghost"},
	}
	for _, tc := range cases {
		got := Due(tc.date, now)
		assert.Equal(t, tc.label, got.Label, "date %q", tc.date)
		assert.Equal(t, tc.badge, got.Badge, "date %q", tc.date)
	}
}

func TestDueIsCalendarBased(t *testing.T) {
	// Just before midnight, tomorrow is still "Tomorrow": the diff counts
	// calendar days, not 24h windows.
	lateNight := time.Date(2026, time.August, 29, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "Tomorrow", Due("2026-08-30", lateNight).Label)
	assert.Equal(t, "Today", Due("2026-08-29", lateNight).Label)

	earlyMorning := time.Date(2026, time.August, 29, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, "Today", Due("2026-08-29", earlyMorning).Label)
}

func TestFormatTime12(t *testing.T) {
	assert.Equal(t, "2:30 PM", FormatTime12("14:30"))
	assert.Equal(t, "12:00 AM", FormatTime12("00:00"))
	assert.Equal(t, "12:15 PM", FormatTime12("12:15"))
	assert.Equal(t, "9:05 AM", FormatTime12("09:05"))
	assert.Equal(t, "11:59 PM", FormatTime12("23:59"))
	// Unparsable values pass through untouched.
	assert.Equal(t, "25:00", FormatTime12("25:00"))
	assert.Equal(t, "noonish", FormatTime12("noonish"))
	assert.Equal(t, "", FormatTime12(""))
}

func TestFormatDateTime(t *testing.T) {
	assert.Equal(t, "05 Sep · 2:30 PM", FormatDateTime("2026-09-05", "14:30"))
	assert.Equal(t, "05 Sep", FormatDateTime("2026-09-05", ""))
	assert.Equal(t, "2:30 PM", FormatDateTime("", "14:30"))
	assert.Equal(t, "N/A", FormatDateTime("", ""))
}

func TestStatusBadge(t *testing.T) {
	assert.Equal(t, "badge-warning", StatusBadge(entity.StatusPending))
	assert.Equal(t, "badge-info", StatusBadge(entity.StatusInProgress))
	assert.Equal(t, "badge-success", StatusBadge(entity.StatusDone))
	assert.Equal(t, "badge-error", StatusBadge(entity.StatusCanceled))
	assert.Equal(t, "badge-ghost", StatusBadge(entity.RequestStatus("weird")))
}

func TestLocation(t *testing.T) {
	assert.Equal(t, "Mirpur, Dhaka", Location("Mirpur", "Dhaka"))
	assert.Equal(t, "Dhaka", Location("", "Dhaka"))
	assert.Equal(t, "Mirpur", Location("Mirpur", ""))
	assert.Equal(t, "N/A", Location("", ""))
}

func TestTemplatesCompile(t *testing.T) {
	tpl := Templates()
	for name := range pageSources {
		assert.NotNil(t, tpl.Lookup(name), "template %q", name)
	}
}
