package view

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/bloodlink-bd/bloodlink-web/internal/domain/entity"
)

// DueInfo is the urgency label derived from a request's donation date.
// Purely presentational; the badge names the visual severity tier.
type DueInfo struct {
	Label string
	Badge string
}

// Due maps a donation date (YYYY-MM-DD) to its urgency label relative to
// now. The delta is the calendar-day difference between the two local
// midnights, not elapsed hours, so "Today" holds all day long.
func Due(donationDate string, now time.Time) DueInfo {
	if donationDate == "" {
		return DueInfo{Label: "Date not set", Badge: "badge-ghost"}
	}
	target, err := time.ParseInLocation("2006-01-02", donationDate, now.Location())
	if err != nil {
		return DueInfo{Label: "Invalid date", Badge: "badge-ghost"}
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	diffDays := int(math.Round(target.Sub(today).Hours() / 24))

	switch {
	case diffDays < 0:
		d := -diffDays
		if d == 1 {
			return DueInfo{Label: "Overdue by 1 day", Badge: "badge-error"}
		}
		return DueInfo{Label: fmt.Sprintf("Overdue by %d days", d), Badge: "badge-error"}
	case diffDays == 0:
		return DueInfo{Label: "Today", Badge: "badge-warning"}
	case diffDays == 1:
		return DueInfo{Label: "Tomorrow", Badge: "badge-warning"}
	case diffDays <= 3:
		return DueInfo{Label: fmt.Sprintf("In %d days", diffDays), Badge: "badge-info"}
	case diffDays <= 7:
		return DueInfo{Label: fmt.Sprintf("In %d days", diffDays), Badge: "badge-outline"}
	}
	return DueInfo{Label: "On " + target.Format("Jan 2, 2006"), Badge: "badge-ghost"}
}

// FormatTime12 renders an HH:MM value as 12-hour time ("14:30" -> "2:30 PM").
// Unparsable input is returned as-is.
func FormatTime12(hhmm string) string {
	parts := strings.SplitN(hhmm, ":", 3)
	if len(parts) < 2 {
		return hhmm
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return hhmm
	}
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	hour12 := h % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour12, m, suffix)
}

// FormatDateShort renders YYYY-MM-DD as "02 Jan". Unparsable input is
// returned as-is.
func FormatDateShort(yyyymmdd string) string {
	t, err := time.Parse("2006-01-02", yyyymmdd)
	if err != nil {
		return yyyymmdd
	}
	return t.Format("02 Jan")
}

// FormatDateTime joins the short date and 12-hour time for list cells.
func FormatDateTime(date, hhmm string) string {
	d := ""
	if date != "" {
		d = FormatDateShort(date)
	}
	t := ""
	if hhmm != "" {
		t = FormatTime12(hhmm)
	}
	switch {
	case d != "" && t != "":
		return d + " · " + t
	case d != "":
		return d
	case t != "":
		return t
	}
	return "N/A"
}

// StatusBadge maps a request status to its severity tier.
func StatusBadge(s entity.RequestStatus) string {
	switch s {
	case entity.StatusPending:
		return "badge-warning"
	case entity.StatusInProgress:
		return "badge-info"
	case entity.StatusDone:
		return "badge-success"
	case entity.StatusCanceled:
		return "badge-error"
	}
	return "badge-ghost"
}

// Location joins upazila and district for display.
func Location(upazila, district string) string {
	parts := make([]string, 0, 2)
	if upazila != "" {
		parts = append(parts, upazila)
	}
	if district != "" {
		parts = append(parts, district)
	}
	if len(parts) == 0 {
		return "N/A"
	}
	return strings.Join(parts, ", ")
}
