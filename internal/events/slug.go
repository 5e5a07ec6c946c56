package events

import (
	"strings"
	"time"
)

// DateSlug converts a date into the site's URL slug, e.g. "nov-02-2025".
// The calendar fields are taken in loc, the site's anchor timezone, so the
// caller's local zone and the time-of-day component never change the result.
func DateSlug(t time.Time, loc *time.Location) string {
	return strings.ToLower(t.In(loc).Format("Jan-02-2006"))
}

// PrettyDate renders a date long-form, e.g. "Wednesday, November 13, 2025"
func PrettyDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("Monday, January 2, 2006")
}

// Tomorrow returns now+1 day in loc, the default announcement target
func Tomorrow(loc *time.Location) time.Time {
	return time.Now().In(loc).AddDate(0, 0, 1)
}

// FormatTimestamp renders a UTC unix timestamp (seconds) in loc as
// "MM/DD/YYYY, hh:mm:ss AM", matching the site's visible date style.
func FormatTimestamp(seconds int64, loc *time.Location) string {
	return time.Unix(seconds, 0).In(loc).Format("01/02/2006, 03:04:05 PM")
}
