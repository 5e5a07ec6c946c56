package events

import (
	"regexp"
	"strings"
)

// ParsedEvent is one event or task decoded from a section item line
type ParsedEvent struct {
	Name        string
	Start       string // display-ready, "" when unknown
	End         string
	DurationRaw string // raw "NN:NN:NN" token, "" when absent
	Rewards     []string
}

const (
	clauseSeparator = "  •  "
	rewardSeparator = "  |  "
	rangeArrow      = "→"
	rangeDash       = "—"
)

var (
	boldNameRe      = regexp.MustCompile(`\*\*(.+?)\*\*`)
	durationValueRe = regexp.MustCompile(`(?i)Duration:\s*([0-9]{1,2}:[0-9]{2}:[0-9]{2})`)
	bulletPrefixRe  = regexp.MustCompile(`^•\s*`)
	titleDateRe     = regexp.MustCompile(`\(([^)]+)\)`)

	secondsSuffixRe = regexp.MustCompile(`(?i):00(\s*[AP]M)?$`)
	secondsInfixRe  = regexp.MustCompile(`:([0-5]\d):[0-5]\d`)
)

func itemName(line, fallback string) string {
	if m := boldNameRe.FindStringSubmatch(line); m != nil {
		if name := strings.TrimSpace(m[1]); name != "" {
			return name
		}
	}
	return fallback
}

// ParseEventLine decodes a tournament or flash-event item line
func ParseEventLine(line string) ParsedEvent {
	line = bulletPrefixRe.ReplaceAllString(strings.TrimSpace(line), "")

	pe := ParsedEvent{Name: itemName(line, "Event")}

	if m := durationValueRe.FindStringSubmatch(line); m != nil {
		pe.DurationRaw = m[1]
	}

	// The first clause carries the schedule: "**name** — start → end"
	clause := strings.SplitN(line, clauseSeparator, 2)[0]
	if idx := strings.Index(clause, rangeArrow); idx != -1 {
		left := clause[:idx]
		right := clause[idx+len(rangeArrow):]
		if parts := strings.SplitN(left, rangeDash, 2); len(parts) == 2 {
			pe.Start = strings.TrimSpace(parts[1])
		}
		pe.End = strings.TrimSpace(right)
	} else if parts := strings.SplitN(clause, rangeDash, 2); len(parts) == 2 {
		// A single date element means start only
		pe.Start = strings.TrimSpace(parts[1])
	}

	return pe
}

// ParseQuickWinLine decodes a quick-win task line with its reward list
func ParseQuickWinLine(line string) ParsedEvent {
	line = bulletPrefixRe.ReplaceAllString(strings.TrimSpace(line), "")

	pe := ParsedEvent{Name: itemName(line, "Task")}

	parts := strings.SplitN(line, clauseSeparator, 2)
	if len(parts) < 2 {
		return pe
	}
	for _, reward := range strings.Split(parts[1], "|") {
		reward = strings.TrimSpace(reward)
		if reward != "" {
			pe.Rewards = append(pe.Rewards, reward)
		}
	}
	return pe
}

// StripSeconds drops the seconds component from a display time, e.g.
// "11/17/2025, 12:00:00 PM" -> "11/17/2025, 12:00 PM"
func StripSeconds(t string) string {
	t = secondsSuffixRe.ReplaceAllString(t, "$1")
	return secondsInfixRe.ReplaceAllString(t, ":$1")
}

// DateFromTitle extracts the parenthesized date label from a page title,
// e.g. "Monopoly GO Events (11/16/2025)" -> "11/16/2025"
func DateFromTitle(title string) string {
	if m := titleDateRe.FindStringSubmatch(title); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}
