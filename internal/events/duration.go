package events

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// The wire shape "NN:NN:NN" is ambiguous: the site uses days:hours:minutes for
// tournaments and hours:minutes:seconds for everything else. The two readings
// are kept as distinct types and chosen by the section an item came from.

var durationTokenRe = regexp.MustCompile(`^[0-9]{1,2}:[0-9]{2}:[0-9]{2}$`)

// TournamentDuration is a days:hours:minutes duration
type TournamentDuration struct {
	Days    int
	Hours   int
	Minutes int
}

// EventDuration is an hours:minutes:seconds duration
type EventDuration struct {
	Hours   int
	Minutes int
	Seconds int
}

func splitDurationToken(token string) (int, int, int, bool) {
	token = strings.TrimSpace(token)
	if !durationTokenRe.MatchString(token) {
		return 0, 0, 0, false
	}
	parts := strings.Split(token, ":")
	a, _ := strconv.Atoi(parts[0])
	b, _ := strconv.Atoi(parts[1])
	c, _ := strconv.Atoi(parts[2])
	return a, b, c, true
}

// ParseTournamentDuration reads a raw token as days:hours:minutes
func ParseTournamentDuration(token string) (TournamentDuration, bool) {
	d, h, m, ok := splitDurationToken(token)
	if !ok {
		return TournamentDuration{}, false
	}
	return TournamentDuration{Days: d, Hours: h, Minutes: m}, true
}

// ParseEventDuration reads a raw token as hours:minutes:seconds
func ParseEventDuration(token string) (EventDuration, bool) {
	h, m, s, ok := splitDurationToken(token)
	if !ok {
		return EventDuration{}, false
	}
	return EventDuration{Hours: h, Minutes: m, Seconds: s}, true
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// String pretty-prints at day/hour granularity; minutes show only when days
// and hours are both zero.
func (d TournamentDuration) String() string {
	var parts []string
	if d.Days > 0 {
		parts = append(parts, plural(d.Days, "Day"))
	}
	if d.Hours > 0 {
		parts = append(parts, plural(d.Hours, "Hour"))
	}
	if d.Days == 0 && d.Hours == 0 && d.Minutes > 0 {
		parts = append(parts, plural(d.Minutes, "Minute"))
	}
	return strings.Join(parts, " ")
}

// String pretty-prints at hour/minute granularity; seconds show only when
// hours and minutes are both zero.
func (d EventDuration) String() string {
	var parts []string
	if d.Hours > 0 {
		parts = append(parts, plural(d.Hours, "Hour"))
	}
	if d.Minutes > 0 {
		parts = append(parts, plural(d.Minutes, "Minute"))
	}
	if d.Hours == 0 && d.Minutes == 0 && d.Seconds > 0 {
		parts = append(parts, plural(d.Seconds, "Second"))
	}
	return strings.Join(parts, " ")
}
