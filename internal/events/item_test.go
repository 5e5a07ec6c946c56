package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEventLine_FullLine(t *testing.T) {
	line := "**Golden Blitz** — 11/16/2025, 09:00:00 AM → 11/16/2025, 10:30:00 AM  •  Duration: 01:30:00  •  dice x200"

	pe := ParseEventLine(line)

	assert.Equal(t, "Golden Blitz", pe.Name)
	assert.Equal(t, "11/16/2025, 09:00:00 AM", pe.Start)
	assert.Equal(t, "11/16/2025, 10:30:00 AM", pe.End)
	assert.Equal(t, "01:30:00", pe.DurationRaw)
}

func TestParseEventLine_StartOnly(t *testing.T) {
	line := "**Board Rush** — 11/16/2025, 09:00:00 AM"

	pe := ParseEventLine(line)

	assert.Equal(t, "Board Rush", pe.Name)
	assert.Equal(t, "11/16/2025, 09:00:00 AM", pe.Start)
	assert.Empty(t, pe.End)
	assert.Empty(t, pe.DurationRaw)
}

func TestParseEventLine_NameOnly(t *testing.T) {
	pe := ParseEventLine("**Battleship Bash**")

	assert.Equal(t, "Battleship Bash", pe.Name)
	assert.Empty(t, pe.Start)
	assert.Empty(t, pe.End)
}

func TestParseEventLine_StripsBulletGlyph(t *testing.T) {
	pe := ParseEventLine("• **Golden Blitz** — 11/16/2025, 09:00:00 AM → 11/16/2025, 10:30:00 AM")

	assert.Equal(t, "Golden Blitz", pe.Name)
	assert.Equal(t, "11/16/2025, 09:00:00 AM", pe.Start)
}

func TestParseEventLine_NoBoldNameFallsBack(t *testing.T) {
	pe := ParseEventLine("something without markup")
	assert.Equal(t, "Event", pe.Name)
}

func TestParseQuickWinLine(t *testing.T) {
	line := "**Daily Login** — valid all day  •  dice x25  |  cash x5000"

	pe := ParseQuickWinLine(line)

	assert.Equal(t, "Daily Login", pe.Name)
	assert.Equal(t, []string{"dice x25", "cash x5000"}, pe.Rewards)
}

func TestParseQuickWinLine_NoRewards(t *testing.T) {
	pe := ParseQuickWinLine("**Free Parking**")

	assert.Equal(t, "Free Parking", pe.Name)
	assert.Empty(t, pe.Rewards)
}

func TestStripSeconds(t *testing.T) {
	tests := []struct{ in, want string }{
		{"11/17/2025, 12:00:00 PM", "11/17/2025, 12:00 PM"},
		{"11/17/2025, 09:15:30 AM", "11/17/2025, 09:15 AM"},
		{"12:30:45", "12:30"},
		{"no time here", "no time here"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StripSeconds(tt.in), "input %q", tt.in)
	}
}

func TestDateFromTitle(t *testing.T) {
	assert.Equal(t, "11/16/2025", DateFromTitle("Monopoly GO Events (11/16/2025)"))
	assert.Empty(t, DateFromTitle("Monopoly GO Events"))
}
