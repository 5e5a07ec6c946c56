package events

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupIcon(t *testing.T) {
	assert.Equal(t, "<:GoldenBlitz:1437570226966495373>", LookupIcon("Golden Blitz"))
	assert.Equal(t, "<:GoldenBlitz:1437570226966495373>", LookupIcon("GOLDEN BLITZ"))
	assert.Equal(t, "<:Battleship:1437905064260927620>", LookupIcon("Battleship Bash"))
	assert.Equal(t, IconTournament, LookupIcon("Weekend Tournament"))
	assert.Equal(t, IconFallback, LookupIcon("Unheard Of Event"))
}

func TestLookupIcon_OrderDecidesOverlaps(t *testing.T) {
	// The minigame rule sits above the generic free-parking rule, which in
	// turn shadows the rolls and money variants further down.
	name := "Jackpot Stash at Free Parking Minigame"
	assert.Equal(t, "<:JackpotStashMinigame:1437570232393793726>", LookupIcon(name))

	name = "Jackpot Stash at Free Parking Rolls"
	assert.Equal(t, "<:JackpotStashMinigame:1437570232393793726>", LookupIcon(name))
}

func TestLookupIcon_RuleCoverage(t *testing.T) {
	names := []string{
		"Board Rush", "Builders Bash", "Cash Boost", "Cash Grab",
		"High Roller", "Wheel Boost", "Sticker Boom", "No Vacancy",
		"Rent Frenzy", "Mega Heist", "Lucky Roll", "Roll Match",
		"Lucky Chance", "Landmark Rush", "Carnival Games", "Treasure Hunt",
	}
	for _, name := range names {
		icon := LookupIcon(name)
		assert.NotEqual(t, IconFallback, icon, "expected a rule for %q", name)
		assert.True(t, strings.HasPrefix(icon, "<:"), "icon for %q", name)
	}
}
