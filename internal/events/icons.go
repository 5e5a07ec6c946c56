package events

import "regexp"

// Icon identifiers for known events. The table is ordered: patterns overlap
// (e.g. the jackpot-stash variants) and priority decides, so this is a rule
// list scanned front to back, not a map.

const (
	// IconTournament marks every tournament entry regardless of name
	IconTournament = "<:tournament:1437914131180294355>"
	// IconFallback is used when no rule matches an event name
	IconFallback = "•"
)

type iconRule struct {
	pattern *regexp.Regexp
	icon    string
}

var iconTable = []iconRule{
	{regexp.MustCompile(`(?i)\bboard\s*rush\b`), "<:BoardRush:1437570220813320221>"},
	{regexp.MustCompile(`(?i)\bbuilder'?s?\s*bash\b`), "<:BuildersBash:1437570222008832221>"},
	{regexp.MustCompile(`(?i)\bcash\s*boost\b`), "<:CashBoost:1437570223816441976>"},
	{regexp.MustCompile(`(?i)\bcash\s*grab\b`), "<:CashGrab:1437570224927801488>"},
	{regexp.MustCompile(`(?i)\bgolden\s*blitz\b`), "<:GoldenBlitz:1437570226966495373>"},
	{regexp.MustCompile(`(?i)\bdig(ging)?\s*tool|\btreasure\s*hunt|\bpickaxe`), "<:DigTool:1437570228421791855>"},
	{regexp.MustCompile(`(?i)\bhigh\s*roller\b`), "<:HighRoller:1437570229390545008>"},
	{regexp.MustCompile(`(?i)\btoken|\bchip\b`), "<:ChipSmall:1437570231131312278>"},
	{regexp.MustCompile(`(?i)\bjackpot\s*stash\b.*free\s*parking\b.*mini`), "<:JackpotStashMinigame:1437570232393793726>"},
	{regexp.MustCompile(`(?i)\bfree\s*parking\b`), "<:JackpotStashMinigame:1437570232393793726>"},
	{regexp.MustCompile(`(?i)\bwheel\s*boost\b`), "<:WheelBoost:1437570786947891393>"},
	{regexp.MustCompile(`(?i)\bsticker\s*boom\b`), "<:StickerBoom:1437570250274242785>"},
	{regexp.MustCompile(`(?i)\bno\s*vacancy\b`), "<:NoVacancy:1437570246549700759>"},
	{regexp.MustCompile(`(?i)\brent\s*frenzy\b`), "<:NoVacancy:1437570246549700759>"},
	{regexp.MustCompile(`(?i)\bmega\s*heist|\bmega\s*bank\s*heist\b`), "<:MegaBankHeist:1437570785685274845>"},
	{regexp.MustCompile(`(?i)\blucky\s*roll\b`), "<:LuckyRoll:1437570243768881244>"},
	{regexp.MustCompile(`(?i)\broll\s*match\b`), "<:LuckyRoll:1437570243768881244>"},
	{regexp.MustCompile(`(?i)\blucky\s*chance\b`), "<:LuckyChance:1437570240019173516>"},
	{regexp.MustCompile(`(?i)\blandmark\s*rush\b`), "<:LandmarkRush:1437570782925684908>"},
	{regexp.MustCompile(`(?i)\bjackpot\s*stash\b.*free\s*parking\b.*roll`), "<:JackpotStashRolls:1437570235866808330>"},
	{regexp.MustCompile(`(?i)\bjackpot\s*stash\b.*free\s*parking\b.*(cash|money)`), "<:JackpotStashMoney:1437570780635332812>"},
	{regexp.MustCompile(`(?i)\bbattleship\b`), "<:Battleship:1437905064260927620>"},
	{regexp.MustCompile(`(?i)\btournament\b`), IconTournament},
	{regexp.MustCompile(`(?i)\bcarnival\s*games\b`), "<:CarnivalGames:1437914039203270810>"},
}

// LookupIcon returns the icon for an event name; first matching rule wins
func LookupIcon(name string) string {
	for _, rule := range iconTable {
		if rule.pattern.MatchString(name) {
			return rule.icon
		}
	}
	return IconFallback
}
