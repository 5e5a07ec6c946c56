package events

import (
	"strings"

	"famgo/mogoherald/internal/message"
)

// Field headers in the primary embed
const (
	fieldTournaments = "**__Tournaments__**"
	fieldFlashEvents = "**__Flash Events__**"
	fieldQuickWins   = "**__Quick Wins__**"

	embedTitlePrefix = "🎲 Monopoly GO! Events | "

	// DefaultMaxImageEmbeds caps image-only embeds after the primary one
	DefaultMaxImageEmbeds = 4

	plainContentLimit = 1900
	plainItemsPerSect = 15
)

// Formatter renders an EventPage into a chat payload. It is a total function:
// a sparse or empty page yields a minimal valid payload, never an error.
type Formatter struct {
	// MaxImageEmbeds caps the image-only embeds appended after the primary
	// embed; images beyond the cap are dropped silently
	MaxImageEmbeds int

	// IncludeProvenance controls whether Content carries a source line
	IncludeProvenance bool
}

// NewFormatter creates a formatter with the default image cap
func NewFormatter() *Formatter {
	return &Formatter{MaxImageEmbeds: DefaultMaxImageEmbeds}
}

// Format builds the payload: one primary embed with category fields plus up
// to MaxImageEmbeds image-only embeds
func (f *Formatter) Format(page *EventPage, sourceURL string) message.Payload {
	if page == nil {
		page = &EventPage{}
	}

	dateText := DateFromTitle(page.Title)
	if dateText == "" {
		dateText = "Today"
	}

	tournaments := buildTournamentsField(page.Section(SectionTournaments))

	flashItems := page.Section(SectionSpecialEvents)
	if flashItems == nil {
		flashItems = page.Section(SectionFlashEvents)
	}
	flash := buildFlashEventsField(flashItems)

	quickWins := buildQuickWinsField(page.Section(SectionQuickWins))

	main := message.Embed{
		Title: message.TrimTo(embedTitlePrefix+dateText, message.MaxFieldName),
		URL:   sourceURL,
	}

	if tournaments != nil {
		main.Fields = append(main.Fields, *tournaments)
	}
	if tournaments != nil && (flash != nil || quickWins != nil) {
		main.Fields = append(main.Fields, message.SpacerField())
	}
	if flash != nil {
		main.Fields = append(main.Fields, *flash)
	}
	if flash != nil && quickWins != nil {
		main.Fields = append(main.Fields, message.SpacerField())
	}
	if quickWins != nil {
		main.Fields = append(main.Fields, *quickWins)
	}

	if featured := page.FeaturedImage(); featured != "" {
		main.Image = &message.Image{URL: featured}
	}

	embeds := []message.Embed{main}

	maxExtra := f.MaxImageEmbeds
	if maxExtra < 0 {
		maxExtra = 0
	}
	for i, url := range page.ExtraImages() {
		if i >= maxExtra {
			break
		}
		embeds = append(embeds, message.Embed{
			URL:   sourceURL,
			Image: &message.Image{URL: url},
		})
	}

	content := ""
	if f.IncludeProvenance && sourceURL != "" {
		content = "source: " + sourceURL
	}

	return message.Payload{Content: content, Embeds: embeds}
}

func buildTournamentsField(items []string) *message.Field {
	if len(items) == 0 {
		return nil
	}

	var entries []string
	for _, item := range items {
		pe := ParseEventLine(item)

		lines := []string{
			IconTournament + " **" + pe.Name + "**",
			"- Start: `" + orUnknown(pe.Start) + "`",
			"- End: `" + orUnknown(pe.End) + "`",
		}
		if d, ok := ParseTournamentDuration(pe.DurationRaw); ok {
			lines = append(lines, "- Duration: `"+d.String()+"`")
		}

		entries = append(entries, strings.Join(lines, "\n")+"\n")
	}

	return &message.Field{
		Name:   fieldTournaments,
		Value:  message.TrimTo(strings.Join(entries, "\n"), message.MaxFieldValue),
		Inline: false,
	}
}

func buildFlashEventsField(items []string) *message.Field {
	if len(items) == 0 {
		return nil
	}

	var entries []string
	for _, item := range items {
		pe := ParseEventLine(item)

		lines := []string{
			LookupIcon(pe.Name) + " **" + pe.Name + "**",
			"- Start: `" + orUnknown(pe.Start) + "`",
			"- End: `" + orUnknown(pe.End) + "`",
		}
		if d, ok := ParseEventDuration(pe.DurationRaw); ok {
			lines = append(lines, "- Duration: `"+d.String()+"`")
		}

		entries = append(entries, strings.Join(lines, "\n")+"\n")
	}

	return &message.Field{
		Name:   fieldFlashEvents,
		Value:  message.TrimTo(strings.Join(entries, "\n"), message.MaxFieldValue),
		Inline: false,
	}
}

func buildQuickWinsField(items []string) *message.Field {
	if len(items) == 0 {
		return nil
	}

	var entries []string
	for _, item := range items {
		pe := ParseQuickWinLine(item)

		lines := []string{"**" + pe.Name + "**"}
		for _, reward := range pe.Rewards {
			lines = append(lines, "- "+reward)
		}

		entries = append(entries, strings.Join(lines, "\n")+"\n")
	}

	return &message.Field{
		Name:   fieldQuickWins,
		Value:  message.TrimTo(strings.Join(entries, "\n"), message.MaxFieldValue),
		Inline: false,
	}
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

// RenderPlain produces the text form of a page: bolded title, underlined
// section headers, bulleted items. It is both the plain fallback content and
// the input shape PlainTextExtractor accepts.
func RenderPlain(page *EventPage, sourceURL string) string {
	if page == nil {
		page = &EventPage{}
	}

	title := page.Title
	if title == "" {
		title = DefaultTitle
	}

	lines := []string{"**" + title + "**"}
	for _, s := range page.Sections {
		lines = append(lines, "", "__"+s.Heading+"__")
		for i, item := range s.Items {
			if i >= plainItemsPerSect {
				break
			}
			lines = append(lines, "• "+item)
		}
	}
	if sourceURL != "" {
		lines = append(lines, "", "Source: "+sourceURL)
	}

	return message.TrimTo(strings.Join(lines, "\n"), plainContentLimit)
}

// Summary renders a one-line digest of a page for length-limited surfaces
// like IRC: each section heading followed by its event names.
func Summary(page *EventPage) string {
	if page == nil || len(page.Sections) == 0 {
		return ""
	}

	var parts []string
	for _, s := range page.Sections {
		var names []string
		for _, item := range s.Items {
			pe := ParseEventLine(item)
			names = append(names, pe.Name)
		}
		parts = append(parts, s.Heading+": "+strings.Join(names, ", "))
	}
	return strings.Join(parts, " | ")
}
