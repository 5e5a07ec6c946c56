// Package events implements the event-page pipeline: resolving the day's page
// URL, extracting loosely-structured wiki markup into a typed intermediate
// shape, and formatting that shape into a chat payload.
package events

// Section headings used by the source site
const (
	SectionTournaments   = "Tournaments"
	SectionFlashEvents   = "Flash Events"
	SectionSpecialEvents = "Special Events"
	SectionQuickWins     = "Quick Wins"
	SectionSummary       = "Summary"
)

// DefaultTitle is used when a page carries no recognizable heading
const DefaultTitle = "Monopoly GO — Today's Events"

// Section is one named group of event items, in source order.
// Each item is a single-line encoding produced by an Extractor:
//
//	**name** — start → end  •  Duration: token  •  reward1  |  reward2
//
// with absent clauses omitted. This encoding is the contract between the
// extractors and the formatter.
type Section struct {
	Heading string   `json:"heading"`
	Items   []string `json:"items"`
}

// EventPage is the intermediate representation of one event page
type EventPage struct {
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
	Images   []string  `json:"images"`
}

// AddItem appends an item to the section with the given heading, creating the
// section at the end when it is first seen. Duplicate headings share one
// logical section.
func (p *EventPage) AddItem(heading, item string) {
	for i := range p.Sections {
		if p.Sections[i].Heading == heading {
			p.Sections[i].Items = append(p.Sections[i].Items, item)
			return
		}
	}
	p.Sections = append(p.Sections, Section{Heading: heading, Items: []string{item}})
}

// AddImage appends an image URL, keeping insertion order and dropping duplicates
func (p *EventPage) AddImage(url string) {
	if url == "" {
		return
	}
	for _, existing := range p.Images {
		if existing == url {
			return
		}
	}
	p.Images = append(p.Images, url)
}

// Section returns the items of the named section, or nil when absent
func (p *EventPage) Section(heading string) []string {
	for i := range p.Sections {
		if p.Sections[i].Heading == heading {
			return p.Sections[i].Items
		}
	}
	return nil
}

// FeaturedImage returns the first image in document order, or ""
func (p *EventPage) FeaturedImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// ExtraImages returns every image after the featured one
func (p *EventPage) ExtraImages() []string {
	if len(p.Images) < 2 {
		return nil
	}
	return p.Images[1:]
}
