package events

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"famgo/mogoherald/helpers"
)

// Extractor turns page markup (or pre-rendered text) into an EventPage.
// Implementations are total: malformed input degrades to defaults, it never
// produces an error.
type Extractor interface {
	Extract(html string) *EventPage
}

// Selectors contains CSS selectors for the pieces of an event article
type Selectors struct {
	ArticleTitle   string
	Content        string
	SectionHeading string
	AnyHeading     string
	EventBlock     string
	BoldName       string
	LocalDate      string
	TimestampAttr  string
	DurationLabel  string
	RewardItem     string
	RewardQuantity string
	ImageCard      string
	CaptionClass   string
	OGImage        string
	HeaderImage    string
}

// DefaultSelectors matches the wiki's Ghost-based article markup
func DefaultSelectors() Selectors {
	return Selectors{
		ArticleTitle:   "h1.gh-article-title",
		Content:        "section.gh-content",
		SectionHeading: "h4",
		AnyHeading:     "h1,h2,h3,h4",
		EventBlock:     ".event-block",
		BoldName:       `span[style*="font-weight"]`,
		LocalDate:      ".local-date",
		TimestampAttr:  "data-date",
		DurationLabel:  "span",
		RewardItem:     ".reward-item",
		RewardQuantity: ".reward-quantity",
		ImageCard:      "figure.kg-image-card",
		CaptionClass:   "kg-card-hascaption",
		OGImage:        `meta[property="og:image"]`,
		HeaderImage:    ".gh-article-image img",
	}
}

var durationLabelRe = regexp.MustCompile(`(?i)^Duration:\s*`)

// StructuralExtractor parses raw article markup. Event times arrive as UTC
// unix timestamps in a data attribute and are rendered in the reference
// timezone; visible text is the fallback when the attribute is unusable.
type StructuralExtractor struct {
	BaseURL   string
	Selectors Selectors
	Location  *time.Location
}

// NewStructuralExtractor creates an extractor for the given site base URL,
// rendering timestamps in loc
func NewStructuralExtractor(baseURL string, loc *time.Location) *StructuralExtractor {
	if loc == nil {
		loc = time.UTC
	}
	return &StructuralExtractor{
		BaseURL:   baseURL,
		Selectors: DefaultSelectors(),
		Location:  loc,
	}
}

// Extract implements Extractor
func (e *StructuralExtractor) Extract(html string) *EventPage {
	page := &EventPage{Title: DefaultTitle}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return page
	}

	sel := e.Selectors

	if title := helpers.NormalizeSpace(doc.Find(sel.ArticleTitle).First().Text()); title != "" {
		page.Title = title
	} else if title := helpers.NormalizeSpace(doc.Find("title").First().Text()); title != "" {
		page.Title = title
	}

	// Sections: each sub-heading followed by contiguous event-block siblings
	// until the next heading. Other siblings are ignored.
	doc.Find(sel.Content + " " + sel.SectionHeading).Each(func(_ int, h *goquery.Selection) {
		heading := helpers.NormalizeSpace(h.Text())
		if heading == "" {
			return
		}
		for n := h.Next(); n.Length() > 0 && !n.Is(sel.AnyHeading); n = n.Next() {
			if !n.Is(sel.EventBlock) {
				continue
			}
			if line := e.renderBlock(n); line != "" {
				page.AddItem(heading, line)
			}
		}
	})

	// Fallback: synthesize a summary section when structural matching found nothing
	if len(page.Sections) == 0 {
		doc.Find(sel.Content + " p").EachWithBreak(func(_ int, p *goquery.Selection) bool {
			if text := helpers.NormalizeSpace(p.Text()); text != "" {
				page.AddItem(SectionSummary, text)
				return false
			}
			return true
		})
	}

	// Images: uncaptioned figures in the article body, in document order
	doc.Find(sel.Content + " " + sel.ImageCard).Each(func(_ int, fig *goquery.Selection) {
		if fig.HasClass(sel.CaptionClass) {
			return
		}
		if src := fig.Find("img").First().AttrOr("src", ""); src != "" {
			page.AddImage(helpers.ResolveURL(src, e.BaseURL))
		}
	})

	if len(page.Images) == 0 {
		if og := doc.Find(sel.OGImage).First().AttrOr("content", ""); og != "" {
			page.AddImage(helpers.ResolveURL(og, e.BaseURL))
		} else if header := doc.Find(sel.HeaderImage).First().AttrOr("src", ""); header != "" {
			page.AddImage(helpers.ResolveURL(header, e.BaseURL))
		}
	}

	return page
}

// renderBlock flattens one event block into the single-line item encoding
func (e *StructuralExtractor) renderBlock(block *goquery.Selection) string {
	sel := e.Selectors

	name := helpers.NormalizeSpace(block.ChildrenFiltered("div").First().Find(sel.BoldName).First().Text())
	if name == "" {
		name = helpers.NormalizeSpace(block.Find(sel.BoldName).First().Text())
	}
	if name == "" {
		name = strings.TrimSpace(block.Find("img[alt]").First().AttrOr("alt", ""))
	}
	if name == "" {
		name = "Event"
	}

	var dates []string
	block.Find(sel.LocalDate).Each(func(_ int, d *goquery.Selection) {
		text := e.renderDate(d)
		if text != "" {
			dates = append(dates, text)
		}
	})

	var duration string
	block.Find(sel.DurationLabel).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := helpers.NormalizeSpace(s.Text())
		if durationLabelRe.MatchString(text) {
			duration = durationLabelRe.ReplaceAllString(text, "")
			return false
		}
		return true
	})

	var rewards []string
	block.Find(sel.RewardItem).Each(func(_ int, ri *goquery.Selection) {
		qty := strings.TrimSpace(ri.Find(sel.RewardQuantity).Text())
		label := strings.TrimSpace(ri.Find("img[alt]").First().AttrOr("alt", ""))
		if label == "" {
			label = "Reward"
		}
		if qty != "" {
			rewards = append(rewards, label+" x"+qty)
		} else {
			rewards = append(rewards, label)
		}
	})

	line := "**" + name + "**"
	switch {
	case len(dates) >= 2:
		line += " " + rangeDash + " " + dates[0] + " " + rangeArrow + " " + dates[1]
	case len(dates) == 1:
		line += " " + rangeDash + " " + dates[0]
	}
	if duration != "" {
		line += clauseSeparator + "Duration: " + duration
	}
	if len(rewards) > 0 {
		line += clauseSeparator + strings.Join(rewards, rewardSeparator)
	}

	return line
}

// renderDate prefers the raw UTC timestamp attribute over visible text
func (e *StructuralExtractor) renderDate(d *goquery.Selection) string {
	tsStr, ok := d.Attr(e.Selectors.TimestampAttr)
	if !ok || strings.TrimSpace(tsStr) == "" {
		return helpers.NormalizeSpace(d.Text())
	}
	ts, err := strconv.ParseFloat(strings.TrimSpace(tsStr), 64)
	if err != nil {
		return helpers.NormalizeSpace(d.Text())
	}
	return FormatTimestamp(int64(ts), e.Location)
}
