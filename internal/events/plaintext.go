package events

import (
	"regexp"
	"strings"
)

var (
	plainTitleRe   = regexp.MustCompile(`^\*\*(.+)\*\*$`)
	plainHeadingRe = regexp.MustCompile(`^__([^_]+)__`)
)

// PlainTextExtractor reads the message-like plain rendering of a page: a
// bolded title line, underlined section headers, and bullet items. It performs
// no timestamp conversion since the lines already carry display-ready text.
type PlainTextExtractor struct{}

// NewPlainTextExtractor creates the plain-text extraction strategy
func NewPlainTextExtractor() *PlainTextExtractor {
	return &PlainTextExtractor{}
}

// Extract implements Extractor
func (e *PlainTextExtractor) Extract(text string) *EventPage {
	page := &EventPage{}
	current := ""

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(strings.TrimSuffix(raw, "\r"))
		if line == "" {
			continue
		}

		if page.Title == "" {
			if m := plainTitleRe.FindStringSubmatch(line); m != nil {
				page.Title = strings.TrimSpace(m[1])
				continue
			}
		}

		if m := plainHeadingRe.FindStringSubmatch(line); m != nil {
			current = strings.TrimSpace(m[1])
			continue
		}

		if current != "" && strings.HasPrefix(line, "•") {
			// Strip the bullet glyph so both extraction strategies emit the
			// same item encoding.
			page.AddItem(current, bulletPrefixRe.ReplaceAllString(line, ""))
		}
	}

	if page.Title == "" {
		page.Title = DefaultTitle
	}

	return page
}
