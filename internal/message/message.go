// Package message defines the chat payload shape produced by the formatter and
// consumed by delivery. It is platform-limit aware but SDK-agnostic.
package message

// Platform limits the formatter must respect when constructing a payload.
// Content chunking at MaxContent is the delivery side's job.
const (
	MaxEmbeds     = 10
	MaxFieldName  = 256
	MaxFieldValue = 1024
	MaxContent    = 2000

	// Ellipsis is appended when text is cut at a limit
	Ellipsis = "…"

	// Spacer renders as an empty field, used for visual separation
	Spacer = "​"
)

// Field is a named value pair within an embed
type Field struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// Image points at an embeddable image
type Image struct {
	URL string `json:"url"`
}

// Footer is small trailing text on an embed
type Footer struct {
	Text string `json:"text"`
}

// Embed is a rich-content block
type Embed struct {
	Title       string  `json:"title,omitempty"`
	URL         string  `json:"url,omitempty"`
	Description string  `json:"description,omitempty"`
	Fields      []Field `json:"fields,omitempty"`
	Image       *Image  `json:"image,omitempty"`
	Footer      *Footer `json:"footer,omitempty"`
}

// Payload is one chat message: plain content plus rich embeds
type Payload struct {
	Content string  `json:"content"`
	Embeds  []Embed `json:"embeds"`
}

// Empty reports whether the payload carries nothing worth sending
func (p Payload) Empty() bool {
	if p.Content != "" {
		return false
	}
	for _, e := range p.Embeds {
		if e.Title != "" || e.Description != "" || len(e.Fields) > 0 || e.Image != nil {
			return false
		}
	}
	return true
}

// TrimTo cuts s to at most n runes; when cut, the last rune is the ellipsis
// marker so the result is exactly n runes long.
func TrimTo(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 0 {
		return ""
	}
	return string(runes[:n-1]) + Ellipsis
}

// SplitContent splits a string into chunks of at most n runes.
// Empty input yields an empty list.
func SplitContent(s string, n int) []string {
	if s == "" || n <= 0 {
		return nil
	}
	runes := []rune(s)
	out := make([]string, 0, (len(runes)+n-1)/n)
	for i := 0; i < len(runes); i += n {
		end := i + n
		if end > len(runes) {
			end = len(runes)
		}
		out = append(out, string(runes[i:end]))
	}
	return out
}

// SpacerField returns the zero-width field used between embed sections
func SpacerField() Field {
	return Field{Name: Spacer, Value: Spacer, Inline: false}
}
