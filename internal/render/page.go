package render

// Platform display limits. Values below the hard platform caps are deliberate so
// pages stay readable on small screens.
const (
	MaxTitleLen       = 256
	MaxDescriptionLen = 2048
	MaxFieldNameLen   = 256
	MaxFieldValueLen  = 512
	MaxFieldsPerPage  = 25
)

// NoDataMarker is the visible indicator carried by pages rendered from an empty or
// failed payload.
const NoDataMarker = "No data available"

type Field struct {
	Name   string
	Value  string
	Inline bool
}

// Page is a single bounded display unit. All strings are truncated at construction;
// a populated Page never exceeds platform size limits.
type Page struct {
	Title       string
	Description string
	Fields      []Field
	Footer      string
}

// Pages is an ordered, non-empty sequence of pages. Rendering never produces an
// empty sequence; empty source data yields a single no-data page.
type Pages []Page

// AddField appends a field with name and value truncated to their limits. Pages
// silently drop fields beyond the platform cap.
func (p *Page) AddField(name, value string, inline bool) {
	if len(p.Fields) >= MaxFieldsPerPage {
		return
	}

	if name == "" {
		name = "​"
	}
	if value == "" {
		value = "​"
	}

	p.Fields = append(p.Fields, Field{
		Name:   Truncate(name, MaxFieldNameLen),
		Value:  Truncate(value, MaxFieldValueLen),
		Inline: inline,
	})
}

// NewPage constructs a page with title and description truncated to their limits.
func NewPage(title, description string) Page {
	return Page{
		Title:       Truncate(title, MaxTitleLen),
		Description: Truncate(description, MaxDescriptionLen),
	}
}

// NoDataPage is the single page produced for empty or failed payloads.
func NoDataPage(title string) Page {
	return NewPage(title, "⚠️ "+NoDataMarker)
}

// Truncate bounds a string to limit characters. Truncated strings are exactly limit
// characters long including a trailing ellipsis of three dots. Limits below the
// ellipsis length cut without one.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}

	r := []rune(s)
	if len(r) <= limit {
		return s
	}

	if limit <= 3 {
		return string(r[:limit])
	}

	return string(r[:limit-3]) + "..."
}
