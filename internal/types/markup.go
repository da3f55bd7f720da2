package types

import (
	"html/template"
	"strings"
)

// Markup is rich text that upstream data entry has already sanitized. It is
// inserted into rendered documents without a second round of HTML escaping,
// so simple markup (bold, italic, line breaks) passes through intact. It is
// never evaluated as script by any renderer.
//
// Only ResumeData.Summary and Project.Description carry this type; every
// other string field is escaped on render. Keeping the bypass in the type
// system makes the trust boundary visible at call sites instead of being an
// implicit convention about field names.
type Markup string

// HTML converts the markup for insertion into an html/template context.
func (m Markup) HTML() template.HTML {
	return template.HTML(m)
}

// Empty reports whether the markup has no renderable content.
func (m Markup) Empty() bool {
	return strings.TrimSpace(string(m)) == ""
}
