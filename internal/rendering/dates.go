// Package rendering turns a resume data model into a composed, self-contained
// HTML document through per-section renderers and a template composer.
package rendering

import (
	"strings"
	"time"
)

// PresentLabel is rendered for positions with Current=true, regardless of any
// end date the entry carries.
const PresentLabel = "Present"

// dateLayouts are the accepted input layouts, tried in order. The editor
// writes "2006-01"; the rest cover data imported from other sources.
var dateLayouts = []string{
	"2006-01",
	"2006-01-02",
	"01/2006",
	"2006",
}

// FormatDate formats a raw date string at month/year granularity ("Jan 2023").
// Year-only input stays year-only. Unparseable input is returned verbatim
// rather than failing: malformed dates are a data error recovered locally.
func FormatDate(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, trimmed)
		if err != nil {
			continue
		}
		if layout == "2006" {
			return t.Format("2006")
		}
		return t.Format("Jan 2006")
	}
	return trimmed
}

// FormatDateRange renders "start – end". Current=true overrides the end date
// with the Present label. Either side may be absent.
func FormatDateRange(start, end string, current bool) string {
	s := FormatDate(start)
	e := FormatDate(end)
	if current {
		e = PresentLabel
	}
	switch {
	case s == "" && e == "":
		return ""
	case s == "":
		return e
	case e == "":
		return s
	}
	return s + " – " + e
}
