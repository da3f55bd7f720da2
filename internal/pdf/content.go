package pdf

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// MinContentLength is the minimum rendered text length (whitespace-trimmed)
// for a document to be exportable. Below it the export fails with
// EmptyContentError before any browser is launched. The guard exists so a
// timing race upstream can never silently ship a blank page.
const MinContentLength = 10

// textContent extracts the visible text of a composed document's body.
func textContent(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}
	return doc.Find("body").Text(), nil
}

// checkContent enforces the empty-content guard on a composed document.
func checkContent(html string) error {
	text, err := textContent(html)
	if err != nil {
		return &DocumentError{Message: "failed to inspect document content", Cause: err}
	}
	length := len(strings.TrimSpace(text))
	if length < MinContentLength {
		return &EmptyContentError{Length: length, Threshold: MinContentLength}
	}
	return nil
}
