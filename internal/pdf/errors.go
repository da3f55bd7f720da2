// Package pdf converts a composed resume document into a paginated PDF using
// a headless browser, with a typed error taxonomy so callers can tell
// "try again" failures from "contact support" failures.
package pdf

import (
	"fmt"
	"time"
)

// BrowserError is an environment failure: the headless browser could not be
// launched or produced unusable output. Fatal for the attempt, surfaced as a
// 5xx-class error.
type BrowserError struct {
	Message string
	Cause   error
}

func (e *BrowserError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("browser error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("browser error: %s", e.Message)
}

func (e *BrowserError) Unwrap() error {
	return e.Cause
}

// DocumentError is a document generation failure before any browser is
// launched. Cheap to retry after the underlying template problem is fixed.
type DocumentError struct {
	Message string
	Cause   error
}

func (e *DocumentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("document error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("document error: %s", e.Message)
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}

// EmptyContentError means the composed document had too little text content
// to be worth exporting. It guards against silently producing a blank page
// and is raised before any browser is launched.
type EmptyContentError struct {
	Length    int
	Threshold int
}

func (e *EmptyContentError) Error() string {
	return fmt.Sprintf("empty content: document text length %d is below threshold %d", e.Length, e.Threshold)
}

// RenderTimeoutError means the page render exceeded its deadline on both the
// initial attempt and the single retry.
type RenderTimeoutError struct {
	Timeout time.Duration
	Cause   error
}

func (e *RenderTimeoutError) Error() string {
	return fmt.Sprintf("render timeout: page did not render within %s", e.Timeout)
}

func (e *RenderTimeoutError) Unwrap() error {
	return e.Cause
}
