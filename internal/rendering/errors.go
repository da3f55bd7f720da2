package rendering

import "fmt"

// TemplateError reports a failure parsing or executing a section or page
// template. These indicate a packaging bug, not bad resume data.
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// ComposeError reports a structural precondition failure in the composer.
// Missing or malformed optional fields never produce one; only an absent
// resume does.
type ComposeError struct {
	Message string
}

func (e *ComposeError) Error() string {
	return fmt.Sprintf("compose error: %s", e.Message)
}
