package verifier

import "fmt"

// NavigationError means the document could not be loaded.
type NavigationError struct {
	URL string
	Err error
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("navigate %s: %v", e.URL, e.Err)
}

func (e *NavigationError) Unwrap() error { return e.Err }

// MissingElementError means no element matched the selector, or the
// matched element carries no content attribute.
type MissingElementError struct {
	Selector string
}

func (e *MissingElementError) Error() string {
	return fmt.Sprintf("no element matched %s with a content attribute", e.Selector)
}

// DirectiveError means a required directive is absent from the
// attribute that was read.
type DirectiveError struct {
	Directive string
	Content   string
}

func (e *DirectiveError) Error() string {
	return fmt.Sprintf("viewport content %q is missing required directive %q", e.Content, e.Directive)
}
