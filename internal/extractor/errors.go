package extractor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ginjaninja78/cfdi-report/internal/fieldset"
)

// Error kinds. Use errors.Is against these to classify a failure.
var (
	ErrMissingElement    = errors.New("missing element")
	ErrMissingAttribute  = errors.New("missing attribute")
	ErrMalformedDocument = errors.New("malformed document")
)

// Error describes why a descriptor could not be resolved or a document could
// not be read.
type Error struct {
	// Kind is one of ErrMissingElement, ErrMissingAttribute or
	// ErrMalformedDocument.
	Kind error

	// Field is the descriptor name. Empty for ErrMalformedDocument.
	Field string

	// Segment is the path segment that could not be found.
	Segment string

	// Path is the full descriptor path.
	Path []string

	// Err is the underlying parser error, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Kind == ErrMalformedDocument {
		if e.Err != nil {
			return fmt.Sprintf("%s: %v", e.Kind, e.Err)
		}
		return e.Kind.Error()
	}
	return fmt.Sprintf("field %q: %s %q (path %s)",
		e.Field, e.Kind, e.Segment, strings.Join(e.Path, fieldset.PathSeparator))
}

// Is reports whether target is this error's kind.
func (e *Error) Is(target error) bool {
	return target == e.Kind
}

// Unwrap returns the underlying parser error.
func (e *Error) Unwrap() error {
	return e.Err
}
