// Package errdefs provides error types shared by the packages in this module, such as 'MultiError'.
package errdefs

import (
	"fmt"
	"strings"
)

// MultiError aggregates multiple errors into a single error value, it's used when validating a document so that every
// problem is reported at once rather than one per attempt.
//
// The zero value of MultiError is ready for use.
//
// NOTE: MultiError is not safe for concurrent use and needs to be wrapped in a lock to be shared safely between
// goroutines.
type MultiError struct {
	errs []error

	// Prefix will be printed before the errors in this MultiError.
	Prefix string
	// Separator will separate the errors in this MultiError.
	// If omitted, defaults to "; ".
	Separator string
}

// Add adds a new error to this MultiError, nil errors are ignored.
func (m *MultiError) Add(err error) {
	if err == nil {
		return
	}

	m.errs = append(m.errs, err)
}

// Addf formats and adds a new error to this MultiError, the format string supports the '%w' verb.
func (m *MultiError) Addf(format string, args ...any) {
	m.Add(fmt.Errorf(format, args...))
}

// Len returns the number of errors accumulated.
func (m *MultiError) Len() int {
	return len(m.errs)
}

func (m *MultiError) Error() string {
	if len(m.errs) == 0 {
		return ""
	}

	sep := m.Separator
	if sep == "" {
		sep = "; "
	}

	msgs := make([]string, 0, len(m.errs))
	for _, err := range m.errs {
		msgs = append(msgs, err.Error())
	}

	return m.Prefix + strings.Join(msgs, sep)
}

// Unwrap returns the accumulated errors, allowing 'errors.Is' and 'errors.As' to match any of them.
func (m *MultiError) Unwrap() []error {
	return m.errs
}

// Errors returns the full list of errors accumulated by this MultiError, or nil if there are none.
//
// NOTE: Callers must not modify the returned slice.
func (m *MultiError) Errors() []error {
	return m.errs
}

// ErrOrNil returns this MultiError if it has at least one error, or nil otherwise.
// The intended use case is the following:
//
//	return foo, errs.ErrOrNil()
func (m *MultiError) ErrOrNil() error {
	if len(m.errs) > 0 {
		return m
	}

	return nil
}
