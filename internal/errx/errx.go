// Package errx attaches context to package sentinel errors while keeping
// them matchable with errors.Is.
package errx

import "fmt"

// Wrap joins a sentinel with the underlying cause. Both remain visible to
// errors.Is and errors.As.
func Wrap(sentinel, cause error) error {
	if cause == nil {
		return sentinel
	}
	return fmt.Errorf("%w: %w", sentinel, cause)
}

// With appends a formatted detail to a sentinel. The format usually starts
// with ": " so the message reads "<sentinel>: <detail>".
func With(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w"+format, append([]any{sentinel}, args...)...)
}
