// Package errs narrows the cockroachdb/errors surface to the three
// operations the codebase uses: wrapping with context, creating leaf
// errors, and marking an error with a sentinel for errors.Is checks.
package errs

import (
	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark attaches markErr as an equivalence mark so errors.Is(err,
// markErr) holds while the original cause is preserved.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}
