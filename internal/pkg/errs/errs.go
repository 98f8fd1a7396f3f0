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

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is matches sentinels attached with Mark as well as wrapped causes.
// The standard library errors.Is does not see marks, so callers that
// branch on domain sentinels must use this instead.
func Is(err, reference error) bool {
	return cr.Is(err, reference)
}
