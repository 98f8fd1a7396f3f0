//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"roombooking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestIs_SeesMarkedSentinels(t *testing.T) {
	cause := errs.New("connection refused")
	err := errs.Mark(cause, errs.ErrUpstreamUnavailable)

	assert.True(t, errs.Is(err, errs.ErrUpstreamUnavailable))
	// The mark is metadata, not a wrap, so the standard library misses it.
	assert.False(t, errors.Is(err, errs.ErrUpstreamUnavailable))
}

func TestIs_SeesMarksThroughWrapping(t *testing.T) {
	cause := errs.New("row scan failed")
	err := errs.Wrap(errs.Mark(cause, errs.ErrBookingNotFound), "load booking")

	assert.True(t, errs.Is(err, errs.ErrBookingNotFound))
	assert.False(t, errs.Is(err, errs.ErrRoomNotFound))
}

func TestIs_MatchesBareAndWrappedCauses(t *testing.T) {
	assert.True(t, errs.Is(errs.ErrValidation, errs.ErrValidation))
	assert.True(t, errs.Is(errs.Wrap(errs.ErrValidation, "bad date"), errs.ErrValidation))
	assert.False(t, errs.Is(nil, errs.ErrValidation))
}

func TestMark_NilErrReturnsMarker(t *testing.T) {
	assert.Equal(t, errs.ErrValidation, errs.Mark(nil, errs.ErrValidation))
	assert.Nil(t, errs.Wrap(nil, "ignored"))
}
