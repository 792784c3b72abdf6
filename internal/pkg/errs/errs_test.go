//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"session-ledger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestKind(t *testing.T) {
	errBookingMissing := errs.Kind("booking missing", errs.ErrNotFound)
	errGrantMissing := errs.Kind("grant missing", errs.ErrNotFound)

	t.Run("sentinel matches its kind", func(t *testing.T) {
		assert.True(t, errs.Is(errBookingMissing, errs.ErrNotFound))
		assert.True(t, errs.Is(errBookingMissing, errBookingMissing))
		assert.True(t, errors.Is(errBookingMissing, errs.ErrNotFound))
	})

	t.Run("sentinels of the same kind stay distinct", func(t *testing.T) {
		assert.False(t, errs.Is(errBookingMissing, errGrantMissing))
		assert.False(t, errs.Is(errGrantMissing, errBookingMissing))
	})

	t.Run("wrapped sentinel keeps its kind", func(t *testing.T) {
		wrapped := errs.Wrap(errBookingMissing, "load booking")
		assert.True(t, errs.Is(wrapped, errs.ErrNotFound))
		assert.True(t, errs.Is(wrapped, errBookingMissing))
		assert.False(t, errs.Is(wrapped, errs.ErrForbidden))
	})

	t.Run("WithCause keeps the sentinel primary", func(t *testing.T) {
		cause := errors.New("no rows in result set")
		err := errs.WithCause(errBookingMissing, cause)
		assert.True(t, errs.Is(err, errBookingMissing))
		assert.True(t, errs.Is(err, errs.ErrNotFound))
		assert.Equal(t, "booking missing", err.Error())
		assert.Equal(t, errBookingMissing, errs.WithCause(errBookingMissing, nil))
	})

	t.Run("KindOf", func(t *testing.T) {
		assert.Equal(t, errs.ErrNotFound, errs.KindOf(errs.Wrap(errBookingMissing, "x")))
		assert.Equal(t, errs.ErrInvalidArgument, errs.KindOf(errs.ErrInvalidArgument))
		assert.Nil(t, errs.KindOf(errors.New("boom")))
		assert.Nil(t, errs.KindOf(nil))
	})

	t.Run("Mark on nil returns the mark", func(t *testing.T) {
		assert.Equal(t, errs.ErrInvalidState, errs.Mark(nil, errs.ErrInvalidState))
	})

	t.Run("Wrap on nil stays nil", func(t *testing.T) {
		assert.NoError(t, errs.Wrap(nil, "noop"))
	})
}
