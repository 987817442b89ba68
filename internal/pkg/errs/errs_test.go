//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumiere-guest-api/internal/pkg/errs"
)

func TestMark(t *testing.T) {
	sentinel := errs.New("no booking draft")

	t.Run("sentinel is matchable with errors.Is", func(t *testing.T) {
		cause := errs.New("key not found")
		marked := errs.Mark(cause, sentinel)

		assert.True(t, errors.Is(marked, sentinel))
	})

	t.Run("cause stays in the chain", func(t *testing.T) {
		cause := errs.New("key not found")
		marked := errs.Mark(cause, sentinel)

		assert.True(t, errors.Is(marked, cause))
	})

	t.Run("nil cause yields the sentinel itself", func(t *testing.T) {
		marked := errs.Mark(nil, sentinel)

		require.Error(t, marked)
		assert.True(t, errors.Is(marked, sentinel))
	})
}

func TestWrap(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, errs.Wrap(nil, "fetch draft"))
	})

	t.Run("wrapped error keeps the original in the chain", func(t *testing.T) {
		cause := errs.New("connection refused")
		wrapped := errs.Wrap(cause, "fetch draft")

		assert.True(t, errors.Is(wrapped, cause))
		assert.Contains(t, wrapped.Error(), "fetch draft")
	})
}
