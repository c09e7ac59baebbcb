package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrConfigParse, "bad document")
	assert.Equal(t, ErrConfigParse, err.Code)
	assert.Equal(t, "[CONFIG_PARSE] bad document", err.Error())
}

func TestWrap(t *testing.T) {
	t.Run("wraps underlying error", func(t *testing.T) {
		inner := fmt.Errorf("unexpected end of JSON input")
		err := Wrap(inner, ErrConfigLoad, "failed to read configuration")
		require.NotNil(t, err)
		assert.Contains(t, err.Error(), "CONFIG_LOAD")
		assert.Contains(t, err.Error(), "unexpected end of JSON input")
		assert.Equal(t, inner, errors.Unwrap(err))
	})

	t.Run("nil error wraps to nil", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, ErrConfigLoad, "ignored"))
	})
}

func TestIsErrorCode(t *testing.T) {
	err := Newf(ErrConfigVersion, "version %d exceeds current", 9)
	assert.True(t, IsErrorCode(err, ErrConfigVersion))
	assert.False(t, IsErrorCode(err, ErrConfigParse))

	wrapped := fmt.Errorf("outer: %w", err)
	assert.True(t, IsErrorCode(wrapped, ErrConfigVersion))

	assert.False(t, IsErrorCode(errors.New("plain"), ErrConfigVersion))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrCategoryInvalid, GetErrorCode(New(ErrCategoryInvalid, "bad type")))
	assert.Equal(t, ErrUnknown, GetErrorCode(errors.New("plain")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrFilterInvalid, "empty filter list").
		WithDetail("subcategory", "Plates")
	assert.Equal(t, "Plates", err.Details["subcategory"])
}

func TestIs(t *testing.T) {
	a := New(ErrConfigVersion, "one message")
	b := New(ErrConfigVersion, "another message")
	assert.True(t, errors.Is(a, b))
	assert.False(t, errors.Is(a, New(ErrConfigLoad, "different code")))
}
