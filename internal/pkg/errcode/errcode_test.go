package errcode

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIsMatchesCopies(t *testing.T) {
	err := fmt.Errorf("save view: %w", ErrUserViewExist.WithDetail("N"))

	assert.True(t, errors.Is(err, ErrUserViewExist))
	assert.False(t, errors.Is(err, ErrCheckOwner))

	e, ok := As(err)
	assert.True(t, ok)
	assert.Equal(t, CodeUserViewExist, e.Code)
	assert.Equal(t, http.StatusBadRequest, e.HTTPStatus)
	assert.Equal(t, "N", e.Detail)
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("decode failed")
	err := ErrInternal.Wrap(cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrInternal)
	assert.Contains(t, err.Error(), "decode failed")
	// 原始哨兵不受影响
	assert.Nil(t, ErrInternal.Unwrap())
}

func TestAsPlainError(t *testing.T) {
	_, ok := As(errors.New("boom"))
	assert.False(t, ok)
}
