package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameError(t *testing.T) {
	testCases := []struct {
		name     string
		err      *GameError
		expected string
	}{
		{
			name:     "illegal move",
			err:      NewGameError(ErrIllegalMove, "7♣ cannot go on 8♣"),
			expected: "ILLEGAL_MOVE: 7♣ cannot go on 8♣",
		},
		{
			name:     "formatted message",
			err:      Errorf(ErrEmptySource, "tableau %d is empty", 3),
			expected: "EMPTY_SOURCE: tableau 3 is empty",
		},
		{
			name:     "wrapped error",
			err:      WrapError(ErrInternalError, "dealing failed", errors.New("deck is empty")),
			expected: "INTERNAL_ERROR: dealing failed (deck is empty)",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.err.Error())
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("deck is empty")
	err := WrapError(ErrInternalError, "dealing failed", cause)

	assert.ErrorIs(t, err, cause)
}

func TestIsGameError(t *testing.T) {
	err := NewGameError(ErrStockExhausted, "the stock is empty")
	wrapped := fmt.Errorf("stock to waste: %w", err)

	assert.True(t, IsGameError(err, ErrStockExhausted))
	assert.True(t, IsGameError(wrapped, ErrStockExhausted))
	assert.False(t, IsGameError(err, ErrIllegalMove))
	assert.False(t, IsGameError(errors.New("plain"), ErrStockExhausted))
	assert.False(t, IsGameError(nil, ErrStockExhausted))
}

func TestCodeAndMessageOf(t *testing.T) {
	err := fmt.Errorf("tf: %w", NewGameError(ErrIllegalMove, "no"))

	assert.Equal(t, ErrIllegalMove, CodeOf(err))
	assert.Equal(t, "no", MessageOf(err))
	assert.Equal(t, ErrorCode(""), CodeOf(errors.New("plain")))
	assert.Equal(t, "plain", MessageOf(errors.New("plain")))
}
