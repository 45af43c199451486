package types

import (
	"errors"
	"fmt"
)

// ErrorCode represents a specific error type
type ErrorCode string

const (
	// Move errors
	ErrIllegalMove    ErrorCode = "ILLEGAL_MOVE"
	ErrEmptySource    ErrorCode = "EMPTY_SOURCE"
	ErrStockExhausted ErrorCode = "STOCK_EXHAUSTED"

	// Input errors
	ErrInvalidCommand ErrorCode = "INVALID_COMMAND"

	// System errors
	ErrInternalError ErrorCode = "INTERNAL_ERROR"
)

// GameError represents a game-related error
type GameError struct {
	Code    ErrorCode
	Message string
	Err     error // Underlying error, if any
}

// Error implements the error interface
func (e *GameError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *GameError) Unwrap() error {
	return e.Err
}

// NewGameError creates a new GameError
func NewGameError(code ErrorCode, message string) *GameError {
	return &GameError{
		Code:    code,
		Message: message,
	}
}

// Errorf creates a new GameError with a formatted message
func Errorf(code ErrorCode, format string, args ...interface{}) *GameError {
	return NewGameError(code, fmt.Sprintf(format, args...))
}

// WrapError wraps an existing error in a GameError
func WrapError(code ErrorCode, message string, err error) *GameError {
	return &GameError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsGameError checks if an error is a GameError and has a specific code
func IsGameError(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}

// CodeOf returns the code of the first GameError in err's chain, or "" if there is none
func CodeOf(err error) ErrorCode {
	var gameErr *GameError
	if !errors.As(err, &gameErr) {
		return ""
	}
	return gameErr.Code
}

// MessageOf returns the player-facing message of a GameError, falling back
// to err.Error() for anything else
func MessageOf(err error) string {
	var gameErr *GameError
	if errors.As(err, &gameErr) {
		return gameErr.Message
	}
	return err.Error()
}
