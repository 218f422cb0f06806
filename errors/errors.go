package errors

import "fmt"

var (
	ErrNotFound           = fmt.Errorf("record not found")
	ErrNotInitialized     = fmt.Errorf("board is not initialized")
	ErrAlreadyInitialized = fmt.Errorf("board is already initialized")
	ErrCountOverflow      = fmt.Errorf("count overflow")
	ErrInvalidRequest     = fmt.Errorf("invalid request")
	ErrUnknownVariant     = fmt.Errorf("unknown message variant")
	ErrUnsupportedVersion = fmt.Errorf("unsupported state version")
	ErrMissingSender      = fmt.Errorf("sender identity is missing")
	ErrTokenGeneration    = fmt.Errorf("token generation failed")
)
