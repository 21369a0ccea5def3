package gateway

import "errors"

// Domain failures. Handlers classify by identity (errors.Is/As), never by
// message text, so renaming a client-facing message cannot break status
// mapping.
var (
	ErrNotFound        = errors.New("gateway not found")
	ErrDeviceNotFound  = errors.New("device not found")
	ErrDuplicate       = errors.New("duplicate gateway name or address")
	ErrInvalidID       = errors.New("invalid gateway id")
	ErrDeviceLimit     = errors.New("device limit reached")
	ErrDuplicateVendor = errors.New("duplicate device vendor")
)

// ValidationError is a structural payload failure. Its message is shown to
// the client verbatim with a 400.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func invalid(msg string) error { return &ValidationError{msg: msg} }
