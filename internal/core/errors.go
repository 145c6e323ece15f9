// Package core defines sentinel errors.
package core

import "errors"

// Sentinel errors, wrapped with fmt.Errorf("...: %w") and matched with errors.Is.
var (
	// Structural errors: terminal for a capture session
	ErrTruncatedRead  = errors.New("evdump: truncated read")
	ErrLengthMismatch = errors.New("evdump: captured length does not match payload size")
	ErrBadMagic       = errors.New("evdump: bad magic number")

	// Per-record errors: recovered by rendering a fallback
	ErrUnknownEventType = errors.New("evdump: unknown event type")
	ErrUnknownCode      = errors.New("evdump: unknown event code")
	ErrCodeOutOfRange   = errors.New("evdump: event code out of range")

	// Session errors
	ErrUnsupportedLinkType = errors.New("evdump: unsupported link type")
	ErrNotSeekable         = errors.New("evdump: byte source is not seekable")

	// Configuration errors
	ErrConfigInvalid = errors.New("evdump: invalid configuration")
)

// IsRecoverable reports whether err only affects the rendering of a single record.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrUnknownEventType) ||
		errors.Is(err, ErrUnknownCode) ||
		errors.Is(err, ErrCodeOutOfRange)
}
