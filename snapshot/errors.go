package snapshot

import (
	"errors"
	"fmt"
)

var (
	// ErrCorrupt means the frame is malformed or truncated.
	ErrCorrupt = errors.New("snapshot corrupt")
	// ErrChecksumMismatch means the CRC32-C trailer does not match.
	ErrChecksumMismatch = errors.New("snapshot checksum mismatch")
	// ErrUnsupportedVersion means the frame was written by an unknown format
	// version.
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")
)

// ErrFormat describes why a frame could not be decoded.
//
// The underlying cause can be accessed via errors.Unwrap.
type ErrFormat struct {
	Reason string
	cause  error
}

func formatError(reason string, cause error) *ErrFormat {
	return &ErrFormat{Reason: reason, cause: cause}
}

func (e *ErrFormat) Error() string {
	return fmt.Sprintf("snapshot: %s: %v", e.Reason, e.cause)
}

func (e *ErrFormat) Unwrap() error { return e.cause }
