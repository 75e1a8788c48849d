package bitvec

import (
	"fmt"

	"github.com/hupe1980/bitvec/blobstore"
	"github.com/hupe1980/bitvec/snapshot"
)

var (
	// ErrNotFound is returned when a snapshot does not exist.
	ErrNotFound = blobstore.ErrNotFound
	// ErrInvalidName is returned for names the blob store cannot address.
	ErrInvalidName = blobstore.ErrInvalidName
	// ErrCorrupt is returned when a stored snapshot is malformed.
	ErrCorrupt = snapshot.ErrCorrupt
	// ErrChecksumMismatch is returned when a stored snapshot fails its CRC.
	ErrChecksumMismatch = snapshot.ErrChecksumMismatch
	// ErrUnsupportedVersion is returned for snapshots written by a newer format.
	ErrUnsupportedVersion = snapshot.ErrUnsupportedVersion
)

// ErrSnapshot reports a failed Store operation on a named snapshot.
//
// The underlying error can be accessed via errors.Unwrap.
type ErrSnapshot struct {
	Name  string
	Op    string
	cause error
}

func (e *ErrSnapshot) Error() string {
	return fmt.Sprintf("bitvec: %s %q: %v", e.Op, e.Name, e.cause)
}

func (e *ErrSnapshot) Unwrap() error { return e.cause }

func snapshotError(op, name string, err error) error {
	if err == nil {
		return nil
	}
	return &ErrSnapshot{Name: name, Op: op, cause: err}
}
