// Package container exposes the named streams of a compound binary
// document. Directory parsing itself is delegated to an external reader;
// the extraction engine only ever selects streams by name.
package container

import "errors"

var (
	// ErrNotCompound means the buffer does not parse as a compound
	// document despite whatever its signature claimed.
	ErrNotCompound = errors.New("container: not a compound document")
	// ErrEmptyDocument means the document parsed but holds no streams.
	ErrEmptyDocument = errors.New("container: document has no streams")
)

// Stream is one named byte range inside a compound document. Name is the
// slash-joined storage path, e.g. "Project/Program Files".
type Stream struct {
	Name string
	Data []byte
}

// Opener turns a raw buffer into the document's streams. The engine
// accepts this interface so tests and alternative container readers can
// substitute for the production CFB adapter.
type Opener interface {
	Open(data []byte) ([]Stream, error)
}
