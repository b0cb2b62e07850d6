package container

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/richardlehane/mscfb"
)

// CFBOpener reads compound file binary (OLE) documents via mscfb.
type CFBOpener struct{}

// Open parses the buffer as a compound document and returns every stream
// entry with its content. Storage (directory) entries carry no bytes and
// are skipped; their names survive as path components of child streams.
func (CFBOpener) Open(data []byte) ([]Stream, error) {
	doc, err := mscfb.New(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotCompound, err)
	}

	var streams []Stream
	for {
		entry, err := doc.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// A torn directory entry ends the walk; whatever was
			// already collected is still usable.
			break
		}
		if entry.Size == 0 {
			continue
		}

		content, err := io.ReadAll(entry)
		if err != nil {
			continue
		}

		name := entry.Name
		if len(entry.Path) > 0 {
			name = strings.Join(entry.Path, "/") + "/" + entry.Name
		}
		streams = append(streams, Stream{Name: name, Data: content})
	}

	if len(streams) == 0 {
		return nil, ErrEmptyDocument
	}
	return streams, nil
}
