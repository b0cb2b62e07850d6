package ladder

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
)

// inflate recovers the payload of one candidate stream. Streams opening
// with the compression magic get their fixed wrapper header stripped and
// the remainder raw-deflated; anything else passes through untouched.
// A failed inflate returns ErrStreamDecompression so the locator can
// skip to the next candidate instead of aborting the parse.
func inflate(data []byte, p Params) ([]byte, error) {
	if len(data) <= p.CompressHeaderLen || data[0] != p.CompressMagic {
		return data, nil
	}

	r := flate.NewReader(bytes.NewReader(data[p.CompressHeaderLen:]))
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStreamDecompression, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: empty inflate output", ErrStreamDecompression)
	}
	return out, nil
}
