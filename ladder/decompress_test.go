package ladder

import (
	"bytes"
	"errors"
	"testing"

	"github.com/klauspost/compress/flate"
)

// compress wraps raw deflate output in the 2-byte header the
// decompressor strips.
func compress(t *testing.T, payload []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	p := DefaultParams()
	buf.WriteByte(p.CompressMagic)
	buf.WriteByte(0x9C)
	w, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write(payload); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestInflateRoundTrip(t *testing.T) {
	want := []byte("ladder logic payload with repetition repetition repetition")
	got, err := inflate(compress(t, want), DefaultParams())
	if err != nil {
		t.Fatalf("inflate: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("inflate round trip mismatch: got %q", got)
	}
}

func TestInflatePassthroughWithoutMagic(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	got, err := inflate(data, DefaultParams())
	if err != nil {
		t.Fatalf("inflate: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Error("non-magic stream should pass through unchanged")
	}
}

func TestInflateCorruptStream(t *testing.T) {
	p := DefaultParams()
	data := []byte{p.CompressMagic, 0x9C, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	_, err := inflate(data, p)
	if !errors.Is(err, ErrStreamDecompression) {
		t.Errorf("err = %v, want ErrStreamDecompression", err)
	}
}

func TestInflateTinyStream(t *testing.T) {
	p := DefaultParams()
	got, err := inflate([]byte{p.CompressMagic}, p)
	if err != nil {
		t.Fatalf("inflate: %v", err)
	}
	if len(got) != 1 {
		t.Error("stream shorter than the header should pass through")
	}
}
