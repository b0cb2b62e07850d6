package ladder

import "fmt"

// DiagCode identifies a non-fatal condition the decoder worked around.
type DiagCode int

const (
	// DiagAmbiguousBranch: a branch close had no matching open; the
	// decoder reset to the main line and kept going.
	DiagAmbiguousBranch DiagCode = iota + 1
	// DiagIncompleteParams: a timer/counter/sequencer token ran out of
	// readable numeric parameters inside its lookahead window.
	DiagIncompleteParams
	// DiagStreamSkipped: a candidate stream failed decompression and
	// the locator moved on.
	DiagStreamSkipped
)

func (c DiagCode) String() string {
	switch c {
	case DiagAmbiguousBranch:
		return "AmbiguousBranchStructure"
	case DiagIncompleteParams:
		return "IncompleteNumericParameters"
	case DiagStreamSkipped:
		return "StreamSkipped"
	default:
		return fmt.Sprintf("DiagCode(%d)", int(c))
	}
}

// Diagnostic records a best-effort recovery decision. Diagnostics ride
// on the result; they never abort the parse.
type Diagnostic struct {
	Code    DiagCode `json:"-" cbor:"1,keyasint"`
	Name    string   `json:"code" cbor:"2,keyasint"`
	Offset  int      `json:"byteOffset" cbor:"3,keyasint"`
	Message string   `json:"message" cbor:"4,keyasint"`
}

func newDiag(code DiagCode, offset int, format string, args ...any) Diagnostic {
	return Diagnostic{
		Code:    code,
		Name:    code.String(),
		Offset:  offset,
		Message: fmt.Sprintf(format, args...),
	}
}
