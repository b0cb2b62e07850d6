package ladder

import "strconv"

// maxTokenLen caps the length prefix of an ASCII token. Real address and
// numeric tokens never approach this; larger prefixes are payload noise.
const maxTokenLen = 48

// scanResult is everything one pass over the payload recovers. Rung and
// file boundaries are byte offsets the assembler groups by.
type scanResult struct {
	instructions []Instruction
	rungBounds   []int
	fileBounds   []int
	diags        []Diagnostic
}

// branchCtx is one open branch level. leg counts sibling paths at this
// level; numbering continues across sibling structures within a rung so
// legs stay unique per (rung, level).
type branchCtx struct {
	leg uint32
}

// scan walks the decompressed payload once, recognizing instruction
// markers, branch topology markers, and rung/file boundaries. All
// decisions operate on byte offsets in the binary buffer; no text
// re-projection is consulted for positions or lengths.
func scan(payload []byte, p Params) scanResult {
	var sr scanResult
	var stack []branchCtx
	nextLeg := map[int]uint32{} // per-level first leg for the next structure
	pendingStart := false
	branchLost := false // set after an unmatched close, until the next rung

	i := 0
	for i+1 < len(payload) {
		switch {
		case payload[i] == p.RungMarker[0] && payload[i+1] == p.RungMarker[1]:
			sr.rungBounds = append(sr.rungBounds, i)
			stack = stack[:0]
			nextLeg = map[int]uint32{}
			pendingStart = false
			branchLost = false
			i += 2

		case payload[i] == p.FileMarker[0] && payload[i+1] == p.FileMarker[1]:
			sr.fileBounds = append(sr.fileBounds, i)
			stack = stack[:0]
			nextLeg = map[int]uint32{}
			pendingStart = false
			branchLost = false
			i += 2

		case payload[i] == p.BranchStartMarker[0] && payload[i+1] == p.BranchStartMarker[1]:
			if !branchLost {
				stack = append(stack, branchCtx{leg: nextLeg[len(stack)+1]})
				pendingStart = true
			}
			i += 2

		case payload[i] == p.BranchLegMarker[0] && payload[i+1] == p.BranchLegMarker[1]:
			if len(stack) == 0 {
				if !branchLost {
					sr.diags = append(sr.diags, newDiag(DiagAmbiguousBranch, i,
						"branch leg marker outside any open branch"))
					branchLost = true
				}
			} else {
				stack[len(stack)-1].leg++
			}
			i += 2

		case payload[i] == p.BranchCloseMarker[0] && payload[i+1] == p.BranchCloseMarker[1]:
			if len(stack) == 0 {
				if !branchLost {
					sr.diags = append(sr.diags, newDiag(DiagAmbiguousBranch, i,
						"branch close with no matching open"))
					branchLost = true
				}
			} else {
				nextLeg[len(stack)] = stack[len(stack)-1].leg + 1
				stack = stack[:len(stack)-1]
				if len(stack) == 0 {
					pendingStart = false
				}
			}
			i += 2

		case payload[i] == p.InstructionMarker[0] && payload[i+1] == p.InstructionMarker[1]:
			inst, consumed, ok := decodeInstruction(payload, i, p, &sr)
			if !ok {
				i += 2
				continue
			}
			if len(stack) > 0 && !branchLost {
				inst.Branch = &Branch{
					Level: uint32(len(stack)),
					Leg:   stack[len(stack)-1].leg,
					Start: pendingStart,
				}
				pendingStart = false
			}
			sr.instructions = append(sr.instructions, inst)
			i += consumed

		default:
			i++
		}
	}

	return sr
}

// decodeInstruction attempts to decode one instruction occurrence at
// offset off, which must point at the 2-byte marker prefix. The layout
// is marker, type byte, zero separator, length-prefixed ASCII address.
// Invalid addresses are an expected, frequent event under heuristic
// scanning and silently reject the occurrence.
func decodeInstruction(payload []byte, off int, p Params, sr *scanResult) (Instruction, int, bool) {
	if off+4 >= len(payload) {
		return Instruction{}, 0, false
	}
	op := Op(payload[off+2])
	if !op.Known() || payload[off+3] != 0x00 {
		return Instruction{}, 0, false
	}

	tok, n, ok := readToken(payload, off+4)
	if !ok {
		return Instruction{}, 0, false
	}
	addr, err := ParseAddress(tok)
	if err != nil {
		return Instruction{}, 0, false
	}

	inst := Instruction{
		Op:       op,
		Mnemonic: op.Mnemonic(),
		Address:  addr,
		Offset:   off,
	}
	consumed := 4 + n
	after := off + consumed

	switch op.Category() {
	case CatTimer:
		vals, used := scanNumerics(payload, after, p.TimerWindow, 3)
		t := &TimerParams{}
		if len(vals) > 0 {
			t.Base = vals[0]
		}
		if len(vals) > 1 {
			t.Preset = int(vals[1])
		}
		if len(vals) > 2 {
			t.Accum = int(vals[2])
		}
		if len(vals) < 3 {
			t.Partial = true
			sr.diags = append(sr.diags, newDiag(DiagIncompleteParams, off,
				"%s %s: read %d of 3 timer parameters", op.Mnemonic(), addr, len(vals)))
		}
		inst.Timer = t
		consumed += used

	case CatCounter:
		vals, used := scanNumerics(payload, after, p.CounterWindow, 2)
		c := &CounterParams{}
		if len(vals) > 0 {
			c.Preset = int(vals[0])
		}
		if len(vals) > 1 {
			c.Accum = int(vals[1])
		}
		if len(vals) < 2 {
			c.Partial = true
			sr.diags = append(sr.diags, newDiag(DiagIncompleteParams, off,
				"%s %s: read %d of 2 counter parameters", op.Mnemonic(), addr, len(vals)))
		}
		inst.Counter = c
		consumed += used

	case CatSequencer:
		vals, used := scanNumerics(payload, after, p.SequencerWindow, 3)
		s := &SequencerParams{}
		if len(vals) > 0 {
			s.Length = int(vals[0])
		}
		if len(vals) > 1 {
			s.Position = int(vals[1])
		}
		if len(vals) > 2 {
			s.Mask = int(vals[2])
		}
		if len(vals) < 3 {
			s.Partial = true
			sr.diags = append(sr.diags, newDiag(DiagIncompleteParams, off,
				"%s %s: read %d of 3 sequencer parameters", op.Mnemonic(), addr, len(vals)))
		}
		inst.Sequencer = s
		consumed += used

	case CatMove:
		inst.Move = resolveMoveSource(payload, off, p)
	}

	return inst, consumed, true
}

// readToken reads a length-prefixed printable-ASCII token at off.
// Returns the token, the bytes consumed including the prefix, and
// whether the read succeeded.
func readToken(payload []byte, off int) (string, int, bool) {
	if off >= len(payload) {
		return "", 0, false
	}
	n := int(payload[off])
	if n == 0 || n > maxTokenLen || off+1+n > len(payload) {
		return "", 0, false
	}
	for _, b := range payload[off+1 : off+1+n] {
		if b < 0x20 || b > 0x7E {
			return "", 0, false
		}
	}
	return string(payload[off+1 : off+1+n]), 1 + n, true
}

// readNumeric reads a length-prefixed decimal token: digits with an
// optional leading '-' and at most one '.'.
func readNumeric(payload []byte, off int) (float64, int, bool) {
	tok, n, ok := readToken(payload, off)
	if !ok {
		return 0, 0, false
	}
	if !numericShape(tok) {
		return 0, 0, false
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, 0, false
	}
	return v, n, true
}

func numericShape(s string) bool {
	if s == "" {
		return false
	}
	i := 0
	if s[0] == '-' {
		i = 1
		if len(s) == 1 {
			return false
		}
	}
	dot := false
	digits := 0
	for ; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
			digits++
		case s[i] == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return digits > 0
}

// scanNumerics reads up to arity numeric tokens starting at off, never
// looking past window bytes. A malformed token ends the scan; partial
// results are acceptable.
func scanNumerics(payload []byte, off, window, arity int) ([]float64, int) {
	var vals []float64
	pos := off
	for len(vals) < arity && pos-off < window {
		v, n, ok := readNumeric(payload, pos)
		if !ok {
			break
		}
		vals = append(vals, v)
		pos += n
	}
	return vals, pos - off
}

// resolveMoveSource searches backward from a move instruction's marker
// for the source operand: either a numeric constant or another valid
// address token ending just before the marker. The closest match wins;
// at equal distance a numeric constant beats an address. Finding
// neither is not an error — the move is recorded without a source.
func resolveMoveSource(payload []byte, markerOff int, p Params) *MoveParams {
	m := &MoveParams{}
	lo := markerOff - p.MoveSourceWindow
	if lo < 0 {
		lo = 0
	}
	for j := markerOff - 2; j >= lo; j-- {
		if v, n, ok := readNumeric(payload, j); ok && j+n <= markerOff {
			m.HasConstant = true
			m.Constant = v
			return m
		}
		if tok, n, ok := readToken(payload, j); ok && j+n <= markerOff {
			if addr, err := ParseAddress(tok); err == nil {
				m.Source = &addr
				return m
			}
		}
	}
	return m
}
