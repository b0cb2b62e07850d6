package ladder

import (
	"encoding/binary"
	"math"
)

// Register block header layout, relative to the block marker:
//
//	[0:2]  block marker
//	[2]    file-type code
//	[3]    reserved
//	[4:6]  element count (LE)
//	[6:8]  words per element (LE)
//	[8:16] reserved
//	[16]   zero separator
//
// Element data follows at offset 17, 16-bit words, little endian. All
// of this is empirical; see Params.
const (
	regHeaderSize   = 17
	regFileTypeOff  = 2
	regElemCountOff = 4
	regWordsOff     = 6
	regSeparatorOff = 16
	maxWordsPerElem = 64
)

// regFileTypeCodes is the closed mapping from header type codes to
// file-type letter prefixes. Codes outside it reject the header.
var regFileTypeCodes = map[byte]string{
	0x82: "O",
	0x83: "I",
	0x84: "S",
	0x85: "B",
	0x86: "T",
	0x87: "C",
	0x88: "R",
	0x89: "N",
	0x8A: "F",
}

// floatExpLo/floatExpHi bound the IEEE-754 exponent field of plausible
// register floats (roughly 1e-3 .. 1e3). Word pairs whose exponent
// lands outside decode as 16-bit integers instead.
const (
	floatExpLo = 118
	floatExpHi = 135
)

// scanRegisters walks the data storage stream for register blocks and
// extracts element values. counters carries the running per-type element
// index, seeded from the well-known default file numbers; passing it in
// explicitly keeps the extractor reentrant.
func scanRegisters(data []byte, p Params, counters map[string]int) []RegisterValue {
	var out []RegisterValue

	i := 0
	for i+regHeaderSize <= len(data) {
		if data[i] != p.RegisterMarker[0] || data[i+1] != p.RegisterMarker[1] {
			i++
			continue
		}

		prefix, ok := regFileTypeCodes[data[i+regFileTypeOff]]
		if !ok || data[i+regSeparatorOff] != 0x00 {
			i += 2
			continue
		}

		count := int(binary.LittleEndian.Uint16(data[i+regElemCountOff:]))
		words := int(binary.LittleEndian.Uint16(data[i+regWordsOff:]))

		// False-positive gates: zero or implausibly large blocks are
		// payload noise that happened to match the marker.
		if count == 0 || count > p.MaxElements || words == 0 || words > maxWordsPerElem {
			i += 2
			continue
		}

		body := i + regHeaderSize
		size := count * words * 2
		if body+size > len(data) {
			i += 2
			continue
		}

		fileNum := defaultFileNumbers[prefix]
		base := counters[prefix]

		switch prefix {
		case "T", "C":
			// Timer/counter elements carry status, preset, accumulator
			// words; preset and accumulator surface as subfield values.
			if words >= 3 {
				for e := 0; e < count; e++ {
					at := body + e*words*2
					preset := int32(int16(binary.LittleEndian.Uint16(data[at+2:])))
					accum := int32(int16(binary.LittleEndian.Uint16(data[at+4:])))
					elem := base + e
					out = append(out,
						RegisterValue{
							Address: Address{Prefix: prefix, FileNumber: fileNum, Element: elem, Bit: -1, Subfield: "PRE"},
							Int:     preset,
						},
						RegisterValue{
							Address: Address{Prefix: prefix, FileNumber: fileNum, Element: elem, Bit: -1, Subfield: "ACC"},
							Int:     accum,
						})
				}
			}

		default:
			for e := 0; e < count; e++ {
				at := body + e*words*2
				rv := RegisterValue{
					Address: Address{Prefix: prefix, FileNumber: fileNum, Element: base + e, Bit: -1},
				}
				if words >= 2 && (prefix == "F" || looksLikeFloat(data[at:])) {
					bits := binary.LittleEndian.Uint32(data[at:])
					f := math.Float32frombits(bits)
					if f == 0 {
						continue // unused element
					}
					rv.Float = f
					rv.IsFloat = true
				} else {
					v := int32(int16(binary.LittleEndian.Uint16(data[at:])))
					if v == 0 {
						continue // unused element
					}
					rv.Int = v
				}
				out = append(out, rv)
			}
		}

		counters[prefix] = base + count
		i = body + size
	}

	return out
}

// looksLikeFloat inspects the IEEE-754 exponent field of the word pair
// at b. Integer registers leave the second word zero or tiny, which
// lands the exponent far outside the plausible range.
func looksLikeFloat(b []byte) bool {
	if len(b) < 4 {
		return false
	}
	bits := binary.LittleEndian.Uint32(b)
	exp := (bits >> 23) & 0xFF
	return exp >= floatExpLo && exp <= floatExpHi
}
