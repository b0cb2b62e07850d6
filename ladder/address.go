package ladder

import (
	"fmt"
	"strconv"
	"strings"
)

// DataType is the inferred tag data type, derived from the address
// file-type prefix via a closed table.
type DataType int

const (
	TypeBool DataType = iota
	TypeTimer
	TypeCounter
	TypeInteger
	TypeFloat
	TypeString
	TypeLong
	TypeControl
)

func (t DataType) String() string {
	switch t {
	case TypeBool:
		return "BOOL"
	case TypeTimer:
		return "TIMER"
	case TypeCounter:
		return "COUNTER"
	case TypeInteger:
		return "INT"
	case TypeFloat:
		return "REAL"
	case TypeString:
		return "STRING"
	case TypeLong:
		return "LONG"
	case TypeControl:
		return "CONTROL"
	default:
		return "INT"
	}
}

// fileTypes is the closed file-type prefix set with the data type each
// prefix implies.
var fileTypes = map[string]DataType{
	"O":  TypeBool,
	"I":  TypeBool,
	"S":  TypeInteger,
	"B":  TypeBool,
	"T":  TypeTimer,
	"C":  TypeCounter,
	"R":  TypeControl,
	"N":  TypeInteger,
	"F":  TypeFloat,
	"A":  TypeInteger,
	"D":  TypeInteger,
	"L":  TypeLong,
	"ST": TypeString,
	"MG": TypeControl,
	"PD": TypeControl,
}

// defaultFileNumbers maps each prefix to its well-known default data
// file number, used when the address omits one (e.g. "T:0" -> T4:0).
var defaultFileNumbers = map[string]int{
	"O": 0, "I": 1, "S": 2, "B": 3, "T": 4,
	"C": 5, "R": 6, "N": 7, "F": 8,
}

// Address is a parsed data-table address token, e.g. "T4:0", "B3:1/5",
// "T4:0.ACC". Bit is -1 when absent.
type Address struct {
	Prefix     string `json:"prefix" cbor:"1,keyasint"`
	FileNumber int    `json:"fileNumber" cbor:"2,keyasint"`
	Element    int    `json:"element" cbor:"3,keyasint"`
	Bit        int    `json:"bit" cbor:"4,keyasint"`
	Subfield   string `json:"subfield,omitempty" cbor:"5,keyasint,omitempty"`
}

// String renders the canonical textual form.
func (a Address) String() string {
	var b strings.Builder
	b.WriteString(a.Prefix)
	b.WriteString(strconv.Itoa(a.FileNumber))
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(a.Element))
	if a.Bit >= 0 {
		b.WriteByte('/')
		b.WriteString(strconv.Itoa(a.Bit))
	}
	if a.Subfield != "" {
		b.WriteByte('.')
		b.WriteString(a.Subfield)
	}
	return b.String()
}

// DataType returns the tag type implied by the file-type prefix.
func (a Address) DataType() DataType {
	return fileTypes[a.Prefix]
}

// TagName is the address without bit or subfield, which is the
// granularity tags are deduplicated at.
func (a Address) TagName() string {
	return fmt.Sprintf("%s%d:%d", a.Prefix, a.FileNumber, a.Element)
}

// ParseAddress validates and parses an ASCII address token. The grammar
// is [A-Z]{1,2}\d*:\d+(/\d+)?(\.[A-Z]+)?, scanned byte-at-a-time so no
// decision ever depends on a text re-projection of the payload. A
// missing file number takes the prefix's well-known default.
func ParseAddress(s string) (Address, error) {
	addr := Address{Bit: -1}
	i := 0

	// Prefix: one or two uppercase letters from the closed set.
	for i < len(s) && i < 2 && s[i] >= 'A' && s[i] <= 'Z' {
		i++
	}
	if i == 0 {
		return addr, fmt.Errorf("ladder: address %q: missing file-type prefix", s)
	}
	addr.Prefix = s[:i]
	if _, ok := fileTypes[addr.Prefix]; !ok {
		// A two-letter scan may have swallowed a subfield letter; retry
		// with a single-letter prefix before giving up.
		if i == 2 {
			if _, ok := fileTypes[s[:1]]; ok {
				addr.Prefix = s[:1]
				i = 1
			}
		}
		if _, ok := fileTypes[addr.Prefix]; !ok {
			return addr, fmt.Errorf("ladder: address %q: unknown file type %q", s, addr.Prefix)
		}
	}

	// Optional file number.
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i > start {
		n, err := strconv.Atoi(s[start:i])
		if err != nil {
			return addr, fmt.Errorf("ladder: address %q: bad file number: %w", s, err)
		}
		addr.FileNumber = n
	} else {
		def, ok := defaultFileNumbers[addr.Prefix]
		if !ok {
			return addr, fmt.Errorf("ladder: address %q: file number required for %s files", s, addr.Prefix)
		}
		addr.FileNumber = def
	}

	// Separator and element.
	if i >= len(s) || s[i] != ':' {
		return addr, fmt.Errorf("ladder: address %q: missing ':' separator", s)
	}
	i++
	start = i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return addr, fmt.Errorf("ladder: address %q: missing element number", s)
	}
	n, err := strconv.Atoi(s[start:i])
	if err != nil {
		return addr, fmt.Errorf("ladder: address %q: bad element: %w", s, err)
	}
	addr.Element = n

	// Optional bit.
	if i < len(s) && s[i] == '/' {
		i++
		start = i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if i == start {
			return addr, fmt.Errorf("ladder: address %q: missing bit number", s)
		}
		bit, err := strconv.Atoi(s[start:i])
		if err != nil {
			return addr, fmt.Errorf("ladder: address %q: bad bit: %w", s, err)
		}
		addr.Bit = bit
	}

	// Optional subfield.
	if i < len(s) && s[i] == '.' {
		i++
		start = i
		for i < len(s) && s[i] >= 'A' && s[i] <= 'Z' {
			i++
		}
		if i == start {
			return addr, fmt.Errorf("ladder: address %q: missing subfield name", s)
		}
		addr.Subfield = s[start:i]
	}

	if i != len(s) {
		return addr, fmt.Errorf("ladder: address %q: trailing garbage at offset %d", s, i)
	}
	return addr, nil
}
