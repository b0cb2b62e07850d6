// Package format classifies raw project-file buffers by signature so the
// surrounding application can route them to the right parser.
package format

import "bytes"

// Kind is the detected outer file format.
type Kind int

const (
	// KindUnknown means no known signature matched.
	KindUnknown Kind = iota
	// KindCompound is a compound (OLE) binary document — the legacy
	// project-file container.
	KindCompound
	// KindZip is a zip archive (modern project exports).
	KindZip
	// KindXML is a bare XML export.
	KindXML
)

func (k Kind) String() string {
	switch k {
	case KindCompound:
		return "compound"
	case KindZip:
		return "zip"
	case KindXML:
		return "xml"
	default:
		return "unknown"
	}
}

// compoundMagic is the 8-byte compound document signature.
var compoundMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

// zipMagic is the 2-byte zip local-file-header signature.
var zipMagic = []byte{'P', 'K'}

var xmlProlog = []byte("<?xml")

// utf8BOM may precede an XML prolog in exported files.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// xmlScanWindow bounds how far into the buffer the prolog search looks.
const xmlScanWindow = 100

// Sniff classifies a buffer by its leading bytes. It never fails;
// unrecognized inputs classify as KindUnknown and are the caller's
// problem.
func Sniff(data []byte) Kind {
	if bytes.HasPrefix(data, compoundMagic) {
		return KindCompound
	}
	if bytes.HasPrefix(data, zipMagic) {
		return KindZip
	}
	if sniffXML(data) {
		return KindXML
	}
	return KindUnknown
}

// sniffXML looks for an XML prolog within the first xmlScanWindow bytes,
// tolerating a UTF-8 BOM and leading whitespace.
func sniffXML(data []byte) bool {
	window := data
	if len(window) > xmlScanWindow {
		window = window[:xmlScanWindow]
	}
	window = bytes.TrimPrefix(window, utf8BOM)
	window = bytes.TrimLeft(window, " \t\r\n")
	return bytes.HasPrefix(window, xmlProlog)
}
