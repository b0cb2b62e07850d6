package ladder

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Params collects every empirically derived constant the engine scans
// with: marker bytes, header sizes, and lookahead windows. None of these
// come from a published specification — they were recovered from known
// project files and are validated by the fixture corpus, so they stay
// tunable rather than hard-coded. A TOML overlay can adjust individual
// fields when a new file variant shows up.
type Params struct {
	// InstructionMarker is the 2-byte prefix announcing an instruction
	// occurrence in the decompressed payload.
	InstructionMarker []byte `toml:"instruction-marker"`
	// Branch topology markers. Distinct from the instruction marker.
	BranchStartMarker []byte `toml:"branch-start-marker"`
	BranchLegMarker   []byte `toml:"branch-leg-marker"`
	BranchCloseMarker []byte `toml:"branch-close-marker"`
	// RungMarker delimits rung boundaries when present.
	RungMarker []byte `toml:"rung-marker"`
	// FileMarker delimits program-file (routine) boundaries.
	FileMarker []byte `toml:"file-marker"`
	// RegisterMarker opens a register storage block header.
	RegisterMarker []byte `toml:"register-marker"`

	// CompressMagic is the first byte of a compressed stream;
	// CompressHeaderLen bytes are stripped before raw deflate.
	CompressMagic     byte `toml:"compress-magic"`
	CompressHeaderLen int  `toml:"compress-header-len"`

	// Lookahead windows, in bytes, bounding the numeric-parameter and
	// move-source scans.
	TimerWindow      int `toml:"timer-window"`
	CounterWindow    int `toml:"counter-window"`
	SequencerWindow  int `toml:"sequencer-window"`
	MoveSourceWindow int `toml:"move-source-window"`

	// MinProbeSize is the smallest stream the locator will content-probe.
	MinProbeSize int `toml:"min-probe-size"`
	// MaxElements rejects register block headers whose element count is
	// an implausible false positive.
	MaxElements int `toml:"max-elements"`
}

// DefaultParams returns the compiled-in constants recovered from the
// reference fixture corpus.
func DefaultParams() Params {
	return Params{
		InstructionMarker: []byte{0xFA, 0x02},
		BranchStartMarker: []byte{0xFB, 0x01},
		BranchLegMarker:   []byte{0xFB, 0x02},
		BranchCloseMarker: []byte{0xFB, 0x03},
		RungMarker:        []byte{0xFD, 0x65},
		FileMarker:        []byte{0xFC, 0x4C},
		RegisterMarker:    []byte{0xEE, 0x11},

		CompressMagic:     0x78,
		CompressHeaderLen: 2,

		TimerWindow:      25,
		CounterWindow:    15,
		SequencerWindow:  20,
		MoveSourceWindow: 50,

		MinProbeSize: 100,
		MaxElements:  10000,
	}
}

// LoadParams overlays a TOML file onto the defaults. Fields absent from
// the file keep their default values.
func LoadParams(path string) (Params, error) {
	p := DefaultParams()
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("ladder: cannot read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("ladder: parse error in %s: %w", path, err)
	}
	if err := p.validate(); err != nil {
		return p, err
	}
	return p, nil
}

func (p Params) validate() error {
	markers := map[string][]byte{
		"instruction-marker":  p.InstructionMarker,
		"branch-start-marker": p.BranchStartMarker,
		"branch-leg-marker":   p.BranchLegMarker,
		"branch-close-marker": p.BranchCloseMarker,
		"rung-marker":         p.RungMarker,
		"file-marker":         p.FileMarker,
		"register-marker":     p.RegisterMarker,
	}
	for name, m := range markers {
		if len(m) != 2 {
			return fmt.Errorf("ladder: %s must be exactly 2 bytes, got %d", name, len(m))
		}
	}
	if p.TimerWindow <= 0 || p.CounterWindow <= 0 || p.SequencerWindow <= 0 || p.MoveSourceWindow <= 0 {
		return fmt.Errorf("ladder: lookahead windows must be positive")
	}
	if p.MaxElements <= 0 {
		return fmt.Errorf("ladder: max-elements must be positive")
	}
	return nil
}
