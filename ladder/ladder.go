// Package ladder recovers ladder logic from legacy binary PLC project
// files. The container payload has no published specification; the
// engine reconstructs rungs, instructions, branch topology, and
// register values by statistical byte-pattern recognition, validated
// against a corpus of known-good fixtures.
//
// The engine consumes a raw byte buffer and returns an in-memory
// Project; it performs no I/O of its own and holds no state across
// calls, so independent buffers may be parsed concurrently.
package ladder

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/tliron/commonlog"

	"github.com/plcview/ladderbin/container"
	"github.com/plcview/ladderbin/format"
)

var log = commonlog.GetLogger("ladder")

var (
	// ErrNoLadderLogic means no candidate stream yielded recognizable
	// structural markers after all locator strategies. The only fatal
	// outcome of a parse.
	ErrNoLadderLogic = errors.New("ladder: no ladder logic found")

	// ErrStreamDecompression is per-stream and recoverable; it reaches
	// the caller only folded into ErrNoLadderLogic when every
	// candidate fails.
	ErrStreamDecompression = errors.New("ladder: stream decompression failed")
)

type config struct {
	opener container.Opener
	params Params
	name   string
}

// Option adjusts a single Parse call.
type Option func(*config)

// WithOpener substitutes the compound-document reader. Tests and
// alternative container libraries hook in here.
func WithOpener(o container.Opener) Option {
	return func(c *config) { c.opener = o }
}

// WithParams overrides the heuristic constants, e.g. from LoadParams.
func WithParams(p Params) Option {
	return func(c *config) { c.params = p }
}

// WithName sets the project name on the result; the engine has no
// filename to derive one from.
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// Parse extracts the ladder-logic project model from a raw project-file
// buffer. Only ErrNoLadderLogic aborts; every other anomaly is worked
// around and reported through Project.Diagnostics. A structurally valid
// file with zero rungs returns a non-nil Project and a nil error —
// callers should treat that as a distinct, reportable outcome.
func Parse(data []byte, opts ...Option) (*Project, error) {
	cfg := config{
		opener: container.CFBOpener{},
		params: DefaultParams(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	p := cfg.params

	if kind := format.Sniff(data); kind != format.KindCompound {
		return nil, fmt.Errorf("ladder: %s input is not a compound project file: %w", kind, ErrNoLadderLogic)
	}

	streams, err := cfg.opener.Open(data)
	if err != nil {
		return nil, fmt.Errorf("ladder: open container: %w", err)
	}
	log.Debugf("opened container with %d streams", len(streams))

	payload, streamName, diags, err := locate(streams, p)
	if err != nil {
		return nil, err
	}
	log.Debugf("selected stream %q (%d payload bytes)", streamName, len(payload))

	sr := scan(payload, p)
	sr.diags = append(diags, sr.diags...)
	log.Debugf("decoded %d instructions, %d rung bounds, %d diagnostics",
		len(sr.instructions), len(sr.rungBounds), len(sr.diags))

	var regs []RegisterValue
	if regData := locateRegisters(streams, p); regData != nil {
		counters := make(map[string]int)
		regs = scanRegisters(regData, p, counters)
		log.Debugf("extracted %d register values", len(regs))
	}

	project := assemble(sr, regs, len(payload))
	project.Name = cfg.name
	project.ProcessorType = sniffProcessorType(payload)
	project.SoftwareVersion = sniffSoftwareVersion(payload)
	return project, nil
}

// knownProcessors are controller family strings that appear verbatim in
// the payload when present.
var knownProcessors = []string{
	"SLC 5/05", "SLC 5/04", "SLC 5/03", "SLC 5/02", "SLC 5/01", "SLC 500",
	"MicroLogix 1500", "MicroLogix 1400", "MicroLogix 1200",
	"MicroLogix 1100", "MicroLogix 1000",
}

func sniffProcessorType(payload []byte) string {
	for _, name := range knownProcessors {
		if bytes.Contains(payload, []byte(name)) {
			return name
		}
	}
	return ""
}

// sniffSoftwareVersion looks for the "RSS vN.NN" stamp the programming
// software leaves near the head of the program stream.
func sniffSoftwareVersion(payload []byte) string {
	const stamp = "RSS v"
	idx := bytes.Index(payload, []byte(stamp))
	if idx < 0 {
		return ""
	}
	start := idx + len(stamp)
	end := start
	for end < len(payload) && end-start < 8 {
		b := payload[end]
		if (b < '0' || b > '9') && b != '.' {
			break
		}
		end++
	}
	if end == start {
		return ""
	}
	return string(payload[start:end])
}
