package ladder

import (
	"bytes"
	"strings"

	"github.com/plcview/ladderbin/container"
)

// exclusionMarker flags snapshot streams that mirror the program stream
// but hold stale online data; strategy 1 must not pick them.
const exclusionMarker = "online image"

// locate finds the stream holding the ladder-logic payload. Three
// strategies run in descending confidence, stopping at the first hit:
//
//  1. stream name contains "program" (and is not an online image);
//  2. any sufficiently large stream whose inflated bytes contain the
//     rung, instruction, and file markers;
//  3. as (2) but requiring only the instruction marker, accepting the
//     raw bytes as a last resort.
//
// Failed decompression skips the stream with a diagnostic; only the
// exhaustion of all three strategies is fatal.
func locate(streams []container.Stream, p Params) ([]byte, string, []Diagnostic, error) {
	var diags []Diagnostic

	// Strategy 1: exact name heuristic.
	for _, s := range streams {
		name := strings.ToLower(s.Name)
		if !strings.Contains(name, "program") || strings.Contains(name, exclusionMarker) {
			continue
		}
		payload, err := inflate(s.Data, p)
		if err != nil {
			diags = append(diags, newDiag(DiagStreamSkipped, 0, "stream %q: %v", s.Name, err))
			continue
		}
		return payload, s.Name, diags, nil
	}

	// Strategy 2: content probe for the full structural marker set.
	for _, s := range streams {
		if len(s.Data) <= p.MinProbeSize {
			continue
		}
		payload, err := inflate(s.Data, p)
		if err != nil {
			diags = append(diags, newDiag(DiagStreamSkipped, 0, "stream %q: %v", s.Name, err))
			continue
		}
		if bytes.Contains(payload, p.RungMarker) &&
			bytes.Contains(payload, p.InstructionMarker) &&
			bytes.Contains(payload, p.FileMarker) {
			return payload, s.Name, diags, nil
		}
	}

	// Strategy 3: minimal marker set, raw bytes acceptable.
	for _, s := range streams {
		if len(s.Data) <= p.MinProbeSize {
			continue
		}
		payload, err := inflate(s.Data, p)
		if err != nil {
			payload = s.Data
		}
		if bytes.Contains(payload, p.InstructionMarker) {
			return payload, s.Name, diags, nil
		}
	}

	return nil, "", diags, ErrNoLadderLogic
}

// locateRegisters picks the runtime data storage stream by name. Its
// absence is non-fatal: register extraction simply yields nothing.
func locateRegisters(streams []container.Stream, p Params) []byte {
	for _, s := range streams {
		name := strings.ToLower(s.Name)
		if !strings.Contains(name, "data") && !strings.Contains(name, exclusionMarker) {
			continue
		}
		payload, err := inflate(s.Data, p)
		if err != nil {
			continue
		}
		if bytes.Contains(payload, p.RegisterMarker) {
			return payload
		}
	}
	return nil
}
