package ladder

import (
	"fmt"
	"sort"
)

// fallbackMinInstructions is the smallest group the heuristic rung
// grouping will close; it then waits for an output-class instruction.
const fallbackMinInstructions = 5

// assemble groups decoded instructions into rungs and routines and
// derives the tag list, producing the final project model.
//
// Routine boundaries come from file markers when present; rung
// boundaries from rung markers, falling back to greedy output-class
// grouping. Both paths guarantee that every instruction lands in
// exactly one rung and that rung numbers are unique, non-negative, and
// strictly increasing in array order.
func assemble(sr scanResult, regs []RegisterValue, payloadLen int) *Project {
	routines := splitRoutines(sr, payloadLen)

	program := Program{
		Name:     "MainProgram",
		Routines: routines,
	}
	if len(routines) > 0 {
		program.MainRoutineName = routines[0].Name
	}

	return &Project{
		Tags:        deriveTags(sr.instructions, regs),
		Programs:    []Program{program},
		Diagnostics: sr.diags,
	}
}

// splitRoutines slices the instruction list at file-marker offsets.
// Without file markers the whole payload is one MAIN routine. Program
// file numbering starts at 2, matching the legacy layout where files 0
// and 1 are reserved.
func splitRoutines(sr scanResult, payloadLen int) []Routine {
	type span struct{ lo, hi int }

	var spans []span
	if len(sr.fileBounds) == 0 {
		spans = []span{{0, payloadLen}}
	} else {
		lo := 0
		for _, b := range sr.fileBounds {
			if b > lo {
				spans = append(spans, span{lo, b})
			}
			lo = b
		}
		spans = append(spans, span{lo, payloadLen})
	}

	var routines []Routine
	for _, sp := range spans {
		var insts []Instruction
		for _, inst := range sr.instructions {
			if inst.Offset >= sp.lo && inst.Offset < sp.hi {
				insts = append(insts, inst)
			}
		}
		if len(insts) == 0 {
			continue
		}

		var bounds []int
		for _, b := range sr.rungBounds {
			if b >= sp.lo && b < sp.hi {
				bounds = append(bounds, b)
			}
		}

		name := "MAIN"
		if len(sr.fileBounds) > 0 {
			name = fmt.Sprintf("LAD%d", len(routines)+2)
		}
		routines = append(routines, Routine{
			Name:  name,
			Type:  "RLL",
			Rungs: groupRungs(insts, bounds),
		})
	}
	return routines
}

// groupRungs attributes instructions to rungs. With boundary markers,
// every byte range between consecutive markers is one rung and
// instructions belong to the range containing their offset. Without
// markers, grouping is greedy: a rung closes once it holds at least
// fallbackMinInstructions and the newest instruction is output-class;
// whatever trails is flushed as a final rung.
func groupRungs(insts []Instruction, bounds []int) []Rung {
	var rungs []Rung

	if len(bounds) > 0 {
		groups := make([][]Instruction, len(bounds)+1)
		for _, inst := range insts {
			g := sort.SearchInts(bounds, inst.Offset+1)
			groups[g] = append(groups[g], inst)
		}
		for _, g := range groups {
			if len(g) == 0 {
				continue
			}
			rungs = append(rungs, Rung{Number: len(rungs), Instructions: g})
		}
		return rungs
	}

	var cur []Instruction
	for _, inst := range insts {
		cur = append(cur, inst)
		if len(cur) >= fallbackMinInstructions && inst.Op.IsOutputClass() {
			rungs = append(rungs, Rung{Number: len(rungs), Instructions: cur})
			cur = nil
		}
	}
	if len(cur) > 0 {
		rungs = append(rungs, Rung{Number: len(rungs), Instructions: cur})
	}
	return rungs
}

// deriveTags deduplicates every address referenced by the logic into a
// typed tag record, then joins register values from the data stream
// onto matching tags. Output is sorted by name so repeated parses of
// one buffer produce identical models.
func deriveTags(insts []Instruction, regs []RegisterValue) []Tag {
	byName := make(map[string]Tag)
	add := func(a Address) {
		name := a.TagName()
		if _, seen := byName[name]; seen {
			return
		}
		byName[name] = Tag{
			Name:     name,
			DataType: a.DataType(),
			TypeName: a.DataType().String(),
		}
	}

	for _, inst := range insts {
		add(inst.Address)
		if inst.Move != nil && inst.Move.Source != nil {
			add(*inst.Move.Source)
		}
	}

	for _, rv := range regs {
		// Subfield registers (timer/counter preset and accumulator)
		// describe structure members, not whole tags.
		if rv.Address.Subfield != "" {
			continue
		}
		name := rv.Address.TagName()
		tag, seen := byName[name]
		if !seen {
			continue
		}
		tag.HasValue = true
		tag.IntValue = rv.Int
		tag.FloatVal = rv.Float
		tag.IsFloat = rv.IsFloat
		byName[name] = tag
	}

	tags := make([]Tag, 0, len(byName))
	for _, t := range byName {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].Name < tags[j].Name })
	return tags
}
