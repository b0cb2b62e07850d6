package ladder

// Project is the root of the extracted model. It is built in one
// synchronous parse call and never mutated afterwards; the caller owns
// storage from there on.
type Project struct {
	Name            string       `json:"name" cbor:"1,keyasint"`
	ProcessorType   string       `json:"processorType,omitempty" cbor:"2,keyasint,omitempty"`
	SoftwareVersion string       `json:"softwareVersion,omitempty" cbor:"3,keyasint,omitempty"`
	Tags            []Tag        `json:"tags" cbor:"4,keyasint"`
	Programs        []Program    `json:"programs" cbor:"5,keyasint"`
	Diagnostics     []Diagnostic `json:"diagnostics,omitempty" cbor:"6,keyasint,omitempty"`
}

// Program owns ordered routines.
type Program struct {
	Name            string    `json:"name" cbor:"1,keyasint"`
	MainRoutineName string    `json:"mainRoutineName" cbor:"2,keyasint"`
	Routines        []Routine `json:"routines" cbor:"3,keyasint"`
}

// Routine owns ordered rungs.
type Routine struct {
	Name  string `json:"name" cbor:"1,keyasint"`
	Type  string `json:"type" cbor:"2,keyasint"`
	Rungs []Rung `json:"rungs" cbor:"3,keyasint"`
}

// Rung is one row of ladder logic. Numbers are assigned in scan order
// starting at zero and are strictly increasing within a routine.
type Rung struct {
	Number       int           `json:"number" cbor:"1,keyasint"`
	Comment      string        `json:"comment,omitempty" cbor:"2,keyasint,omitempty"`
	Instructions []Instruction `json:"instructions" cbor:"3,keyasint"`
}

// Branch annotates an instruction that sits on a parallel path. Level 1
// is the first nesting depth; instructions on the unbranched main line
// carry no annotation at all. Leg indices are unique within one
// (rung, level) group.
type Branch struct {
	Level uint32 `json:"level" cbor:"1,keyasint"`
	Leg   uint32 `json:"leg" cbor:"2,keyasint"`
	Start bool   `json:"start,omitempty" cbor:"3,keyasint,omitempty"`
}

// TimerParams are the three timer words: tick granularity, target
// duration, and current elapsed count. Incomplete reads leave later
// fields zero and set Partial.
type TimerParams struct {
	Base    float64 `json:"base" cbor:"1,keyasint"`
	Preset  int     `json:"preset" cbor:"2,keyasint"`
	Accum   int     `json:"accum" cbor:"3,keyasint"`
	Partial bool    `json:"partial,omitempty" cbor:"4,keyasint,omitempty"`
}

// CounterParams are the counter preset/accumulator pair.
type CounterParams struct {
	Preset  int  `json:"preset" cbor:"1,keyasint"`
	Accum   int  `json:"accum" cbor:"2,keyasint"`
	Partial bool `json:"partial,omitempty" cbor:"3,keyasint,omitempty"`
}

// SequencerParams hold the length/position/mask words of a sequencer
// instruction, in payload order.
type SequencerParams struct {
	Length   int  `json:"length" cbor:"1,keyasint"`
	Position int  `json:"position" cbor:"2,keyasint"`
	Mask     int  `json:"mask" cbor:"3,keyasint"`
	Partial  bool `json:"partial,omitempty" cbor:"4,keyasint,omitempty"`
}

// MoveParams carry the resolved source of a move-class instruction.
// Exactly one of Constant/Source is meaningful; neither is when the
// backward search found nothing inside its window.
type MoveParams struct {
	HasConstant bool     `json:"hasConstant,omitempty" cbor:"1,keyasint,omitempty"`
	Constant    float64  `json:"constant,omitempty" cbor:"2,keyasint,omitempty"`
	Source      *Address `json:"source,omitempty" cbor:"3,keyasint,omitempty"`
}

// Instruction is one recognized instruction occurrence. The category
// parameter pointers form a closed tagged variant: at most the one
// matching the instruction's category is non-nil.
type Instruction struct {
	Op       Op      `json:"-" cbor:"1,keyasint"`
	Mnemonic string  `json:"type" cbor:"2,keyasint"`
	Address  Address `json:"address" cbor:"3,keyasint"`
	Offset   int     `json:"byteOffset" cbor:"4,keyasint"`

	Branch    *Branch          `json:"branch,omitempty" cbor:"5,keyasint,omitempty"`
	Timer     *TimerParams     `json:"timer,omitempty" cbor:"6,keyasint,omitempty"`
	Counter   *CounterParams   `json:"counter,omitempty" cbor:"7,keyasint,omitempty"`
	Sequencer *SequencerParams `json:"sequencer,omitempty" cbor:"8,keyasint,omitempty"`
	Move      *MoveParams      `json:"move,omitempty" cbor:"9,keyasint,omitempty"`
}

// Tag is a deduplicated data-table location referenced anywhere in the
// extracted logic, optionally joined with a register value from the
// data storage stream.
type Tag struct {
	Name     string   `json:"name" cbor:"1,keyasint"`
	DataType DataType `json:"dataType" cbor:"2,keyasint"`
	TypeName string   `json:"typeName" cbor:"3,keyasint"`

	HasValue bool    `json:"hasValue,omitempty" cbor:"4,keyasint,omitempty"`
	IntValue int32   `json:"intValue,omitempty" cbor:"5,keyasint,omitempty"`
	FloatVal float32 `json:"floatValue,omitempty" cbor:"6,keyasint,omitempty"`
	IsFloat  bool    `json:"isFloat,omitempty" cbor:"7,keyasint,omitempty"`
}

// RegisterValue is one integer or float register read from the data
// storage stream, produced independently of ladder decoding.
type RegisterValue struct {
	Address Address `json:"address" cbor:"1,keyasint"`
	Int     int32   `json:"int,omitempty" cbor:"2,keyasint,omitempty"`
	Float   float32 `json:"float,omitempty" cbor:"3,keyasint,omitempty"`
	IsFloat bool    `json:"isFloat,omitempty" cbor:"4,keyasint,omitempty"`
}
