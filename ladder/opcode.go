package ladder

// Op is an instruction type byte as it appears after the instruction
// marker in the payload. The table below is closed: bytes outside it
// never produce a token.
type Op byte

// Category groups instructions by the shape of their parameters. It
// drives the numeric-parameter arity, the move-source search, and the
// output-class test used by fallback rung grouping.
type Category int

const (
	CatInput Category = iota
	CatOutput
	CatTimer
	CatCounter
	CatMath
	CatMove
	CatCompare
	CatControl
	CatSequencer
	CatShift
	CatComm
)

// Relay input/output instructions.
const (
	OpXIC Op = 0x01 // examine if closed
	OpXIO Op = 0x02 // examine if open
	OpOSR Op = 0x03 // one-shot rising

	OpOTE Op = 0x10 // output energize
	OpOTL Op = 0x11 // output latch
	OpOTU Op = 0x12 // output unlatch
	OpRES Op = 0x13 // reset timer/counter
)

// Timers and counters.
const (
	OpTON Op = 0x20 // timer on-delay
	OpTOF Op = 0x21 // timer off-delay
	OpRTO Op = 0x22 // retentive timer

	OpCTU Op = 0x28 // count up
	OpCTD Op = 0x29 // count down
)

// Math.
const (
	OpADD Op = 0x30
	OpSUB Op = 0x31
	OpMUL Op = 0x32
	OpDIV Op = 0x33
	OpNEG Op = 0x34
	OpSQR Op = 0x35
	OpCPT Op = 0x36
	OpTOD Op = 0x37 // integer to BCD
	OpFRD Op = 0x38 // BCD to integer
	OpSCL Op = 0x39
	OpSCP Op = 0x3A
	OpAND Op = 0x3B
	OpOR  Op = 0x3C
	OpXOR Op = 0x3D
	OpNOT Op = 0x3E
	OpDCD Op = 0x3F
)

// Moves.
const (
	OpMOV Op = 0x40
	OpMVM Op = 0x41
	OpCOP Op = 0x42
	OpFLL Op = 0x43
	OpCLR Op = 0x44
)

// Compares.
const (
	OpEQU Op = 0x50
	OpNEQ Op = 0x51
	OpLES Op = 0x52
	OpLEQ Op = 0x53
	OpGRT Op = 0x54
	OpGEQ Op = 0x55
	OpLIM Op = 0x56
	OpMEQ Op = 0x57
)

// Program control.
const (
	OpJMP Op = 0x60
	OpLBL Op = 0x61
	OpJSR Op = 0x62
	OpSBR Op = 0x63
	OpRET Op = 0x64
	OpTND Op = 0x65
	OpMCR Op = 0x66
	OpSUS Op = 0x67
	OpIIM Op = 0x68 // immediate input with mask
	OpIOM Op = 0x69 // immediate output with mask
	OpREF Op = 0x6A
	OpENC Op = 0x6B
)

// Sequencers.
const (
	OpSQO Op = 0x70 // sequencer output
	OpSQC Op = 0x71 // sequencer compare
	OpSQL Op = 0x72 // sequencer load
)

// Bit shift / FIFO / LIFO.
const (
	OpBSL Op = 0x78
	OpBSR Op = 0x79
	OpFFL Op = 0x7A
	OpFFU Op = 0x7B
	OpLFL Op = 0x7C
	OpLFU Op = 0x7D
)

// Communication / process.
const (
	OpMSG Op = 0x80
	OpPID Op = 0x81
	OpSVC Op = 0x82
	OpINT Op = 0x83
)

type opInfo struct {
	mnemonic string
	category Category
}

// opTable is the closed instruction-code table. Unrecognized bytes after
// the marker prefix never produce a token.
var opTable = map[Op]opInfo{
	OpXIC: {"XIC", CatInput},
	OpXIO: {"XIO", CatInput},
	OpOSR: {"OSR", CatInput},

	OpOTE: {"OTE", CatOutput},
	OpOTL: {"OTL", CatOutput},
	OpOTU: {"OTU", CatOutput},
	OpRES: {"RES", CatOutput},

	OpTON: {"TON", CatTimer},
	OpTOF: {"TOF", CatTimer},
	OpRTO: {"RTO", CatTimer},

	OpCTU: {"CTU", CatCounter},
	OpCTD: {"CTD", CatCounter},

	OpADD: {"ADD", CatMath},
	OpSUB: {"SUB", CatMath},
	OpMUL: {"MUL", CatMath},
	OpDIV: {"DIV", CatMath},
	OpNEG: {"NEG", CatMath},
	OpSQR: {"SQR", CatMath},
	OpCPT: {"CPT", CatMath},
	OpTOD: {"TOD", CatMath},
	OpFRD: {"FRD", CatMath},
	OpSCL: {"SCL", CatMath},
	OpSCP: {"SCP", CatMath},
	OpAND: {"AND", CatMath},
	OpOR:  {"OR", CatMath},
	OpXOR: {"XOR", CatMath},
	OpNOT: {"NOT", CatMath},
	OpDCD: {"DCD", CatMath},

	OpMOV: {"MOV", CatMove},
	OpMVM: {"MVM", CatMove},
	OpCOP: {"COP", CatMove},
	OpFLL: {"FLL", CatMove},
	OpCLR: {"CLR", CatMove},

	OpEQU: {"EQU", CatCompare},
	OpNEQ: {"NEQ", CatCompare},
	OpLES: {"LES", CatCompare},
	OpLEQ: {"LEQ", CatCompare},
	OpGRT: {"GRT", CatCompare},
	OpGEQ: {"GEQ", CatCompare},
	OpLIM: {"LIM", CatCompare},
	OpMEQ: {"MEQ", CatCompare},

	OpJMP: {"JMP", CatControl},
	OpLBL: {"LBL", CatControl},
	OpJSR: {"JSR", CatControl},
	OpSBR: {"SBR", CatControl},
	OpRET: {"RET", CatControl},
	OpTND: {"TND", CatControl},
	OpMCR: {"MCR", CatControl},
	OpSUS: {"SUS", CatControl},
	OpIIM: {"IIM", CatControl},
	OpIOM: {"IOM", CatControl},
	OpREF: {"REF", CatControl},
	OpENC: {"ENC", CatControl},

	OpSQO: {"SQO", CatSequencer},
	OpSQC: {"SQC", CatSequencer},
	OpSQL: {"SQL", CatSequencer},

	OpBSL: {"BSL", CatShift},
	OpBSR: {"BSR", CatShift},
	OpFFL: {"FFL", CatShift},
	OpFFU: {"FFU", CatShift},
	OpLFL: {"LFL", CatShift},
	OpLFU: {"LFU", CatShift},

	OpMSG: {"MSG", CatComm},
	OpPID: {"PID", CatComm},
	OpSVC: {"SVC", CatComm},
	OpINT: {"INT", CatComm},
}

// Known reports whether b is in the closed instruction-code table.
func (o Op) Known() bool {
	_, ok := opTable[o]
	return ok
}

// Mnemonic returns the instruction mnemonic, or "" for unknown codes.
func (o Op) Mnemonic() string {
	return opTable[o].mnemonic
}

// Category returns the instruction category. Only meaningful when
// Known() is true.
func (o Op) Category() Category {
	return opTable[o].category
}

// outputClass is the closed set of instructions that legitimately end a
// rung. The heuristic rung grouping closes a rung only on one of these.
var outputClass = map[Op]bool{
	OpOTE: true, OpOTL: true, OpOTU: true, OpRES: true,
	OpTON: true, OpTOF: true, OpRTO: true,
	OpCTU: true, OpCTD: true,
}

// IsOutputClass reports whether the instruction belongs to the closed
// rung-terminating set.
func (o Op) IsOutputClass() bool {
	return outputClass[o]
}
