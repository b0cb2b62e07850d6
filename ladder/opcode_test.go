package ladder

import "testing"

func TestOpTableClosed(t *testing.T) {
	if Op(0xEF).Known() {
		t.Error("0xEF must not be in the instruction table")
	}
	if Op(0x00).Known() {
		t.Error("0x00 must not be in the instruction table")
	}
	if got := Op(0xEF).Mnemonic(); got != "" {
		t.Errorf("unknown op mnemonic = %q, want empty", got)
	}
}

func TestOpTableShape(t *testing.T) {
	if len(opTable) < 55 {
		t.Errorf("instruction table holds %d codes, expected the full set", len(opTable))
	}
	seen := map[string]Op{}
	for op, info := range opTable {
		if info.mnemonic == "" {
			t.Errorf("op %#x has no mnemonic", byte(op))
		}
		if prev, dup := seen[info.mnemonic]; dup {
			t.Errorf("mnemonic %s assigned to both %#x and %#x", info.mnemonic, byte(prev), byte(op))
		}
		seen[info.mnemonic] = op
	}
}

func TestCategoryAssignments(t *testing.T) {
	tests := []struct {
		op   Op
		want Category
	}{
		{OpXIC, CatInput},
		{OpOTE, CatOutput},
		{OpTON, CatTimer},
		{OpCTU, CatCounter},
		{OpADD, CatMath},
		{OpMOV, CatMove},
		{OpEQU, CatCompare},
		{OpJSR, CatControl},
		{OpSQO, CatSequencer},
		{OpBSL, CatShift},
		{OpMSG, CatComm},
	}
	for _, tt := range tests {
		if got := tt.op.Category(); got != tt.want {
			t.Errorf("%s category = %v, want %v", tt.op.Mnemonic(), got, tt.want)
		}
	}
}

func TestOutputClassMembership(t *testing.T) {
	for _, op := range []Op{OpOTE, OpOTL, OpOTU, OpRES, OpTON, OpCTU} {
		if !op.IsOutputClass() {
			t.Errorf("%s should be output-class", op.Mnemonic())
		}
	}
	for _, op := range []Op{OpXIC, OpXIO, OpMOV, OpEQU, OpJMP} {
		if op.IsOutputClass() {
			t.Errorf("%s should not be output-class", op.Mnemonic())
		}
	}
}
