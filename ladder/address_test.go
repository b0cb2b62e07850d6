package ladder

import "testing"

func TestParseAddress(t *testing.T) {
	tests := []struct {
		in   string
		want Address
	}{
		{"T4:0", Address{Prefix: "T", FileNumber: 4, Element: 0, Bit: -1}},
		{"B3:1/5", Address{Prefix: "B", FileNumber: 3, Element: 1, Bit: 5}},
		{"N7:12", Address{Prefix: "N", FileNumber: 7, Element: 12, Bit: -1}},
		{"T4:0.ACC", Address{Prefix: "T", FileNumber: 4, Element: 0, Bit: -1, Subfield: "ACC"}},
		{"C5:3/13", Address{Prefix: "C", FileNumber: 5, Element: 3, Bit: 13}},
		{"ST9:2", Address{Prefix: "ST", FileNumber: 9, Element: 2, Bit: -1}},
		{"F8:7", Address{Prefix: "F", FileNumber: 8, Element: 7, Bit: -1}},
		{"O0:1/0", Address{Prefix: "O", FileNumber: 0, Element: 1, Bit: 0}},
		{"I1:3", Address{Prefix: "I", FileNumber: 1, Element: 3, Bit: -1}},
		{"R6:0.LEN", Address{Prefix: "R", FileNumber: 6, Element: 0, Bit: -1, Subfield: "LEN"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAddress(tt.in)
			if err != nil {
				t.Fatalf("ParseAddress(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseAddress(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseAddressDefaultFileNumbers(t *testing.T) {
	tests := []struct {
		in       string
		wantFile int
	}{
		{"T:0", 4},
		{"C:2", 5},
		{"N:1", 7},
		{"B:0", 3},
		{"F:3", 8},
		{"O:0", 0},
		{"I:2", 1},
		{"S:24", 2},
	}
	for _, tt := range tests {
		got, err := ParseAddress(tt.in)
		if err != nil {
			t.Fatalf("ParseAddress(%q): %v", tt.in, err)
		}
		if got.FileNumber != tt.wantFile {
			t.Errorf("ParseAddress(%q).FileNumber = %d, want %d", tt.in, got.FileNumber, tt.wantFile)
		}
	}
}

func TestParseAddressInvalid(t *testing.T) {
	inputs := []string{
		"",
		"4:0",      // no prefix
		"T4",       // no separator
		"T4:",      // no element
		"QQ4:0",    // unknown file type
		"T4:0/",    // dangling bit
		"T4:0.",    // dangling subfield
		"T4:0x",    // trailing garbage
		"T4:0/1/2", // double bit
		"t4:0",     // lowercase prefix
	}
	for _, in := range inputs {
		if _, err := ParseAddress(in); err == nil {
			t.Errorf("ParseAddress(%q): expected error, got nil", in)
		}
	}
}

func TestAddressString(t *testing.T) {
	tests := []struct {
		in   Address
		want string
	}{
		{Address{Prefix: "T", FileNumber: 4, Element: 0, Bit: -1}, "T4:0"},
		{Address{Prefix: "B", FileNumber: 3, Element: 1, Bit: 5}, "B3:1/5"},
		{Address{Prefix: "T", FileNumber: 4, Element: 2, Bit: -1, Subfield: "PRE"}, "T4:2.PRE"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestAddressDataTypeTable(t *testing.T) {
	tests := []struct {
		prefix string
		want   DataType
	}{
		{"B", TypeBool},
		{"I", TypeBool},
		{"O", TypeBool},
		{"T", TypeTimer},
		{"C", TypeCounter},
		{"N", TypeInteger},
		{"S", TypeInteger},
		{"F", TypeFloat},
		{"ST", TypeString},
		{"L", TypeLong},
		{"R", TypeControl},
	}
	for _, tt := range tests {
		a := Address{Prefix: tt.prefix, Bit: -1}
		if got := a.DataType(); got != tt.want {
			t.Errorf("DataType(%s) = %v, want %v", tt.prefix, got, tt.want)
		}
	}
}
