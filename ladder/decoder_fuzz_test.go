package ladder

import "testing"

// FuzzScan: the decoder runs over hostile bytes for a living, so it
// must never panic regardless of input. Missing or garbled structure is
// expected and fine; a panic is a bug.
func FuzzScan(f *testing.F) {
	f.Add(buildTimerFixture())
	f.Add(newPayloadBuilder().
		rung().
		branchStart().
		instr(OpXIC, "B3:0/1").
		branchLeg().
		instr(OpOTE, "O0:0/0").
		branchClose().
		bytes())
	f.Add([]byte{0xFA, 0x02, 0x20, 0x00})
	f.Add([]byte{})

	p := DefaultParams()
	f.Fuzz(func(t *testing.T, data []byte) {
		sr := scan(data, p)
		for _, inst := range sr.instructions {
			if !inst.Op.Known() {
				t.Errorf("decoded unknown op %#x", byte(inst.Op))
			}
			if inst.Branch != nil && inst.Branch.Level < 1 {
				t.Errorf("branch annotation with level %d", inst.Branch.Level)
			}
		}
	})
}

// FuzzScanRegisters: same contract for the register extractor.
func FuzzScanRegisters(f *testing.F) {
	f.Add(newRegBuilder().header(0x89, 3, 1).words(1, 2, 3).bytes())
	f.Add(newRegBuilder().header(0x86, 1, 3).words(0, 50, 0).bytes())
	f.Add([]byte{0xEE, 0x11})

	p := DefaultParams()
	f.Fuzz(func(t *testing.T, data []byte) {
		scanRegisters(data, p, map[string]int{})
	})
}

// FuzzParseAddress: arbitrary token text must parse or fail cleanly.
func FuzzParseAddress(f *testing.F) {
	for _, seed := range []string{"T4:0", "B3:1/5", "T4:0.ACC", "ST9:2", "", "T4:", "QQ:0"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, s string) {
		addr, err := ParseAddress(s)
		if err != nil {
			return
		}
		// A successful parse must render back to a valid address.
		if _, err := ParseAddress(addr.String()); err != nil {
			t.Errorf("ParseAddress(%q) succeeded but round trip failed: %v", s, err)
		}
	})
}
