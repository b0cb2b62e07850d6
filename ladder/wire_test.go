package ladder

import (
	"bytes"
	"testing"
)

func TestProjectWireRoundTrip(t *testing.T) {
	payload := newPayloadBuilder().
		rung().
		instr(OpXIC, "B3:0/1").
		timer(OpTON, "T4:0", "0.01", "50", "0").
		bytes()
	sr := scan(payload, DefaultParams())
	project := assemble(sr, nil, len(payload))
	project.Name = "wire"

	data, err := MarshalProject(project)
	if err != nil {
		t.Fatalf("MarshalProject: %v", err)
	}

	got, err := UnmarshalProject(data)
	if err != nil {
		t.Fatalf("UnmarshalProject: %v", err)
	}
	if got.Name != "wire" {
		t.Errorf("Name = %q, want wire", got.Name)
	}
	if len(got.Programs) != 1 || len(got.Programs[0].Routines) != 1 {
		t.Fatalf("structure lost in round trip: %+v", got)
	}
	inst := got.Programs[0].Routines[0].Rungs[0].Instructions[1]
	if inst.Mnemonic != "TON" || inst.Timer == nil || inst.Timer.Preset != 50 {
		t.Errorf("instruction lost in round trip: %+v", inst)
	}
}

func TestMarshalProjectCanonical(t *testing.T) {
	payload := newPayloadBuilder().
		rung().
		instr(OpXIC, "B3:0/1").
		instr(OpOTE, "O0:0/0").
		bytes()
	sr := scan(payload, DefaultParams())

	a, err := MarshalProject(assemble(sr, nil, len(payload)))
	if err != nil {
		t.Fatal(err)
	}
	b, err := MarshalProject(assemble(sr, nil, len(payload)))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("canonical encoding must be byte-stable across assemblies")
	}
}

func TestUnmarshalProjectGarbage(t *testing.T) {
	if _, err := UnmarshalProject([]byte{0xFF, 0x00, 0x13, 0x37}); err == nil {
		t.Error("expected error for garbage CBOR")
	}
}
