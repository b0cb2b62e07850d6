package ladder

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// cborEncMode uses canonical encoding so the same project model always
// produces the same bytes. The surrounding application relies on this
// for snapshot comparison and cache keys.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("ladder: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// MarshalProject serializes a Project to canonical CBOR bytes.
func MarshalProject(p *Project) ([]byte, error) {
	return cborEncMode.Marshal(p)
}

// UnmarshalProject deserializes a Project from CBOR bytes.
func UnmarshalProject(data []byte) (*Project, error) {
	var p Project
	if err := cbor.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("ladder: unmarshal project: %w", err)
	}
	return &p, nil
}
