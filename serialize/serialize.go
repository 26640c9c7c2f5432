package serialize

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/VeithBuergerhoff/ferrous/ast"
)

// Encode serializes cu to CBOR using a canonical (deterministic) encoding
// mode, so that encoding the same tree twice always produces identical
// bytes — the same property the teacher's CanonicalPlan.MarshalBinary
// relies on for stable hashing (core/planfmt/canonical.go).
func Encode(cu *ast.CompilationUnit) ([]byte, error) {
	encMode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return nil, fmt.Errorf("serialize: build CBOR encoder: %w", err)
	}
	data, err := encMode.Marshal(toWireCompilationUnit(cu))
	if err != nil {
		return nil, fmt.Errorf("serialize: encode tree: %w", err)
	}
	return data, nil
}

// Decode reconstructs a CompilationUnit from bytes produced by Encode.
func Decode(data []byte) (*ast.CompilationUnit, error) {
	var w WireCompilationUnit
	if err := cbor.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("serialize: decode tree: %w", err)
	}
	return fromWireCompilationUnit(w), nil
}
