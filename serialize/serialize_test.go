package serialize

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/VeithBuergerhoff/ferrous/parser"
)

func TestRoundTrip(t *testing.T) {
	sources := []string{
		"",
		"let mut x: i32 = 5;",
		"let x = 5",
		"fn add(a: int, b: int) -> int { return a + b; }",
		"if x { y(); } else if z { w(); } else { q(); }",
		"while x < 10 { x = x + 1; }",
		"for i in range(0, 10) { break; }",
		"match x { 1 => y, 2 => z, }",
		"let arr = [1, 2, 3,];",
		"let y = a.b::c?.d[0];",
		"let n = -a[0];",
		"fn f() => x + 1;",
		"a ? b : c ? d : e;",
	}
	for _, src := range sources {
		original := parser.Parse(src)

		encoded, err := Encode(original)
		require.NoError(t, err, "Encode(%q)", src)

		decoded, err := Decode(encoded)
		require.NoError(t, err, "Decode(%q)", src)

		if diff := cmp.Diff(original, decoded); diff != "" {
			t.Errorf("round-trip mismatch for %q (-original +decoded):\n%s", src, diff)
		}
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	cu := parser.Parse("fn add(a: int, b: int) -> int { return a + b; }")

	first, err := Encode(cu)
	require.NoError(t, err)
	second, err := Encode(cu)
	require.NoError(t, err)

	require.Equal(t, first, second, "canonical CBOR encoding must be byte-stable across calls")
}
