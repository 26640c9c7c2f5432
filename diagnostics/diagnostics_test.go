package diagnostics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VeithBuergerhoff/ferrous/parser"
)

func TestCollectFindsMissingSemicolon(t *testing.T) {
	cu := parser.Parse("let x = 5")
	entries := Collect(cu)

	require.Len(t, entries, 1)
	assert.Equal(t, "Semicolon", entries[0].Expected)
	assert.True(t, entries[0].AtEOF)
	assert.Empty(t, entries[0].Actual)
}

func TestCollectFindsNestedDiagnostic(t *testing.T) {
	// The missing ')' is nested three levels deep inside the if-statement's
	// condition expression's argument list, exercising the full collectExpr
	// recursion rather than just a top-level statement token.
	cu := parser.Parse("if f(1, 2 { }")
	entries := Collect(cu)

	require.NotEmpty(t, entries)
	found := false
	for _, e := range entries {
		if e.Expected == "RParen" {
			found = true
		}
	}
	assert.True(t, found, "expected an RParen diagnostic among %+v", entries)
}

func TestCollectCleanSourceHasNoDiagnostics(t *testing.T) {
	cu := parser.Parse("fn add(a: int, b: int) -> int { return a + b; }")
	assert.Empty(t, Collect(cu))
}

func TestFormat(t *testing.T) {
	atEOF := Entry{Expected: "Semicolon", AtEOF: true}
	assert.Equal(t, "expected Semicolon, found end of input", atEOF.Format())

	found := Entry{Expected: "RParen", Actual: "RBrace", AtEOF: false}
	assert.Equal(t, "expected RParen, found RBrace", found.Format())
}

func TestValidateExport(t *testing.T) {
	cu := parser.Parse("let x = 5")
	entries := Collect(cu)
	assert.NoError(t, ValidateExport(entries))
	assert.NoError(t, ValidateExport(nil))
}

func TestSuggestBuiltinType(t *testing.T) {
	suggestion, ok := SuggestBuiltinType("sting")
	require.True(t, ok)
	assert.Equal(t, "string", suggestion)

	_, ok = SuggestBuiltinType("")
	assert.False(t, ok)
}
