package lexer

import "testing"

func TestDecimalDotLookahead(t *testing.T) {
	// "5. .5" must not merge into a range: the dot before a space is not
	// followed by a digit, so it is left for the next token.
	toks := Collect("5. .5")
	var kinds []TokenKind
	for _, tok := range toks {
		if !tok.Kind.IsTrivia() {
			kinds = append(kinds, tok.Kind)
		}
	}
	want := []TokenKind{NumberLiteral, Dot, Dot, NumberLiteral}
	if len(kinds) != len(want) {
		t.Fatalf("got %d significant tokens, want %d: %v", len(kinds), len(want), kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, kinds[i], want[i])
		}
	}
}
