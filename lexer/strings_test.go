package lexer

import "testing"

func TestUnterminatedString(t *testing.T) {
	toks := Collect(`"abc`)
	if len(toks) != 1 {
		t.Fatalf("got %d tokens, want 1", len(toks))
	}
	tok := toks[0]
	if tok.Kind != StringLiteral || tok.Terminated || tok.Value != `"abc` || tok.Len != 4 {
		t.Errorf("got %+v", tok)
	}
}

func TestCharLiteralTermination(t *testing.T) {
	cases := []struct {
		input      string
		terminated bool
		value      string
	}{
		{`'s'`, true, `'s'`},
		{`'\n'`, true, `'\n'`},
		{`'too long'`, false, `'too long'`},
	}
	for _, c := range cases {
		toks := Collect(c.input)
		if len(toks) == 0 || toks[0].Kind != CharLiteral {
			t.Fatalf("%q: expected a CharLiteral, got %+v", c.input, toks)
		}
		if toks[0].Terminated != c.terminated || toks[0].Value != c.value {
			t.Errorf("%q: got %+v", c.input, toks[0])
		}
	}
}
