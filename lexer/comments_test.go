package lexer

import "testing"

func TestNestedCommentsNotSupported(t *testing.T) {
	toks := Collect("/* /* x */ */")
	if len(toks) == 0 || toks[0].Kind != MultilineComment {
		t.Fatalf("got %+v", toks)
	}
	if !toks[0].Terminated || toks[0].Value != "/* /* x */" {
		t.Errorf("got %+v", toks[0])
	}
}
