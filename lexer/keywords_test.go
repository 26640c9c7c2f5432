package lexer

import "testing"

func TestKeywordReclassification(t *testing.T) {
	src := "let mut match if else for in while fn return break true false"
	want := []TokenKind{
		LetKeyword, MutKeyword, MatchKeyword, IfKeyword, ElseKeyword,
		ForKeyword, InKeyword, WhileKeyword, FunctionKeyword,
		ReturnKeyword, BreakKeyword, TrueKeyword, FalseKeyword,
	}
	var got []TokenKind
	for _, tok := range Collect(src) {
		if !tok.Kind.IsTrivia() {
			got = append(got, tok.Kind)
		}
	}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("keyword %d: got %v, want %v", i, got[i], want[i])
		}
	}
}
