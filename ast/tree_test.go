package ast

import (
	"testing"

	"github.com/VeithBuergerhoff/ferrous/lexer"
)

func TestWalkIsShallow(t *testing.T) {
	inner := &Block{}
	outer := &Block{Statements: []Stat{inner}}
	cu := &CompilationUnit{Statements: []Stat{outer}}

	var visited []Stat
	cu.Walk(func(s Stat) { visited = append(visited, s) })

	if len(visited) != 1 || visited[0] != Stat(outer) {
		t.Fatalf("Walk should only yield top-level statements, got %v", visited)
	}
}

func TestIsMissing(t *testing.T) {
	present := SyntaxToken{Token: lexer.Token{Kind: lexer.Semicolon, Value: ";", Len: 1}}
	if present.IsMissing() {
		t.Error("a real token should not report IsMissing")
	}

	missing := SyntaxToken{Token: lexer.Token{Kind: lexer.Semicolon}}
	if !missing.IsMissing() {
		t.Error("a zero-length synthesized token should report IsMissing")
	}
}
