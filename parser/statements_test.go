package parser

import (
	"testing"

	"github.com/VeithBuergerhoff/ferrous/ast"
)

func TestVarDefinitionScenario(t *testing.T) {
	cu := Parse("let mut x: i32 = 5;")
	if len(cu.Statements) != 1 {
		t.Fatalf("got %d statements", len(cu.Statements))
	}
	def, ok := cu.Statements[0].(*ast.VarDefinition)
	if !ok {
		t.Fatalf("got %T", cu.Statements[0])
	}
	if def.MutToken == nil {
		t.Error("expected mut_token to be present")
	}
	if def.Type == nil || def.Type.Type.Case != ast.InternalType || def.Type.Type.Token.Token.Value != "i32" {
		t.Errorf("got type %+v", def.Type)
	}
	if def.Value == nil {
		t.Fatal("expected an initializer")
	}
	lit, ok := def.Value.Expression.(*ast.Literal)
	if !ok || lit.Kind != ast.NumberLiteralKind || lit.Token.Token.Value != "5" {
		t.Errorf("got initializer %+v", def.Value.Expression)
	}
}

func TestElseIfChain(t *testing.T) {
	cu := Parse("if a { } else if b { } else { }")
	top := cu.Statements[0].(*ast.If)
	if top.Else == nil {
		t.Fatal("expected an else clause")
	}
	nested, ok := top.Else.Statement.(*ast.If)
	if !ok {
		t.Fatalf("expected else-if to nest an *ast.If, got %T", top.Else.Statement)
	}
	if nested.Else == nil {
		t.Fatal("expected the innermost else clause")
	}
}
