package parser

import (
	"testing"

	"github.com/VeithBuergerhoff/ferrous/ast"
	"github.com/VeithBuergerhoff/ferrous/lexer"
)

func TestPrecedenceScenario(t *testing.T) {
	cu := Parse("return 1 + 2 * 3;")
	ret := cu.Statements[0].(*ast.Return)
	plus, ok := ret.Expr.(*ast.Binary)
	if !ok || plus.Op.Token.Kind != lexer.Plus {
		t.Fatalf("got %+v", ret.Expr)
	}
	if _, ok := plus.Lhs.(*ast.Literal); !ok {
		t.Errorf("lhs: got %T", plus.Lhs)
	}
	times, ok := plus.Rhs.(*ast.Binary)
	if !ok || times.Op.Token.Kind != lexer.Star {
		t.Fatalf("rhs: got %+v", plus.Rhs)
	}
}

func TestLeftAssociativity(t *testing.T) {
	cu := Parse("a - b - c;")
	top := cu.Statements[0].(*ast.ExprStat).Expression.(*ast.Binary)
	if top.Op.Token.Kind != lexer.Minus {
		t.Fatalf("got %+v", top)
	}
	if _, ok := top.Lhs.(*ast.Binary); !ok {
		t.Errorf("expected left-nested Binary, got %T", top.Lhs)
	}
	if _, ok := top.Rhs.(*ast.IdentifierUsage); !ok {
		t.Errorf("expected rhs identifier, got %T", top.Rhs)
	}
}

func TestRightAssociativity(t *testing.T) {
	cu := Parse("a = b = c;")
	top := cu.Statements[0].(*ast.ExprStat).Expression.(*ast.Binary)
	if top.Op.Token.Kind != lexer.Equal {
		t.Fatalf("got %+v", top)
	}
	if _, ok := top.Lhs.(*ast.IdentifierUsage); !ok {
		t.Errorf("expected lhs identifier, got %T", top.Lhs)
	}
	if _, ok := top.Rhs.(*ast.Binary); !ok {
		t.Errorf("expected right-nested Binary, got %T", top.Rhs)
	}
}

func TestNestedTernary(t *testing.T) {
	cu := Parse("a ? b : c ? d : e;")
	outer := cu.Statements[0].(*ast.ExprStat).Expression.(*ast.Ternary)
	if _, ok := outer.Lhs.(*ast.IdentifierUsage); !ok {
		t.Errorf("outer lhs: got %T", outer.Lhs)
	}
	if _, ok := outer.Mhs.(*ast.IdentifierUsage); !ok {
		t.Errorf("outer mhs: got %T", outer.Mhs)
	}
	if _, ok := outer.Rhs.(*ast.Ternary); !ok {
		t.Errorf("expected rhs to be a nested Ternary, got %T", outer.Rhs)
	}
}

func TestPrefixBindsLooserThanPostfixIndex(t *testing.T) {
	cu := Parse("-a[0];")
	unary := cu.Statements[0].(*ast.ExprStat).Expression.(*ast.Unary)
	if unary.Postfix {
		t.Fatalf("expected a prefix Unary, got postfix")
	}
	if _, ok := unary.Operand.(*ast.Index); !ok {
		t.Errorf("expected Unary(-, Index(...)), got Unary(-, %T)", unary.Operand)
	}
}
