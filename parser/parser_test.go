package parser

import (
	"strings"
	"testing"

	"github.com/VeithBuergerhoff/ferrous/ast"
)

// serialize reproduces the source a CompilationUnit was parsed from by
// walking every syntax token and its trivia in order (spec.md §8 property
// 2, "lossless parsing").
func serialize(cu *ast.CompilationUnit) string {
	var b strings.Builder
	writeTrivia := func(trivia []ast.Trivia) {
		for _, tr := range trivia {
			b.WriteString(tr.Token.Value)
		}
	}
	writeTok := func(tok ast.SyntaxToken) {
		b.WriteString(tok.Token.Value)
		writeTrivia(tok.Trivia)
	}
	var writeExpr func(ast.Expr)
	var writeStat func(ast.Stat)

	writeExpr = func(e ast.Expr) {
		switch n := e.(type) {
		case *ast.Literal:
			writeTok(n.Token)
		case *ast.IdentifierUsage:
			writeTok(n.Identifier.Token)
		case *ast.Call:
			writeTok(n.Identifier.Token)
			writeTok(n.ArgumentList.LParen)
			for _, arg := range n.ArgumentList.Arguments {
				writeExpr(arg.Expr)
				if arg.Comma != nil {
					writeTok(*arg.Comma)
				}
			}
			writeTok(n.ArgumentList.RParen)
		case *ast.Decorated:
			writeTok(n.L)
			writeExpr(n.Expr)
			writeTok(n.R)
		case *ast.Index:
			writeExpr(n.Lhs)
			writeTok(n.LBracket)
			writeExpr(n.Expr)
			writeTok(n.RBracket)
		case *ast.Unary:
			if n.Postfix {
				writeExpr(n.Operand)
				writeTok(n.Op)
			} else {
				writeTok(n.Op)
				writeExpr(n.Operand)
			}
		case *ast.Binary:
			writeExpr(n.Lhs)
			writeTok(n.Op)
			writeExpr(n.Rhs)
		case *ast.Ternary:
			writeExpr(n.Lhs)
			writeTok(n.Op1)
			writeExpr(n.Mhs)
			writeTok(n.Op2)
			writeExpr(n.Rhs)
		case *ast.ArrayInitializer:
			writeTok(n.LBracket)
			for _, item := range n.Items {
				writeExpr(item.Expr)
				if item.Comma != nil {
					writeTok(*item.Comma)
				}
			}
			writeTok(n.RBracket)
		case *ast.Match:
			writeTok(n.MatchToken)
			writeExpr(n.Expr)
			writeTok(n.Body.LBrace)
			for _, arm := range n.Body.Arms {
				writeTok(arm.Pattern)
				writeTok(arm.FatArrow)
				writeExpr(arm.Expr)
				if arm.Comma != nil {
					writeTok(*arm.Comma)
				}
			}
			writeTok(n.Body.RBrace)
		}
	}

	writeStat = func(s ast.Stat) {
		switch n := s.(type) {
		case *ast.VarDefinition:
			writeTok(n.LetToken)
			if n.MutToken != nil {
				writeTok(*n.MutToken)
			}
			writeTok(n.Identifier.Token)
			if n.Type != nil {
				writeTok(n.Type.ColonToken)
				writeTok(n.Type.Type.Token)
			}
			if n.Value != nil {
				writeTok(n.Value.EqualsToken)
				writeExpr(n.Value.Expression)
			}
			writeTok(n.Semicolon)
		case *ast.ExprStat:
			writeExpr(n.Expression)
			writeTok(n.Semicolon)
		case *ast.Block:
			writeTok(n.LBrace)
			for _, child := range n.Statements {
				writeStat(child)
			}
			writeTok(n.RBrace)
		case *ast.If:
			writeTok(n.IfToken)
			writeExpr(n.Condition)
			writeStat(n.Statement)
			if n.Else != nil {
				writeStat(n.Else)
			}
		case *ast.Else:
			writeTok(n.ElseToken)
			writeStat(n.Statement)
		case *ast.While:
			writeTok(n.WhileToken)
			writeExpr(n.Condition)
			writeStat(n.Statement)
		case *ast.For:
			writeTok(n.ForToken)
			writeTok(n.Identifier.Token)
			writeTok(n.InToken)
			writeExpr(n.Expr)
			writeStat(n.Statement)
		case *ast.FunctionDefinition:
			writeTok(n.FnToken)
			writeTok(n.Identifier.Token)
			writeTok(n.ParameterList.LParen)
			for _, param := range n.ParameterList.Parameters {
				writeTok(param.Identifier.Token)
				writeTok(param.Type.ColonToken)
				writeTok(param.Type.Type.Token)
				if param.Comma != nil {
					writeTok(*param.Comma)
				}
			}
			writeTok(n.ParameterList.RParen)
			if n.ReturnType != nil {
				writeTok(n.ReturnType.ArrowToken)
				writeTok(n.ReturnType.Type.Token)
			}
			switch n.Body.Case {
			case ast.BlockBody:
				writeStat(n.Body.Block)
			case ast.ExpressionBody:
				writeTok(*n.Body.FatArrowToken)
				writeStat(n.Body.Statement)
			}
		case *ast.Break:
			writeTok(n.BreakToken)
			writeTok(n.Semicolon)
		case *ast.Return:
			writeTok(n.ReturnToken)
			if n.Expr != nil {
				writeExpr(n.Expr)
			}
			writeTok(n.Semicolon)
		}
	}

	writeTrivia(cu.LeadingTrivia)
	for _, s := range cu.Statements {
		writeStat(s)
	}
	return b.String()
}

func TestLosslessParsing(t *testing.T) {
	inputs := []string{
		"",
		"let mut x: i32 = 5;",
		"let x = 5",
		"fn add(a: int, b: int) -> int { return a + b; }",
		"if x { y(); } else if z { w(); }",
		"while x < 10 { x = x + 1; }",
		"for i in range(0, 10) { }",
		"match x { 1 => y, 2 => z, }",
		"[1, 2, 3,]",
		"a.b::c?.d",
		"-a[0]",
		"// leading comment\nlet x = 1;",
		"fn f() => x + 1;",
	}
	for _, in := range inputs {
		cu := Parse(in)
		if got := serialize(cu); got != in {
			t.Errorf("Parse(%q) did not round-trip: got %q", in, got)
		}
	}
}

func TestEmptyInput(t *testing.T) {
	cu := Parse("")
	if len(cu.LeadingTrivia) != 0 || len(cu.Statements) != 0 {
		t.Errorf("got %+v", cu)
	}
}
