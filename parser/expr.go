package parser

import (
	"github.com/VeithBuergerhoff/ferrous/ast"
	"github.com/VeithBuergerhoff/ferrous/lexer"
)

// canStartExpr reports whether kind is one of the tokens the expression
// recognition predicate allows at expression position: any prefix
// operator, `(`, `[`, a literal, a boolean keyword, `match`, or an
// identifier (spec.md §4.4 "Expression recognition predicate").
func canStartExpr(kind lexer.TokenKind) bool {
	if _, ok := prefixBP[kind]; ok {
		return true
	}
	switch kind {
	case lexer.LParen, lexer.LBracket,
		lexer.StringLiteral, lexer.CharLiteral, lexer.NumberLiteral,
		lexer.TrueKeyword, lexer.FalseKeyword,
		lexer.MatchKeyword, lexer.Identifier:
		return true
	}
	return false
}

// parseExprBP is the single routine that drives the precedence climb
// (spec.md §4.4 "Expression parsing (Pratt)").
func (p *parser) parseExprBP(minBP int) ast.Expr {
	if p.debugTrace {
		p.logger.Debug().Int("minBP", minBP).Msg("parseExprBP")
	}
	left := p.parseLeftSeed()

	for {
		if p.atEOF() {
			break
		}
		kind := p.peek().Kind

		if lbp, ok := postfixBP[kind]; ok {
			if lbp < minBP {
				break
			}
			op := p.eatSyntaxToken()
			switch kind {
			case lexer.LBracket, lexer.QuestionLBracket:
				inner := p.parseExprBP(0)
				rbracket := p.expect(lexer.RBracket)
				left = &ast.Index{Lhs: left, LBracket: op, Expr: inner, RBracket: rbracket}
			default: // ++ or --
				left = &ast.Unary{Op: op, Operand: left, Postfix: true}
			}
			continue
		}

		if entry, ok := infixBP[kind]; ok {
			if entry.l < minBP {
				break
			}
			op := p.eatSyntaxToken()
			if kind == lexer.Question {
				mhs := p.parseExprBP(0)
				colon := p.expect(lexer.Colon)
				rhs := p.parseExprBP(entry.r)
				left = &ast.Ternary{Lhs: left, Op1: op, Mhs: mhs, Op2: colon, Rhs: rhs}
			} else {
				rhs := p.parseExprBP(entry.r)
				left = &ast.Binary{Lhs: left, Op: op, Rhs: rhs}
			}
			continue
		}

		break
	}

	return left
}

// parseLeftSeed parses the left-hand seed of an expression: a prefix
// operator application, a parenthesized group, or an atom.
func (p *parser) parseLeftSeed() ast.Expr {
	if p.atEOF() {
		return p.missingExpr()
	}

	kind := p.peek().Kind
	if kind != lexer.LBracket {
		if rbp, ok := prefixBP[kind]; ok {
			op := p.eatSyntaxToken()
			operand := p.parseExprBP(rbp)
			return &ast.Unary{Op: op, Operand: operand, Postfix: false}
		}
	}

	if kind == lexer.LParen {
		l := p.eatSyntaxToken()
		inner := p.parseExprBP(0)
		r := p.expect(lexer.RParen)
		return &ast.Decorated{L: l, Expr: inner, R: r}
	}

	return p.parseAtom()
}

// missingExpr is the "end of input inside a sub-production" / "no
// recognized atom" sentinel. It reuses the tree's existing missing-token
// vocabulary (an IdentifierUsage wrapping a synthesized Identifier)
// rather than introducing a dedicated sentinel node type — callers detect
// it the same way they detect any other missing token, by checking
// SyntaxToken.IsMissing (spec.md §4.4 "End-of-input inside a
// sub-production").
func (p *parser) missingExpr() ast.Expr {
	tok := p.expect(lexer.Identifier)
	return &ast.IdentifierUsage{Identifier: ast.Identifier{Token: tok}}
}

func (p *parser) parseAtom() ast.Expr {
	if p.atEOF() {
		return p.missingExpr()
	}

	switch p.peek().Kind {
	case lexer.NumberLiteral:
		return &ast.Literal{Kind: ast.NumberLiteralKind, Token: p.eatSyntaxToken()}
	case lexer.StringLiteral:
		return &ast.Literal{Kind: ast.StringLiteralKind, Token: p.eatSyntaxToken()}
	case lexer.CharLiteral:
		return &ast.Literal{Kind: ast.CharLiteralKind, Token: p.eatSyntaxToken()}
	case lexer.TrueKeyword, lexer.FalseKeyword:
		return &ast.Literal{Kind: ast.BoolLiteralKind, Token: p.eatSyntaxToken()}
	case lexer.LBracket:
		return p.parseArrayInitializer()
	case lexer.MatchKeyword:
		return p.parseMatch()
	case lexer.Identifier:
		ident := ast.Identifier{Token: p.eatSyntaxToken()}
		if !p.atEOF() && p.peek().Kind == lexer.LParen {
			return &ast.Call{Identifier: ident, ArgumentList: p.parseArgumentList()}
		}
		return &ast.IdentifierUsage{Identifier: ident}
	default:
		return p.missingExpr()
	}
}

// parseArrayInitializer parses `[ expr (, expr)* ,? ]`; an empty list is
// allowed.
func (p *parser) parseArrayInitializer() ast.Expr {
	lbracket := p.eatSyntaxToken()
	var items []ast.ArrayItem
	for !p.atEOF() && p.peek().Kind != lexer.RBracket {
		expr := p.parseExprBP(0)
		var comma *ast.SyntaxToken
		if !p.atEOF() && p.peek().Kind == lexer.Comma {
			c := p.eatSyntaxToken()
			comma = &c
		}
		items = append(items, ast.ArrayItem{Expr: expr, Comma: comma})
		if comma == nil {
			break
		}
	}
	rbracket := p.expect(lexer.RBracket)
	return &ast.ArrayInitializer{LBracket: lbracket, Items: items, RBracket: rbracket}
}

// parseMatch parses `match <expr> { (pattern => expr ,?)* }`. Patterns
// are literal tokens only (spec.md §4.4 "Atoms") — the parser consumes
// whatever token occupies that position without re-validating its kind;
// a non-literal pattern is a semantic-analysis concern, out of this
// front-end's scope.
func (p *parser) parseMatch() ast.Expr {
	matchToken := p.eatSyntaxToken()
	expr := p.parseExprBP(0)
	lbrace := p.expect(lexer.LBrace)

	var arms []ast.MatchArm
	for !p.atEOF() && p.peek().Kind != lexer.RBrace {
		pattern := p.eatSyntaxToken()
		fatArrow := p.expect(lexer.FatArrow)
		armExpr := p.parseExprBP(0)
		var comma *ast.SyntaxToken
		if !p.atEOF() && p.peek().Kind == lexer.Comma {
			c := p.eatSyntaxToken()
			comma = &c
		}
		arms = append(arms, ast.MatchArm{Pattern: pattern, FatArrow: fatArrow, Expr: armExpr, Comma: comma})
		if comma == nil {
			break
		}
	}
	rbrace := p.expect(lexer.RBrace)

	return &ast.Match{MatchToken: matchToken, Expr: expr, Body: ast.MatchBody{LBrace: lbrace, Arms: arms, RBrace: rbrace}}
}

// parseArgumentList parses a call's parenthesized, comma-separated
// argument list. The caller has already confirmed the next token is `(`.
func (p *parser) parseArgumentList() ast.ArgumentList {
	lparen := p.eatSyntaxToken()
	var args []ast.Argument
	for !p.atEOF() && p.peek().Kind != lexer.RParen {
		expr := p.parseExprBP(0)
		var comma *ast.SyntaxToken
		if !p.atEOF() && p.peek().Kind == lexer.Comma {
			c := p.eatSyntaxToken()
			comma = &c
		}
		args = append(args, ast.Argument{Expr: expr, Comma: comma})
		if comma == nil {
			break
		}
	}
	rparen := p.expect(lexer.RParen)
	return ast.ArgumentList{LParen: lparen, Arguments: args, RParen: rparen}
}
