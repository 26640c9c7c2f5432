package parser

import (
	"github.com/VeithBuergerhoff/ferrous/ast"
	"github.com/VeithBuergerhoff/ferrous/lexer"
)

// parseStatement dispatches on the next significant token (spec.md §4.4
// "Statement dispatch"). ok is false when the current token matched no
// production and was discarded as part of error recovery — the caller
// should simply loop and try again.
func (p *parser) parseStatement() (stat ast.Stat, ok bool) {
	if p.debugTrace {
		p.logger.Debug().Str("token", p.peek().Kind.String()).Msg("parseStatement")
	}
	switch p.peek().Kind {
	case lexer.LetKeyword:
		return p.parseVarDefinition(), true
	case lexer.LBrace:
		return p.parseBlock(), true
	case lexer.IfKeyword:
		return p.parseIf(), true
	case lexer.BreakKeyword:
		return p.parseBreak(), true
	case lexer.ReturnKeyword:
		return p.parseReturn(), true
	case lexer.WhileKeyword:
		return p.parseWhile(), true
	case lexer.FunctionKeyword:
		return p.parseFunctionDefinition(), true
	case lexer.ForKeyword:
		return p.parseFor(), true
	default:
		if canStartExpr(p.peek().Kind) {
			return p.parseExprStat(), true
		}
		p.skip()
		return nil, false
	}
}

// parseRequiredStatement parses exactly one statement, skipping
// unrecognized tokens along the way, for grammar positions that always
// need a single Stat child (if/while/for bodies, else clauses). If the
// input is exhausted before any statement is produced, it synthesizes an
// empty Block whose braces are both missing tokens — the same
// "end of input inside a sub-production" sentinel approach used for
// expressions (spec.md §4.4).
func (p *parser) parseRequiredStatement() ast.Stat {
	for !p.atEOF() {
		if s, ok := p.parseStatement(); ok {
			return s
		}
	}
	return &ast.Block{LBrace: p.expect(lexer.LBrace), RBrace: p.expect(lexer.RBrace)}
}

func (p *parser) parseIdentifier() ast.Identifier {
	return ast.Identifier{Token: p.expect(lexer.Identifier)}
}

// parseTypeKind parses a single identifier and classifies it Internal or
// UserDefined against lexer.BuiltinTypeNames (spec.md §4.4 "Type
// reference").
func (p *parser) parseTypeKind() ast.TypeKind {
	tok := p.expect(lexer.Identifier)
	kindCase := ast.UserDefinedType
	if lexer.BuiltinTypeNames[tok.Token.Value] {
		kindCase = ast.InternalType
	}
	return ast.TypeKind{Case: kindCase, Token: tok}
}

// parseVarDefinition parses `let [mut] <ident> [: <type>] [= <expr>] ;`.
func (p *parser) parseVarDefinition() ast.Stat {
	letToken := p.eatSyntaxToken()

	var mutToken *ast.SyntaxToken
	if !p.atEOF() && p.peek().Kind == lexer.MutKeyword {
		t := p.eatSyntaxToken()
		mutToken = &t
	}

	identifier := p.parseIdentifier()

	var typeAnn *ast.TypeAnnotation
	if !p.atEOF() && p.peek().Kind == lexer.Colon {
		colon := p.eatSyntaxToken()
		typeAnn = &ast.TypeAnnotation{ColonToken: colon, Type: p.parseTypeKind()}
	}

	var value *ast.EqualsValue
	if !p.atEOF() && p.peek().Kind == lexer.Equal {
		equals := p.eatSyntaxToken()
		value = &ast.EqualsValue{EqualsToken: equals, Expression: p.parseExprBP(0)}
	}

	semicolon := p.expect(lexer.Semicolon)

	return &ast.VarDefinition{
		LetToken:   letToken,
		MutToken:   mutToken,
		Identifier: identifier,
		Type:       typeAnn,
		Value:      value,
		Semicolon:  semicolon,
	}
}

// parseBlock parses a brace-delimited statement sequence. An unterminated
// block still produces a well-formed node: the closing brace becomes a
// synthesized missing token (spec.md §4.3).
func (p *parser) parseBlock() *ast.Block {
	lbrace := p.expect(lexer.LBrace)
	var statements []ast.Stat
	for !p.atEOF() && p.peek().Kind != lexer.RBrace {
		if s, ok := p.parseStatement(); ok {
			statements = append(statements, s)
		}
	}
	rbrace := p.expect(lexer.RBrace)
	return &ast.Block{LBrace: lbrace, Statements: statements, RBrace: rbrace}
}

// parseIf parses `if <expr> <statement> [else <statement>]`. `else if` is
// represented naturally: the Else node's Statement is itself an *If.
func (p *parser) parseIf() ast.Stat {
	ifToken := p.eatSyntaxToken()
	condition := p.parseExprBP(0)
	statement := p.parseRequiredStatement()

	var elseClause *ast.Else
	if !p.atEOF() && p.peek().Kind == lexer.ElseKeyword {
		elseToken := p.eatSyntaxToken()
		elseClause = &ast.Else{ElseToken: elseToken, Statement: p.parseRequiredStatement()}
	}

	return &ast.If{IfToken: ifToken, Condition: condition, Statement: statement, Else: elseClause}
}

func (p *parser) parseWhile() ast.Stat {
	whileToken := p.eatSyntaxToken()
	condition := p.parseExprBP(0)
	statement := p.parseRequiredStatement()
	return &ast.While{WhileToken: whileToken, Condition: condition, Statement: statement}
}

func (p *parser) parseFor() ast.Stat {
	forToken := p.eatSyntaxToken()
	identifier := p.parseIdentifier()
	inToken := p.expect(lexer.InKeyword)
	expr := p.parseExprBP(0)
	statement := p.parseRequiredStatement()
	return &ast.For{ForToken: forToken, Identifier: identifier, InToken: inToken, Expr: expr, Statement: statement}
}

func (p *parser) parseBreak() ast.Stat {
	breakToken := p.eatSyntaxToken()
	semicolon := p.expect(lexer.Semicolon)
	return &ast.Break{BreakToken: breakToken, Semicolon: semicolon}
}

func (p *parser) parseReturn() ast.Stat {
	returnToken := p.eatSyntaxToken()
	var expr ast.Expr
	if !p.atEOF() && canStartExpr(p.peek().Kind) {
		expr = p.parseExprBP(0)
	}
	semicolon := p.expect(lexer.Semicolon)
	return &ast.Return{ReturnToken: returnToken, Expr: expr, Semicolon: semicolon}
}

func (p *parser) parseExprStat() ast.Stat {
	expr := p.parseExprBP(0)
	semicolon := p.expect(lexer.Semicolon)
	return &ast.ExprStat{Expression: expr, Semicolon: semicolon}
}

// parseFunctionDefinition parses `fn <ident> ( <params> ) [-> <type>]
// <body>`.
func (p *parser) parseFunctionDefinition() ast.Stat {
	fnToken := p.eatSyntaxToken()
	identifier := p.parseIdentifier()
	parameterList := p.parseParameterList()

	var returnType *ast.ReturnType
	if !p.atEOF() && p.peek().Kind == lexer.Arrow {
		arrow := p.eatSyntaxToken()
		returnType = &ast.ReturnType{ArrowToken: arrow, Type: p.parseTypeKind()}
	}

	body := p.parseFunctionBody()

	return &ast.FunctionDefinition{
		FnToken:       fnToken,
		Identifier:    identifier,
		ParameterList: parameterList,
		ReturnType:    returnType,
		Body:          body,
	}
}

// parseParameterList parses a parenthesized, comma-separated parameter
// list. Each parameter's optional trailing comma is parsed as part of
// that parameter (spec.md §4.4 "Function definition").
func (p *parser) parseParameterList() ast.ParameterList {
	lparen := p.expect(lexer.LParen)
	var params []ast.Parameter
	for !p.atEOF() && p.peek().Kind != lexer.RParen {
		identifier := p.parseIdentifier()
		colon := p.expect(lexer.Colon)
		typeKind := p.parseTypeKind()
		var comma *ast.SyntaxToken
		if !p.atEOF() && p.peek().Kind == lexer.Comma {
			c := p.eatSyntaxToken()
			comma = &c
		}
		params = append(params, ast.Parameter{Identifier: identifier, Type: ast.TypeAnnotation{ColonToken: colon, Type: typeKind}, Comma: comma})
		if comma == nil {
			break
		}
	}
	rparen := p.expect(lexer.RParen)
	return ast.ParameterList{LParen: lparen, Parameters: params, RParen: rparen}
}

// parseFunctionBody selects ExpressionBody when `=>` is the next
// significant token, otherwise a Block (spec.md §4.3).
func (p *parser) parseFunctionBody() ast.FunctionBody {
	if !p.atEOF() && p.peek().Kind == lexer.FatArrow {
		fatArrow := p.eatSyntaxToken()
		statement := p.parseRequiredStatement()
		return ast.FunctionBody{Case: ast.ExpressionBody, FatArrowToken: &fatArrow, Statement: statement}
	}
	return ast.FunctionBody{Case: ast.BlockBody, Block: p.parseBlock()}
}
