package parser

import (
	"github.com/VeithBuergerhoff/ferrous/ast"
	"github.com/VeithBuergerhoff/ferrous/lexer"
	"github.com/rs/zerolog"
)

// parser holds the eagerly materialized token buffer and the parse
// position. Trivia is never filtered out of the buffer — it is drained at
// structural boundaries and attached to the SyntaxToken it trails
// (spec.md §4.4 "Trivia attachment rule").
type parser struct {
	tokens []lexer.Token
	pos    int

	logger     zerolog.Logger
	debugTrace bool
	telemetry  *ParseTelemetry
}

// invariant maintained by every method below: once pos has been
// initialized by drainLeadingTrivia, tokens[pos] is always a significant
// token, or pos == len(tokens).

func (p *parser) atEOF() bool {
	return p.pos >= len(p.tokens)
}

// peek returns the current significant token. Callers must check atEOF
// first; peek past the end of the buffer is a programmer error.
func (p *parser) peek() lexer.Token {
	return p.tokens[p.pos]
}

// drainLeadingTrivia consumes any trivia at the very start of the buffer
// into the CompilationUnit's leading trivia list, leaving pos at the
// first significant token (or at EOF if the source is all trivia).
func (p *parser) drainLeadingTrivia() []ast.Trivia {
	var leading []ast.Trivia
	for p.pos < len(p.tokens) && p.tokens[p.pos].Kind.IsTrivia() {
		leading = append(leading, ast.Trivia{Token: p.tokens[p.pos]})
		p.pos++
	}
	return leading
}

// eatSyntaxToken consumes the current significant token (the caller must
// already know it is present and of the expected shape) and drains every
// trivia token following it up to the next significant token, attaching
// them as the SyntaxToken's trivia list.
func (p *parser) eatSyntaxToken() ast.SyntaxToken {
	tok := p.tokens[p.pos]
	p.pos++
	var trivia []ast.Trivia
	for p.pos < len(p.tokens) && p.tokens[p.pos].Kind.IsTrivia() {
		trivia = append(trivia, ast.Trivia{Token: p.tokens[p.pos]})
		p.pos++
	}
	return ast.SyntaxToken{Token: tok, Trivia: trivia}
}

// expect consumes the current token if it matches kind, otherwise
// synthesizes a zero-length missing token carrying a MissingToken
// diagnostic and leaves the input position unchanged (spec.md §4.4
// "Error recovery").
func (p *parser) expect(kind lexer.TokenKind) ast.SyntaxToken {
	if !p.atEOF() && p.peek().Kind == kind {
		return p.eatSyntaxToken()
	}

	var actual *lexer.Token
	if !p.atEOF() {
		tok := p.peek()
		actual = &tok
	}
	if p.telemetry != nil {
		p.telemetry.MissingTokenCount++
	}
	p.logger.Debug().Str("expected", kind.String()).Msg("missing token")
	return ast.SyntaxToken{
		Token: lexer.Token{Kind: kind},
		Diagnostics: []ast.Diagnostic{
			{Kind: ast.MissingToken, Expected: kind, Actual: actual},
		},
	}
}

// skip discards the current significant token during statement-boundary
// error recovery. The trivia following it is skipped as well, so neither
// the discarded token nor its trailing trivia appears anywhere in the tree,
// and no diagnostic records them.
func (p *parser) skip() {
	p.pos++
	for p.pos < len(p.tokens) && p.tokens[p.pos].Kind.IsTrivia() {
		p.pos++
	}
	if p.telemetry != nil {
		p.telemetry.SkippedTokenCount++
	}
}
