package parser

import (
	"github.com/VeithBuergerhoff/ferrous/ast"
	"github.com/VeithBuergerhoff/ferrous/lexer"
)

// GenerateAST parses a materialized token buffer into a CompilationUnit.
// tokens is typically the output of lexer.Collect — trivia included; the
// parser drains it at structural boundaries itself (spec.md §4.4).
func GenerateAST(tokens []lexer.Token, opts ...Option) *ast.CompilationUnit {
	p := &parser{tokens: tokens}
	for _, opt := range opts {
		opt(p)
	}
	if p.telemetry != nil {
		p.telemetry.TokenCount = len(tokens)
	}

	cu := &ast.CompilationUnit{LeadingTrivia: p.drainLeadingTrivia()}
	for !p.atEOF() {
		if stat, ok := p.parseStatement(); ok {
			cu.Statements = append(cu.Statements, stat)
		}
	}
	return cu
}

// Parse tokenizes and parses source text in one step, the composition of
// lexer.Collect and GenerateAST spec.md §6 describes as the public,
// language-neutral API (tokenize, then generate_ast).
func Parse(source string, opts ...Option) *ast.CompilationUnit {
	return GenerateAST(lexer.Collect(source), opts...)
}
