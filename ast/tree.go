// Package ast defines the lossless concrete syntax tree produced by the
// parser: tagged-variant Expr/Stat nodes built from SyntaxTokens that carry
// their own trivia and diagnostics. Walking the tree in order and
// concatenating every token and its attached trivia reproduces the
// original source exactly (spec.md §3, "Core invariants").
package ast

import "github.com/VeithBuergerhoff/ferrous/lexer"

// Trivia is a lexical element irrelevant to semantics (whitespace,
// newlines, comments) that is preserved for lossless round-tripping. It
// never carries a diagnostic (spec.md §3, "Diagnostics are never attached
// to trivia").
type Trivia struct {
	Token lexer.Token
}

// DiagnosticKind is the closed set of diagnostic shapes a SyntaxToken can
// carry. MissingToken is the only kind spec.md defines.
type DiagnosticKind int

const (
	MissingToken DiagnosticKind = iota
)

// Diagnostic describes an error at the position of the SyntaxToken it is
// attached to. Expected/Actual are only meaningful for MissingToken:
// Expected is the kind of token the grammar required, Actual is the token
// that was actually found (nil when the input was exhausted).
type Diagnostic struct {
	Kind     DiagnosticKind
	Expected lexer.TokenKind
	Actual   *lexer.Token
}

// SyntaxToken wraps a significant Token with the trivia that followed it
// (up to, but excluding, the next significant token) and any diagnostics
// attached at this position. Trivia ordering is source order.
type SyntaxToken struct {
	Token       lexer.Token
	Trivia      []Trivia
	Diagnostics []Diagnostic
}

// IsMissing reports whether this syntax token is a synthesized
// placeholder for an expected-but-absent token (Len == 0, spec.md §3).
func (t SyntaxToken) IsMissing() bool {
	return t.Token.Len == 0 && len(t.Token.Value) == 0
}

// CompilationUnit is the root of the tree: any trivia preceding the first
// significant token, followed by the top-level statements in source
// order.
type CompilationUnit struct {
	LeadingTrivia []Trivia
	Statements    []Stat
}

// Walk invokes callback for each top-level statement in source order.
// Recursive descent into a statement's children is the caller's
// responsibility — this keeps traversal policy (pre-order, post-order,
// abort-on-error) in the consumer rather than baked into the tree
// (spec.md §4.5).
func (c *CompilationUnit) Walk(callback func(Stat)) {
	for _, stat := range c.Statements {
		callback(stat)
	}
}
