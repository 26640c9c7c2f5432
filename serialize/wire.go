// Package serialize converts a CompilationUnit tree to and from CBOR, for
// handing the tree to an external backend collaborator (code generation is
// explicitly out of scope for this front-end, spec.md §1) without that
// collaborator depending on Go interface types. Expr/Stat are tagged
// variants at the Go-interface level; CBOR (like JSON) cannot marshal an
// interface field directly, so every node is mirrored into a flat,
// Kind-discriminated wire struct in the style of the teacher's
// CanonicalNode (core/planfmt/canonical.go) before encoding.
package serialize

import "github.com/VeithBuergerhoff/ferrous/ast"

// WireCompilationUnit mirrors ast.CompilationUnit with Statements
// converted to their wire form.
type WireCompilationUnit struct {
	LeadingTrivia []ast.Trivia `cbor:"leadingTrivia,omitempty"`
	Statements    []WireStat   `cbor:"statements,omitempty"`
}

// WireExpr is the flat, Kind-discriminated mirror of ast.Expr. Only the
// fields relevant to Kind are populated; the grouping comments match the
// Expr variant each field set belongs to.
type WireExpr struct {
	Kind string `cbor:"kind"`

	// Literal
	LiteralKind *ast.LiteralKind `cbor:"literalKind,omitempty"`
	Token       *ast.SyntaxToken `cbor:"token,omitempty"`

	// IdentifierUsage, Call
	Identifier *ast.Identifier `cbor:"identifier,omitempty"`

	// Call
	ArgumentList *WireArgumentList `cbor:"argumentList,omitempty"`

	// Decorated (L, Expr, R); Index (Lhs, LBracket, Expr, RBracket)
	L        *ast.SyntaxToken `cbor:"l,omitempty"`
	R        *ast.SyntaxToken `cbor:"r,omitempty"`
	Lhs      *WireExpr        `cbor:"lhs,omitempty"`
	LBracket *ast.SyntaxToken `cbor:"lBracket,omitempty"`
	Expr     *WireExpr        `cbor:"expr,omitempty"`
	RBracket *ast.SyntaxToken `cbor:"rBracket,omitempty"`

	// Unary (Op, Operand, Postfix); Binary (Lhs, Op, Rhs)
	Op      *ast.SyntaxToken `cbor:"op,omitempty"`
	Operand *WireExpr        `cbor:"operand,omitempty"`
	Postfix bool             `cbor:"postfix,omitempty"`
	Rhs     *WireExpr        `cbor:"rhs,omitempty"`

	// Ternary (Lhs, Op1, Mhs, Op2, Rhs)
	Op1 *ast.SyntaxToken `cbor:"op1,omitempty"`
	Mhs *WireExpr        `cbor:"mhs,omitempty"`
	Op2 *ast.SyntaxToken `cbor:"op2,omitempty"`

	// ArrayInitializer (LBracket, Items, RBracket)
	Items []WireArrayItem `cbor:"items,omitempty"`

	// Match (MatchToken, Expr, Body)
	MatchToken *ast.SyntaxToken `cbor:"matchToken,omitempty"`
	Body       *WireMatchBody   `cbor:"matchBody,omitempty"`
}

// WireArgumentList mirrors ast.ArgumentList.
type WireArgumentList struct {
	LParen    ast.SyntaxToken `cbor:"lParen"`
	Arguments []WireArgument  `cbor:"arguments,omitempty"`
	RParen    ast.SyntaxToken `cbor:"rParen"`
}

// WireArgument mirrors ast.Argument.
type WireArgument struct {
	Expr  WireExpr         `cbor:"expr"`
	Comma *ast.SyntaxToken `cbor:"comma,omitempty"`
}

// WireArrayItem mirrors ast.ArrayItem.
type WireArrayItem struct {
	Expr  WireExpr         `cbor:"expr"`
	Comma *ast.SyntaxToken `cbor:"comma,omitempty"`
}

// WireMatchBody mirrors ast.MatchBody.
type WireMatchBody struct {
	LBrace ast.SyntaxToken `cbor:"lBrace"`
	Arms   []WireMatchArm  `cbor:"arms,omitempty"`
	RBrace ast.SyntaxToken `cbor:"rBrace"`
}

// WireMatchArm mirrors ast.MatchArm.
type WireMatchArm struct {
	Pattern  ast.SyntaxToken  `cbor:"pattern"`
	FatArrow ast.SyntaxToken  `cbor:"fatArrow"`
	Expr     WireExpr         `cbor:"expr"`
	Comma    *ast.SyntaxToken `cbor:"comma,omitempty"`
}

// WireStat is the flat, Kind-discriminated mirror of ast.Stat.
type WireStat struct {
	Kind string `cbor:"kind"`

	// VarDefinition
	LetToken   *ast.SyntaxToken    `cbor:"letToken,omitempty"`
	MutToken   *ast.SyntaxToken    `cbor:"mutToken,omitempty"`
	Identifier *ast.Identifier     `cbor:"identifier,omitempty"`
	Type       *WireTypeAnnotation `cbor:"type,omitempty"`
	Value      *WireEqualsValue    `cbor:"value,omitempty"`
	Semicolon  *ast.SyntaxToken    `cbor:"semicolon,omitempty"`

	// ExprStat
	Expression *WireExpr `cbor:"expression,omitempty"`

	// Block
	LBrace     *ast.SyntaxToken `cbor:"lBrace,omitempty"`
	Statements []WireStat       `cbor:"statements,omitempty"`
	RBrace     *ast.SyntaxToken `cbor:"rBrace,omitempty"`

	// If, While, For, Else share Condition/Statement/Else
	IfToken    *ast.SyntaxToken `cbor:"ifToken,omitempty"`
	WhileToken *ast.SyntaxToken `cbor:"whileToken,omitempty"`
	ElseToken  *ast.SyntaxToken `cbor:"elseToken,omitempty"`
	Condition  *WireExpr        `cbor:"condition,omitempty"`
	Statement  *WireStat        `cbor:"statement,omitempty"`
	Else       *WireStat        `cbor:"else,omitempty"`

	// For
	ForToken *ast.SyntaxToken `cbor:"forToken,omitempty"`
	InToken  *ast.SyntaxToken `cbor:"inToken,omitempty"`
	Expr     *WireExpr        `cbor:"expr,omitempty"`

	// FunctionDefinition
	FnToken       *ast.SyntaxToken   `cbor:"fnToken,omitempty"`
	ParameterList *ast.ParameterList `cbor:"parameterList,omitempty"`
	ReturnType    *ast.ReturnType    `cbor:"returnType,omitempty"`
	Body          *WireFunctionBody  `cbor:"body,omitempty"`

	// Break, Return
	BreakToken  *ast.SyntaxToken `cbor:"breakToken,omitempty"`
	ReturnToken *ast.SyntaxToken `cbor:"returnToken,omitempty"`
}

// WireEqualsValue mirrors ast.EqualsValue.
type WireEqualsValue struct {
	EqualsToken ast.SyntaxToken `cbor:"equalsToken"`
	Expression  WireExpr        `cbor:"expression"`
}

// WireTypeAnnotation mirrors ast.TypeAnnotation.
type WireTypeAnnotation struct {
	ColonToken ast.SyntaxToken `cbor:"colonToken"`
	Type       ast.TypeKind    `cbor:"typeKind"`
}

// WireFunctionBody mirrors ast.FunctionBody; Block, when present, is
// always Kind == "Block".
type WireFunctionBody struct {
	Case          ast.FunctionBodyCase `cbor:"case"`
	Block         *WireStat            `cbor:"block,omitempty"`
	FatArrowToken *ast.SyntaxToken     `cbor:"fatArrowToken,omitempty"`
	Statement     *WireStat            `cbor:"statement,omitempty"`
}
