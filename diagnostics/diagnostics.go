// Package diagnostics collects and presents the MissingToken diagnostics
// embedded throughout a parsed CompilationUnit. Collection is a deep
// traversal built on top of the tree's own shallow ast.Walk (spec.md §4.5
// deliberately stops at top-level statements; a consumer recurses into
// children itself — this package is one such consumer).
package diagnostics

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/VeithBuergerhoff/ferrous/ast"
	"github.com/VeithBuergerhoff/ferrous/lexer"
)

// Entry is the JSON-stable, presentation-oriented shape of one embedded
// diagnostic: which kind of token was expected, what was actually found
// (empty at end of input), and whether the input was exhausted. It carries
// no source text or position.
type Entry struct {
	Expected string `json:"expected"`
	Actual   string `json:"actual,omitempty"`
	AtEOF    bool   `json:"atEof"`
}

// Format renders an Entry the way a terminal diagnostic line reads:
// "expected X, found Y" or "expected X, found end of input".
func (e Entry) Format() string {
	if e.AtEOF {
		return fmt.Sprintf("expected %s, found end of input", e.Expected)
	}
	return fmt.Sprintf("expected %s, found %s", e.Expected, e.Actual)
}

// Collect walks the whole tree — every statement and expression, not just
// the top level ast.Walk exposes — and returns one Entry per embedded
// MissingToken diagnostic, in source order.
func Collect(cu *ast.CompilationUnit) []Entry {
	var out []Entry
	for _, stat := range cu.Statements {
		collectStat(stat, &out)
	}
	return out
}

func collectSyntaxToken(tok ast.SyntaxToken, out *[]Entry) {
	for _, d := range tok.Diagnostics {
		if d.Kind != ast.MissingToken {
			continue
		}
		e := Entry{Expected: d.Expected.String(), AtEOF: d.Actual == nil}
		if d.Actual != nil {
			e.Actual = d.Actual.Kind.String()
		}
		*out = append(*out, e)
	}
}

func collectIdentifier(id ast.Identifier, out *[]Entry) {
	collectSyntaxToken(id.Token, out)
}

func collectTypeKind(t ast.TypeKind, out *[]Entry) {
	collectSyntaxToken(t.Token, out)
}

func collectStat(s ast.Stat, out *[]Entry) {
	switch n := s.(type) {
	case *ast.VarDefinition:
		collectSyntaxToken(n.LetToken, out)
		if n.MutToken != nil {
			collectSyntaxToken(*n.MutToken, out)
		}
		collectIdentifier(n.Identifier, out)
		if n.Type != nil {
			collectSyntaxToken(n.Type.ColonToken, out)
			collectTypeKind(n.Type.Type, out)
		}
		if n.Value != nil {
			collectSyntaxToken(n.Value.EqualsToken, out)
			collectExpr(n.Value.Expression, out)
		}
		collectSyntaxToken(n.Semicolon, out)
	case *ast.ExprStat:
		collectExpr(n.Expression, out)
		collectSyntaxToken(n.Semicolon, out)
	case *ast.Block:
		collectSyntaxToken(n.LBrace, out)
		for _, child := range n.Statements {
			collectStat(child, out)
		}
		collectSyntaxToken(n.RBrace, out)
	case *ast.If:
		collectSyntaxToken(n.IfToken, out)
		collectExpr(n.Condition, out)
		collectStat(n.Statement, out)
		if n.Else != nil {
			collectStat(n.Else, out)
		}
	case *ast.Else:
		collectSyntaxToken(n.ElseToken, out)
		collectStat(n.Statement, out)
	case *ast.While:
		collectSyntaxToken(n.WhileToken, out)
		collectExpr(n.Condition, out)
		collectStat(n.Statement, out)
	case *ast.For:
		collectSyntaxToken(n.ForToken, out)
		collectIdentifier(n.Identifier, out)
		collectSyntaxToken(n.InToken, out)
		collectExpr(n.Expr, out)
		collectStat(n.Statement, out)
	case *ast.FunctionDefinition:
		collectSyntaxToken(n.FnToken, out)
		collectIdentifier(n.Identifier, out)
		collectSyntaxToken(n.ParameterList.LParen, out)
		for _, param := range n.ParameterList.Parameters {
			collectIdentifier(param.Identifier, out)
			collectSyntaxToken(param.Type.ColonToken, out)
			collectTypeKind(param.Type.Type, out)
			if param.Comma != nil {
				collectSyntaxToken(*param.Comma, out)
			}
		}
		collectSyntaxToken(n.ParameterList.RParen, out)
		if n.ReturnType != nil {
			collectSyntaxToken(n.ReturnType.ArrowToken, out)
			collectTypeKind(n.ReturnType.Type, out)
		}
		switch n.Body.Case {
		case ast.BlockBody:
			collectStat(n.Body.Block, out)
		case ast.ExpressionBody:
			collectSyntaxToken(*n.Body.FatArrowToken, out)
			collectStat(n.Body.Statement, out)
		}
	case *ast.Break:
		collectSyntaxToken(n.BreakToken, out)
		collectSyntaxToken(n.Semicolon, out)
	case *ast.Return:
		collectSyntaxToken(n.ReturnToken, out)
		if n.Expr != nil {
			collectExpr(n.Expr, out)
		}
		collectSyntaxToken(n.Semicolon, out)
	}
}

func collectExpr(e ast.Expr, out *[]Entry) {
	switch n := e.(type) {
	case *ast.Literal:
		collectSyntaxToken(n.Token, out)
	case *ast.IdentifierUsage:
		collectIdentifier(n.Identifier, out)
	case *ast.Call:
		collectIdentifier(n.Identifier, out)
		collectSyntaxToken(n.ArgumentList.LParen, out)
		for _, arg := range n.ArgumentList.Arguments {
			collectExpr(arg.Expr, out)
			if arg.Comma != nil {
				collectSyntaxToken(*arg.Comma, out)
			}
		}
		collectSyntaxToken(n.ArgumentList.RParen, out)
	case *ast.Decorated:
		collectSyntaxToken(n.L, out)
		collectExpr(n.Expr, out)
		collectSyntaxToken(n.R, out)
	case *ast.Index:
		collectExpr(n.Lhs, out)
		collectSyntaxToken(n.LBracket, out)
		collectExpr(n.Expr, out)
		collectSyntaxToken(n.RBracket, out)
	case *ast.Unary:
		collectSyntaxToken(n.Op, out)
		collectExpr(n.Operand, out)
	case *ast.Binary:
		collectExpr(n.Lhs, out)
		collectSyntaxToken(n.Op, out)
		collectExpr(n.Rhs, out)
	case *ast.Ternary:
		collectExpr(n.Lhs, out)
		collectSyntaxToken(n.Op1, out)
		collectExpr(n.Mhs, out)
		collectSyntaxToken(n.Op2, out)
		collectExpr(n.Rhs, out)
	case *ast.ArrayInitializer:
		collectSyntaxToken(n.LBracket, out)
		for _, item := range n.Items {
			collectExpr(item.Expr, out)
			if item.Comma != nil {
				collectSyntaxToken(*item.Comma, out)
			}
		}
		collectSyntaxToken(n.RBracket, out)
	case *ast.Match:
		collectSyntaxToken(n.MatchToken, out)
		collectExpr(n.Expr, out)
		collectSyntaxToken(n.Body.LBrace, out)
		for _, arm := range n.Body.Arms {
			collectSyntaxToken(arm.Pattern, out)
			collectSyntaxToken(arm.FatArrow, out)
			collectExpr(arm.Expr, out)
			if arm.Comma != nil {
				collectSyntaxToken(*arm.Comma, out)
			}
		}
		collectSyntaxToken(n.Body.RBrace, out)
	}
}

// exportSchema constrains the shape external consumers (an editor
// extension, a CI lint step) receive from ValidateExport. Compiled once
// at package init.
const exportSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "array",
	"items": {
		"type": "object",
		"properties": {
			"expected": {"type": "string"},
			"actual": {"type": "string"},
			"atEof": {"type": "boolean"}
		},
		"required": ["expected", "atEof"],
		"additionalProperties": false
	}
}`

var exportValidator *jsonschema.Schema

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("schema://diagnostics-export.json", strings.NewReader(exportSchema)); err != nil {
		panic(err)
	}
	exportValidator = compiler.MustCompile("schema://diagnostics-export.json")
}

// ValidateExport marshals entries to JSON and validates the result against
// the package's export schema, catching a malformed Entry before it
// reaches an external consumer.
func ValidateExport(entries []Entry) error {
	if entries == nil {
		// Collect returns nil for a clean tree; export that as an empty
		// array rather than JSON null.
		entries = []Entry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal diagnostics: %w", err)
	}
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("unmarshal diagnostics for validation: %w", err)
	}
	if err := exportValidator.Validate(doc); err != nil {
		return fmt.Errorf("diagnostics export failed schema validation: %w", err)
	}
	return nil
}

// SuggestBuiltinType returns the closest built-in type name to name by
// fuzzy match, for a "did you mean" hint when a UserDefined type
// annotation is probably a misspelled built-in (e.g. "sting" -> "string").
// It returns ok=false when no built-in is a plausible match.
func SuggestBuiltinType(name string) (suggestion string, ok bool) {
	if name == "" {
		return "", false
	}
	candidates := make([]string, 0, len(lexer.BuiltinTypeNames))
	for builtin := range lexer.BuiltinTypeNames {
		candidates = append(candidates, builtin)
	}
	matches := fuzzy.RankFindNormalizedFold(name, candidates)
	if len(matches) == 0 {
		return "", false
	}
	best := matches[0]
	for _, m := range matches[1:] {
		if m.Distance < best.Distance {
			best = m
		}
	}
	return best.Target, true
}
