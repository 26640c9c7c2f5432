package parser

import (
	"testing"

	"github.com/VeithBuergerhoff/ferrous/ast"
	"github.com/VeithBuergerhoff/ferrous/lexer"
)

func TestMissingSemicolonScenario(t *testing.T) {
	cu := Parse("let x = 5")
	def := cu.Statements[0].(*ast.VarDefinition)
	if !def.Semicolon.IsMissing() {
		t.Fatalf("expected missing semicolon, got %+v", def.Semicolon)
	}
	if len(def.Semicolon.Diagnostics) != 1 {
		t.Fatalf("got %d diagnostics", len(def.Semicolon.Diagnostics))
	}
	diag := def.Semicolon.Diagnostics[0]
	if diag.Kind != ast.MissingToken || diag.Expected != lexer.Semicolon || diag.Actual != nil {
		t.Errorf("got %+v", diag)
	}
}

func TestStatementLevelErrorRecovery(t *testing.T) {
	var telemetry ParseTelemetry
	cu := GenerateAST(lexer.Collect(") let x = 1;"), WithTelemetry(&telemetry))
	if len(cu.Statements) != 1 {
		t.Fatalf("got %d statements, want 1 (the stray ')' should be skipped)", len(cu.Statements))
	}
	if telemetry.SkippedTokenCount != 1 {
		t.Errorf("got SkippedTokenCount=%d, want 1", telemetry.SkippedTokenCount)
	}
	if _, ok := cu.Statements[0].(*ast.VarDefinition); !ok {
		t.Errorf("got %T", cu.Statements[0])
	}
}
