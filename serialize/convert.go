package serialize

import "github.com/VeithBuergerhoff/ferrous/ast"

func toWireCompilationUnit(cu *ast.CompilationUnit) WireCompilationUnit {
	w := WireCompilationUnit{LeadingTrivia: cu.LeadingTrivia}
	for _, s := range cu.Statements {
		w.Statements = append(w.Statements, toWireStat(s))
	}
	return w
}

func fromWireCompilationUnit(w WireCompilationUnit) *ast.CompilationUnit {
	cu := &ast.CompilationUnit{LeadingTrivia: w.LeadingTrivia}
	for _, s := range w.Statements {
		cu.Statements = append(cu.Statements, fromWireStat(s))
	}
	return cu
}

func toWireExprPtr(e ast.Expr) *WireExpr {
	if e == nil {
		return nil
	}
	w := toWireExpr(e)
	return &w
}

func toWireExpr(e ast.Expr) WireExpr {
	switch n := e.(type) {
	case *ast.Literal:
		kind := n.Kind
		return WireExpr{Kind: "Literal", LiteralKind: &kind, Token: &n.Token}
	case *ast.IdentifierUsage:
		ident := n.Identifier
		return WireExpr{Kind: "IdentifierUsage", Identifier: &ident}
	case *ast.Call:
		ident := n.Identifier
		args := toWireArgumentList(n.ArgumentList)
		return WireExpr{Kind: "Call", Identifier: &ident, ArgumentList: &args}
	case *ast.Decorated:
		l, r := n.L, n.R
		return WireExpr{Kind: "Decorated", L: &l, Expr: toWireExprPtr(n.Expr), R: &r}
	case *ast.Index:
		lbracket, rbracket := n.LBracket, n.RBracket
		return WireExpr{Kind: "Index", Lhs: toWireExprPtr(n.Lhs), LBracket: &lbracket, Expr: toWireExprPtr(n.Expr), RBracket: &rbracket}
	case *ast.Unary:
		op := n.Op
		return WireExpr{Kind: "Unary", Op: &op, Operand: toWireExprPtr(n.Operand), Postfix: n.Postfix}
	case *ast.Binary:
		op := n.Op
		return WireExpr{Kind: "Binary", Lhs: toWireExprPtr(n.Lhs), Op: &op, Rhs: toWireExprPtr(n.Rhs)}
	case *ast.Ternary:
		op1, op2 := n.Op1, n.Op2
		return WireExpr{Kind: "Ternary", Lhs: toWireExprPtr(n.Lhs), Op1: &op1, Mhs: toWireExprPtr(n.Mhs), Op2: &op2, Rhs: toWireExprPtr(n.Rhs)}
	case *ast.ArrayInitializer:
		lbracket, rbracket := n.LBracket, n.RBracket
		items := make([]WireArrayItem, len(n.Items))
		for i, item := range n.Items {
			items[i] = WireArrayItem{Expr: toWireExpr(item.Expr), Comma: item.Comma}
		}
		return WireExpr{Kind: "ArrayInitializer", LBracket: &lbracket, Items: items, RBracket: &rbracket}
	case *ast.Match:
		matchToken := n.MatchToken
		arms := make([]WireMatchArm, len(n.Body.Arms))
		for i, arm := range n.Body.Arms {
			arms[i] = WireMatchArm{Pattern: arm.Pattern, FatArrow: arm.FatArrow, Expr: toWireExpr(arm.Expr), Comma: arm.Comma}
		}
		body := WireMatchBody{LBrace: n.Body.LBrace, Arms: arms, RBrace: n.Body.RBrace}
		return WireExpr{Kind: "Match", MatchToken: &matchToken, Expr: toWireExprPtr(n.Expr), Body: &body}
	default:
		panic("serialize: unhandled Expr variant")
	}
}

func toWireArgumentList(a ast.ArgumentList) WireArgumentList {
	args := make([]WireArgument, len(a.Arguments))
	for i, arg := range a.Arguments {
		args[i] = WireArgument{Expr: toWireExpr(arg.Expr), Comma: arg.Comma}
	}
	return WireArgumentList{LParen: a.LParen, Arguments: args, RParen: a.RParen}
}

func fromWireExpr(w WireExpr) ast.Expr {
	switch w.Kind {
	case "Literal":
		return &ast.Literal{Kind: *w.LiteralKind, Token: *w.Token}
	case "IdentifierUsage":
		return &ast.IdentifierUsage{Identifier: *w.Identifier}
	case "Call":
		return &ast.Call{Identifier: *w.Identifier, ArgumentList: fromWireArgumentList(*w.ArgumentList)}
	case "Decorated":
		return &ast.Decorated{L: *w.L, Expr: fromWireExprPtr(w.Expr), R: *w.R}
	case "Index":
		return &ast.Index{Lhs: fromWireExprPtr(w.Lhs), LBracket: *w.LBracket, Expr: fromWireExprPtr(w.Expr), RBracket: *w.RBracket}
	case "Unary":
		return &ast.Unary{Op: *w.Op, Operand: fromWireExprPtr(w.Operand), Postfix: w.Postfix}
	case "Binary":
		return &ast.Binary{Lhs: fromWireExprPtr(w.Lhs), Op: *w.Op, Rhs: fromWireExprPtr(w.Rhs)}
	case "Ternary":
		return &ast.Ternary{Lhs: fromWireExprPtr(w.Lhs), Op1: *w.Op1, Mhs: fromWireExprPtr(w.Mhs), Op2: *w.Op2, Rhs: fromWireExprPtr(w.Rhs)}
	case "ArrayInitializer":
		var items []ast.ArrayItem
		for _, item := range w.Items {
			items = append(items, ast.ArrayItem{Expr: fromWireExpr(item.Expr), Comma: item.Comma})
		}
		return &ast.ArrayInitializer{LBracket: *w.LBracket, Items: items, RBracket: *w.RBracket}
	case "Match":
		var arms []ast.MatchArm
		for _, arm := range w.Body.Arms {
			arms = append(arms, ast.MatchArm{Pattern: arm.Pattern, FatArrow: arm.FatArrow, Expr: fromWireExpr(arm.Expr), Comma: arm.Comma})
		}
		return &ast.Match{MatchToken: *w.MatchToken, Expr: fromWireExprPtr(w.Expr), Body: ast.MatchBody{LBrace: w.Body.LBrace, Arms: arms, RBrace: w.Body.RBrace}}
	default:
		panic("serialize: unhandled wire Expr kind " + w.Kind)
	}
}

func fromWireExprPtr(w *WireExpr) ast.Expr {
	if w == nil {
		return nil
	}
	return fromWireExpr(*w)
}

func fromWireArgumentList(w WireArgumentList) ast.ArgumentList {
	var args []ast.Argument
	for _, arg := range w.Arguments {
		args = append(args, ast.Argument{Expr: fromWireExpr(arg.Expr), Comma: arg.Comma})
	}
	return ast.ArgumentList{LParen: w.LParen, Arguments: args, RParen: w.RParen}
}

func toWireStatPtr(s ast.Stat) *WireStat {
	if s == nil {
		return nil
	}
	w := toWireStat(s)
	return &w
}

func toWireStat(s ast.Stat) WireStat {
	switch n := s.(type) {
	case *ast.VarDefinition:
		var typeAnn *WireTypeAnnotation
		if n.Type != nil {
			typeAnn = &WireTypeAnnotation{ColonToken: n.Type.ColonToken, Type: n.Type.Type}
		}
		var value *WireEqualsValue
		if n.Value != nil {
			value = &WireEqualsValue{EqualsToken: n.Value.EqualsToken, Expression: toWireExpr(n.Value.Expression)}
		}
		ident := n.Identifier
		semicolon := n.Semicolon
		return WireStat{Kind: "VarDefinition", LetToken: &n.LetToken, MutToken: n.MutToken, Identifier: &ident, Type: typeAnn, Value: value, Semicolon: &semicolon}
	case *ast.ExprStat:
		semicolon := n.Semicolon
		return WireStat{Kind: "ExprStat", Expression: toWireExprPtr(n.Expression), Semicolon: &semicolon}
	case *ast.Block:
		lbrace, rbrace := n.LBrace, n.RBrace
		stmts := make([]WireStat, len(n.Statements))
		for i, st := range n.Statements {
			stmts[i] = toWireStat(st)
		}
		return WireStat{Kind: "Block", LBrace: &lbrace, Statements: stmts, RBrace: &rbrace}
	case *ast.If:
		ifToken := n.IfToken
		return WireStat{Kind: "If", IfToken: &ifToken, Condition: toWireExprPtr(n.Condition), Statement: toWireStatPtr(n.Statement), Else: toWireStatPtr(wrapElse(n.Else))}
	case *ast.Else:
		elseToken := n.ElseToken
		return WireStat{Kind: "Else", ElseToken: &elseToken, Statement: toWireStatPtr(n.Statement)}
	case *ast.While:
		whileToken := n.WhileToken
		return WireStat{Kind: "While", WhileToken: &whileToken, Condition: toWireExprPtr(n.Condition), Statement: toWireStatPtr(n.Statement)}
	case *ast.For:
		forToken, inToken := n.ForToken, n.InToken
		ident := n.Identifier
		return WireStat{Kind: "For", ForToken: &forToken, Identifier: &ident, InToken: &inToken, Expr: toWireExprPtr(n.Expr), Statement: toWireStatPtr(n.Statement)}
	case *ast.FunctionDefinition:
		fnToken := n.FnToken
		ident := n.Identifier
		params := n.ParameterList
		body := toWireFunctionBody(n.Body)
		return WireStat{Kind: "FunctionDefinition", FnToken: &fnToken, Identifier: &ident, ParameterList: &params, ReturnType: n.ReturnType, Body: &body}
	case *ast.Break:
		breakToken, semicolon := n.BreakToken, n.Semicolon
		return WireStat{Kind: "Break", BreakToken: &breakToken, Semicolon: &semicolon}
	case *ast.Return:
		returnToken, semicolon := n.ReturnToken, n.Semicolon
		return WireStat{Kind: "Return", ReturnToken: &returnToken, Expr: toWireExprPtr(n.Expr), Semicolon: &semicolon}
	default:
		panic("serialize: unhandled Stat variant")
	}
}

// wrapElse lets toWireStatPtr accept the concrete *ast.Else nil-check
// uniformly with every other Stat (a bare *ast.Else(nil) assigned to the
// ast.Stat interface is non-nil as an interface value, so the nil check
// must happen before the conversion to interface).
func wrapElse(e *ast.Else) ast.Stat {
	if e == nil {
		return nil
	}
	return e
}

func fromWireFunctionBody(w WireFunctionBody) ast.FunctionBody {
	fb := ast.FunctionBody{Case: w.Case, FatArrowToken: w.FatArrowToken}
	if w.Block != nil {
		block := fromWireStat(*w.Block).(*ast.Block)
		fb.Block = block
	}
	if w.Statement != nil {
		fb.Statement = fromWireStat(*w.Statement)
	}
	return fb
}

func toWireFunctionBody(fb ast.FunctionBody) WireFunctionBody {
	w := WireFunctionBody{Case: fb.Case, FatArrowToken: fb.FatArrowToken}
	if fb.Block != nil {
		w.Block = toWireStatPtr(fb.Block)
	}
	if fb.Statement != nil {
		w.Statement = toWireStatPtr(fb.Statement)
	}
	return w
}

func fromWireStatPtr(w *WireStat) ast.Stat {
	if w == nil {
		return nil
	}
	return fromWireStat(*w)
}

func fromWireStat(w WireStat) ast.Stat {
	switch w.Kind {
	case "VarDefinition":
		var typeAnn *ast.TypeAnnotation
		if w.Type != nil {
			typeAnn = &ast.TypeAnnotation{ColonToken: w.Type.ColonToken, Type: w.Type.Type}
		}
		var value *ast.EqualsValue
		if w.Value != nil {
			value = &ast.EqualsValue{EqualsToken: w.Value.EqualsToken, Expression: fromWireExpr(w.Value.Expression)}
		}
		return &ast.VarDefinition{LetToken: *w.LetToken, MutToken: w.MutToken, Identifier: *w.Identifier, Type: typeAnn, Value: value, Semicolon: *w.Semicolon}
	case "ExprStat":
		return &ast.ExprStat{Expression: fromWireExprPtr(w.Expression), Semicolon: *w.Semicolon}
	case "Block":
		var stmts []ast.Stat
		for _, st := range w.Statements {
			stmts = append(stmts, fromWireStat(st))
		}
		return &ast.Block{LBrace: *w.LBrace, Statements: stmts, RBrace: *w.RBrace}
	case "If":
		var elseClause *ast.Else
		if w.Else != nil {
			elseClause = fromWireStatPtr(w.Else).(*ast.Else)
		}
		return &ast.If{IfToken: *w.IfToken, Condition: fromWireExprPtr(w.Condition), Statement: fromWireStatPtr(w.Statement), Else: elseClause}
	case "Else":
		return &ast.Else{ElseToken: *w.ElseToken, Statement: fromWireStatPtr(w.Statement)}
	case "While":
		return &ast.While{WhileToken: *w.WhileToken, Condition: fromWireExprPtr(w.Condition), Statement: fromWireStatPtr(w.Statement)}
	case "For":
		return &ast.For{ForToken: *w.ForToken, Identifier: *w.Identifier, InToken: *w.InToken, Expr: fromWireExprPtr(w.Expr), Statement: fromWireStatPtr(w.Statement)}
	case "FunctionDefinition":
		return &ast.FunctionDefinition{FnToken: *w.FnToken, Identifier: *w.Identifier, ParameterList: *w.ParameterList, ReturnType: w.ReturnType, Body: fromWireFunctionBody(*w.Body)}
	case "Break":
		return &ast.Break{BreakToken: *w.BreakToken, Semicolon: *w.Semicolon}
	case "Return":
		return &ast.Return{ReturnToken: *w.ReturnToken, Expr: fromWireExprPtr(w.Expr), Semicolon: *w.Semicolon}
	default:
		panic("serialize: unhandled wire Stat kind " + w.Kind)
	}
}
