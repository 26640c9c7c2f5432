package parser

import "github.com/VeithBuergerhoff/ferrous/lexer"

// bp is an (l_bp, r_bp) binding-power pair. Associativity is encoded by
// the relation between the two: left-associative when l < r,
// right-associative when l > r (spec.md §4.4).
type bp struct{ l, r int }

// prefixBP holds the right binding power fed to the recursive call that
// parses a prefix operator's operand. Prefix operators have no left side,
// so only r_bp is meaningful.
var prefixBP = map[lexer.TokenKind]int{
	lexer.PlusPlus:   29,
	lexer.MinusMinus: 29,
	lexer.Plus:       29,
	lexer.Minus:      29,
	lexer.Tilde:      29,
	lexer.Bang:       29,
}

// postfixBP holds the left binding power a postfix operator competes
// with; postfix operators have no right side.
var postfixBP = map[lexer.TokenKind]int{
	lexer.PlusPlus:      30,
	lexer.MinusMinus:    30,
	lexer.LBracket:      30,
	lexer.QuestionLBracket: 30,
}

// infixBP is the full binding-power table for infix operators, including
// the ternary `?` (paired with `:`) and every assignment operator.
var infixBP = map[lexer.TokenKind]bp{
	lexer.Dot:        {32, 31},
	lexer.QuestionDot: {32, 31},
	lexer.ColonColon: {32, 31},

	lexer.DotDot:      {28, 27},
	lexer.DotDotEqual: {28, 27},

	lexer.Star:    {25, 26},
	lexer.Slash:   {25, 26},
	lexer.Percent: {25, 26},

	lexer.Plus:  {23, 24},
	lexer.Minus: {23, 24},

	lexer.LessLess:    {21, 22},
	lexer.GreaterGreater: {21, 22},

	lexer.Less:         {19, 20},
	lexer.Greater:      {19, 20},
	lexer.LessEqual:    {19, 20},
	lexer.GreaterEqual: {19, 20},

	lexer.EqualEqual: {17, 18},
	lexer.BangEqual:  {17, 18},

	lexer.Amp: {15, 16},
	lexer.Caret: {13, 14},
	lexer.Bar:   {11, 12},

	lexer.AmpAmp: {9, 10},
	lexer.BarBar: {7, 8},

	lexer.QuestionQuestion: {6, 5},

	lexer.Question: {4, 3},

	lexer.Equal:                 {2, 1},
	lexer.PlusEqual:             {2, 1},
	lexer.MinusEqual:            {2, 1},
	lexer.StarEqual:             {2, 1},
	lexer.SlashEqual:            {2, 1},
	lexer.PercentEqual:          {2, 1},
	lexer.AmpEqual:              {2, 1},
	lexer.BarEqual:              {2, 1},
	lexer.CaretEqual:            {2, 1},
	lexer.TildeEqual:            {2, 1},
	lexer.LessLessEqual:         {2, 1},
	lexer.GreaterGreaterEqual:   {2, 1},
	lexer.QuestionQuestionEqual: {2, 1},
}
