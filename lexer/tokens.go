package lexer

// TokenKind is the closed set of lexical classifications a Token can carry.
// Literal kinds carry extra attributes (Base, HasDigits, Terminated) alongside
// the kind itself rather than as a separate tagged payload, since Go has no
// payload-carrying enum — see Token's Base/HasDigits/Terminated fields.
type TokenKind int

const (
	// Trivia — lexically present, semantically inert.
	Whitespace TokenKind = iota
	Newline
	LineComment
	MultilineComment // Terminated attribute on Token

	// Single/multi-char punctuation and operators, greedy maximal munch.
	Slash      // /
	SlashEqual // /=
	Star       // *
	StarEqual  // *=
	Plus       // +
	PlusEqual  // +=
	PlusPlus   // ++
	Minus      // -
	MinusEqual // -=
	MinusMinus // --
	Arrow      // ->
	Amp        // &
	AmpEqual   // &=
	AmpAmp     // &&
	Bar        // |
	BarEqual   // |=
	BarBar     // ||
	Greater             // >
	GreaterEqual        // >=
	GreaterGreater      // >>
	GreaterGreaterEqual // >>=
	Less                // <
	LessEqual           // <=
	LessLess            // <<
	LessLessEqual       // <<=
	Question              // ?
	QuestionQuestion      // ??
	QuestionQuestionEqual // ??=
	QuestionDot           // ?.
	QuestionLBracket      // ?[
	Equal        // =
	EqualEqual   // ==
	FatArrow     // =>
	Bang         // !
	BangEqual    // !=
	Percent      // %
	PercentEqual // %=
	Colon        // :
	ColonColon   // ::
	Dot          // .
	DotDot       // ..
	DotDotEqual  // ..=
	Tilde        // ~
	TildeEqual   // ~=
	Caret        // ^
	CaretEqual   // ^=

	Comma
	Semicolon
	LParen
	RParen
	LBracket
	RBracket
	LBrace
	RBrace

	// Literals. Base/HasDigits apply to NumberLiteral, Terminated to
	// StringLiteral/CharLiteral/MultilineComment.
	StringLiteral
	CharLiteral
	NumberLiteral
	Identifier

	// Keywords.
	LetKeyword
	MutKeyword
	MatchKeyword
	IfKeyword
	ElseKeyword
	ForKeyword
	InKeyword
	WhileKeyword
	FunctionKeyword
	ReturnKeyword
	BreakKeyword
	TrueKeyword
	FalseKeyword

	Unknown
)

// Base distinguishes the radix of a NumberLiteral token.
type Base int

const (
	Decimal Base = iota
	Binary
	Octal
	Hexadecimal
)

func (b Base) String() string {
	switch b {
	case Binary:
		return "Binary"
	case Octal:
		return "Octal"
	case Hexadecimal:
		return "Hexadecimal"
	default:
		return "Decimal"
	}
}

// Token is a classified slice of source text. The concatenation of Value
// across every Token tokenize(source) produces reconstructs source exactly
// (lossless tokenization, spec.md §3).
type Token struct {
	Kind  TokenKind
	Value string
	Len   int // Unicode scalar count of Value, not byte length

	// Literal sub-attributes. Only meaningful for the corresponding Kind.
	Base       Base // NumberLiteral
	HasDigits  bool // NumberLiteral
	Terminated bool // StringLiteral, CharLiteral, MultilineComment
}

// keywords maps identifier text to its reclassified keyword TokenKind.
// true/false are lexed as TrueKeyword/FalseKeyword directly (Literal.Bool
// in the parse tree consumes them, not a separate BooleanLiteral kind).
var keywords = map[string]TokenKind{
	"let":    LetKeyword,
	"mut":    MutKeyword,
	"match":  MatchKeyword,
	"if":     IfKeyword,
	"else":   ElseKeyword,
	"for":    ForKeyword,
	"in":     InKeyword,
	"while":  WhileKeyword,
	"fn":     FunctionKeyword,
	"return": ReturnKeyword,
	"break":  BreakKeyword,
	"true":   TrueKeyword,
	"false":  FalseKeyword,
}

// BuiltinTypeNames is the closed set of identifiers that classify a type
// reference as Internal rather than UserDefined (spec.md §4.4).
var BuiltinTypeNames = map[string]bool{
	"sbyte": true, "i8": true, "short": true, "i16": true,
	"int": true, "i32": true, "long": true, "i64": true,
	"byte": true, "u8": true, "ushort": true, "u16": true,
	"uint": true, "u32": true, "ulong": true, "u64": true,
	"float": true, "f32": true, "double": true, "f64": true,
	"string": true, "char": true, "bool": true,
}

// IsTrivia reports whether a TokenKind never contributes to program
// semantics and is attached as trailing trivia rather than emitted as a
// standalone syntax token (spec.md §3 "Trivia").
func (k TokenKind) IsTrivia() bool {
	switch k {
	case Whitespace, Newline, LineComment, MultilineComment:
		return true
	default:
		return false
	}
}

var tokenKindNames = [...]string{
	"Whitespace", "Newline", "LineComment", "MultilineComment",
	"Slash", "SlashEqual", "Star", "StarEqual",
	"Plus", "PlusEqual", "PlusPlus", "Minus", "MinusEqual", "MinusMinus", "Arrow",
	"Amp", "AmpEqual", "AmpAmp", "Bar", "BarEqual", "BarBar",
	"Greater", "GreaterEqual", "GreaterGreater", "GreaterGreaterEqual",
	"Less", "LessEqual", "LessLess", "LessLessEqual",
	"Question", "QuestionQuestion", "QuestionQuestionEqual", "QuestionDot", "QuestionLBracket",
	"Equal", "EqualEqual", "FatArrow", "Bang", "BangEqual",
	"Percent", "PercentEqual", "Colon", "ColonColon",
	"Dot", "DotDot", "DotDotEqual", "Tilde", "TildeEqual", "Caret", "CaretEqual",
	"Comma", "Semicolon", "LParen", "RParen", "LBracket", "RBracket", "LBrace", "RBrace",
	"StringLiteral", "CharLiteral", "NumberLiteral", "Identifier",
	"LetKeyword", "MutKeyword", "MatchKeyword", "IfKeyword", "ElseKeyword",
	"ForKeyword", "InKeyword", "WhileKeyword", "FunctionKeyword",
	"ReturnKeyword", "BreakKeyword", "TrueKeyword", "FalseKeyword",
	"Unknown",
}

// String renders the TokenKind's name, for debug logging and diagnostic
// presentation.
func (k TokenKind) String() string {
	if int(k) < 0 || int(k) >= len(tokenKindNames) {
		return "Unknown"
	}
	return tokenKindNames[k]
}
