// Package lexer converts UTF-8 source text into a lazy, lossless sequence
// of classified Tokens. Every byte of the input is preserved across the
// tokens it produces, including whitespace, comments, and malformed
// literals — nothing is dropped and nothing aborts (spec.md §4.2).
package lexer

import (
	"strings"

	"github.com/rs/zerolog"
)

// whitespaceRunes is exactly the 23 Unicode code points spec.md §4.2
// recognizes as whitespace. Runs of these form a single Whitespace token.
var whitespaceRunes = map[rune]bool{
	'\u0020': true, '\u0009': true, '\u000B': true, '\u000C': true,
	'\u00A0': true, '\u1680': true, '\u180E': true,
	'\u2000': true, '\u2001': true, '\u2002': true, '\u2003': true,
	'\u2004': true, '\u2005': true, '\u2006': true, '\u2007': true,
	'\u2008': true, '\u2009': true, '\u200A': true, '\u200B': true,
	'\u202F': true, '\u205F': true, '\u3000': true, '\uFEFF': true,
}

// nonLiteralRunes are the punctuation/operator starter characters. A
// "literal character" (identifier constituent) is any scalar that is
// neither one of these, nor whitespace, nor a newline.
var nonLiteralRunes = map[rune]bool{
	'+': true, '-': true, '*': true, '/': true, '%': true,
	'&': true, '|': true, '!': true, '=': true, '^': true,
	'<': true, '>': true, ';': true, ':': true, ',': true, '.': true,
	'(': true, ')': true, '[': true, ']': true, '{': true, '}': true,
	'~': true, '?': true,
}

func isLiteralRune(r rune) bool {
	return !nonLiteralRunes[r] && r != '\n' && r != '\r' && !whitespaceRunes[r]
}

// Option configures a TokenIterator.
type Option func(*TokenIterator)

// WithLogger attaches a debug logger. A zero-value zerolog.Logger is a
// true no-op, matching the teacher's nil-checked *slog.Logger contract.
func WithLogger(logger zerolog.Logger) Option {
	return func(it *TokenIterator) { it.logger = logger }
}

// TokenIterator is a single-pass, stateful producer of Tokens. Each call to
// Next performs a bounded amount of work (one token); the lexer never
// blocks and never looks further ahead than the token currently being
// classified requires.
type TokenIterator struct {
	cur    *cursor
	logger zerolog.Logger
}

// Tokenize begins lazily tokenizing source. Call Next repeatedly until it
// reports false.
func Tokenize(source string, opts ...Option) *TokenIterator {
	it := &TokenIterator{cur: newCursor(source)}
	for _, opt := range opts {
		opt(it)
	}
	return it
}

// Collect drains a TokenIterator eagerly. The parser needs exactly this —
// an indexed buffer — since trivia is drained at structural boundaries
// rather than filtered up front (spec.md §4.4).
func Collect(source string, opts ...Option) []Token {
	it := Tokenize(source, opts...)
	tokens := make([]Token, 0, len(source)/4+1)
	for {
		tok, ok := it.Next()
		if !ok {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// Next returns the next token, or (Token{}, false) once the source is
// exhausted.
func (it *TokenIterator) Next() (Token, bool) {
	if it.cur.isEOF() {
		return Token{}, false
	}
	tok := it.advanceToken()
	it.logger.Debug().Str("kind", tok.Kind.String()).Str("value", tok.Value).Msg("token")
	return tok, true
}

func (it *TokenIterator) advanceToken() Token {
	c := it.cur.eat()

	if tok, ok := it.eatTrivia(c); ok {
		return tok
	}

	switch c {
	case '/':
		switch it.cur.peek() {
		case '/':
			it.cur.eat()
			return it.lexLineComment()
		case '*':
			it.cur.eat()
			return it.lexMultilineComment()
		case '=':
			it.cur.eat()
			return mk(SlashEqual, "/=", 2)
		default:
			return mk(Slash, "/", 1)
		}
	case '*':
		if it.cur.peek() == '=' {
			it.cur.eat()
			return mk(StarEqual, "*=", 2)
		}
		return mk(Star, "*", 1)
	case '+':
		switch it.cur.peek() {
		case '=':
			it.cur.eat()
			return mk(PlusEqual, "+=", 2)
		case '+':
			it.cur.eat()
			return mk(PlusPlus, "++", 2)
		default:
			return mk(Plus, "+", 1)
		}
	case '-':
		switch it.cur.peek() {
		case '=':
			it.cur.eat()
			return mk(MinusEqual, "-=", 2)
		case '-':
			it.cur.eat()
			return mk(MinusMinus, "--", 2)
		case '>':
			it.cur.eat()
			return mk(Arrow, "->", 2)
		default:
			return mk(Minus, "-", 1)
		}
	case '&':
		switch it.cur.peek() {
		case '=':
			it.cur.eat()
			return mk(AmpEqual, "&=", 2)
		case '&':
			it.cur.eat()
			return mk(AmpAmp, "&&", 2)
		default:
			return mk(Amp, "&", 1)
		}
	case '|':
		switch it.cur.peek() {
		case '=':
			it.cur.eat()
			return mk(BarEqual, "|=", 2)
		case '|':
			it.cur.eat()
			return mk(BarBar, "||", 2)
		default:
			return mk(Bar, "|", 1)
		}
	case '>':
		switch it.cur.peek() {
		case '=':
			it.cur.eat()
			return mk(GreaterEqual, ">=", 2)
		case '>':
			it.cur.eat()
			if it.cur.peek() == '=' {
				it.cur.eat()
				return mk(GreaterGreaterEqual, ">>=", 3)
			}
			return mk(GreaterGreater, ">>", 2)
		default:
			return mk(Greater, ">", 1)
		}
	case '<':
		switch it.cur.peek() {
		case '=':
			it.cur.eat()
			return mk(LessEqual, "<=", 2)
		case '<':
			it.cur.eat()
			if it.cur.peek() == '=' {
				it.cur.eat()
				return mk(LessLessEqual, "<<=", 3)
			}
			return mk(LessLess, "<<", 2)
		default:
			return mk(Less, "<", 1)
		}
	case '?':
		switch it.cur.peek() {
		case '?':
			it.cur.eat()
			if it.cur.peek() == '=' {
				it.cur.eat()
				return mk(QuestionQuestionEqual, "??=", 3)
			}
			return mk(QuestionQuestion, "??", 2)
		case '.':
			it.cur.eat()
			return mk(QuestionDot, "?.", 2)
		case '[':
			it.cur.eat()
			return mk(QuestionLBracket, "?[", 2)
		default:
			return mk(Question, "?", 1)
		}
	case '=':
		switch it.cur.peek() {
		case '=':
			it.cur.eat()
			return mk(EqualEqual, "==", 2)
		case '>':
			it.cur.eat()
			return mk(FatArrow, "=>", 2)
		default:
			return mk(Equal, "=", 1)
		}
	case '!':
		if it.cur.peek() == '=' {
			it.cur.eat()
			return mk(BangEqual, "!=", 2)
		}
		return mk(Bang, "!", 1)
	case '%':
		if it.cur.peek() == '=' {
			it.cur.eat()
			return mk(PercentEqual, "%=", 2)
		}
		return mk(Percent, "%", 1)
	case ':':
		if it.cur.peek() == ':' {
			it.cur.eat()
			return mk(ColonColon, "::", 2)
		}
		return mk(Colon, ":", 1)
	case '.':
		if it.cur.peek() == '.' {
			it.cur.eat()
			if it.cur.peek() == '=' {
				it.cur.eat()
				return mk(DotDotEqual, "..=", 3)
			}
			return mk(DotDot, "..", 2)
		}
		return mk(Dot, ".", 1)
	case '~':
		if it.cur.peek() == '=' {
			it.cur.eat()
			return mk(TildeEqual, "~=", 2)
		}
		return mk(Tilde, "~", 1)
	case '^':
		if it.cur.peek() == '=' {
			it.cur.eat()
			return mk(CaretEqual, "^=", 2)
		}
		return mk(Caret, "^", 1)
	case ',':
		return mk(Comma, ",", 1)
	case ';':
		return mk(Semicolon, ";", 1)
	case '(':
		return mk(LParen, "(", 1)
	case ')':
		return mk(RParen, ")", 1)
	case '[':
		return mk(LBracket, "[", 1)
	case ']':
		return mk(RBracket, "]", 1)
	case '{':
		return mk(LBrace, "{", 1)
	case '}':
		return mk(RBrace, "}", 1)
	case '"':
		return it.lexStringLiteral()
	case '\'':
		return it.lexCharLiteral()
	default:
		if c >= '0' && c <= '9' {
			return it.lexNumberLiteral(c)
		}
		if isLiteralRune(c) {
			return it.lexIdentifier(c)
		}
		return mk(Unknown, string(c), 1)
	}
}

// eatTrivia classifies a single newline token, or a run of whitespace
// starting with current (already-consumed) rune c. Newlines are never
// merged with surrounding whitespace into the same token (spec.md §4.2).
func (it *TokenIterator) eatTrivia(c rune) (Token, bool) {
	if tok, ok := lexNewline(c, it.cur); ok {
		return tok, true
	}

	if !whitespaceRunes[c] {
		return Token{}, false
	}

	var b strings.Builder
	n := 0
	for whitespaceRunes[c] {
		b.WriteRune(c)
		n++
		if !whitespaceRunes[it.cur.peek()] {
			break
		}
		c = it.cur.eat()
	}
	return mk(Whitespace, b.String(), n), true
}

func lexNewline(c rune, cur *cursor) (Token, bool) {
	switch c {
	case '\r':
		if cur.peek() == '\n' {
			cur.eat()
			return mk(Newline, "\r\n", 2), true
		}
		return mk(Newline, "\r", 1), true
	case '\n':
		return mk(Newline, "\n", 1), true
	default:
		return Token{}, false
	}
}

func (it *TokenIterator) lexLineComment() Token {
	var b strings.Builder
	b.WriteString("//")
	n := 2
	for !it.cur.isEOF() && it.cur.peek() != '\n' && it.cur.peek() != '\r' {
		b.WriteRune(it.cur.eat())
		n++
	}
	return mk(LineComment, b.String(), n)
}

func (it *TokenIterator) lexMultilineComment() Token {
	var b strings.Builder
	b.WriteString("/*")
	n := 2
	terminated := false
	for !it.cur.isEOF() {
		if it.cur.peek() == '*' && it.cur.peekN(1) == '/' {
			it.cur.eat()
			it.cur.eat()
			b.WriteString("*/")
			n += 2
			terminated = true
			break
		}
		b.WriteRune(it.cur.eat())
		n++
	}
	return Token{Kind: MultilineComment, Value: b.String(), Len: n, Terminated: terminated}
}

func (it *TokenIterator) lexStringLiteral() Token {
	var b strings.Builder
	b.WriteByte('"')
	n := 1
	terminated := false
	for it.cur.peek() != '"' && !it.cur.isEOF() {
		if it.cur.peek() == '\\' && it.cur.peekN(1) == '"' {
			b.WriteRune(it.cur.eat())
			n++
		}
		b.WriteRune(it.cur.eat())
		n++
	}
	if !it.cur.isEOF() {
		b.WriteRune(it.cur.eat())
		n++
		terminated = true
	}
	return Token{Kind: StringLiteral, Value: b.String(), Len: n, Terminated: terminated}
}

// lexCharLiteral reads one "content unit" — a bare scalar, or a
// backslash-escape pair — and checks whether the next scalar immediately
// closes the literal. If it does not, the lexer keeps consuming up to the
// next quote/newline/EOF but the literal is still Terminated=false: an
// overlong character literal is malformed even if a stray quote eventually
// appears in it (resolves spec.md §9's open question; see SPEC_FULL.md §6).
func (it *TokenIterator) lexCharLiteral() Token {
	var b strings.Builder
	b.WriteByte('\'')
	n := 1

	switch {
	case it.cur.peek() == '\\':
		b.WriteRune(it.cur.eat())
		n++
		if !it.cur.isEOF() {
			b.WriteRune(it.cur.eat())
			n++
		}
	case it.cur.peek() != '\'' && it.cur.peek() != '\n' && it.cur.peek() != '\r' && !it.cur.isEOF():
		b.WriteRune(it.cur.eat())
		n++
	}

	if it.cur.peek() == '\'' {
		b.WriteRune(it.cur.eat())
		n++
		return Token{Kind: CharLiteral, Value: b.String(), Len: n, Terminated: true}
	}

	for it.cur.peek() != '\'' && it.cur.peek() != '\n' && it.cur.peek() != '\r' && !it.cur.isEOF() {
		b.WriteRune(it.cur.eat())
		n++
	}
	if it.cur.peek() == '\'' {
		b.WriteRune(it.cur.eat())
		n++
	}
	return Token{Kind: CharLiteral, Value: b.String(), Len: n, Terminated: false}
}

func (it *TokenIterator) lexNumberLiteral(c rune) Token {
	switch {
	case c == '0' && it.cur.peek() == 'b':
		return it.lexRadix(c, Binary, func(r rune) bool { return r == '0' || r == '1' })
	case c == '0' && it.cur.peek() == 'o':
		return it.lexRadix(c, Octal, func(r rune) bool { return r >= '0' && r <= '7' })
	case c == '0' && it.cur.peek() == 'x':
		return it.lexRadix(c, Hexadecimal, isHexDigit)
	default:
		return it.lexDecimal(c)
	}
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// lexRadix lexes 0b/0o/0x-prefixed literals. Separator '_' is allowed
// anywhere after the two-character prefix; HasDigits is true iff at least
// one digit (not counting separators) of the given radix appeared.
func (it *TokenIterator) lexRadix(prefix rune, base Base, isDigit func(rune) bool) Token {
	var b strings.Builder
	b.WriteRune(prefix)
	b.WriteRune(it.cur.eat()) // 'b'/'o'/'x'
	n := 2
	hasDigits := false

	for {
		switch {
		case it.cur.peek() == '_':
			b.WriteRune(it.cur.eat())
			n++
		case isDigit(it.cur.peek()):
			hasDigits = true
			b.WriteRune(it.cur.eat())
			n++
		default:
			return Token{Kind: NumberLiteral, Value: b.String(), Len: n, Base: base, HasDigits: hasDigits}
		}
	}
}

// lexDecimal lexes a plain decimal literal. A '.' is only consumed into
// the literal when the scalar immediately following it is itself a digit;
// any other follower (including a second '.', i.e. the range operator)
// leaves the dot for the next token. This generalizes spec.md's ".."
// lookahead rule to match the original source's observed behavior — see
// SPEC_FULL.md §6.
func (it *TokenIterator) lexDecimal(c rune) Token {
	var b strings.Builder
	b.WriteRune(c)
	n := 1
	hadDot := false

	for {
		switch {
		case it.cur.peek() == '_' || (it.cur.peek() >= '0' && it.cur.peek() <= '9'):
			b.WriteRune(it.cur.eat())
			n++
		case it.cur.peek() == '.' && !hadDot && it.cur.peekN(1) >= '0' && it.cur.peekN(1) <= '9':
			hadDot = true
			b.WriteRune(it.cur.eat())
			n++
		default:
			return Token{Kind: NumberLiteral, Value: b.String(), Len: n, Base: Decimal, HasDigits: true}
		}
	}
}

func (it *TokenIterator) lexIdentifier(c rune) Token {
	var b strings.Builder
	b.WriteRune(c)
	n := 1
	for isLiteralRune(it.cur.peek()) {
		b.WriteRune(it.cur.eat())
		n++
	}
	text := b.String()
	if kind, ok := keywords[text]; ok {
		return mk(kind, text, n)
	}
	return mk(Identifier, text, n)
}

func mk(kind TokenKind, value string, length int) Token {
	return Token{Kind: kind, Value: value, Len: length}
}
