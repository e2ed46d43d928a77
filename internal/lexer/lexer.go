// Package lexer implements the arith lexical scanner.
package lexer

import "fmt"

// TokenType represents the type of a token
type TokenType int

// String returns a string representation of the token type
func (tt TokenType) String() string {
	if name, ok := tokenNames[tt]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(tt))
}

// Token types
const (
	// 特殊トークン
	TokenEOF TokenType = iota
	TokenIllegal
	TokenWhitespace

	// リテラル
	TokenNumber

	// 演算子
	TokenPlus
	TokenMinus
	TokenMul
	TokenDiv

	// 記号
	TokenLParen
	TokenRParen
)

// tokenNames provides string representations for token types
var tokenNames = map[TokenType]string{
	TokenEOF:        "EOF",
	TokenIllegal:    "ILLEGAL",
	TokenWhitespace: "WHITESPACE",

	TokenNumber: "NUMBER",

	TokenPlus:  "+",
	TokenMinus: "-",
	TokenMul:   "*",
	TokenDiv:   "/",

	TokenLParen: "(",
	TokenRParen: ")",
}

// Position represents a position in the source text
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset in source
}

// String returns a string representation of the position
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span represents a range in the source text
type Span struct {
	Start Position
	End   Position
}

// Token represents a lexical token with position information
type Token struct {
	Type    TokenType
	Literal string // digit run for TokenNumber, empty otherwise
	Pos     Position
}

// String returns a string representation of the token
func (t Token) String() string {
	if t.Type == TokenNumber {
		return fmt.Sprintf("{Type: %s, Literal: %q, Pos: %s}", t.Type, t.Literal, t.Pos)
	}
	return fmt.Sprintf("{Type: %s, Pos: %s}", t.Type, t.Pos)
}

// Scanner converts input text into a stream of tokens. One token of input is
// scanned ahead: CurrentToken is always valid, and Tokenize replaces it.
// A Scanner instance is not safe for concurrent use; independent instances
// share no state.
type Scanner struct {
	input   string
	offset  int    // current byte offset into input
	line    int    // current line number
	column  int    // current column number
	literal string // digit run captured for the current token
	current Token  // most recent token produced by Tokenize
}

// New creates a scanner and primes it so that CurrentToken is valid
// before the first Tokenize call.
func New(input string) *Scanner {
	s := &Scanner{
		input:  input,
		line:   1,
		column: 1,
	}
	s.Tokenize()
	return s
}

// CurrentToken returns the last token produced by Tokenize.
func (s *Scanner) CurrentToken() Token {
	return s.current
}

// Literal returns the text captured for the current token. It is meaningful
// only when the current token is TokenNumber.
func (s *Scanner) Literal() string {
	return s.literal
}

func (s *Scanner) eof() bool {
	return s.offset >= len(s.input)
}

func (s *Scanner) currentChar() byte {
	if s.eof() {
		return 0
	}
	return s.input[s.offset]
}

// nextChar advances the cursor by one character
func (s *Scanner) nextChar() {
	if s.currentChar() == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	s.offset++
}

func (s *Scanner) position() Position {
	return Position{Line: s.line, Column: s.column, Offset: s.offset}
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// tokenizeOnce scans exactly one token starting at the cursor. The cursor
// always advances on non-EOF input, so scanning is total even for
// malformed text.
func (s *Scanner) tokenizeOnce() Token {
	s.literal = ""
	pos := s.position()

	if s.eof() {
		return Token{Type: TokenEOF, Pos: pos}
	}

	switch ch := s.currentChar(); ch {
	case ' ':
		s.nextChar()
		return Token{Type: TokenWhitespace, Pos: pos}
	case '+':
		s.nextChar()
		return Token{Type: TokenPlus, Pos: pos}
	case '-':
		s.nextChar()
		return Token{Type: TokenMinus, Pos: pos}
	case '*':
		s.nextChar()
		return Token{Type: TokenMul, Pos: pos}
	case '/':
		s.nextChar()
		return Token{Type: TokenDiv, Pos: pos}
	case '(':
		s.nextChar()
		return Token{Type: TokenLParen, Pos: pos}
	case ')':
		s.nextChar()
		return Token{Type: TokenRParen, Pos: pos}
	default:
		if isDigit(ch) {
			start := s.offset
			for !s.eof() && isDigit(s.currentChar()) {
				s.nextChar()
			}
			s.literal = s.input[start:s.offset]
			return Token{Type: TokenNumber, Literal: s.literal, Pos: pos}
		}
		s.nextChar()
		return Token{Type: TokenIllegal, Pos: pos}
	}
}

// Tokenize scans forward to the next non-whitespace token, stores it as the
// current token and returns it. This is the only entry point the parser uses;
// whitespace never reaches it.
func (s *Scanner) Tokenize() Token {
	tok := s.tokenizeOnce()
	for tok.Type == TokenWhitespace {
		tok = s.tokenizeOnce()
	}
	s.current = tok
	return tok
}
