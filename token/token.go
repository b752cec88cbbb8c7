package token

import "fmt"

// Token is the flat record produced by the lexer and consumed by the
// parser: a kind, the lexeme, and the position of its first byte.
// Identifier, number, and operator lexemes are kept verbatim
// (including digit separators) because later stages need the original
// text, not just its category — the number 1_000 and the number 1000
// have the same Kind but must be told apart when re-emitted. A STRING
// lexeme is the literal's body with its quotes removed and escape
// sequences resolved.
type Token struct {
	Kind     Kind
	Lexeme   string
	Position Position
}

// String renders a token for diagnostics.
func (t Token) String() string {
	return fmt.Sprintf("%s(%q) at %s", t.Kind, t.Lexeme, t.Position)
}

// IsKeyword reports whether t is a KEYWORD token whose lexeme is word.
func (t Token) IsKeyword(word string) bool {
	return t.Kind == KEYWORD && t.Lexeme == word
}

// IsOperator reports whether t is an OPERATOR token whose lexeme is op.
func (t Token) IsOperator(op string) bool {
	return t.Kind == OPERATOR && t.Lexeme == op
}

// IsPunct reports whether t is a PUNCT token whose lexeme is p.
func (t Token) IsPunct(p string) bool {
	return t.Kind == PUNCT && t.Lexeme == p
}

// NewToken builds a token whose lexeme is exactly the matched text.
func NewToken(kind Kind, lexeme string, pos Position) Token {
	return Token{Kind: kind, Lexeme: lexeme, Position: pos}
}

// NewEOFToken builds the single EOF token that terminates every token
// stream that lexes without error; a stream that hits a lexical error
// ends in an ERROR token instead.
func NewEOFToken(pos Position) Token {
	return Token{Kind: EOF, Lexeme: "", Position: pos}
}

// NewErrorToken builds the fatal error token the lexer emits in place
// of any further tokens once it has hit an unrecoverable condition. A
// nil err is replaced with a generic message rather than panicking,
// since this constructor runs on the lexer's own failure path.
func NewErrorToken(err error, pos Position) Token {
	message := "unexpected error"
	if err != nil {
		message = err.Error()
	}
	return Token{Kind: ERROR, Lexeme: message, Position: pos}
}

// NewIllegalToken builds the error token for a single unrecognized
// starting character.
func NewIllegalToken(char rune, pos Position) Token {
	return NewErrorToken(fmt.Errorf("unexpected character '%c'", char), pos)
}
