// Package lexer turns source text into a token stream. It is a
// handwritten single-pass scanner: no regular expressions, and no
// backtracking beyond the bounded lookahead needed to recognize
// multi-character operators and triple-quoted strings.
package lexer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/ianzepp/faber/token"
)

// Lexer scans one source file. Zero value is not usable; construct
// with New.
type Lexer struct {
	filename string
	input    string
	reader   *strings.Reader

	startPosition   token.Position
	currentPosition token.Position
	currentChar     rune
	currentWidth    int
	atEOF           bool

	valueBuffer strings.Builder
}

// New constructs a Lexer over input, attributing positions to filename
// (used only in error messages; pass "" for anonymous input).
func New(filename, input string) (*Lexer, error) {
	if input == "" {
		return nil, errors.New("lexer: empty input")
	}
	l := &Lexer{
		filename:        filename,
		input:           input,
		reader:          strings.NewReader(input),
		currentPosition: token.NewPosition(),
	}
	l.advance()
	return l, nil
}

// Filename returns the name attributed to this lexer's input.
func (l *Lexer) Filename() string {
	return l.filename
}

// advance reads the next rune into currentChar, advancing
// currentPosition by its width. Sets atEOF once the reader is
// exhausted.
func (l *Lexer) advance() {
	r, size, err := l.reader.ReadRune()
	if err != nil {
		l.atEOF = true
		l.currentChar = 0
		l.currentWidth = 0
		return
	}
	l.currentChar = r
	l.currentWidth = size
}

// peek returns the next rune after currentChar without consuming it,
// and whether one exists.
func (l *Lexer) peek() (rune, bool) {
	r, _, err := l.reader.ReadRune()
	if err != nil {
		return 0, false
	}
	_ = l.reader.UnreadRune()
	return r, true
}

// consume records currentChar into the value buffer, advances the
// cursor position (tracking newlines), and loads the next rune.
func (l *Lexer) consume() {
	if l.atEOF {
		panic("lexer: consume called at EOF")
	}
	l.currentPosition.Offset += l.currentWidth
	if l.currentChar == '\n' {
		l.currentPosition.Line++
		l.currentPosition.ResetColumn()
	} else {
		l.currentPosition.Column++
	}
	l.advance()
}

// consumeExpected consumes currentChar only if it equals want; any
// caller of this has already peeked, so a mismatch is an internal
// lexer bug, not a user-facing error.
func (l *Lexer) consumeExpected(want rune) {
	if l.currentChar != want {
		panic(fmt.Sprintf("lexer: expected %q, got %q", want, l.currentChar))
	}
	l.consume()
}

func (l *Lexer) bufferAndConsume() {
	l.valueBuffer.WriteRune(l.currentChar)
	l.consume()
}

func (l *Lexer) markStart() {
	l.startPosition = l.currentPosition
}

func (l *Lexer) skipWhitespace() {
	for !l.atEOF && (l.currentChar == ' ' || l.currentChar == '\t' || l.currentChar == '\r') {
		l.consume()
	}
}

func (l *Lexer) skipLineComment() string {
	l.valueBuffer.Reset()
	l.valueBuffer.WriteRune('#')
	l.consume()
	for !l.atEOF && l.currentChar != '\n' {
		l.bufferAndConsume()
	}
	return l.valueBuffer.String()
}

// Scan produces the next token, including NEWLINE and COMMENT tokens.
// Prepare filters those out for grammars that are newline-insensitive.
// Scan never returns an error; a lexical failure is reported as an
// ERROR-kind token carrying the message, per the fatal-on-first-error
// policy — callers should stop scanning once they see one.
func (l *Lexer) Scan() token.Token {
	l.skipWhitespace()

	if l.atEOF {
		l.markStart()
		return token.NewEOFToken(l.startPosition)
	}

	l.markStart()

	switch {
	case l.currentChar == '\n':
		l.consume()
		return token.NewToken(token.NEWLINE, "\n", l.startPosition)
	case l.currentChar == '#':
		text := l.skipLineComment()
		return token.NewToken(token.COMMENT, text, l.startPosition)
	case l.currentChar == '"' || l.currentChar == '\'':
		return l.scanString()
	case unicode.IsDigit(l.currentChar):
		return l.scanNumber()
	case token.IsLiteralChar(l.currentChar):
		return l.scanIdentifier()
	default:
		// Operators are tried before single-character punctuators: "."
		// is a punctuator on its own but a prefix of the ".." operator,
		// so the longest-match rule has to run first.
		if tok, ok := l.scanOperator(); ok {
			return tok
		}
		if token.IsPunctuator(l.currentChar) {
			return l.scanPunctuator()
		}
		char := l.currentChar
		l.consume()
		return token.NewIllegalToken(char, l.startPosition)
	}
}

// Tokens drains the lexer, returning every token through the first
// ERROR token (inclusive) or through EOF (inclusive), whichever comes
// first.
func (l *Lexer) Tokens() []token.Token {
	var out []token.Token
	for {
		tok := l.Scan()
		out = append(out, tok)
		if tok.Kind == token.EOF || tok.Kind == token.ERROR {
			return out
		}
	}
}

func (l *Lexer) scanIdentifier() token.Token {
	l.valueBuffer.Reset()
	for !l.atEOF && token.IsLiteralChar(l.currentChar) {
		l.bufferAndConsume()
	}
	lexeme := l.valueBuffer.String()
	return token.NewToken(token.KindOf(lexeme), lexeme, l.startPosition)
}

func (l *Lexer) scanNumber() token.Token {
	l.valueBuffer.Reset()
	l.collectDigitRun()

	if !l.atEOF && l.currentChar == '.' {
		if next, ok := l.peek(); ok && unicode.IsDigit(next) {
			l.bufferAndConsume() // the '.'
			l.collectDigitRun()
		}
	}

	return token.NewToken(token.NUMBER, l.valueBuffer.String(), l.startPosition)
}

func (l *Lexer) collectDigitRun() {
	for !l.atEOF && (unicode.IsDigit(l.currentChar) || l.currentChar == '_') {
		l.bufferAndConsume()
	}
}

// ahead reports whether the unconsumed remainder of the source,
// starting at currentChar, begins with s.
func (l *Lexer) ahead(s string) bool {
	return strings.HasPrefix(l.input[l.currentPosition.Offset:], s)
}

// scanString handles both quote styles and the triple-quoted raw
// form. Single- and double-quoted strings process escapes; the
// triple-quoted form does not, and strips a single leading or
// trailing newline adjacent to the delimiters.
func (l *Lexer) scanString() token.Token {
	quote := l.currentChar
	triple := string(quote) + string(quote) + string(quote)
	if l.ahead(triple) {
		l.consumeExpected(quote)
		l.consumeExpected(quote)
		l.consumeExpected(quote)
		return l.scanTripleQuotedBody(quote, triple)
	}
	l.consumeExpected(quote)

	l.valueBuffer.Reset()
	for {
		if l.atEOF {
			return token.NewErrorToken(errors.New("unterminated string literal"), l.startPosition)
		}
		if l.currentChar == quote {
			l.consumeExpected(quote)
			return token.NewToken(token.STRING, l.valueBuffer.String(), l.startPosition)
		}
		if l.currentChar == '\\' {
			l.consume()
			frag, err := l.scanEscape()
			if err != nil {
				return token.NewErrorToken(err, l.startPosition)
			}
			l.valueBuffer.WriteString(frag)
			continue
		}
		l.bufferAndConsume()
	}
}

func (l *Lexer) scanEscape() (string, error) {
	if l.atEOF {
		return "", errors.New("unterminated escape sequence")
	}
	switch l.currentChar {
	case 'n':
		l.consume()
		return "\n", nil
	case 't':
		l.consume()
		return "\t", nil
	case 'r':
		l.consume()
		return "\r", nil
	case '\\':
		l.consume()
		return "\\", nil
	case '"':
		l.consume()
		return "\"", nil
	case '\'':
		l.consume()
		return "'", nil
	case 'x':
		l.consume()
		return l.scanHexEscape(2)
	case 'u':
		l.consume()
		return l.scanHexEscape(4)
	default:
		char := l.currentChar
		l.consume()
		return string(char), nil
	}
}

func (l *Lexer) scanHexEscape(digits int) (string, error) {
	var hex strings.Builder
	for i := 0; i < digits; i++ {
		if l.atEOF || !isHexDigit(l.currentChar) {
			return "", fmt.Errorf("invalid \\x or \\u escape: expected %d hex digits", digits)
		}
		hex.WriteRune(l.currentChar)
		l.consume()
	}
	value, err := strconv.ParseInt(hex.String(), 16, 32)
	if err != nil {
		return "", fmt.Errorf("invalid hex escape: %w", err)
	}
	return string(rune(value)), nil
}

func isHexDigit(r rune) bool {
	return unicode.IsDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func (l *Lexer) scanTripleQuotedBody(quote rune, triple string) token.Token {
	l.valueBuffer.Reset()
	if !l.atEOF && l.currentChar == '\n' {
		l.consume()
	}
	for {
		if l.atEOF {
			return token.NewErrorToken(errors.New("unterminated triple-quoted string literal"), l.startPosition)
		}
		if l.ahead(triple) {
			l.consumeExpected(quote)
			l.consumeExpected(quote)
			l.consumeExpected(quote)
			body := strings.TrimSuffix(l.valueBuffer.String(), "\n")
			return token.NewToken(token.STRING, body, l.startPosition)
		}
		l.bufferAndConsume()
	}
}

func (l *Lexer) scanPunctuator() token.Token {
	char := l.currentChar
	l.consume()
	return token.NewToken(token.PUNCT, string(char), l.startPosition)
}

// scanOperator matches the longest operator lexeme starting at
// currentChar, trying token.Operators in the order given (already
// longest-prefix-first) and backing off to a shorter candidate only by
// never having consumed anything yet.
func (l *Lexer) scanOperator() (token.Token, bool) {
	remaining := l.input[l.currentPosition.Offset:]
	for _, op := range token.Operators {
		if strings.HasPrefix(remaining, op) {
			for range op {
				l.consume()
			}
			return token.NewToken(token.OPERATOR, op, l.startPosition), true
		}
	}
	return token.Token{}, false
}

// Prepare filters comment and newline tokens out of a raw token
// stream, leaving only tokens the parser's grammar cares about, and
// always ending in the stream's terminal EOF or ERROR token.
func Prepare(tokens []token.Token) []token.Token {
	out := make([]token.Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind == token.COMMENT || tok.Kind == token.NEWLINE {
			continue
		}
		out = append(out, tok)
	}
	return out
}
