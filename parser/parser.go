// Package parser turns a prepared token stream into a module AST.
// Statements are parsed by recursive descent with a dispatch table
// keyed by keyword lexeme; expressions are parsed by a Pratt
// precedence-climbing loop. The parser is not error-recovering: the
// first unexpected token aborts the whole parse with a position.
package parser

import (
	"fmt"

	"github.com/ianzepp/faber/ast"
	"github.com/ianzepp/faber/token"
)

// Error is the fatal error raised on the first unexpected token.
type Error struct {
	Message  string
	Token    token.Token
	Filename string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s:%s: %s (got %q)", e.Filename, e.Token.Position, e.Message, e.Token.Lexeme)
}

// Parser holds a prepared (comment- and newline-filtered) token slice
// and a cursor into it.
type Parser struct {
	filename string
	tokens   []token.Token
	pos      int
}

// New constructs a Parser over an already-prepared token slice. The
// slice must end in an EOF or ERROR token, as produced by
// lexer.Lexer.Tokens followed by lexer.Prepare.
func New(filename string, tokens []token.Token) *Parser {
	return &Parser{filename: filename, tokens: tokens}
}

// Parse parses a full module: a sequence of top-level statements up
// to EOF.
func (p *Parser) Parse() (*ast.Module, error) {
	if p.current().Kind == token.ERROR {
		return nil, p.errorAt(p.current(), p.current().Lexeme)
	}

	mod := &ast.Module{
		Filename: p.filename,
		Position: p.current().Position,
	}

	for p.current().Kind != token.EOF {
		stmt, err := p.parseTopLevelStatement()
		if err != nil {
			return nil, err
		}
		mod.Statements = append(mod.Statements, stmt)
	}

	return mod, nil
}

func (p *Parser) current() token.Token {
	return p.tokens[p.pos]
}

func (p *Parser) peekAt(offset int) token.Token {
	idx := p.pos + offset
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[idx]
}

func (p *Parser) advance() token.Token {
	tok := p.current()
	if tok.Kind != token.EOF {
		p.pos++
	}
	return tok
}

func (p *Parser) errorAt(tok token.Token, message string) error {
	return &Error{Message: message, Token: tok, Filename: p.filename}
}

func (p *Parser) unexpected(wanted string) error {
	return p.errorAt(p.current(), fmt.Sprintf("expected %s, got '%s'", wanted, p.current().Lexeme))
}

// expectKeyword consumes the current token if it is the KEYWORD kw,
// else returns a positioned error.
func (p *Parser) expectKeyword(kw string) (token.Token, error) {
	if p.current().IsKeyword(kw) {
		return p.advance(), nil
	}
	return token.Token{}, p.unexpected("'" + kw + "'")
}

// expectPunct consumes the current token if it is the PUNCT value s.
func (p *Parser) expectPunct(s string) (token.Token, error) {
	if p.current().IsPunct(s) {
		return p.advance(), nil
	}
	return token.Token{}, p.unexpected("'" + s + "'")
}

// expectOperator consumes the current token if it is the OPERATOR s.
func (p *Parser) expectOperator(s string) (token.Token, error) {
	if p.current().IsOperator(s) {
		return p.advance(), nil
	}
	return token.Token{}, p.unexpected("'" + s + "'")
}

// expectIdent consumes a plain IDENT token.
func (p *Parser) expectIdent() (token.Token, error) {
	if p.current().Kind == token.IDENT {
		return p.advance(), nil
	}
	return token.Token{}, p.unexpected("identifier")
}

// expectName consumes an IDENT, or a KEYWORD used as a name — the
// grammar positions that explicitly allow this (object keys, field
// names) call this instead of expectIdent.
func (p *Parser) expectName() (token.Token, error) {
	tok := p.current()
	if tok.Kind == token.IDENT || tok.Kind == token.KEYWORD {
		return p.advance(), nil
	}
	return token.Token{}, p.unexpected("name")
}
