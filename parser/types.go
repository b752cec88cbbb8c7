package parser

import (
	"github.com/ianzepp/faber/ast"
	"github.com/ianzepp/faber/token"
)

// parseType parses a full type expression: an optional leading "si"
// nullability marker wrapping a union of primary types.
func (p *Parser) parseType() (ast.Type, error) {
	if p.current().IsKeyword("si") {
		pos := p.advance().Position
		inner, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &ast.NullableType{Base: ast.Base{Position: pos}, Inner: inner}, nil
	}
	return p.parseUnionType()
}

func (p *Parser) parseUnionType() (ast.Type, error) {
	first, err := p.parsePrimaryType()
	if err != nil {
		return nil, err
	}
	if !p.current().IsOperator("|") {
		return first, nil
	}
	members := []ast.Type{first}
	for p.current().IsOperator("|") {
		p.advance()
		next, err := p.parsePrimaryType()
		if err != nil {
			return nil, err
		}
		members = append(members, next)
	}
	return &ast.UnionType{Base: ast.Base{Position: first.Pos()}, Members: members}, nil
}

func (p *Parser) parsePrimaryType() (ast.Type, error) {
	if p.current().IsPunct("(") {
		return p.parseFunctionType()
	}

	nameTok, err := p.expectName()
	if err != nil {
		return nil, err
	}

	if !p.current().IsOperator("<") {
		return &ast.NamedType{Base: ast.Base{Position: nameTok.Position}, Name: nameTok.Lexeme}, nil
	}

	args, err := p.parseGenericArgs()
	if err != nil {
		return nil, err
	}
	return &ast.GenericType{Base: ast.Base{Position: nameTok.Position}, Name: nameTok.Lexeme, Args: args}, nil
}

// parseGenericArgs parses "< T, U, ... >", having already confirmed
// the current token is "<". This is the dedicated sub-parser
// declaration contexts use to resolve the "<" generic-opener vs.
// comparison-operator ambiguity: callers only invoke it once they know
// from context (right after a type name) that "<" must be a generic
// opener.
func (p *Parser) parseGenericArgs() ([]ast.Type, error) {
	if _, err := p.expectOperator("<"); err != nil {
		return nil, err
	}
	var args []ast.Type
	for {
		arg, err := p.parseType()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.current().IsPunct(",") {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expectOperator(">"); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *Parser) parseFunctionType() (ast.Type, error) {
	openParen, err := p.expectPunct("(")
	if err != nil {
		return nil, err
	}
	var params []ast.Type
	if !p.current().IsPunct(")") {
		for {
			param, err := p.parseType()
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if p.current().IsPunct(",") {
				p.advance()
				continue
			}
			break
		}
	}
	if _, err := p.expectPunct(")"); err != nil {
		return nil, err
	}
	if _, err := p.expectOperator("->"); err != nil {
		return nil, err
	}
	ret, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionType{Base: ast.Base{Position: openParen.Position}, Params: params, Return: ret}, nil
}

// nextIsTypeStart reports whether the token at offset could begin a
// type expression (an IDENT or KEYWORD token), the same test the
// declaration parsers apply inline to choose between type-first and
// name-first forms.
func (p *Parser) nextIsTypeStart(offset int) bool {
	tok := p.peekAt(offset)
	return tok.Kind == token.IDENT || tok.Kind == token.KEYWORD
}
