package parser

import (
	"github.com/ianzepp/faber/ast"
	"github.com/ianzepp/faber/token"
)

var varDeclKeywords = map[string]bool{
	"varia": true, "fixum": true, "figendum": true, "variandum": true,
}

// parseVarDecl parses a variable declaration, having already confirmed
// the current token is one of the declaration keywords. This is the
// type-first/name-first disambiguation named in §4.2: a single
// lookahead after the first name decides whether it is a type or the
// variable's own name.
func (p *Parser) parseVarDecl() (*ast.VarDeclStmt, error) {
	kwTok := p.advance()

	var declaredType ast.Type
	nullable := false
	if p.current().IsKeyword("si") {
		nullable = true
		p.advance()
	}

	firstTok, err := p.expectName()
	if err != nil {
		return nil, err
	}

	var name string

	switch {
	case p.current().IsOperator("<"):
		// Generic type: "lista<textus> items".
		args, err := p.parseGenericArgs()
		if err != nil {
			return nil, err
		}
		declaredType = &ast.GenericType{Base: ast.Base{Position: firstTok.Position}, Name: firstTok.Lexeme, Args: args}
		nameTok, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		name = nameTok.Lexeme

	case p.current().Kind == token.IDENT || p.current().Kind == token.KEYWORD:
		// Type-first form: "numerus count".
		declaredType = &ast.NamedType{Base: ast.Base{Position: firstTok.Position}, Name: firstTok.Lexeme}
		nameTok, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		name = nameTok.Lexeme

	default:
		// Name-only form: "count" with an inferred type.
		name = firstTok.Lexeme
	}

	if nullable {
		if declaredType == nil {
			return nil, p.errorAt(firstTok, "'si' nullability marker requires an explicit type")
		}
		declaredType = &ast.NullableType{Base: ast.Base{Position: kwTok.Position}, Inner: declaredType}
	}

	var value ast.Expr
	if p.current().IsOperator("=") {
		p.advance()
		value, err = p.parseExprTop()
		if err != nil {
			return nil, err
		}
	}

	return &ast.VarDeclStmt{
		Base:    ast.Base{Position: kwTok.Position},
		Keyword: kwTok.Lexeme,
		Type:    declaredType,
		Name:    name,
		Value:   value,
	}, nil
}

// parseParamList parses "( params )" for a function, lambda, or
// method signature, using the same type-first lookahead as variable
// declarations for each parameter.
func (p *Parser) parseParamList() ([]ast.Parameter, error) {
	if _, err := p.expectPunct("("); err != nil {
		return nil, err
	}
	var params []ast.Parameter
	for !p.current().IsPunct(")") {
		param, err := p.parseParam()
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
	if _, err := p.expectPunct(")"); err != nil {
		return nil, err
	}
	return params, nil
}

func (p *Parser) parseParam() (ast.Parameter, error) {
	var param ast.Parameter

	switch {
	case p.current().IsOperator(".."):
		p.advance()
		param.Rest = true
	case p.current().IsKeyword("ex") || p.current().IsKeyword("de") || p.current().IsKeyword("in"):
		param.Ownership = p.advance().Lexeme
	}

	nullable := false
	if p.current().IsKeyword("si") {
		nullable = true
		p.advance()
	}

	firstTok, err := p.expectName()
	if err != nil {
		return param, err
	}

	switch {
	case p.current().IsOperator("<"):
		args, err := p.parseGenericArgs()
		if err != nil {
			return param, err
		}
		param.Type = &ast.GenericType{Base: ast.Base{Position: firstTok.Position}, Name: firstTok.Lexeme, Args: args}
		nameTok, err := p.expectIdent()
		if err != nil {
			return param, err
		}
		param.Name = nameTok.Lexeme

	case p.current().Kind == token.IDENT || p.current().Kind == token.KEYWORD:
		param.Type = &ast.NamedType{Base: ast.Base{Position: firstTok.Position}, Name: firstTok.Lexeme}
		nameTok, err := p.expectIdent()
		if err != nil {
			return param, err
		}
		param.Name = nameTok.Lexeme

	default:
		param.Name = firstTok.Lexeme
	}

	if nullable && param.Type != nil {
		param.Type = &ast.NullableType{Base: ast.Base{Position: firstTok.Position}, Inner: param.Type}
	}

	if p.current().IsPunct("?") {
		param.Optional = true
		p.advance()
	}

	if p.current().IsOperator("=") {
		p.advance()
		def, err := p.parseExpr(precLowest)
		if err != nil {
			return param, err
		}
		param.Default = def
	}

	return param, nil
}

// parseOptionalGenerics parses a "<A, B, ...>" generic parameter list
// on a declaration (function, class, protocol), returning nil if none
// is present.
func (p *Parser) parseOptionalGenerics() ([]string, error) {
	if !p.current().IsOperator("<") {
		return nil, nil
	}
	p.advance()
	var names []string
	for {
		tok, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		names = append(names, tok.Lexeme)
		if p.current().IsPunct(",") {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expectOperator(">"); err != nil {
		return nil, err
	}
	return names, nil
}
