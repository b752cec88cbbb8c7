package parser

import (
	"strconv"
	"strings"

	"github.com/ianzepp/faber/ast"
	"github.com/ianzepp/faber/token"
)

var pureWordUnaryOps = map[string]bool{
	"non": true, "nonnihil": true, "positivum": true,
	"negativum": true, "nulla": true, "nonnulla": true,
}

var symbolicUnaryOps = map[string]bool{
	"-": true, "!": true, "~": true,
}

var conversionKeywords = map[string]bool{
	"numeratum": true, "fractatum": true, "textatum": true, "bivalentum": true,
}

// parseExprTop is the expression entry point. Ternary is deliberately
// kept out of the precedence table: it is parsed here, wrapped around
// a full parseExpr at assignment precedence, so it always binds
// loosest and the "sic ... secus ..." arms can themselves hold
// further ternaries or assignments.
func (p *Parser) parseExprTop() (ast.Expr, error) {
	cond, err := p.parseExpr(precAssignment)
	if err != nil {
		return nil, err
	}
	if !p.current().IsKeyword("sic") {
		return cond, nil
	}
	p.advance()
	thenExpr, err := p.parseExprTop()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("secus"); err != nil {
		return nil, err
	}
	elseExpr, err := p.parseExprTop()
	if err != nil {
		return nil, err
	}
	return &ast.TernaryExpr{Base: ast.Base{Position: cond.Pos()}, Cond: cond, Then: thenExpr, Else: elseExpr}, nil
}

// parseExpr is the Pratt precedence-climbing loop. Callers needing the
// full grammar (including ternary) should use parseExprTop; parseExpr
// itself is also called directly, mostly at precAssignment, for
// sub-expressions where a ternary is not accepted (argument lists,
// array/object elements, lambda bodies).
func (p *Parser) parseExpr(minPrec int) (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		tok := p.current()
		prec, ok := binaryPrecedence(tok.Kind.String(), tok.Lexeme)
		if !ok || prec < minPrec {
			break
		}

		if prec == precTypePostfix {
			left, err = p.parseTypePostfix(left)
			if err != nil {
				return nil, err
			}
			continue
		}

		opTok := p.advance()
		nextMin := prec + 1
		if isRightAssociative(prec) {
			nextMin = prec
		}
		right, err := p.parseExpr(nextMin)
		if err != nil {
			return nil, err
		}

		if opTok.Kind == token.OPERATOR && assignmentOps[opTok.Lexeme] {
			left = &ast.AssignExpr{Base: ast.Base{Position: left.Pos()}, Target: left, Op: opTok.Lexeme, Value: right}
		} else {
			left = &ast.BinaryExpr{Base: ast.Base{Position: left.Pos()}, Left: left, Op: opTok.Lexeme, Right: right}
		}
	}

	if p.current().IsKeyword("usque") || p.current().IsKeyword("ante") {
		inclusive := p.current().IsKeyword("usque")
		p.advance()
		end, err := p.parseExpr(precRelational + 1)
		if err != nil {
			return nil, err
		}
		left = &ast.RangeExpr{Base: ast.Base{Position: left.Pos()}, Start: left, End: end, Inclusive: inclusive}
	}

	return left, nil
}

// parseTypePostfix consumes one of the precedence-9 postfix-type
// operators: "qua T" (cast), "innatum T" (reinterpret), "novum T"
// (postfix construction), or a bare conversion keyword optionally
// followed by "vel fallback".
func (p *Parser) parseTypePostfix(left ast.Expr) (ast.Expr, error) {
	opTok := p.advance()

	if conversionKeywords[opTok.Lexeme] {
		var fallback ast.Expr
		if p.current().IsKeyword("vel") {
			p.advance()
			fb, err := p.parseExpr(precTypePostfix)
			if err != nil {
				return nil, err
			}
			fallback = fb
		}
		return &ast.ConversionExpr{Base: ast.Base{Position: left.Pos()}, Operand: left, Target: opTok.Lexeme, Fallback: fallback}, nil
	}

	targetType, err := p.parsePrimaryType()
	if err != nil {
		return nil, err
	}

	switch opTok.Lexeme {
	case "qua":
		return &ast.CastExpr{Base: ast.Base{Position: left.Pos()}, Operand: left, Type: targetType}, nil
	case "innatum":
		return &ast.ReinterpretExpr{Base: ast.Base{Position: left.Pos()}, Operand: left, Type: targetType}, nil
	default: // "novum"
		return &ast.PostfixNewExpr{Base: ast.Base{Position: left.Pos()}, Operand: left, Type: targetType}, nil
	}
}

// parseUnary handles the prefix operators and then delegates to
// parsePrimary plus the postfix chain. "nihil" is ambiguous between an
// atomic null literal and the unary logical-not word-operator; the
// parser commits to the operator reading only if the next token can
// begin an expression of its own.
func (p *Parser) parseUnary() (ast.Expr, error) {
	tok := p.current()

	if tok.IsKeyword("cede") {
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.AwaitExpr{Base: ast.Base{Position: tok.Position}, Operand: operand}, nil
	}

	if tok.Kind == token.KEYWORD && pureWordUnaryOps[tok.Lexeme] {
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Base: ast.Base{Position: tok.Position}, Op: tok.Lexeme, Operand: operand}, nil
	}

	if tok.IsKeyword("nihil") && p.startsExpr(p.peekAt(1)) {
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Base: ast.Base{Position: tok.Position}, Op: tok.Lexeme, Operand: operand}, nil
	}

	if (tok.Kind == token.OPERATOR && symbolicUnaryOps[tok.Lexeme]) || tok.IsPunct("!") {
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Base: ast.Base{Position: tok.Position}, Op: tok.Lexeme, Operand: operand}, nil
	}

	primary, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	return p.parsePostfixChain(primary)
}

// startsExpr is the finite predicate over a lookahead token's kind and
// lexeme that decides whether "nihil" is being used as a unary
// operator (true) or stands alone as the null literal (false).
func (p *Parser) startsExpr(tok token.Token) bool {
	switch tok.Kind {
	case token.IDENT, token.NUMBER, token.STRING:
		return true
	case token.KEYWORD:
		switch tok.Lexeme {
		case "secus", "sic", "casu", "ut", "demum", "ceterum":
			return false
		}
		return true
	case token.PUNCT:
		return tok.Lexeme == "(" || tok.Lexeme == "[" || tok.Lexeme == "{"
	case token.OPERATOR:
		return symbolicUnaryOps[tok.Lexeme]
	default:
		return false
	}
}

func (p *Parser) parsePostfixChain(expr ast.Expr) (ast.Expr, error) {
	for {
		switch {
		case p.current().IsPunct("("):
			args, err := p.parseArgList()
			if err != nil {
				return nil, err
			}
			expr = &ast.CallExpr{Base: ast.Base{Position: expr.Pos()}, Callee: expr, Args: args}

		case p.current().IsPunct("."):
			p.advance()
			name, err := p.expectName()
			if err != nil {
				return nil, err
			}
			expr = &ast.MemberExpr{Base: ast.Base{Position: expr.Pos()}, Object: expr, Name: name.Lexeme}

		case p.current().IsPunct("["):
			p.advance()
			idx, err := p.parseExprTop()
			if err != nil {
				return nil, err
			}
			if _, err := p.expectPunct("]"); err != nil {
				return nil, err
			}
			expr = &ast.MemberExpr{Base: ast.Base{Position: expr.Pos()}, Object: expr, Index: idx, Computed: true}

		case p.current().IsPunct("!") && p.peekAt(1).IsPunct("."):
			p.advance()
			p.advance()
			name, err := p.expectName()
			if err != nil {
				return nil, err
			}
			expr = &ast.MemberExpr{Base: ast.Base{Position: expr.Pos()}, Object: expr, Name: name.Lexeme, NonNull: true}

		case p.current().IsPunct("!") && p.peekAt(1).IsPunct("["):
			p.advance()
			p.advance()
			idx, err := p.parseExprTop()
			if err != nil {
				return nil, err
			}
			if _, err := p.expectPunct("]"); err != nil {
				return nil, err
			}
			expr = &ast.MemberExpr{Base: ast.Base{Position: expr.Pos()}, Object: expr, Index: idx, Computed: true, NonNull: true}

		default:
			return expr, nil
		}
	}
}

func (p *Parser) parseArgList() ([]ast.Expr, error) {
	if _, err := p.expectPunct("("); err != nil {
		return nil, err
	}
	var args []ast.Expr
	for !p.current().IsPunct(")") {
		arg, err := p.parseExpr(precAssignment)
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
	if _, err := p.expectPunct(")"); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	tok := p.current()

	switch {
	case tok.Kind == token.NUMBER:
		p.advance()
		kind := ast.IntegerLiteral
		if strings.Contains(tok.Lexeme, ".") {
			kind = ast.FractionalLiteral
		}
		return &ast.Literal{Base: ast.Base{Position: tok.Position}, Kind: kind, Value: tok.Lexeme}, nil

	case tok.Kind == token.STRING:
		p.advance()
		return &ast.Literal{Base: ast.Base{Position: tok.Position}, Kind: ast.StringLiteral, Value: tok.Lexeme}, nil

	case tok.IsKeyword("verum"):
		p.advance()
		return &ast.Literal{Base: ast.Base{Position: tok.Position}, Kind: ast.TrueLiteral, Value: tok.Lexeme}, nil

	case tok.IsKeyword("falsum"):
		p.advance()
		return &ast.Literal{Base: ast.Base{Position: tok.Position}, Kind: ast.FalseLiteral, Value: tok.Lexeme}, nil

	case tok.IsKeyword("nihil"):
		p.advance()
		return &ast.Literal{Base: ast.Base{Position: tok.Position}, Kind: ast.NullLiteral, Value: tok.Lexeme}, nil

	case tok.IsKeyword("ego"):
		p.advance()
		return &ast.SelfExpr{Base: ast.Base{Position: tok.Position}}, nil

	case tok.IsKeyword("scriptum"):
		return p.parseTemplateExpr()

	case tok.IsKeyword("novum"):
		return p.parseNewExpr()

	case tok.IsKeyword("finge"):
		return p.parseVariantExpr()

	case tok.IsPunct("["):
		return p.parseArrayLiteral()

	case tok.IsPunct("{"):
		return p.parseObjectLiteral()

	case tok.IsPunct("("):
		if p.looksLikeLambdaParams() {
			return p.parseLambdaExpr()
		}
		p.advance()
		inner, err := p.parseExprTop()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectPunct(")"); err != nil {
			return nil, err
		}
		return inner, nil

	case tok.Kind == token.IDENT:
		p.advance()
		return &ast.Ident{Base: ast.Base{Position: tok.Position}, Name: tok.Lexeme}, nil

	default:
		return nil, p.unexpected("expression")
	}
}

// looksLikeLambdaParams scans ahead from the current "(" to its
// matching ")" without consuming anything, reporting whether it is
// followed by "->" — the lambda body arrow, shared with function
// return-type arrows rather than introducing a second token for it.
func (p *Parser) looksLikeLambdaParams() bool {
	depth := 0
	i := p.pos
	for i < len(p.tokens) {
		t := p.tokens[i]
		if t.IsPunct("(") {
			depth++
		} else if t.IsPunct(")") {
			depth--
			if depth == 0 {
				return p.peekAt(i - p.pos + 1).IsOperator("->")
			}
		} else if t.Kind == token.EOF {
			return false
		}
		i++
	}
	return false
}

func (p *Parser) parseLambdaExpr() (ast.Expr, error) {
	start := p.current()
	params, err := p.parseParamList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectOperator("->"); err != nil {
		return nil, err
	}
	if p.current().IsPunct("{") {
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return &ast.LambdaExpr{Base: ast.Base{Position: start.Position}, Params: params, BlockBody: body}, nil
	}
	body, err := p.parseExpr(precAssignment)
	if err != nil {
		return nil, err
	}
	return &ast.LambdaExpr{Base: ast.Base{Position: start.Position}, Params: params, ExprBody: body}, nil
}

func (p *Parser) parseArrayLiteral() (ast.Expr, error) {
	open, err := p.expectPunct("[")
	if err != nil {
		return nil, err
	}
	var elems []ast.Expr
	for !p.current().IsPunct("]") {
		el, err := p.parseExpr(precAssignment)
		if err != nil {
			return nil, err
		}
		elems = append(elems, el)
		if p.current().IsPunct(",") {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expectPunct("]"); err != nil {
		return nil, err
	}
	return &ast.ArrayLiteral{Base: ast.Base{Position: open.Position}, Elements: elems}, nil
}

func (p *Parser) parseObjectLiteral() (ast.Expr, error) {
	open, err := p.expectPunct("{")
	if err != nil {
		return nil, err
	}
	var props []ast.ObjectProperty
	for !p.current().IsPunct("}") {
		prop, err := p.parseObjectProperty()
		if err != nil {
			return nil, err
		}
		props = append(props, prop)
		if p.current().IsPunct(",") {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expectPunct("}"); err != nil {
		return nil, err
	}
	return &ast.ObjectLiteral{Base: ast.Base{Position: open.Position}, Properties: props}, nil
}

func (p *Parser) parseObjectProperty() (ast.ObjectProperty, error) {
	if p.current().IsPunct("[") {
		p.advance()
		key, err := p.parseExprTop()
		if err != nil {
			return ast.ObjectProperty{}, err
		}
		if _, err := p.expectPunct("]"); err != nil {
			return ast.ObjectProperty{}, err
		}
		if _, err := p.expectPunct(":"); err != nil {
			return ast.ObjectProperty{}, err
		}
		value, err := p.parseExpr(precAssignment)
		if err != nil {
			return ast.ObjectProperty{}, err
		}
		return ast.ObjectProperty{Key: key, Value: value, Computed: true}, nil
	}

	nameTok, err := p.expectName()
	if err != nil {
		return ast.ObjectProperty{}, err
	}
	keyExpr := &ast.Ident{Base: ast.Base{Position: nameTok.Position}, Name: nameTok.Lexeme}

	if !p.current().IsPunct(":") {
		return ast.ObjectProperty{Key: keyExpr, Value: keyExpr, Shorthand: true}, nil
	}
	p.advance()
	value, err := p.parseExpr(precAssignment)
	if err != nil {
		return ast.ObjectProperty{}, err
	}
	return ast.ObjectProperty{Key: keyExpr, Value: value}, nil
}

func (p *Parser) parseNewExpr() (ast.Expr, error) {
	start := p.advance() // "novum"
	typ, err := p.parsePrimaryType()
	if err != nil {
		return nil, err
	}
	args, err := p.parseArgList()
	if err != nil {
		return nil, err
	}
	var init *ast.ObjectLiteral
	if p.current().IsPunct("{") {
		obj, err := p.parseObjectLiteral()
		if err != nil {
			return nil, err
		}
		init = obj.(*ast.ObjectLiteral)
	}
	return &ast.NewExpr{Base: ast.Base{Position: start.Position}, Type: typ, Args: args, Init: init}, nil
}

// parseVariantExpr parses "finge [Enclosing.]Variant { field: v, ... }".
func (p *Parser) parseVariantExpr() (ast.Expr, error) {
	start := p.advance() // "finge"
	first, err := p.expectName()
	if err != nil {
		return nil, err
	}

	enclosing := ""
	variantName := first.Lexeme
	if p.current().IsPunct(".") {
		p.advance()
		second, err := p.expectName()
		if err != nil {
			return nil, err
		}
		enclosing = first.Lexeme
		variantName = second.Lexeme
	}

	var fields []ast.FieldInit
	if p.current().IsPunct("{") {
		p.advance()
		for !p.current().IsPunct("}") {
			nameTok, err := p.expectName()
			if err != nil {
				return nil, err
			}
			if _, err := p.expectPunct(":"); err != nil {
				return nil, err
			}
			value, err := p.parseExpr(precAssignment)
			if err != nil {
				return nil, err
			}
			fields = append(fields, ast.FieldInit{Name: nameTok.Lexeme, Value: value})
			if p.current().IsPunct(",") {
				p.advance()
				continue
			}
			break
		}
		if _, err := p.expectPunct("}"); err != nil {
			return nil, err
		}
	}

	return &ast.VariantExpr{Base: ast.Base{Position: start.Position}, Enclosing: enclosing, Variant: variantName, Fields: fields}, nil
}

// parseTemplateExpr parses "scriptum(\"...§...§N...\", arg, arg)". The
// raw string's "§" slots are resolved against the argument list: a
// bare "§" takes the next positional argument in order, while "§N"
// names an explicit zero-based index.
func (p *Parser) parseTemplateExpr() (ast.Expr, error) {
	start := p.advance() // "scriptum"
	if _, err := p.expectPunct("("); err != nil {
		return nil, err
	}
	if p.current().Kind != token.STRING {
		return nil, p.unexpected("string literal template")
	}
	rawTok := p.advance()

	var args []ast.Expr
	for p.current().IsPunct(",") {
		p.advance()
		arg, err := p.parseExpr(precAssignment)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	if _, err := p.expectPunct(")"); err != nil {
		return nil, err
	}

	slots, err := parseTemplateSlots(rawTok.Lexeme)
	if err != nil {
		return nil, p.errorAt(rawTok, err.Error())
	}

	return &ast.TemplateExpr{Base: ast.Base{Position: start.Position}, Raw: rawTok.Lexeme, Slots: slots, Args: args}, nil
}

// parseTemplateSlots scans a template's raw text for "§" interpolation
// markers, returning one TemplateSlot per occurrence in left-to-right
// order. A bare "§" is an implicit positional slot; "§" immediately
// followed by digits is an explicit index.
func parseTemplateSlots(raw string) ([]ast.TemplateSlot, error) {
	var slots []ast.TemplateSlot
	nextPositional := 0
	runes := []rune(raw)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '§' {
			continue
		}
		j := i + 1
		for j < len(runes) && runes[j] >= '0' && runes[j] <= '9' {
			j++
		}
		if j > i+1 {
			n, err := strconv.Atoi(string(runes[i+1 : j]))
			if err != nil {
				return nil, err
			}
			slots = append(slots, ast.TemplateSlot{Index: n, Explicit: true})
			i = j - 1
			continue
		}
		slots = append(slots, ast.TemplateSlot{Index: nextPositional, Explicit: false})
		nextPositional++
	}
	return slots, nil
}
