package parser

import (
	"github.com/ianzepp/faber/ast"
	"github.com/ianzepp/faber/token"
)

// parseTopLevelStatement is the entry point for each iteration of
// Parser.Parse's main loop; it is the same dispatch used for nested
// block contents, since the grammar has no separate top-level-only
// productions.
func (p *Parser) parseTopLevelStatement() (ast.Stmt, error) {
	return p.parseStatement()
}

func (p *Parser) parseStatement() (ast.Stmt, error) {
	tok := p.current()

	if tok.IsPunct("@") {
		return p.parseAnnotatedStatement()
	}

	if tok.IsPunct("§") {
		return p.parseSectionDirective()
	}

	if tok.Kind == token.KEYWORD && varDeclKeywords[tok.Lexeme] {
		return p.parseVarDecl()
	}

	switch tok.Lexeme {
	case "functio":
		return p.parseFuncDecl(ast.NewDeclFlags())
	case "genus":
		return p.parseClassDecl(ast.NewDeclFlags())
	case "pactum":
		return p.parseProtocolDecl()
	case "ordo":
		return p.parseEnumDecl()
	case "discretio":
		return p.parseUnionDecl()
	case "si":
		return p.parseIfStmt()
	case "dum":
		return p.parseWhileStmt()
	case "fac":
		return p.parseDoWhileStmt()
	case "ex", "de":
		return p.parseForInStmt()
	case "elige":
		return p.parseSwitchStmt()
	case "discerne":
		return p.parseMatchStmt()
	case "custodi":
		return p.parseGuardStmt()
	case "tempta":
		return p.parseTryStmt()
	case "redde":
		return p.parseReturnStmt()
	case "reddit":
		return p.parseReturnShorthand()
	case "iace":
		return p.parseThrowStmt()
	case "iacit":
		return p.parseThrowShorthand()
	case "mori":
		return p.parsePanicStmt()
	case "moritor":
		return p.parsePanicShorthand()
	case "ergo":
		return p.parseErgoShorthand()
	case "tacet":
		return p.parseTacetStmt()
	case "scribe", "vide", "mone":
		return p.parsePrintStmt()
	case "adfirma":
		return p.parseAssertStmt()
	case "rumpe":
		return p.parseBreakStmt()
	case "perge":
		return p.parseContinueStmt()
	case "incipit", "incipiet":
		return p.parseEntryStmt()
	case "experimentum":
		return p.parseTestSuiteStmt()
	}

	if tok.IsPunct("{") {
		return p.parseBlock()
	}

	expr, err := p.parseExprTop()
	if err != nil {
		return nil, err
	}
	return &ast.ExprStmt{Base: ast.Base{Position: expr.Pos()}, Expr: expr}, nil
}

// parseBlock parses a brace-delimited statement sequence.
func (p *Parser) parseBlock() (*ast.BlockStmt, error) {
	open, err := p.expectPunct("{")
	if err != nil {
		return nil, err
	}
	var stmts []ast.Stmt
	for !p.current().IsPunct("}") {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.expectPunct("}"); err != nil {
		return nil, err
	}
	return &ast.BlockStmt{Base: ast.Base{Position: open.Position}, Statements: stmts}, nil
}

// parseBody parses either a brace-delimited block or (for the
// single-statement shorthand forms the grammar allows on if/while/for)
// a single wrapped statement.
func (p *Parser) parseBody() (ast.Stmt, error) {
	if p.current().IsPunct("{") {
		return p.parseBlock()
	}
	return p.parseStatement()
}

// skippableAnnotations is the closed, non-flag annotation vocabulary
// the core parser recognizes only well enough to skip over: CLI- and
// stdlib-registry annotations that set no DeclFlags bit the core
// emitter reads. Their arguments matter only to an external tool (a
// CLI generator, the norma stdlib registry).
var skippableAnnotations = map[string]bool{
	// CLI-related
	"cli": true, "versio": true, "descriptio": true, "optio": true,
	"operandus": true, "imperium": true, "alias": true, "imperia": true,
	"nomen": true,
	// Standard-library related
	"innatum": true, "radix": true, "verte": true, "subsidia": true,
}

// declarationStartKeywords bounds skipAnnotationArguments: it stops
// consuming tokens once it reaches a keyword that can start a
// declaration (a top-level form, or a type-first field).
var declarationStartKeywords = func() map[string]bool {
	set := make(map[string]bool)
	for _, word := range token.Keywords.Declarations {
		set[word] = true
	}
	for _, word := range token.Keywords.Types {
		set[word] = true
	}
	return set
}()

// skipAnnotationArguments consumes whatever follows a skippable
// annotation's name, stopping at the next "@", "§", or
// declaration-starting keyword, per the closed skippable-annotation
// rule: these annotations' arguments carry no flag the core parser
// models, so it consumes them without interpreting their shape.
func (p *Parser) skipAnnotationArguments() {
	for {
		tok := p.current()
		if tok.Kind == token.EOF || tok.IsPunct("@") || tok.IsPunct("§") {
			return
		}
		if tok.Kind == token.KEYWORD && declarationStartKeywords[tok.Lexeme] {
			return
		}
		p.advance()
	}
}

// applyAnnotation folds one "@name" annotation into flags: a flag
// annotation sets its bit, a skippable annotation has its arguments
// consumed and is otherwise ignored, and anything else is a fatal
// unknown-annotation error.
func (p *Parser) applyAnnotation(nameTok token.Token, flags *ast.DeclFlags) error {
	switch nameTok.Lexeme {
	case "publica":
		flags.SetPublic()
	case "privata":
		flags.SetPrivate()
	case "protecta":
		flags.SetProtected()
	case "futura":
		flags.SetAsync()
	case "externa":
		flags.SetExtern()
	case "abstractus":
		flags.SetAbstract()
	default:
		if !skippableAnnotations[nameTok.Lexeme] {
			return p.errorAt(nameTok, "unknown annotation '@"+nameTok.Lexeme+"'")
		}
		p.skipAnnotationArguments()
	}
	return nil
}

// parseAnnotatedStatement consumes one or more leading "@name" markers
// and folds them into the DeclFlags of the function or class
// declaration that must follow.
func (p *Parser) parseAnnotatedStatement() (ast.Stmt, error) {
	flags := ast.NewDeclFlags()
	for p.current().IsPunct("@") {
		p.advance()
		nameTok, err := p.expectName()
		if err != nil {
			return nil, err
		}
		if err := p.applyAnnotation(nameTok, &flags); err != nil {
			return nil, err
		}
	}

	switch p.current().Lexeme {
	case "functio":
		return p.parseFuncDecl(flags)
	case "genus":
		return p.parseClassDecl(flags)
	default:
		return nil, p.unexpected("'functio' or 'genus' after annotation")
	}
}

func (p *Parser) parseFuncDecl(flags ast.DeclFlags) (*ast.FuncDeclStmt, error) {
	start, err := p.expectKeyword("functio")
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	generics, err := p.parseOptionalGenerics()
	if err != nil {
		return nil, err
	}
	params, err := p.parseParamList()
	if err != nil {
		return nil, err
	}
	var retType ast.Type
	if p.current().IsOperator("->") {
		p.advance()
		retType, err = p.parseType()
		if err != nil {
			return nil, err
		}
	}

	var body *ast.BlockStmt
	if flags.IsExtern() {
		if p.current().IsPunct("{") {
			return nil, p.unexpected("no body (extern function)")
		}
	} else {
		body, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}

	return &ast.FuncDeclStmt{
		Base: ast.Base{Position: start.Position}, Name: nameTok.Lexeme, Generics: generics,
		Params: params, ReturnType: retType, Body: body, Flags: flags,
	}, nil
}

func (p *Parser) parseClassDecl(flags ast.DeclFlags) (*ast.ClassDeclStmt, error) {
	start, err := p.expectKeyword("genus")
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	generics, err := p.parseOptionalGenerics()
	if err != nil {
		return nil, err
	}

	var protocols []string
	if p.current().IsKeyword("ut") {
		p.advance()
		for {
			protoTok, err := p.expectIdent()
			if err != nil {
				return nil, err
			}
			protocols = append(protocols, protoTok.Lexeme)
			if p.current().IsPunct(",") {
				p.advance()
				continue
			}
			break
		}
	}

	if _, err := p.expectPunct("{"); err != nil {
		return nil, err
	}

	var fields []ast.FieldDecl
	var methods []*ast.FuncDeclStmt
	for !p.current().IsPunct("}") {
		memberFlags := ast.NewDeclFlags()
		for p.current().IsPunct("@") {
			p.advance()
			annTok, err := p.expectName()
			if err != nil {
				return nil, err
			}
			if err := p.applyAnnotation(annTok, &memberFlags); err != nil {
				return nil, err
			}
		}

		if p.current().IsKeyword("functio") {
			method, err := p.parseFuncDecl(memberFlags)
			if err != nil {
				return nil, err
			}
			methods = append(methods, method)
			continue
		}

		field, err := p.parseFieldDecl(memberFlags)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	if _, err := p.expectPunct("}"); err != nil {
		return nil, err
	}

	return &ast.ClassDeclStmt{
		Base: ast.Base{Position: start.Position}, Name: nameTok.Lexeme, Generics: generics,
		Fields: fields, Methods: methods, Protocols: protocols, Flags: flags,
	}, nil
}

func (p *Parser) parseFieldDecl(flags ast.DeclFlags) (ast.FieldDecl, error) {
	visibility := ""
	switch {
	case flags.IsPublic():
		visibility = "Public"
	case flags.IsPrivate():
		visibility = "Private"
	case flags.IsProtected():
		visibility = "Protected"
	}

	firstTok, err := p.expectName()
	if err != nil {
		return ast.FieldDecl{}, err
	}

	var fieldType ast.Type
	var name string
	if p.current().Kind == token.IDENT || p.current().Kind == token.KEYWORD {
		fieldType = &ast.NamedType{Base: ast.Base{Position: firstTok.Position}, Name: firstTok.Lexeme}
		nameTok, err := p.expectIdent()
		if err != nil {
			return ast.FieldDecl{}, err
		}
		name = nameTok.Lexeme
	} else {
		name = firstTok.Lexeme
	}

	var def ast.Expr
	if p.current().IsOperator("=") {
		p.advance()
		def, err = p.parseExpr(precAssignment)
		if err != nil {
			return ast.FieldDecl{}, err
		}
	}

	return ast.FieldDecl{Name: name, Type: fieldType, Default: def, Visibility: visibility}, nil
}

func (p *Parser) parseProtocolDecl() (*ast.ProtocolDeclStmt, error) {
	start, err := p.expectKeyword("pactum")
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectPunct("{"); err != nil {
		return nil, err
	}
	var methods []ast.MethodSignature
	for !p.current().IsPunct("}") {
		if _, err := p.expectKeyword("functio"); err != nil {
			return nil, err
		}
		methodName, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		generics, err := p.parseOptionalGenerics()
		if err != nil {
			return nil, err
		}
		params, err := p.parseParamList()
		if err != nil {
			return nil, err
		}
		var retType ast.Type
		if p.current().IsOperator("->") {
			p.advance()
			retType, err = p.parseType()
			if err != nil {
				return nil, err
			}
		}
		methods = append(methods, ast.MethodSignature{Name: methodName.Lexeme, Generics: generics, Params: params, ReturnType: retType})
	}
	if _, err := p.expectPunct("}"); err != nil {
		return nil, err
	}
	return &ast.ProtocolDeclStmt{Base: ast.Base{Position: start.Position}, Name: nameTok.Lexeme, Methods: methods}, nil
}

func (p *Parser) parseEnumDecl() (*ast.EnumDeclStmt, error) {
	start, err := p.expectKeyword("ordo")
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectPunct("{"); err != nil {
		return nil, err
	}
	var members []ast.EnumMember
	for !p.current().IsPunct("}") {
		memberTok, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		var value ast.Expr
		if p.current().IsOperator("=") {
			p.advance()
			value, err = p.parseExpr(precAssignment)
			if err != nil {
				return nil, err
			}
		}
		members = append(members, ast.EnumMember{Name: memberTok.Lexeme, Value: value})
		if p.current().IsPunct(",") {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expectPunct("}"); err != nil {
		return nil, err
	}
	return &ast.EnumDeclStmt{Base: ast.Base{Position: start.Position}, Name: nameTok.Lexeme, Members: members}, nil
}

func (p *Parser) parseUnionDecl() (*ast.UnionDeclStmt, error) {
	start, err := p.expectKeyword("discretio")
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectPunct("{"); err != nil {
		return nil, err
	}
	var variants []ast.VariantDecl
	for !p.current().IsPunct("}") {
		variantTok, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		var fields []ast.VariantField
		if p.current().IsPunct("(") {
			p.advance()
			for !p.current().IsPunct(")") {
				fieldNameTok, err := p.expectIdent()
				if err != nil {
					return nil, err
				}
				fieldType, err := p.parseType()
				if err != nil {
					return nil, err
				}
				fields = append(fields, ast.VariantField{Name: fieldNameTok.Lexeme, Type: fieldType})
				if p.current().IsPunct(",") {
					p.advance()
					continue
				}
				break
			}
			if _, err := p.expectPunct(")"); err != nil {
				return nil, err
			}
		}
		variants = append(variants, ast.VariantDecl{Name: variantTok.Lexeme, Fields: fields})
		if p.current().IsPunct(",") {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expectPunct("}"); err != nil {
		return nil, err
	}
	return &ast.UnionDeclStmt{Base: ast.Base{Position: start.Position}, Name: nameTok.Lexeme, Variants: variants}, nil
}

// parseSectionDirective parses a "§"-prefixed section directive. The
// only section directive today is import.
func (p *Parser) parseSectionDirective() (ast.Stmt, error) {
	start, err := p.expectPunct("§")
	if err != nil {
		return nil, err
	}
	return p.parseImportStmt(start.Position)
}

// parseImportStmt parses the body of a "§" section directive in either
// word order: the modern "importa ex \"path\" name, name ut alias, ..."
// or the legacy "ex \"path\" importa name, name ut alias, ...". Both
// accept the wildcard form "... * ut alias" in place of a specifier
// list.
func (p *Parser) parseImportStmt(pos token.Position) (*ast.ImportStmt, error) {
	var pathTok token.Token
	switch {
	case p.current().IsKeyword("importa"):
		p.advance()
		if _, err := p.expectKeyword("ex"); err != nil {
			return nil, err
		}
		if p.current().Kind != token.STRING {
			return nil, p.unexpected("import path string")
		}
		pathTok = p.advance()
	case p.current().IsKeyword("ex"):
		p.advance()
		if p.current().Kind != token.STRING {
			return nil, p.unexpected("import path string")
		}
		pathTok = p.advance()
		if _, err := p.expectKeyword("importa"); err != nil {
			return nil, err
		}
	default:
		return nil, p.unexpected("'importa' or 'ex'")
	}

	if p.current().IsOperator("*") {
		p.advance()
		alias := ""
		if p.current().IsKeyword("ut") {
			p.advance()
			aliasTok, err := p.expectIdent()
			if err != nil {
				return nil, err
			}
			alias = aliasTok.Lexeme
		}
		return &ast.ImportStmt{Base: ast.Base{Position: pos}, Path: pathTok.Lexeme, Wildcard: true, WildcardAs: alias}, nil
	}

	var specs []ast.ImportSpecifier
	for {
		nameTok, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		local := nameTok.Lexeme
		if p.current().IsKeyword("ut") {
			p.advance()
			aliasTok, err := p.expectIdent()
			if err != nil {
				return nil, err
			}
			local = aliasTok.Lexeme
		}
		specs = append(specs, ast.ImportSpecifier{Imported: nameTok.Lexeme, Local: local})
		if p.current().IsPunct(",") {
			p.advance()
			continue
		}
		break
	}

	return &ast.ImportStmt{Base: ast.Base{Position: pos}, Path: pathTok.Lexeme, Specifiers: specs}, nil
}

// parseIfStmt handles both "si cond { } secus { }" and the "sin"
// else-if shorthand, which nests directly as another IfStmt in Else.
func (p *Parser) parseIfStmt() (*ast.IfStmt, error) {
	start, err := p.expectKeyword("si")
	if err != nil {
		return nil, err
	}
	cond, err := p.parseExprTop()
	if err != nil {
		return nil, err
	}
	then, err := p.parseBody()
	if err != nil {
		return nil, err
	}

	var elseStmt ast.Stmt
	if p.current().IsKeyword("sin") {
		sinTok := p.advance()
		elseIfCond, err := p.parseExprTop()
		if err != nil {
			return nil, err
		}
		elseIfThen, err := p.parseBody()
		if err != nil {
			return nil, err
		}
		nested := &ast.IfStmt{Base: ast.Base{Position: sinTok.Position}, Cond: elseIfCond, Then: elseIfThen}
		if p.current().IsKeyword("sin") || p.current().IsKeyword("secus") {
			rest, err := p.parseIfTail()
			if err != nil {
				return nil, err
			}
			nested.Else = rest
		}
		elseStmt = nested
	} else if p.current().IsKeyword("secus") {
		p.advance()
		elseBlock, err := p.parseBody()
		if err != nil {
			return nil, err
		}
		elseStmt = elseBlock
	}

	return &ast.IfStmt{Base: ast.Base{Position: start.Position}, Cond: cond, Then: then, Else: elseStmt}, nil
}

// parseIfTail handles a chain of further "sin"/"secus" clauses
// following the first one already consumed by the caller.
func (p *Parser) parseIfTail() (ast.Stmt, error) {
	if p.current().IsKeyword("sin") {
		sinTok := p.advance()
		cond, err := p.parseExprTop()
		if err != nil {
			return nil, err
		}
		then, err := p.parseBody()
		if err != nil {
			return nil, err
		}
		nested := &ast.IfStmt{Base: ast.Base{Position: sinTok.Position}, Cond: cond, Then: then}
		if p.current().IsKeyword("sin") || p.current().IsKeyword("secus") {
			rest, err := p.parseIfTail()
			if err != nil {
				return nil, err
			}
			nested.Else = rest
		}
		return nested, nil
	}
	p.advance() // "secus"
	return p.parseBody()
}

func (p *Parser) parseWhileStmt() (*ast.WhileStmt, error) {
	start, err := p.expectKeyword("dum")
	if err != nil {
		return nil, err
	}
	cond, err := p.parseExprTop()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Base: ast.Base{Position: start.Position}, Cond: cond, Body: body}, nil
}

func (p *Parser) parseDoWhileStmt() (*ast.DoWhileStmt, error) {
	start, err := p.expectKeyword("fac")
	if err != nil {
		return nil, err
	}
	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("dum"); err != nil {
		return nil, err
	}
	cond, err := p.parseExprTop()
	if err != nil {
		return nil, err
	}
	return &ast.DoWhileStmt{Base: ast.Base{Position: start.Position}, Body: body, Cond: cond}, nil
}

// parseForInStmt parses "ex seq fixum x { }" (value iteration, "ex")
// and its key-iteration counterpart ("de").
func (p *Parser) parseForInStmt() (*ast.ForInStmt, error) {
	start := p.advance() // "ex" or "de"
	keyIteration := start.Lexeme == "de"

	seq, err := p.parseExpr(precRelational)
	if err != nil {
		return nil, err
	}

	bindingKwTok, err := p.expectName()
	if err != nil {
		return nil, err
	}
	bindingNameTok, err := p.expectIdent()
	if err != nil {
		return nil, err
	}

	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}

	return &ast.ForInStmt{
		Base: ast.Base{Position: start.Position}, BindingKeyword: bindingKwTok.Lexeme,
		Binding: bindingNameTok.Lexeme, Sequence: seq, Body: body, KeyIteration: keyIteration,
	}, nil
}

func (p *Parser) parseSwitchStmt() (*ast.SwitchStmt, error) {
	start, err := p.expectKeyword("elige")
	if err != nil {
		return nil, err
	}
	discrim, err := p.parseExprTop()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectPunct("{"); err != nil {
		return nil, err
	}

	var cases []ast.SwitchCase
	var defaultBlock *ast.BlockStmt
	for !p.current().IsPunct("}") {
		if p.current().IsKeyword("ceterum") {
			p.advance()
			block, err := p.parseBlock()
			if err != nil {
				return nil, err
			}
			defaultBlock = block
			continue
		}
		if _, err := p.expectKeyword("casu"); err != nil {
			return nil, err
		}
		value, err := p.parseExpr(precAssignment)
		if err != nil {
			return nil, err
		}
		block, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		cases = append(cases, ast.SwitchCase{Value: value, Body: block})
	}
	if _, err := p.expectPunct("}"); err != nil {
		return nil, err
	}
	return &ast.SwitchStmt{Base: ast.Base{Position: start.Position}, Discriminant: discrim, Cases: cases, Default: defaultBlock}, nil
}

// parseMatchStmt parses "discerne d1, d2, ... { casu Variant(pro f ut x, fixum g) { } casu _ { } }".
func (p *Parser) parseMatchStmt() (*ast.MatchStmt, error) {
	start, err := p.expectKeyword("discerne")
	if err != nil {
		return nil, err
	}

	var discriminants []ast.Expr
	for {
		d, err := p.parseExpr(precAssignment)
		if err != nil {
			return nil, err
		}
		discriminants = append(discriminants, d)
		if p.current().IsPunct(",") {
			p.advance()
			continue
		}
		break
	}

	if _, err := p.expectPunct("{"); err != nil {
		return nil, err
	}

	var cases []ast.MatchCase
	for !p.current().IsPunct("}") {
		if _, err := p.expectKeyword("casu"); err != nil {
			return nil, err
		}

		var patterns []ast.MatchPattern
		for {
			pattern, err := p.parseMatchPattern()
			if err != nil {
				return nil, err
			}
			patterns = append(patterns, pattern)
			if p.current().IsPunct(",") {
				p.advance()
				continue
			}
			break
		}

		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		cases = append(cases, ast.MatchCase{Patterns: patterns, Body: body})
	}
	if _, err := p.expectPunct("}"); err != nil {
		return nil, err
	}

	return &ast.MatchStmt{Base: ast.Base{Position: start.Position}, Discriminants: discriminants, Cases: cases}, nil
}

// parseMatchPattern parses one discriminant's pattern within a "casu"
// clause: "_", "Variant", "Variant(pro f ut x, fixum g)", or
// "Variant ut alias". A "discerne" over several discriminants repeats
// this, comma-separated, once per discriminant in order.
func (p *Parser) parseMatchPattern() (ast.MatchPattern, error) {
	if p.current().Kind == token.IDENT && p.current().Lexeme == "_" {
		p.advance()
		return ast.MatchPattern{Wildcard: true}, nil
	}

	variantTok, err := p.expectIdent()
	if err != nil {
		return ast.MatchPattern{}, err
	}

	var bindings []ast.PatternBinding
	var alias string
	if p.current().IsPunct("(") {
		p.advance()
		for !p.current().IsPunct(")") {
			kindTok, err := p.expectName() // "pro" or "fixum"
			if err != nil {
				return ast.MatchPattern{}, err
			}
			fieldTok, err := p.expectIdent()
			if err != nil {
				return ast.MatchPattern{}, err
			}
			local := fieldTok.Lexeme
			if p.current().IsKeyword("ut") {
				p.advance()
				localTok, err := p.expectIdent()
				if err != nil {
					return ast.MatchPattern{}, err
				}
				local = localTok.Lexeme
			}
			bindings = append(bindings, ast.PatternBinding{Field: fieldTok.Lexeme, Local: local, Kind: kindTok.Lexeme})
			if p.current().IsPunct(",") {
				p.advance()
				continue
			}
			break
		}
		if _, err := p.expectPunct(")"); err != nil {
			return ast.MatchPattern{}, err
		}
	} else if p.current().IsKeyword("ut") {
		p.advance()
		aliasTok, err := p.expectIdent()
		if err != nil {
			return ast.MatchPattern{}, err
		}
		alias = aliasTok.Lexeme
	}

	return ast.MatchPattern{Variant: variantTok.Lexeme, Bindings: bindings, Alias: alias}, nil
}

// parseGuardStmt parses a "custodi" chain: one or more "cond { }"
// clauses followed by an optional "secus { }" fallback block.
func (p *Parser) parseGuardStmt() (*ast.GuardStmt, error) {
	start, err := p.expectKeyword("custodi")
	if err != nil {
		return nil, err
	}
	var clauses []ast.GuardClause
	for {
		cond, err := p.parseExpr(precAssignment)
		if err != nil {
			return nil, err
		}
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, ast.GuardClause{Cond: cond, Body: body})
		if p.current().IsKeyword("custodi") {
			p.advance()
			continue
		}
		break
	}
	var elseBlock *ast.BlockStmt
	if p.current().IsKeyword("secus") {
		p.advance()
		elseBlock, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}
	return &ast.GuardStmt{Base: ast.Base{Position: start.Position}, Clauses: clauses, Else: elseBlock}, nil
}

func (p *Parser) parseTryStmt() (*ast.TryStmt, error) {
	start, err := p.expectKeyword("tempta")
	if err != nil {
		return nil, err
	}
	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	var catchParam string
	var catchBlock *ast.BlockStmt
	if p.current().IsKeyword("cape") {
		p.advance()
		paramTok, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		catchParam = paramTok.Lexeme
		catchBlock, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}

	var finallyBlock *ast.BlockStmt
	if p.current().IsKeyword("demum") {
		p.advance()
		finallyBlock, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}

	return &ast.TryStmt{
		Base: ast.Base{Position: start.Position}, Block: block,
		CatchParam: catchParam, CatchBlock: catchBlock, FinallyBlock: finallyBlock,
	}, nil
}

func (p *Parser) parseReturnStmt() (*ast.ReturnStmt, error) {
	start, err := p.expectKeyword("redde")
	if err != nil {
		return nil, err
	}
	if p.current().IsPunct("}") || p.atStatementEnd() {
		return &ast.ReturnStmt{Base: ast.Base{Position: start.Position}}, nil
	}
	value, err := p.parseExprTop()
	if err != nil {
		return nil, err
	}
	return &ast.ReturnStmt{Base: ast.Base{Position: start.Position}, Value: value}, nil
}

// parseReturnShorthand handles "reddit expr", the single-statement
// return form used in expression-bodied contexts.
func (p *Parser) parseReturnShorthand() (*ast.ReturnStmt, error) {
	start, err := p.expectKeyword("reddit")
	if err != nil {
		return nil, err
	}
	value, err := p.parseExprTop()
	if err != nil {
		return nil, err
	}
	return &ast.ReturnStmt{Base: ast.Base{Position: start.Position}, Value: value}, nil
}

func (p *Parser) parseThrowStmt() (*ast.ThrowStmt, error) {
	start, err := p.expectKeyword("iace")
	if err != nil {
		return nil, err
	}
	value, err := p.parseExprTop()
	if err != nil {
		return nil, err
	}
	return &ast.ThrowStmt{Base: ast.Base{Position: start.Position}, Value: value}, nil
}

func (p *Parser) parseThrowShorthand() (*ast.ThrowStmt, error) {
	start, err := p.expectKeyword("iacit")
	if err != nil {
		return nil, err
	}
	value, err := p.parseExprTop()
	if err != nil {
		return nil, err
	}
	return &ast.ThrowStmt{Base: ast.Base{Position: start.Position}, Value: value}, nil
}

func (p *Parser) parsePanicStmt() (*ast.PanicStmt, error) {
	start, err := p.expectKeyword("mori")
	if err != nil {
		return nil, err
	}
	value, err := p.parseExprTop()
	if err != nil {
		return nil, err
	}
	return &ast.PanicStmt{Base: ast.Base{Position: start.Position}, Value: value}, nil
}

func (p *Parser) parsePanicShorthand() (*ast.PanicStmt, error) {
	start, err := p.expectKeyword("moritor")
	if err != nil {
		return nil, err
	}
	value, err := p.parseExprTop()
	if err != nil {
		return nil, err
	}
	return &ast.PanicStmt{Base: ast.Base{Position: start.Position}, Value: value}, nil
}

// parseErgoShorthand parses "ergo stmt" — a single trailing statement
// wrapped for contexts requiring an explicit body marker.
func (p *Parser) parseErgoShorthand() (ast.Stmt, error) {
	if _, err := p.expectKeyword("ergo"); err != nil {
		return nil, err
	}
	return p.parseStatement()
}

// parseTacetStmt parses "tacet", the explicit no-op statement.
func (p *Parser) parseTacetStmt() (ast.Stmt, error) {
	start, err := p.expectKeyword("tacet")
	if err != nil {
		return nil, err
	}
	return &ast.BlockStmt{Base: ast.Base{Position: start.Position}}, nil
}

func (p *Parser) parsePrintStmt() (*ast.PrintStmt, error) {
	sevTok := p.advance()
	value, err := p.parseExprTop()
	if err != nil {
		return nil, err
	}
	return &ast.PrintStmt{Base: ast.Base{Position: sevTok.Position}, Severity: sevTok.Lexeme, Value: value}, nil
}

func (p *Parser) parseAssertStmt() (*ast.AssertStmt, error) {
	start, err := p.expectKeyword("adfirma")
	if err != nil {
		return nil, err
	}
	cond, err := p.parseExpr(precAssignment)
	if err != nil {
		return nil, err
	}
	var message ast.Expr
	if p.current().IsPunct(",") {
		p.advance()
		message, err = p.parseExprTop()
		if err != nil {
			return nil, err
		}
	}
	return &ast.AssertStmt{Base: ast.Base{Position: start.Position}, Cond: cond, Message: message}, nil
}

func (p *Parser) parseBreakStmt() (*ast.BreakStmt, error) {
	start, err := p.expectKeyword("rumpe")
	if err != nil {
		return nil, err
	}
	return &ast.BreakStmt{Base: ast.Base{Position: start.Position}}, nil
}

func (p *Parser) parseContinueStmt() (*ast.ContinueStmt, error) {
	start, err := p.expectKeyword("perge")
	if err != nil {
		return nil, err
	}
	return &ast.ContinueStmt{Base: ast.Base{Position: start.Position}}, nil
}

// parseEntryStmt parses "incipit { }" (synchronous entry) or
// "incipiet { }" (async entry, wrapped in an IIFE at emission).
func (p *Parser) parseEntryStmt() (*ast.EntryStmt, error) {
	start := p.advance()
	async := start.Lexeme == "incipiet"
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.EntryStmt{Base: ast.Base{Position: start.Position}, Async: async, Body: body}, nil
}

func (p *Parser) parseTestSuiteStmt() (*ast.TestSuiteStmt, error) {
	start, err := p.expectKeyword("experimentum")
	if err != nil {
		return nil, err
	}
	if p.current().Kind != token.STRING {
		return nil, p.unexpected("test suite name string")
	}
	nameTok := p.advance()

	if _, err := p.expectPunct("{"); err != nil {
		return nil, err
	}
	var cases []*ast.TestCaseStmt
	for !p.current().IsPunct("}") {
		caseStart, err := p.expectKeyword("exemplum")
		if err != nil {
			return nil, err
		}
		if p.current().Kind != token.STRING {
			return nil, p.unexpected("test case name string")
		}
		caseNameTok := p.advance()
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		cases = append(cases, &ast.TestCaseStmt{Base: ast.Base{Position: caseStart.Position}, Name: caseNameTok.Lexeme, Body: body})
	}
	if _, err := p.expectPunct("}"); err != nil {
		return nil, err
	}

	return &ast.TestSuiteStmt{Base: ast.Base{Position: start.Position}, Name: nameTok.Lexeme, Cases: cases}, nil
}

// atStatementEnd reports whether the current token plausibly closes a
// bare "redde" with no value — end of block or end of file, since the
// grammar has no statement terminator of its own.
func (p *Parser) atStatementEnd() bool {
	return p.current().IsPunct("}") || p.current().Kind == token.EOF
}
