package emitter

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/ianzepp/faber/ast"
)

// emitStmt writes stmt's target-language rendering to e.buffer at the
// given indent depth, including its own trailing terminator/newline
// where the statement kind needs one. Block-shaped statements recurse
// at depth+1 for their bodies.
func (e *emitter) emitStmt(stmt ast.Stmt, depth int) {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		e.writeIndent(depth)
		e.buffer.WriteString(e.emitExpr(s.Expr))
		e.buffer.WriteString(e.term())
	case *ast.VarDeclStmt:
		e.emitVarDecl(s, depth)
	case *ast.FuncDeclStmt:
		e.emitFuncDecl(s, depth)
	case *ast.ClassDeclStmt:
		e.emitClassDecl(s, depth)
	case *ast.ProtocolDeclStmt:
		e.emitProtocolDecl(s, depth)
	case *ast.EnumDeclStmt:
		e.emitEnumDecl(s, depth)
	case *ast.UnionDeclStmt:
		e.emitUnionDecl(s, depth)
	case *ast.TypeAliasStmt:
		e.writeIndent(depth)
		fmt.Fprintf(&e.buffer, "type %s = %s%s", s.Name, e.emitType(s.Type), e.term())
	case *ast.ImportStmt:
		e.emitImportStmt(s, depth)
	case *ast.IfStmt:
		e.emitIfStmt(s, depth)
	case *ast.WhileStmt:
		e.writeIndent(depth)
		fmt.Fprintf(&e.buffer, "while (%s) ", e.emitExpr(s.Cond))
		e.emitBody(s.Body, depth)
	case *ast.DoWhileStmt:
		e.writeIndent(depth)
		e.buffer.WriteString("do ")
		e.emitBody(s.Body, depth)
		fmt.Fprintf(&e.buffer, " while (%s)%s", e.emitExpr(s.Cond), e.term())
	case *ast.ForInStmt:
		e.emitForInStmt(s, depth)
	case *ast.SwitchStmt:
		e.emitSwitchStmt(s, depth)
	case *ast.MatchStmt:
		e.emitMatchStmt(s, depth)
	case *ast.GuardStmt:
		e.emitGuardStmt(s, depth)
	case *ast.TryStmt:
		e.emitTryStmt(s, depth)
	case *ast.ReturnStmt:
		e.writeIndent(depth)
		if s.Value == nil {
			e.buffer.WriteString("return" + e.term())
		} else {
			fmt.Fprintf(&e.buffer, "return %s%s", e.emitExpr(s.Value), e.term())
		}
	case *ast.ThrowStmt:
		e.writeIndent(depth)
		fmt.Fprintf(&e.buffer, "throw %s%s", e.emitExpr(s.Value), e.term())
	case *ast.PanicStmt:
		e.writeIndent(depth)
		fmt.Fprintf(&e.buffer, "throw new Error(%s)%s", e.emitExpr(s.Value), e.term())
	case *ast.PrintStmt:
		e.emitPrintStmt(s, depth)
	case *ast.AssertStmt:
		e.emitAssertStmt(s, depth)
	case *ast.BreakStmt:
		e.writeIndent(depth)
		e.buffer.WriteString("break" + e.term())
	case *ast.ContinueStmt:
		e.writeIndent(depth)
		e.buffer.WriteString("continue" + e.term())
	case *ast.EntryStmt:
		e.emitEntryStmt(s, depth)
	case *ast.TestSuiteStmt:
		e.emitTestSuiteStmt(s, depth)
	case *ast.BlockStmt:
		e.emitBlock(s, depth)
	default:
		e.fail("unknown statement node %T", stmt)
	}
}

func (e *emitter) emitBlock(block *ast.BlockStmt, depth int) {
	e.buffer.WriteString("{\n")
	for _, stmt := range block.Statements {
		e.emitStmt(stmt, depth+1)
		e.buffer.WriteString("\n")
	}
	e.writeIndent(depth)
	e.buffer.WriteString("}")
}

// emitBody renders a statement used as a control-flow body: a brace
// block stays a block, while a single bare statement (the "si cond
// redde x" shorthand form) is wrapped in one so the target always has
// a block body.
func (e *emitter) emitBody(body ast.Stmt, depth int) {
	if block, ok := body.(*ast.BlockStmt); ok {
		e.emitBlock(block, depth)
		return
	}
	e.buffer.WriteString("{\n")
	e.emitStmt(body, depth+1)
	e.buffer.WriteString("\n")
	e.writeIndent(depth)
	e.buffer.WriteString("}")
}

func (e *emitter) emitVarDecl(decl *ast.VarDeclStmt, depth int) {
	e.writeIndent(depth)
	kw := "let"
	if decl.Keyword == "fixum" {
		kw = "const"
	}
	e.buffer.WriteString(kw + " " + decl.Name)
	if decl.Type != nil {
		fmt.Fprintf(&e.buffer, ": %s", e.emitType(decl.Type))
	}
	if decl.Value != nil {
		fmt.Fprintf(&e.buffer, " = %s", e.emitExpr(decl.Value))
	}
	e.buffer.WriteString(e.term())
}

func (e *emitter) emitFuncDecl(decl *ast.FuncDeclStmt, depth int) {
	e.writeIndent(depth)
	if decl.Flags.IsAsync() {
		e.buffer.WriteString("async ")
	}
	e.buffer.WriteString("function " + decl.Name)
	e.emitGenerics(decl.Generics)
	e.buffer.WriteString("(")
	e.buffer.WriteString(e.emitParamList(decl.Params))
	e.buffer.WriteString(")")
	if decl.ReturnType != nil {
		fmt.Fprintf(&e.buffer, ": %s", e.emitType(decl.ReturnType))
	}
	if decl.Flags.IsExtern() || decl.Body == nil {
		e.buffer.WriteString(e.term())
		return
	}
	e.buffer.WriteString(" ")
	e.emitBlock(decl.Body, depth)
}

func (e *emitter) emitGenerics(generics []string) {
	if len(generics) == 0 {
		return
	}
	e.buffer.WriteString("<" + strings.Join(generics, ", ") + ">")
}

func (e *emitter) emitParamList(params []ast.Parameter) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = e.emitParameter(p)
	}
	return strings.Join(parts, ", ")
}

// memberVisibility resolves a field/method's effective visibility
// keyword, falling back to the dialect-configured default when no
// annotation set one explicitly.
func (e *emitter) memberVisibility(explicit string, flags ast.DeclFlags) string {
	switch {
	case flags.IsPublic():
		return "public"
	case flags.IsPrivate():
		return "private"
	case flags.IsProtected():
		return "protected"
	case explicit != "":
		return strings.ToLower(explicit)
	default:
		return e.cfg.DefaultMethodVisibility
	}
}

// emitClassDecl renders a "genus" declaration as a class with fields,
// a synthesized constructor that applies an "overrides" object over
// the declared field defaults, and the declared methods.
func (e *emitter) emitClassDecl(decl *ast.ClassDeclStmt, depth int) {
	e.writeIndent(depth)
	e.buffer.WriteString("class " + decl.Name)
	e.emitGenerics(decl.Generics)
	if len(decl.Protocols) > 0 {
		e.buffer.WriteString(" implements " + strings.Join(decl.Protocols, ", "))
	}
	e.buffer.WriteString(" {\n")

	for _, f := range decl.Fields {
		e.writeIndent(depth + 1)
		vis := e.memberVisibility(f.Visibility, ast.DeclFlags{})
		fmt.Fprintf(&e.buffer, "%s %s", vis, f.Name)
		if f.Type != nil {
			fmt.Fprintf(&e.buffer, ": %s", e.emitType(f.Type))
		}
		if f.Default != nil {
			fmt.Fprintf(&e.buffer, " = %s", e.emitExpr(f.Default))
		}
		e.buffer.WriteString(e.term() + "\n")
	}

	if len(decl.Fields) > 0 {
		e.writeIndent(depth + 1)
		e.buffer.WriteString("constructor(overrides = {}) {\n")
		for _, f := range decl.Fields {
			e.writeIndent(depth + 2)
			fmt.Fprintf(&e.buffer, "if (overrides.%s !== undefined) this.%s = overrides.%s%s\n", f.Name, f.Name, f.Name, e.term())
		}
		e.writeIndent(depth + 1)
		e.buffer.WriteString("}\n")
	}

	for _, m := range decl.Methods {
		e.writeIndent(depth + 1)
		vis := e.memberVisibility("", m.Flags)
		e.buffer.WriteString(vis + " ")
		if m.Flags.IsAsync() {
			e.buffer.WriteString("async ")
		}
		e.buffer.WriteString(m.Name)
		e.emitGenerics(m.Generics)
		e.buffer.WriteString("(" + e.emitParamList(m.Params) + ")")
		if m.ReturnType != nil {
			fmt.Fprintf(&e.buffer, ": %s", e.emitType(m.ReturnType))
		}
		if m.Body == nil {
			e.buffer.WriteString(e.term() + "\n")
			continue
		}
		e.buffer.WriteString(" ")
		e.emitBlock(m.Body, depth+1)
		e.buffer.WriteString("\n")
	}

	e.writeIndent(depth)
	e.buffer.WriteString("}")
}

func (e *emitter) emitProtocolDecl(decl *ast.ProtocolDeclStmt, depth int) {
	e.writeIndent(depth)
	fmt.Fprintf(&e.buffer, "interface %s {\n", decl.Name)
	for _, m := range decl.Methods {
		e.writeIndent(depth + 1)
		e.buffer.WriteString(m.Name)
		e.emitGenerics(m.Generics)
		e.buffer.WriteString("(" + e.emitParamList(m.Params) + ")")
		if m.ReturnType != nil {
			fmt.Fprintf(&e.buffer, ": %s", e.emitType(m.ReturnType))
		} else {
			e.buffer.WriteString(": void")
		}
		e.buffer.WriteString(e.term() + "\n")
	}
	e.writeIndent(depth)
	e.buffer.WriteString("}")
}

func (e *emitter) emitEnumDecl(decl *ast.EnumDeclStmt, depth int) {
	e.writeIndent(depth)
	fmt.Fprintf(&e.buffer, "enum %s {\n", decl.Name)
	for i, m := range decl.Members {
		e.writeIndent(depth + 1)
		e.buffer.WriteString(m.Name)
		if m.Value != nil {
			fmt.Fprintf(&e.buffer, " = %s", e.emitExpr(m.Value))
		}
		if i < len(decl.Members)-1 {
			e.buffer.WriteString(",")
		}
		e.buffer.WriteString("\n")
	}
	e.writeIndent(depth)
	e.buffer.WriteString("}")
}

// emitUnionDecl lowers a "discretio" tagged union into two steps: one
// record type per variant (each carrying a literal "tag" discriminant
// plus its declared fields) and a union type alias joining them, per
// the tagged-union lowering rule.
func (e *emitter) emitUnionDecl(decl *ast.UnionDeclStmt, depth int) {
	names := lo.Map(decl.Variants, func(v ast.VariantDecl, _ int) string {
		return decl.Name + v.Name
	})
	for i, v := range decl.Variants {
		e.writeIndent(depth)
		fmt.Fprintf(&e.buffer, "type %s = {\n", names[i])
		e.writeIndent(depth + 1)
		fmt.Fprintf(&e.buffer, "tag: %s\n", quoteString(v.Name))
		for _, f := range v.Fields {
			e.writeIndent(depth + 1)
			fmt.Fprintf(&e.buffer, "%s: %s\n", f.Name, e.emitType(f.Type))
		}
		e.writeIndent(depth)
		e.buffer.WriteString("}")
		e.buffer.WriteString("\n")
	}
	e.writeIndent(depth)
	fmt.Fprintf(&e.buffer, "type %s = %s", decl.Name, strings.Join(names, " | "))
}

func (e *emitter) emitImportStmt(imp *ast.ImportStmt, depth int) {
	e.writeIndent(depth)
	if imp.Wildcard {
		alias := imp.WildcardAs
		if alias == "" {
			alias = "ns"
		}
		fmt.Fprintf(&e.buffer, "import * as %s from %s%s", alias, quoteString(imp.Path), e.term())
		return
	}
	specs := lo.Map(imp.Specifiers, func(s ast.ImportSpecifier, _ int) string {
		if s.Local != "" && s.Local != s.Imported {
			return fmt.Sprintf("%s as %s", s.Imported, s.Local)
		}
		return s.Imported
	})
	fmt.Fprintf(&e.buffer, "import { %s } from %s%s", strings.Join(specs, ", "), quoteString(imp.Path), e.term())
}

func (e *emitter) emitIfStmt(ifStmt *ast.IfStmt, depth int) {
	e.writeIndent(depth)
	fmt.Fprintf(&e.buffer, "if (%s) ", e.emitExpr(ifStmt.Cond))
	e.emitBody(ifStmt.Then, depth)
	if ifStmt.Else == nil {
		return
	}
	e.buffer.WriteString(" else ")
	if nested, ok := ifStmt.Else.(*ast.IfStmt); ok {
		e.emitIfStmtInline(nested, depth)
		return
	}
	e.emitBody(ifStmt.Else, depth)
}

// emitIfStmtInline renders a chained "secus si"/"sin" branch without
// its own leading indent, since it directly follows " else " on the
// same line.
func (e *emitter) emitIfStmtInline(ifStmt *ast.IfStmt, depth int) {
	fmt.Fprintf(&e.buffer, "if (%s) ", e.emitExpr(ifStmt.Cond))
	e.emitBody(ifStmt.Then, depth)
	if ifStmt.Else == nil {
		return
	}
	e.buffer.WriteString(" else ")
	if nested, ok := ifStmt.Else.(*ast.IfStmt); ok {
		e.emitIfStmtInline(nested, depth)
		return
	}
	e.emitBody(ifStmt.Else, depth)
}

func (e *emitter) emitForInStmt(forIn *ast.ForInStmt, depth int) {
	e.writeIndent(depth)
	kw := "const"
	if forIn.BindingKeyword == "varia" {
		kw = "let"
	}
	binding := forIn.Binding
	if forIn.KeyIteration {
		fmt.Fprintf(&e.buffer, "for (%s %s in %s) ", kw, binding, e.emitExpr(forIn.Sequence))
	} else {
		fmt.Fprintf(&e.buffer, "for (%s %s of %s) ", kw, binding, e.emitExpr(forIn.Sequence))
	}
	e.emitBody(forIn.Body, depth)
}

// emitSwitchStmt lowers "elige" to an if/else chain of strict-equality
// comparisons against the discriminant, ending in the optional
// "ceterum" else branch.
func (e *emitter) emitSwitchStmt(sw *ast.SwitchStmt, depth int) {
	e.writeIndent(depth)
	discVar := "discrim"
	fmt.Fprintf(&e.buffer, "{\n")
	e.writeIndent(depth + 1)
	fmt.Fprintf(&e.buffer, "const %s = %s%s\n", discVar, e.emitExpr(sw.Discriminant), e.term())

	for i, c := range sw.Cases {
		e.writeIndent(depth + 1)
		if i > 0 {
			e.buffer.WriteString("else ")
		}
		fmt.Fprintf(&e.buffer, "if (%s === %s) ", discVar, e.emitExpr(c.Value))
		e.emitBlock(c.Body, depth+1)
		e.buffer.WriteString("\n")
	}
	if sw.Default != nil {
		e.writeIndent(depth + 1)
		e.buffer.WriteString("else ")
		e.emitBlock(sw.Default, depth+1)
		e.buffer.WriteString("\n")
	}
	e.writeIndent(depth)
	e.buffer.WriteString("}")
}

// emitMatchStmt lowers "discerne" to an if/else chain, per the
// normative decision that pattern matches compile to sequential
// equality checks rather than a target switch. Each discriminant is
// hoisted into a temporary so it is evaluated exactly once; each case
// carries one pattern per discriminant (in discriminant order) and
// tests every non-wildcard pattern's tag, hoisting that pattern's
// field bindings (or a whole-value alias) before running the body. A
// case whose every pattern is a wildcard has no condition at all and
// becomes the trailing "else".
func (e *emitter) emitMatchStmt(match *ast.MatchStmt, depth int) {
	e.writeIndent(depth)
	e.buffer.WriteString("{\n")

	discVars := make([]string, len(match.Discriminants))
	for i, d := range match.Discriminants {
		discVars[i] = fmt.Sprintf("discriminant_%d", i)
		e.writeIndent(depth + 1)
		fmt.Fprintf(&e.buffer, "const %s = %s%s\n", discVars[i], e.emitExpr(d), e.term())
	}

	first := true
	for _, c := range match.Cases {
		e.writeIndent(depth + 1)
		conds := matchCaseConditions(c, discVars)
		if len(conds) == 0 {
			if !first {
				e.buffer.WriteString("else ")
			}
			e.emitMatchCaseBody(c, discVars, depth+1)
			e.buffer.WriteString("\n")
			continue
		}
		if !first {
			e.buffer.WriteString("else ")
		}
		first = false
		fmt.Fprintf(&e.buffer, "if (%s) ", strings.Join(conds, " && "))
		e.emitMatchCaseBody(c, discVars, depth+1)
		e.buffer.WriteString("\n")
	}

	e.writeIndent(depth)
	e.buffer.WriteString("}")
}

// matchCaseConditions returns one "discVars[i].tag === \"Variant\""
// comparison per non-wildcard pattern in c, in discriminant order. A
// case with no conditions (every pattern a wildcard) is the catch-all.
func matchCaseConditions(c ast.MatchCase, discVars []string) []string {
	var conds []string
	for i, pat := range c.Patterns {
		if pat.Wildcard {
			continue
		}
		conds = append(conds, fmt.Sprintf("%s.tag === %s", discVars[i], quoteString(pat.Variant)))
	}
	return conds
}

func (e *emitter) emitMatchCaseBody(c ast.MatchCase, discVars []string, depth int) {
	e.buffer.WriteString("{\n")
	for i, pat := range c.Patterns {
		if pat.Wildcard {
			continue
		}
		if pat.Alias != "" {
			e.writeIndent(depth + 1)
			fmt.Fprintf(&e.buffer, "const %s = %s%s\n", pat.Alias, discVars[i], e.term())
		}
		for _, b := range pat.Bindings {
			e.writeIndent(depth + 1)
			fmt.Fprintf(&e.buffer, "const %s = %s.%s%s\n", b.Local, discVars[i], b.Field, e.term())
		}
	}
	for _, stmt := range c.Body.Statements {
		e.emitStmt(stmt, depth+1)
		e.buffer.WriteString("\n")
	}
	e.writeIndent(depth)
	e.buffer.WriteString("}")
}

// emitGuardStmt lowers a "custodi" chain to a sequence of early-return
// negated-condition ifs, ending in the optional "secus" fallback body
// run when every guard passed.
func (e *emitter) emitGuardStmt(guard *ast.GuardStmt, depth int) {
	e.writeIndent(depth)
	e.buffer.WriteString("{\n")
	for _, c := range guard.Clauses {
		e.writeIndent(depth + 1)
		fmt.Fprintf(&e.buffer, "if (!(%s)) ", e.emitExpr(c.Cond))
		e.emitBlock(c.Body, depth+1)
		e.buffer.WriteString("\n")
	}
	if guard.Else != nil {
		for _, stmt := range guard.Else.Statements {
			e.emitStmt(stmt, depth+1)
			e.buffer.WriteString("\n")
		}
	}
	e.writeIndent(depth)
	e.buffer.WriteString("}")
}

func (e *emitter) emitTryStmt(try *ast.TryStmt, depth int) {
	e.writeIndent(depth)
	e.buffer.WriteString("try ")
	e.emitBlock(try.Block, depth)
	if try.CatchBlock != nil {
		param := try.CatchParam
		if param == "" {
			param = "err"
		}
		fmt.Fprintf(&e.buffer, " catch (%s) ", param)
		e.emitBlock(try.CatchBlock, depth)
	}
	if try.FinallyBlock != nil {
		e.buffer.WriteString(" finally ")
		e.emitBlock(try.FinallyBlock, depth)
	}
}

func (e *emitter) emitPrintStmt(print *ast.PrintStmt, depth int) {
	e.writeIndent(depth)
	fn := "console.log"
	switch print.Severity {
	case "vide":
		fn = "console.debug"
	case "mone":
		fn = "console.warn"
	}
	fmt.Fprintf(&e.buffer, "%s(%s)%s", fn, e.emitExpr(print.Value), e.term())
}

func (e *emitter) emitAssertStmt(assert *ast.AssertStmt, depth int) {
	e.writeIndent(depth)
	cond := e.emitExpr(assert.Cond)
	if assert.Message != nil {
		fmt.Fprintf(&e.buffer, "if (!(%s)) throw new Error(%s)%s", cond, e.emitExpr(assert.Message), e.term())
		return
	}
	fmt.Fprintf(&e.buffer, "if (!(%s)) throw new Error(%s)%s", cond, quoteString("assertion failed: "+cond), e.term())
}

// emitEntryStmt renders the program's top-level entry block. A
// synchronous block ("incipit") emits its statements directly at the
// top level; an async block ("incipiet") is wrapped in an
// immediately-invoked async function expression so top-level await
// works in targets without top-level-await support.
func (e *emitter) emitEntryStmt(entry *ast.EntryStmt, depth int) {
	if !entry.Async {
		for i, stmt := range entry.Body.Statements {
			if i > 0 {
				e.buffer.WriteString("\n")
			}
			e.emitStmt(stmt, depth)
		}
		return
	}
	e.writeIndent(depth)
	e.buffer.WriteString("(async () => {\n")
	for _, stmt := range entry.Body.Statements {
		e.emitStmt(stmt, depth+1)
		e.buffer.WriteString("\n")
	}
	e.writeIndent(depth)
	fmt.Fprintf(&e.buffer, "})()%s", e.term())
}

func (e *emitter) emitTestSuiteStmt(suite *ast.TestSuiteStmt, depth int) {
	e.writeIndent(depth)
	fmt.Fprintf(&e.buffer, "describe(%s, () => {\n", quoteString(suite.Name))
	for _, c := range suite.Cases {
		e.writeIndent(depth + 1)
		fmt.Fprintf(&e.buffer, "it(%s, () => {\n", quoteString(c.Name))
		for _, stmt := range c.Body.Statements {
			e.emitStmt(stmt, depth+2)
			e.buffer.WriteString("\n")
		}
		e.writeIndent(depth + 1)
		e.buffer.WriteString("})" + e.term() + "\n")
	}
	e.writeIndent(depth)
	e.buffer.WriteString("})" + e.term())
}
