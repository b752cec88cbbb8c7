package parser_test

import (
	"testing"

	"github.com/ianzepp/faber/ast"
	"github.com/ianzepp/faber/lexer"
	"github.com/ianzepp/faber/parser"
	"github.com/stretchr/testify/require"
)

func parseSource(t *testing.T, src string) *ast.Module {
	t.Helper()
	l, err := lexer.New("test.fab", src)
	require.NoError(t, err)
	tokens := lexer.Prepare(l.Tokens())
	mod, err := parser.New("test.fab", tokens).Parse()
	require.NoError(t, err)
	return mod
}

func parseExprSource(t *testing.T, src string) ast.Expr {
	t.Helper()
	mod := parseSource(t, src)
	require.Len(t, mod.Statements, 1)
	exprStmt, ok := mod.Statements[0].(*ast.ExprStmt)
	require.True(t, ok, "expected a single expression statement")
	return exprStmt.Expr
}

func TestPrecedenceClimbingBindsMultiplicativeTighterThanAdditive(t *testing.T) {
	expr := parseExprSource(t, "1 + 2 * 3")

	bin, ok := expr.(*ast.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, "+", bin.Op)

	right, ok := bin.Right.(*ast.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, "*", right.Op)
}

func TestAssignmentIsRightAssociative(t *testing.T) {
	expr := parseExprSource(t, "a = b = 1")

	outer, ok := expr.(*ast.AssignExpr)
	require.True(t, ok)
	_, ok = outer.Value.(*ast.AssignExpr)
	require.True(t, ok, "expected nested assignment on the right")
}

func TestTernaryBindsLooserThanAssignment(t *testing.T) {
	mod := parseSource(t, "varia x = a et b sic 1 secus 2")
	decl := mod.Statements[0].(*ast.VarDeclStmt)
	ternary, ok := decl.Value.(*ast.TernaryExpr)
	require.True(t, ok)
	_, ok = ternary.Cond.(*ast.BinaryExpr)
	require.True(t, ok)
}

func TestNihilIsLiteralWhenStandalone(t *testing.T) {
	expr := parseExprSource(t, "nihil")
	lit, ok := expr.(*ast.Literal)
	require.True(t, ok)
	require.Equal(t, ast.NullLiteral, lit.Kind)
}

func TestNihilIsUnaryOperatorBeforeAnExpression(t *testing.T) {
	expr := parseExprSource(t, "nihil activus")
	unary, ok := expr.(*ast.UnaryExpr)
	require.True(t, ok)
	require.Equal(t, "nihil", unary.Op)
	ident, ok := unary.Operand.(*ast.Ident)
	require.True(t, ok)
	require.Equal(t, "activus", ident.Name)
}

func TestVarDeclTypeFirstForm(t *testing.T) {
	mod := parseSource(t, "fixum numerus count = 1")
	decl := mod.Statements[0].(*ast.VarDeclStmt)
	require.Equal(t, "count", decl.Name)
	named, ok := decl.Type.(*ast.NamedType)
	require.True(t, ok)
	require.Equal(t, "numerus", named.Name)
}

func TestVarDeclNameOnlyInferredForm(t *testing.T) {
	mod := parseSource(t, "fixum count = 1")
	decl := mod.Statements[0].(*ast.VarDeclStmt)
	require.Equal(t, "count", decl.Name)
	require.Nil(t, decl.Type)
}

func TestVarDeclGenericTypeForm(t *testing.T) {
	mod := parseSource(t, "fixum lista<textus> names")
	decl := mod.Statements[0].(*ast.VarDeclStmt)
	require.Equal(t, "names", decl.Name)
	generic, ok := decl.Type.(*ast.GenericType)
	require.True(t, ok)
	require.Equal(t, "lista", generic.Name)
	require.Len(t, generic.Args, 1)
}

func TestVarDeclNullablePrefix(t *testing.T) {
	mod := parseSource(t, "varia si numerus count")
	decl := mod.Statements[0].(*ast.VarDeclStmt)
	nullable, ok := decl.Type.(*ast.NullableType)
	require.True(t, ok)
	named, ok := nullable.Inner.(*ast.NamedType)
	require.True(t, ok)
	require.Equal(t, "numerus", named.Name)
}

func TestIfStmtWithElse(t *testing.T) {
	mod := parseSource(t, "si verum { scribe 1 } secus { scribe 2 }")
	stmt := mod.Statements[0].(*ast.IfStmt)
	require.NotNil(t, stmt.Then)
	require.NotNil(t, stmt.Else)
}

func TestSinElseIfChain(t *testing.T) {
	mod := parseSource(t, "si verum { scribe 1 } sin falsum { scribe 2 } secus { scribe 3 }")
	stmt := mod.Statements[0].(*ast.IfStmt)
	nested, ok := stmt.Else.(*ast.IfStmt)
	require.True(t, ok)
	require.NotNil(t, nested.Else)
}

func TestDiscerneMatchWithBindingsAndWildcard(t *testing.T) {
	mod := parseSource(t, `discerne shape {
		casu Circulus(pro radius) { scribe radius }
		casu _ { scribe 0 }
	}`)
	stmt := mod.Statements[0].(*ast.MatchStmt)
	require.Len(t, stmt.Cases, 2)
	require.Len(t, stmt.Cases[0].Patterns, 1)
	require.Equal(t, "Circulus", stmt.Cases[0].Patterns[0].Variant)
	require.Len(t, stmt.Cases[0].Patterns[0].Bindings, 1)
	require.Equal(t, "radius", stmt.Cases[0].Patterns[0].Bindings[0].Field)
	require.Len(t, stmt.Cases[1].Patterns, 1)
	require.True(t, stmt.Cases[1].Patterns[0].Wildcard)
}

func TestDiscerneMatchWithMultipleDiscriminants(t *testing.T) {
	mod := parseSource(t, `discerne a, b {
		casu Circulus(pro radius), Quadratus(pro latus) { scribe radius }
		casu _, _ { scribe 0 }
	}`)
	stmt := mod.Statements[0].(*ast.MatchStmt)
	require.Len(t, stmt.Discriminants, 2)
	require.Len(t, stmt.Cases, 2)
	require.Len(t, stmt.Cases[0].Patterns, 2)
	require.Equal(t, "Circulus", stmt.Cases[0].Patterns[0].Variant)
	require.Equal(t, "Quadratus", stmt.Cases[0].Patterns[1].Variant)
	require.True(t, stmt.Cases[1].Patterns[0].Wildcard)
	require.True(t, stmt.Cases[1].Patterns[1].Wildcard)
}

func TestTryCatchFinally(t *testing.T) {
	mod := parseSource(t, `tempta { scribe 1 } cape e { scribe 2 } demum { scribe 3 }`)
	stmt := mod.Statements[0].(*ast.TryStmt)
	require.Equal(t, "e", stmt.CatchParam)
	require.NotNil(t, stmt.CatchBlock)
	require.NotNil(t, stmt.FinallyBlock)
}

func TestFunctionDeclWithGenericsAndReturnType(t *testing.T) {
	mod := parseSource(t, "functio identitas<T>(numerus value) -> numerus { redde value }")
	fn := mod.Statements[0].(*ast.FuncDeclStmt)
	require.Equal(t, "identitas", fn.Name)
	require.Equal(t, []string{"T"}, fn.Generics)
	require.Len(t, fn.Params, 1)
	require.NotNil(t, fn.ReturnType)
	require.NotNil(t, fn.Body)
}

func TestAnnotatedFunctionSetsDeclFlags(t *testing.T) {
	mod := parseSource(t, "@publica functio saluta() { scribe 1 }")
	fn := mod.Statements[0].(*ast.FuncDeclStmt)
	require.True(t, fn.Flags.IsPublic())
}

func TestUnionDeclWithVariantFields(t *testing.T) {
	mod := parseSource(t, `discretio Forma {
		Circulus(radius numerus),
		Quadratum(latus numerus)
	}`)
	decl := mod.Statements[0].(*ast.UnionDeclStmt)
	require.Len(t, decl.Variants, 2)
	require.Equal(t, "Circulus", decl.Variants[0].Name)
	require.Len(t, decl.Variants[0].Fields, 1)
}

func TestTemplateExprSlots(t *testing.T) {
	expr := parseExprSource(t, `scriptum("Hello, §! You are §1 years old.", name, age)`)
	tmpl, ok := expr.(*ast.TemplateExpr)
	require.True(t, ok)
	require.Len(t, tmpl.Slots, 2)
	require.False(t, tmpl.Slots[0].Explicit)
	require.True(t, tmpl.Slots[1].Explicit)
	require.Equal(t, 1, tmpl.Slots[1].Index)
}

func TestEntryBlock(t *testing.T) {
	mod := parseSource(t, "incipit { scribe 1 }")
	entry := mod.Statements[0].(*ast.EntryStmt)
	require.False(t, entry.Async)
	require.Len(t, entry.Body.Statements, 1)
}

func TestRangeExpression(t *testing.T) {
	expr := parseExprSource(t, "0 usque 10")
	rangeExpr, ok := expr.(*ast.RangeExpr)
	require.True(t, ok)
	require.True(t, rangeExpr.Inclusive)
}

func TestPostfixCastAndConversion(t *testing.T) {
	castExpr := parseExprSource(t, "value qua numerus")
	_, ok := castExpr.(*ast.CastExpr)
	require.True(t, ok)

	convExpr := parseExprSource(t, "value numeratum vel 0")
	conv, ok := convExpr.(*ast.ConversionExpr)
	require.True(t, ok)
	require.NotNil(t, conv.Fallback)
}

func TestLambdaExprWithExpressionBody(t *testing.T) {
	expr := parseExprSource(t, "(numerus x) -> x + 1")
	lambda, ok := expr.(*ast.LambdaExpr)
	require.True(t, ok)
	require.Len(t, lambda.Params, 1)
	require.NotNil(t, lambda.ExprBody)
	require.Nil(t, lambda.BlockBody)
}

func TestImportStmtModernWordOrder(t *testing.T) {
	mod := parseSource(t, `§ importa ex "./util" helper, other ut alias`)
	imp, ok := mod.Statements[0].(*ast.ImportStmt)
	require.True(t, ok)
	require.Equal(t, "./util", imp.Path)
	require.False(t, imp.Wildcard)
	require.Equal(t, []ast.ImportSpecifier{
		{Imported: "helper", Local: "helper"},
		{Imported: "other", Local: "alias"},
	}, imp.Specifiers)
}

func TestImportStmtLegacyWordOrder(t *testing.T) {
	mod := parseSource(t, `§ ex "./util" importa helper`)
	imp, ok := mod.Statements[0].(*ast.ImportStmt)
	require.True(t, ok)
	require.Equal(t, "./util", imp.Path)
	require.Equal(t, []ast.ImportSpecifier{{Imported: "helper", Local: "helper"}}, imp.Specifiers)
}

func TestImportStmtWildcard(t *testing.T) {
	mod := parseSource(t, `§ importa ex "./util" * ut ns`)
	imp, ok := mod.Statements[0].(*ast.ImportStmt)
	require.True(t, ok)
	require.True(t, imp.Wildcard)
	require.Equal(t, "ns", imp.WildcardAs)
}

func TestSkippableAnnotationOnFunction(t *testing.T) {
	mod := parseSource(t, `@cli functio main() {}`)
	decl, ok := mod.Statements[0].(*ast.FuncDeclStmt)
	require.True(t, ok)
	require.Equal(t, "main", decl.Name)
	require.False(t, decl.Flags.IsAsync())
}

func TestSkippableAnnotationWithParenthesizedArgsOnField(t *testing.T) {
	mod := parseSource(t, `genus Point {
  @innatum("Array") numerus xs
}`)
	class, ok := mod.Statements[0].(*ast.ClassDeclStmt)
	require.True(t, ok)
	require.Len(t, class.Fields, 1)
	require.Equal(t, "xs", class.Fields[0].Name)
}

func TestUnknownAnnotationErrors(t *testing.T) {
	l, err := lexer.New("test.fab", `@nonexistent functio main() {}`)
	require.NoError(t, err)
	tokens := lexer.Prepare(l.Tokens())
	_, err = parser.New("test.fab", tokens).Parse()
	require.Error(t, err)
}
