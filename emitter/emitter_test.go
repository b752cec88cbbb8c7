package emitter_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ianzepp/faber/emitter"
	"github.com/ianzepp/faber/lexer"
	"github.com/ianzepp/faber/parser"
)

func emitSource(t *testing.T, src string) string {
	t.Helper()
	l, err := lexer.New("test.fab", src)
	require.NoError(t, err)
	tokens := lexer.Prepare(l.Tokens())
	mod, err := parser.New("test.fab", tokens).Parse()
	require.NoError(t, err)
	out, err := emitter.Emit(mod, emitter.DefaultConfig())
	require.NoError(t, err)
	return out
}

func TestEmitHelloWorldScribe(t *testing.T) {
	out := emitSource(t, `scribe "hello"`)
	require.Contains(t, out, `console.log("hello")`)
}

func TestEmitVarDeclTypeFirst(t *testing.T) {
	out := emitSource(t, `varia numerus x = 1`)
	require.Contains(t, out, "let x: number = 1")
}

func TestEmitFixumIsConst(t *testing.T) {
	out := emitSource(t, `fixum y = 2`)
	require.Contains(t, out, "const y = 2")
}

func TestEmitBinaryOperatorTranslation(t *testing.T) {
	out := emitSource(t, `varia bivalens b = verum et falsum`)
	require.Contains(t, out, "true && false")
}

func TestEmitMethodRenameOnNonComputedCall(t *testing.T) {
	out := emitSource(t, `items.adde(1)`)
	require.Contains(t, out, "items.push(1)")
}

func TestEmitComputedMemberCallIsNotRenamed(t *testing.T) {
	out := emitSource(t, `items["adde"](1)`)
	require.Contains(t, out, `items["adde"](1)`)
	require.NotContains(t, out, ".push(")
}

func TestEmitPropertyOnlyMethodHasNoCallParens(t *testing.T) {
	out := emitSource(t, `varia numerus n = items.longitudo`)
	require.Contains(t, out, "items.length")
}

func TestEmitLastIsAtNegativeOne(t *testing.T) {
	out := emitSource(t, `varia ignotum n = items.ultimus`)
	require.Contains(t, out, "items.at(-1)")
}

func TestEmitIfElseChain(t *testing.T) {
	out := emitSource(t, `
si x > 0 {
  scribe "positive"
} secus {
  scribe "non-positive"
}`)
	require.Contains(t, out, "if (x > 0)")
	require.Contains(t, out, "else {")
}

func TestEmitTryCatchFinally(t *testing.T) {
	out := emitSource(t, `
tempta {
  scribe "a"
} cape e {
  scribe e
} demum {
  scribe "b"
}`)
	require.Contains(t, out, "try {")
	require.Contains(t, out, "catch (e) {")
	require.Contains(t, out, "finally {")
}

func TestEmitPanicBecomesThrowNewError(t *testing.T) {
	out := emitSource(t, `mori "boom"`)
	require.Contains(t, out, `throw new Error("boom")`)
}

func TestEmitRangeExpression(t *testing.T) {
	out := emitSource(t, `varia ignotum r = 0 usque 10`)
	require.Contains(t, out, "Array.from({ length:")
}

func TestEmitTemplateInterpolation(t *testing.T) {
	out := emitSource(t, `varia textus s = scriptum("hello §!", name)`)
	require.Contains(t, out, "`hello ${name}!`")
}

func TestEmitConversionExprWithFallback(t *testing.T) {
	out := emitSource(t, `varia numerus n = s numeratum vel 0`)
	require.Contains(t, out, "parseInt(s, 10)")
	require.Contains(t, out, "?? 0")
}

func TestEmitUnionDeclLowersToRecordTypesAndAlias(t *testing.T) {
	out := emitSource(t, `discretio Shape { Circle(radius numerus), Square(side numerus) }`)
	require.Contains(t, out, "type ShapeCircle")
	require.Contains(t, out, `tag: "Circle"`)
	require.Contains(t, out, "type ShapeSquare")
	require.Contains(t, out, "type Shape = ShapeCircle | ShapeSquare")
}

func TestEmitMatchStmtLowersToIfElseChain(t *testing.T) {
	out := emitSource(t, `
discerne shape {
  casu Circle(pro radius) {
    scribe radius
  }
  casu _ {
    scribe "unknown"
  }
}`)
	require.True(t, strings.Contains(out, `discriminant_0.tag === "Circle"`))
	require.Contains(t, out, "const radius = discriminant_0.radius")
	require.Contains(t, out, "else {")
	require.NotContains(t, out, "switch")
}

func TestEmitMatchStmtWithMultipleDiscriminants(t *testing.T) {
	out := emitSource(t, `
discerne a, b {
  casu Circle(pro radius), Square(pro side) {
    scribe radius
    scribe side
  }
  casu _, _ {
    scribe "none"
  }
}`)
	require.Contains(t, out, `discriminant_0.tag === "Circle" && discriminant_1.tag === "Square"`)
	require.Contains(t, out, "const radius = discriminant_0.radius")
	require.Contains(t, out, "const side = discriminant_1.side")
	require.Contains(t, out, "else {")
}

func TestEmitEntryBlockSync(t *testing.T) {
	out := emitSource(t, `
incipit {
  scribe "go"
}`)
	require.Contains(t, out, `console.log("go")`)
	require.NotContains(t, out, "async")
}

func TestEmitEntryBlockAsync(t *testing.T) {
	out := emitSource(t, `
incipiet {
  scribe "go"
}`)
	require.Contains(t, out, "(async () => {")
}

func TestEmitFunctionDeclWithAsyncFlag(t *testing.T) {
	out := emitSource(t, `
@futura
functio fetchIt() {
  redde 1
}`)
	require.Contains(t, out, "async function fetchIt()")
}

func TestEmitClassWithFieldsAndConstructor(t *testing.T) {
	out := emitSource(t, `
genus Point {
  numerus x
  numerus y
}`)
	require.Contains(t, out, "class Point {")
	require.Contains(t, out, "constructor(overrides = {})")
	require.Contains(t, out, "this.x = overrides.x")
}
