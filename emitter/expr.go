package emitter

import (
	"fmt"
	"strings"

	"github.com/ianzepp/faber/ast"
)

// emitExpr renders expr and returns the target-language text. It
// never threads an explicit indent — expressions are always emitted
// inline — but failures are recorded on e via fail() and surfaced by
// Emit's caller once the whole pass unwinds.
func (e *emitter) emitExpr(expr ast.Expr) string {
	switch ex := expr.(type) {
	case *ast.Ident:
		return ex.Name
	case *ast.SelfExpr:
		return "this"
	case *ast.Literal:
		return e.emitLiteral(ex)
	case *ast.BinaryExpr:
		return fmt.Sprintf("%s %s %s", e.emitExpr(ex.Left), emitOperator(ex.Op), e.emitExpr(ex.Right))
	case *ast.UnaryExpr:
		return fmt.Sprintf("%s%s", emitOperator(ex.Op), e.emitExpr(ex.Operand))
	case *ast.AssignExpr:
		return fmt.Sprintf("%s %s %s", e.emitExpr(ex.Target), ex.Op, e.emitExpr(ex.Value))
	case *ast.TernaryExpr:
		return fmt.Sprintf("%s ? %s : %s", e.emitExpr(ex.Cond), e.emitExpr(ex.Then), e.emitExpr(ex.Else))
	case *ast.CallExpr:
		return e.emitCallExpr(ex)
	case *ast.MemberExpr:
		return e.emitMemberExpr(ex)
	case *ast.ArrayLiteral:
		return e.emitArrayLiteral(ex)
	case *ast.ObjectLiteral:
		return e.emitObjectLiteral(ex)
	case *ast.LambdaExpr:
		return e.emitLambdaExpr(ex)
	case *ast.NewExpr:
		return e.emitNewExpr(ex)
	case *ast.AwaitExpr:
		return fmt.Sprintf("await %s", e.emitExpr(ex.Operand))
	case *ast.CastExpr:
		return fmt.Sprintf("(%s as %s)", e.emitExpr(ex.Operand), e.emitType(ex.Type))
	case *ast.ReinterpretExpr:
		return fmt.Sprintf("(%s as unknown as %s)", e.emitExpr(ex.Operand), e.emitType(ex.Type))
	case *ast.PostfixNewExpr:
		return fmt.Sprintf("Object.assign(Object.create(%s.prototype), %s)", e.emitType(ex.Type), e.emitExpr(ex.Operand))
	case *ast.VariantExpr:
		return e.emitVariantExpr(ex)
	case *ast.TemplateExpr:
		return e.emitTemplateExpr(ex)
	case *ast.RangeExpr:
		return e.emitRangeExpr(ex)
	case *ast.ConversionExpr:
		return e.emitConversionExpr(ex)
	default:
		e.fail("unknown expression node %T", expr)
		return ""
	}
}

func (e *emitter) emitLiteral(lit *ast.Literal) string {
	switch lit.Kind {
	case ast.IntegerLiteral, ast.FractionalLiteral:
		return strings.ReplaceAll(lit.Value, "_", "")
	case ast.StringLiteral:
		return quoteString(lit.Value)
	case ast.TrueLiteral:
		return "true"
	case ast.FalseLiteral:
		return "false"
	case ast.NullLiteral:
		return "null"
	default:
		e.fail("unknown literal kind %d", lit.Kind)
		return ""
	}
}

// emitCallExpr applies the method-rename table when the callee is a
// non-computed member access whose name the table recognizes; a
// non-null-asserting member (a!.foo) is renamed too and keeps its "!".
// Computed calls (expr["foo"](args)) are never looked up, matching
// spec's method-rename soundness property.
func (e *emitter) emitCallExpr(call *ast.CallExpr) string {
	args := make([]string, len(call.Args))
	for i, a := range call.Args {
		args[i] = e.emitExpr(a)
	}
	argList := strings.Join(args, ", ")

	if member, ok := call.Callee.(*ast.MemberExpr); ok && !member.Computed {
		if renamed, found := methodRenames[member.Name]; found {
			object := e.emitExpr(member.Object) + nonNullSuffix(member.NonNull)
			if propertyOnlyMethods[member.Name] {
				return e.emitPropertyOnlyAccess(object, renamed)
			}
			return fmt.Sprintf("%s.%s(%s)", object, renamed, argList)
		}
	}

	return fmt.Sprintf("%s(%s)", e.emitExpr(call.Callee), argList)
}

func (e *emitter) emitMemberExpr(member *ast.MemberExpr) string {
	object := e.emitExpr(member.Object)
	if member.Computed {
		if member.NonNull {
			return fmt.Sprintf("%s!.[%s]", object, e.emitExpr(member.Index))
		}
		return fmt.Sprintf("%s[%s]", object, e.emitExpr(member.Index))
	}

	if renamed, found := methodRenames[member.Name]; found && propertyOnlyMethods[member.Name] {
		return e.emitPropertyOnlyAccess(object+nonNullSuffix(member.NonNull), renamed)
	}
	if renamed, found := methodRenames[member.Name]; found {
		return fmt.Sprintf("%s%s.%s", object, nonNullSuffix(member.NonNull), renamed)
	}

	dot := "."
	if member.NonNull {
		dot = "!."
	}
	return fmt.Sprintf("%s%s%s", object, dot, member.Name)
}

func nonNullSuffix(nonNull bool) string {
	if nonNull {
		return "!"
	}
	return ""
}

// emitPropertyOnlyAccess renders a renamed property-only member
// (longitudo, primus, ultimus) without call parentheses regardless of
// how the source wrote it. The table stores the target form already
// shaped for its kind: "[0]" (indexed), ".at(-1)" (dotted call), or a
// bare name ("length") needing a "." prefix.
func (e *emitter) emitPropertyOnlyAccess(object, renamed string) string {
	switch {
	case strings.HasPrefix(renamed, "["):
		return object + renamed
	case strings.HasPrefix(renamed, "."):
		return object + renamed
	default:
		return object + "." + renamed
	}
}

func (e *emitter) emitArrayLiteral(arr *ast.ArrayLiteral) string {
	elems := make([]string, len(arr.Elements))
	for i, el := range arr.Elements {
		elems[i] = e.emitExpr(el)
	}
	return "[" + strings.Join(elems, ", ") + "]"
}

func (e *emitter) emitObjectLiteral(obj *ast.ObjectLiteral) string {
	props := make([]string, len(obj.Properties))
	for i, p := range obj.Properties {
		switch {
		case p.Shorthand:
			props[i] = e.emitExpr(p.Value)
		case p.Computed:
			props[i] = fmt.Sprintf("[%s]: %s", e.emitExpr(p.Key), e.emitExpr(p.Value))
		default:
			props[i] = fmt.Sprintf("%s: %s", e.emitExpr(p.Key), e.emitExpr(p.Value))
		}
	}
	return "{ " + strings.Join(props, ", ") + " }"
}

func (e *emitter) emitLambdaExpr(lambda *ast.LambdaExpr) string {
	params := make([]string, len(lambda.Params))
	for i, p := range lambda.Params {
		params[i] = e.emitParameter(p)
	}
	paramList := "(" + strings.Join(params, ", ") + ")"

	if lambda.ExprBody != nil {
		return fmt.Sprintf("%s => %s", paramList, e.emitExpr(lambda.ExprBody))
	}

	sub := &emitter{cfg: e.cfg}
	for _, stmt := range lambda.BlockBody.Statements {
		sub.emitStmt(stmt, 1)
		sub.buffer.WriteString("\n")
	}
	if sub.err != nil {
		e.fail("%s", sub.err)
	}
	return fmt.Sprintf("%s => {\n%s}", paramList, sub.buffer.String())
}

func (e *emitter) emitNewExpr(newExpr *ast.NewExpr) string {
	args := make([]string, len(newExpr.Args))
	for i, a := range newExpr.Args {
		args[i] = e.emitExpr(a)
	}
	construction := fmt.Sprintf("new %s(%s)", e.emitType(newExpr.Type), strings.Join(args, ", "))
	if newExpr.Init == nil {
		return construction
	}
	return fmt.Sprintf("Object.assign(%s, %s)", construction, e.emitObjectLiteral(newExpr.Init))
}

// emitVariantExpr constructs a tagged-union value literal matching the
// discriminant shape the variant-lowering rule expects ("tag" plus the
// declared fields).
func (e *emitter) emitVariantExpr(variant *ast.VariantExpr) string {
	fields := make([]string, 0, len(variant.Fields)+1)
	fields = append(fields, fmt.Sprintf("tag: %s", quoteString(variant.Variant)))
	for _, f := range variant.Fields {
		fields = append(fields, fmt.Sprintf("%s: %s", f.Name, e.emitExpr(f.Value)))
	}
	return "{ " + strings.Join(fields, ", ") + " }"
}

// emitTemplateExpr renders a backtick template literal, substituting
// each "§" slot with the argument it resolves to (by position or
// explicit index) and escaping any literal backtick in the source
// text.
func (e *emitter) emitTemplateExpr(tmpl *ast.TemplateExpr) string {
	var out strings.Builder
	out.WriteString("`")

	runes := []rune(tmpl.Raw)
	slotIdx := 0
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '`':
			out.WriteString("\\`")
		case '§':
			if slotIdx >= len(tmpl.Slots) {
				e.fail("template has more slots than recorded")
				return ""
			}
			slot := tmpl.Slots[slotIdx]
			slotIdx++
			if slot.Index >= len(tmpl.Args) {
				e.fail("template slot %d has no matching argument", slot.Index)
				return ""
			}
			out.WriteString("${")
			out.WriteString(e.emitExpr(tmpl.Args[slot.Index]))
			out.WriteString("}")
			if slot.Explicit {
				for i+1 < len(runes) && runes[i+1] >= '0' && runes[i+1] <= '9' {
					i++
				}
			}
		default:
			out.WriteRune(runes[i])
		}
	}
	out.WriteString("`")
	return out.String()
}

func (e *emitter) emitRangeExpr(rangeExpr *ast.RangeExpr) string {
	start := e.emitExpr(rangeExpr.Start)
	end := e.emitExpr(rangeExpr.End)
	length := fmt.Sprintf("(%s) - (%s)", end, start)
	if rangeExpr.Inclusive {
		length = fmt.Sprintf("(%s) - (%s) + 1", end, start)
	}
	return fmt.Sprintf("Array.from({ length: %s }, (_, i) => (%s) + i)", length, start)
}

func (e *emitter) emitConversionExpr(conv *ast.ConversionExpr) string {
	fn, ok := conversionExprs[conv.Target]
	if !ok {
		e.fail("unknown conversion target %q", conv.Target)
		return ""
	}
	var call string
	switch conv.Target {
	case "numeratum":
		call = fmt.Sprintf("%s(%s, 10)", fn, e.emitExpr(conv.Operand))
	default:
		call = fmt.Sprintf("%s(%s)", fn, e.emitExpr(conv.Operand))
	}
	if conv.Fallback == nil {
		return call
	}
	return fmt.Sprintf("(%s ?? %s)", call, e.emitExpr(conv.Fallback))
}

func (e *emitter) emitParameter(p ast.Parameter) string {
	name := p.Name
	if p.Rest {
		name = "..." + name
	}
	typeAnn := ""
	if p.Type != nil {
		typeAnn = ": " + e.emitType(p.Type)
	}
	optional := ""
	if p.Optional {
		optional = "?"
	}
	def := ""
	if p.Default != nil {
		def = " = " + e.emitExpr(p.Default)
	}
	return fmt.Sprintf("%s%s%s%s", name, optional, typeAnn, def)
}
