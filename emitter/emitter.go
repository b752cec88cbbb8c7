package emitter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ianzepp/faber/ast"
)

// Config controls emission formatting and the dialect choices spec.md
// leaves open. It mirrors faber.Config's shape without importing the
// root package, since faber imports emitter and a cycle is not an
// option.
type Config struct {
	Indent                  string
	StatementTerminator     string
	DefaultMethodVisibility string // "public" or "private"
}

// DefaultConfig matches faber.DefaultConfig.
func DefaultConfig() Config {
	return Config{Indent: "  ", StatementTerminator: ";", DefaultMethodVisibility: "public"}
}

// emitter holds the one piece of running state the whole emission
// pass threads through: the output buffer. Indentation is passed as
// an explicit argument to every recursive call instead of being held
// here, per spec's "no globals, no hidden state" design note.
type emitter struct {
	cfg    Config
	buffer strings.Builder
	err    error
}

// Emit renders a full module as target-language source text. A single
// structural error (an AST shape the emitter does not recognize)
// aborts the whole pass; spec.md treats this as a programmer bug, not
// a recoverable condition.
func Emit(mod *ast.Module, cfg Config) (string, error) {
	e := &emitter{cfg: cfg}
	for _, stmt := range mod.Statements {
		e.emitStmt(stmt, 0)
		e.buffer.WriteString("\n")
		if e.err != nil {
			return "", e.err
		}
	}
	return e.buffer.String(), nil
}

func (e *emitter) fail(format string, args ...any) {
	if e.err == nil {
		e.err = fmt.Errorf(format, args...)
	}
}

func (e *emitter) writeIndent(depth int) {
	e.buffer.WriteString(strings.Repeat(e.cfg.Indent, depth))
}

func (e *emitter) term() string {
	return e.cfg.StatementTerminator
}

// emitOperator translates a source operator/keyword lexeme for use in
// a BinaryExpr/UnaryExpr/AssignExpr position. Symbolic operators that
// already match the target (+, -, *, /, ==, etc.) pass through
// unchanged.
func emitOperator(op string) string {
	if translated, ok := binaryOps[op]; ok {
		return translated
	}
	if translated, ok := unaryOps[op]; ok {
		return translated
	}
	switch op {
	case "===":
		return "==="
	case "!==":
		return "!=="
	}
	return op
}

// emitTypeName translates a NamedType's name through the primitive
// type table, passing through unrecognized (user-defined) names
// unchanged.
func emitTypeName(name string) string {
	if translated, ok := typeNames[name]; ok {
		return translated
	}
	return name
}

func (e *emitter) emitType(t ast.Type) string {
	if t == nil {
		return ""
	}
	switch typ := t.(type) {
	case *ast.NamedType:
		return emitTypeName(typ.Name)
	case *ast.GenericType:
		args := make([]string, len(typ.Args))
		for i, a := range typ.Args {
			args[i] = e.emitType(a)
		}
		return fmt.Sprintf("%s<%s>", emitTypeName(typ.Name), strings.Join(args, ", "))
	case *ast.NullableType:
		return e.emitType(typ.Inner) + " | null"
	case *ast.FunctionType:
		params := make([]string, len(typ.Params))
		for i, p := range typ.Params {
			params[i] = fmt.Sprintf("a%d: %s", i, e.emitType(p))
		}
		return fmt.Sprintf("(%s) => %s", strings.Join(params, ", "), e.emitType(typ.Return))
	case *ast.UnionType:
		members := make([]string, len(typ.Members))
		for i, m := range typ.Members {
			members[i] = e.emitType(m)
		}
		return strings.Join(members, " | ")
	case *ast.LiteralType:
		return typ.Text
	default:
		e.fail("unknown type node %T", t)
		return ""
	}
}

// quoteString re-quotes a string literal's decoded value as a
// double-quoted literal, using strconv.Quote's escaping. Backticks are
// left unescaped here; emitTemplateExpr escapes them for template
// literals.
func quoteString(value string) string {
	return strconv.Quote(value)
}
