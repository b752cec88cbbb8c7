// Package emitter turns a parsed module into target-language source
// text. Dispatch is one function per AST-variant kind, following the
// tree; an indent counter is threaded explicitly through every call
// rather than held as hidden state. The lookup tables in this file are
// read-only static data, safe to share across concurrent compiles.
package emitter

// binaryOps translates a BinaryExpr/UnaryExpr operator's source lexeme
// into the target's symbol or keyword. Symbolic operators that need no
// translation (+, -, *, /, %, <, >, <=, >=, ==, etc.) are passed
// through untranslated by emitOperator and never appear here.
var binaryOps = map[string]string{
	"et":    "&&",
	"aut":   "||",
	"vel":   "??",
	"inter": "in",
	"intra": "instanceof",
}

// unaryOps translates the word-form unary operators.
var unaryOps = map[string]string{
	"non":       "!",
	"nihil":     "!",
	"nulla":     "!",
	"nonnihil":  "!!",
	"nonnulla":  "!!",
	"positivum": "+",
	"negativum": "-",
}

// typeNames translates a source primitive type keyword into the
// target's type annotation.
var typeNames = map[string]string{
	"numerus":   "number",
	"fractus":   "number",
	"textus":    "string",
	"bivalens":  "boolean",
	"nihil":     "null",
	"vacuum":    "void",
	"vacuus":    "void",
	"ignotum":   "unknown",
	"lista":     "Array",
	"tabula":    "Map",
	"copia":     "Set",
	"collectio": "Array",
}

// conversionExprs translates a conversion-expression target keyword
// into the function call used to perform it, applied to the operand.
var conversionExprs = map[string]string{
	"numeratum":  "parseInt",
	"fractatum":  "parseFloat",
	"textatum":   "String",
	"bivalentum": "Boolean",
}

// methodRenames is the method/property table: receiver-method calls
// and properties whose name appears here are rewritten on emission.
// Values are stored in their target shape: a bare name for a renamed
// method or property, "[0]" for an index, ".at(-1)" for a call form.
// Which entries are property-only is recorded in propertyOnlyMethods,
// not in the value.
var methodRenames = map[string]string{
	"adde":      "push",
	"remove":    "splice",
	"accipe":    "get",
	"pone":      "set",
	"continet":  "has",
	"filtrata":  "filter",
	"mappata":   "map",
	"plicata":   "reduce",
	"ordinata":  "sort",
	"iuncta":    "join",
	"divisa":    "split",
	"longitudo": "length", // property-only
	"primus":    "[0]",    // property-only, indexed
	"ultimus":   ".at(-1)", // property-only, method-shaped
}

// propertyOnlyMethods names methodRenames entries that must never be
// emitted with call parentheses, matching spec's "property-only"
// flagged members (longitudo, primus, ultimus).
var propertyOnlyMethods = map[string]bool{
	"longitudo": true,
	"primus":    true,
	"ultimus":   true,
}
