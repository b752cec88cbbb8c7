package ast

// NamedType is a bare type identifier: numerus, textus, or a
// user-defined type name.
type NamedType struct {
	Base
	Name string
}

func (*NamedType) typeNode() {}

// GenericType is a parametric type use, e.g. lista<textus>.
type GenericType struct {
	Base
	Name string
	Args []Type
}

func (*GenericType) typeNode() {}

// NullableType wraps an inner type in the prefix nullability marker
// "si T". This grammar never represents nullability by a postfix '?'
// or by omission — absence of a NullableType wrapper means non-null.
type NullableType struct {
	Base
	Inner Type
}

func (*NullableType) typeNode() {}

// FunctionType is an arrow type: (params) -> return.
type FunctionType struct {
	Base
	Params []Type
	Return Type
}

func (*FunctionType) typeNode() {}

// UnionType is T | U | ... .
type UnionType struct {
	Base
	Members []Type
}

func (*UnionType) typeNode() {}

// LiteralType is a literal-value placeholder used as a type (e.g. in a
// discriminant's constant type position).
type LiteralType struct {
	Base
	Text string
}

func (*LiteralType) typeNode() {}
