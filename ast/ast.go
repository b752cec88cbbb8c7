// Package ast defines the abstract syntax tree produced by the parser
// and consumed by the emitter. Every category — types, expressions,
// statements — is a closed, tagged sum: a small interface with an
// unexported marker method so no type outside this package can satisfy
// it, and a type switch in the visitor/emitter exhaustively enumerates
// the concrete variants. The tree is immutable by convention once
// built: nothing in this package or its consumers writes to a node
// after construction.
package ast

import "github.com/ianzepp/faber/token"

// Node is satisfied by every AST type. Pos reports the position of the
// first token consumed to produce the node, per the position-
// preservation invariant.
type Node interface {
	Pos() token.Position
}

// Type is the marker interface for type-annotation nodes (§3.2).
type Type interface {
	Node
	typeNode()
}

// Expr is the marker interface for expression nodes (§3.3).
type Expr interface {
	Node
	expr()
}

// Stmt is the marker interface for statement nodes (§3.4).
type Stmt interface {
	Node
	stmt()
}

// Base embeds into every concrete node to supply Pos() without
// repeating the field and method on each type.
type Base struct {
	Position token.Position
}

// Pos implements Node.
func (b Base) Pos() token.Position {
	return b.Position
}
