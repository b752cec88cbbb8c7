package ast

import (
	"github.com/samber/lo"

	"github.com/ianzepp/faber/token"
)

// Module is an ordered sequence of top-level statements plus a single
// source-origin tag.
type Module struct {
	Filename   string
	Position   token.Position
	Statements []Stmt
}

// Pos implements Node.
func (m *Module) Pos() token.Position {
	return m.Position
}

// FuncDecls returns every top-level function declaration, in source
// order, for tooling that only cares about a module's callable
// surface (a signature checker, a doc generator) without walking the
// rest of the tree.
func (m *Module) FuncDecls() []*FuncDeclStmt {
	return lo.FilterMap(m.Statements, func(s Stmt, _ int) (*FuncDeclStmt, bool) {
		decl, ok := s.(*FuncDeclStmt)
		return decl, ok
	})
}

// ImportPaths returns the distinct module paths imported at the top
// level, in first-occurrence order.
func (m *Module) ImportPaths() []string {
	imports := lo.FilterMap(m.Statements, func(s Stmt, _ int) (*ImportStmt, bool) {
		imp, ok := s.(*ImportStmt)
		return imp, ok
	})
	return lo.Uniq(lo.Map(imports, func(imp *ImportStmt, _ int) string {
		return imp.Path
	}))
}
