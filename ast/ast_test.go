package ast_test

import (
	"testing"

	"github.com/ianzepp/faber/ast"
	"github.com/ianzepp/faber/token"
	"github.com/stretchr/testify/require"
)

func TestDeclFlags(t *testing.T) {
	var flags ast.DeclFlags
	require.False(t, flags.IsPublic())
	flags.SetPublic()
	flags.SetAsync()
	require.True(t, flags.IsPublic())
	require.True(t, flags.IsAsync())
	require.False(t, flags.IsExtern())
	require.True(t, flags.HasExplicitVisibility())
}

type collector struct {
	kinds []string
}

func (c *collector) Visit(n ast.Node) ast.Visitor {
	switch n.(type) {
	case *ast.BinaryExpr:
		c.kinds = append(c.kinds, "binary")
	case *ast.Ident:
		c.kinds = append(c.kinds, "ident")
	case *ast.Literal:
		c.kinds = append(c.kinds, "literal")
	}
	return c
}

func TestWalkExprVisitsChildren(t *testing.T) {
	pos := token.NewPosition()
	expr := &ast.BinaryExpr{
		Left:  &ast.Ident{Name: "x"},
		Op:    "+",
		Right: &ast.Literal{Kind: ast.IntegerLiteral, Value: "1"},
	}
	expr.Position = pos

	c := &collector{}
	ast.WalkExpr(c, expr)
	require.Equal(t, []string{"binary", "ident", "literal"}, c.kinds)
}

func TestWalkStmtHandlesNilOptionalBlocks(t *testing.T) {
	stmt := &ast.TryStmt{
		Block: &ast.BlockStmt{},
	}
	c := &collector{}
	require.NotPanics(t, func() {
		ast.WalkStmt(c, stmt)
	})
}

func TestModuleFuncDeclsAndImportPaths(t *testing.T) {
	mod := &ast.Module{
		Statements: []ast.Stmt{
			&ast.ImportStmt{Path: "./util", Specifiers: []ast.ImportSpecifier{{Imported: "helper", Local: "helper"}}},
			&ast.ImportStmt{Path: "./util", Specifiers: []ast.ImportSpecifier{{Imported: "other", Local: "other"}}},
			&ast.FuncDeclStmt{Name: "main"},
			&ast.VarDeclStmt{Name: "x"},
			&ast.FuncDeclStmt{Name: "helper"},
		},
	}

	decls := mod.FuncDecls()
	require.Len(t, decls, 2)
	require.Equal(t, "main", decls[0].Name)
	require.Equal(t, "helper", decls[1].Name)

	require.Equal(t, []string{"./util"}, mod.ImportPaths())
}
