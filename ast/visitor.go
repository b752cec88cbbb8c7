package ast

// Visitor is the depth-first traversal hook. Visit is called for each
// node; returning nil stops descent into that node's children,
// returning a (possibly different) Visitor continues the walk with it.
type Visitor interface {
	Visit(node Node) Visitor
}

// Walk performs a depth-first traversal of node's subtree, handing an
// Expr to WalkExpr and a Stmt to WalkStmt. Callers that already hold
// one category can call WalkExpr or WalkStmt directly.
func Walk(v Visitor, node Node) {
	if node == nil {
		return
	}
	switch n := node.(type) {
	case Expr:
		WalkExpr(v, n)
	case Stmt:
		WalkStmt(v, n)
	}
}

// WalkExpr traverses an expression subtree.
func WalkExpr(v Visitor, expr Expr) {
	if expr == nil {
		return
	}
	v = v.Visit(expr)
	if v == nil {
		return
	}

	switch e := expr.(type) {
	case *Ident, *SelfExpr, *Literal:
		// leaf nodes
	case *BinaryExpr:
		WalkExpr(v, e.Left)
		WalkExpr(v, e.Right)
	case *UnaryExpr:
		WalkExpr(v, e.Operand)
	case *AssignExpr:
		WalkExpr(v, e.Target)
		WalkExpr(v, e.Value)
	case *TernaryExpr:
		WalkExpr(v, e.Cond)
		WalkExpr(v, e.Then)
		WalkExpr(v, e.Else)
	case *CallExpr:
		WalkExpr(v, e.Callee)
		for _, arg := range e.Args {
			WalkExpr(v, arg)
		}
	case *MemberExpr:
		WalkExpr(v, e.Object)
		if e.Computed {
			WalkExpr(v, e.Index)
		}
	case *ArrayLiteral:
		for _, el := range e.Elements {
			WalkExpr(v, el)
		}
	case *ObjectLiteral:
		for _, prop := range e.Properties {
			WalkExpr(v, prop.Key)
			WalkExpr(v, prop.Value)
		}
	case *LambdaExpr:
		if e.ExprBody != nil {
			WalkExpr(v, e.ExprBody)
		}
		if e.BlockBody != nil {
			WalkStmt(v, e.BlockBody)
		}
	case *NewExpr:
		for _, arg := range e.Args {
			WalkExpr(v, arg)
		}
		if e.Init != nil {
			WalkExpr(v, e.Init)
		}
	case *AwaitExpr:
		WalkExpr(v, e.Operand)
	case *CastExpr:
		WalkExpr(v, e.Operand)
	case *ReinterpretExpr:
		WalkExpr(v, e.Operand)
	case *PostfixNewExpr:
		WalkExpr(v, e.Operand)
	case *VariantExpr:
		for _, f := range e.Fields {
			WalkExpr(v, f.Value)
		}
	case *TemplateExpr:
		for _, arg := range e.Args {
			WalkExpr(v, arg)
		}
	case *RangeExpr:
		WalkExpr(v, e.Start)
		WalkExpr(v, e.End)
	case *ConversionExpr:
		WalkExpr(v, e.Operand)
		if e.Fallback != nil {
			WalkExpr(v, e.Fallback)
		}
	}
}

// WalkStmt traverses a statement subtree.
func WalkStmt(v Visitor, stmt Stmt) {
	if stmt == nil {
		return
	}
	v = v.Visit(stmt)
	if v == nil {
		return
	}

	switch s := stmt.(type) {
	case *BlockStmt:
		for _, inner := range s.Statements {
			WalkStmt(v, inner)
		}
	case *ExprStmt:
		WalkExpr(v, s.Expr)
	case *VarDeclStmt:
		if s.Value != nil {
			WalkExpr(v, s.Value)
		}
	case *FuncDeclStmt:
		if s.Body != nil {
			WalkStmt(v, s.Body)
		}
	case *ClassDeclStmt:
		for _, m := range s.Methods {
			WalkStmt(v, m)
		}
	case *IfStmt:
		WalkExpr(v, s.Cond)
		WalkStmt(v, s.Then)
		WalkStmt(v, s.Else)
	case *WhileStmt:
		WalkExpr(v, s.Cond)
		WalkStmt(v, s.Body)
	case *DoWhileStmt:
		WalkStmt(v, s.Body)
		WalkExpr(v, s.Cond)
	case *ForInStmt:
		WalkExpr(v, s.Sequence)
		WalkStmt(v, s.Body)
	case *SwitchStmt:
		WalkExpr(v, s.Discriminant)
		for _, c := range s.Cases {
			WalkExpr(v, c.Value)
			WalkStmt(v, c.Body)
		}
		if s.Default != nil {
			WalkStmt(v, s.Default)
		}
	case *MatchStmt:
		for _, d := range s.Discriminants {
			WalkExpr(v, d)
		}
		for _, c := range s.Cases {
			WalkStmt(v, c.Body)
		}
	case *GuardStmt:
		for _, c := range s.Clauses {
			WalkExpr(v, c.Cond)
			WalkStmt(v, c.Body)
		}
		if s.Else != nil {
			WalkStmt(v, s.Else)
		}
	case *TryStmt:
		WalkStmt(v, s.Block)
		if s.CatchBlock != nil {
			WalkStmt(v, s.CatchBlock)
		}
		if s.FinallyBlock != nil {
			WalkStmt(v, s.FinallyBlock)
		}
	case *ReturnStmt:
		if s.Value != nil {
			WalkExpr(v, s.Value)
		}
	case *ThrowStmt:
		WalkExpr(v, s.Value)
	case *PanicStmt:
		WalkExpr(v, s.Value)
	case *PrintStmt:
		WalkExpr(v, s.Value)
	case *AssertStmt:
		WalkExpr(v, s.Cond)
		if s.Message != nil {
			WalkExpr(v, s.Message)
		}
	case *EntryStmt:
		WalkStmt(v, s.Body)
	case *TestSuiteStmt:
		for _, c := range s.Cases {
			WalkStmt(v, c)
		}
	case *TestCaseStmt:
		WalkStmt(v, s.Body)
	}
}
