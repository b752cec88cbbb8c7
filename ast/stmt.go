package ast

// Parameter is a function/lambda parameter declaration.
type Parameter struct {
	Name      string
	Type      Type // nil when inferred
	Default   Expr // nil when none
	Rest      bool
	Optional  bool
	Ownership string // one of "ex", "de", "in", or "" when unspecified
}

// FieldDecl is a class field declaration.
type FieldDecl struct {
	Name       string
	Type       Type
	Default    Expr // nil when none
	Visibility string // "Public", "Private", "Protected", or "" for dialect default
}

// EnumMember is one member of an "ordo" declaration.
type EnumMember struct {
	Name  string
	Value Expr // nil when not explicitly assigned
}

// VariantField is one typed field of a tagged-union variant.
type VariantField struct {
	Name string
	Type Type
}

// VariantDecl is one named variant of a "discretio" declaration.
type VariantDecl struct {
	Name   string
	Fields []VariantField
}

// ImportSpecifier is one imported name, optionally aliased.
type ImportSpecifier struct {
	Imported string
	Local    string // equal to Imported when there is no "ut alias"
}

// MethodSignature is one method entry of a "pactum" protocol.
type MethodSignature struct {
	Name       string
	Generics   []string
	Params     []Parameter
	ReturnType Type // nil when unspecified
}

// SwitchCase is one value-equality case of an "elige" statement.
type SwitchCase struct {
	Value Expr
	Body  *BlockStmt
}

// PatternBinding binds one field of a matched variant to a local name;
// Kind is "pro" or "fixum" per the source grammar.
type PatternBinding struct {
	Field string
	Local string
	Kind  string
}

// MatchPattern is one discriminant's pattern within a "casu" clause: a
// wildcard ("_"), a bare variant name, a variant with field bindings
// ("Variant(pro f, fixum g)"), or a variant with a whole-value alias
// ("Variant ut whole").
type MatchPattern struct {
	Wildcard bool
	Variant  string
	Bindings []PatternBinding
	Alias    string
}

// MatchCase is one "casu" clause of a "discerne" statement: one
// Pattern per discriminant of the enclosing MatchStmt, in the same
// order. A case whose every Pattern is a wildcard is the catch-all arm.
type MatchCase struct {
	Patterns []MatchPattern
	Body     *BlockStmt
}

// GuardClause is one condition/body pair of a "custodi" chain.
type GuardClause struct {
	Cond Expr
	Body *BlockStmt
}

// BlockStmt is a brace-delimited (or single-statement-shorthand)
// sequence of statements.
type BlockStmt struct {
	Base
	Statements []Stmt
}

func (*BlockStmt) stmt() {}

// ExprStmt wraps an expression used for its side effect.
type ExprStmt struct {
	Base
	Expr Expr
}

func (*ExprStmt) stmt() {}

// VarDeclStmt is a variable declaration; Keyword is one of "varia",
// "fixum", "figendum", "variandum".
type VarDeclStmt struct {
	Base
	Keyword string
	Type    Type // nil when inferred
	Name    string
	Value   Expr // nil when uninitialized
}

func (*VarDeclStmt) stmt() {}

// FuncDeclStmt is a function declaration.
type FuncDeclStmt struct {
	Base
	Name       string
	Generics   []string
	Params     []Parameter
	ReturnType Type // nil when unspecified
	Body       *BlockStmt // nil when Flags.IsExtern()
	Flags      DeclFlags
}

func (*FuncDeclStmt) stmt() {}

// ClassDeclStmt is a "genus" declaration.
type ClassDeclStmt struct {
	Base
	Name      string
	Generics  []string
	Fields    []FieldDecl
	Methods   []*FuncDeclStmt
	Protocols []string
	Flags     DeclFlags
}

func (*ClassDeclStmt) stmt() {}

// ProtocolDeclStmt is a "pactum" declaration.
type ProtocolDeclStmt struct {
	Base
	Name    string
	Methods []MethodSignature
}

func (*ProtocolDeclStmt) stmt() {}

// EnumDeclStmt is an "ordo" declaration.
type EnumDeclStmt struct {
	Base
	Name    string
	Members []EnumMember
}

func (*EnumDeclStmt) stmt() {}

// UnionDeclStmt is a "discretio" tagged-union declaration.
type UnionDeclStmt struct {
	Base
	Name     string
	Variants []VariantDecl
}

func (*UnionDeclStmt) stmt() {}

// TypeAliasStmt introduces a name for an existing type expression.
type TypeAliasStmt struct {
	Base
	Name string
	Type Type
}

func (*TypeAliasStmt) stmt() {}

// ImportStmt is a "§ importa ex \"path\" specs…" (or legacy-order)
// section directive.
type ImportStmt struct {
	Base
	Path       string
	Specifiers []ImportSpecifier
	Wildcard   bool
	WildcardAs string // alias for "*" import, "" when none
}

func (*ImportStmt) stmt() {}

// IfStmt is "si cond { ... } secus { ... }". A "sin" one-liner parses
// into an IfStmt nested directly in Else.
type IfStmt struct {
	Base
	Cond Expr
	Then Stmt
	Else Stmt // nil, a BlockStmt, or a nested *IfStmt
}

func (*IfStmt) stmt() {}

// WhileStmt is "dum cond { ... }".
type WhileStmt struct {
	Base
	Cond Expr
	Body Stmt
}

func (*WhileStmt) stmt() {}

// DoWhileStmt is "fac { ... } dum cond".
type DoWhileStmt struct {
	Base
	Body Stmt
	Cond Expr
}

func (*DoWhileStmt) stmt() {}

// ForInStmt is "ex seq fixum x { ... }" (value iteration) or its "de"
// form (key iteration).
type ForInStmt struct {
	Base
	BindingKeyword string // "fixum" or "varia"
	Binding        string
	Sequence       Expr
	Body           Stmt
	KeyIteration   bool
}

func (*ForInStmt) stmt() {}

// SwitchStmt is "elige discrim { ... }".
type SwitchStmt struct {
	Base
	Discriminant Expr
	Cases        []SwitchCase
	Default      *BlockStmt // nil when no "ceterum" branch
}

func (*SwitchStmt) stmt() {}

// MatchStmt is "discerne d1, d2, ... { casu ... }".
type MatchStmt struct {
	Base
	Discriminants []Expr
	Cases         []MatchCase
}

func (*MatchStmt) stmt() {}

// GuardStmt is a "custodi" guard chain.
type GuardStmt struct {
	Base
	Clauses []GuardClause
	Else    *BlockStmt
}

func (*GuardStmt) stmt() {}

// TryStmt is "tempta { ... } cape e { ... } demum { ... }". Catch and
// Finally are nil when the corresponding clause is absent.
type TryStmt struct {
	Base
	Block        *BlockStmt
	CatchParam   string
	CatchBlock   *BlockStmt
	FinallyBlock *BlockStmt
}

func (*TryStmt) stmt() {}

// ReturnStmt is "redde expr" or bare "redde".
type ReturnStmt struct {
	Base
	Value Expr // nil for a bare return
}

func (*ReturnStmt) stmt() {}

// ThrowStmt is "iace expr".
type ThrowStmt struct {
	Base
	Value Expr
}

func (*ThrowStmt) stmt() {}

// PanicStmt is "mori expr".
type PanicStmt struct {
	Base
	Value Expr
}

func (*PanicStmt) stmt() {}

// PrintStmt is one of the three print severities: "scribe" (info),
// "vide" (debug), "mone" (warn).
type PrintStmt struct {
	Base
	Severity string
	Value    Expr
}

func (*PrintStmt) stmt() {}

// AssertStmt is an assertion statement; Message is nil when no
// explicit failure message was given.
type AssertStmt struct {
	Base
	Cond    Expr
	Message Expr
}

func (*AssertStmt) stmt() {}

// BreakStmt is "rumpe".
type BreakStmt struct {
	Base
}

func (*BreakStmt) stmt() {}

// ContinueStmt is "perge".
type ContinueStmt struct {
	Base
}

func (*ContinueStmt) stmt() {}

// EntryStmt is the top-level program entry block: "incipit { ... }"
// (synchronous) or "incipiet { ... }" (wrapped in an async IIFE at
// emission).
type EntryStmt struct {
	Base
	Async bool
	Body  *BlockStmt
}

func (*EntryStmt) stmt() {}

// TestCaseStmt is one named test case inside a test suite.
type TestCaseStmt struct {
	Base
	Name string
	Body *BlockStmt
}

func (*TestCaseStmt) stmt() {}

// TestSuiteStmt groups named test cases under a suite name.
type TestSuiteStmt struct {
	Base
	Name  string
	Cases []*TestCaseStmt
}

func (*TestSuiteStmt) stmt() {}
