package syntax

import "github.com/mohamed/svlang/internal/source"

// StmtKind classifies a Stmt node. This is a representative procedural
// subset (LRM 12), not the full statement grammar: sequential/parallel
// blocks, conditionals, the three loop forms actually exercised by typical
// RTL, assignment, and subroutine-call statements.
type StmtKind uint8

const (
	StmtBlock StmtKind = iota
	StmtIf
	StmtCase
	StmtFor
	StmtWhile
	StmtForever
	StmtAssign
	StmtCallStmt
	StmtExpr
	StmtEmpty
)

// AssignKind distinguishes blocking (`=`) from nonblocking (`<=`) procedural
// assignment (LRM 10.4).
type AssignKind uint8

const (
	AssignBlocking AssignKind = iota
	AssignNonblocking
)

// CaseItem is one branch of a case statement: a list of match expressions
// (empty for the `default` branch) and a body statement.
type CaseItem struct {
	Exprs   []ExprID
	Default bool
	Body    StmtID
	Span    source.Span
}

type CaseItems struct{ Arena *Arena[CaseItem] }

func NewCaseItems(capHint uint) *CaseItems { return &CaseItems{Arena: NewArena[CaseItem](capHint)} }
func (c *CaseItems) New(ci CaseItem) uint32 { return c.Arena.Allocate(ci) }
func (c *CaseItems) Get(idx uint32) *CaseItem { return c.Arena.Get(idx) }

// Stmt is one procedural statement.
type Stmt struct {
	Kind StmtKind

	// StmtBlock
	Items []StmtID
	Label string

	// StmtIf
	Cond      ExprID
	Then      StmtID
	Else      StmtID

	// StmtCase
	Selector  ExprID
	CaseItems []uint32 // indices into the shared CaseItems arena

	// StmtFor
	InitDecl DeclID // for(int i = 0; ...): declares i inline
	InitExpr ExprID // for(i = 0; ...): reuses an already-declared name
	ForCond  ExprID
	ForSteps []ExprID

	// StmtWhile / StmtForever share Cond/Body
	Body StmtID

	// StmtAssign
	Lhs  ExprID
	Rhs  ExprID
	Op   AssignKind

	// StmtCallStmt / StmtExpr
	Expr ExprID

	Span source.Span
}

type Stmts struct {
	Arena     *Arena[Stmt]
	CaseItems *CaseItems
}

func NewStmts(capHint uint) *Stmts {
	return &Stmts{Arena: NewArena[Stmt](capHint), CaseItems: NewCaseItems(capHint / 2)}
}

func (s *Stmts) New(stmt Stmt) StmtID { return StmtID(s.Arena.Allocate(stmt)) }

func (s *Stmts) Get(id StmtID) *Stmt { return s.Arena.Get(uint32(id)) }
