package parser

import (
	"testing"

	"github.com/mohamed/svlang/internal/diag"
	"github.com/mohamed/svlang/internal/preprocessor"
	"github.com/mohamed/svlang/internal/source"
	"github.com/mohamed/svlang/internal/syntax"
	"github.com/mohamed/svlang/internal/token"
)

// parseTestInput runs the full pp -> parser pipeline over input and fails
// the test if the diagnostics bag isn't empty. It returns the Builder so
// callers can walk the resulting tree.
func parseTestInput(t *testing.T, input string) (syntax.FileID, *syntax.Builder, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.sv", []byte(input))

	bag := diag.NewBag(100)
	reporter := diag.BagReporter{Bag: bag}

	pp := preprocessor.New(fs, fileID, preprocessor.Options{Reporter: reporter})
	b := syntax.NewBuilder(syntax.Hints{})

	res := ParseFile(pp, b, Options{MaxErrors: 100, Reporter: reporter})
	return res.File, b, res.Bag
}

func requireNoDiagnostics(t *testing.T, bag *diag.Bag) {
	t.Helper()
	if bag != nil && bag.Len() > 0 {
		items := bag.Items()
		t.Fatalf("unexpected diagnostics (count %d): [%s] %s", len(items), items[0].Code.ID(), items[0].Message)
	}
}

func singleUnit(t *testing.T, fileID syntax.FileID, b *syntax.Builder) *syntax.Unit {
	t.Helper()
	f := b.Files.Get(fileID)
	if len(f.Units) != 1 {
		t.Fatalf("expected exactly one design unit, got %d", len(f.Units))
	}
	return b.Units.Get(f.Units[0])
}

func TestParseEmptyModule(t *testing.T) {
	fileID, b, bag := parseTestInput(t, "module m; endmodule\n")
	requireNoDiagnostics(t, bag)
	u := singleUnit(t, fileID, b)
	if u.Kind != syntax.UnitModule || u.Name != "m" {
		t.Fatalf("got unit %+v", u)
	}
}

func TestParseInterfaceAndPackage(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  syntax.UnitKind
	}{
		{"interface", "interface bus_if; endinterface\n", syntax.UnitInterface},
		{"program", "program tb; endprogram\n", syntax.UnitProgram},
		{"package", "package pkg; endpackage\n", syntax.UnitPackage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fileID, b, bag := parseTestInput(t, tt.input)
			requireNoDiagnostics(t, bag)
			u := singleUnit(t, fileID, b)
			if u.Kind != tt.kind {
				t.Errorf("expected kind %v, got %v", tt.kind, u.Kind)
			}
		})
	}
}

func TestParseAnsiPortList(t *testing.T) {
	fileID, b, bag := parseTestInput(t, `
module adder(input logic [7:0] a, input logic [7:0] b, output logic [8:0] sum);
endmodule
`)
	requireNoDiagnostics(t, bag)
	u := singleUnit(t, fileID, b)
	if len(u.Ports) != 3 {
		t.Fatalf("expected 3 ports, got %d", len(u.Ports))
	}
	names := []string{"a", "b", "sum"}
	dirs := []syntax.Direction{syntax.DirInput, syntax.DirInput, syntax.DirOutput}
	for i, id := range u.Ports {
		p := b.Ports.Get(id)
		if p.Name != names[i] {
			t.Errorf("port %d: expected name %q, got %q", i, names[i], p.Name)
		}
		if p.Dir != dirs[i] {
			t.Errorf("port %d: expected dir %v, got %v", i, dirs[i], p.Dir)
		}
	}
}

func TestParsePortDirectionCarriesForward(t *testing.T) {
	// LRM 23.2.2.2: a port with no explicit direction/type inherits the
	// previous port's direction and type.
	fileID, b, bag := parseTestInput(t, "module m(output logic a, b, c);\nendmodule\n")
	requireNoDiagnostics(t, bag)
	u := singleUnit(t, fileID, b)
	if len(u.Ports) != 3 {
		t.Fatalf("expected 3 ports, got %d", len(u.Ports))
	}
	for i, id := range u.Ports {
		p := b.Ports.Get(id)
		if p.Dir != syntax.DirOutput {
			t.Errorf("port %d: expected inherited direction output, got %v", i, p.Dir)
		}
	}
}

func TestParseParamPortList(t *testing.T) {
	fileID, b, bag := parseTestInput(t, "module m #(parameter int WIDTH = 8, parameter DEPTH = 4) ();\nendmodule\n")
	requireNoDiagnostics(t, bag)
	u := singleUnit(t, fileID, b)
	if len(u.Params) != 2 {
		t.Fatalf("expected 2 parameters, got %d", len(u.Params))
	}
	width := b.Params.Get(u.Params[0])
	if width.Name != "WIDTH" || width.IsLocal {
		t.Errorf("got %+v", width)
	}
	depth := b.Params.Get(u.Params[1])
	if depth.Name != "DEPTH" {
		t.Errorf("got %+v", depth)
	}
}

func TestParseDataTypes(t *testing.T) {
	tests := []struct {
		name string
		decl string
		kind syntax.DataTypeKind
	}{
		{"logic_vector", "logic [3:0] x;", syntax.DataTypeScalar},
		{"bit", "bit y;", syntax.DataTypeScalar},
		{"int", "int z;", syntax.DataTypeIntegerAtom},
		{"real", "real r;", syntax.DataTypeFloating},
		{"string", "string s;", syntax.DataTypeString},
		{"named", "my_type_t t;", syntax.DataTypeNamed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fileID, b, bag := parseTestInput(t, "module m;\n"+tt.decl+"\nendmodule\n")
			requireNoDiagnostics(t, bag)
			u := singleUnit(t, fileID, b)
			if len(u.Items) != 1 {
				t.Fatalf("expected 1 item, got %d", len(u.Items))
			}
			item := b.Items.Get(u.Items[0])
			decl := b.Decls.Get(item.Decl)
			dt := b.DataTypes.Get(decl.DataType)
			if dt.Kind != tt.kind {
				t.Errorf("expected data type kind %v, got %v", tt.kind, dt.Kind)
			}
		})
	}
}

func TestParseEnumType(t *testing.T) {
	fileID, b, bag := parseTestInput(t, "module m;\nenum {IDLE, RUN, DONE} state;\nendmodule\n")
	requireNoDiagnostics(t, bag)
	u := singleUnit(t, fileID, b)
	item := b.Items.Get(u.Items[0])
	decl := b.Decls.Get(item.Decl)
	dt := b.DataTypes.Get(decl.DataType)
	if dt.Kind != syntax.DataTypeEnum || len(dt.Members) != 3 {
		t.Fatalf("got %+v", dt)
	}
}

func TestParseStructType(t *testing.T) {
	fileID, b, bag := parseTestInput(t, "module m;\nstruct packed { logic [7:0] hi; logic [7:0] lo; } word;\nendmodule\n")
	requireNoDiagnostics(t, bag)
	u := singleUnit(t, fileID, b)
	item := b.Items.Get(u.Items[0])
	decl := b.Decls.Get(item.Decl)
	dt := b.DataTypes.Get(decl.DataType)
	if dt.Kind != syntax.DataTypeStruct || !dt.Packed || len(dt.Fields) != 2 {
		t.Fatalf("got %+v", dt)
	}
}

func TestParseNetAndVariableDecl(t *testing.T) {
	fileID, b, bag := parseTestInput(t, "module m;\nwire [7:0] w;\nlogic q = 1;\nendmodule\n")
	requireNoDiagnostics(t, bag)
	u := singleUnit(t, fileID, b)
	if len(u.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(u.Items))
	}
	wireDecl := b.Decls.Get(b.Items.Get(u.Items[0]).Decl)
	if wireDecl.Kind != syntax.DeclNet || wireDecl.Net != syntax.NetWire {
		t.Errorf("got %+v", wireDecl)
	}
	varDecl := b.Decls.Get(b.Items.Get(u.Items[1]).Decl)
	if varDecl.Kind != syntax.DeclVariable || len(varDecl.Names) != 1 || varDecl.Names[0] != "q" {
		t.Errorf("got %+v", varDecl)
	}
	if !varDecl.Inits[0].IsValid() {
		t.Errorf("expected initializer on q")
	}
}

func TestParseTypedefAndForward(t *testing.T) {
	fileID, b, bag := parseTestInput(t, "module m;\ntypedef foo_t;\ntypedef logic [3:0] nibble_t;\nendmodule\n")
	requireNoDiagnostics(t, bag)
	u := singleUnit(t, fileID, b)
	fwd := b.Decls.Get(b.Items.Get(u.Items[0]).Decl)
	if fwd.Kind != syntax.DeclTypedefForward || fwd.TypedefName != "foo_t" {
		t.Errorf("got %+v", fwd)
	}
	full := b.Decls.Get(b.Items.Get(u.Items[1]).Decl)
	if full.Kind != syntax.DeclTypedef || full.TypedefName != "nibble_t" {
		t.Errorf("got %+v", full)
	}
}

func TestParseContinuousAssign(t *testing.T) {
	fileID, b, bag := parseTestInput(t, "module m;\nwire a, b;\nassign a = b;\nendmodule\n")
	requireNoDiagnostics(t, bag)
	u := singleUnit(t, fileID, b)
	assignDecl := b.Decls.Get(b.Items.Get(u.Items[1]).Decl)
	if assignDecl.Kind != syntax.DeclContinuousAssign {
		t.Fatalf("got %+v", assignDecl)
	}
	target := b.Exprs.Get(assignDecl.Target)
	if target.Kind != syntax.ExprIdent || target.Name != "a" {
		t.Errorf("expected target ident 'a', got %+v", target)
	}
}

func TestParseGenvar(t *testing.T) {
	fileID, b, bag := parseTestInput(t, "module m;\ngenvar i, j;\nendmodule\n")
	requireNoDiagnostics(t, bag)
	u := singleUnit(t, fileID, b)
	decl := b.Decls.Get(b.Items.Get(u.Items[0]).Decl)
	if decl.Kind != syntax.DeclGenvar || len(decl.Names) != 2 {
		t.Fatalf("got %+v", decl)
	}
}

func TestParseHierarchyInstantiation(t *testing.T) {
	fileID, b, bag := parseTestInput(t, `
module top;
  adder #(.WIDTH(8)) u_adder(.a(x), .b(y), .sum(z));
  mux2 u_mux(sel, d0, d1, q);
endmodule
`)
	requireNoDiagnostics(t, bag)
	u := singleUnit(t, fileID, b)
	if len(u.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(u.Items))
	}
	adderInst := b.Insts.Get(b.Items.Get(u.Items[0]).Inst)
	if adderInst.DefName != "adder" || len(adderInst.ParamAssigns) != 1 || len(adderInst.Instances) != 1 {
		t.Fatalf("got %+v", adderInst)
	}
	instance := b.Instances.Get(adderInst.Instances[0])
	if instance.Name != "u_adder" || len(instance.Connections) != 3 {
		t.Fatalf("got %+v", instance)
	}
	conn := b.Conns.Get(instance.Connections[0])
	if conn.Name != "a" {
		t.Errorf("expected named connection 'a', got %+v", conn)
	}

	muxInst := b.Insts.Get(b.Items.Get(u.Items[1]).Inst)
	muxInstance := b.Instances.Get(muxInst.Instances[0])
	if len(muxInstance.Connections) != 4 {
		t.Fatalf("expected 4 ordered connections, got %d", len(muxInstance.Connections))
	}
	if b.Conns.Get(muxInstance.Connections[0]).Name != "" {
		t.Errorf("expected ordered connection to have no name")
	}
}

func TestParseWildcardPortConnection(t *testing.T) {
	fileID, b, bag := parseTestInput(t, "module top;\nadder u_adder(.*);\nendmodule\n")
	requireNoDiagnostics(t, bag)
	u := singleUnit(t, fileID, b)
	inst := b.Insts.Get(b.Items.Get(u.Items[0]).Inst)
	instance := b.Instances.Get(inst.Instances[0])
	if len(instance.Connections) != 1 || b.Conns.Get(instance.Connections[0]).Name != "*" {
		t.Fatalf("got %+v", instance)
	}
}

func TestParseBlockingAssignStmt(t *testing.T) {
	fileID, b, bag := parseTestInput(t, "module m;\ninitial begin\n a = b;\nend\nendmodule\n")
	requireNoDiagnostics(t, bag)
	u := singleUnit(t, fileID, b)
	proc := b.Items.Get(u.Items[0])
	block := b.Stmts.Get(proc.Body)
	if len(block.Items) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(block.Items))
	}
	assign := b.Stmts.Get(block.Items[0])
	if assign.Kind != syntax.StmtAssign || assign.Op != syntax.AssignBlocking {
		t.Fatalf("got %+v", assign)
	}
}

func TestParseNonblockingAssignStmt(t *testing.T) {
	// This is the case that would misparse if '<=' were left to the
	// general binary-operator table: at statement level it must be read
	// as nonblocking assignment, never as "less than or equal".
	fileID, b, bag := parseTestInput(t, "module m;\nalways_ff @(posedge clk) begin\n q <= d;\nend\nendmodule\n")
	requireNoDiagnostics(t, bag)
	u := singleUnit(t, fileID, b)
	proc := b.Items.Get(u.Items[0])
	block := b.Stmts.Get(proc.Body)
	assign := b.Stmts.Get(block.Items[0])
	if assign.Kind != syntax.StmtAssign || assign.Op != syntax.AssignNonblocking {
		t.Fatalf("got %+v", assign)
	}
	lhs := b.Exprs.Get(assign.Lhs)
	if lhs.Kind != syntax.ExprIdent || lhs.Name != "q" {
		t.Errorf("expected lhs ident 'q', got %+v", lhs)
	}
}

func TestParseIfElseStmt(t *testing.T) {
	fileID, b, bag := parseTestInput(t, "module m;\ninitial begin\n if (a) b = 1; else b = 0;\nend\nendmodule\n")
	requireNoDiagnostics(t, bag)
	u := singleUnit(t, fileID, b)
	block := b.Stmts.Get(b.Items.Get(u.Items[0]).Body)
	ifStmt := b.Stmts.Get(block.Items[0])
	if ifStmt.Kind != syntax.StmtIf || !ifStmt.Then.IsValid() || !ifStmt.Else.IsValid() {
		t.Fatalf("got %+v", ifStmt)
	}
}

func TestParseCaseStmt(t *testing.T) {
	fileID, b, bag := parseTestInput(t, `
module m;
initial begin
  case (sel)
    2'b00: y = a;
    2'b01: y = b;
    default: y = c;
  endcase
end
endmodule
`)
	requireNoDiagnostics(t, bag)
	u := singleUnit(t, fileID, b)
	block := b.Stmts.Get(b.Items.Get(u.Items[0]).Body)
	caseStmt := b.Stmts.Get(block.Items[0])
	if caseStmt.Kind != syntax.StmtCase || len(caseStmt.CaseItems) != 3 {
		t.Fatalf("got %+v", caseStmt)
	}
	defaultItem := b.Stmts.CaseItems.Get(caseStmt.CaseItems[2])
	if !defaultItem.Default {
		t.Errorf("expected last case item to be default")
	}
}

func TestParseForStmt(t *testing.T) {
	fileID, b, bag := parseTestInput(t, "module m;\ninitial begin\n for (int i = 0; i < 8; i = i + 1) sum = sum + i;\nend\nendmodule\n")
	requireNoDiagnostics(t, bag)
	u := singleUnit(t, fileID, b)
	block := b.Stmts.Get(b.Items.Get(u.Items[0]).Body)
	forStmt := b.Stmts.Get(block.Items[0])
	if forStmt.Kind != syntax.StmtFor || !forStmt.InitDecl.IsValid() || !forStmt.ForCond.IsValid() || len(forStmt.ForSteps) != 1 {
		t.Fatalf("got %+v", forStmt)
	}
}

func TestParseWhileAndForeverStmt(t *testing.T) {
	fileID, b, bag := parseTestInput(t, "module m;\ninitial begin\n while (a) b = 1;\n forever c = c + 1;\nend\nendmodule\n")
	requireNoDiagnostics(t, bag)
	u := singleUnit(t, fileID, b)
	block := b.Stmts.Get(b.Items.Get(u.Items[0]).Body)
	if len(block.Items) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(block.Items))
	}
	if b.Stmts.Get(block.Items[0]).Kind != syntax.StmtWhile {
		t.Errorf("expected while statement")
	}
	if b.Stmts.Get(block.Items[1]).Kind != syntax.StmtForever {
		t.Errorf("expected forever statement")
	}
}

func TestParseCallStmt(t *testing.T) {
	fileID, b, bag := parseTestInput(t, "module m;\ninitial begin\n $display(\"hi\");\nend\nendmodule\n")
	requireNoDiagnostics(t, bag)
	u := singleUnit(t, fileID, b)
	block := b.Stmts.Get(b.Items.Get(u.Items[0]).Body)
	stmt := b.Stmts.Get(block.Items[0])
	if stmt.Kind != syntax.StmtCallStmt {
		t.Fatalf("got %+v", stmt)
	}
}

func TestExpressionPrecedence(t *testing.T) {
	// a + b * c must bind as a + (b * c): the top-level expression is
	// the '+' with a literal-multiplication expression as its rhs.
	fileID, b, bag := parseTestInput(t, "module m;\nassign y = a + b * c;\nendmodule\n")
	requireNoDiagnostics(t, bag)
	u := singleUnit(t, fileID, b)
	decl := b.Decls.Get(b.Items.Get(u.Items[0]).Decl)
	top := b.Exprs.Get(decl.Value)
	if top.Kind != syntax.ExprBinary || top.Op != token.Plus {
		t.Fatalf("expected top-level '+', got %+v", top)
	}
	rhs := b.Exprs.Get(top.Rhs)
	if rhs.Kind != syntax.ExprBinary || rhs.Op != token.Star {
		t.Fatalf("expected rhs '*', got %+v", rhs)
	}
}

func TestExpressionRangeSelect(t *testing.T) {
	fileID, b, bag := parseTestInput(t, "module m;\nassign y = arr[3:0];\nendmodule\n")
	requireNoDiagnostics(t, bag)
	u := singleUnit(t, fileID, b)
	decl := b.Decls.Get(b.Items.Get(u.Items[0]).Decl)
	expr := b.Exprs.Get(decl.Value)
	if expr.Kind != syntax.ExprRangeSelect {
		t.Fatalf("got %+v", expr)
	}
}

func TestExpressionReplication(t *testing.T) {
	fileID, b, bag := parseTestInput(t, "module m;\nassign y = {4{a}};\nendmodule\n")
	requireNoDiagnostics(t, bag)
	u := singleUnit(t, fileID, b)
	decl := b.Decls.Get(b.Items.Get(u.Items[0]).Decl)
	expr := b.Exprs.Get(decl.Value)
	if expr.Kind != syntax.ExprReplication {
		t.Fatalf("got %+v", expr)
	}
}

func TestParseErrorRecoveryResyncsToNextUnit(t *testing.T) {
	// A garbled first module shouldn't stop the parser from finding the
	// well-formed second one - resyncUntil should skip to the next
	// top-level starter.
	fileID, b, bag := parseTestInput(t, "module bad( ; endmodule\nmodule good; endmodule\n")
	if bag == nil || bag.Len() == 0 {
		t.Fatalf("expected at least one diagnostic from the malformed module")
	}
	f := b.Files.Get(fileID)
	found := false
	for _, id := range f.Units {
		if b.Units.Get(id).Name == "good" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected recovery to still parse the well-formed 'good' module, units: %+v", f.Units)
	}
}
