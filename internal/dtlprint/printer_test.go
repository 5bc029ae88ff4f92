package dtlprint

import (
	"strings"
	"testing"

	"github.com/novalang/novalua/internal/dtlast"
)

func TestPrintSimpleMethod(t *testing.T) {
	cu := &dtlast.CompilationUnit{FilePath: "a.nova"}
	cls := &dtlast.TypeDecl{Kind: dtlast.TypeClass, Name: "Point"}
	cls.AddField(&dtlast.FieldMember{Name: "x", Init: &dtlast.Literal{Kind: dtlast.LiteralNumeric, Raw: "0"}})
	cls.AddMethod("move", &dtlast.FuncLit{
		Params: []string{"this", "dx"},
		Body: &dtlast.Block{Statements: []dtlast.Statement{
			&dtlast.ExprStmt{Expr: &dtlast.AssignExpr{
				Left:  &dtlast.MemberAccess{Object: &dtlast.Ident{Name: "this"}, Name: "x"},
				Right: &dtlast.BinaryExpr{Left: &dtlast.MemberAccess{Object: &dtlast.Ident{Name: "this"}, Name: "x"}, Op: "+", Right: &dtlast.Ident{Name: "dx"}},
			}},
		}},
	}, false)
	cu.AddType(cls)

	out := New().Print(cu)
	for _, want := range []string{"Point = System.ClassOf(\"Point\")", "Point.x = 0", "function Point.move(this, dx)", "this.x = this.x + dx", "end"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q, got:\n%s", want, out)
		}
	}
}

func TestPrintIfElseChain(t *testing.T) {
	ifStmt := &dtlast.IfStmt{
		Cond: &dtlast.Ident{Name: "cond1"},
		Then: &dtlast.Block{Statements: []dtlast.Statement{&dtlast.BreakStmt{}}},
		Else: &dtlast.IfStmt{
			Cond: &dtlast.Ident{Name: "cond2"},
			Then: &dtlast.Block{Statements: []dtlast.Statement{&dtlast.BreakStmt{}}},
			Else: &dtlast.Block{Statements: []dtlast.Statement{&dtlast.BreakStmt{}}},
		},
	}
	p := New()
	p.printStmt(ifStmt)
	out := p.buf.String()

	if strings.Count(out, "end") != 1 {
		t.Errorf("elseif chain should close with exactly one 'end', got:\n%s", out)
	}
	if !strings.Contains(out, "elseif cond2 then") {
		t.Errorf("expected elseif chaining, got:\n%s", out)
	}
}

func TestPrintSwitchAdapter(t *testing.T) {
	sw := &dtlast.SwitchAdapter{
		Temp:    "t1",
		Subject: &dtlast.Ident{Name: "x"},
		Arms: []*dtlast.SwitchArm{
			{Cond: &dtlast.BinaryExpr{Left: &dtlast.Ident{Name: "t1"}, Op: "==", Right: &dtlast.Literal{Kind: dtlast.LiteralNumeric, Raw: "1"}},
				Body: &dtlast.Block{Statements: []dtlast.Statement{&dtlast.BreakStmt{}}}},
		},
		Default: &dtlast.Block{Statements: []dtlast.Statement{&dtlast.BreakStmt{}}},
	}
	p := New()
	p.printStmt(sw)
	out := p.buf.String()
	if !strings.Contains(out, "local t1 = x") {
		t.Errorf("missing subject temp, got:\n%s", out)
	}
	if !strings.Contains(out, "if t1 == 1 then") {
		t.Errorf("missing case condition, got:\n%s", out)
	}
}
