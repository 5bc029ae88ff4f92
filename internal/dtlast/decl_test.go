package dtlast

import "testing"

func TestTypeDeclAddOrderPreserved(t *testing.T) {
	td := &TypeDecl{Kind: TypeClass, Name: "Point"}
	td.AddField(&FieldMember{Name: "x", IsPrivate: true})
	td.AddMethod("move", &FuncLit{Params: []string{"this", "dx"}}, false)
	td.AddField(&FieldMember{Name: "y", IsPrivate: true})

	if len(td.Fields) != 2 {
		t.Fatalf("got %d fields, want 2", len(td.Fields))
	}
	if td.Fields[0].Name != "x" || td.Fields[1].Name != "y" {
		t.Errorf("fields out of order: %q, %q", td.Fields[0].Name, td.Fields[1].Name)
	}
	if len(td.Methods) != 1 || td.Methods[0].Name != "move" {
		t.Errorf("unexpected methods: %+v", td.Methods)
	}
}

func TestCompilationUnitAddType(t *testing.T) {
	cu := &CompilationUnit{FilePath: "a.nova"}
	cu.AddType(&TypeDecl{Kind: TypeClass, Name: "A"})
	cu.AddStatement(&ExprStmt{Expr: &Ident{Name: "x"}})

	if len(cu.Types) != 1 || cu.Types[0].Name != "A" {
		t.Errorf("unexpected types: %+v", cu.Types)
	}
	if len(cu.Statements) != 1 {
		t.Errorf("got %d statements, want 1", len(cu.Statements))
	}
}
