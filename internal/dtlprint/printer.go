// Package dtlprint 把 internal/dtlast 输出树渲染成 DTL 源码文本。
//
// 这不是翻译逻辑的一部分——internal/lower 产出的树已经是最终语义；
// 这里只负责排版，供测试用字符串比对来核验一次翻译的形状，也供
// CLI 的 translate 子命令输出 DTL 源码。
package dtlprint

import (
	"fmt"
	"strings"

	"github.com/novalang/novalua/internal/dtlast"
)

// Printer 把一棵 dtlast 树渲染成带缩进的源码文本。
type Printer struct {
	buf        strings.Builder
	indent     int
	indentSize int
}

// New 创建一个使用默认缩进（2 个空格）的 Printer。
func New() *Printer {
	return &Printer{indentSize: 2}
}

// Print 渲染整个编译单元。
func (p *Printer) Print(cu *dtlast.CompilationUnit) string {
	for _, ns := range cu.Namespaces {
		p.printNamespace(ns)
	}
	for i, t := range cu.Types {
		if i > 0 || len(cu.Namespaces) > 0 {
			p.writeln()
		}
		p.printType(t)
	}
	if len(cu.Statements) > 0 {
		if len(cu.Types) > 0 || len(cu.Namespaces) > 0 {
			p.writeln()
		}
		for _, stmt := range cu.Statements {
			p.printStmt(stmt)
		}
	}
	return p.buf.String()
}

func (p *Printer) printNamespace(ns *dtlast.NamespaceDecl) {
	p.writeIndent()
	p.write("-- namespace " + ns.Name)
	p.writeln()
	for _, t := range ns.Types {
		p.printType(t)
		p.writeln()
	}
}

func (p *Printer) write(s string) { p.buf.WriteString(s) }
func (p *Printer) writeln(s ...string) {
	for _, str := range s {
		p.buf.WriteString(str)
	}
	p.buf.WriteString("\n")
}

func (p *Printer) writeIndent() {
	p.buf.WriteString(strings.Repeat(" ", p.indent*p.indentSize))
}

// ============================================================================
// 类型声明
// ============================================================================

func (p *Printer) printType(t *dtlast.TypeDecl) {
	p.writeIndent()
	p.write(fmt.Sprintf("%s = System.%sOf(%q", t.Name, kindCtor(t.Kind), t.Name))
	for _, b := range t.BaseTypes {
		p.write(", " + b)
	}
	p.write(")")
	p.writeln()
	p.indent++

	for _, f := range t.Fields {
		p.printField(t.Name, f)
	}
	for _, pr := range t.Properties {
		p.printProperty(t.Name, pr)
	}
	for _, ev := range t.Events {
		p.printEvent(t.Name, ev)
	}
	for _, m := range t.Methods {
		p.printMethod(t.Name, m)
	}
	for _, c := range t.EnumCases {
		p.writeIndent()
		p.write(t.Name + "." + c.Name + " = ")
		if c.Value != nil {
			p.write(p.exprString(c.Value))
		} else {
			p.write("nil")
		}
		p.writeln()
	}

	p.indent--
}

func kindCtor(k dtlast.TypeKind) string {
	switch k {
	case dtlast.TypeClass:
		return "Class"
	case dtlast.TypeStruct:
		return "Struct"
	case dtlast.TypeInterface:
		return "Interface"
	case dtlast.TypeEnum:
		return "Enum"
	default:
		return "Class"
	}
}

func (p *Printer) printField(typeName string, f *dtlast.FieldMember) {
	p.writeIndent()
	p.write(typeName + "." + f.Name + " = ")
	if f.Init != nil {
		p.write(p.exprString(f.Init))
	} else {
		p.write("nil")
	}
	p.writeln()
}

func (p *Printer) printProperty(typeName string, pr *dtlast.PropertyMember) {
	if pr.Get != nil {
		p.printFunc(typeName+"."+pr.Name+".get", pr.Get)
	}
	if pr.Set != nil {
		p.printFunc(typeName+"."+pr.Name+".set", pr.Set)
	}
}

func (p *Printer) printEvent(typeName string, ev *dtlast.EventMember) {
	if ev.Add != nil {
		p.printFunc(typeName+"."+ev.Name+".add", ev.Add)
	}
	if ev.Remove != nil {
		p.printFunc(typeName+"."+ev.Name+".remove", ev.Remove)
	}
}

func (p *Printer) printMethod(typeName string, m *dtlast.MethodMember) {
	p.printFunc(typeName+"."+m.Name, m.Func)
}

func (p *Printer) printFunc(name string, fn *dtlast.FuncLit) {
	p.writeIndent()
	p.write("function " + name + "(" + strings.Join(fn.Params, ", ") + ")")
	p.writeln()
	p.indent++
	if fn.Body != nil {
		p.printBlockStatements(fn.Body)
	}
	p.indent--
	p.writeIndent()
	p.writeln("end")
}

// ============================================================================
// 语句
// ============================================================================

func (p *Printer) printBlockStatements(b *dtlast.Block) {
	for _, s := range b.Statements {
		p.printStmt(s)
	}
}

func (p *Printer) printStmt(stmt dtlast.Statement) {
	switch s := stmt.(type) {
	case *dtlast.ExprStmt:
		p.writeIndent()
		p.writeln(p.exprString(s.Expr))
	case *dtlast.LocalVar:
		p.writeIndent()
		if s.Value != nil {
			p.writeln("local " + s.Name + " = " + p.exprString(s.Value))
		} else {
			p.writeln("local " + s.Name)
		}
	case *dtlast.LocalVars:
		p.writeIndent()
		p.writeln("local " + strings.Join(s.Names, ", "))
	case *dtlast.ReturnStmt:
		p.writeIndent()
		if len(s.Values) == 0 {
			p.writeln("return")
			return
		}
		parts := make([]string, len(s.Values))
		for i, v := range s.Values {
			parts[i] = p.exprString(v)
		}
		p.writeln("return " + strings.Join(parts, ", "))
	case *dtlast.BreakStmt:
		p.writeIndent()
		p.writeln("break")
	case *dtlast.IfStmt:
		p.printIf(s, false)
	case *dtlast.WhileStmt:
		p.writeIndent()
		p.write("while " + p.exprString(s.Cond) + " do")
		p.writeln()
		p.indent++
		p.printBlockStatements(s.Body)
		p.indent--
		p.writeIndent()
		p.writeln("end")
	case *dtlast.RepeatUntilStmt:
		p.writeIndent()
		p.writeln("repeat")
		p.indent++
		p.printBlockStatements(s.Body)
		p.indent--
		p.writeIndent()
		p.writeln("until " + p.exprString(s.Cond))
	case *dtlast.ForInStmt:
		p.writeIndent()
		p.write("for " + strings.Join(s.Names, ", ") + " in " + p.exprString(s.Iterable) + " do")
		p.writeln()
		p.indent++
		p.printBlockStatements(s.Body)
		p.indent--
		p.writeIndent()
		p.writeln("end")
	case *dtlast.GotoStmt:
		p.writeIndent()
		p.writeln("goto " + s.Label)
	case *dtlast.GotoCaseAdapter:
		p.writeIndent()
		p.writeln("goto " + s.ResolvedLabel())
	case *dtlast.LabeledStmt:
		p.writeIndent()
		p.write("::" + s.Label + "::")
		p.writeln()
		p.printStmt(s.Stmt)
	case *dtlast.BlankLines:
		for i := 0; i < s.Count; i++ {
			p.writeln()
		}
	case *dtlast.ShortComment:
		p.writeIndent()
		p.writeln("-- " + s.Text)
	case *dtlast.LongComment:
		p.writeIndent()
		p.writeln("--[[ " + s.Text + " ]]")
	case *dtlast.Block:
		p.printBlockStatements(s)
	case *dtlast.BlockBlock:
		p.writeIndent()
		p.writeln("do")
		p.indent++
		p.printBlockStatements(s.Inner)
		p.indent--
		p.writeIndent()
		p.writeln("end")
	case *dtlast.SwitchAdapter:
		p.printSwitch(s)
	case *dtlast.TypeDecl:
		p.printType(s)
	case *dtlast.NamespaceDecl:
		p.printNamespace(s)
	}
}

func (p *Printer) printIf(s *dtlast.IfStmt, elseif bool) {
	p.writeIndent()
	if elseif {
		p.write("elseif " + p.exprString(s.Cond) + " then")
	} else {
		p.write("if " + p.exprString(s.Cond) + " then")
	}
	p.writeln()
	p.indent++
	if s.Then != nil {
		p.printBlockStatements(s.Then)
	}
	p.indent--

	switch e := s.Else.(type) {
	case nil:
		p.writeIndent()
		p.writeln("end")
	case *dtlast.IfStmt:
		p.printIf(e, true)
	case *dtlast.Block:
		p.writeIndent()
		p.writeln("else")
		p.indent++
		p.printBlockStatements(e)
		p.indent--
		p.writeIndent()
		p.writeln("end")
	default:
		p.writeIndent()
		p.writeln("end")
	}
}

func (p *Printer) printSwitch(s *dtlast.SwitchAdapter) {
	p.writeIndent()
	p.writeln("local " + s.Temp + " = " + p.exprString(s.Subject))
	if len(s.Arms) == 0 {
		if s.Default != nil {
			p.printStmt(&dtlast.BlockBlock{Inner: s.Default})
		}
		return
	}

	var chainDefault dtlast.Statement
	if s.Default != nil {
		chainDefault = s.Default
	}
	root := &dtlast.IfStmt{Cond: s.Arms[len(s.Arms)-1].Cond, Then: s.Arms[len(s.Arms)-1].Body, Else: chainDefault}
	for i := len(s.Arms) - 2; i >= 0; i-- {
		root = &dtlast.IfStmt{Cond: s.Arms[i].Cond, Then: s.Arms[i].Body, Else: root}
	}
	p.printIf(root, false)
}
