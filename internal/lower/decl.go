package lower

import (
	"fmt"

	"github.com/novalang/novalua/internal/ast"
	"github.com/novalang/novalua/internal/dtlast"
	"github.com/novalang/novalua/internal/semantic"
)

// visitCompilationUnit 实现 4.4 节：逐个顶层成员分派到类型声明或顶层语句。
func (t *Transformer) visitCompilationUnit(file *ast.File) *dtlast.CompilationUnit {
	cu := &dtlast.CompilationUnit{FilePath: file.Filename}

	var nsTypes []*dtlast.TypeDecl
	for _, d := range file.Declarations {
		switch decl := d.(type) {
		case *ast.ClassDecl:
			td := t.visitClass(decl)
			if file.Namespace != nil {
				nsTypes = append(nsTypes, td)
			} else {
				cu.AddType(td)
			}
		case *ast.InterfaceDecl:
			td := t.visitInterface(decl)
			if file.Namespace != nil {
				nsTypes = append(nsTypes, td)
			} else {
				cu.AddType(td)
			}
		case *ast.EnumDecl:
			td := t.visitEnum(decl)
			if file.Namespace != nil {
				nsTypes = append(nsTypes, td)
			} else {
				cu.AddType(td)
			}
		case *ast.UseDecl, *ast.TypeAliasDecl, *ast.NewTypeDecl:
			// 纯编译期构造：use 的路径在语义解析阶段已经消费，类型别名/新类型
			// 在动态类型的 DTL 里没有运行时对应物。
		default:
			t.raiseUnsupported(d, fmt.Sprintf("顶层声明 %T", d))
		}
	}
	if file.Namespace != nil {
		cu.AddNamespace(&dtlast.NamespaceDecl{Name: file.Namespace.Name, Types: nsTypes})
	}

	if len(file.Statements) > 0 {
		root := &dtlast.Block{}
		t.pushFunc(&funcContext{returnsVoid: true, isStatic: true})
		t.pushBlock(root)
		for _, s := range file.Statements {
			t.lowerStmt(s)
		}
		t.popBlock()
		t.popFunc()
		for _, s := range root.Statements {
			cu.AddStatement(s)
		}
	}
	return cu
}

// ---------------------------------------------------------------------------
// 类型声明 (4.5)
// ---------------------------------------------------------------------------

func (t *Transformer) visitClass(d *ast.ClassDecl) *dtlast.TypeDecl {
	td := &dtlast.TypeDecl{Kind: dtlast.TypeClass, Name: d.Name.Name}
	for _, tp := range d.TypeParams {
		td.TypeParams = append(td.TypeParams, tp.Name.Name)
	}
	if d.Extends != nil {
		td.BaseTypes = append(td.BaseTypes, d.Extends.Name)
	}
	for _, iface := range d.Implements {
		td.BaseTypes = append(td.BaseTypes, baseTypeName(iface))
	}

	t.pushType(&typeContext{name: d.Name.Name, kind: dtlast.TypeClass, final: d.Final, decl: td})
	for _, c := range d.Constants {
		t.visitConstDecl(c)
	}
	for _, p := range d.Properties {
		t.visitPropertyDecl(p)
	}
	for _, ev := range d.Events {
		t.visitEventDecl(ev)
	}
	for _, m := range d.Methods {
		t.visitMethodDecl(m)
	}
	t.popType()
	return td
}

func (t *Transformer) visitInterface(d *ast.InterfaceDecl) *dtlast.TypeDecl {
	td := &dtlast.TypeDecl{Kind: dtlast.TypeInterface, Name: d.Name.Name}
	for _, tp := range d.TypeParams {
		td.TypeParams = append(td.TypeParams, tp.Name.Name)
	}
	for _, iface := range d.Extends {
		td.BaseTypes = append(td.BaseTypes, baseTypeName(iface))
	}
	t.pushType(&typeContext{name: d.Name.Name, kind: dtlast.TypeInterface, decl: td})
	for _, m := range d.Methods {
		if m.Body != nil {
			t.visitMethodDecl(m)
		}
		// 抽象方法体为 nil：没有可下降的代码，接口只贡献形状信息。
	}
	t.popType()
	return td
}

func (t *Transformer) visitEnum(d *ast.EnumDecl) *dtlast.TypeDecl {
	td := &dtlast.TypeDecl{Kind: dtlast.TypeEnum, Name: d.Name.Name}
	t.pushType(&typeContext{name: d.Name.Name, kind: dtlast.TypeEnum, decl: td})
	for _, c := range d.Cases {
		var val dtlast.Expression
		if c.Value != nil {
			val = t.lowerExpr(c.Value)
		}
		td.EnumCases = append(td.EnumCases, dtlast.EnumCaseMember{Name: c.Name.Name, Value: val})
	}
	t.popType()
	return td
}

func baseTypeName(tn ast.TypeNode) string {
	switch n := tn.(type) {
	case *ast.ClassType:
		return n.Name.Literal
	case *ast.SimpleType:
		return n.Name
	case *ast.GenericType:
		return baseTypeName(n.BaseType)
	default:
		return tn.String()
	}
}

// ---------------------------------------------------------------------------
// 方法声明 (4.6)
// ---------------------------------------------------------------------------

func (t *Transformer) visitMethodDecl(m *ast.MethodDecl) {
	sym := t.model.DeclaredSymbol(m)
	if sym == nil {
		t.raiseCollaborator(m, "方法声明缺少符号: "+m.Name.Name)
	}

	fc := &funcContext{
		isStatic:     m.Static,
		isStaticCtor: m.Static && m.Name.Name == "__construct",
		returnsVoid:  sym.ReturnsVoid,
	}
	if sym.ReturnsVoid {
		// returnsVoid 的 yield 方法返回 Object 作为 System.Yield 的元素类型哨兵
		fc.returnArg = "Object"
	} else if gt, ok := m.ReturnType.(*ast.GenericType); ok && len(gt.TypeArgs) > 0 {
		fc.returnArg = gt.TypeArgs[0].String()
	} else {
		fc.returnArg = "Object"
	}
	t.pushFunc(fc)

	var params []string
	if !m.Static {
		params = append(params, "this")
	}
	for _, p := range m.Parameters {
		params = append(params, p.Name.Name)
	}
	for _, tp := range m.TypeParams {
		params = append(params, tp.Name.Name)
	}

	var body *dtlast.Block
	if m.Body != nil {
		body = t.lowerBlock(m.Body)
		body.Statements = append(t.paramDefaultStmts(m.Parameters), body.Statements...)
	} else {
		body = &dtlast.Block{}
	}

	if fc.hasYield {
		body = t.wrapYield(m, body, params, fc.returnArg)
	}

	t.popFunc()

	fn := &dtlast.FuncLit{Params: params, Body: body}
	isPrivate := sym.DeclaredAccessibility == semantic.AccessPrivate
	t.curType().decl.AddMethod(m.Name.Name, fn, isPrivate)
}

// wrapYield 实现 4.6 节末尾描述的 yield 包装：原函数体被挪进一个内层闭包，
// 外层函数体替换为 return System.Yield(inner, T, params...)。
func (t *Transformer) wrapYield(m *ast.MethodDecl, body *dtlast.Block, params []string, elemType string) *dtlast.Block {
	inner := &dtlast.FuncLitExpr{Lit: &dtlast.FuncLit{Params: params, Body: body}}
	args := []dtlast.Expression{inner, &dtlast.Ident{Name: elemType}}
	for _, p := range params {
		args = append(args, &dtlast.Ident{Name: p})
	}
	call := &dtlast.Invocation{Callee: &dtlast.Ident{Name: "System.Yield"}, Args: args}
	return &dtlast.Block{Statements: []dtlast.Statement{
		&dtlast.ReturnStmt{Values: []dtlast.Expression{call}},
	}}
}

// ---------------------------------------------------------------------------
// 常量声明
// ---------------------------------------------------------------------------

func (t *Transformer) visitConstDecl(c *ast.ConstDecl) {
	sym := t.model.DeclaredSymbol(c)
	init := t.getFieldValueExpression(c.Value, c.Type, true)
	t.curType().decl.AddField(&dtlast.FieldMember{
		Name:               c.Name.Name,
		Init:               init,
		IsImmutableLiteral: isLiteralExpr(c.Value),
		IsStatic:           true,
		IsPrivate:          sym != nil && sym.DeclaredAccessibility == semantic.AccessPrivate,
		IsReadOnly:         true,
	})
}

func isLiteralExpr(e ast.Expression) bool {
	switch e.(type) {
	case *ast.IntegerLiteral, *ast.FloatLiteral, *ast.StringLiteral, *ast.BoolLiteral, *ast.NullLiteral:
		return true
	default:
		return false
	}
}

// ---------------------------------------------------------------------------
// 字段取值表达式 (4.7 GetFieldValueExpression)
// ---------------------------------------------------------------------------

var valueTypeDefaults = map[string]string{
	"int": "0", "long": "0", "short": "0", "byte": "0",
	"float": "0.0", "double": "0.0",
	"bool": "false",
}

// getFieldValueExpression 按 4.7 节规则构建一个字段/常量的初始化表达式。
func (t *Transformer) getFieldValueExpression(value ast.Expression, declType ast.TypeNode, required bool) dtlast.Expression {
	if value != nil {
		return t.lowerExpr(value)
	}
	if declType != nil {
		if name := simpleTypeName(declType); name != "" {
			if def, ok := valueTypeDefaults[name]; ok {
				return &dtlast.Literal{Kind: dtlast.LiteralNumeric, Raw: def}
			}
			return &dtlast.Invocation{Callee: &dtlast.MemberAccess{Object: &dtlast.Ident{Name: name}, Name: "default"}}
		}
	}
	if required {
		return &dtlast.Literal{Kind: dtlast.LiteralNil}
	}
	return nil
}

func simpleTypeName(tn ast.TypeNode) string {
	switch n := tn.(type) {
	case *ast.SimpleType:
		return n.Name
	case *ast.ClassType:
		return n.Name.Literal
	default:
		return ""
	}
}

// ---------------------------------------------------------------------------
// 属性声明 (4.7)
// ---------------------------------------------------------------------------

func (t *Transformer) visitPropertyDecl(p *ast.PropertyDecl) {
	sym := t.model.DeclaredSymbol(p)
	isPrivate := sym != nil && sym.DeclaredAccessibility == semantic.AccessPrivate

	switch {
	case p.Accessor != nil && (p.Accessor.GetBody != nil || p.Accessor.SetBody != nil):
		// 情形 1：访问器体存在。
		pm := &dtlast.PropertyMember{Name: p.Name.Name, IsStatic: p.Static, IsPrivate: isPrivate}
		if p.Accessor.GetBody == nil {
			t.raiseInvariant(p, "属性缺少 getter: "+p.Name.Name)
		}
		pm.Get = t.lowerAccessorBody(p.Accessor.GetBody, p.Static, false)
		if p.Accessor.SetBody != nil {
			pm.Set = t.lowerAccessorBody(p.Accessor.SetBody, p.Static, true)
		}
		t.curType().decl.AddProperty(pm)

	case p.ExprBody != nil:
		// 情形 2：表达式体，只读 getter。
		fc := &funcContext{isStatic: p.Static, returnsVoid: false}
		t.pushFunc(fc)
		body := &dtlast.Block{}
		t.pushBlock(body)
		val := t.lowerExpr(p.ExprBody)
		t.popBlock()
		body.Statements = append(body.Statements, &dtlast.ReturnStmt{Values: []dtlast.Expression{val}})
		t.popFunc()

		params := []string{}
		if !p.Static {
			params = []string{"this"}
		}
		t.curType().decl.AddProperty(&dtlast.PropertyMember{
			Name: p.Name.Name, IsStatic: p.Static, IsPrivate: isPrivate,
			Get: &dtlast.FuncLit{Params: params, Body: body},
		})

	default:
		// 情形 3：自动属性，没有用户访问器体。
		if t.curType().kind == dtlast.TypeInterface {
			t.log.Warnf("接口属性 %s.%s 既没有访问器体也没有初始值，不产生任何输出",
				t.curType().name, p.Name.Name)
			return
		}
		init := t.getFieldValueExpression(p.Value, p.Type, false)
		t.curType().decl.AddField(&dtlast.FieldMember{
			Name:               p.Name.Name,
			Init:               init,
			IsImmutableLiteral: p.Value != nil && isLiteralExpr(p.Value),
			IsStatic:           p.Static,
			IsPrivate:          isPrivate,
			IsReadOnly:         p.Final,
		})
	}
}

// lowerAccessorBody 把一个 get/set/add/remove 访问器体降级为一个函数字面量，
// 按 2. 号不变式补上 this（非 static）与 value（setter/add/remove）参数。
func (t *Transformer) lowerAccessorBody(body *ast.BlockStmt, static bool, isSetter bool) *dtlast.FuncLit {
	fc := &funcContext{isStatic: static, returnsVoid: true}
	t.pushFunc(fc)
	var params []string
	if !static {
		params = append(params, "this")
	}
	if isSetter {
		params = append(params, "value")
	}
	lowered := t.lowerBlock(body)
	t.popFunc()
	return &dtlast.FuncLit{Params: params, Body: lowered}
}

// ---------------------------------------------------------------------------
// 事件声明 (4.7 尾段)
// ---------------------------------------------------------------------------

func (t *Transformer) visitEventDecl(ev *ast.EventDecl) {
	sym := t.model.DeclaredSymbol(ev)
	isPrivate := sym != nil && sym.DeclaredAccessibility == semantic.AccessPrivate

	if ev.Accessor != nil && (ev.Accessor.AddBody != nil || ev.Accessor.RemoveBody != nil) {
		em := &dtlast.EventMember{Name: ev.Name.Name, IsStatic: ev.Static}
		if ev.Accessor.AddBody != nil {
			em.Add = t.lowerAccessorBody(ev.Accessor.AddBody, ev.Static, true)
		}
		if ev.Accessor.RemoveBody != nil {
			em.Remove = t.lowerAccessorBody(ev.Accessor.RemoveBody, ev.Static, true)
		}
		t.curType().decl.AddEvent(em)
		return
	}

	// 事件字段：与普通字段共享降级路径，仅在可重写或接口实现时改走 AddEvent。
	field := &dtlast.FieldMember{
		Name:      ev.Name.Name,
		Init:      &dtlast.Literal{Kind: dtlast.LiteralNil},
		IsStatic:  ev.Static,
		IsPrivate: isPrivate,
	}
	if sym != nil && (sym.IsOverridable || sym.IsInterfaceImplementation) {
		t.curType().decl.AddEvent(&dtlast.EventMember{Name: ev.Name.Name, IsStatic: ev.Static})
		return
	}
	t.curType().decl.AddField(field)
}
