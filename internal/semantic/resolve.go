package semantic

import (
	"fmt"

	"github.com/novalang/novalua/internal/ast"
	"github.com/novalang/novalua/internal/token"
)

// scope 是一层词法作用域：局部变量/参数名到符号的映射，链向外层作用域。
type scope struct {
	vars   map[string]*Symbol
	parent *scope
}

func newScope(parent *scope) *scope {
	return &scope{vars: make(map[string]*Symbol), parent: parent}
}

func (s *scope) lookup(name string) (*Symbol, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if sym, ok := cur.vars[name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// resolver 在两趟遍历中把一棵语法树变成 Model：先收集全部类型与成员，
// 再在已知符号表的基础上解析每个标识符/表达式的引用和类型。
type resolver struct {
	model       *Model
	errors      []error
	currentType *Symbol
	scope       *scope
	labels      map[string]bool
}

func newResolver() *resolver {
	return &resolver{model: newModel()}
}

func (r *resolver) pushScope() { r.scope = newScope(r.scope) }
func (r *resolver) popScope()  { r.scope = r.scope.parent }

func (r *resolver) errorf(pos token.Position, format string, args ...interface{}) {
	r.errors = append(r.errors, &Error{Pos: pos, Message: fmt.Sprintf(format, args...)})
}

// ============================================================================
// 第一趟：收集类型与成员
// ============================================================================

func (r *resolver) collectTypes(file *ast.File) {
	for _, decl := range file.Declarations {
		switch d := decl.(type) {
		case *ast.ClassDecl:
			r.registerClass(d)
		case *ast.InterfaceDecl:
			r.registerInterface(d)
		case *ast.EnumDecl:
			r.registerEnum(d)
		}
	}
}

func accessibilityOf(v ast.Visibility) Accessibility {
	switch v {
	case ast.VisibilityPublic:
		return AccessPublic
	case ast.VisibilityProtected:
		return AccessProtected
	case ast.VisibilityPrivate:
		return AccessPrivate
	default:
		return AccessDefault
	}
}

func constantLiteral(e ast.Expression) (string, bool) {
	switch lit := e.(type) {
	case *ast.IntegerLiteral:
		return lit.Token.Literal, true
	case *ast.FloatLiteral:
		return lit.Token.Literal, true
	case *ast.StringLiteral:
		return lit.Value, true
	case *ast.BoolLiteral:
		return lit.String(), true
	case *ast.NullLiteral:
		return "null", true
	default:
		return "", false
	}
}

func (r *resolver) methodSymbol(m *ast.MethodDecl, owner *Symbol) *Symbol {
	sym := &Symbol{
		Kind:                  KindMethod,
		Name:                  m.Name.Name,
		ContainingType:        owner,
		IsStatic:              m.Static,
		IsOverridable:         !m.Final && !m.Static,
		DeclaredAccessibility: accessibilityOf(m.Visibility),
		ReturnsVoid:           m.ReturnType == nil,
		Decl:                  m,
	}
	for _, tp := range m.TypeParams {
		sym.TypeArguments = append(sym.TypeArguments, tp.Name.Name)
	}
	for _, p := range m.Parameters {
		psym := &Symbol{
			Kind: KindParameter,
			Name: p.Name.Name,
			Decl: p,
		}
		sym.Parameters = append(sym.Parameters, psym)
	}
	return sym
}

func (r *resolver) registerClass(d *ast.ClassDecl) {
	sym := &Symbol{
		Kind:                  KindNamedType,
		Name:                  d.Name.Name,
		DeclaredAccessibility: accessibilityOf(d.Visibility),
		IsOverridable:         !d.Final,
		Decl:                  d,
	}
	r.model.classes[d.Name.Name] = sym
	r.model.declaredSymbol[d] = sym
	members := make(map[string]*Symbol)
	r.model.members[d.Name.Name] = members

	for _, c := range d.Constants {
		ms := &Symbol{
			Kind:                  KindField,
			Name:                  c.Name.Name,
			ContainingType:        sym,
			IsStatic:              true,
			IsReadOnly:            true,
			DeclaredAccessibility: accessibilityOf(c.Visibility),
			Decl:                  c,
		}
		if lit, ok := constantLiteral(c.Value); ok {
			ms.HasConstantValue = true
			ms.ConstantValue = lit
		}
		members[c.Name.Name] = ms
		r.model.declaredSymbol[c] = ms
	}

	for _, p := range d.Properties {
		ms := &Symbol{
			Kind:                  KindProperty,
			Name:                  p.Name.Name,
			ContainingType:        sym,
			IsStatic:              p.Static,
			IsReadOnly:            p.Final,
			DeclaredAccessibility: accessibilityOf(p.Visibility),
			Decl:                  p,
		}
		switch {
		case p.ExprBody != nil:
			ms.IsComputedProperty = true
		case p.Accessor != nil && (p.Accessor.GetBody != nil || p.Accessor.SetBody != nil ||
			p.Accessor.GetExpr != nil || p.Accessor.SetExpr != nil):
			ms.IsComputedProperty = true
		default:
			ms.IsAutoProperty = true
		}
		members[p.Name.Name] = ms
		r.model.declaredSymbol[p] = ms
	}

	for _, ev := range d.Events {
		ms := &Symbol{
			Kind:                  KindEvent,
			Name:                  ev.Name.Name,
			ContainingType:        sym,
			IsStatic:              ev.Static,
			DeclaredAccessibility: accessibilityOf(ev.Visibility),
			Decl:                  ev,
		}
		if ev.Accessor == nil || (ev.Accessor.AddBody == nil && ev.Accessor.RemoveBody == nil) {
			ms.IsEventField = true
		}
		members[ev.Name.Name] = ms
		r.model.declaredSymbol[ev] = ms
	}

	for _, m := range d.Methods {
		ms := r.methodSymbol(m, sym)
		members[m.Name.Name] = ms
		r.model.declaredSymbol[m] = ms
	}
}

func (r *resolver) registerInterface(d *ast.InterfaceDecl) {
	sym := &Symbol{
		Kind: KindNamedType,
		Name: d.Name.Name,
		Decl: d,
	}
	r.model.classes[d.Name.Name] = sym
	r.model.declaredSymbol[d] = sym
	members := make(map[string]*Symbol)
	r.model.members[d.Name.Name] = members
	for _, m := range d.Methods {
		ms := r.methodSymbol(m, sym)
		members[m.Name.Name] = ms
		r.model.declaredSymbol[m] = ms
	}
}

func (r *resolver) registerEnum(d *ast.EnumDecl) {
	sym := &Symbol{
		Kind: KindNamedType,
		Name: d.Name.Name,
		Decl: d,
	}
	r.model.classes[d.Name.Name] = sym
	r.model.declaredSymbol[d] = sym
	members := make(map[string]*Symbol)
	r.model.members[d.Name.Name] = members
	for _, c := range d.Cases {
		ms := &Symbol{
			Kind:           KindField,
			Name:           c.Name.Name,
			ContainingType: sym,
			IsStatic:       true,
			IsReadOnly:     true,
			Decl:           c,
		}
		if c.Value != nil {
			if lit, ok := constantLiteral(c.Value); ok {
				ms.HasConstantValue = true
				ms.ConstantValue = lit
			}
		}
		members[c.Name.Name] = ms
	}
}

// ============================================================================
// 第二趟：解析标识符/表达式引用
// ============================================================================

func (r *resolver) resolveFile(file *ast.File) {
	r.scope = newScope(nil)
	for _, decl := range file.Declarations {
		r.resolveDecl(decl)
	}
	for _, stmt := range file.Statements {
		r.resolveStmt(stmt)
	}
}

func (r *resolver) resolveDecl(decl ast.Declaration) {
	if d, ok := decl.(*ast.ClassDecl); ok {
		r.resolveClass(d)
	}
}

func (r *resolver) resolveClass(d *ast.ClassDecl) {
	sym := r.model.classes[d.Name.Name]
	prevType := r.currentType
	r.currentType = sym

	for _, c := range d.Constants {
		if c.Value != nil {
			r.resolveExpr(c.Value)
		}
	}

	for _, p := range d.Properties {
		if p.Value != nil {
			r.resolveExpr(p.Value)
		}
		if p.ExprBody != nil {
			r.resolveExpr(p.ExprBody)
		}
		if p.Accessor != nil {
			if p.Accessor.GetBody != nil {
				r.pushScope()
				r.resolveBlock(p.Accessor.GetBody)
				r.popScope()
			}
			if p.Accessor.SetBody != nil {
				r.pushScope()
				r.scope.vars["value"] = &Symbol{Kind: KindParameter, Name: "value"}
				r.resolveBlock(p.Accessor.SetBody)
				r.popScope()
			}
			if p.Accessor.GetExpr != nil {
				r.resolveExpr(p.Accessor.GetExpr)
			}
			if p.Accessor.SetExpr != nil {
				r.pushScope()
				r.scope.vars["value"] = &Symbol{Kind: KindParameter, Name: "value"}
				r.resolveExpr(p.Accessor.SetExpr)
				r.popScope()
			}
		}
	}

	for _, ev := range d.Events {
		if ev.Accessor == nil {
			continue
		}
		if ev.Accessor.AddBody != nil {
			r.pushScope()
			r.scope.vars["value"] = &Symbol{Kind: KindParameter, Name: "value"}
			r.resolveBlock(ev.Accessor.AddBody)
			r.popScope()
		}
		if ev.Accessor.RemoveBody != nil {
			r.pushScope()
			r.scope.vars["value"] = &Symbol{Kind: KindParameter, Name: "value"}
			r.resolveBlock(ev.Accessor.RemoveBody)
			r.popScope()
		}
	}

	for _, m := range d.Methods {
		r.resolveMethod(m)
	}

	r.currentType = prevType
}

func (r *resolver) resolveMethod(m *ast.MethodDecl) {
	if m.Body == nil {
		return
	}
	msym := r.model.declaredSymbol[m]
	r.pushScope()
	for i, p := range m.Parameters {
		var psym *Symbol
		if msym != nil && i < len(msym.Parameters) {
			psym = msym.Parameters[i]
		} else {
			psym = &Symbol{Kind: KindParameter, Name: p.Name.Name, Decl: p}
		}
		r.scope.vars[p.Name.Name] = psym
		r.model.declaredSymbol[p] = psym
		if p.Default != nil {
			r.resolveExpr(p.Default)
		}
	}
	prevLabels := r.labels
	r.labels = make(map[string]bool)
	r.collectLabels(m.Body)
	r.resolveBlock(m.Body)
	r.labels = prevLabels
	r.popScope()
}

func (r *resolver) collectLabels(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.BlockStmt:
		for _, inner := range s.Statements {
			r.collectLabels(inner)
		}
	case *ast.LabeledStmt:
		r.labels[s.Label.Name] = true
		r.collectLabels(s.Stmt)
	case *ast.IfStmt:
		r.collectLabels(s.Then)
		for _, ei := range s.ElseIfs {
			r.collectLabels(ei.Body)
		}
		if s.Else != nil {
			r.collectLabels(s.Else)
		}
	case *ast.ForStmt:
		r.collectLabels(s.Body)
	case *ast.ForeachStmt:
		r.collectLabels(s.Body)
	case *ast.WhileStmt:
		r.collectLabels(s.Body)
	case *ast.DoWhileStmt:
		r.collectLabels(s.Body)
	case *ast.TryStmt:
		r.collectLabels(s.Try)
		for _, c := range s.Catches {
			r.collectLabels(c.Body)
		}
		if s.Finally != nil {
			r.collectLabels(s.Finally.Body)
		}
	}
}

func (r *resolver) resolveBlock(b *ast.BlockStmt) {
	if b == nil {
		return
	}
	r.pushScope()
	for _, stmt := range b.Statements {
		r.resolveStmt(stmt)
	}
	r.popScope()
}

func (r *resolver) resolveStmt(stmt ast.Statement) {
	switch s := stmt.(type) {
	case nil:
		return
	case *ast.BlockStmt:
		r.resolveBlock(s)
	case *ast.ExprStmt:
		r.resolveExpr(s.Expr)
	case *ast.VarDeclStmt:
		if s.Value != nil {
			r.resolveExpr(s.Value)
		}
		sym := &Symbol{Kind: KindLocal, Name: s.Name.Name, Decl: s}
		r.scope.vars[s.Name.Name] = sym
		r.model.declaredSymbol[s] = sym
		if s.Type != nil {
			r.model.typeOf[s.Name] = typeInfoFromNode(s.Type)
		}
	case *ast.MultiVarDeclStmt:
		r.resolveExpr(s.Value)
		for _, name := range s.Names {
			sym := &Symbol{Kind: KindLocal, Name: name.Name, Decl: s}
			r.scope.vars[name.Name] = sym
			r.model.declaredSymbol[name] = sym
		}
	case *ast.IfStmt:
		r.resolveExpr(s.Condition)
		r.resolveBlock(s.Then)
		for _, ei := range s.ElseIfs {
			r.resolveExpr(ei.Condition)
			r.resolveBlock(ei.Body)
		}
		if s.Else != nil {
			r.resolveBlock(s.Else)
		}
	case *ast.SwitchStmt:
		r.resolveExpr(s.Expr)
		r.resolveSwitchCases(s.Cases, s.Default)
	case *ast.ForStmt:
		r.pushScope()
		if s.Init != nil {
			r.resolveStmt(s.Init)
		}
		if s.Condition != nil {
			r.resolveExpr(s.Condition)
		}
		if s.Post != nil {
			r.resolveExpr(s.Post)
		}
		r.resolveBlock(s.Body)
		r.popScope()
	case *ast.ForeachStmt:
		r.resolveExpr(s.Iterable)
		r.pushScope()
		if s.Key != nil {
			ksym := &Symbol{Kind: KindLocal, Name: s.Key.Name, Decl: s}
			r.scope.vars[s.Key.Name] = ksym
			r.model.declaredSymbol[s.Key] = ksym
		}
		vsym := &Symbol{Kind: KindLocal, Name: s.Value.Name, Decl: s}
		r.scope.vars[s.Value.Name] = vsym
		r.model.declaredSymbol[s.Value] = vsym
		r.resolveBlock(s.Body)
		r.popScope()
	case *ast.WhileStmt:
		r.resolveExpr(s.Condition)
		r.resolveBlock(s.Body)
	case *ast.DoWhileStmt:
		r.resolveBlock(s.Body)
		r.resolveExpr(s.Condition)
	case *ast.BreakStmt, *ast.ContinueStmt:
	case *ast.ReturnStmt:
		for _, v := range s.Values {
			r.resolveExpr(v)
		}
	case *ast.TryStmt:
		r.resolveBlock(s.Try)
		for _, c := range s.Catches {
			r.pushScope()
			if c.Variable != nil {
				csym := &Symbol{Kind: KindLocal, Name: c.Variable.Name, Decl: c}
				r.scope.vars[c.Variable.Name] = csym
				r.model.declaredSymbol[c.Variable] = csym
			}
			r.resolveBlock(c.Body)
			r.popScope()
		}
		if s.Finally != nil {
			r.resolveBlock(s.Finally.Body)
		}
	case *ast.ThrowStmt:
		r.resolveExpr(s.Exception)
	case *ast.GotoStmt:
		if s.IsCase {
			r.resolveExpr(s.CaseValue)
		} else if !s.IsDefault {
			if !r.labels[s.Label.Name] {
				r.errorf(s.Pos(), "goto 引用了不存在的标签: %s", s.Label.Name)
			}
		}
	case *ast.LabeledStmt:
		r.resolveStmt(s.Stmt)
	case *ast.YieldStmt:
		if s.Value != nil {
			r.resolveExpr(s.Value)
		}
	case *ast.EchoStmt:
		r.resolveExpr(s.Value)
	}
}

func (r *resolver) resolveSwitchCases(cases []*ast.SwitchCase, def *ast.SwitchDefaultCase) {
	for _, c := range cases {
		for _, v := range c.Values {
			r.resolveExpr(v)
		}
		r.resolveCaseBody(c.Body)
	}
	if def != nil {
		r.resolveCaseBody(def.Body)
	}
}

func (r *resolver) resolveCaseBody(body interface{}) {
	switch b := body.(type) {
	case ast.Expression:
		r.resolveExpr(b)
	case []ast.Statement:
		r.pushScope()
		for _, stmt := range b {
			r.resolveStmt(stmt)
		}
		r.popScope()
	}
}

func typeInfoFromNode(t ast.TypeNode) *TypeInfo {
	switch tn := t.(type) {
	case *ast.SimpleType:
		return &TypeInfo{Name: tn.Name, IsValueType: isValueTypeName(tn.Name)}
	case *ast.NullableType:
		inner := typeInfoFromNode(tn.Inner)
		if inner == nil {
			inner = &TypeInfo{}
		}
		inner.IsNullable = true
		return inner
	case *ast.ClassType:
		return &TypeInfo{Name: tn.String()}
	case *ast.GenericType:
		info := &TypeInfo{Name: tn.BaseType.String(), IsGenericName: true}
		if len(tn.TypeArgs) > 0 {
			info.GenericArg = tn.TypeArgs[0].String()
		}
		return info
	default:
		if t == nil {
			return nil
		}
		return &TypeInfo{Name: t.String()}
	}
}

func isValueTypeName(name string) bool {
	switch name {
	case "int", "float", "bool", "double", "long", "char":
		return true
	default:
		return false
	}
}

// resolveExpr 解析一个表达式里出现的标识符/成员引用，并在可能时填充类型信息。
func (r *resolver) resolveExpr(expr ast.Expression) {
	if expr == nil {
		return
	}
	switch e := expr.(type) {
	case *ast.Identifier:
		if sym, ok := r.scope.lookup(e.Name); ok {
			r.model.symbolOf[e] = sym
			return
		}
		if r.currentType != nil {
			if members, ok := r.model.members[r.currentType.Name]; ok {
				if sym, ok := members[e.Name]; ok {
					r.model.symbolOf[e] = sym
				}
			}
		}
	case *ast.Variable:
		if sym, ok := r.scope.lookup(e.Name); ok {
			r.model.symbolOf[e] = sym
		}
	case *ast.ThisExpr, *ast.SelfExpr:
		if r.currentType != nil {
			r.model.typeOf[e] = &TypeInfo{Name: r.currentType.Name}
		}
	case *ast.ParentExpr:
	case *ast.IntegerLiteral:
		r.model.typeOf[e] = &TypeInfo{Name: "int", IsValueType: true}
	case *ast.FloatLiteral:
		r.model.typeOf[e] = &TypeInfo{Name: "float", IsValueType: true}
	case *ast.BoolLiteral:
		r.model.typeOf[e] = &TypeInfo{Name: "bool", IsValueType: true}
	case *ast.StringLiteral:
		r.model.typeOf[e] = &TypeInfo{Name: "string"}
	case *ast.NullLiteral:
		r.model.typeOf[e] = &TypeInfo{Name: "null", IsNullable: true}
	case *ast.InterpStringLiteral:
		for _, p := range e.Parts {
			r.resolveExpr(p)
		}
		r.model.typeOf[e] = &TypeInfo{Name: "string"}
	case *ast.ArrayLiteral:
		for _, el := range e.Elements {
			r.resolveExpr(el)
		}
	case *ast.MapLiteral:
		for _, p := range e.Pairs {
			r.resolveExpr(p.Key)
			r.resolveExpr(p.Value)
		}
	case *ast.SuperArrayLiteral:
		for _, el := range e.Elements {
			if el.Key != nil {
				r.resolveExpr(el.Key)
			}
			r.resolveExpr(el.Value)
		}
	case *ast.UnaryExpr:
		r.resolveExpr(e.Operand)
		if t := r.model.typeOf[e.Operand]; t != nil {
			r.model.typeOf[e] = t
		}
	case *ast.BinaryExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.IsExpr:
		r.resolveExpr(e.Expr)
		r.model.typeOf[e] = &TypeInfo{Name: "bool", IsValueType: true}
	case *ast.TernaryExpr:
		r.resolveExpr(e.Condition)
		r.resolveExpr(e.Then)
		r.resolveExpr(e.Else)
		if t := r.model.typeOf[e.Then]; t != nil {
			r.model.typeOf[e] = t
		}
	case *ast.AssignExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
		if t := r.model.typeOf[e.Right]; t != nil {
			r.model.typeOf[e.Left] = t
		}
	case *ast.RefArgExpr:
		r.resolveExpr(e.Value)
	case *ast.CallExpr:
		r.resolveExpr(e.Function)
		for _, a := range e.Arguments {
			r.resolveExpr(a)
		}
		for _, na := range e.NamedArguments {
			r.resolveExpr(na.Value)
		}
	case *ast.IndexExpr:
		r.resolveExpr(e.Object)
		r.resolveExpr(e.Index)
	case *ast.PropertyAccess:
		r.resolveExpr(e.Object)
		r.resolveMember(e.Object, e.Property)
	case *ast.MethodCall:
		r.resolveExpr(e.Object)
		r.resolveMember(e.Object, e.Method)
		for _, a := range e.Arguments {
			r.resolveExpr(a)
		}
		for _, na := range e.NamedArguments {
			r.resolveExpr(na.Value)
		}
	case *ast.SafePropertyAccess:
		r.resolveExpr(e.Object)
		r.resolveMember(e.Object, e.Property)
	case *ast.SafeMethodCall:
		r.resolveExpr(e.Object)
		r.resolveMember(e.Object, e.Method)
		for _, a := range e.Arguments {
			r.resolveExpr(a)
		}
	case *ast.NullCoalesceExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
		if t := r.model.typeOf[e.Right]; t != nil {
			r.model.typeOf[e] = t
		}
	case *ast.NonNullAssertExpr:
		r.resolveExpr(e.Expr)
		if t := r.model.typeOf[e.Expr]; t != nil {
			narrowed := *t
			narrowed.IsNullable = false
			r.model.typeOf[e] = &narrowed
		}
	case *ast.StaticAccess:
		if className, ok := classNameOf(e.Class); ok {
			if classSym, ok := r.model.classes[className]; ok {
				if members, ok := r.model.members[className]; ok {
					if ident, ok := e.Member.(*ast.Identifier); ok {
						if sym, ok := members[ident.Name]; ok {
							r.model.symbolOf[ident] = sym
						}
					}
				}
				r.model.typeOf[e] = &TypeInfo{Name: classSym.Name}
			}
		}
		if call, ok := e.Member.(*ast.CallExpr); ok {
			r.resolveExpr(call)
		}
	case *ast.NewExpr:
		r.model.typeOf[e] = &TypeInfo{Name: e.ClassName.Name}
		for _, a := range e.Arguments {
			r.resolveExpr(a)
		}
		for _, na := range e.NamedArguments {
			r.resolveExpr(na.Value)
		}
	case *ast.ClosureExpr:
		r.pushScope()
		for _, p := range e.Parameters {
			psym := &Symbol{Kind: KindParameter, Name: p.Name.Name, Decl: p}
			r.scope.vars[p.Name.Name] = psym
			r.model.declaredSymbol[p] = psym
		}
		for _, uv := range e.UseVars {
			if sym, ok := r.scope.parent.lookup(uv.Name); ok {
				r.scope.vars[uv.Name] = sym
			}
		}
		r.resolveBlock(e.Body)
		r.popScope()
	case *ast.ArrowFuncExpr:
		r.pushScope()
		for _, p := range e.Parameters {
			psym := &Symbol{Kind: KindParameter, Name: p.Name.Name, Decl: p}
			r.scope.vars[p.Name.Name] = psym
			r.model.declaredSymbol[p] = psym
		}
		r.resolveExpr(e.Body)
		r.popScope()
	case *ast.ClassAccessExpr:
	case *ast.TypeCastExpr:
		r.resolveExpr(e.Expr)
		r.model.typeOf[e] = typeInfoFromNode(e.TargetType)
	case *ast.MatchExpr:
		r.resolveExpr(e.Expr)
		for _, c := range e.Cases {
			if c.Body != nil {
				r.resolveExpr(c.Body)
			}
		}
	case *ast.SwitchExpr:
		r.resolveExpr(e.Expr)
		r.resolveSwitchCases(e.Cases, e.Default)
	}
}

func classNameOf(e ast.Expression) (string, bool) {
	if ident, ok := e.(*ast.Identifier); ok {
		return ident.Name, true
	}
	return "", false
}

// resolveMember 尝试基于已知的 receiver 类型解析成员访问到具体符号。
func (r *resolver) resolveMember(receiver ast.Expression, member *ast.Identifier) {
	recvType := r.model.typeOf[receiver]
	if recvType == nil {
		return
	}
	members, ok := r.model.members[recvType.Name]
	if !ok {
		return
	}
	sym, ok := members[member.Name]
	if !ok {
		return
	}
	r.model.symbolOf[member] = sym
	if sym.Kind == KindMethod && !sym.ReturnsVoid {
		return
	}
}
