package lower

import (
	"fmt"

	"github.com/novalang/novalua/internal/ast"
	"github.com/novalang/novalua/internal/dtlast"
	"github.com/novalang/novalua/internal/semantic"
)

// ---------------------------------------------------------------------------
// 参数列表 (4.6 尾段)
// ---------------------------------------------------------------------------

// paramNames 把一组形参展开为名字列表，供 FuncLit.Params 使用。
func paramNames(params []*ast.Parameter) []string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name.Name
	}
	return names
}

// paramDefaultStmts 为带默认值的形参在函数体起始处合成 `if p == nil then p = default end`，
// DTL 的函数调用不做实参个数检查，缺省实参到达函数体内部时恒为 nil。
func (t *Transformer) paramDefaultStmts(params []*ast.Parameter) []dtlast.Statement {
	var stmts []dtlast.Statement
	for _, p := range params {
		if p.Default == nil {
			continue
		}
		name := p.Name.Name
		cond := &dtlast.BinaryExpr{Left: &dtlast.Ident{Name: name}, Op: "==", Right: &dtlast.Literal{Kind: dtlast.LiteralNil}}
		assign := &dtlast.ExprStmt{Expr: &dtlast.AssignExpr{Left: &dtlast.Ident{Name: name}, Right: t.lowerExpr(p.Default)}}
		stmts = append(stmts, &dtlast.IfStmt{Cond: cond, Then: &dtlast.Block{Statements: []dtlast.Statement{assign}}})
	}
	return stmts
}

// ---------------------------------------------------------------------------
// 语句级表达式入口
// ---------------------------------------------------------------------------

// lowerExprStatement 把一条表达式语句降级并发射，特殊处理增量与携带 ref/out 实参的调用——
// 两者都需要在语句位置合成额外语句，而不是产出一个可以内联复用的表达式值。
func (t *Transformer) lowerExprStatement(e ast.Expression) {
	switch ex := e.(type) {
	case *ast.UnaryExpr:
		if isIncrementOp(ex.Operator.Literal) {
			t.emit(&dtlast.ExprStmt{Expr: t.lowerIncrementAssign(ex)})
			return
		}
	case *ast.CallExpr:
		if hasRefOutArg(ex.Arguments) {
			t.lowerRefOutCallStatement(ex)
			return
		}
	case *ast.MethodCall:
		if hasRefOutArg(ex.Arguments) {
			t.lowerRefOutMethodCallStatement(ex)
			return
		}
	}
	t.emit(&dtlast.ExprStmt{Expr: t.lowerExpr(e)})
}

func isIncrementOp(op string) bool { return op == "++" || op == "--" }

func hasRefOutArg(args []ast.Expression) bool {
	for _, a := range args {
		if _, ok := a.(*ast.RefArgExpr); ok {
			return true
		}
	}
	return false
}

// ---------------------------------------------------------------------------
// 自增/自减 (4.9 尾段)
// ---------------------------------------------------------------------------

// lowerIncrementAssign 把 ++x / x++ 统一降级为一次赋值表达式 x = x + 1，
// 前缀/后缀在语句位置语义相同；表达式位置的前后缀差异在 lowerExpr 里单独处理。
func (t *Transformer) lowerIncrementAssign(ex *ast.UnaryExpr) dtlast.Expression {
	target := t.lowerExpr(ex.Operand)
	op := "+"
	if ex.Operator.Literal == "--" {
		op = "-"
	}
	return &dtlast.AssignExpr{
		Left:  target,
		Right: &dtlast.BinaryExpr{Left: target, Op: op, Right: &dtlast.Literal{Kind: dtlast.LiteralNumeric, Raw: "1"}},
	}
}

// ---------------------------------------------------------------------------
// 裸标识符分派 (4.9 Identifier)
// ---------------------------------------------------------------------------

func typeNameOf(sym *semantic.Symbol) string {
	if sym.ContainingType != nil {
		return sym.ContainingType.Name
	}
	return ""
}

// lowerBareName 解析一个裸标识符/变量的使用点并按符号种类分派。
// 这棵语法树里成员访问的右侧从不作为独立的 Identifier 节点过 lowerExpr——
// PropertyAccess/MethodCall 直接持有 *ast.Identifier 的字符串字段，由
// lowerMemberAccess 系列函数直接消费。于是这里处理的永远是 spec 4.9
// 所称的"内部节点"（IsInternalNode 恒真）使用。
func (t *Transformer) lowerBareName(node ast.Node, name string) dtlast.Expression {
	sym := t.model.SymbolOf(node)
	if sym == nil {
		return &dtlast.Ident{Name: name}
	}
	switch sym.Kind {
	case semantic.KindLocal, semantic.KindParameter, semantic.KindTypeParameter, semantic.KindLabel:
		return &dtlast.Ident{Name: sym.Name}
	case semantic.KindNamedType:
		return &dtlast.Ident{Name: t.metadata.TypeMapName(sym.Name)}
	case semantic.KindField:
		return t.lowerFieldIdent(sym, true)
	case semantic.KindMethod:
		return t.getMethodNameExpression(sym, true)
	case semantic.KindProperty, semantic.KindEvent:
		return t.visitFieldOrEventIdentifierName(sym, true)
	default:
		t.raiseUnsupported(node, "未知符号种类的标识符: "+name)
		return nil
	}
}

// lowerFieldIdent 实现 BuildStaticFieldName 与常量内联规则 (4.7/4.9)。
func (t *Transformer) lowerFieldIdent(sym *semantic.Symbol, bare bool) dtlast.Expression {
	if sym.HasConstantValue {
		return t.constLiteral(sym.ConstantValue)
	}
	if sym.IsStatic {
		return t.buildStaticFieldName(sym, bare)
	}
	if bare {
		return &dtlast.MemberAccess{Object: &dtlast.Ident{Name: "this"}, Name: sym.Name}
	}
	return &dtlast.Ident{Name: sym.Name}
}

// buildStaticFieldName 按 4.7 节规则构造一个静态字段的读取表达式：
// 私有字段走裸名字（同一类型体内，不可能跨类型访问私有成员）；
// 只读（final）字段同样恒定走裸名字（作为赋值目标时由 noteStaticReadOnlyTarget
// 另行记录）；静态构造函数体内对非只读字段的访问走 this.Name；
// 其余情形下，裸标识符用法（未写在某个成员访问的 .Name 位置）走
// TypeName.Name 的完整路径，成员访问的 .Name 位置则走裸名字。
func (t *Transformer) buildStaticFieldName(sym *semantic.Symbol, bare bool) dtlast.Expression {
	if sym.DeclaredAccessibility == semantic.AccessPrivate || sym.IsReadOnly {
		return &dtlast.Ident{Name: sym.Name}
	}
	if fc := t.curFunc(); fc != nil && fc.isStaticCtor {
		return &dtlast.MemberAccess{Object: &dtlast.Ident{Name: "this"}, Name: sym.Name}
	}
	if bare {
		return &dtlast.MemberAccess{Object: &dtlast.Ident{Name: typeNameOf(sym)}, Name: sym.Name}
	}
	return &dtlast.Ident{Name: sym.Name}
}

// getMethodNameExpression 实现 4.9 节的方法名表达式规则：静态方法套元数据改名，
// 非静态方法在裸使用时区分可晚绑定重写（this.Name）与密封/非虚（internal-method
// 标记，绑定到当前 this 且不经过晚绑定查找）。
func (t *Transformer) getMethodNameExpression(sym *semantic.Symbol, bare bool) dtlast.Expression {
	if sym.IsStatic {
		return &dtlast.Ident{Name: t.metadata.MethodMapName(typeNameOf(sym), sym.Name)}
	}
	if !bare {
		return &dtlast.Ident{Name: sym.Name}
	}
	sealed := !sym.IsOverridable
	if ct := t.curType(); ct != nil && ct.final {
		sealed = true
	}
	if sealed {
		return &dtlast.InternalMethodIdent{Name: sym.Name}
	}
	return &dtlast.MemberAccess{Object: &dtlast.Ident{Name: "this"}, Name: sym.Name, ColonCall: true}
}

// visitFieldOrEventIdentifierName 实现 4.7 尾段描述的属性/事件裸标识符规则：
// 自动属性/自动事件字段走字段规则；访问器支撑的成员产出属性适配器，裸使用时
// 按是否可晚绑定重写决定用 this:Name(...) 还是 Name(this) 的调用形状。
func (t *Transformer) visitFieldOrEventIdentifierName(sym *semantic.Symbol, bare bool) dtlast.Expression {
	if sym.IsAutoProperty || sym.IsEventField {
		return t.lowerFieldIdent(sym, bare)
	}
	adapter := &dtlast.PropertyAdapter{Name: sym.Name, IsGet: true}
	if !bare {
		return adapter
	}
	sealed := !sym.IsOverridable
	if ct := t.curType(); ct != nil && ct.final {
		sealed = true
	}
	if sealed {
		adapter.Invocation = &dtlast.Invocation{Callee: &dtlast.Ident{Name: sym.Name}, Args: []dtlast.Expression{&dtlast.Ident{Name: "this"}}}
	} else {
		adapter.Receiver = &dtlast.Ident{Name: "this"}
		adapter.Invocation = &dtlast.Invocation{Callee: &dtlast.Ident{Name: sym.Name}}
	}
	return adapter
}

// constLiteral 把一个常量符号的源文本值重新包装成字面量节点。
func (t *Transformer) constLiteral(raw string) dtlast.Expression {
	switch raw {
	case "true", "false":
		return &dtlast.Ident{Name: raw}
	case "null":
		return &dtlast.Literal{Kind: dtlast.LiteralNil}
	default:
		if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
			return &dtlast.Literal{Kind: dtlast.LiteralString, Raw: raw}
		}
		return &dtlast.Literal{Kind: dtlast.LiteralNumeric, Raw: raw}
	}
}

// ---------------------------------------------------------------------------
// 成员访问 (4.9 Member access)
// ---------------------------------------------------------------------------

// lowerPropertyAccess 处理 obj->Name 形式的成员读取。
func (t *Transformer) lowerPropertyAccess(pa *ast.PropertyAccess) dtlast.Expression {
	obj := t.lowerExpr(pa.Object)
	sym := t.model.SymbolOf(pa.Property)
	if sym == nil {
		return &dtlast.MemberAccess{Object: obj, Name: pa.Property.Name}
	}
	switch sym.Kind {
	case semantic.KindProperty, semantic.KindEvent:
		name := t.visitFieldOrEventIdentifierName(sym, false)
		adapter, ok := name.(*dtlast.PropertyAdapter)
		if !ok {
			return name
		}
		adapter.Receiver = obj
		adapter.Invocation = &dtlast.Invocation{Callee: &dtlast.Ident{Name: adapter.Name}}
		return adapter
	case semantic.KindField:
		if sym.HasConstantValue {
			return t.constLiteral(sym.ConstantValue)
		}
		return &dtlast.MemberAccess{Object: obj, Name: sym.Name}
	case semantic.KindMethod:
		name := sym.Name
		if sym.IsStatic {
			name = t.metadata.MethodMapName(typeNameOf(sym), sym.Name)
		}
		return &dtlast.MemberAccess{Object: obj, Name: name, ColonCall: !sym.IsStatic}
	default:
		return &dtlast.MemberAccess{Object: obj, Name: pa.Property.Name}
	}
}

// lowerMethodCallTarget 构造一次方法调用的 Callee+Args，供 MethodCall 与 ref/out 改写共用。
func (t *Transformer) lowerMethodCallTarget(mc *ast.MethodCall) (callee dtlast.Expression, colon bool) {
	obj := t.lowerExpr(mc.Object)
	sym := t.model.SymbolOf(mc.Method)
	name := mc.Method.Name
	colon = true
	if sym != nil {
		if sym.IsStatic {
			name = t.metadata.MethodMapName(typeNameOf(sym), sym.Name)
			colon = false
		} else {
			name = sym.Name
		}
	}
	return &dtlast.MemberAccess{Object: obj, Name: name, ColonCall: colon}, colon
}

// ---------------------------------------------------------------------------
// 调用 (4.9 Invocation)
// ---------------------------------------------------------------------------

// lowerCallExpr 降级一次自由/同类型调用，处理内部方法标记的 this 前置、
// 扩展方法的 receiver 前置，以及泛型实参的元数据补位。
func (t *Transformer) lowerCallExpr(ce *ast.CallExpr) dtlast.Expression {
	callee := t.lowerExpr(ce.Function)
	var prefix []dtlast.Expression
	if _, ok := callee.(*dtlast.InternalMethodIdent); ok {
		prefix = append(prefix, &dtlast.Ident{Name: "this"})
	}
	if sym := t.model.SymbolOf(funcIdentOf(ce.Function)); sym != nil && sym.IsExtensionMethod {
		if len(ce.Arguments) > 0 {
			prefix = append(prefix, t.lowerExpr(ce.Arguments[0]))
		}
	}
	args := t.lowerCallArgs(ce.Arguments, prefix)
	args = t.padGenericArgs(sym(t, funcIdentOf(ce.Function)), ce.Function, args)
	return &dtlast.Invocation{Callee: callee, Args: args}
}

func funcIdentOf(e ast.Expression) ast.Node {
	switch n := e.(type) {
	case *ast.Identifier:
		return n
	case *ast.Variable:
		return n
	default:
		return nil
	}
}

func sym(t *Transformer, node ast.Node) *semantic.Symbol {
	if node == nil {
		return nil
	}
	return t.model.SymbolOf(node)
}

// padGenericArgs 实现 4.9 节描述的泛型实参补位：调用点符号携带 TypeArguments 时，
// 把经过元数据改名的类型实参追加到实参列表末尾（扩展方法已经消费了 receiver，
// 泛型补位仍然作用于原始实参列表之后）。
func (t *Transformer) padGenericArgs(callSym *semantic.Symbol, _ ast.Expression, args []dtlast.Expression) []dtlast.Expression {
	if callSym == nil || len(callSym.TypeArguments) == 0 {
		return args
	}
	for _, ta := range callSym.TypeArguments {
		args = append(args, &dtlast.Ident{Name: t.metadata.TypeMapName(ta)})
	}
	return args
}

// lowerCallArgs 把位置实参按序降级，跳过 ref/out 标记参数（那些由语句级的
// multi-assign 改写单独处理，参见 lowerRefOutCallStatement）。ref 实参仍然
// 以当前值传入，out 实参完全从实参列表中移除。
func (t *Transformer) lowerCallArgs(args []ast.Expression, prefix []dtlast.Expression) []dtlast.Expression {
	out := append([]dtlast.Expression{}, prefix...)
	for _, a := range args {
		if ra, ok := a.(*ast.RefArgExpr); ok {
			if ra.Out {
				continue
			}
			out = append(out, t.lowerExpr(ra.Value))
			continue
		}
		out = append(out, t.lowerExpr(a))
	}
	return out
}

// refOutTargets 收集一个实参列表里 ref/out 标记参数的赋值目标，按原始顺序排列。
func (t *Transformer) refOutTargets(args []ast.Expression) []dtlast.Expression {
	var targets []dtlast.Expression
	for _, a := range args {
		if ra, ok := a.(*ast.RefArgExpr); ok {
			targets = append(targets, t.lowerExpr(ra.Value))
		}
	}
	return targets
}

// lowerRefOutCallStatement 实现 4.9 节对携带 ref/out 实参的调用在语句位置的改写：
// local t1; t1, v1, v2 = invocation(...)，returnsVoid 的调用省略 t1 声明与目标。
func (t *Transformer) lowerRefOutCallStatement(ce *ast.CallExpr) {
	callee := t.lowerExpr(ce.Function)
	callSym := sym(t, funcIdentOf(ce.Function))
	args := t.lowerCallArgs(ce.Arguments, nil)
	args = t.padGenericArgs(callSym, ce.Function, args)
	invocation := dtlast.Expression(&dtlast.Invocation{Callee: callee, Args: args})

	targets := t.refOutTargets(ce.Arguments)
	if callSym != nil && callSym.ReturnsVoid {
		t.emit(&dtlast.ExprStmt{Expr: &dtlast.MultiAssignExpr{Targets: targets, Value: invocation}})
		return
	}
	temp := t.freshTemp(ce)
	t.emit(&dtlast.LocalVars{Names: []string{temp}})
	allTargets := append([]dtlast.Expression{&dtlast.Ident{Name: temp}}, targets...)
	t.emit(&dtlast.ExprStmt{Expr: &dtlast.MultiAssignExpr{Targets: allTargets, Value: invocation}})
}

func (t *Transformer) lowerRefOutMethodCallStatement(mc *ast.MethodCall) {
	callee, _ := t.lowerMethodCallTarget(mc)
	methodSym := t.model.SymbolOf(mc.Method)
	args := t.lowerCallArgs(mc.Arguments, nil)
	invocation := dtlast.Expression(&dtlast.Invocation{Callee: callee, Args: args})

	targets := t.refOutTargets(mc.Arguments)
	if methodSym != nil && methodSym.ReturnsVoid {
		t.emit(&dtlast.ExprStmt{Expr: &dtlast.MultiAssignExpr{Targets: targets, Value: invocation}})
		return
	}
	temp := t.freshTemp(mc)
	t.emit(&dtlast.LocalVars{Names: []string{temp}})
	allTargets := append([]dtlast.Expression{&dtlast.Ident{Name: temp}}, targets...)
	t.emit(&dtlast.ExprStmt{Expr: &dtlast.MultiAssignExpr{Targets: allTargets, Value: invocation}})
}

// lowerRefOutExpr 处理出现在表达式上下文（非语句位置）的 ref/out 调用：先在当前块
// 合成一个临时变量与 multi-assign 语句，再把临时变量的引用原地替换为表达式值。
func (t *Transformer) lowerRefOutExpr(ce *ast.CallExpr) dtlast.Expression {
	callee := t.lowerExpr(ce.Function)
	callSym := sym(t, funcIdentOf(ce.Function))
	args := t.lowerCallArgs(ce.Arguments, nil)
	args = t.padGenericArgs(callSym, ce.Function, args)
	invocation := dtlast.Expression(&dtlast.Invocation{Callee: callee, Args: args})

	temp := t.freshTemp(ce)
	targets := t.refOutTargets(ce.Arguments)
	t.emit(&dtlast.LocalVars{Names: []string{temp}})
	allTargets := append([]dtlast.Expression{&dtlast.Ident{Name: temp}}, targets...)
	t.emit(&dtlast.ExprStmt{Expr: &dtlast.MultiAssignExpr{Targets: allTargets, Value: invocation}})
	return &dtlast.Ident{Name: temp}
}

// lowerMethodCallExpr 降级一次方法调用表达式（非语句位置，不含 ref/out）。
func (t *Transformer) lowerMethodCallExpr(mc *ast.MethodCall) dtlast.Expression {
	callee, _ := t.lowerMethodCallTarget(mc)
	args := t.lowerCallArgs(mc.Arguments, nil)
	return &dtlast.Invocation{Callee: callee, Args: args}
}

// ---------------------------------------------------------------------------
// 赋值 (4.9 Assignment，含链式)
// ---------------------------------------------------------------------------

// lowerAssignExpr 处理一次（可能是复合）赋值。复合赋值运算符（+=、-= 等）
// 展开为 target = target OP value；简单赋值直接降级左右两侧。
func (t *Transformer) lowerAssignExpr(ae *ast.AssignExpr) dtlast.Expression {
	t.noteStaticReadOnlyTarget(ae.Left)
	left := t.lowerExpr(ae.Left)
	if ae.Operator.Literal == "=" {
		return &dtlast.AssignExpr{Left: left, Right: t.lowerExpr(ae.Right)}
	}
	op := remapOperator(compoundBaseOp(ae.Operator.Literal))
	return &dtlast.AssignExpr{Left: left, Right: &dtlast.BinaryExpr{Left: left, Op: op, Right: t.lowerExpr(ae.Right)}}
}

func compoundBaseOp(op string) string {
	if len(op) >= 2 && op[len(op)-1] == '=' {
		return op[:len(op)-1]
	}
	return op
}

// noteStaticReadOnlyTarget 记录一次对非私有只读静态字段的赋值：把字段名追加到
// 当前类型声明的 StaticReadOnlyAssignmentNames。
func (t *Transformer) noteStaticReadOnlyTarget(left ast.Expression) {
	node, name := bareNameNode(left)
	if node == nil {
		return
	}
	sym := t.model.SymbolOf(node)
	if sym == nil || sym.Kind != semantic.KindField || !sym.IsStatic || !sym.IsReadOnly {
		return
	}
	if sym.DeclaredAccessibility == semantic.AccessPrivate {
		return
	}
	if ct := t.curType(); ct != nil {
		ct.decl.StaticReadOnlyAssignmentNames = append(ct.decl.StaticReadOnlyAssignmentNames, name)
	}
}

func bareNameNode(e ast.Expression) (ast.Node, string) {
	switch n := e.(type) {
	case *ast.Identifier:
		return n, n.Name
	case *ast.Variable:
		return n, n.Name
	default:
		return nil, ""
	}
}

// lowerChainedAssign 实现右结合链式赋值 a = b = c = 0 的展开：先沿 Right 链
// 一路下钻收集每一环的 (Left, 最终值)，再反转成从右到左的顺序（最内层的目标
// 在前），产出一个逗号多重赋值 c, b, a = 0, 0, 0。
func (t *Transformer) lowerChainedAssign(ae *ast.AssignExpr) dtlast.Expression {
	var lefts []ast.Expression
	cur := ast.Expression(ae)
	var finalValue ast.Expression
	for {
		inner, ok := cur.(*ast.AssignExpr)
		if !ok || inner.Operator.Literal != "=" {
			finalValue = cur
			break
		}
		lefts = append(lefts, inner.Left)
		cur = inner.Right
	}
	valueExpr := t.lowerExpr(finalValue)
	links := make([]*dtlast.AssignExpr, len(lefts))
	for i := len(lefts) - 1; i >= 0; i-- {
		t.noteStaticReadOnlyTarget(lefts[i])
		links[len(lefts)-1-i] = &dtlast.AssignExpr{Left: t.lowerExpr(lefts[i]), Right: valueExpr}
	}
	return &dtlast.LineMultipleExpr{Links: links}
}

func isChainedAssign(ae *ast.AssignExpr) bool {
	if ae.Operator.Literal != "=" {
		return false
	}
	_, ok := ae.Right.(*ast.AssignExpr)
	return ok
}

// ---------------------------------------------------------------------------
// 三元表达式 (4.9 Ternary)
// ---------------------------------------------------------------------------

// lowerTernary 实现假值感知的三元展开：DTL 里 and/or 链在 then 分支可能为
// nil/false 时会错误地跳到 else 分支，这种情况下先在当前块声明一个临时变量，
// 再发射一条在两个分支里分别给它赋值的 if/else，以临时变量作为表达式的值；
// 其余情况直接用 cond and then or else 的惯用写法。
func (t *Transformer) lowerTernary(te *ast.TernaryExpr) dtlast.Expression {
	cond := t.lowerExpr(te.Condition)
	thenInfo := t.model.TypeOf(te.Then)
	if !thenInfo.IsBoolOrNullable() {
		return &dtlast.BinaryExpr{
			Left: &dtlast.BinaryExpr{Left: cond, Op: "and", Right: t.lowerExpr(te.Then)},
			Op:   "or",
			Right: t.lowerExpr(te.Else),
		}
	}
	temp := t.freshTemp(te)
	t.emit(&dtlast.LocalVar{Name: temp})
	thenBlock := &dtlast.Block{Statements: []dtlast.Statement{&dtlast.ExprStmt{Expr: &dtlast.AssignExpr{Left: &dtlast.Ident{Name: temp}, Right: t.lowerExpr(te.Then)}}}}
	elseBlock := &dtlast.Block{Statements: []dtlast.Statement{&dtlast.ExprStmt{Expr: &dtlast.AssignExpr{Left: &dtlast.Ident{Name: temp}, Right: t.lowerExpr(te.Else)}}}}
	t.emit(&dtlast.IfStmt{Cond: cond, Then: thenBlock, Else: elseBlock})
	return &dtlast.Ident{Name: temp}
}

// ---------------------------------------------------------------------------
// 字面量/容器字面量
// ---------------------------------------------------------------------------

func (t *Transformer) lowerTableLiteral(elements []ast.Expression) dtlast.Expression {
	entries := make([]dtlast.TableEntry, len(elements))
	for i, el := range elements {
		entries[i] = dtlast.TableEntry{Value: t.lowerExpr(el)}
	}
	return &dtlast.TableLiteral{Entries: entries}
}

func (t *Transformer) lowerMapLiteral(pairs []ast.MapPair) dtlast.Expression {
	entries := make([]dtlast.TableEntry, len(pairs))
	for i, p := range pairs {
		entries[i] = dtlast.TableEntry{Key: t.lowerExpr(p.Key), Value: t.lowerExpr(p.Value)}
	}
	return &dtlast.TableLiteral{Entries: entries}
}

func (t *Transformer) lowerSuperArrayLiteral(elements []ast.SuperArrayElement) dtlast.Expression {
	entries := make([]dtlast.TableEntry, len(elements))
	for i, el := range elements {
		var key dtlast.Expression
		if el.Key != nil {
			key = t.lowerExpr(el.Key)
		}
		entries[i] = dtlast.TableEntry{Key: key, Value: t.lowerExpr(el.Value)}
	}
	return &dtlast.TableLiteral{Entries: entries}
}

// lowerInterpString 把插值字符串降级为 ".." 连接链，非字符串字面量部分包一层 tostring(...)。
func (t *Transformer) lowerInterpString(parts []ast.Expression) dtlast.Expression {
	var chain dtlast.Expression
	for _, p := range parts {
		var part dtlast.Expression
		if _, ok := p.(*ast.StringLiteral); ok {
			part = t.lowerExpr(p)
		} else {
			part = &dtlast.Invocation{Callee: &dtlast.Ident{Name: "tostring"}, Args: []dtlast.Expression{t.lowerExpr(p)}}
		}
		if chain == nil {
			chain = part
		} else {
			chain = &dtlast.BinaryExpr{Left: chain, Op: "..", Right: part}
		}
	}
	if chain == nil {
		return &dtlast.Literal{Kind: dtlast.LiteralString, Raw: `""`}
	}
	return chain
}

// ---------------------------------------------------------------------------
// 静态访问/self/parent (4.9)
// ---------------------------------------------------------------------------

func (t *Transformer) lowerStaticAccess(sa *ast.StaticAccess) dtlast.Expression {
	classExpr := t.lowerStaticClassRef(sa.Class)
	switch m := sa.Member.(type) {
	case *ast.Identifier:
		sym := t.model.SymbolOf(m)
		if sym != nil && sym.HasConstantValue {
			return t.constLiteral(sym.ConstantValue)
		}
		return &dtlast.MemberAccess{Object: classExpr, Name: m.Name}
	case *ast.Variable:
		return &dtlast.MemberAccess{Object: classExpr, Name: m.Name}
	case *ast.CallExpr:
		args := t.lowerCallArgs(m.Arguments, nil)
		name := funcNameOf(m.Function)
		callSym := sym(t, funcIdentOf(m.Function))
		args = t.padGenericArgs(callSym, m.Function, args)
		return &dtlast.Invocation{Callee: &dtlast.MemberAccess{Object: classExpr, Name: name}, Args: args}
	default:
		t.raiseUnsupported(sa, fmt.Sprintf("静态访问成员 %T", sa.Member))
		return nil
	}
}

func funcNameOf(e ast.Expression) string {
	if id, ok := e.(*ast.Identifier); ok {
		return id.Name
	}
	return ""
}

func (t *Transformer) lowerStaticClassRef(e ast.Expression) dtlast.Expression {
	switch n := e.(type) {
	case *ast.Identifier:
		return &dtlast.Ident{Name: t.metadata.TypeMapName(n.Name)}
	case *ast.SelfExpr:
		if ct := t.curType(); ct != nil {
			return &dtlast.Ident{Name: ct.name}
		}
		t.raiseInvariant(n, "self 出现在类型上下文之外")
	case *ast.ParentExpr:
		if ct := t.curType(); ct != nil && len(ct.decl.BaseTypes) > 0 {
			return &dtlast.Ident{Name: ct.decl.BaseTypes[0]}
		}
		t.raiseInvariant(n, "parent 出现在没有基类型的上下文中")
	}
	return nil
}

// ---------------------------------------------------------------------------
// switch/match 表达式 (4.9/4.10 — 复用 SwitchAdapter 机制)
// ---------------------------------------------------------------------------

// lowerSwitchExpr 把 switch 表达式包进一个立即调用的闭包，复用语句形式的
// SwitchAdapter 降级——各分支体在表达式形式下本就以 return 收尾。
func (t *Transformer) lowerSwitchExpr(subject ast.Expression, cases []*ast.SwitchCase, def *ast.SwitchDefaultCase) dtlast.Expression {
	body := &dtlast.Block{}
	t.pushBlock(body)
	adapter := t.lowerSwitch(subject, cases, def)
	t.popBlock()
	body.Statements = append(body.Statements, adapter)
	fn := &dtlast.FuncLitExpr{Lit: &dtlast.FuncLit{Body: body}}
	return &dtlast.Invocation{Callee: &dtlast.ParenExpr{Inner: fn}}
}

// lowerMatchExpr 把模式匹配表达式降级为一个立即调用闭包里的 if/elseif 链：
// 类型模式用 System.IsInstance 做标签测试（可选绑定变量），值模式用相等比较，
// 通配符恒真，守卫条件与模式条件用 and 组合。
func (t *Transformer) lowerMatchExpr(me *ast.MatchExpr) dtlast.Expression {
	temp := t.freshTemp(me)
	body := &dtlast.Block{}
	t.pushBlock(body)
	t.emit(&dtlast.LocalVar{Name: temp, Value: t.lowerExpr(me.Expr)})

	root := t.lowerMatchCases(me.Cases, 0, temp)
	if root != nil {
		t.emit(root)
	}
	t.popBlock()

	fn := &dtlast.FuncLitExpr{Lit: &dtlast.FuncLit{Body: body}}
	return &dtlast.Invocation{Callee: &dtlast.ParenExpr{Inner: fn}}
}

func (t *Transformer) lowerMatchCases(cases []*ast.MatchCase, idx int, subjectTemp string) dtlast.Statement {
	if idx >= len(cases) {
		return nil
	}
	c := cases[idx]
	cond, bind := t.lowerMatchPattern(c.Pattern, subjectTemp)

	thenBlock := &dtlast.Block{}
	t.pushBlock(thenBlock)
	if bind != "" {
		t.emit(&dtlast.LocalVar{Name: bind, Value: &dtlast.Ident{Name: subjectTemp}})
	}
	t.emit(&dtlast.ReturnStmt{Values: []dtlast.Expression{t.lowerExpr(c.Body)}})
	t.popBlock()

	if c.Guard != nil {
		cond = &dtlast.BinaryExpr{Left: cond, Op: "and", Right: t.lowerExpr(c.Guard)}
	}

	stmt := &dtlast.IfStmt{Cond: cond, Then: thenBlock}
	if rest := t.lowerMatchCases(cases, idx+1, subjectTemp); rest != nil {
		stmt.Else = rest
	}
	return stmt
}

func (t *Transformer) lowerMatchPattern(p ast.Pattern, subjectTemp string) (cond dtlast.Expression, bind string) {
	switch pat := p.(type) {
	case *ast.WildcardPattern:
		return &dtlast.Ident{Name: "true"}, ""
	case *ast.ValuePattern:
		return &dtlast.BinaryExpr{Left: &dtlast.Ident{Name: subjectTemp}, Op: "==", Right: t.lowerExpr(pat.Value)}, ""
	case *ast.TypePattern:
		typeName := simpleTypeName(pat.Type)
		call := &dtlast.Invocation{
			Callee: &dtlast.Ident{Name: "System.IsInstance"},
			Args:   []dtlast.Expression{&dtlast.Ident{Name: subjectTemp}, &dtlast.Literal{Kind: dtlast.LiteralString, Raw: fmt.Sprintf("%q", typeName)}},
		}
		if pat.Variable != nil {
			return call, pat.Variable.Name
		}
		return call, ""
	default:
		t.raiseUnsupported(p, fmt.Sprintf("匹配模式 %T", p))
		return nil, ""
	}
}

// ---------------------------------------------------------------------------
// 安全导航 / 类型转换 / 非空断言 / ::class (SUPPLEMENTED FEATURES)
// ---------------------------------------------------------------------------

// lowerSafePropertyAccess 用短路惯用写法模拟单层 nil 传播：obj?.prop
// 降级为 obj and obj.prop（不做多级链式传播，简化记录见 DESIGN.md）。
func (t *Transformer) lowerSafePropertyAccess(e *ast.SafePropertyAccess) dtlast.Expression {
	obj := t.lowerExpr(e.Object)
	access := t.lowerPropertyAccess(&ast.PropertyAccess{Object: e.Object, Property: e.Property})
	return &dtlast.BinaryExpr{Left: obj, Op: "and", Right: access}
}

func (t *Transformer) lowerSafeMethodCall(e *ast.SafeMethodCall) dtlast.Expression {
	obj := t.lowerExpr(e.Object)
	call := t.lowerMethodCallExpr(&ast.MethodCall{Object: e.Object, Method: e.Method, Arguments: e.Arguments, NamedArguments: e.NamedArguments})
	return &dtlast.BinaryExpr{Left: obj, Op: "and", Right: call}
}

// lowerNonNullAssert 把 expr!! 降级为一次运行时非空检查调用。
func (t *Transformer) lowerNonNullAssert(e *ast.NonNullAssertExpr) dtlast.Expression {
	return &dtlast.Invocation{Callee: &dtlast.Ident{Name: "System.AssertNotNil"}, Args: []dtlast.Expression{t.lowerExpr(e.Expr)}}
}

// lowerTypeCast 处理 as/as?：DTL 是动态类型，as 对已经落地的值无操作，原样透传被转换
// 的表达式；as? 追加一道运行时标签检查，检查失败时求值为 nil。
func (t *Transformer) lowerTypeCast(e *ast.TypeCastExpr) dtlast.Expression {
	inner := t.lowerExpr(e.Expr)
	if !e.Safe {
		return inner
	}
	typeName := simpleTypeName(e.TargetType)
	check := &dtlast.Invocation{
		Callee: &dtlast.Ident{Name: "System.IsInstance"},
		Args:   []dtlast.Expression{inner, &dtlast.Literal{Kind: dtlast.LiteralString, Raw: fmt.Sprintf("%q", typeName)}},
	}
	return &dtlast.BinaryExpr{Left: check, Op: "and", Right: inner}
}

// lowerClassAccess 把 obj::class 降级为运行时类名查询（动态分派，不是编译期常量——
// 接口/基类引用在运行时可能持有子类实例）。
func (t *Transformer) lowerClassAccess(e *ast.ClassAccessExpr) dtlast.Expression {
	return &dtlast.Invocation{Callee: &dtlast.Ident{Name: "System.ClassNameOf"}, Args: []dtlast.Expression{t.lowerExpr(e.Object)}}
}

// ---------------------------------------------------------------------------
// is / !is (SUPPLEMENTED FEATURES)
// ---------------------------------------------------------------------------

func (t *Transformer) lowerIsExpr(e *ast.IsExpr) dtlast.Expression {
	typeName := simpleTypeName(e.TypeName)
	call := dtlast.Expression(&dtlast.Invocation{
		Callee: &dtlast.Ident{Name: "System.IsInstance"},
		Args:   []dtlast.Expression{t.lowerExpr(e.Expr), &dtlast.Literal{Kind: dtlast.LiteralString, Raw: fmt.Sprintf("%q", typeName)}},
	})
	if e.Negated {
		return &dtlast.UnaryExpr{Op: "not", Operand: &dtlast.ParenExpr{Inner: call}}
	}
	return call
}

// ---------------------------------------------------------------------------
// 闭包 / 箭头函数
// ---------------------------------------------------------------------------

func (t *Transformer) lowerClosure(e *ast.ClosureExpr) dtlast.Expression {
	t.pushFunc(&funcContext{returnsVoid: false})
	body := t.lowerBlock(e.Body)
	body.Statements = append(t.paramDefaultStmts(e.Parameters), body.Statements...)
	t.popFunc()
	return &dtlast.FuncLitExpr{Lit: &dtlast.FuncLit{Params: paramNames(e.Parameters), Body: body}}
}

func (t *Transformer) lowerArrowFunc(e *ast.ArrowFuncExpr) dtlast.Expression {
	t.pushFunc(&funcContext{returnsVoid: false})
	block := &dtlast.Block{}
	t.pushBlock(block)
	val := t.lowerExpr(e.Body)
	t.popBlock()
	block.Statements = append(t.paramDefaultStmts(e.Parameters), block.Statements...)
	block.Statements = append(block.Statements, &dtlast.ReturnStmt{Values: []dtlast.Expression{val}})
	t.popFunc()
	return &dtlast.FuncLitExpr{Lit: &dtlast.FuncLit{Params: paramNames(e.Parameters), Body: block}}
}

// ---------------------------------------------------------------------------
// new
// ---------------------------------------------------------------------------

// lowerNewExpr 把构造调用降级为对类表上 new 工厂方法的调用：ClassName.new(args...)，
// 假定 System 运行时约定每个类表都暴露 new 作为构造入口（与 4.5 节类型声明壳一致）。
func (t *Transformer) lowerNewExpr(e *ast.NewExpr) dtlast.Expression {
	className := t.metadata.TypeMapName(e.ClassName.Name)
	args := t.lowerCallArgs(e.Arguments, nil)
	for _, ta := range e.TypeArgs {
		args = append(args, &dtlast.Ident{Name: t.metadata.TypeMapName(ta.String())})
	}
	return &dtlast.Invocation{Callee: &dtlast.MemberAccess{Object: &dtlast.Ident{Name: className}, Name: "new"}, Args: args}
}

// ---------------------------------------------------------------------------
// lowerExpr 主分派
// ---------------------------------------------------------------------------

func (t *Transformer) lowerExpr(e ast.Expression) dtlast.Expression {
	switch ex := e.(type) {
	case nil:
		return nil
	case *ast.Identifier:
		return t.lowerBareName(ex, ex.Name)
	case *ast.Variable:
		return t.lowerBareName(ex, ex.Name)
	case *ast.ThisExpr:
		return &dtlast.Ident{Name: "this"}
	case *ast.SelfExpr:
		if ct := t.curType(); ct != nil {
			return &dtlast.Ident{Name: ct.name}
		}
		t.raiseInvariant(ex, "self 出现在类型上下文之外")
		return nil
	case *ast.ParentExpr:
		if ct := t.curType(); ct != nil && len(ct.decl.BaseTypes) > 0 {
			return &dtlast.Ident{Name: ct.decl.BaseTypes[0]}
		}
		t.raiseInvariant(ex, "parent 出现在没有基类型的上下文中")
		return nil
	case *ast.IntegerLiteral:
		return &dtlast.Literal{Kind: dtlast.LiteralNumeric, Raw: ex.Token.Literal}
	case *ast.FloatLiteral:
		return &dtlast.Literal{Kind: dtlast.LiteralNumeric, Raw: ex.Token.Literal}
	case *ast.StringLiteral:
		return &dtlast.Literal{Kind: dtlast.LiteralString, Raw: fmt.Sprintf("%q", ex.Value)}
	case *ast.InterpStringLiteral:
		return t.lowerInterpString(ex.Parts)
	case *ast.BoolLiteral:
		if ex.Value {
			return &dtlast.Ident{Name: "true"}
		}
		return &dtlast.Ident{Name: "false"}
	case *ast.NullLiteral:
		return &dtlast.Literal{Kind: dtlast.LiteralNil}
	case *ast.ArrayLiteral:
		return t.lowerTableLiteral(ex.Elements)
	case *ast.MapLiteral:
		return t.lowerMapLiteral(ex.Pairs)
	case *ast.SuperArrayLiteral:
		return t.lowerSuperArrayLiteral(ex.Elements)
	case *ast.UnaryExpr:
		if isIncrementOp(ex.Operator.Literal) {
			return t.lowerIncrementExpr(ex)
		}
		return &dtlast.UnaryExpr{Op: remapOperator(ex.Operator.Literal), Operand: t.lowerExpr(ex.Operand)}
	case *ast.BinaryExpr:
		return &dtlast.BinaryExpr{Left: t.lowerExpr(ex.Left), Op: remapOperator(ex.Operator.Literal), Right: t.lowerExpr(ex.Right)}
	case *ast.IsExpr:
		return t.lowerIsExpr(ex)
	case *ast.TernaryExpr:
		return t.lowerTernary(ex)
	case *ast.AssignExpr:
		if isChainedAssign(ex) {
			return t.lowerChainedAssign(ex)
		}
		return t.lowerAssignExpr(ex)
	case *ast.RefArgExpr:
		return t.lowerExpr(ex.Value)
	case *ast.CallExpr:
		if hasRefOutArg(ex.Arguments) {
			return t.lowerRefOutExpr(ex)
		}
		return t.lowerCallExpr(ex)
	case *ast.IndexExpr:
		return &dtlast.IndexExpr{Object: t.lowerExpr(ex.Object), Index: t.lowerExpr(ex.Index)}
	case *ast.PropertyAccess:
		return t.lowerPropertyAccess(ex)
	case *ast.MethodCall:
		return t.lowerMethodCallExpr(ex)
	case *ast.SafePropertyAccess:
		return t.lowerSafePropertyAccess(ex)
	case *ast.SafeMethodCall:
		return t.lowerSafeMethodCall(ex)
	case *ast.NullCoalesceExpr:
		return &dtlast.BinaryExpr{Left: t.lowerExpr(ex.Left), Op: "or", Right: t.lowerExpr(ex.Right)}
	case *ast.NonNullAssertExpr:
		return t.lowerNonNullAssert(ex)
	case *ast.StaticAccess:
		return t.lowerStaticAccess(ex)
	case *ast.NewExpr:
		return t.lowerNewExpr(ex)
	case *ast.ClosureExpr:
		return t.lowerClosure(ex)
	case *ast.ArrowFuncExpr:
		return t.lowerArrowFunc(ex)
	case *ast.ClassAccessExpr:
		return t.lowerClassAccess(ex)
	case *ast.TypeCastExpr:
		return t.lowerTypeCast(ex)
	case *ast.MatchExpr:
		return t.lowerMatchExpr(ex)
	case *ast.SwitchExpr:
		return t.lowerSwitchExpr(ex.Expr, ex.Cases, ex.Default)
	case *ast.AwaitExpr:
		t.raiseUnsupported(ex, "await 表达式（协程子系统超出降级范围）")
	case *ast.CoroutineSpawnExpr:
		t.raiseUnsupported(ex, "协程派生表达式（协程子系统超出降级范围）")
	case *ast.CoroutineAllExpr:
		t.raiseUnsupported(ex, "coroutine.all 表达式（协程子系统超出降级范围）")
	case *ast.CoroutineAnyExpr:
		t.raiseUnsupported(ex, "coroutine.any 表达式（协程子系统超出降级范围）")
	case *ast.CoroutineRaceExpr:
		t.raiseUnsupported(ex, "coroutine.race 表达式（协程子系统超出降级范围）")
	case *ast.CoroutineDelayExpr:
		t.raiseUnsupported(ex, "coroutine.delay 表达式（协程子系统超出降级范围）")
	case *ast.ChannelSelectExpr:
		t.raiseUnsupported(ex, "channel select 表达式（协程子系统超出降级范围）")
	default:
		t.raiseUnsupported(e, fmt.Sprintf("表达式 %T", e))
	}
	return nil
}

// lowerIncrementExpr 处理表达式位置的 ++x/x--：先合成赋值语句发射到当前块，
// 再返回前缀形态下的新值、后缀形态下的旧值作为表达式结果。
func (t *Transformer) lowerIncrementExpr(ex *ast.UnaryExpr) dtlast.Expression {
	target := t.lowerExpr(ex.Operand)
	if ex.Prefix {
		t.emit(&dtlast.ExprStmt{Expr: t.lowerIncrementAssign(ex)})
		return target
	}
	temp := t.freshTemp(ex)
	t.emit(&dtlast.LocalVar{Name: temp, Value: target})
	t.emit(&dtlast.ExprStmt{Expr: t.lowerIncrementAssign(ex)})
	return &dtlast.Ident{Name: temp}
}
