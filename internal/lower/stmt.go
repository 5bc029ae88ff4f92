package lower

import (
	"fmt"
	"sort"

	"github.com/novalang/novalua/internal/ast"
	"github.com/novalang/novalua/internal/dtlast"
)

// mergedItem 是 4.8 节合并排序用的统一条目：语句或注释，按源码行排序。
type mergedItem struct {
	line    int
	stmt    ast.Statement
	comment *ast.Comment
}

// lowerBlock 实现 4.8 节：把语句与注释按源码行合并排序，交错重放到输出块，
// 相邻条目间的行号空隙转换为 BlankLines。
func (t *Transformer) lowerBlock(b *ast.BlockStmt) *dtlast.Block {
	block := &dtlast.Block{}
	t.pushBlock(block)
	defer t.popBlock()

	items := make([]mergedItem, 0, len(b.Statements)+len(b.Comments))
	for _, s := range b.Statements {
		items = append(items, mergedItem{line: s.Pos().Line, stmt: s})
	}
	for _, c := range b.Comments {
		items = append(items, mergedItem{line: c.Line, comment: c})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].line < items[j].line })

	prevLine := -1
	for _, it := range items {
		if prevLine >= 0 && it.line-prevLine > 1 {
			t.emit(&dtlast.BlankLines{Count: it.line - prevLine - 1})
		}
		if it.comment != nil {
			if it.comment.Block {
				t.emit(&dtlast.LongComment{Text: it.comment.Text})
			} else {
				t.emit(&dtlast.ShortComment{Text: it.comment.Text})
			}
		} else {
			t.lowerStmt(it.stmt)
		}
		prevLine = it.line
	}
	return block
}

// lowerStmt 把一条 ISL 语句降级并发射到当前块，按 4.10 节逐种处理。
func (t *Transformer) lowerStmt(s ast.Statement) {
	switch st := s.(type) {
	case *ast.ExprStmt:
		t.lowerExprStatement(st.Expr)

	case *ast.VarDeclStmt:
		val := t.getFieldValueExpression(st.Value, st.Type, false)
		t.emit(&dtlast.LocalVar{Name: st.Name.Name, Value: val})

	case *ast.MultiVarDeclStmt:
		names := make([]string, len(st.Names))
		for i, n := range st.Names {
			names[i] = n.Name
		}
		if st.Value == nil {
			t.emit(&dtlast.LocalVars{Names: names})
			return
		}
		val := t.lowerExpr(st.Value)
		targets := make([]dtlast.Expression, len(names))
		for i, n := range names {
			targets[i] = &dtlast.Ident{Name: n}
		}
		t.emit(&dtlast.LocalVars{Names: names})
		t.emit(&dtlast.ExprStmt{Expr: &dtlast.MultiAssignExpr{Targets: targets, Value: val}})

	case *ast.IfStmt:
		t.emit(t.lowerIf(st))

	case *ast.SwitchStmt:
		t.emit(t.lowerSwitch(st.Expr, st.Cases, st.Default))

	case *ast.ForStmt:
		t.lowerFor(st)

	case *ast.ForeachStmt:
		t.lowerForeach(st)

	case *ast.WhileStmt:
		cond := t.lowerExpr(st.Condition)
		t.emit(&dtlast.WhileStmt{Cond: cond, Body: t.lowerLoopBody(st.Body)})

	case *ast.DoWhileStmt:
		notCond := &dtlast.UnaryExpr{Op: "not", Operand: &dtlast.ParenExpr{Inner: t.lowerExpr(st.Condition)}}
		t.emit(&dtlast.RepeatUntilStmt{Body: t.lowerLoopBody(st.Body), Cond: notCond})

	case *ast.BreakStmt:
		t.emit(&dtlast.BreakStmt{})

	case *ast.ContinueStmt:
		t.lowerContinue(st)

	case *ast.ReturnStmt:
		vals := make([]dtlast.Expression, len(st.Values))
		for i, v := range st.Values {
			vals[i] = t.lowerExpr(v)
		}
		t.emit(&dtlast.ReturnStmt{Values: vals})

	case *ast.TryStmt:
		t.lowerTry(st)

	case *ast.ThrowStmt:
		t.emit(&dtlast.ExprStmt{Expr: &dtlast.Invocation{
			Callee: &dtlast.Ident{Name: "Throw"},
			Args:   []dtlast.Expression{t.lowerExpr(st.Exception)},
		}})

	case *ast.GotoStmt:
		t.lowerGoto(st)

	case *ast.LabeledStmt:
		label := st.Label.Name
		inner := &dtlast.Block{}
		t.pushBlock(inner)
		t.lowerStmt(st.Stmt)
		t.popBlock()
		var wrapped dtlast.Statement = inner
		if len(inner.Statements) == 1 {
			wrapped = inner.Statements[0]
		}
		t.emit(&dtlast.LabeledStmt{Label: label, Stmt: wrapped})

	case *ast.YieldStmt:
		t.lowerYield(st)

	case *ast.EchoStmt:
		t.emit(&dtlast.ExprStmt{Expr: &dtlast.Invocation{
			Callee: &dtlast.Ident{Name: "System.DebugPrint"},
			Args:   []dtlast.Expression{t.lowerExpr(st.Value)},
		}})

	case *ast.GoStmt:
		t.raiseUnsupported(st, "go 语句（协程子系统超出降级范围）")
	case *ast.SelectStmt:
		t.raiseUnsupported(st, "select 语句（协程子系统超出降级范围）")

	default:
		t.raiseUnsupported(s, fmt.Sprintf("语句 %T", s))
	}
}

// ---------------------------------------------------------------------------
// If/else (4.10)
// ---------------------------------------------------------------------------

func (t *Transformer) lowerIf(st *ast.IfStmt) *dtlast.IfStmt {
	root := &dtlast.IfStmt{Cond: t.lowerExpr(st.Condition), Then: t.lowerBlock(st.Then)}
	cur := root
	for _, ei := range st.ElseIfs {
		next := &dtlast.IfStmt{Cond: t.lowerExpr(ei.Condition), Then: t.lowerBlock(ei.Body)}
		cur.Else = next
		cur = next
	}
	if st.Else != nil {
		cur.Else = t.lowerBlock(st.Else)
	}
	return root
}

// ---------------------------------------------------------------------------
// Switch (4.10) — 通过 SwitchAdapter 实现标签化模拟。
// ---------------------------------------------------------------------------

func (t *Transformer) lowerSwitch(subject ast.Expression, cases []*ast.SwitchCase, def *ast.SwitchDefaultCase) *dtlast.SwitchAdapter {
	temp := t.freshTemp(subject)
	adapter := &dtlast.SwitchAdapter{Temp: temp, Subject: t.lowerExpr(subject)}
	t.pushSwitch(&switchContext{adapter: adapter})
	defer t.popSwitch()

	for _, c := range cases {
		var cond dtlast.Expression
		for _, v := range c.Values {
			eq := &dtlast.BinaryExpr{Left: &dtlast.Ident{Name: temp}, Op: "==", Right: t.lowerExpr(v)}
			if cond == nil {
				cond = eq
			} else {
				cond = &dtlast.BinaryExpr{Left: cond, Op: "or", Right: eq}
			}
		}
		label := caseLabelKey(c.Values)
		t.checkNoFallthrough(c.Body, label)
		body := t.lowerSwitchBody(c.Body, label)
		adapter.Arms = append(adapter.Arms, &dtlast.SwitchArm{Cond: cond, Body: body})
	}
	if def != nil {
		t.checkNoFallthrough(def.Body, "default")
		adapter.Default = t.lowerSwitchBody(def.Body, "default")
	}
	return adapter
}

// checkNoFallthrough 强制 9-3 号决策：语句形式的 case/default 分支若有语句，
// 末尾必须是 break/return/goto（含 goto case/goto default），否则在 DTL 的
// if/elseif 展开里会变成隐式贯穿到下一分支——这是一处不变式破坏，直接拒绝。
// 表达式形式（箭头分支）与空分支体（没有任何语句）不在此检查范围内。
func (t *Transformer) checkNoFallthrough(body interface{}, label string) {
	stmts, ok := body.([]ast.Statement)
	if !ok || len(stmts) == 0 {
		return
	}
	switch stmts[len(stmts)-1].(type) {
	case *ast.BreakStmt, *ast.ReturnStmt, *ast.GotoStmt:
		return
	}
	t.raiseFallthrough(stmts[len(stmts)-1], label)
}

// caseLabelKey 为一个 case 的值列表构造 goto-case 标签键；多值 case 取第一个值的文本。
func caseLabelKey(values []ast.Expression) string {
	if len(values) == 0 {
		return "case"
	}
	return values[0].String()
}

// lowerSwitchBody 降级一个 case/default 分支体，统一处理表达式形式（箭头）与语句形式（冒号），
// 并在该分支曾被 goto case/default 命中时，在分支体起始处补上对应标签。
func (t *Transformer) lowerSwitchBody(body interface{}, labelKey string) *dtlast.Block {
	block := &dtlast.Block{}
	t.pushBlock(block)
	if sw := t.curSwitchBeforeBody(); sw != nil {
		if lbl, ok := sw.adapter.Labels[labelKey]; ok {
			t.emit(&dtlast.LabeledStmt{Label: lbl, Stmt: &dtlast.Block{}})
		}
	}
	switch b := body.(type) {
	case ast.Expression:
		t.emit(&dtlast.ReturnStmt{Values: []dtlast.Expression{t.lowerExpr(b)}})
	case []ast.Statement:
		for _, s := range b {
			t.lowerStmt(s)
		}
	}
	t.popBlock()
	return block
}

// curSwitchBeforeBody 返回刚被 lowerSwitch push 的 switch 上下文，供 lowerSwitchBody
// 探测该分支是否已经被某个 goto case/default 预先登记了标签。
func (t *Transformer) curSwitchBeforeBody() *switchContext { return t.curSwitch() }

// ---------------------------------------------------------------------------
// Goto / goto case / goto default (4.10)
// ---------------------------------------------------------------------------

func (t *Transformer) lowerGoto(st *ast.GotoStmt) {
	switch {
	case st.IsDefault:
		sw := t.curSwitch()
		if sw == nil {
			t.raiseInvariant(st, "goto default 出现在 switch 之外")
		}
		t.emit(&dtlast.GotoCaseAdapter{Label: sw.labelFor("default")})
	case st.IsCase:
		sw := t.curSwitch()
		if sw == nil {
			t.raiseInvariant(st, "goto case 出现在 switch 之外")
		}
		t.emit(&dtlast.GotoCaseAdapter{Label: sw.labelFor(st.CaseValue.String())})
	default:
		t.emit(&dtlast.GotoStmt{Label: st.Label.Name})
	}
}

// ---------------------------------------------------------------------------
// 循环 (4.10)
// ---------------------------------------------------------------------------

func (t *Transformer) lowerForeach(st *ast.ForeachStmt) {
	var names []string
	if st.Key != nil {
		names = append(names, st.Key.Name)
	} else {
		names = append(names, "_")
	}
	names = append(names, st.Value.Name)
	t.emit(&dtlast.ForInStmt{Names: names, Iterable: t.lowerExpr(st.Iterable), Body: t.lowerLoopBody(st.Body)})
}

// lowerFor 实现 4.10 节描述的 for 降级配方：嵌套块里先放声明/初始化语句，
// 再用一个条件恒真（缺省条件时）的 while 循环收尾递增语句。
func (t *Transformer) lowerFor(st *ast.ForStmt) {
	outer := &dtlast.Block{}
	t.pushBlock(outer)

	if st.Init != nil {
		t.lowerStmt(st.Init)
	}

	cond := dtlast.Expression(&dtlast.Literal{Kind: dtlast.LiteralNumeric, Raw: "true"})
	if st.Condition != nil {
		cond = t.lowerExpr(st.Condition)
	}

	body := t.lowerLoopBody(st.Body)
	if st.Post != nil {
		t.pushBlock(body)
		t.lowerExprStatement(st.Post)
		t.popBlock()
	}
	t.emit(&dtlast.WhileStmt{Cond: cond, Body: body})
	t.popBlock()

	t.emit(&dtlast.BlockBlock{Inner: outer})
}

// lowerLoopBody 降级一个循环体，并在末尾补上本层循环的 continue 标签，
// 供 lowerContinue 跳转——DTL 没有原生 continue，借用 goto/label 模拟。
func (t *Transformer) lowerLoopBody(b *ast.BlockStmt) *dtlast.Block {
	label := t.pushLoopLabel()
	defer t.popLoopLabel()
	block := t.lowerBlock(b)
	block.Statements = append(block.Statements, &dtlast.LabeledStmt{Label: label, Stmt: &dtlast.Block{}})
	return block
}

func (t *Transformer) lowerContinue(st *ast.ContinueStmt) {
	label, ok := t.curLoopLabel()
	if !ok {
		t.raiseInvariant(st, "continue 出现在循环之外")
	}
	t.emit(&dtlast.GotoStmt{Label: label})
}

// ---------------------------------------------------------------------------
// try/catch/finally — pcall 模拟
// ---------------------------------------------------------------------------

func (t *Transformer) lowerTry(st *ast.TryStmt) {
	tryBody := t.lowerBlock(st.Try)
	okName := t.freshTemp(st)
	errName := t.freshTemp(st)

	t.emit(&dtlast.LocalVars{Names: []string{okName, errName}})
	pcallArg := &dtlast.FuncLitExpr{Lit: &dtlast.FuncLit{Body: tryBody}}
	t.emit(&dtlast.ExprStmt{Expr: &dtlast.MultiAssignExpr{
		Targets: []dtlast.Expression{&dtlast.Ident{Name: okName}, &dtlast.Ident{Name: errName}},
		Value:   &dtlast.Invocation{Callee: &dtlast.Ident{Name: "pcall"}, Args: []dtlast.Expression{pcallArg}},
	}})

	if len(st.Catches) > 0 {
		notOk := &dtlast.UnaryExpr{Op: "not", Operand: &dtlast.Ident{Name: okName}}
		handler := t.lowerCatchChain(st.Catches, errName, 0)
		t.emit(&dtlast.IfStmt{Cond: notOk, Then: handler})
	}
	if st.Finally != nil {
		finallyBlock := t.lowerBlock(st.Finally.Body)
		t.emit(&dtlast.BlockBlock{Inner: finallyBlock})
	}
}

// lowerCatchChain 把多个 catch 子句降级成按类型标签测试的 if/elseif 链。
func (t *Transformer) lowerCatchChain(catches []*ast.CatchClause, errName string, idx int) *dtlast.Block {
	c := catches[idx]
	body := &dtlast.Block{}
	t.pushBlock(body)
	if c.Variable != nil {
		t.emit(&dtlast.LocalVar{Name: c.Variable.Name, Value: &dtlast.Ident{Name: errName}})
	}
	for _, s := range c.Body.Statements {
		t.lowerStmt(s)
	}
	t.popBlock()

	if idx == len(catches)-1 {
		return body
	}

	typeName := simpleTypeName(c.Type)
	cond := &dtlast.Invocation{
		Callee: &dtlast.Ident{Name: "System.IsInstance"},
		Args:   []dtlast.Expression{&dtlast.Ident{Name: errName}, &dtlast.Literal{Kind: dtlast.LiteralString, Raw: fmt.Sprintf("%q", typeName)}},
	}
	rest := t.lowerCatchChain(catches, errName, idx+1)
	return &dtlast.Block{Statements: []dtlast.Statement{&dtlast.IfStmt{Cond: cond, Then: body, Else: rest}}}
}

// ---------------------------------------------------------------------------
// yield (4.10)
// ---------------------------------------------------------------------------

func (t *Transformer) lowerYield(st *ast.YieldStmt) {
	fc := t.curFunc()
	if fc == nil {
		t.raiseInvariant(st, "yield 出现在函数之外")
	}
	fc.hasYield = true
	if st.IsBreak {
		t.emit(&dtlast.ReturnStmt{})
		return
	}
	t.emit(&dtlast.ExprStmt{Expr: &dtlast.Invocation{
		Callee: &dtlast.Ident{Name: "System.YieldReturn"},
		Args:   []dtlast.Expression{t.lowerExpr(st.Value)},
	}})
}
