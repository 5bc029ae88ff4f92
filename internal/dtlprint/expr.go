package dtlprint

import (
	"strings"

	"github.com/novalang/novalua/internal/dtlast"
)

// exprString 把一个表达式节点渲染成一行文本，供语句打印时内联使用。
func (p *Printer) exprString(e dtlast.Expression) string {
	switch ex := e.(type) {
	case nil:
		return "nil"
	case *dtlast.Ident:
		return ex.Name
	case *dtlast.Literal:
		return literalString(ex)
	case *dtlast.BinaryExpr:
		return p.exprString(ex.Left) + " " + ex.Op + " " + p.exprString(ex.Right)
	case *dtlast.UnaryExpr:
		return ex.Op + " " + p.exprString(ex.Operand)
	case *dtlast.ParenExpr:
		return "(" + p.exprString(ex.Inner) + ")"
	case *dtlast.IndexExpr:
		return p.exprString(ex.Object) + "[" + p.exprString(ex.Index) + "]"
	case *dtlast.MemberAccess:
		sep := "."
		if ex.ColonCall {
			sep = ":"
		}
		return p.exprString(ex.Object) + sep + ex.Name
	case *dtlast.Invocation:
		args := make([]string, len(ex.Args))
		for i, a := range ex.Args {
			args[i] = p.exprString(a)
		}
		return p.exprString(ex.Callee) + "(" + strings.Join(args, ", ") + ")"
	case *dtlast.InternalMethodIdent:
		return ex.Name
	case *dtlast.AssignExpr:
		return p.exprString(ex.Left) + " = " + p.exprString(ex.Right)
	case *dtlast.MultiAssignExpr:
		targets := make([]string, len(ex.Targets))
		for i, t := range ex.Targets {
			targets[i] = p.exprString(t)
		}
		return strings.Join(targets, ", ") + " = " + p.exprString(ex.Value)
	case *dtlast.LineMultipleExpr:
		lefts := make([]string, len(ex.Links))
		rights := make([]string, len(ex.Links))
		for i, link := range ex.Links {
			lefts[i] = p.exprString(link.Left)
			rights[i] = p.exprString(link.Right)
		}
		return strings.Join(lefts, ", ") + " = " + strings.Join(rights, ", ")
	case *dtlast.PropertyAdapter:
		return p.propertyAdapterString(ex)
	case *dtlast.FuncLitExpr:
		return p.funcLitString(ex.Lit)
	case *dtlast.TableLiteral:
		parts := make([]string, len(ex.Entries))
		for i, entry := range ex.Entries {
			if entry.Key == nil {
				parts[i] = p.exprString(entry.Value)
			} else {
				parts[i] = "[" + p.exprString(entry.Key) + "] = " + p.exprString(entry.Value)
			}
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return "--[[unsupported expr]]"
	}
}

// funcLitString 把一个函数字面量渲染成可以内联出现在表达式位置的多行文本，
// 内部语句沿用当前打印器的缩进层级加一。
func (p *Printer) funcLitString(fn *dtlast.FuncLit) string {
	var sb strings.Builder
	sb.WriteString("function(" + strings.Join(fn.Params, ", ") + ")\n")
	inner := &Printer{indentSize: p.indentSize, indent: p.indent + 1}
	if fn.Body != nil {
		inner.printBlockStatements(fn.Body)
	}
	sb.WriteString(inner.buf.String())
	sb.WriteString(strings.Repeat(" ", p.indent*p.indentSize) + "end")
	return sb.String()
}

func literalString(l *dtlast.Literal) string {
	switch l.Kind {
	case dtlast.LiteralNil:
		return "nil"
	case dtlast.LiteralString:
		return l.Raw
	default:
		return l.Raw
	}
}

// propertyAdapterString 按适配器当前状态渲染：get 形态是一次调用，
// set 形态要求 Invocation.Args 已经由赋值访问器追加了最终值参数。
func (p *Printer) propertyAdapterString(a *dtlast.PropertyAdapter) string {
	if a.Invocation == nil {
		return a.Name
	}
	args := make([]string, len(a.Invocation.Args))
	for i, arg := range a.Invocation.Args {
		args[i] = p.exprString(arg)
	}
	callee := a.Name
	if a.Receiver != nil {
		sep := ":"
		callee = p.exprString(a.Receiver) + sep + a.Name
	}
	return callee + "(" + strings.Join(args, ", ") + ")"
}
