package semantic

import (
	"fmt"

	"github.com/novalang/novalua/internal/ast"
	"github.com/novalang/novalua/internal/token"
)

// Model 是一棵语法树解析完毕后的只读符号/类型快照。
type Model struct {
	symbolOf       map[ast.Node]*Symbol
	declaredSymbol map[ast.Node]*Symbol
	typeOf         map[ast.Expression]*TypeInfo
	classes        map[string]*Symbol            // 类/接口/枚举名 -> NamedType 符号
	members        map[string]map[string]*Symbol // 类名 -> 成员名 -> 符号
}

// Error 语义分析错误：缺失符号、类型信息或其它收集阶段的失败。
type Error struct {
	Pos     token.Position
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// SymbolOf 返回某个标识符/表达式使用点所指向的符号，缺失时为 nil。
func (m *Model) SymbolOf(node ast.Node) *Symbol {
	return m.symbolOf[node]
}

// DeclaredSymbol 返回某个声明节点自身引入的符号。
func (m *Model) DeclaredSymbol(node ast.Node) *Symbol {
	return m.declaredSymbol[node]
}

// TypeOf 返回某个表达式的推断类型，无法推断时为 nil。
func (m *Model) TypeOf(expr ast.Expression) *TypeInfo {
	return m.typeOf[expr]
}

// ConstantValue 返回符号的常量值（若有）。
func (m *Model) ConstantValue(sym *Symbol) (string, bool) {
	if sym == nil || !sym.HasConstantValue {
		return "", false
	}
	return sym.ConstantValue, true
}

// ClassSymbol 按名字查找已注册的类型符号（class/interface/enum）。
func (m *Model) ClassSymbol(name string) (*Symbol, bool) {
	s, ok := m.classes[name]
	return s, ok
}

// MemberSymbol 在某个已注册类型下按名字查找成员符号（字段/方法/属性/事件）。
func (m *Model) MemberSymbol(typeName, name string) (*Symbol, bool) {
	members, ok := m.members[typeName]
	if !ok {
		return nil, false
	}
	sym, ok := members[name]
	return sym, ok
}

func newModel() *Model {
	return &Model{
		symbolOf:       make(map[ast.Node]*Symbol),
		declaredSymbol: make(map[ast.Node]*Symbol),
		typeOf:         make(map[ast.Expression]*TypeInfo),
		classes:        make(map[string]*Symbol),
		members:        make(map[string]map[string]*Symbol),
	}
}

// Analyze 对整棵文件语法树做一趟解析，产出供 internal/lower 使用的只读符号表。
// 这不是完整的类型检查器：只解析翻译阶段实际会查询的事实——声明点、引用点、
// 常量值和少量影响代码生成形状的类型信息（可空性、是否值类型）。
func Analyze(file *ast.File) (*Model, error) {
	r := newResolver()
	r.collectTypes(file)
	r.resolveFile(file)
	if len(r.errors) > 0 {
		return r.model, r.errors[0]
	}
	return r.model, nil
}
