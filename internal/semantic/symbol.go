// Package semantic 为 internal/lower 提供只读的符号/类型解析服务。
//
// 给定一棵 internal/ast 语法树，构建节点到符号、符号到类型的映射；
// internal/lower 只消费、不修改这些结果。
package semantic

import (
	"github.com/novalang/novalua/internal/ast"
)

// Kind 符号种类
type Kind int

const (
	KindLocal Kind = iota
	KindParameter
	KindTypeParameter
	KindLabel
	KindNamedType
	KindField
	KindMethod
	KindProperty
	KindEvent
)

func (k Kind) String() string {
	switch k {
	case KindLocal:
		return "local"
	case KindParameter:
		return "parameter"
	case KindTypeParameter:
		return "type-parameter"
	case KindLabel:
		return "label"
	case KindNamedType:
		return "named-type"
	case KindField:
		return "field"
	case KindMethod:
		return "method"
	case KindProperty:
		return "property"
	case KindEvent:
		return "event"
	default:
		return "unknown"
	}
}

// Accessibility 声明的可见性
type Accessibility int

const (
	AccessDefault Accessibility = iota
	AccessPublic
	AccessProtected
	AccessPrivate
)

// Symbol 描述一个已声明实体的身份与属性。
type Symbol struct {
	Kind                  Kind
	Name                  string
	ContainingType        *Symbol // 字段/方法/属性/事件所属的类型符号，顶层为 nil
	IsStatic              bool
	IsReadOnly            bool // final 属性/字段
	DeclaredAccessibility Accessibility
	HasConstantValue      bool
	ConstantValue         string // 字面量的源文本表示
	IsOverridable         bool
	IsExtensionMethod     bool
	ReducedFrom           *Symbol // 扩展方法去掉 receiver 参数前的原始符号
	ReturnsVoid           bool
	TypeArguments         []string // 方法调用点或泛型类型声明处的类型实参
	Parameters            []*Symbol

	// 分类标记，供 VisitFieldOrEventIdentifierName / AddField / AddEvent 使用
	IsAutoProperty            bool // 属性无用户访问器体（自动属性，当字段处理）
	IsComputedProperty        bool // 属性有访问器体或表达式体
	IsEventField              bool // 事件无 add/remove 访问器体（当字段处理）
	IsInterfaceImplementation bool

	// 声明节点的反向指针，便于诊断定位
	Decl ast.Node
}

// TypeInfo 描述一个表达式的推断类型
type TypeInfo struct {
	Name          string
	IsValueType   bool // 基元值类型：int/float/bool/... （非 nullable 时不可为 null）
	IsNullable    bool // ?T
	IsGenericName bool // 形如 List<T> 的声明，GenericArg 是其首个类型实参
	GenericArg    string
}

// IsBoolOrNullable 判断三元表达式的 when-true 分支是否可能为 null 或 false：
// 非值类型、显式可空类型，或布尔类型本身都满足。
func (t *TypeInfo) IsBoolOrNullable() bool {
	if t == nil {
		return true // 未知类型保守按可能为假处理
	}
	if t.IsNullable {
		return true
	}
	if !t.IsValueType {
		return true
	}
	return t.Name == "bool"
}
