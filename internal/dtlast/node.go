// Package dtlast 定义目标语言（动态类型、表驱动的脚本运行时）的输出语法树。
//
// 这是一族封闭的节点变体：表达式、语句、声明容器，以及在下降过程中被
// 后续访问就地改写的适配器节点（属性适配器、switch 适配器、goto-case
// 适配器）。internal/lower 是唯一的生产者；internal/dtlprint 把树渲染成
// 源码文本（供测试做字符串比对），CLI 的 dump-dtl 子命令把树序列化为 JSON。
package dtlast

// Node 是所有输出节点的公共接口，仅用于在容器里统一持有不同节点。
type Node interface {
	dtlNode()
}

// Expression 是所有表达式节点的标记接口。
type Expression interface {
	Node
	exprNode()
}

// Statement 是所有语句节点的标记接口。
type Statement interface {
	Node
	stmtNode()
}

// ============================================================================
// 表达式
// ============================================================================

// Ident 一个裸标识符：局部变量、参数、类型名、this、value 等。
type Ident struct {
	Name string
}

func (*Ident) dtlNode()  {}
func (*Ident) exprNode() {}

// LiteralKind 区分字面量的原始形态，决定 dtlprint 如何重放其 Raw 文本。
type LiteralKind int

const (
	LiteralNumeric LiteralKind = iota
	LiteralChar
	LiteralString
	LiteralNil
)

// Literal 字面量：数值/字符/字符串原样携带源文本，nil 没有 Raw。
type Literal struct {
	Kind LiteralKind
	Raw  string
}

func (*Literal) dtlNode()  {}
func (*Literal) exprNode() {}

// BinaryExpr 二元表达式，Op 已经过 4.3 节的操作符重映射。
type BinaryExpr struct {
	Left  Expression
	Op    string
	Right Expression
}

func (*BinaryExpr) dtlNode()  {}
func (*BinaryExpr) exprNode() {}

// UnaryExpr 前缀一元表达式（not、取负等，已重映射）。
type UnaryExpr struct {
	Op      string
	Operand Expression
}

func (*UnaryExpr) dtlNode()  {}
func (*UnaryExpr) exprNode() {}

// ParenExpr 括号包裹的表达式，仅用于保持运算符优先级。
type ParenExpr struct {
	Inner Expression
}

func (*ParenExpr) dtlNode()  {}
func (*ParenExpr) exprNode() {}

// MemberAccess 成员访问 obj.Name 或方法风格 obj:Name，取决于 ColonCall。
type MemberAccess struct {
	Object    Expression
	Name      string
	ColonCall bool // true: 非静态方法访问（obj:Name），false: 字段/属性风格（obj.Name）
}

func (*MemberAccess) dtlNode()  {}
func (*MemberAccess) exprNode() {}

// IndexExpr 索引访问 obj[idx]。
type IndexExpr struct {
	Object Expression
	Index  Expression
}

func (*IndexExpr) dtlNode()  {}
func (*IndexExpr) exprNode() {}

// Invocation 调用表达式：Callee(Args...)。
type Invocation struct {
	Callee Expression
	Args   []Expression
}

func (*Invocation) dtlNode()  {}
func (*Invocation) exprNode() {}

// InternalMethodIdent 标记一个绑定到当前 this 的、不可晚绑定重写的方法引用。
type InternalMethodIdent struct {
	Name string
}

func (*InternalMethodIdent) dtlNode()  {}
func (*InternalMethodIdent) exprNode() {}

// AssignExpr 单个赋值表达式 Left = Right。
type AssignExpr struct {
	Left  Expression
	Right Expression
}

func (*AssignExpr) dtlNode()  {}
func (*AssignExpr) exprNode() {}

// MultiAssignExpr 多目标赋值 Targets... = Value，Value 通常是一次调用
// （ref/out 参数展开，或属性适配器完成的 setter 调用）。
type MultiAssignExpr struct {
	Targets []Expression
	Value   Expression
}

func (*MultiAssignExpr) dtlNode()  {}
func (*MultiAssignExpr) exprNode() {}

// LineMultipleExpr 链式赋值展开后的逗号多重赋值：a, b, c = 0, 0, 0，
// Links 保留展开时从右到左构造、随后反转为从左到右的每一条赋值。
type LineMultipleExpr struct {
	Links []*AssignExpr
}

func (*LineMultipleExpr) dtlNode()  {}
func (*LineMultipleExpr) exprNode() {}

// TableEntry 表构造字面量的一个条目：Key 为 nil 表示按顺序追加的数组元素。
type TableEntry struct {
	Key   Expression
	Value Expression
}

// TableLiteral 表构造字面量，数组/映射/超级数组字面量的共同下降目标。
type TableLiteral struct {
	Entries []TableEntry
}

func (*TableLiteral) dtlNode()  {}
func (*TableLiteral) exprNode() {}

// FuncLitExpr 把一个函数字面量用作表达式值（闭包、箭头函数，或 yield 包装内层闭包）。
type FuncLitExpr struct {
	Lit *FuncLit
}

func (*FuncLitExpr) dtlNode()  {}
func (*FuncLitExpr) exprNode() {}

// PropertyAdapter 包裹一个可能被当作 get 或 set 使用的属性/事件标识符。
// IsGet 和 Invocation.Args 在赋值访问器/成员访问访问器完成前都可能被改写。
type PropertyAdapter struct {
	Name       string
	IsGet      bool
	Receiver   Expression // this 或成员访问左侧的表达式，访问前可能为 nil
	Invocation *Invocation
}

func (*PropertyAdapter) dtlNode()  {}
func (*PropertyAdapter) exprNode() {}

// ============================================================================
// 语句
// ============================================================================

// ExprStmt 表达式语句。
type ExprStmt struct {
	Expr Expression
}

func (*ExprStmt) dtlNode()  {}
func (*ExprStmt) stmtNode() {}

// LocalVar 单变量局部声明 local Name = Value（Value 可为 nil）。
type LocalVar struct {
	Name  string
	Value Expression
}

func (*LocalVar) dtlNode()  {}
func (*LocalVar) stmtNode() {}

// LocalVars 多变量、无初始值的局部声明 local a, b, c。
type LocalVars struct {
	Names []string
}

func (*LocalVars) dtlNode()  {}
func (*LocalVars) stmtNode() {}

// ReturnStmt return 语句，Values 为空表示裸 return。
type ReturnStmt struct {
	Values []Expression
}

func (*ReturnStmt) dtlNode()  {}
func (*ReturnStmt) stmtNode() {}

// BreakStmt break 语句。
type BreakStmt struct{}

func (*BreakStmt) dtlNode()  {}
func (*BreakStmt) stmtNode() {}

// IfStmt if/elseif/else。Else 为 nil、*Block 或另一个 *IfStmt（elif 链）。
type IfStmt struct {
	Cond Expression
	Then *Block
	Else Statement
}

func (*IfStmt) dtlNode()  {}
func (*IfStmt) stmtNode() {}

// WhileStmt while 循环。
type WhileStmt struct {
	Cond Expression
	Body *Block
}

func (*WhileStmt) dtlNode()  {}
func (*WhileStmt) stmtNode() {}

// RepeatUntilStmt repeat ... until Cond，do/while 降级为取反的 until 条件。
type RepeatUntilStmt struct {
	Body *Block
	Cond Expression
}

func (*RepeatUntilStmt) dtlNode()  {}
func (*RepeatUntilStmt) stmtNode() {}

// ForInStmt for Names... in Iterable do Body end。
type ForInStmt struct {
	Names    []string
	Iterable Expression
	Body     *Block
}

func (*ForInStmt) dtlNode()  {}
func (*ForInStmt) stmtNode() {}

// GotoStmt goto Label。
type GotoStmt struct {
	Label string
}

func (*GotoStmt) dtlNode()  {}
func (*GotoStmt) stmtNode() {}

// LabeledStmt ::Label:: 包裹被标记的语句。
type LabeledStmt struct {
	Label string
	Stmt  Statement
}

func (*LabeledStmt) dtlNode()  {}
func (*LabeledStmt) stmtNode() {}

// BlankLines 源码中保留的空行计数，供 dtlprint 原样重放间距。
type BlankLines struct {
	Count int
}

func (*BlankLines) dtlNode()  {}
func (*BlankLines) stmtNode() {}

// ShortComment 单行注释 // ...，Text 已去除分隔符。
type ShortComment struct {
	Text string
}

func (*ShortComment) dtlNode()  {}
func (*ShortComment) stmtNode() {}

// LongComment 块注释 /* ... */，Text 已去除分隔符。
type LongComment struct {
	Text string
}

func (*LongComment) dtlNode()  {}
func (*LongComment) stmtNode() {}

// Block 一组按源码行序排列的语句（含交错的注释/空行标记）。
type Block struct {
	Statements []Statement
}

func (*Block) dtlNode()  {}
func (*Block) stmtNode() {}

// BlockBlock 嵌套在另一个块内部、需要保留独立词法作用域的块。
type BlockBlock struct {
	Inner *Block
}

func (*BlockBlock) dtlNode()  {}
func (*BlockBlock) stmtNode() {}

// ============================================================================
// 适配器
// ============================================================================

// SwitchAdapter 持有 switch 小写语义的全部状态：主题临时变量、各分支条件、
// default 分支，以及 goto case/default 使用的合成标签。
type SwitchAdapter struct {
	Temp    string
	Subject Expression
	Arms    []*SwitchArm
	Default *Block
	Labels  map[string]string // 原始 case 值文本 -> 合成标签名（"default" 键对应 goto default）
}

func (*SwitchAdapter) dtlNode()  {}
func (*SwitchAdapter) stmtNode() {}

// SwitchArm 一个 case 分支：合并后的比较条件与语句体。
type SwitchArm struct {
	Cond Expression
	Body *Block
}

// GotoCaseAdapter 一个指向 SwitchAdapter 合成标签的 goto。
type GotoCaseAdapter struct {
	Label string
}

func (*GotoCaseAdapter) dtlNode()  {}
func (*GotoCaseAdapter) stmtNode() {}

// ResolvedLabel 返回该适配器要 goto 到的合成标签名，供 dtlprint 当作普通 GotoStmt 处理。
func (g *GotoCaseAdapter) ResolvedLabel() string { return g.Label }
