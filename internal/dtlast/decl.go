package dtlast

// FuncLit 一个可以成为方法体、访问器体的函数字面量。
type FuncLit struct {
	Params []string
	Body   *Block
}

// TypeKind 区分类型声明容器对应的 ISL 种类，决定 dtlprint 生成的构造壳。
type TypeKind int

const (
	TypeClass TypeKind = iota
	TypeStruct
	TypeInterface
	TypeEnum
)

// MethodMember 一个已登记到某个类型声明上的方法。
type MethodMember struct {
	Name      string
	Func      *FuncLit
	IsPrivate bool
}

// FieldMember 一个已登记到某个类型声明上的字段（含常量、降级为字段的属性/事件）。
type FieldMember struct {
	Name               string
	Init               Expression // 可为 nil（DTL 侧按 nil 处理）
	IsImmutableLiteral bool
	IsStatic           bool
	IsPrivate          bool
	IsReadOnly         bool
}

// PropertyMember 一个非自动属性：由 get/set 访问器函数支撑。
type PropertyMember struct {
	Name      string
	Get       *FuncLit // 恰好一个
	Set       *FuncLit // 至多一个，可为 nil
	IsStatic  bool
	IsPrivate bool
}

// EventMember 一个由 add/remove 访问器支撑的事件。
type EventMember struct {
	Name     string
	Add      *FuncLit
	Remove   *FuncLit
	IsStatic bool
}

// TypeDecl 一个类型声明容器：类/结构体/接口/枚举共用同一套成员集合，
// 成员在访问期间通过 AddField/AddMethod/... 附加，而非线性排列进语句流。
type TypeDecl struct {
	Kind       TypeKind
	Name       string
	TypeParams []string
	BaseTypes  []string

	Methods    []*MethodMember
	Fields     []*FieldMember
	Properties []*PropertyMember
	Events     []*EventMember

	// StaticReadOnlyAssignmentNames 记录了哪些非私有只读静态字段名曾作为赋值
	// 目标出现（由 lower 的 noteStaticReadOnlyTarget 追加）；读取这些字段时
	// BuildStaticFieldName 走裸名字。
	StaticReadOnlyAssignmentNames []string

	// EnumCases 仅 Kind == TypeEnum 时使用：按声明顺序的枚举成员名与取值。
	EnumCases []EnumCaseMember
}

// EnumCaseMember 一个枚举成员。
type EnumCaseMember struct {
	Name  string
	Value Expression // 可为 nil，由 dtlprint/lower 决定是否回退到序号
}

func (*TypeDecl) dtlNode()  {}
func (*TypeDecl) stmtNode() {}

// AddMethod 登记一个方法，私有性由调用方按 Symbol.DeclaredAccessibility 传入。
func (t *TypeDecl) AddMethod(name string, fn *FuncLit, isPrivate bool) {
	t.Methods = append(t.Methods, &MethodMember{Name: name, Func: fn, IsPrivate: isPrivate})
}

// AddField 登记一个字段（也用于降级为字段的自动属性/事件字段）。
func (t *TypeDecl) AddField(f *FieldMember) {
	t.Fields = append(t.Fields, f)
}

// AddProperty 登记一个由访问器支撑的属性。
func (t *TypeDecl) AddProperty(p *PropertyMember) {
	t.Properties = append(t.Properties, p)
}

// AddEvent 登记一个由 add/remove 访问器支撑的事件。
func (t *TypeDecl) AddEvent(e *EventMember) {
	t.Events = append(t.Events, e)
}

// NamespaceDecl 一个命名空间声明，容纳其内部嵌套的类型声明。
type NamespaceDecl struct {
	Name  string
	Types []*TypeDecl
}

func (*NamespaceDecl) dtlNode()  {}
func (*NamespaceDecl) stmtNode() {}

// CompilationUnit 是整棵输出树的根：一个源文件翻译后的结果。
type CompilationUnit struct {
	FilePath   string
	Namespaces []*NamespaceDecl
	Types      []*TypeDecl
	Statements []Statement // 顶层语句（入口文件场景）
}

func (*CompilationUnit) dtlNode()  {}
func (*CompilationUnit) stmtNode() {}

// AddNamespace 附加一个命名空间声明。
func (c *CompilationUnit) AddNamespace(n *NamespaceDecl) {
	c.Namespaces = append(c.Namespaces, n)
}

// AddType 附加一个顶层类型声明（不在任何命名空间下）。
func (c *CompilationUnit) AddType(t *TypeDecl) {
	c.Types = append(c.Types, t)
}

// AddStatement 附加一条顶层语句。
func (c *CompilationUnit) AddStatement(s Statement) {
	c.Statements = append(c.Statements, s)
}
