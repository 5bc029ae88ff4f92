// Package lower 实现从 internal/ast 语法树到 internal/dtlast 输出树的降级。
//
// Transformer 是这个包的全部：一趟自顶向下的递归访问者，消费
// internal/semantic.Model 与 internal/metadata.Provider 两个只读协作者，
// 产出一棵 internal/dtlast.CompilationUnit。翻译单元内部失败即整体失败——
// 没有局部恢复，调用方靠 panic/recover 拿到第一个遇到的错误并原样返回。
package lower

import (
	"fmt"

	"github.com/novalang/novalua/internal/ast"
	"github.com/novalang/novalua/internal/dtlast"
	"github.com/novalang/novalua/internal/errors"
	"github.com/novalang/novalua/internal/metadata"
	"github.com/novalang/novalua/internal/semantic"
	"go.uber.org/zap"
)

// tempPoolSize 是单个函数可用的临时标识符上限，超出即编译期硬错误。
const tempPoolSize = 64

// operatorRemap 是 4.3 节的固定运算符重映射表；不在表中的运算符原样透传。
var operatorRemap = map[string]string{
	"!=": "~=",
	"!":  "not",
	"&&": "and",
	"||": "or",
	"??": "or",
}

func remapOperator(raw string) string {
	if mapped, ok := operatorRemap[raw]; ok {
		return mapped
	}
	return raw
}

// funcContext 是方法/访问器/闭包体降级期间的当前函数上下文。
type funcContext struct {
	tempIndex    int
	hasYield     bool
	isStatic     bool
	isStaticCtor bool
	returnsVoid  bool
	returnArg    string // yield 包装时 System.Yield 的元素类型实参
}

// typeContext 是类型声明体降级期间的当前类型上下文。
type typeContext struct {
	name  string
	kind  dtlast.TypeKind
	final bool // 来自 ClassDecl.Final：禁止晚绑定改写为 internal-method
	decl  *dtlast.TypeDecl
}

// switchContext 持有一个 switch 小写过程的全部状态。
type switchContext struct {
	adapter *dtlast.SwitchAdapter
}

func (sw *switchContext) labelFor(key string) string {
	if sw.adapter.Labels == nil {
		sw.adapter.Labels = make(map[string]string)
	}
	if lbl, ok := sw.adapter.Labels[key]; ok {
		return lbl
	}
	lbl := "label_" + key
	sw.adapter.Labels[key] = lbl
	return lbl
}

// blockContext 是语句发射的当前目标块；增量、ref/out 调用与假值三元展开
// 在返回表达式的同时把合成语句塞进这里。
type blockContext struct {
	block *dtlast.Block
}

func (b *blockContext) emit(stmt dtlast.Statement) {
	b.block.Statements = append(b.block.Statements, stmt)
}

// Transformer 是降级过程的全部可变状态：四个上下文栈加两个只读协作者。
type Transformer struct {
	model    *semantic.Model
	metadata *metadata.Provider
	log      *zap.SugaredLogger

	types   []*typeContext
	funcs   []*funcContext
	switches []*switchContext
	blocks  []*blockContext

	// loopLabels 辅助 continue 语句的降级：Nova 的 continue 在这个 AST 里没有
	// spec.md 描述的 DTL 原语对应物，借用 goto/label 模拟，标签在每个循环体
	// 末尾合成，continue 引用最内层循环的标签。
	loopLabels []string
	loopCount  int

	filePath string
}

func (t *Transformer) pushLoopLabel() string {
	label := fmt.Sprintf("continue_%d", t.loopCount)
	t.loopCount++
	t.loopLabels = append(t.loopLabels, label)
	return label
}

func (t *Transformer) popLoopLabel() { t.loopLabels = t.loopLabels[:len(t.loopLabels)-1] }

func (t *Transformer) curLoopLabel() (string, bool) {
	if len(t.loopLabels) == 0 {
		return "", false
	}
	return t.loopLabels[len(t.loopLabels)-1], true
}

// New 创建一个消费给定语义模型与元数据表的 Transformer。metaProvider 可以是
// nil 或 metadata.Empty()，两者行为一致（名字恒等映射）。log 可以是 nil，
// 此时退化为不记录警告。
func New(model *semantic.Model, metaProvider *metadata.Provider, log *zap.SugaredLogger) *Transformer {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Transformer{model: model, metadata: metaProvider, log: log}
}

// loweringError 是 panic/recover 内部传递的唯一错误载体。
type loweringError struct {
	err *errors.CompileError
}

func (t *Transformer) raise(code string, pos ast.Node, format string, args ...interface{}) {
	p := pos.Pos()
	panic(loweringError{err: &errors.CompileError{
		Code:    code,
		Level:   errors.LevelError,
		Message: fmt.Sprintf(format, args...),
		File:    p.Filename,
		Line:    p.Line,
		Column:  p.Column,
	}})
}

func (t *Transformer) raiseUnsupported(pos ast.Node, what string) {
	t.raise(errors.E0801, pos, "不支持的节点: %s", what)
}

func (t *Transformer) raiseInvariant(pos ast.Node, what string) {
	t.raise(errors.E0802, pos, "降级不变式被破坏: %s", what)
}

func (t *Transformer) raiseCollaborator(pos ast.Node, what string) {
	t.raise(errors.E0803, pos, "语义协作者查询失败: %s", what)
}

func (t *Transformer) raiseFallthrough(pos ast.Node, label string) {
	t.raise(errors.E0804, pos, "switch 分支 %s 隐式贯穿到下一分支，DTL 的 if/elseif 展开无法表达 fallthrough", label)
}

// Lower 把一棵完整的源文件语法树降级为一个 DTL 编译单元。
func (t *Transformer) Lower(file *ast.File) (cu *dtlast.CompilationUnit, err error) {
	defer func() {
		if r := recover(); r != nil {
			if le, ok := r.(loweringError); ok {
				err = le.err
				return
			}
			panic(r)
		}
	}()
	t.filePath = file.Filename
	cu = t.visitCompilationUnit(file)
	return cu, nil
}

// ---------------------------------------------------------------------------
// 上下文栈
// ---------------------------------------------------------------------------

func (t *Transformer) pushType(tc *typeContext) { t.types = append(t.types, tc) }
func (t *Transformer) popType()                 { t.types = t.types[:len(t.types)-1] }
func (t *Transformer) curType() *typeContext {
	if len(t.types) == 0 {
		return nil
	}
	return t.types[len(t.types)-1]
}

func (t *Transformer) pushFunc(fc *funcContext) { t.funcs = append(t.funcs, fc) }
func (t *Transformer) popFunc()                 { t.funcs = t.funcs[:len(t.funcs)-1] }
func (t *Transformer) curFunc() *funcContext {
	if len(t.funcs) == 0 {
		return nil
	}
	return t.funcs[len(t.funcs)-1]
}

func (t *Transformer) pushSwitch(sw *switchContext) { t.switches = append(t.switches, sw) }
func (t *Transformer) popSwitch()                   { t.switches = t.switches[:len(t.switches)-1] }
func (t *Transformer) curSwitch() *switchContext {
	if len(t.switches) == 0 {
		return nil
	}
	return t.switches[len(t.switches)-1]
}

func (t *Transformer) pushBlock(b *dtlast.Block) { t.blocks = append(t.blocks, &blockContext{block: b}) }
func (t *Transformer) popBlock()                 { t.blocks = t.blocks[:len(t.blocks)-1] }
func (t *Transformer) curBlock() *blockContext {
	if len(t.blocks) == 0 {
		return nil
	}
	return t.blocks[len(t.blocks)-1]
}

func (t *Transformer) emit(stmt dtlast.Statement) {
	b := t.curBlock()
	if b == nil {
		t.raiseInvariant(&ast.Identifier{}, "在没有当前块的情况下发射语句")
		return
	}
	b.emit(stmt)
}

// ---------------------------------------------------------------------------
// 临时标识符
// ---------------------------------------------------------------------------

func tempName(index int) string { return fmt.Sprintf("t%d", index+1) }

// freshTemp 从当前函数的固定池中取出下一个临时标识符，池耗尽是硬错误。
func (t *Transformer) freshTemp(pos ast.Node) string {
	fc := t.curFunc()
	if fc == nil {
		t.raiseInvariant(pos, "在没有当前函数的情况下请求临时标识符")
	}
	if fc.tempIndex >= tempPoolSize {
		t.raise(errors.E0800, pos, "临时标识符池已耗尽（池大小 %d）", tempPoolSize)
	}
	name := tempName(fc.tempIndex)
	fc.tempIndex++
	return name
}
