// Package metadata 加载翻译阶段用到的类型/方法改名表。
//
// 输入语言里的类型名、方法名有时需要映射成目标运行时里已经存在的名字
// （例如保留字冲突，或是对齐目标侧标准库的命名习惯）。这张表与被翻译的
// 语法树无关，是翻译之外独立配置的一份元数据，translate 阶段只读它。
package metadata

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// typeEntry 描述一条类型级改名规则
type typeEntry struct {
	MapTo   string            `toml:"map_to"`
	Methods map[string]string `toml:"methods"`
}

// fileFormat 是 TOML 配置文件的顶层结构
type fileFormat struct {
	Types map[string]typeEntry `toml:"types"`
}

// Provider 是只读的类型/方法改名表，翻译期间被反复查询但从不修改。
type Provider struct {
	types map[string]typeEntry
}

// Empty 返回一个不包含任何改名规则的 Provider，所有查询原样返回输入名字。
func Empty() *Provider {
	return &Provider{types: make(map[string]typeEntry)}
}

// Load 从一个 TOML 文件构建 Provider。
func Load(path string) (*Provider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取元数据文件失败: %w", err)
	}
	return Parse(data)
}

// Parse 从内存中的 TOML 内容构建 Provider，供 Load 和测试共用。
func Parse(data []byte) (*Provider, error) {
	var ff fileFormat
	if err := toml.Unmarshal(data, &ff); err != nil {
		return nil, fmt.Errorf("解析元数据文件失败: %w", err)
	}
	if ff.Types == nil {
		ff.Types = make(map[string]typeEntry)
	}
	return &Provider{types: ff.Types}, nil
}

// TypeMapName 返回某个 ISL 类型名在 DTL 侧应当使用的名字；没有配置改名规则时原样返回。
func (p *Provider) TypeMapName(islName string) string {
	if p == nil {
		return islName
	}
	if entry, ok := p.types[islName]; ok && entry.MapTo != "" {
		return entry.MapTo
	}
	return islName
}

// MethodMapName 返回某个类型下一个方法名在 DTL 侧应当使用的名字。
func (p *Provider) MethodMapName(islTypeName, methodName string) string {
	if p == nil {
		return methodName
	}
	entry, ok := p.types[islTypeName]
	if !ok || entry.Methods == nil {
		return methodName
	}
	if mapped, ok := entry.Methods[methodName]; ok && mapped != "" {
		return mapped
	}
	return methodName
}
