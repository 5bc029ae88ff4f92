package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/novalang/novalua/internal/ast"
	"github.com/novalang/novalua/internal/dtlast"
	"github.com/novalang/novalua/internal/errors"
	"github.com/novalang/novalua/internal/lower"
	"github.com/novalang/novalua/internal/metadata"
	"github.com/novalang/novalua/internal/parser"
	"github.com/novalang/novalua/internal/semantic"
)

// parseFile 解析单个源文件，解析期错误被包装为一个汇总 error。
func parseFile(path string) (*ast.File, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取 %s 失败: %w", path, err)
	}
	p := parser.New(string(source), path)
	file := p.Parse()
	if p.HasErrors() {
		var msg string
		for _, e := range p.Errors() {
			msg += e.Error() + "\n"
		}
		return nil, fmt.Errorf("解析 %s 失败:\n%s", path, msg)
	}
	return file, nil
}

// translateFile 跑完整条流水线：解析 -> 语义分析 -> 降级，返回输出编译单元。
func translateFile(path string, metaProvider *metadata.Provider, log *zap.SugaredLogger) (*dtlast.CompilationUnit, error) {
	file, err := parseFile(path)
	if err != nil {
		return nil, err
	}
	model, err := semantic.Analyze(file)
	if err != nil {
		return nil, fmt.Errorf("语义分析 %s 失败: %w", path, err)
	}
	transformer := lower.New(model, metaProvider, log)
	cu, err := transformer.Lower(file)
	if err != nil {
		if ce, ok := err.(*errors.CompileError); ok {
			return nil, fmt.Errorf("%s:%d:%d: [%s] %s", path, ce.Line, ce.Column, ce.Code, ce.Message)
		}
		return nil, err
	}
	return cu, nil
}

func loadMetadata(path string) (*metadata.Provider, error) {
	if path == "" {
		return metadata.Empty(), nil
	}
	return metadata.Load(path)
}
