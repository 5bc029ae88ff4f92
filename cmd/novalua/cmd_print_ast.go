package main

import (
	"fmt"

	"github.com/segmentio/encoding/json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/novalang/novalua/internal/ast"
)

// astDump 是 print-ast 的输出形状，只取每个顶层节点的 String() 表示，
// 足够给golden测试或人工检查用，不追求还原完整语法树结构。
type astDump struct {
	Namespace    string   `json:"namespace,omitempty"`
	Uses         []string `json:"uses,omitempty"`
	Declarations []string `json:"declarations,omitempty"`
	Statements   []string `json:"statements,omitempty"`
}

func newPrintASTCmd(log *zap.SugaredLogger) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "print-ast FILE",
		Short: "只解析，打印输入文件的语法树概要",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			file, err := parseFile(args[0])
			if err != nil {
				return err
			}
			dump := buildASTDump(file)
			if asJSON {
				data, err := json.MarshalIndent(dump, "", "  ")
				if err != nil {
					return fmt.Errorf("序列化语法树失败: %w", err)
				}
				fmt.Println(string(data))
				return nil
			}
			printASTText(dump)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "以 JSON 输出而不是文本")
	return cmd
}

func buildASTDump(file *ast.File) astDump {
	var dump astDump
	if file.Namespace != nil {
		dump.Namespace = file.Namespace.Name
	}
	for _, use := range file.Uses {
		if use.Alias != nil {
			dump.Uses = append(dump.Uses, fmt.Sprintf("%s as %s", use.Path, use.Alias.Name))
		} else {
			dump.Uses = append(dump.Uses, use.Path)
		}
	}
	for _, decl := range file.Declarations {
		dump.Declarations = append(dump.Declarations, decl.String())
	}
	for _, stmt := range file.Statements {
		dump.Statements = append(dump.Statements, stmt.String())
	}
	return dump
}

func printASTText(dump astDump) {
	if dump.Namespace != "" {
		fmt.Printf("Namespace: %s\n", dump.Namespace)
	}
	for _, use := range dump.Uses {
		fmt.Printf("Use: %s\n", use)
	}
	for i, decl := range dump.Declarations {
		fmt.Printf("Declaration[%d]: %s\n", i, decl)
	}
	for i, stmt := range dump.Statements {
		fmt.Printf("Statement[%d]: %s\n", i, stmt)
	}
}
