package main

import (
	"fmt"

	"github.com/segmentio/encoding/json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newDumpDTLCmd(log *zap.SugaredLogger) *cobra.Command {
	var metaPath string

	cmd := &cobra.Command{
		Use:   "dump-dtl FILE",
		Short: "翻译输入文件并以 JSON 形式打印输出编译单元（供黄金测试比对结构而非文本）",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			metaProvider, err := loadMetadata(metaPath)
			if err != nil {
				return err
			}
			cu, err := translateFile(args[0], metaProvider, log)
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(cu, "", "  ")
			if err != nil {
				return fmt.Errorf("序列化 DTL 编译单元失败: %w", err)
			}
			fmt.Println(string(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&metaPath, "metadata", "", "类型/方法改名表 TOML 文件路径")
	return cmd
}
