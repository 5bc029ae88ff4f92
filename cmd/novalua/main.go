// Command novalua 把 Nova 源文件翻译成目标脚本语言源码。
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	log := newLogger()
	defer log.Sync()

	root := &cobra.Command{
		Use:   "novalua",
		Short: "Nova 到 DTL 的源到源翻译器",
	}
	root.AddCommand(newTranslateCmd(log))
	root.AddCommand(newPrintASTCmd(log))
	root.AddCommand(newDumpDTLCmd(log))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger() *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true
	logger, err := cfg.Build()
	if err != nil {
		logger = zap.NewNop()
	}
	return logger.Sugar()
}
