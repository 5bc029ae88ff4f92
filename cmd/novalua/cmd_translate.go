package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/segmentio/encoding/json"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/novalang/novalua/internal/dtlprint"
	"github.com/novalang/novalua/internal/metadata"
)

// diagnosticEntry 是 --json-diagnostics 的结构化输出形状，一个文件一条。
type diagnosticEntry struct {
	File  string `json:"file"`
	Error string `json:"error,omitempty"`
}

func newTranslateCmd(log *zap.SugaredLogger) *cobra.Command {
	var (
		metaPath   string
		outDir     string
		watch      bool
		jsonDiag   bool
	)

	cmd := &cobra.Command{
		Use:   "translate FILE...",
		Short: "把一组 Nova 源文件翻译为 DTL 源码",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			metaProvider, err := loadMetadata(metaPath)
			if err != nil {
				return err
			}

			entries := translateAll(args, metaProvider, outDir, log)
			if jsonDiag {
				printDiagnosticsJSON(entries)
			}
			combined := aggregateErrors(entries)

			if watch && metaPath != "" {
				watcher, err := metadata.WatchFile(metaPath, log, func(p *metadata.Provider) {
					metaProvider = p
					log.Infow("元数据已重新加载，重新翻译", "files", args)
					entries := translateAll(args, metaProvider, outDir, log)
					if jsonDiag {
						printDiagnosticsJSON(entries)
					}
				})
				if err != nil {
					return fmt.Errorf("启动元数据监视失败: %w", err)
				}
				defer watcher.Close()
				log.Infow("监视模式已启动，按 Ctrl+C 退出", "metadata", metaPath)
				select {}
			}

			return combined
		},
	}

	cmd.Flags().StringVar(&metaPath, "metadata", "", "类型/方法改名表 TOML 文件路径")
	cmd.Flags().StringVarP(&outDir, "output", "o", "", "输出目录（缺省时写到标准输出）")
	cmd.Flags().BoolVar(&watch, "watch", false, "监视 --metadata 文件变化并重新翻译")
	cmd.Flags().BoolVar(&jsonDiag, "json-diagnostics", false, "以 JSON 形式输出每个文件的诊断结果")
	return cmd
}

func translateAll(paths []string, metaProvider *metadata.Provider, outDir string, log *zap.SugaredLogger) []diagnosticEntry {
	entries := make([]diagnosticEntry, 0, len(paths))
	for _, path := range paths {
		cu, err := translateFile(path, metaProvider, log)
		if err != nil {
			log.Errorw("翻译失败", "file", path, "error", err)
			entries = append(entries, diagnosticEntry{File: path, Error: err.Error()})
			continue
		}
		out := dtlprint.New().Print(cu)
		if outDir == "" {
			fmt.Println(out)
		} else {
			if werr := writeOutput(outDir, path, out); werr != nil {
				entries = append(entries, diagnosticEntry{File: path, Error: werr.Error()})
				continue
			}
		}
		entries = append(entries, diagnosticEntry{File: path})
	}
	return entries
}

func aggregateErrors(entries []diagnosticEntry) error {
	var combined error
	for _, e := range entries {
		if e.Error != "" {
			combined = multierr.Append(combined, fmt.Errorf("%s: %s", e.File, e.Error))
		}
	}
	return combined
}

func printDiagnosticsJSON(entries []diagnosticEntry) {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "序列化诊断结果失败:", err)
		return
	}
	fmt.Println(string(data))
}

func writeOutput(outDir, srcPath, content string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	base := strings.TrimSuffix(filepath.Base(srcPath), filepath.Ext(srcPath))
	dest := filepath.Join(outDir, base+".lua")
	return os.WriteFile(dest, []byte(content), 0o644)
}
