package metadata

import (
	"go.uber.org/zap"

	"github.com/fsnotify/fsnotify"
)

// Watcher 在元数据文件被修改时重新加载并回调，供 CLI 的 --watch 模式使用。
type Watcher struct {
	path   string
	w      *fsnotify.Watcher
	log    *zap.SugaredLogger
	onLoad func(*Provider)
	done   chan struct{}
}

// WatchFile 启动一个后台 goroutine，在 path 变化时重新 Load 并调用 onLoad。
// 调用方负责在不再需要时调用返回值的 Close。
func WatchFile(path string, log *zap.SugaredLogger, onLoad func(*Provider)) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(path); err != nil {
		w.Close()
		return nil, err
	}
	watcher := &Watcher{path: path, w: w, log: log, onLoad: onLoad, done: make(chan struct{})}
	go watcher.loop()
	return watcher, nil
}

func (w *Watcher) loop() {
	for {
		select {
		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			provider, err := Load(w.path)
			if err != nil {
				w.log.Warnw("重新加载元数据失败，保留上一份配置", "path", w.path, "error", err)
				continue
			}
			w.log.Infow("元数据文件已更新，重新加载", "path", w.path)
			w.onLoad(provider)
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			w.log.Warnw("元数据文件监视出错", "error", err)
		case <-w.done:
			return
		}
	}
}

// Close 停止监视并释放底层文件句柄。
func (w *Watcher) Close() error {
	close(w.done)
	return w.w.Close()
}
