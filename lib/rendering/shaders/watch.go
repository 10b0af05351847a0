package shaders

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fosdem/shaderdemo/lib/log"
	"github.com/jhenstridge/go-inotify"
)

// Watch calls changed whenever one of the files is rewritten, until ctx
// is done. The containing directories are watched rather than the files,
// so that editors replacing a file by renaming are noticed too.
func Watch(ctx context.Context, files []string, changed func()) error {
	logger := log.Module("shaders")

	watcher, err := inotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("could not create inotify watcher: %w", err)
	}

	wanted := make(map[string]bool)
	dirs := make(map[string]bool)
	for _, f := range files {
		f = filepath.Clean(f)
		wanted[f] = true
		dirs[filepath.Dir(f)] = true
	}
	for dir := range dirs {
		_, err = watcher.Watch(dir)
		if err != nil {
			_ = watcher.Close()
			return fmt.Errorf("could not watch %s: %w", dir, err)
		}
	}

	go func() {
		<-ctx.Done()
		err := watcher.Close()
		if err != nil {
			logger.Warn("could not close inotify watcher", "err", err)
		}
	}()

	go func() {
		for ev := range watcher.Event {
			if ev.Mask&(inotify.IN_CLOSE_WRITE|inotify.IN_MOVED_TO) == 0 {
				continue
			}
			name := filepath.Join(ev.Watch.Path, ev.Name)
			if !wanted[name] {
				continue
			}
			logger.Debug("shader changed: " + name)
			time.Sleep(100 * time.Millisecond)
			changed()
		}
	}()

	return nil
}
