package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
)

// watchLevel starts a watcher for the level file ref and returns a channel
// of change notifications for that file only. Built-in level IDs cannot be
// watched.
func watchLevel(ref string) (<-chan string, func(), error) {
	info, err := os.Stat(ref)
	if err != nil || info.IsDir() {
		return nil, nil, fmt.Errorf("--watch needs a level file, got %q", ref)
	}
	target, err := filepath.Abs(ref)
	if err != nil {
		return nil, nil, err
	}

	w, err := levels.NewWatcher(target)
	if err != nil {
		return nil, nil, fmt.Errorf("watch %s: %w", ref, err)
	}

	out := make(chan string, 1)
	go func() {
		defer close(out)
		for {
			select {
			case name, ok := <-w.Events:
				if !ok {
					return
				}
				if abs, _ := filepath.Abs(name); abs != target {
					continue
				}
				logger.Debug("level changed", "path", target)
				select {
				case out <- target:
				default: // a reload is already pending
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Warn("level watcher", "error", err)
			}
		}
	}()

	stop := func() {
		if err := w.Close(); err != nil {
			logger.Warn("closing level watcher", "error", err)
		}
	}
	return out, stop, nil
}
