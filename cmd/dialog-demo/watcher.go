package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/imoya/tuidialog/logging"
)

// debounceWindow coalesces the burst of fsnotify events an editor emits
// for a single save.
const debounceWindow = 250 * time.Millisecond

// ConfigWatcher monitors the config file for external edits so the demo
// can apply new colors and labels without a restart.
type ConfigWatcher struct {
	watcher    *fsnotify.Watcher
	configPath string
	reloadCh   chan struct{}
	closeCh    chan struct{}
	closeOnce  sync.Once
}

// NewConfigWatcher creates a watcher for the given config file. The
// parent directory is watched, not the file itself, so atomic
// save-and-rename editors keep triggering events.
func NewConfigWatcher(configPath string) (*ConfigWatcher, error) {
	resolved := configPath
	if abs, err := filepath.Abs(configPath); err == nil {
		resolved = abs
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	dir := filepath.Dir(resolved)
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch directory %s: %w", dir, err)
	}

	cw := &ConfigWatcher{
		watcher:    w,
		configPath: resolved,
		reloadCh:   make(chan struct{}, 1),
		closeCh:    make(chan struct{}),
	}
	go cw.watchLoop()
	return cw, nil
}

func (cw *ConfigWatcher) watchLoop() {
	log := logging.ForComponent(logging.CompConfig)
	debounce := time.NewTimer(0)
	if !debounce.Stop() {
		<-debounce.C
	}
	pending := false

	for {
		select {
		case <-cw.closeCh:
			return

		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filepath.Base(cw.configPath) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !pending {
				pending = true
				debounce.Reset(debounceWindow)
			}

		case <-debounce.C:
			if !pending {
				continue
			}
			pending = false
			if _, err := os.Stat(cw.configPath); err != nil {
				continue
			}
			log.Debug("config file changed", "path", cw.configPath)
			select {
			case cw.reloadCh <- struct{}{}:
			default:
			}

		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			log.Warn("config watcher error", "error", err)
		}
	}
}

// Reloads returns the channel that receives a signal per external edit.
func (cw *ConfigWatcher) Reloads() <-chan struct{} {
	return cw.reloadCh
}

// Close stops the watcher. Safe to call more than once.
func (cw *ConfigWatcher) Close() {
	cw.closeOnce.Do(func() {
		close(cw.closeCh)
		cw.watcher.Close()
	})
}
