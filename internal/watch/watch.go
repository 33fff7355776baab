// Package watch rebuilds the site when the content directory changes.
package watch

import (
	"context"
	"errors"
	"folio/internal/logger"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

const DefaultDebounce = 200 * time.Millisecond

// Watcher calls OnChange once per burst of file events under Dir.
type Watcher struct {
	Dir      string
	Debounce time.Duration
	// Timeout bounds a single OnChange call; zero means no bound.
	Timeout  time.Duration
	OnChange func(ctx context.Context) error
	Log      logger.Logger
}

// Run blocks until ctx is done or the underlying watcher fails.
func (w *Watcher) Run(ctx context.Context) error {
	if w.OnChange == nil {
		return errors.New("watch: OnChange is required")
	}
	log := w.Log
	if log == nil {
		log = logger.NewNop()
	}
	delay := w.Debounce
	if delay <= 0 {
		delay = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := addTree(fw, w.Dir); err != nil {
		return err
	}
	log.Info("watching for file changes", logger.String("dir", w.Dir))

	debounce := time.NewTimer(time.Hour)
	debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if ev.Op&fsnotify.Create != 0 {
				if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
					if err := addTree(fw, ev.Name); err != nil {
						log.Warn("watch new directory failed", logger.String("dir", ev.Name), logger.Err(err))
					}
				}
			}
			debounce.Reset(delay)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", logger.Err(err))
		case <-debounce.C:
			w.fire(ctx, log)
		}
	}
}

func (w *Watcher) fire(ctx context.Context, log logger.Logger) {
	runCtx := ctx
	if w.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, w.Timeout)
		defer cancel()
	}
	if err := w.OnChange(runCtx); err != nil {
		log.Error("rebuild failed", logger.Err(err))
	}
}

func addTree(fw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return fw.Add(path)
	})
}
