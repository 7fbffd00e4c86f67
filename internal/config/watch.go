package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/san-kum/gaugekit/internal/logger"
)

// Watch reloads the widget file at path whenever it changes and hands the
// result to fn. A reload that fails to parse is passed as an error and the
// watch continues. Watch blocks until ctx is done and releases the
// underlying watcher before returning, so fn is never called afterwards.
func Watch(ctx context.Context, path string, fn func(*Widget, error)) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer watcher.Close()

	// the directory is watched so saves that replace the file are seen
	file := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(file)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case e, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(e.Name) != file || e.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			logger.Debug().Str("path", e.Name).Str("op", e.Op.String()).Msg("widget config changed")
			w, err := Load(path)
			fn(w, err)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Str("path", path).Msg("watch error")
		}
	}
}
