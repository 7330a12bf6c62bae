package importer

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/alexanderramin/gradplan/internal/domain"
	"github.com/fsnotify/fsnotify"
)

// DefaultWatchDebounce collapses the burst of events editors emit on save.
const DefaultWatchDebounce = 200 * time.Millisecond

// CatalogReloadFunc receives the reloaded catalog or the load error.
type CatalogReloadFunc func(domain.Catalog, error)

// WatchCatalog watches the catalog file's directory and calls fn with a
// freshly loaded catalog after the file changes. It blocks until ctx is
// cancelled. The directory is watched so the file may be created later
// or replaced by rename.
func WatchCatalog(ctx context.Context, path string, debounce time.Duration, logger *slog.Logger, fn CatalogReloadFunc) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving catalog path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating catalog watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("catalog file changed", "path", abs, "op", event.Op.String())
			timer.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("catalog watcher error", "error", err)

		case <-timer.C:
			catalog, err := LoadCatalog(abs)
			if err != nil {
				logger.Warn("catalog reload failed", "path", abs, "error", err)
			}
			fn(catalog, err)
		}
	}
}
