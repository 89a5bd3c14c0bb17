package monitors

import (
	"context"
	"log"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"

	"waterdeck/internal/eventbus"
)

// reloadDebounce collapses the burst of events editors produce on save
const reloadDebounce = 200 * time.Millisecond

// Watcher reloads the catalog into a store whenever the file changes on disk
type Watcher struct {
	path  string
	store Store
	bus   eventbus.EventBus
}

// NewWatcher creates a watcher for the catalog at path
func NewWatcher(path string, store Store, bus eventbus.EventBus) *Watcher {
	return &Watcher{path: path, store: store, bus: bus}
}

// Reload reads the catalog and replaces the store contents.
// The store is left untouched when the file cannot be read.
func (w *Watcher) Reload() (int, error) {
	monitors, err := LoadCatalog(w.path)
	if err != nil {
		return 0, err
	}
	w.store.Replace(monitors)
	return len(monitors), nil
}

// Run watches the catalog's directory until ctx is cancelled.
// The directory is watched rather than the file so atomic-rename saves are seen.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create watcher")
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return errors.Wrapf(err, "watch %s", dir)
	}
	log.Printf("Watching catalog %s for changes", w.path)

	target := filepath.Clean(w.path)
	var debounce *time.Timer
	fire := make(chan struct{}, 1)
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(reloadDebounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case <-fire:
			count, err := w.Reload()
			if err != nil {
				log.Printf("Catalog reload failed: %v", err)
				w.bus.Publish(eventbus.ErrorEvent{Message: "Catalog reload failed", Err: err})
				continue
			}
			log.Printf("Catalog reloaded from %s: %d monitors", w.path, count)
			w.bus.Publish(eventbus.CatalogReloadedEvent{Path: w.path, Count: count})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Catalog watcher error: %v", err)
			w.bus.Publish(eventbus.ErrorEvent{Message: "Catalog watcher error", Err: err})
		}
	}
}
