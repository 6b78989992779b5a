// Package watch reloads a dataset file when it changes on disk, so an
// open card view can follow external edits. The pipeline itself stays
// single-threaded: the watcher only hands freshly loaded record slices to
// a callback, and the owner decides on which loop to apply them.
package watch

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"cardview/internal/card"
	"cardview/internal/dataset"
)

// Watcher follows one dataset file. Close stops the goroutine and waits
// for it to exit.
type Watcher struct {
	fw     *fsnotify.Watcher
	logger *zap.Logger

	path     string
	idField  string
	onReload func([]card.Record)

	done chan struct{}
}

// New starts watching the dataset file. Editors typically replace files
// rather than write in place, so the parent directory is watched and
// events are matched by name.
func New(path, idField string, logger *zap.Logger, onReload func([]card.Record)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	w := &Watcher{
		fw:       fw,
		logger:   logger,
		path:     filepath.Clean(path),
		idField:  idField,
		onReload: onReload,
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			records, err := dataset.LoadFile(w.path, w.idField)
			if err != nil {
				// Keep showing the last good dataset on a bad write.
				w.logger.Warn("dataset reload failed", zap.String("path", w.path), zap.Error(err))
				continue
			}
			w.logger.Debug("dataset reloaded", zap.String("path", w.path), zap.Int("records", len(records)))
			w.onReload(records)
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", zap.Error(err))
		}
	}
}

// Close stops watching and joins the event loop.
func (w *Watcher) Close() error {
	err := w.fw.Close()
	<-w.done
	return err
}
