package draftport

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce coalesces the bursts of filesystem events an export rewrite
// produces into a single reconversion.
const debounce = 500 * time.Millisecond

// Watch converts once, then keeps running and reconverts every time the
// export file changes, until the context is cancelled. Overwriting is
// implied after the first run; a failed reconversion is logged and the
// watch continues, since the next export may well be valid again.
func Watch(ctx context.Context, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.reader != nil || o.input == "-" {
		return errors.New("watch mode requires a file input")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the parent directory rather than the file itself: exporters
	// replace the file by rename, which would silently drop a watch on the
	// file's own inode. The watch is registered before the initial
	// conversion so a rewrite landing mid-conversion is not missed.
	if err := watcher.Add(filepath.Dir(o.input)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(o.input), err)
	}

	if _, err := convert(ctx, o); err != nil {
		return err
	}
	o.overwrite = true
	o.logger.Info("watching export", "path", o.input)

	exportPath := filepath.Clean(o.input)
	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return errors.New("watcher events channel closed")
			}
			if filepath.Clean(event.Name) != exportPath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			o.logger.Debug("export changed", "op", event.Op.String())
			pending = time.After(debounce)

		case <-pending:
			pending = nil
			if res, err := convert(ctx, o); err != nil {
				o.logger.Error("reconversion failed", "error", err)
			} else {
				o.logger.Info("reconverted", "written", res.NotesWritten)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return errors.New("watcher errors channel closed")
			}
			o.logger.Error("watch error", "error", err)
		}
	}
}
