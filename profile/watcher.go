package profile

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// pollInterval is the fallback re-scan cadence when fsnotify is
// unavailable on the platform.
const pollInterval = 2 * time.Second

// WatchDir watches a profile directory and delivers a fresh registry
// snapshot whenever a profile document is created, changed, or
// removed. The initial snapshot is sent immediately. Published
// registries are never mutated; each snapshot is built from scratch.
// The channel closes when the context is cancelled. Uses fsnotify
// with a polling fallback.
//
// Snapshots that fail to build (a half-written document mid-save) are
// skipped; the previous snapshot stays valid until the next clean scan.
func WatchDir(ctx context.Context, dir string) (<-chan *Registry, error) {
	initial, err := LoadDir(dir)
	if err != nil {
		return nil, err
	}

	ch := make(chan *Registry, 1)
	ch <- initial

	go func() {
		defer close(ch)

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			watchPolling(ctx, dir, ch)
			return
		}
		defer watcher.Close()

		if err := watcher.Add(dir); err != nil {
			watchPolling(ctx, dir, ch)
			return
		}

		watchWithNotify(ctx, dir, ch, watcher)
	}()

	return ch, nil
}

// watchWithNotify rebuilds snapshots on filesystem events.
func watchWithNotify(ctx context.Context, dir string, ch chan<- *Registry, watcher *fsnotify.Watcher) {
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !documentExtensions[strings.ToLower(filepath.Ext(event.Name))] {
				continue
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			publish(ctx, dir, ch)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			// Usually recoverable; keep watching.
			_ = err
		}
	}
}

// watchPolling re-scans the directory on a fixed cadence.
func watchPolling(ctx context.Context, dir string, ch chan<- *Registry) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			publish(ctx, dir, ch)
		}
	}
}

// publish builds and delivers a snapshot, dropping it if the receiver
// is not keeping up (the next event will supersede it anyway).
func publish(ctx context.Context, dir string, ch chan<- *Registry) {
	reg, err := LoadDir(dir)
	if err != nil {
		return
	}
	select {
	case ch <- reg:
	case <-ctx.Done():
	default:
	}
}
