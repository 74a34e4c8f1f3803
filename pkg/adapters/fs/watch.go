package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/flashdeck/pkg/core"
)

// DebounceWindow coalesces the burst of events a single atomic write
// produces (create temp, write, rename).
const DebounceWindow = 50 * time.Millisecond

// Watch reports rewrites and removals of the file backing key until ctx
// is canceled. The returned channel is closed when watching stops.
func (s *Slot) Watch(ctx context.Context, key string) (<-chan core.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	// Watch the directory, not the file: atomic renames replace the inode.
	if err := watcher.Add(s.Dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", s.Dir, err)
	}

	events := make(chan core.Event)
	s.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer s.setWatcherActive(false)
		defer watcher.Close()
		return s.watchLoop(ctx, watcher, key, events)
	}, lifecycle.WithErrorHandler(s.handleWatchError))

	return events, nil
}

func (s *Slot) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, key string, out chan<- core.Event) error {
	target := key + Ext

	var (
		pending *core.Event
		timer   = time.NewTimer(DebounceWindow)
		fire    <-chan time.Time
	)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			if filepath.Base(event.Name) != target {
				continue
			}
			eType := mapEventType(event)
			if eType == "" {
				continue
			}
			s.config.Logger.Debug("slot event", "op", event.Op.String(), "path", event.Name)
			pending = &core.Event{Type: eType, Key: key, Timestamp: time.Now().Unix()}
			timer.Reset(DebounceWindow)
			fire = timer.C

		case <-fire:
			fire = nil
			if pending == nil {
				continue
			}
			select {
			case out <- *pending:
			case <-ctx.Done():
				return nil
			}
			pending = nil

		case wErr, ok := <-watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			s.handleWatchError(wErr)
		}
	}
}

func (s *Slot) handleWatchError(err error) {
	if s.config.ErrorHandler != nil {
		s.config.ErrorHandler(err)
		return
	}
	s.config.Logger.Error("slot watcher error", "error", err)
}

func mapEventType(event fsnotify.Event) core.EventType {
	switch {
	case event.Has(fsnotify.Create), event.Has(fsnotify.Write):
		return core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return core.EventDelete
	}
	return ""
}
