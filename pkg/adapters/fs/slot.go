// Package fs stores slot values as JSON files in a directory, one file
// per key, written atomically.
package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/aretw0/flashdeck/pkg/core"
)

// Ext is the file extension used for slot files.
const Ext = ".json"

// Config holds the configuration for the filesystem slot.
type Config struct {
	Dir          string
	MustExist    bool
	ReadOnly     bool
	Logger       *slog.Logger
	ErrorHandler func(error) // receives watcher failures; defaults to logging
}

// Slot implements core.Slot on top of a directory.
type Slot struct {
	Dir    string
	config Config

	mu            sync.RWMutex
	watcherActive bool
	swept         int
}

// NewSlot prepares the directory and removes temp files left behind by
// interrupted writes.
func NewSlot(config Config) (*Slot, error) {
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Slot{Dir: config.Dir, config: config}
	if err := s.initialize(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Slot) initialize() error {
	if s.config.MustExist || s.config.ReadOnly {
		info, err := os.Stat(s.Dir)
		if os.IsNotExist(err) {
			return fmt.Errorf("slot directory does not exist: %s", s.Dir)
		}
		if err != nil {
			return fmt.Errorf("failed to stat slot directory: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("slot path is not a directory: %s", s.Dir)
		}
	} else if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create slot directory: %w", err)
	}

	if s.config.ReadOnly {
		return nil
	}
	n, err := sweepTempFiles(s.Dir)
	if err != nil {
		s.config.Logger.Warn("temp file sweep failed", "dir", s.Dir, "error", err)
		return nil
	}
	if n > 0 {
		s.config.Logger.Debug("removed stale temp files", "dir", s.Dir, "count", n)
	}
	s.swept = n
	return nil
}

// Path returns the file backing key.
func (s *Slot) Path(key string) string {
	return filepath.Join(s.Dir, key+Ext)
}

// Load implements core.Slot.
func (s *Slot) Load(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, core.ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read slot %s: %w", key, err)
	}
	return data, nil
}

// Store implements core.Slot.
func (s *Slot) Store(ctx context.Context, key string, data []byte) error {
	if s.config.ReadOnly {
		return core.ErrReadOnly
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := WriteFileAtomic(s.Path(key), data, 0644); err != nil {
		return err
	}
	s.config.Logger.Debug("slot written", "path", s.Path(key), "bytes", len(data))
	return nil
}

var (
	_ core.Slot      = (*Slot)(nil)
	_ core.Watchable = (*Slot)(nil)
)
