package platform

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/flashdeck/pkg/adapters/fs"
	"github.com/aretw0/flashdeck/pkg/adapters/memory"
	"github.com/aretw0/flashdeck/pkg/adapters/sqlite"
	"github.com/aretw0/flashdeck/pkg/core"
)

// New opens the slot described by uri and opts, builds a Store on top of
// it and hydrates it. The uri is adapter-specific: a directory for "fs",
// a database file or directory for "sqlite", ignored for "memory".
//
// A slot that cannot be read does not fail New: the store comes back in
// memory-only mode and the problem is logged.
//
//	store, err := platform.New("./data", platform.WithAdapter("sqlite"))
func New(uri string, opts ...Option) (*core.Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	slot, err := openSlot(uri, o)
	if err != nil {
		return nil, err
	}

	storeOpts := []core.StoreOption{
		core.WithKey(o.key),
		core.WithStoreLogger(o.logger),
	}
	if o.idFactory != nil {
		storeOpts = append(storeOpts, core.WithIDGenerator(o.idFactory))
	}
	store := core.NewStore(slot, storeOpts...)

	if err := store.Hydrate(context.Background()); err != nil {
		if !errors.Is(err, core.ErrStorageUnavailable) {
			return nil, err
		}
		o.log().Warn("storage unavailable, changes will not be saved this session", "error", err)
	}

	return store, nil
}

// OpenSlot opens only the slot, without a store.
func OpenSlot(uri string, opts ...Option) (core.Slot, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return openSlot(uri, o)
}

func openSlot(uri string, o *options) (core.Slot, error) {
	var (
		slot core.Slot
		err  error
	)
	switch {
	case o.slot != nil:
		slot = o.slot
	case o.adapter == "fs" || o.adapter == "":
		// the fs adapter enforces read-only mode itself
		return initFS(uri, o)
	default:
		slot, err = openAdapter(uri, o)
	}
	if err != nil {
		return nil, err
	}

	if isReadOnly, _ := o.config["read_only"].(bool); isReadOnly {
		return readOnlySlot{slot}, nil
	}
	return slot, nil
}

func openAdapter(uri string, o *options) (core.Slot, error) {
	switch o.adapter {
	case "sqlite":
		return initSQLite(uri, o)
	case "memory":
		return memory.NewSlot(), nil
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}
}

// readOnlySlot rejects writes for adapters without a native read-only mode.
type readOnlySlot struct {
	core.Slot
}

func (readOnlySlot) Store(context.Context, string, []byte) error {
	return core.ErrReadOnly
}

func (r readOnlySlot) Watch(ctx context.Context, key string) (<-chan core.Event, error) {
	if w, ok := r.Slot.(core.Watchable); ok {
		return w.Watch(ctx, key)
	}
	return nil, core.ErrWatchUnsupported
}

func (r readOnlySlot) Close() error {
	if c, ok := r.Slot.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (o *options) log() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// resolve applies the dev sandbox rules to a user supplied path.
func (o *options) resolve(path string) string {
	tempDir, _ := o.config["temp_dir"].(bool)
	isReadOnly, _ := o.config["read_only"].(bool)
	devSafety := true
	if val, ok := o.config["dev_safety"].(bool); ok {
		devSafety = val
	}

	// Read-only runs cannot damage anything.
	bypassSafety := isReadOnly || !devSafety
	useTemp := tempDir || (IsDevRun() && !bypassSafety)
	resolved := ResolvePath(path, useTemp)

	if useTemp && resolved != filepath.Clean(path) {
		o.log().Warn("running in SAFE MODE (dev/test sandbox)", "original_path", path, "resolved_path", resolved)
	} else if IsDevRun() && bypassSafety {
		o.log().Debug("dev sandbox bypassed", "path", resolved, "read_only", isReadOnly)
	}
	return resolved
}

func initFS(path string, o *options) (core.Slot, error) {
	mustExist, _ := o.config["must_exist"].(bool)
	isReadOnly, _ := o.config["read_only"].(bool)
	errorHandler, _ := o.config["watch_error_handler"].(func(error))

	slot, err := fs.NewSlot(fs.Config{
		Dir:          o.resolve(path),
		MustExist:    mustExist,
		ReadOnly:     isReadOnly,
		Logger:       o.log(),
		ErrorHandler: errorHandler,
	})
	if err != nil {
		return nil, err
	}
	return slot, nil
}

func initSQLite(uri string, o *options) (core.Slot, error) {
	dsn := uri
	if !strings.Contains(uri, ":memory:") && !strings.Contains(uri, "mode=memory") {
		dsn = o.resolve(uri)
		if !isDatabaseFile(dsn) {
			dsn = filepath.Join(dsn, sqlite.DefaultFile)
		}
	}

	slot, err := sqlite.Open(dsn, o.log())
	if err != nil {
		return nil, err
	}
	return slot, nil
}

// isDatabaseFile reports whether path names a database file rather than
// the directory to keep one in. Existing paths are judged by what they
// are; new ones by their extension.
func isDatabaseFile(path string) bool {
	if info, err := os.Stat(path); err == nil {
		return !info.IsDir()
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}
