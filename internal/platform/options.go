package platform

import (
	"log/slog"

	"github.com/aretw0/flashdeck/pkg/core"
)

// options holds the internal configuration for opening a flashdeck store.
type options struct {
	slot      core.Slot
	logger    *slog.Logger
	adapter   string
	key       string
	config    map[string]any
	idFactory func() string
}

// Option defines a functional option for configuring flashdeck.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		adapter: "fs",
		key:     core.DefaultKey,
		config:  make(map[string]any),
	}
}

// WithLogger sets the logger for the store and its slot.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithSlot allows injecting a custom slot (e.g. a test fake).
// If provided, the adapter setting is ignored.
func WithSlot(slot core.Slot) Option {
	return func(o *options) {
		o.slot = slot
	}
}

// WithAdapter selects the slot adapter by name: "fs", "sqlite" or "memory".
// Defaults to "fs".
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}

// WithKey sets the slot key the collection is stored under.
func WithKey(key string) Option {
	return func(o *options) {
		if key != "" {
			o.key = key
		}
	}
}

// WithIDGenerator replaces the UUID generator for new entries.
func WithIDGenerator(fn func() string) Option {
	return func(o *options) {
		o.idFactory = fn
	}
}

// WithMustExist requires the data directory to exist already.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.config["must_exist"] = must
	}
}

// WithForceTemp forces the use of a temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return func(o *options) {
		o.config["temp_dir"] = force
	}
}

// WithReadOnly opens the slot read-only. Mutations still apply in memory
// but the store degrades to memory-only mode on the first write.
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.config["read_only"] = enabled
	}
}

// WithDevSafety controls the sandbox used when running via `go run` or
// `go test`. By default (true) the data directory is redirected to a
// temporary directory so development runs never touch real data.
func WithDevSafety(enabled bool) Option {
	return func(o *options) {
		o.config["dev_safety"] = enabled
	}
}

// WithWatchErrorHandler registers a callback for slot watcher failures.
func WithWatchErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.config["watch_error_handler"] = fn
	}
}
