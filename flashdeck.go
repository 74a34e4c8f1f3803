package flashdeck

import (
	"log/slog"

	"github.com/aretw0/flashdeck/internal/platform"
	"github.com/aretw0/flashdeck/pkg/core"
)

// --- Types ---

// Entry is a public alias for a flashcard.
type Entry = core.Entry

// Category is a public alias for an entry category.
type Category = core.Category

// Store is a public alias for the collection store.
type Store = core.Store

// Draft is a public alias for the in-progress entry form.
type Draft = core.Draft

// Slot is a public alias for the persistence port.
type Slot = core.Slot

const (
	CategoryAll     = core.CategoryAll
	CategoryGeneral = core.CategoryGeneral
	CategoryStudy   = core.CategoryStudy
	CategoryWork    = core.CategoryWork
	CategoryDaily   = core.CategoryDaily
)

// Categories lists the assignable categories in display order.
func Categories() []Category {
	return core.Categories()
}

// NewDraft returns an empty draft.
func NewDraft() *Draft {
	return core.NewDraft()
}

// --- Configuration ---

// Option defines a functional option for configuring flashdeck.
type Option = platform.Option

// WithAdapter selects the slot adapter by name: "fs", "sqlite" or "memory".
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithSlot allows injecting a custom slot.
func WithSlot(slot Slot) Option {
	return platform.WithSlot(slot)
}

// WithKey sets the slot key the collection is stored under.
func WithKey(key string) Option {
	return platform.WithKey(key)
}

// WithLogger sets the logger for the store and its slot.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithForceTemp forces the use of a temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return platform.WithForceTemp(force)
}

// WithMustExist ensures the data directory must already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithReadOnly opens the slot without write access.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithDevSafety toggles the go run / go test sandbox.
func WithDevSafety(enabled bool) Option {
	return platform.WithDevSafety(enabled)
}

// WithIDGenerator replaces the UUID generator for new entries.
func WithIDGenerator(fn func() string) Option {
	return platform.WithIDGenerator(fn)
}

// --- Factory ---

// New opens a hydrated Store at path.
func New(path string, opts ...Option) (*Store, error) {
	return platform.New(path, opts...)
}

// DefaultDataDir returns where the collection lives when no path is given.
func DefaultDataDir(startDir string) string {
	return platform.DefaultDataDir(startDir)
}
