// Package sqlite keeps slot values in a single SQLite table through gorm.
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/aretw0/flashdeck/pkg/core"
)

// DefaultFile is the database file name used when a directory is given.
const DefaultFile = "flashdeck.db"

// record is one slot row.
type record struct {
	Key       string `gorm:"primaryKey;column:slot_key"`
	Value     string
	UpdatedAt time.Time
}

func (record) TableName() string { return "slots" }

// Slot implements core.Slot on a SQLite database.
type Slot struct {
	db  *gorm.DB
	dsn string
}

// Open opens (creating if needed) the database at dsn and migrates the
// slots table. Use ":memory:" for a private in-memory database.
func Open(dsn string, log *slog.Logger) (*Slot, error) {
	if dsn == "" {
		dsn = DefaultFile
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if err := ensureDirForSQLite(dsn); err != nil {
		return nil, err
	}

	dbLogger := logger.New(
		slog.NewLogLogger(log.Handler(), slog.LevelWarn),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: dbLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	// One connection: a ":memory:" database exists per connection, and
	// SQLite serializes writers anyway.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&record{}); err != nil {
		return nil, fmt.Errorf("migrate db: %w", err)
	}

	return &Slot{db: db, dsn: dsn}, nil
}

// Load implements core.Slot.
func (s *Slot) Load(ctx context.Context, key string) ([]byte, error) {
	var rec record
	err := s.db.WithContext(ctx).Where("slot_key = ?", key).First(&rec).Error
	switch {
	case err == nil:
		return []byte(rec.Value), nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, core.ErrSlotEmpty
	default:
		return nil, fmt.Errorf("find slot %s: %w", key, err)
	}
}

// Store implements core.Slot. It upserts the row for key.
func (s *Slot) Store(ctx context.Context, key string, data []byte) error {
	rec := record{Key: key, Value: string(data), UpdatedAt: time.Now().UTC()}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&rec).Error
	if err != nil {
		return fmt.Errorf("save slot %s: %w", key, err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (s *Slot) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// ComponentType implements introspection.Component.
func (s *Slot) ComponentType() string {
	return "sqlite-slot"
}

// State implements introspection.Introspectable.
func (s *Slot) State() any {
	return map[string]string{"dsn": s.dsn}
}

var _ core.Slot = (*Slot)(nil)

// ensureDirForSQLite creates parent dir for SQLite file if needed.
func ensureDirForSQLite(dsn string) error {
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		return nil
	}
	clean := strings.TrimPrefix(dsn, "file:")
	clean = strings.Split(clean, "?")[0]
	dir := filepath.Dir(clean)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db dir %q: %w", dir, err)
	}
	return nil
}
