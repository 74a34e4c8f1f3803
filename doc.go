// Package flashdeck is the composition root for the flashdeck flashcard
// manager.
//
// It connects the core collection logic (pkg/core) with the slot adapters
// that persist it (pkg/adapters/...) using the hexagonal architecture
// pattern. The core never talks to a file, a database or a clock directly;
// it sees a single key/value Slot.
//
// Features:
//
//   - **Single Collection**: an ordered list of question/answer entries,
//     each filed under one category and tagged with free-form labels.
//   - **Write Through**: every accepted mutation is persisted before the
//     call returns.
//   - **Degraded Mode**: if the slot cannot be read or written the store
//     keeps working in memory and reports ErrStorageUnavailable.
//   - **Adapters**: "fs" (one JSON file, atomic writes, fsnotify watch),
//     "sqlite" (gorm) and "memory".
//   - **Transfer**: JSON/YAML export and validated import (pkg/transfer).
//
// Usage:
//
//	store, err := flashdeck.New("./data", flashdeck.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//	defer store.Close()
//
//	ok, err := store.Add(ctx, "What is 2+2?", "4", flashdeck.CategoryStudy, []string{"math"})
package flashdeck
