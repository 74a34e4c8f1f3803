package transfer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/flashdeck/pkg/core"
)

// wireEntry is the lenient import shape: every field may be missing.
type wireEntry struct {
	ID       string   `json:"id"`
	Front    string   `json:"front"`
	Back     string   `json:"back"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

// Unmarshal parses data in format f into a normalized collection.
func Unmarshal(data []byte, f Format) ([]core.Entry, error) {
	doc, err := toJSON(data, f)
	if err != nil {
		return nil, err
	}
	if err := checkShape(doc); err != nil {
		return nil, err
	}

	var wire []wireEntry
	if err := json.Unmarshal(doc, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	entries := make([]core.Entry, 0, len(wire))
	seen := make(map[string]struct{}, len(wire))
	for i, w := range wire {
		e := core.Entry{
			ID:       strings.TrimSpace(w.ID),
			Front:    strings.TrimSpace(w.Front),
			Back:     strings.TrimSpace(w.Back),
			Category: core.ParseCategory(w.Category),
			Tags:     core.NormalizeTags(w.Tags),
		}
		// A repeated id would make DeleteByID ambiguous.
		if _, dup := seen[e.ID]; e.ID == "" || dup {
			e.ID = uuid.NewString()
		}
		seen[e.ID] = struct{}{}
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("%w at position %d: %v", ErrInvalidEntry, i, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// toJSON decodes data and re-encodes it as JSON so a single schema
// covers every input format.
func toJSON(data []byte, f Format) ([]byte, error) {
	switch f {
	case FormatJSON, "":
		if !json.Valid(data) {
			var probe any
			err := json.Unmarshal(data, &probe)
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		return data, nil
	case FormatYAML:
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		out, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Import reads a collection from r.
func Import(r io.Reader, f Format) ([]core.Entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read import: %w", err)
	}
	return Unmarshal(data, f)
}

// ImportFile reads a collection from path, choosing the format from the
// file extension.
func ImportFile(path string) ([]core.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read import: %w", err)
	}
	return Unmarshal(data, FormatFromPath(path))
}

// Apply replaces the store's collection with entries. The store persists
// the new collection immediately.
func Apply(ctx context.Context, s *core.Store, entries []core.Entry) error {
	return s.Replace(ctx, entries)
}

// ImportInto parses r and, only on success, replaces the store's
// collection. On failure the store is left untouched.
func ImportInto(ctx context.Context, s *core.Store, r io.Reader, f Format) (int, error) {
	entries, err := Import(r, f)
	if err != nil {
		return 0, err
	}
	if err := Apply(ctx, s, entries); err != nil {
		return len(entries), err
	}
	return len(entries), nil
}
