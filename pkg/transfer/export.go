package transfer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/flashdeck/pkg/adapters/fs"
	"github.com/aretw0/flashdeck/pkg/core"
)

// Marshal renders entries in format f. JSON output uses two-space
// indentation and ends with a newline.
func Marshal(entries []core.Entry, f Format) ([]byte, error) {
	if entries == nil {
		entries = []core.Entry{}
	}
	switch f {
	case FormatJSON, "":
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal json: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return nil, fmt.Errorf("marshal yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("marshal yaml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Export writes entries to w. It has no effect on any store.
func Export(w io.Writer, entries []core.Entry, f Format) error {
	data, err := Marshal(entries, f)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// ExportFile writes entries to path atomically, choosing the format from
// the file extension.
func ExportFile(path string, entries []core.Entry) error {
	data, err := Marshal(entries, FormatFromPath(path))
	if err != nil {
		return err
	}
	return fs.WriteFileAtomic(path, data, 0644)
}
