package transfer

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	// DefaultFilename is the name offered for downloads.
	DefaultFilename = "flashcards.json"
	// MIMEType is the content type of JSON exports.
	MIMEType = "application/json"
)

// Format is a serialization format for exported collections.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// MIMEType returns the content type for f.
func (f Format) MIMEType() string {
	if f == FormatYAML {
		return "application/yaml"
	}
	return MIMEType
}

// ParseFormat maps a user supplied name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// FormatFromPath picks the format from a file extension. Anything that
// is not .yaml or .yml is JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}
