package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// ProjectDir is the per-project data directory marker.
const ProjectDir = ".flashdeck"

// FindRoot walks upwards from startDir looking for a project root, marked
// by a .flashdeck directory or a flashdeck.yaml file.
func FindRoot(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if hasFile(dir, ProjectDir) || hasFile(dir, "flashdeck.yaml") {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("root not found")
}

// DefaultDataDir picks where the collection lives when no path is
// configured: the .flashdeck directory of the enclosing project, or the
// user data directory ($XDG_DATA_HOME/flashdeck, ~/.local/share/flashdeck).
func DefaultDataDir(startDir string) string {
	if root, err := FindRoot(startDir); err == nil {
		return filepath.Join(root, ProjectDir)
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "flashdeck")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share", "flashdeck")
	}
	return ProjectDir
}

func hasFile(dir, name string) bool {
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}
