package fs

import (
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// sweepTempFiles deletes leftovers of WriteFileAtomic calls that died
// before their rename. It returns how many files were removed.
func sweepTempFiles(dir string) (int, error) {
	matches, err := doublestar.Glob(os.DirFS(dir), TempFilePrefix+"*")
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, m := range matches {
		if err := os.Remove(filepath.Join(dir, m)); err != nil && !os.IsNotExist(err) {
			return removed, err
		}
		removed++
	}
	return removed, nil
}
