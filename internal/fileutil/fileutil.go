// Package fileutil provides small filesystem helpers shared by the pipeline
// stages: deterministic tile listings, directory creation, and size
// accounting for run summaries.
package fileutil

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ListByExt returns the absolute paths of regular files in dir whose name
// ends with ext (case-insensitive), sorted by name. The order must be stable
// between runs: stage cursors are positions in this list.
func ListByExt(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	ext = strings.ToLower(ext)

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(entry.Name()), ext) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// EnsureDir creates dir (and parents) when missing.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// Exists reports whether path names an existing file or directory.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// DirSize sums the sizes of regular files directly inside dir matching ext.
// Missing directories count as zero.
func DirSize(dir, ext string) int64 {
	paths, err := ListByExt(dir, ext)
	if err != nil {
		return 0
	}
	var total int64
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		total += info.Size()
	}
	return total
}

// FileSize returns the size of a regular file, or zero when unreadable.
func FileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	if !info.Mode().IsRegular() {
		return 0
	}
	return info.Size()
}
