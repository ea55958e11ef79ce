// Package batch runs an image transform over a directory of PNG files, one
// file at a time, and collects the per-file outcome.
package batch

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"
)

// Ext is the extension of the files picked up by Scan.  The match is case
// sensitive.
const Ext = ".png"

var (
	ErrNoDirectory = errors.New("directory not found")
	ErrNoFiles     = errors.New("no PNG files found")
)

// FileSet is a sorted list of file names, relative to the scanned directory.
type FileSet []string

// Scan returns the names of the PNG files in dir, sorted by name.
// Subdirectories are skipped.  If dir does not exist, the error wraps
// ErrNoDirectory.  An empty FileSet is not an error.
func Scan(dir string) (FileSet, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoDirectory, dir)
		}
		return nil, fmt.Errorf("unable to list %s: %w", dir, err)
	}
	var files FileSet
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), Ext) {
			continue
		}
		files = append(files, e.Name())
	}
	slices.Sort(files)
	return files, nil
}
