package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// ErrNotDirectory reports a target path that exists but is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// Entry describes one regular file found in the target directory. Entries
// are constructed fresh on each scan and never cached between runs.
type Entry struct {
	Name    string
	Path    string
	Size    int64
	ModTime time.Time
}

// Result carries the enumerated entries plus the count of children that were
// skipped (subdirectories, broken symlinks, non-regular files).
type Result struct {
	Entries []Entry
	Skipped int
}

// List enumerates the direct children of dir that are regular files.
// Symlinks are resolved and included when they point at regular files.
// Directories are excluded, which keeps previously created category folders
// out of subsequent runs. Listing failures are fatal and occur before any
// mutation.
func List(dir string) (Result, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return Result{}, fmt.Errorf("stat target directory: %w", err)
	}
	if !info.IsDir() {
		return Result{}, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}

	children, err := os.ReadDir(dir)
	if err != nil {
		return Result{}, fmt.Errorf("list target directory: %w", err)
	}

	result := Result{Entries: make([]Entry, 0, len(children))}
	for _, child := range children {
		if child.IsDir() {
			result.Skipped++
			continue
		}

		path := filepath.Join(dir, child.Name())
		var fileInfo fs.FileInfo
		if child.Type()&fs.ModeSymlink != 0 {
			// Resolve the link; a dangling or non-file target is skipped.
			fileInfo, err = os.Stat(path)
			if err != nil {
				result.Skipped++
				continue
			}
		} else {
			fileInfo, err = child.Info()
			if err != nil {
				result.Skipped++
				continue
			}
		}
		if fileInfo.IsDir() || !fileInfo.Mode().IsRegular() {
			result.Skipped++
			continue
		}

		result.Entries = append(result.Entries, Entry{
			Name:    child.Name(),
			Path:    path,
			Size:    fileInfo.Size(),
			ModTime: fileInfo.ModTime(),
		})
	}

	return result, nil
}
