package place

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"downsort/internal/fileutil"
	"downsort/internal/services"
)

const maxCollisionAttempts = 10000

// Placer moves files into category folders under a single target directory.
type Placer struct {
	root string
}

// New constructs a placer rooted at the target directory.
func New(root string) *Placer {
	return &Placer{root: root}
}

// Place ensures root/relDir exists, resolves a collision-free destination for
// name, and moves the file at sourcePath there. It returns the final path.
// Every failure is per-entry recoverable: callers record it and continue.
func (p *Placer) Place(sourcePath, relDir, name string) (string, error) {
	destDir := filepath.Join(p.root, relDir)
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", services.Wrap(services.ErrPermission, "placing", "create category folder", fmt.Sprintf("Failed to create %s", destDir), err)
	}

	target, err := NextAvailablePath(destDir, name)
	if err != nil {
		return "", services.Wrap(services.ErrTransient, "placing", "resolve collision", "Unable to allocate destination filename", err)
	}

	if moveErr := fileutil.MoveFile(sourcePath, target); moveErr != nil {
		// A concurrent writer may have claimed the slot between the probe
		// and the rename; re-resolve once before giving up.
		if errors.Is(moveErr, os.ErrExist) {
			retryTarget, retryErr := NextAvailablePath(destDir, name)
			if retryErr == nil {
				if fileutil.MoveFile(sourcePath, retryTarget) == nil {
					return retryTarget, nil
				}
			}
		}
		marker := services.ErrTransient
		switch {
		case errors.Is(moveErr, os.ErrNotExist):
			marker = services.ErrNotFound
		case errors.Is(moveErr, os.ErrPermission):
			marker = services.ErrPermission
		}
		return "", services.Wrap(marker, "placing", "move file", fmt.Sprintf("Failed to move %s", name), moveErr)
	}

	return target, nil
}

// NextAvailablePath returns dir/name, or the first numbered variant
// "base (n).ext" that does not exist yet. It never selects an occupied path,
// so an existing file is never overwritten.
func NextAvailablePath(dir, name string) (string, error) {
	candidate := filepath.Join(dir, name)
	free, err := pathFree(candidate)
	if err != nil {
		return "", err
	}
	if free {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for attempt := 1; attempt <= maxCollisionAttempts; attempt++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s (%d)%s", base, attempt, ext))
		free, err = pathFree(candidate)
		if err != nil {
			return "", err
		}
		if free {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("exhausted filename slots for %s in %s", name, dir)
}

func pathFree(path string) (bool, error) {
	if _, err := os.Lstat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return true, nil
		}
		return false, err
	}
	return false, nil
}
