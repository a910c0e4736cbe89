package preflight

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Result captures the outcome of one preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// CheckTarget verifies the target directory exists, is a directory, and is
// readable, writable, and searchable. A failure here is fatal for the run.
func CheckTarget(path string) Result {
	const name = "target directory"

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Result{Name: name, Detail: fmt.Sprintf("%s does not exist", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("stat %s: %v", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s is not a directory", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s is not accessible: %v", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: path}
}

// CheckFreeSpace reports whether the volume holding path has at least
// minBytes available. Moves on the same volume are renames and need almost
// no space, but a cross-device fallback copies, so a cramped volume is worth
// a warning. Never fatal.
func CheckFreeSpace(path string, minBytes uint64) Result {
	const name = "free space"

	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("statfs %s: %v", path, err)}
	}
	available := stat.Bavail * uint64(stat.Bsize)
	if available < minBytes {
		return Result{Name: name, Detail: fmt.Sprintf("only %d bytes available on %s", available, path)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%d bytes available", available)}
}
