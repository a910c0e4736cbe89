package runlock

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// Lock guards a target directory against concurrent downsort runs. The lock
// file lives under the data directory, keyed by a hash of the target path,
// so locking never writes into the directory being organized.
type Lock struct {
	path string
	fl   *flock.Flock
}

// Acquire takes the lock for target, failing immediately when another run
// holds it.
func Acquire(dataDir, target string) (*Lock, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure lock directory: %w", err)
	}

	sum := sha256.Sum256([]byte(target))
	name := fmt.Sprintf("organize-%s.lock", hex.EncodeToString(sum[:8]))
	path := filepath.Join(dataDir, name)

	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("another downsort run is already organizing %s", target)
	}

	return &Lock{path: path, fl: fl}, nil
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Release drops the lock.
func (l *Lock) Release() error {
	if l == nil || l.fl == nil {
		return nil
	}
	return l.fl.Unlock()
}
