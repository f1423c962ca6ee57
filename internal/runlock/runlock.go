// Package runlock keeps two manifest runs from touching the same directory at
// once.
//
// Locks are advisory flock(2) locks on files kept in a dedicated lock
// directory, never in the target directory itself. The lock file name is a
// name-based UUID of the target's absolute path, so every process computes the
// same file for the same directory.
package runlock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
)

// ErrLocked reports that another process already holds the directory lock.
var ErrLocked = errors.New("directory is locked by another run")

// Lock is a held directory lock.
type Lock struct {
	target string
	lock   *flock.Flock
}

// PathFor returns the lock file used for target inside lockDir.
func PathFor(lockDir, target string) string {
	id := uuid.NewSHA1(uuid.NameSpaceURL, []byte("file://"+filepath.ToSlash(target)))
	return filepath.Join(lockDir, id.String()+".lock")
}

// Acquire takes the lock for target without blocking. target should be an
// absolute, cleaned path.
func Acquire(lockDir, target string) (*Lock, error) {
	if err := os.MkdirAll(lockDir, 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory %q: %w", lockDir, err)
	}

	path := PathFor(lockDir, target)
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s (lock %s)", ErrLocked, target, path)
	}
	return &Lock{target: target, lock: fl}, nil
}

// Path returns the lock file path.
func (l *Lock) Path() string {
	if l == nil {
		return ""
	}
	return l.lock.Path()
}

// Release drops the lock. The lock file is left in place for reuse.
func (l *Lock) Release() error {
	if l == nil {
		return nil
	}
	return l.lock.Unlock()
}
