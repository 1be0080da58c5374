package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another invocation holds the lock.
var ErrLocked = errors.New("store: storage directory is locked by another todo process")

const lockRetryDelay = 25 * time.Millisecond

// Lock is an advisory lock over a storage directory. It only guards against
// other todo processes that also take the lock.
type Lock struct {
	f *flock.Flock
}

// AcquireLock takes the lock file in dir, retrying until ctx is done.
func AcquireLock(ctx context.Context, dir string, opts Options) (*Lock, error) {
	opts = opts.withDefaults()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure lock dir: %w", err)
	}
	f := flock.New(filepath.Join(dir, opts.LockFile))
	ok, err := f.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return nil, ErrLocked
		}
		return nil, fmt.Errorf("store: lock: %w", err)
	}
	if !ok {
		return nil, ErrLocked
	}
	return &Lock{f: f}, nil
}

// Path is the lock file path.
func (l *Lock) Path() string {
	return l.f.Path()
}

// Release drops the lock. It is safe to call on a nil Lock.
func (l *Lock) Release() error {
	if l == nil || l.f == nil {
		return nil
	}
	return l.f.Unlock()
}
