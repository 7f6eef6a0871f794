package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
)

// ErrAlreadyRunning indicates another SetPace process holds the session lock.
// Only one timer may run per user, so a second launch exits.
var ErrAlreadyRunning = errors.New("instance already running")

const (
	lockPortMin = 20000
	lockPortMax = 39999
)

// SessionLock is held for the lifetime of the process.
type SessionLock struct {
	listener net.Listener
}

// AcquireSessionLock binds a localhost port derived from appName.
func AcquireSessionLock(appName string) (*SessionLock, error) {
	listener, err := net.Listen("tcp", LockAddress(appName))
	if err != nil {
		return nil, fmt.Errorf("acquire session lock: %w", ErrAlreadyRunning)
	}
	return &SessionLock{listener: listener}, nil
}

// Release frees the lock. It is safe on a nil lock.
func (lock *SessionLock) Release() error {
	if lock == nil || lock.listener == nil {
		return nil
	}
	err := lock.listener.Close()
	lock.listener = nil
	return err
}

// LockAddress returns the loopback address used for appName.
func LockAddress(appName string) string {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	span := uint32(lockPortMax - lockPortMin + 1)
	return fmt.Sprintf("127.0.0.1:%d", lockPortMin+int(hash.Sum32()%span))
}
