package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
)

// ErrAlreadyRunning indicates another timer window is already open.
var ErrAlreadyRunning = errors.New("instance already running")

const (
	lockPortMin = 20000
	lockPortMax = 39999
)

// InstanceLock keeps a second copy of the app from opening its own window.
// It holds a localhost port derived from the app ID for the life of the process.
type InstanceLock struct {
	listener net.Listener
}

// AcquireInstanceLock binds the port for appID or returns ErrAlreadyRunning.
func AcquireInstanceLock(appID string) (*InstanceLock, error) {
	if appID == "" {
		return nil, fmt.Errorf("acquire instance lock: app id is empty")
	}
	listener, err := net.Listen("tcp", LockAddress(appID))
	if err != nil {
		return nil, fmt.Errorf("acquire instance lock %s: %w", appID, ErrAlreadyRunning)
	}
	return &InstanceLock{listener: listener}, nil
}

// Release frees the lock. It is safe to call on a nil lock.
func (lock *InstanceLock) Release() error {
	if lock == nil || lock.listener == nil {
		return nil
	}
	err := lock.listener.Close()
	lock.listener = nil
	return err
}

// LockAddress returns the loopback address used as the lock for appID.
func LockAddress(appID string) string {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appID))
	span := uint32(lockPortMax - lockPortMin + 1)
	return fmt.Sprintf("127.0.0.1:%d", lockPortMin+int(hash.Sum32()%span))
}
