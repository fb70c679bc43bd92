package saga

import (
	"context"
	"fmt"
	"sync"

	"github.com/pkg/errors"
)

// RecordStore is the existence check a participant's step-record store offers to the guard
type RecordStore interface {
	ExistsByOrderIDAndTransactionID(ctx context.Context, orderID, transactionID string) (bool, error)
}

// KeyLocker serializes work on one idempotency key
type KeyLocker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

// IdempotencyKey builds the lock key of a participant step
func IdempotencyKey(source, orderID, transactionID string) string {
	return fmt.Sprintf("%s:%s:%s", source, orderID, transactionID)
}

// Guard rejects a second application of the same step
type Guard struct {
	source  string
	records RecordStore
	locker  KeyLocker
}

// NewGuard creates a guard over a participant's step records
func NewGuard(source string, records RecordStore, locker KeyLocker) *Guard {
	if locker == nil {
		locker = NewMemoryKeyLocker()
	}
	return &Guard{
		source:  source,
		records: records,
		locker:  locker,
	}
}

// HasProcessed reports whether a step record already exists for the pair
func (g *Guard) HasProcessed(ctx context.Context, orderID, transactionID string) (bool, error) {
	exists, err := g.records.ExistsByOrderIDAndTransactionID(ctx, orderID, transactionID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check step record")
	}
	return exists, nil
}

// Check fails with a DuplicateTransaction error carrying message when the pair was processed
func (g *Guard) Check(ctx context.Context, orderID, transactionID, message string) error {
	processed, err := g.HasProcessed(ctx, orderID, transactionID)
	if err != nil {
		return err
	}
	if processed {
		return DuplicateTransaction(message)
	}
	return nil
}

// Lock holds the participant's key for the pair until unlock is called
func (g *Guard) Lock(ctx context.Context, orderID, transactionID string) (func(), error) {
	unlock, err := g.locker.Lock(ctx, IdempotencyKey(g.source, orderID, transactionID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to lock idempotency key")
	}
	return unlock, nil
}

// MemoryKeyLocker is an in-process KeyLocker
type MemoryKeyLocker struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	ch      chan struct{}
	waiters int
}

func NewMemoryKeyLocker() *MemoryKeyLocker {
	return &MemoryKeyLocker{locks: make(map[string]*keyLock)}
}

// Lock blocks until key is free or ctx is done
func (l *MemoryKeyLocker) Lock(ctx context.Context, key string) (func(), error) {
	l.mu.Lock()
	lock, ok := l.locks[key]
	if !ok {
		lock = &keyLock{ch: make(chan struct{}, 1)}
		l.locks[key] = lock
	}
	lock.waiters++
	l.mu.Unlock()

	select {
	case lock.ch <- struct{}{}:
	case <-ctx.Done():
		l.release(key, lock, false)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() { l.release(key, lock, true) })
	}, nil
}

func (l *MemoryKeyLocker) release(key string, lock *keyLock, held bool) {
	if held {
		<-lock.ch
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	lock.waiters--
	if lock.waiters == 0 {
		delete(l.locks, key)
	}
}
