package usecase

import "sync"

// keyedMutex serialises work per key and forgets keys nobody holds.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*keyedLock
}

type keyedLock struct {
	mu      sync.Mutex
	waiters int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{
		locks: make(map[string]*keyedLock),
	}
}

// Lock - blocks until key is free and returns the matching unlock func.
func (that *keyedMutex) Lock(key string) func() {
	that.mu.Lock()
	lock, ok := that.locks[key]
	if !ok {
		lock = &keyedLock{}
		that.locks[key] = lock
	}
	lock.waiters++
	that.mu.Unlock()

	lock.mu.Lock()

	return func() {
		lock.mu.Unlock()

		that.mu.Lock()
		lock.waiters--
		if lock.waiters == 0 {
			delete(that.locks, key)
		}
		that.mu.Unlock()
	}
}
