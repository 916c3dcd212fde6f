package application

import "sync"

// animalLocks serializes read-modify-commit sequences per animal.
// Entries are reference counted and dropped once unused.
type animalLocks struct {
	mu      sync.Mutex
	entries map[uint]*animalLock
}

type animalLock struct {
	mu   sync.Mutex
	refs int
}

func newAnimalLocks() *animalLocks {
	return &animalLocks{entries: make(map[uint]*animalLock)}
}

func (l *animalLocks) lock(animalID uint) func() {
	l.mu.Lock()
	entry, ok := l.entries[animalID]
	if !ok {
		entry = &animalLock{}
		l.entries[animalID] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()
	return func() {
		entry.mu.Unlock()
		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.entries, animalID)
		}
		l.mu.Unlock()
	}
}

func (l *animalLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
