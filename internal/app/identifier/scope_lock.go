package identifier

import (
	"context"
	"sync"
)

// ScopeLocks serializes allocate-then-insert per (year, program code) within
// one process. Entries are dropped once no goroutine holds or waits on them.
type ScopeLocks struct {
	mu    sync.Mutex
	locks map[string]*scopeLock
}

type scopeLock struct {
	ch   chan struct{}
	refs int
}

// NewScopeLocks creates an empty lock table.
func NewScopeLocks() *ScopeLocks {
	return &ScopeLocks{locks: make(map[string]*scopeLock)}
}

// Lock blocks until the scope is free or ctx is done. The returned func
// releases the scope and must be called exactly once.
func (s *ScopeLocks) Lock(ctx context.Context, year int, programCode string) (func(), error) {
	key := ScopePrefix(year, programCode)

	s.mu.Lock()
	l, ok := s.locks[key]
	if !ok {
		l = &scopeLock{ch: make(chan struct{}, 1)}
		s.locks[key] = l
	}
	l.refs++
	s.mu.Unlock()

	select {
	case l.ch <- struct{}{}:
	case <-ctx.Done():
		s.release(key, l)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-l.ch
			s.release(key, l)
		})
	}, nil
}

func (s *ScopeLocks) release(key string, l *scopeLock) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l.refs--
	if l.refs == 0 {
		delete(s.locks, key)
	}
}

// Len returns the number of scopes currently held or awaited.
func (s *ScopeLocks) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.locks)
}
