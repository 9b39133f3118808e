package store

import "sync"

// Store owns the current snapshot. It is shared by reference between the
// coordinator, the grid adapter and the UI shell; there is no ambient
// singleton. Mutations are expressed as pure snapshot operations handed
// to Apply/ApplyIf.
//
// Each apply records a revision for the ids it touched. A remote
// response that arrives after a newer apply already touched the same id
// carries an outdated revision and is discarded by ApplyIf, so a late
// reply can never overwrite fresher optimistic state.
type Store struct {
	mu      sync.RWMutex
	snap    Snapshot
	revs    map[string]uint64
	counter uint64
}

// New creates an empty store.
func New() *Store {
	return &Store{revs: make(map[string]uint64)}
}

// Current returns the current snapshot. The value is safe to retain;
// operations never mutate shared slices in place.
func (s *Store) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Revision returns the last revision recorded for id (0 = never touched).
func (s *Store) Revision(id string) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revs[id]
}

// Apply runs mutate against the current snapshot, installs the result
// and stamps the given ids with a fresh revision, which is returned.
func (s *Store) Apply(mutate func(Snapshot) Snapshot, ids ...string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(mutate, ids)
}

// ApplyIf behaves like Apply but only when id is still at rev. It
// reports whether the mutation was applied; false means the response
// that produced it is stale and must be dropped. alsoStamp lists extra
// ids the mutation introduces (e.g. the durable id replacing a
// temporary one).
func (s *Store) ApplyIf(id string, rev uint64, mutate func(Snapshot) Snapshot, alsoStamp ...string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.revs[id] != rev {
		return false
	}
	s.apply(mutate, append([]string{id}, alsoStamp...))
	return true
}

func (s *Store) apply(mutate func(Snapshot) Snapshot, ids []string) uint64 {
	s.snap = mutate(s.snap)
	s.counter++
	for _, id := range ids {
		s.revs[id] = s.counter
	}
	return s.counter
}
