// internal/pipeline/store.go
package pipeline

import (
	"sync"

	lru "github.com/hashicorp/golang-lru"
)

const DefaultRunHistory = 50

// Store keeps the most recent runs in memory, evicting the least recently
// used once full.
type Store struct {
	runs   *lru.Cache
	mu     sync.RWMutex
	latest *Run
}

func NewStore(size int) (*Store, error) {
	if size <= 0 {
		size = DefaultRunHistory
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &Store{runs: cache}, nil
}

func (s *Store) Add(run *Run) {
	s.runs.Add(run.ID(), run)

	s.mu.Lock()
	s.latest = run
	s.mu.Unlock()
}

func (s *Store) Get(id string) (*Run, bool) {
	val, ok := s.runs.Get(id)
	if !ok {
		return nil, false
	}
	return val.(*Run), true
}

// Latest returns the most recently started run.
func (s *Store) Latest() (*Run, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest, s.latest != nil
}

func (s *Store) Len() int {
	return s.runs.Len()
}
