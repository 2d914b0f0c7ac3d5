package devserver

import (
	"fmt"
	"sync"

	"github.com/9ssi7/nanoid"
)

// store keeps long URL to id mappings in memory
type store struct {
	mu    sync.RWMutex
	byURL map[string]string
	byID  map[string]string
	newID func() (string, error)
}

func newStore() *store {
	return &store{
		byURL: make(map[string]string),
		byID:  make(map[string]string),
		newID: func() (string, error) {
			return nanoid.New()
		},
	}
}

// idFor returns the id of longURL, creating one on first use
func (s *store) idFor(longURL string) (string, error) {
	s.mu.RLock()
	id, ok := s.byURL[longURL]
	s.mu.RUnlock()
	if ok {
		return id, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.byURL[longURL]; ok {
		return id, nil
	}

	for {
		id, err := s.newID()
		if err != nil {
			return "", fmt.Errorf("generate id: %w", err)
		}
		if _, taken := s.byID[id]; taken {
			continue
		}
		s.byURL[longURL] = id
		s.byID[id] = longURL
		return id, nil
	}
}

// len returns the number of stored links
func (s *store) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}
