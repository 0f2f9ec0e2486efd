package mem

import (
	"sync"
)

// CustomerCache memoizes identifiers assigned by the billing provider for
// the lifetime of the process. The default billing customer is created
// lazily exactly once; everything after that is a map read.
type CustomerCache interface {
	Get(key string) (string, bool)
	Set(key string, id string)
}

type CustomerIDs struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewCustomerIDs() *CustomerIDs {
	return &CustomerIDs{
		data: make(map[string]string),
	}
}

func (s *CustomerIDs) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.data[key]
	return id, ok
}

func (s *CustomerIDs) Set(key string, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = id
}
