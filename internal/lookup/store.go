package lookup

import (
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	DefaultSessionTTL        = 30 * time.Minute
	DefaultSessionMaxEntries = 1000
)

// Store keeps sessions in memory, bounded in count and evicted after ttl without access.
type Store struct {
	mu       sync.Mutex
	searcher *Searcher
	cache    *expirable.LRU[string, *Session]
}

func NewStore(searcher *Searcher, ttl time.Duration, maxEntries int) (*Store, error) {
	if maxEntries <= 0 {
		return nil, fmt.Errorf("maxEntries must be greater than zero")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("ttl must be greater than zero")
	}
	return &Store{
		searcher: searcher,
		cache:    expirable.NewLRU[string, *Session](maxEntries, nil, ttl),
	}, nil
}

// Get returns the session for id if it is still live.
func (s *Store) Get(id string) (*Session, bool) {
	return s.cache.Get(id)
}

// GetOrCreate returns the session for id, creating an idle one when missing or expired.
func (s *Store) GetOrCreate(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.cache.Get(id); ok {
		// expirable.LRU does not refresh the deadline on Get.
		s.cache.Add(id, sess)
		return sess
	}
	sess := NewSession(s.searcher)
	s.cache.Add(id, sess)
	return sess
}

func (s *Store) Delete(id string) {
	s.cache.Remove(id)
}

func (s *Store) Len() int {
	return s.cache.Len()
}
