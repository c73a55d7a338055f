package session

import (
	"container/list"
	"context"
	"sync"
	"time"

	"medassist/models"
)

// MemoryStore is a process-local Store bounded by capacity and idle TTL. Least
// recently used sessions are evicted first once capacity is reached; sessions idle
// past the TTL are dropped on access.
type MemoryStore struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	entries  map[string]*list.Element
	order    *list.List // front = most recently used
	now      func() time.Time
}

type memoryEntry struct {
	id       string
	state    *models.SessionState
	lastSeen time.Time
}

// NewMemoryStore constructs a MemoryStore. Capacity and TTL must be positive.
func NewMemoryStore(capacity int, ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		capacity: capacity,
		ttl:      ttl,
		entries:  make(map[string]*list.Element),
		order:    list.New(),
		now:      time.Now,
	}
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*models.SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	el, ok := s.entries[id]
	if !ok {
		return &models.SessionState{}, nil
	}
	entry := el.Value.(*memoryEntry)
	if s.now().Sub(entry.lastSeen) > s.ttl {
		s.order.Remove(el)
		delete(s.entries, id)
		return &models.SessionState{}, nil
	}
	entry.lastSeen = s.now()
	s.order.MoveToFront(el)
	return entry.state, nil
}

func (s *MemoryStore) Put(ctx context.Context, id string, state *models.SessionState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if el, ok := s.entries[id]; ok {
		entry := el.Value.(*memoryEntry)
		entry.state = state
		entry.lastSeen = s.now()
		s.order.MoveToFront(el)
		return nil
	}
	for len(s.entries) >= s.capacity {
		oldest := s.order.Back()
		if oldest == nil {
			break
		}
		s.order.Remove(oldest)
		delete(s.entries, oldest.Value.(*memoryEntry).id)
	}
	el := s.order.PushFront(&memoryEntry{id: id, state: state, lastSeen: s.now()})
	s.entries[id] = el
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if el, ok := s.entries[id]; ok {
		s.order.Remove(el)
		delete(s.entries, id)
	}
	return nil
}

// Len reports the number of live sessions. Used by tests and the health endpoint.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
