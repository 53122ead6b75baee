package fleet

import (
	"sort"
	"sync"
	"time"
)

// Entry captures the last known state of one agent.
type Entry struct {
	AgentID     string    `json:"agent_id"`
	RegionID    string    `json:"region_id"`
	Status      string    `json:"status"`
	Previous    string    `json:"previous_status,omitempty"`
	Transitions int       `json:"transitions"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Filter narrows List results. Empty fields match everything.
type Filter struct {
	RegionID string
	Status   string
}

// Store persists agent status entries.
type Store interface {
	Set(Entry)
	Get(agentID string) (Entry, bool)
	List(Filter) []Entry
}

// MemoryStore is an in-memory Store implementation.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]Entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string]Entry{}}
}

func (s *MemoryStore) Set(e Entry) {
	s.mu.Lock()
	s.data[e.AgentID] = e
	s.mu.Unlock()
}

func (s *MemoryStore) Get(agentID string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.data[agentID]
	return e, ok
}

func (s *MemoryStore) List(f Filter) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]Entry, 0, len(s.data))
	for _, e := range s.data {
		if f.RegionID != "" && e.RegionID != f.RegionID {
			continue
		}
		if f.Status != "" && e.Status != f.Status {
			continue
		}
		res = append(res, e)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].AgentID < res[j].AgentID })
	return res
}
