package split

import (
	"sync"

	"github.com/moriyama-t/splitbot/internal/bill"
)

// State of one conversation's bill-split flow.
type State int

const (
	StateIdle State = iota
	StateAwaitingAssignments
)

// Store holds at most one pending bill per conversation. Sessions are
// keyed by channel ID and only the Service mutates them.
type Store struct {
	sessions map[string]*bill.Bill
	mu       sync.RWMutex
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*bill.Bill),
	}
}

func (s *Store) Get(channelID string) *bill.Bill {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[channelID]
}

func (s *Store) Put(channelID string, b *bill.Bill) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[channelID] = b
}

func (s *Store) Clear(channelID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, channelID)
}

// Count reports how many conversations are awaiting assignments.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
