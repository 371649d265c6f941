package registry

import (
	"sync"

	"github.com/roachygames/battle-arena/internal/game"
)

// Registry owns the process-wide shared matchmaking state: the match table,
// the player-to-active-match index and the waiting queue. All methods are
// safe for concurrent use; per-match mutation is guarded by the match's own
// mutex, not by this registry.
//
// Invariants: a player id maps to at most one non-completed match, and a
// player appears in the queue only while unmapped.
type Registry struct {
	mu       sync.RWMutex
	matches  map[string]*game.Match
	byPlayer map[string]string
	queue    []game.QueueEntry
}

func New() *Registry {
	return &Registry{
		matches:  make(map[string]*game.Match),
		byPlayer: make(map[string]string),
	}
}

// Match returns the match with the given id.
func (r *Registry) Match(id string) (*game.Match, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.matches[id]
	return m, ok
}

// ActiveMatchFor returns the player's active (non-completed) match, if any.
func (r *Registry) ActiveMatchFor(playerID string) (*game.Match, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byPlayer[playerID]
	if !ok {
		return nil, false
	}
	m, ok := r.matches[id]
	return m, ok
}

// Register stores a match and maps its human participants to it. Bot sides
// are never indexed.
func (r *Registry) Register(m *game.Match) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.registerLocked(m)
}

func (r *Registry) registerLocked(m *game.Match) {
	r.matches[m.ID] = m
	for _, p := range m.Players {
		if p != nil && !game.IsBotID(p.PlayerID) {
			r.byPlayer[p.PlayerID] = m.ID
		}
	}
}

// Release unmaps a completed match's participants so they can queue again.
// The match itself stays retrievable for stats reads.
func (r *Registry) Release(m *game.Match) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range m.Players {
		if p == nil {
			continue
		}
		if id, ok := r.byPlayer[p.PlayerID]; ok && id == m.ID {
			delete(r.byPlayer, p.PlayerID)
		}
	}
}

// Enqueue appends a waiting entry. Callers remove any stale entry first.
func (r *Registry) Enqueue(e game.QueueEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queue = append(r.queue, e)
}

// RemoveFromQueue deletes the player's entry if present, preserving the
// insertion order of the rest.
func (r *Registry) RemoveFromQueue(playerID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.removeLocked(playerID)
}

func (r *Registry) removeLocked(playerID string) bool {
	for i := range r.queue {
		if r.queue[i].PlayerID == playerID {
			r.queue = append(r.queue[:i], r.queue[i+1:]...)
			return true
		}
	}
	return false
}

// QueueEntryFor returns the player's waiting entry, if any.
func (r *Registry) QueueEntryFor(playerID string) (game.QueueEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.queue {
		if r.queue[i].PlayerID == playerID {
			return r.queue[i], true
		}
	}
	return game.QueueEntry{}, false
}

// PairOrEnqueue resolves a join in one critical section. A player already
// mapped to a match gets that match back; otherwise the oldest waiting entry
// within the rating window is taken (first-fit, not best-fit) and the match
// built by newMatch is registered; otherwise the entry joins the queue.
// Holding the lock across the scan and the registration means no concurrent
// join can observe a taken entry before its match is mapped, so a player can
// never end up in two non-completed matches.
func (r *Registry) PairOrEnqueue(e game.QueueEntry, window int, newMatch func(opponent game.QueueEntry) *game.Match) (*game.Match, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.byPlayer[e.PlayerID]; ok {
		if m, found := r.matches[id]; found {
			return m, false
		}
	}

	// a stale entry from an earlier join is replaced, not duplicated
	r.removeLocked(e.PlayerID)

	for i := range r.queue {
		o := r.queue[i]
		diff := o.Rating - e.Rating
		if diff < 0 {
			diff = -diff
		}
		if diff <= window {
			r.queue = append(r.queue[:i], r.queue[i+1:]...)
			m := newMatch(o)
			r.registerLocked(m)
			return m, false
		}
	}

	r.queue = append(r.queue, e)
	return nil, true
}

// ClaimForMatch atomically trades the player's queue entry for the match
// built by newMatch. Returns false without building or registering anything
// when the entry was already taken by a concurrent pairing.
func (r *Registry) ClaimForMatch(playerID string, newMatch func() *game.Match) (*game.Match, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.removeLocked(playerID) {
		return nil, false
	}
	m := newMatch()
	r.registerLocked(m)
	return m, true
}

// QueueLen reports how many players are waiting.
func (r *Registry) QueueLen() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.queue)
}
