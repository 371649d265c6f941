package service

import (
	"github.com/roachygames/battle-arena/internal/game"
	"github.com/roachygames/battle-arena/internal/registry"
)

// GetMatch returns the redacted match summary for a participant, plus
// whether the requester still owes an action this turn.
func GetMatch(reg *registry.Registry, matchID, playerID string) (game.MatchSummary, bool, error) {
	m, ok := reg.Match(matchID)
	if !ok {
		return game.MatchSummary{}, false, ErrMatchNotFound
	}

	m.Lock()
	defer m.Unlock()

	side := m.Side(playerID)
	if side == nil {
		return game.MatchSummary{}, false, ErrNotParticipant
	}

	hasPending := m.Status == game.StatusActive && side.Pending == nil
	return m.Summary(), hasPending, nil
}
