package service

import (
	"time"

	"github.com/roachygames/battle-arena/internal/game"
	"github.com/roachygames/battle-arena/internal/rating"
	"github.com/roachygames/battle-arena/internal/registry"
)

// Forfeit immediately completes a non-completed match with the caller's
// opponent as winner. Counts as a decisive result for rating purposes.
func Forfeit(reg *registry.Registry, repo StatsRepo, settings rating.Settings, matchID, playerID string) (winner string, err error) {
	m, ok := reg.Match(matchID)
	if !ok {
		return "", ErrMatchNotFound
	}

	m.Lock()
	defer m.Unlock()

	if m.Status == game.StatusCompleted {
		return "", ErrMatchCompleted
	}
	side := m.Side(playerID)
	if side == nil {
		return "", ErrNotParticipant
	}

	opp := m.OpponentOf(playerID)
	m.Status = game.StatusCompleted
	m.Reason = game.ReasonForfeit
	m.Winner = opp.PlayerID
	m.LastActionAt = time.Now()

	applyMatchResult(reg, repo, settings, m)
	return m.Winner, nil
}
