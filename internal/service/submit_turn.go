package service

import (
	"errors"
	"time"

	"github.com/roachygames/battle-arena/internal/constants"
	"github.com/roachygames/battle-arena/internal/engine"
	"github.com/roachygames/battle-arena/internal/game"
	"github.com/roachygames/battle-arena/internal/logging"
	"github.com/roachygames/battle-arena/internal/rating"
	"github.com/roachygames/battle-arena/internal/registry"
)

var (
	ErrMatchNotActive       = errors.New("match is not active")
	ErrMatchCompleted       = errors.New("match already completed")
	ErrActionAlreadyPending = errors.New("action already submitted for this turn")
	ErrInvalidAction        = errors.New("unknown skill slot")
)

// TurnOutcome reports whether a turn resolved and, if so, its result plus
// the redacted match summary.
type TurnOutcome struct {
	Resolved           bool               `json:"turn_resolved"`
	Result             *game.TurnResult   `json:"turn_result,omitempty"`
	Summary            *game.MatchSummary `json:"match_summary,omitempty"`
	WaitingForOpponent bool               `json:"waiting_for_opponent,omitempty"`
}

// SubmitTurn stores a player's action for the current turn and resolves the
// exchange once both pending slots are filled. For bot matches the bot's
// action is synthesized before readiness is checked. Resolution and slot
// clearing happen atomically under the match lock so a concurrent
// submission can never double-apply a turn.
func SubmitTurn(reg *registry.Registry, repo StatsRepo, settings rating.Settings, matchID, playerID string, action game.TurnAction) (TurnOutcome, error) {
	m, ok := reg.Match(matchID)
	if !ok {
		return TurnOutcome{}, ErrMatchNotFound
	}

	m.Lock()
	defer m.Unlock()

	switch m.Status {
	case game.StatusCompleted:
		return TurnOutcome{}, ErrMatchCompleted
	case game.StatusActive:
	default:
		return TurnOutcome{}, ErrMatchNotActive
	}

	side := m.Side(playerID)
	if side == nil {
		return TurnOutcome{}, ErrNotParticipant
	}
	if action.SkillSlot != game.SlotA && action.SkillSlot != game.SlotB {
		return TurnOutcome{}, ErrInvalidAction
	}
	if side.Pending != nil {
		return TurnOutcome{}, ErrActionAlreadyPending
	}
	side.Pending = &action

	if m.IsBot {
		opp := m.OpponentOf(playerID)
		if opp != nil && game.IsBotID(opp.PlayerID) && opp.Pending == nil {
			botAction := engine.BotAction(opp, side)
			opp.Pending = &botAction
		}
	}

	if m.Players[0].Pending == nil || m.Players[1].Pending == nil {
		return TurnOutcome{WaitingForOpponent: true}, nil
	}

	result := engine.ResolveTurn(m)
	m.LastActionAt = time.Now()
	logging.Info("turn resolved", logging.Fields{
		constants.LogFieldBattleID: m.ID,
		constants.LogFieldTurn:     result.Turn,
	})

	if m.Status == game.StatusCompleted {
		applyMatchResult(reg, repo, settings, m)
	}

	summary := m.Summary()
	return TurnOutcome{Resolved: true, Result: &result, Summary: &summary}, nil
}
