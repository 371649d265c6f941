package service

import (
	"github.com/roachygames/battle-arena/internal/constants"
	"github.com/roachygames/battle-arena/internal/game"
	"github.com/roachygames/battle-arena/internal/logging"
	"github.com/roachygames/battle-arena/internal/rating"
	"github.com/roachygames/battle-arena/internal/registry"
)

// applyMatchResult settles a completed match exactly once: releases the
// participants from the registry and applies rating and W/L/D updates. Bot
// matches use fixed deltas for the human side only; PvP matches run the
// full expected-score formula for both. Repository failures are logged, not
// retried; the match itself stays completed either way.
func applyMatchResult(reg *registry.Registry, repo StatsRepo, settings rating.Settings, m *game.Match) {
	if m.StatsCounted {
		return
	}
	m.StatsCounted = true
	reg.Release(m)

	if m.IsBot {
		applyBotResult(repo, settings, m)
		return
	}

	p1, p2 := m.Players[0], m.Players[1]
	r1, err := repo.EnsureRating(p1.PlayerID)
	if err != nil {
		logging.Error(constants.ErrFailedUpdateStats, err, logging.Fields{constants.LogFieldBattleID: m.ID, constants.LogFieldPlayerID: p1.PlayerID})
		return
	}
	r2, err := repo.EnsureRating(p2.PlayerID)
	if err != nil {
		logging.Error(constants.ErrFailedUpdateStats, err, logging.Fields{constants.LogFieldBattleID: m.ID, constants.LogFieldPlayerID: p2.PlayerID})
		return
	}

	switch m.Winner {
	case p1.PlayerID:
		dw, dl := settings.Apply(r1.Rating, r2.Rating)
		r1.Rating = rating.Clamp(r1.Rating + dw)
		r2.Rating = rating.Clamp(r2.Rating + dl)
		r1.Wins++
		r2.Losses++
	case p2.PlayerID:
		dw, dl := settings.Apply(r2.Rating, r1.Rating)
		r2.Rating = rating.Clamp(r2.Rating + dw)
		r1.Rating = rating.Clamp(r1.Rating + dl)
		r2.Wins++
		r1.Losses++
	default:
		da, db := settings.ApplyDraw(r1.Rating, r2.Rating)
		r1.Rating = rating.Clamp(r1.Rating + da)
		r2.Rating = rating.Clamp(r2.Rating + db)
		r1.Draws++
		r2.Draws++
	}

	saveRating(repo, m, r1)
	saveRating(repo, m, r2)
	logging.Info("match settled", logging.Fields{
		constants.LogFieldBattleID: m.ID,
		constants.LogFieldWinner:   m.Winner,
		constants.LogFieldReason:   string(m.Reason),
	})
}

// applyBotResult settles a bot match. The bot has no meaningful rating, so
// the human moves by a small fixed amount instead of the full formula.
func applyBotResult(repo StatsRepo, settings rating.Settings, m *game.Match) {
	var human *game.PlayerState
	for _, p := range m.Players {
		if p != nil && !game.IsBotID(p.PlayerID) {
			human = p
			break
		}
	}
	if human == nil {
		return
	}
	rec, err := repo.EnsureRating(human.PlayerID)
	if err != nil {
		logging.Error(constants.ErrFailedUpdateStats, err, logging.Fields{constants.LogFieldBattleID: m.ID, constants.LogFieldPlayerID: human.PlayerID})
		return
	}
	switch m.Winner {
	case human.PlayerID:
		rec.Rating = rating.Clamp(rec.Rating + settings.BotWinDelta)
		rec.Wins++
	case "":
		rec.Draws++
	default:
		rec.Rating = rating.Clamp(rec.Rating + settings.BotLossDelta)
		rec.Losses++
	}
	saveRating(repo, m, rec)
}

func saveRating(repo StatsRepo, m *game.Match, rec *game.PlayerRating) {
	if err := repo.SaveRating(rec); err != nil {
		logging.Error(constants.ErrFailedUpdateStats, err, logging.Fields{
			constants.LogFieldBattleID: m.ID,
			constants.LogFieldPlayerID: rec.PlayerID,
		})
	}
}
