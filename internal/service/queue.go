package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/roachygames/battle-arena/internal/game"
	"github.com/roachygames/battle-arena/internal/registry"
)

var (
	ErrInvalidPlayerID = errors.New("player id is required")
)

// QueueConfig is the matchmaking tuning loaded from the server config.
type QueueConfig struct {
	// RatingWindow is the maximum rating distance for pairing.
	RatingWindow int
	// BotWait is how long a player waits before escalating to a bot match.
	BotWait time.Duration
}

// JoinQueueResult reports the outcome of a join request.
type JoinQueueResult struct {
	Matched bool   `json:"matched"`
	MatchID string `json:"match_id,omitempty"`
	Waiting bool   `json:"waiting"`
}

// CheckQueueResult reports queue progress for a polling client.
type CheckQueueResult struct {
	Matched    bool   `json:"matched"`
	MatchID    string `json:"match_id,omitempty"`
	IsBot      bool   `json:"is_bot,omitempty"`
	Waiting    bool   `json:"waiting"`
	WaitTimeMS int64  `json:"wait_time_ms,omitempty"`
}

// JoinQueue enqueues a player or pairs them immediately with the oldest
// compatible waiting entry. A player that already has an active match gets
// that match id back, so re-polling after a dropped response converges. The
// whole pairing decision runs in one registry critical section, so two
// racing joins can never hand the same player a second match.
func JoinQueue(reg *registry.Registry, repo StatsRepo, cfg QueueConfig, rules game.Rules, playerID string) (JoinQueueResult, error) {
	if playerID == "" {
		return JoinQueueResult{}, ErrInvalidPlayerID
	}

	rec, err := repo.EnsureRating(playerID)
	if err != nil {
		return JoinQueueResult{}, err
	}

	entry := game.QueueEntry{PlayerID: playerID, Rating: rec.Rating, EnqueuedAt: time.Now()}
	m, _ := reg.PairOrEnqueue(entry, cfg.RatingWindow, func(opp game.QueueEntry) *game.Match {
		p1 := &game.PlayerState{PlayerID: opp.PlayerID}
		p2 := &game.PlayerState{PlayerID: playerID}
		return game.NewMatch(uuid.NewString(), p1, p2, rules, time.Now().UnixNano())
	})
	if m != nil {
		return JoinQueueResult{Matched: true, MatchID: m.ID}, nil
	}
	return JoinQueueResult{Waiting: true}, nil
}

// LeaveQueue removes the player's entry. Absent entries are not an error.
func LeaveQueue(reg *registry.Registry, playerID string) error {
	if playerID == "" {
		return ErrInvalidPlayerID
	}
	reg.RemoveFromQueue(playerID)
	return nil
}

// CheckQueue reports whether the player has been paired. A wait beyond the
// bot threshold converts the entry into a bot match: the bot side is fully
// populated with a generated roster and pre-marked team-submitted, so only
// the human side remains pending.
func CheckQueue(reg *registry.Registry, roster RosterRepo, cfg QueueConfig, rules game.Rules, playerID string) (CheckQueueResult, error) {
	if playerID == "" {
		return CheckQueueResult{}, ErrInvalidPlayerID
	}
	if m, ok := reg.ActiveMatchFor(playerID); ok {
		return CheckQueueResult{Matched: true, MatchID: m.ID, IsBot: m.IsBot}, nil
	}

	e, ok := reg.QueueEntryFor(playerID)
	if !ok {
		return CheckQueueResult{}, nil
	}

	elapsed := time.Since(e.EnqueuedAt)
	if elapsed < cfg.BotWait {
		return CheckQueueResult{Waiting: true, WaitTimeMS: elapsed.Milliseconds()}, nil
	}

	botSide, err := buildBotSide(roster, rules)
	if err != nil {
		return CheckQueueResult{}, err
	}

	m, claimed := reg.ClaimForMatch(playerID, func() *game.Match {
		human := &game.PlayerState{PlayerID: playerID}
		bm := game.NewMatch(uuid.NewString(), human, botSide, rules, time.Now().UnixNano())
		bm.IsBot = true
		return bm
	})
	if !claimed {
		// the entry was taken by a concurrent pairing
		if m, ok := reg.ActiveMatchFor(playerID); ok {
			return CheckQueueResult{Matched: true, MatchID: m.ID, IsBot: m.IsBot}, nil
		}
		return CheckQueueResult{}, nil
	}
	return CheckQueueResult{Matched: true, MatchID: m.ID, IsBot: true}, nil
}

// buildBotSide synthesizes the engine-controlled opponent. The roster is
// deterministic (first team-size templates in id order) so bot matches
// replay identically.
func buildBotSide(roster RosterRepo, rules game.Rules) (*game.PlayerState, error) {
	templates, err := roster.GetUnitTemplates()
	if err != nil {
		return nil, err
	}
	if len(templates) < rules.TeamSize {
		return nil, errors.New("not enough unit templates for a bot roster")
	}
	team := make([]game.BattleUnit, 0, rules.TeamSize)
	for i := 0; i < rules.TeamSize; i++ {
		team = append(team, newBattleUnit(templates[i]))
	}
	return &game.PlayerState{
		PlayerID:      game.BotIDPrefix + uuid.NewString()[:8],
		Team:          team,
		TeamSubmitted: true,
	}, nil
}
