package game

// SideSummary is the client-facing view of one side. The pending action is
// redacted to a submitted/not-submitted flag so neither player can observe
// the other's choice before the turn resolves.
type SideSummary struct {
	PlayerID        string       `json:"player_id"`
	Momentum        int          `json:"momentum"`
	KOCount         int          `json:"ko_count"`
	ActiveIndex     int          `json:"active_index"`
	TeamSubmitted   bool         `json:"team_submitted"`
	ActionSubmitted bool         `json:"action_submitted"`
	Team            []BattleUnit `json:"team"`
}

// MatchSummary is the client-facing view of a match.
type MatchSummary struct {
	MatchID  string          `json:"match_id"`
	Status   MatchStatus     `json:"status"`
	Turn     int             `json:"turn"`
	Winner   string          `json:"winner"`
	Reason   WinReason       `json:"reason,omitempty"`
	IsBot    bool            `json:"is_bot"`
	Sides    [2]SideSummary  `json:"sides"`
	LastTurn *TurnResult     `json:"last_turn,omitempty"`
}

// Summary builds the redacted match view. The caller must hold the match
// lock.
func (m *Match) Summary() MatchSummary {
	s := MatchSummary{
		MatchID: m.ID,
		Status:  m.Status,
		Turn:    m.Turn,
		Winner:  m.Winner,
		Reason:  m.Reason,
		IsBot:   m.IsBot,
	}
	for i, p := range m.Players {
		if p == nil {
			continue
		}
		team := make([]BattleUnit, len(p.Team))
		copy(team, p.Team)
		s.Sides[i] = SideSummary{
			PlayerID:        p.PlayerID,
			Momentum:        p.Momentum,
			KOCount:         p.KOCount,
			ActiveIndex:     p.ActiveIndex,
			TeamSubmitted:   p.TeamSubmitted,
			ActionSubmitted: p.Pending != nil,
			Team:            team,
		}
	}
	if len(m.History) > 0 {
		last := m.History[len(m.History)-1]
		s.LastTurn = &last
	}
	return s
}
