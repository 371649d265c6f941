package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/roachygames/battle-arena/internal/game"
	"github.com/roachygames/battle-arena/internal/registry"
)

var (
	ErrMatchNotFound        = errors.New("match not found")
	ErrNotParticipant       = errors.New("player is not a participant of this match")
	ErrMatchNotInTeamSelect = errors.New("match is not in team selection")
	ErrTeamAlreadySubmitted = errors.New("team already submitted")
	ErrWrongTeamSize        = errors.New("wrong team size")
	ErrUnknownUnit          = errors.New("unknown unit template in team")
)

// newBattleUnit instantiates a template for one match. Instance ids are
// assigned fresh so the same template can appear in concurrent matches
// without aliasing.
func newBattleUnit(t game.UnitTemplate) game.BattleUnit {
	return game.BattleUnit{
		TemplateID: t.ID,
		InstanceID: uuid.NewString(),
		Name:       t.Name,
		Class:      t.Class,
		Rarity:     t.Rarity,
		Stats: game.Stats{
			HP:    t.HitPoints,
			MaxHP: t.HitPoints,
			Atk:   t.Attack,
			Def:   t.Defense,
			Spd:   t.Speed,
		},
		SkillA: t.Skill,
		SkillB: t.SkillB,
	}
}

// SubmitTeam assigns a player's team during team selection. When both sides
// have submitted, the match transitions to active with the turn counter at
// 1; this is the only path into the active state.
func SubmitTeam(reg *registry.Registry, roster RosterRepo, matchID, playerID string, templateIDs []uint) (game.MatchStatus, error) {
	m, ok := reg.Match(matchID)
	if !ok {
		return "", ErrMatchNotFound
	}

	m.Lock()
	defer m.Unlock()

	if m.Status != game.StatusTeamSelect {
		return "", ErrMatchNotInTeamSelect
	}
	side := m.Side(playerID)
	if side == nil {
		return "", ErrNotParticipant
	}
	if side.TeamSubmitted {
		return "", ErrTeamAlreadySubmitted
	}
	if len(templateIDs) != m.Rules.TeamSize {
		return "", ErrWrongTeamSize
	}

	templates, err := roster.GetUnitTemplatesByIDs(templateIDs)
	if err != nil {
		return "", err
	}
	byID := make(map[uint]game.UnitTemplate, len(templates))
	for _, t := range templates {
		byID[t.ID] = t
	}

	team := make([]game.BattleUnit, 0, len(templateIDs))
	for _, id := range templateIDs {
		t, found := byID[id]
		if !found {
			return "", ErrUnknownUnit
		}
		team = append(team, newBattleUnit(t))
	}

	side.Team = team
	side.ActiveIndex = 0
	side.TeamSubmitted = true

	if m.Players[0].TeamSubmitted && m.Players[1].TeamSubmitted {
		m.Status = game.StatusActive
		m.Turn = 1
		m.LastActionAt = time.Now()
	}
	return m.Status, nil
}
