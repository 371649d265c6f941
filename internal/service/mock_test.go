package service

import (
	"gorm.io/gorm"

	"github.com/roachygames/battle-arena/internal/game"
	"github.com/roachygames/battle-arena/internal/registry"
)

// mockRepo implements StatsRepo and RosterRepo in memory.
type mockRepo struct {
	ratings   map[string]*game.PlayerRating
	templates []game.UnitTemplate
	saves     int
	ensureErr error
	saveErr   error
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		ratings:   map[string]*game.PlayerRating{},
		templates: mockTemplates(),
	}
}

func mockTemplates() []game.UnitTemplate {
	mk := func(id uint, name string, hp, atk, def int) game.UnitTemplate {
		return game.UnitTemplate{
			Model:     gorm.Model{ID: id},
			Name:      name,
			HitPoints: hp,
			Attack:    atk,
			Defense:   def,
			Skill:     game.Skill{Name: "Slam", Type: game.SkillStrike, Multiplier: 1.0},
			SkillB:    game.Skill{Name: "Nova", Type: game.SkillBurst, Multiplier: 1.4},
		}
	}
	return []game.UnitTemplate{
		mk(1, "Alpha", 100, 30, 10),
		mk(2, "Beta", 120, 25, 15),
		mk(3, "Gamma", 90, 35, 5),
		mk(4, "Delta", 110, 28, 12),
	}
}

func (r *mockRepo) EnsureRating(playerID string) (*game.PlayerRating, error) {
	if r.ensureErr != nil {
		return nil, r.ensureErr
	}
	if rec, ok := r.ratings[playerID]; ok {
		return rec, nil
	}
	rec := &game.PlayerRating{PlayerID: playerID, Rating: 1000}
	r.ratings[playerID] = rec
	return rec, nil
}

func (r *mockRepo) SaveRating(rec *game.PlayerRating) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves++
	r.ratings[rec.PlayerID] = rec
	return nil
}

func (r *mockRepo) GetUnitTemplates() ([]game.UnitTemplate, error) {
	return r.templates, nil
}

func (r *mockRepo) GetUnitTemplatesByIDs(ids []uint) ([]game.UnitTemplate, error) {
	var out []game.UnitTemplate
	for _, t := range r.templates {
		for _, id := range ids {
			if t.ID == id {
				out = append(out, t)
				break
			}
		}
	}
	return out, nil
}

func testRules(teamSize int) game.Rules {
	return game.Rules{
		TeamSize:          teamSize,
		MaxTurns:          50,
		MomentumMax:       10,
		CritChancePercent: 0,
		CritMultiplier:    1.5,
	}
}

func battleUnit(id string, hp, atk, def int) game.BattleUnit {
	return game.BattleUnit{
		InstanceID: id,
		Name:       id,
		Stats:      game.Stats{HP: hp, MaxHP: hp, Atk: atk, Def: def},
		SkillA:     game.Skill{Name: "Slam", Type: game.SkillStrike, Multiplier: 1.0},
		SkillB:     game.Skill{Name: "Nova", Type: game.SkillBurst, Multiplier: 1.4},
	}
}

// activeMatch registers a one-unit-per-side match already in the active state.
func activeMatch(reg *registry.Registry, id string, u1, u2 game.BattleUnit) *game.Match {
	p1 := &game.PlayerState{PlayerID: "p1", Team: []game.BattleUnit{u1}, TeamSubmitted: true}
	p2 := &game.PlayerState{PlayerID: "p2", Team: []game.BattleUnit{u2}, TeamSubmitted: true}
	m := game.NewMatch(id, p1, p2, testRules(1), 7)
	m.Status = game.StatusActive
	m.Turn = 1
	reg.Register(m)
	return m
}
