package engine

import (
	"math"
	"math/rand"

	"github.com/roachygames/battle-arena/internal/game"
)

// skillFor returns the unit's skill for the given slot.
func skillFor(u *game.BattleUnit, slot game.SkillSlot) game.Skill {
	if slot == game.SlotB {
		return u.SkillB
	}
	return u.SkillA
}

// rollDamage computes the nominal damage one side deals this exchange. The
// crit roll is the only probabilistic input; everything else is a pure
// function of stats, skills and the counter classification.
func rollDamage(att, def *game.BattleUnit, own, opp game.Skill, class game.CounterClass, rng *rand.Rand, rules game.Rules) (dmg int, crit bool) {
	raw := float64(att.Stats.Atk)*own.Multiplier - float64(def.Stats.Def)/2.0
	if raw < 1 {
		raw = 1
	}
	raw *= counterDamageFactor(class)

	crit = rng.Intn(100) < rules.CritChancePercent
	if crit {
		raw *= rules.CritMultiplier
	}

	// Opposing damage reduction (GUARD-style skills). A piercing advantage
	// over a guarding opponent halves the reduction instead of removing it.
	reduction := float64(opp.DamageReductionPercent)
	if reduction > 0 {
		if own.Type == game.SkillPierce && opp.Type == game.SkillGuard {
			reduction /= 2
		}
		raw *= 1.0 - reduction/100.0
	}

	dmg = int(math.Floor(raw))
	if dmg < 0 {
		dmg = 0
	}
	return dmg, crit
}

// momentumDelta computes one side's momentum change from the skill it used,
// the classification it obtained and the opponent's skill. Guarding a burst
// is full credit; guarding anything else that it actually reduced is partial
// credit. An opposing burst dampens any other momentum-generating skill.
func momentumDelta(own game.Skill, class game.CounterClass, opp game.Skill) int {
	gain := 0
	switch own.Type {
	case game.SkillGuard:
		if opp.Type == game.SkillBurst {
			return 2
		}
		if own.DamageReductionPercent > 0 {
			gain = 1
		}
	default:
		switch class {
		case game.CounterAdvantage:
			gain = 2
		case game.CounterCountered:
			gain = 0
		default:
			gain = 1
		}
	}
	if opp.Type == game.SkillBurst && gain > 0 {
		gain--
	}
	return gain
}

// applyAllyHeal heals the first non-active, non-KO ally in team order by the
// skill's percentage of that ally's max hp, capped at max hp. Returns the
// amount actually restored.
func applyAllyHeal(p *game.PlayerState, own game.Skill) int {
	if own.AllyHealPercent <= 0 {
		return 0
	}
	for i := range p.Team {
		if i == p.ActiveIndex || p.Team[i].IsKO {
			continue
		}
		ally := &p.Team[i]
		heal := ally.Stats.MaxHP * own.AllyHealPercent / 100
		if ally.Stats.HP+heal > ally.Stats.MaxHP {
			heal = ally.Stats.MaxHP - ally.Stats.HP
		}
		ally.Stats.HP += heal
		return heal
	}
	return 0
}

// ResolveTurn resolves one simultaneous exchange for a match whose two
// pending-action slots are both filled, applies the outcome, clears the
// slots and evaluates end-of-match conditions. The caller must hold the
// match lock. Neither side sees the other's choice beforehand; both damage
// numbers are computed before either is applied.
func ResolveTurn(m *game.Match) game.TurnResult {
	p1, p2 := m.Players[0], m.Players[1]
	u1, u2 := p1.ActiveUnit(), p2.ActiveUnit()
	s1 := skillFor(u1, p1.Pending.SkillSlot)
	s2 := skillFor(u2, p2.Pending.SkillSlot)

	c1 := Classify(s1.Type, s2.Type)
	c2 := Classify(s2.Type, s1.Type)

	d1, crit1 := rollDamage(u1, u2, s1, s2, c1, m.RNG, m.Rules)
	d2, crit2 := rollDamage(u2, u1, s2, s1, c2, m.RNG, m.Rules)

	// A focusing unit turns the incoming hit away this exchange; the
	// nominal number is still computed and reported.
	sup1 := s2.Type == game.SkillFocus
	sup2 := s1.Type == game.SkillFocus

	heal1 := applyAllyHeal(p1, s1)
	heal2 := applyAllyHeal(p2, s2)

	md1 := momentumDelta(s1, c1, s2)
	md2 := momentumDelta(s2, c2, s1)
	p1.AddMomentum(md1, m.Rules.MomentumMax)
	p2.AddMomentum(md2, m.Rules.MomentumMax)

	if !sup1 {
		u2.Stats.HP -= d1
		if u2.Stats.HP < 0 {
			u2.Stats.HP = 0
		}
	}
	if !sup2 {
		u1.Stats.HP -= d2
		if u1.Stats.HP < 0 {
			u1.Stats.HP = 0
		}
	}

	result := game.TurnResult{
		Turn: m.Turn,
		Sides: [2]game.SideResult{
			{
				PlayerID:       p1.PlayerID,
				UnitInstanceID: u1.InstanceID,
				SkillName:      s1.Name,
				SkillType:      s1.Type,
				Damage:         d1,
				Counter:        c1,
				Crit:           crit1,
				Heal:           heal1,
				MomentumDelta:  md1,
				Suppressed:     sup1,
			},
			{
				PlayerID:       p2.PlayerID,
				UnitInstanceID: u2.InstanceID,
				SkillName:      s2.Name,
				SkillType:      s2.Type,
				Damage:         d2,
				Counter:        c2,
				Crit:           crit2,
				Heal:           heal2,
				MomentumDelta:  md2,
				Suppressed:     sup2,
			},
		},
	}

	result.KOs = append(result.KOs, flagKOs(p1)...)
	result.KOs = append(result.KOs, flagKOs(p2)...)

	m.History = append(m.History, result)
	p1.Pending = nil
	p2.Pending = nil

	finalizeTurn(m)
	return result
}

// flagKOs marks any of a side's units that reached zero hp, bumps the KO
// counter and advances the active index to the lowest non-KO unit.
func flagKOs(p *game.PlayerState) []game.KOEvent {
	var events []game.KOEvent
	for i := range p.Team {
		u := &p.Team[i]
		if u.Stats.HP <= 0 && !u.IsKO {
			u.IsKO = true
			p.KOCount++
			events = append(events, game.KOEvent{PlayerID: p.PlayerID, UnitInstanceID: u.InstanceID})
		}
	}
	if len(events) > 0 {
		p.AdvanceActive()
	}
	return events
}

// finalizeTurn evaluates victory conditions and prepares the next turn or
// completes the match. KO wins take priority over the turn cap.
func finalizeTurn(m *game.Match) {
	p1, p2 := m.Players[0], m.Players[1]
	target := m.Rules.TeamSize

	switch {
	case p1.KOCount >= target && p2.KOCount >= target:
		// mutual knockout on the final exchange: no winner
		m.Status = game.StatusCompleted
		m.Reason = game.ReasonKO
		m.Winner = ""
	case p1.KOCount >= target:
		m.Status = game.StatusCompleted
		m.Reason = game.ReasonKO
		m.Winner = p2.PlayerID
	case p2.KOCount >= target:
		m.Status = game.StatusCompleted
		m.Reason = game.ReasonKO
		m.Winner = p1.PlayerID
	case m.Turn >= m.Rules.MaxTurns:
		m.Status = game.StatusCompleted
		m.Reason = game.ReasonTurns
		f1, f2 := p1.TeamHPFraction(), p2.TeamHPFraction()
		switch {
		case f1 > f2:
			m.Winner = p1.PlayerID
		case f2 > f1:
			m.Winner = p2.PlayerID
		default:
			m.Winner = ""
		}
	default:
		m.Turn++
	}
}
