package engine

import "github.com/roachygames/battle-arena/internal/game"

// beats is the fixed type-counter table. It forms a pentagon so every type
// counters exactly one other: piercing punishes guarding, guarding blunts
// plain strikes, strikes punish focusing, focusing turns burst damage away,
// and burst overwhelms piercing.
var beats = map[game.SkillType]game.SkillType{
	game.SkillPierce: game.SkillGuard,
	game.SkillGuard:  game.SkillStrike,
	game.SkillStrike: game.SkillFocus,
	game.SkillFocus:  game.SkillBurst,
	game.SkillBurst:  game.SkillPierce,
}

// Classify returns the counter classification for `own` resolving against
// `opp`. Identical types cancel each other.
func Classify(own, opp game.SkillType) game.CounterClass {
	if own == opp {
		return game.CounterMutual
	}
	if beats[own] == opp {
		return game.CounterAdvantage
	}
	if beats[opp] == own {
		return game.CounterCountered
	}
	return game.CounterNone
}

// counterDamageFactor maps a classification onto the damage modifier applied
// to the attacker's raw damage.
func counterDamageFactor(c game.CounterClass) float64 {
	switch c {
	case game.CounterAdvantage:
		return 1.3
	case game.CounterCountered:
		return 0.8
	case game.CounterMutual:
		return 0.9
	default:
		return 1.0
	}
}
