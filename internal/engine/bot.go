package engine

import "github.com/roachygames/battle-arena/internal/game"

// lowHealthFraction is the hp fraction below which the bot prefers to guard.
const lowHealthFraction = 0.35

// BotAction selects the bot side's action for the current turn. The policy
// is a fixed greedy heuristic with no randomness so bot matches are
// reproducible: guard when hurt, prefer piercing skills, otherwise take the
// bigger multiplier.
func BotAction(self, opp *game.PlayerState) game.TurnAction {
	u := self.ActiveUnit()
	if u == nil || u.IsKO {
		// substitution is automatic at resolution; default to slot A
		return game.TurnAction{SkillSlot: game.SlotA}
	}

	if u.Stats.MaxHP > 0 {
		frac := float64(u.Stats.HP) / float64(u.Stats.MaxHP)
		if frac < lowHealthFraction {
			if u.SkillA.Type == game.SkillGuard {
				return game.TurnAction{SkillSlot: game.SlotA}
			}
			if u.SkillB.Type == game.SkillGuard {
				return game.TurnAction{SkillSlot: game.SlotB}
			}
		}
	}

	if u.SkillA.Type == game.SkillPierce {
		return game.TurnAction{SkillSlot: game.SlotA}
	}
	if u.SkillB.Type == game.SkillPierce {
		return game.TurnAction{SkillSlot: game.SlotB}
	}

	if u.SkillB.Multiplier > u.SkillA.Multiplier {
		return game.TurnAction{SkillSlot: game.SlotB}
	}
	return game.TurnAction{SkillSlot: game.SlotA}
}
