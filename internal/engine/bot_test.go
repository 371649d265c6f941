package engine

import (
	"testing"

	"github.com/roachygames/battle-arena/internal/game"
)

func botSide(u game.BattleUnit) *game.PlayerState {
	return &game.PlayerState{PlayerID: "bot-x", Team: []game.BattleUnit{u}, TeamSubmitted: true}
}

func TestBotGuardsWhenHurt(t *testing.T) {
	u := mkUnit("b1", 100, 20, 10, strike, guard)
	u.Stats.HP = 30
	opp := botSide(mkUnit("o1", 100, 20, 10, strike, burst))

	a := BotAction(botSide(u), opp)
	if a.SkillSlot != game.SlotB {
		t.Errorf("hurt bot chose slot %s, want guard on slot B", a.SkillSlot)
	}
}

func TestBotPrefersPierceWhenHealthy(t *testing.T) {
	u := mkUnit("b1", 100, 20, 10, strike, pierce)
	opp := botSide(mkUnit("o1", 100, 20, 10, strike, burst))

	a := BotAction(botSide(u), opp)
	if a.SkillSlot != game.SlotB {
		t.Errorf("bot chose slot %s, want pierce on slot B", a.SkillSlot)
	}
}

func TestBotTakesBiggerMultiplier(t *testing.T) {
	u := mkUnit("b1", 100, 20, 10, strike, burst)
	opp := botSide(mkUnit("o1", 100, 20, 10, strike, burst))

	a := BotAction(botSide(u), opp)
	if a.SkillSlot != game.SlotB {
		t.Errorf("bot chose slot %s, want the 1.4x burst on slot B", a.SkillSlot)
	}
}

func TestBotIsDeterministic(t *testing.T) {
	u := mkUnit("b1", 100, 20, 10, strike, burst)
	opp := botSide(mkUnit("o1", 100, 20, 10, strike, burst))
	self := botSide(u)

	first := BotAction(self, opp)
	for i := 0; i < 10; i++ {
		if a := BotAction(self, opp); a != first {
			t.Fatalf("bot action changed between identical calls: %v then %v", first, a)
		}
	}
}
