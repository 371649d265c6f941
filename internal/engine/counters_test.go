package engine

import (
	"testing"

	"github.com/roachygames/battle-arena/internal/game"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		own, opp game.SkillType
		want     game.CounterClass
	}{
		{game.SkillPierce, game.SkillGuard, game.CounterAdvantage},
		{game.SkillGuard, game.SkillStrike, game.CounterAdvantage},
		{game.SkillStrike, game.SkillFocus, game.CounterAdvantage},
		{game.SkillFocus, game.SkillBurst, game.CounterAdvantage},
		{game.SkillBurst, game.SkillPierce, game.CounterAdvantage},

		{game.SkillGuard, game.SkillPierce, game.CounterCountered},
		{game.SkillStrike, game.SkillGuard, game.CounterCountered},
		{game.SkillFocus, game.SkillStrike, game.CounterCountered},
		{game.SkillBurst, game.SkillFocus, game.CounterCountered},
		{game.SkillPierce, game.SkillBurst, game.CounterCountered},

		{game.SkillStrike, game.SkillStrike, game.CounterMutual},
		{game.SkillGuard, game.SkillGuard, game.CounterMutual},

		{game.SkillStrike, game.SkillPierce, game.CounterNone},
		{game.SkillGuard, game.SkillFocus, game.CounterNone},
	}

	for _, c := range cases {
		if got := Classify(c.own, c.opp); got != c.want {
			t.Errorf("Classify(%s, %s) = %s, want %s", c.own, c.opp, got, c.want)
		}
	}
}

func TestCounterDamageFactor(t *testing.T) {
	if f := counterDamageFactor(game.CounterAdvantage); f != 1.3 {
		t.Errorf("advantage factor = %v, want 1.3", f)
	}
	if f := counterDamageFactor(game.CounterCountered); f != 0.8 {
		t.Errorf("countered factor = %v, want 0.8", f)
	}
	if f := counterDamageFactor(game.CounterMutual); f != 0.9 {
		t.Errorf("mutual factor = %v, want 0.9", f)
	}
	if f := counterDamageFactor(game.CounterNone); f != 1.0 {
		t.Errorf("none factor = %v, want 1.0", f)
	}
}

func TestEveryTypeCountersExactlyOne(t *testing.T) {
	seen := map[game.SkillType]int{}
	for _, own := range game.KnownSkillTypes {
		if _, ok := beats[own]; !ok {
			t.Errorf("type %s has no counter target", own)
		}
		seen[beats[own]]++
	}
	for _, typ := range game.KnownSkillTypes {
		if seen[typ] != 1 {
			t.Errorf("type %s is countered by %d types, want exactly 1", typ, seen[typ])
		}
	}
}
