package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/roachygames/battle-arena/internal/game"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "battle_config.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const minimalConfig = `{
  "roachy_list": [
    {"name": "Alpha", "hit_points": 100, "attack": 30, "defense": 10, "speed": 9,
     "skill_a": {"name": "Slam", "type": "STRIKE", "multiplier": 1.0},
     "skill_b": {"name": "Nova", "type": "BURST", "multiplier": 1.4}},
    {"name": "Beta", "hit_points": 120, "attack": 25, "defense": 15, "speed": 7,
     "skill_a": {"name": "Wall", "type": "GUARD", "multiplier": 0.6, "damage_reduction_percent": 40},
     "skill_b": {"name": "Jab", "type": "STRIKE", "multiplier": 0.9}},
    {"name": "Gamma", "hit_points": 90, "attack": 35, "defense": 5, "speed": 14,
     "skill_a": {"name": "Lance", "type": "PIERCE", "multiplier": 1.1},
     "skill_b": {"name": "Veil", "type": "FOCUS", "multiplier": 0.7, "ally_heal_percent": 20}}
  ]
}`

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, minimalConfig))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.Templates) != 3 {
		t.Errorf("templates = %d, want 3", len(cfg.Templates))
	}
	if cfg.ServerAddress != ":8080" {
		t.Errorf("address = %s, want default :8080", cfg.ServerAddress)
	}
	if cfg.Rules.TeamSize != 3 || cfg.Rules.MaxTurns != 50 || cfg.Rules.MomentumMax != 10 {
		t.Errorf("rules = %+v, want defaults 3/50/10", cfg.Rules)
	}
	if cfg.RatingWindow != 200 || cfg.BotWait != 10*time.Second {
		t.Errorf("matchmaking = %d/%v, want defaults 200/10s", cfg.RatingWindow, cfg.BotWait)
	}
	if cfg.Rating.Starting != 1000 || cfg.Rating.KFactor != 32 {
		t.Errorf("rating = %+v, want defaults 1000/32", cfg.Rating)
	}
	if cfg.Templates[0].Skill.Type != game.SkillStrike {
		t.Errorf("skill type = %s, want STRIKE", cfg.Templates[0].Skill.Type)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	content := `{
  "server": {"address": ":9090"},
  "battle": {"team_size": 2, "max_turns": 30, "crit_chance_percent": 5},
  "matchmaking": {"rating_window": 150, "bot_wait_seconds": 5},
  "rating": {"starting": 1200, "k_factor": 24, "bot_win_delta": 10, "bot_loss_delta": -5},
  "roachy_list": [
    {"name": "Alpha", "hit_points": 100, "attack": 30,
     "skill_a": {"name": "Slam", "type": "STRIKE", "multiplier": 1.0},
     "skill_b": {"name": "Nova", "type": "BURST", "multiplier": 1.4}},
    {"name": "Beta", "hit_points": 120, "attack": 25,
     "skill_a": {"name": "Jab", "type": "STRIKE", "multiplier": 0.9},
     "skill_b": {"name": "Lance", "type": "PIERCE", "multiplier": 1.1}}
  ]
}`
	cfg, err := LoadConfig(writeConfig(t, content))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ServerAddress != ":9090" {
		t.Errorf("address = %s, want :9090", cfg.ServerAddress)
	}
	if cfg.Rules.TeamSize != 2 || cfg.Rules.MaxTurns != 30 || cfg.Rules.CritChancePercent != 5 {
		t.Errorf("rules = %+v", cfg.Rules)
	}
	if cfg.RatingWindow != 150 || cfg.BotWait != 5*time.Second {
		t.Errorf("matchmaking = %d/%v", cfg.RatingWindow, cfg.BotWait)
	}
	if cfg.Rating.Starting != 1200 || cfg.Rating.BotLossDelta != -5 {
		t.Errorf("rating = %+v", cfg.Rating)
	}
}

func TestLoadConfigExplicitZeroCritChance(t *testing.T) {
	content := `{
  "battle": {"crit_chance_percent": 0},
  "roachy_list": [
    {"name": "Alpha", "hit_points": 100, "attack": 30,
     "skill_a": {"name": "Slam", "type": "STRIKE", "multiplier": 1.0},
     "skill_b": {"name": "Nova", "type": "BURST", "multiplier": 1.4}},
    {"name": "Beta", "hit_points": 120, "attack": 25,
     "skill_a": {"name": "Jab", "type": "STRIKE", "multiplier": 0.9},
     "skill_b": {"name": "Lance", "type": "PIERCE", "multiplier": 1.1}},
    {"name": "Gamma", "hit_points": 90, "attack": 35,
     "skill_a": {"name": "Dive", "type": "PIERCE", "multiplier": 1.1},
     "skill_b": {"name": "Veil", "type": "FOCUS", "multiplier": 0.7}}
  ]
}`
	cfg, err := LoadConfig(writeConfig(t, content))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	// an explicit 0 must not be mistaken for "unset" and defaulted to 10
	if cfg.Rules.CritChancePercent != 0 {
		t.Errorf("crit chance = %d, want a configured crit-free 0", cfg.Rules.CritChancePercent)
	}
}

func TestLoadConfigRejectsBadInput(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"missing file is an error", ""},
		{"empty list", `{"roachy_list": []}`},
		{"missing name", `{"roachy_list": [{"hit_points": 100, "attack": 30,
			"skill_a": {"name": "Slam", "type": "STRIKE", "multiplier": 1.0},
			"skill_b": {"name": "Nova", "type": "BURST", "multiplier": 1.4}}]}`},
		{"duplicate name", `{"roachy_list": [
			{"name": "Alpha", "hit_points": 100, "attack": 30,
			 "skill_a": {"name": "Slam", "type": "STRIKE", "multiplier": 1.0},
			 "skill_b": {"name": "Nova", "type": "BURST", "multiplier": 1.4}},
			{"name": "alpha", "hit_points": 100, "attack": 30,
			 "skill_a": {"name": "Slam", "type": "STRIKE", "multiplier": 1.0},
			 "skill_b": {"name": "Nova", "type": "BURST", "multiplier": 1.4}}]}`},
		{"zero hit points", `{"roachy_list": [{"name": "Alpha", "hit_points": 0, "attack": 30,
			"skill_a": {"name": "Slam", "type": "STRIKE", "multiplier": 1.0},
			"skill_b": {"name": "Nova", "type": "BURST", "multiplier": 1.4}}]}`},
		{"unknown skill type", `{"roachy_list": [{"name": "Alpha", "hit_points": 100, "attack": 30,
			"skill_a": {"name": "Slam", "type": "SMASH", "multiplier": 1.0},
			"skill_b": {"name": "Nova", "type": "BURST", "multiplier": 1.4}}]}`},
		{"zero multiplier", `{"roachy_list": [{"name": "Alpha", "hit_points": 100, "attack": 30,
			"skill_a": {"name": "Slam", "type": "STRIKE", "multiplier": 0},
			"skill_b": {"name": "Nova", "type": "BURST", "multiplier": 1.4}}]}`},
		{"reduction out of range", `{"roachy_list": [{"name": "Alpha", "hit_points": 100, "attack": 30,
			"skill_a": {"name": "Wall", "type": "GUARD", "multiplier": 0.6, "damage_reduction_percent": 140},
			"skill_b": {"name": "Nova", "type": "BURST", "multiplier": 1.4}}]}`},
		{"crit chance out of range", `{"battle": {"crit_chance_percent": 150}, "roachy_list": [
			{"name": "Alpha", "hit_points": 100, "attack": 30,
			 "skill_a": {"name": "Slam", "type": "STRIKE", "multiplier": 1.0},
			 "skill_b": {"name": "Nova", "type": "BURST", "multiplier": 1.4}}]}`},
		{"team size exceeds pool", `{"battle": {"team_size": 5}, "roachy_list": [
			{"name": "Alpha", "hit_points": 100, "attack": 30,
			 "skill_a": {"name": "Slam", "type": "STRIKE", "multiplier": 1.0},
			 "skill_b": {"name": "Nova", "type": "BURST", "multiplier": 1.4}}]}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "missing.json")
			if c.content != "" {
				path = writeConfig(t, c.content)
			}
			if _, err := LoadConfig(path); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
