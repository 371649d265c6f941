package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/roachygames/battle-arena/internal/game"
	"github.com/roachygames/battle-arena/internal/rating"
)

type skillEntry struct {
	Name                   string  `json:"name"`
	Type                   string  `json:"type"`
	Multiplier             float64 `json:"multiplier"`
	DamageReductionPercent int     `json:"damage_reduction_percent"`
	AllyHealPercent        int     `json:"ally_heal_percent"`
}

type unitEntry struct {
	Name      string     `json:"name"`
	Class     string     `json:"class"`
	Rarity    string     `json:"rarity"`
	HitPoints int        `json:"hit_points"`
	Attack    int        `json:"attack"`
	Defense   int        `json:"defense"`
	Speed     int        `json:"speed"`
	SkillA    skillEntry `json:"skill_a"`
	SkillB    skillEntry `json:"skill_b"`
}

type rawConfig struct {
	RoachyList []unitEntry `json:"roachy_list"`
	Server     *struct {
		Address string `json:"address"`
	} `json:"server"`
	Battle *struct {
		TeamSize    int `json:"team_size"`
		MaxTurns    int `json:"max_turns"`
		MomentumMax int `json:"momentum_max"`
		// pointer so an explicit 0 (crit-free ladder) is distinguishable
		// from an absent key
		CritChancePercent *int    `json:"crit_chance_percent"`
		CritMultiplier    float64 `json:"crit_multiplier"`
	} `json:"battle"`
	Matchmaking *struct {
		RatingWindow   int `json:"rating_window"`
		BotWaitSeconds int `json:"bot_wait_seconds"`
	} `json:"matchmaking"`
	Rating *struct {
		Starting     int     `json:"starting"`
		KFactor      float64 `json:"k_factor"`
		BotWinDelta  int     `json:"bot_win_delta"`
		BotLossDelta int     `json:"bot_loss_delta"`
	} `json:"rating"`
}

// LoadedConfig contains the unit pool to seed plus all server tuning.
type LoadedConfig struct {
	Templates     []game.UnitTemplate
	ServerAddress string
	Rules         game.Rules
	RatingWindow  int
	BotWait       time.Duration
	Rating        rating.Settings
}

func toSkill(e skillEntry) game.Skill {
	return game.Skill{
		Name:                   e.Name,
		Type:                   game.SkillType(e.Type),
		Multiplier:             e.Multiplier,
		DamageReductionPercent: e.DamageReductionPercent,
		AllyHealPercent:        e.AllyHealPercent,
	}
}

func validateSkill(path, unit, slot string, s game.Skill) error {
	if !s.Type.Valid() {
		return fmt.Errorf("config file %s: unit '%s' skill %s has unknown type '%s'", path, unit, slot, s.Type)
	}
	if s.Multiplier <= 0 {
		return fmt.Errorf("config file %s: unit '%s' skill %s must have a positive multiplier", path, unit, slot)
	}
	if s.DamageReductionPercent < 0 || s.DamageReductionPercent > 100 {
		return fmt.Errorf("config file %s: unit '%s' skill %s damage_reduction_percent out of range", path, unit, slot)
	}
	if s.AllyHealPercent < 0 || s.AllyHealPercent > 100 {
		return fmt.Errorf("config file %s: unit '%s' skill %s ally_heal_percent out of range", path, unit, slot)
	}
	return nil
}

// LoadConfig reads the configuration file at path. It requires the key
// `roachy_list` (snake_case) and rejects malformed unit entries at startup
// rather than trusting them at battle time.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if len(rc.RoachyList) == 0 {
		return nil, fmt.Errorf("config file %s: roachy_list is empty (provide a 'roachy_list' array)", path)
	}

	out := make([]game.UnitTemplate, 0, len(rc.RoachyList))
	nameSet := make(map[string]struct{}, len(rc.RoachyList))
	for _, u := range rc.RoachyList {
		if u.Name == "" {
			return nil, fmt.Errorf("config file %s: unit entry missing 'name'", path)
		}
		ln := strings.ToLower(strings.TrimSpace(u.Name))
		if _, exists := nameSet[ln]; exists {
			return nil, fmt.Errorf("config file %s: duplicate unit name '%s'", path, u.Name)
		}
		nameSet[ln] = struct{}{}
		if u.HitPoints <= 0 || u.Attack <= 0 {
			return nil, fmt.Errorf("config file %s: unit '%s' needs positive hit_points and attack", path, u.Name)
		}
		if u.Defense < 0 || u.Speed < 0 {
			return nil, fmt.Errorf("config file %s: unit '%s' has negative defense or speed", path, u.Name)
		}
		t := game.UnitTemplate{
			Name:      u.Name,
			Class:     u.Class,
			Rarity:    u.Rarity,
			HitPoints: u.HitPoints,
			Attack:    u.Attack,
			Defense:   u.Defense,
			Speed:     u.Speed,
			Skill:     toSkill(u.SkillA),
			SkillB:    toSkill(u.SkillB),
		}
		if err := validateSkill(path, u.Name, "A", t.Skill); err != nil {
			return nil, err
		}
		if err := validateSkill(path, u.Name, "B", t.SkillB); err != nil {
			return nil, err
		}
		out = append(out, t)
	}

	cfg := &LoadedConfig{
		Templates:     out,
		ServerAddress: ":8080",
		Rules: game.Rules{
			TeamSize:          3,
			MaxTurns:          50,
			MomentumMax:       10,
			CritChancePercent: 10,
			CritMultiplier:    1.5,
		},
		RatingWindow: 200,
		BotWait:      10 * time.Second,
		Rating:       rating.DefaultSettings(),
	}

	if rc.Server != nil && rc.Server.Address != "" {
		cfg.ServerAddress = rc.Server.Address
	}
	if rc.Battle != nil {
		if rc.Battle.TeamSize > 0 {
			cfg.Rules.TeamSize = rc.Battle.TeamSize
		}
		if rc.Battle.MaxTurns > 0 {
			cfg.Rules.MaxTurns = rc.Battle.MaxTurns
		}
		if rc.Battle.MomentumMax > 0 {
			cfg.Rules.MomentumMax = rc.Battle.MomentumMax
		}
		if rc.Battle.CritChancePercent != nil {
			if *rc.Battle.CritChancePercent < 0 || *rc.Battle.CritChancePercent > 100 {
				return nil, fmt.Errorf("config file %s: crit_chance_percent out of range", path)
			}
			cfg.Rules.CritChancePercent = *rc.Battle.CritChancePercent
		}
		if rc.Battle.CritMultiplier > 0 {
			cfg.Rules.CritMultiplier = rc.Battle.CritMultiplier
		}
	}
	if rc.Matchmaking != nil {
		if rc.Matchmaking.RatingWindow > 0 {
			cfg.RatingWindow = rc.Matchmaking.RatingWindow
		}
		if rc.Matchmaking.BotWaitSeconds > 0 {
			cfg.BotWait = time.Duration(rc.Matchmaking.BotWaitSeconds) * time.Second
		}
	}
	if rc.Rating != nil {
		if rc.Rating.Starting > 0 {
			cfg.Rating.Starting = rc.Rating.Starting
		}
		if rc.Rating.KFactor > 0 {
			cfg.Rating.KFactor = rc.Rating.KFactor
		}
		if rc.Rating.BotWinDelta != 0 {
			cfg.Rating.BotWinDelta = rc.Rating.BotWinDelta
		}
		if rc.Rating.BotLossDelta != 0 {
			cfg.Rating.BotLossDelta = rc.Rating.BotLossDelta
		}
	}

	if cfg.Rules.TeamSize > len(out) {
		return nil, fmt.Errorf("config file %s: team_size %d exceeds the %d configured units", path, cfg.Rules.TeamSize, len(out))
	}

	return cfg, nil
}
