package api

import (
	"github.com/roachygames/battle-arena/internal/game"
	"github.com/roachygames/battle-arena/internal/rating"
	"github.com/roachygames/battle-arena/internal/registry"
	"github.com/roachygames/battle-arena/internal/service"
	"github.com/roachygames/battle-arena/internal/storage"
)

// BattleHandler groups all battle-related HTTP handlers.
type BattleHandler struct {
	repo      storage.Repository
	reg       *registry.Registry
	rules     game.Rules
	queueCfg  service.QueueConfig
	ratingCfg rating.Settings
}

// NewBattleHandler creates a handler wired with the repository, the
// in-memory match registry and the configured tuning.
func NewBattleHandler(repo storage.Repository, reg *registry.Registry, rules game.Rules, queueCfg service.QueueConfig, ratingCfg rating.Settings) *BattleHandler {
	return &BattleHandler{repo: repo, reg: reg, rules: rules, queueCfg: queueCfg, ratingCfg: ratingCfg}
}
