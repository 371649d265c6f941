package service

import "github.com/roachygames/battle-arena/internal/game"

// StatsRepo is the minimal repository interface required by operations that
// read or update player ratings. Using a small interface simplifies testing.
type StatsRepo interface {
	EnsureRating(playerID string) (*game.PlayerRating, error)
	SaveRating(r *game.PlayerRating) error
}

// RosterRepo exposes the unit template pool (the roster provider).
type RosterRepo interface {
	GetUnitTemplates() ([]game.UnitTemplate, error)
	GetUnitTemplatesByIDs(ids []uint) ([]game.UnitTemplate, error)
}
