package storage

import "github.com/roachygames/battle-arena/internal/game"

// Repository is the persistence surface for unit templates and player
// ratings. Live match state is process memory and never goes through here.
type Repository interface {
	// GetUnitTemplates returns the full roster pool in template-id order,
	// hydrated with the config-sourced stats.
	GetUnitTemplates() ([]game.UnitTemplate, error)
	GetUnitTemplatesByIDs(ids []uint) ([]game.UnitTemplate, error)

	// EnsureRating returns the player's rating row, creating it at the
	// starting rating on first reference.
	EnsureRating(playerID string) (*game.PlayerRating, error)
	SaveRating(r *game.PlayerRating) error

	// GetTopPlayers returns the leaderboard ordered by rating descending.
	GetTopPlayers(limit int) ([]game.PlayerRating, error)
}
