package storage

import (
	"strings"

	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	"github.com/roachygames/battle-arena/internal/game"
)

type sqliteRepository struct {
	db *gorm.DB
	// byName holds the config-sourced stats keyed by lowercase template
	// name; the DB rows carry identity only.
	byName         map[string]game.UnitTemplate
	startingRating int
	// ratingGroup deduplicates concurrent first-reference creation of a
	// rating row so two racing requests cannot both insert.
	ratingGroup singleflight.Group
}

// NewSQLiteRepository builds a Repository backed by the given gorm DB, with
// template stats hydrated from the server config.
func NewSQLiteRepository(db *gorm.DB, templatesFromConfig []game.UnitTemplate, startingRating int) Repository {
	byName := make(map[string]game.UnitTemplate, len(templatesFromConfig))
	for _, t := range templatesFromConfig {
		byName[strings.ToLower(t.Name)] = t
	}
	return &sqliteRepository{db: db, byName: byName, startingRating: startingRating}
}

// hydrate copies the config-sourced stats and skills onto a DB row.
func (r *sqliteRepository) hydrate(t *game.UnitTemplate) {
	cfg, ok := r.byName[strings.ToLower(t.Name)]
	if !ok {
		return
	}
	t.Class = cfg.Class
	t.Rarity = cfg.Rarity
	t.HitPoints = cfg.HitPoints
	t.Attack = cfg.Attack
	t.Defense = cfg.Defense
	t.Speed = cfg.Speed
	t.Skill = cfg.Skill
	t.SkillB = cfg.SkillB
}

func (r *sqliteRepository) GetUnitTemplates() ([]game.UnitTemplate, error) {
	var templates []game.UnitTemplate
	if err := r.db.Order("id").Find(&templates).Error; err != nil {
		return nil, err
	}
	for i := range templates {
		r.hydrate(&templates[i])
	}
	return templates, nil
}

func (r *sqliteRepository) GetUnitTemplatesByIDs(ids []uint) ([]game.UnitTemplate, error) {
	var templates []game.UnitTemplate
	if err := r.db.Where("id IN ?", ids).Find(&templates).Error; err != nil {
		return nil, err
	}
	for i := range templates {
		r.hydrate(&templates[i])
	}
	return templates, nil
}

func (r *sqliteRepository) EnsureRating(playerID string) (*game.PlayerRating, error) {
	v, err, _ := r.ratingGroup.Do(playerID, func() (interface{}, error) {
		var rec game.PlayerRating
		err := r.db.Where("player_id = ?", playerID).First(&rec).Error
		if err == nil {
			return &rec, nil
		}
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
		rec = game.PlayerRating{PlayerID: playerID, Rating: r.startingRating}
		if err := r.db.Create(&rec).Error; err != nil {
			return nil, err
		}
		return &rec, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*game.PlayerRating), nil
}

func (r *sqliteRepository) SaveRating(rec *game.PlayerRating) error {
	return r.db.Save(rec).Error
}

func (r *sqliteRepository) GetTopPlayers(limit int) ([]game.PlayerRating, error) {
	var rows []game.PlayerRating
	if err := r.db.Order("rating DESC").Limit(limit).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
