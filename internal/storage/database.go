package storage

import (
	"github.com/roachygames/battle-arena/internal/game"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenAndMigrate opens the sqlite database, keeps the schema updated via
// AutoMigrate and seeds the unit template rows from the server config. The
// templates' stats are always taken from the config file; the database only
// provides stable template ids and the rating rows.
func OpenAndMigrate(dataSourceName string, templatesFromConfig []game.UnitTemplate) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&game.UnitTemplate{}, &game.PlayerRating{}); err != nil {
		return nil, err
	}

	seedUnitTemplates(db, templatesFromConfig)
	return db, nil
}

func seedUnitTemplates(db *gorm.DB, templatesFromConfig []game.UnitTemplate) {
	var count int64
	db.Model(&game.UnitTemplate{}).Count(&count)
	if count > 0 {
		return
	}
	templates := make([]game.UnitTemplate, len(templatesFromConfig))
	copy(templates, templatesFromConfig)
	db.Create(&templates)
}
