package main

import (
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/roachygames/battle-arena/internal/api"
	"github.com/roachygames/battle-arena/internal/config"
	"github.com/roachygames/battle-arena/internal/constants"
	"github.com/roachygames/battle-arena/internal/logging"
	"github.com/roachygames/battle-arena/internal/registry"
	"github.com/roachygames/battle-arena/internal/service"
	"github.com/roachygames/battle-arena/internal/storage"
)

const defaultDBPath = "./data/arena.db"

func main() {
	configPath := os.Getenv(constants.EnvConfigPath)
	if configPath == "" {
		configPath = "battle_config.json"
		logging.Warn("ARENA_CONFIG not set, using default config path", logging.Fields{"path": configPath})
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logging.Fatal("Failed to load configuration", err, nil)
	}

	dbPath := os.Getenv(constants.EnvDBPath)
	if dbPath == "" {
		dbPath = defaultDBPath
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		logging.Fatal("Failed to create database directory", err, nil)
	}

	db, err := storage.OpenAndMigrate(dbPath, cfg.Templates)
	if err != nil {
		logging.Fatal("Failed to open database", err, nil)
	}

	repo := storage.NewSQLiteRepository(db, cfg.Templates, cfg.Rating.Starting)
	reg := registry.New()
	queueCfg := service.QueueConfig{RatingWindow: cfg.RatingWindow, BotWait: cfg.BotWait}
	handler := api.NewBattleHandler(repo, reg, cfg.Rules, queueCfg, cfg.Rating)

	router := gin.Default()
	apiGroup := router.Group(constants.RouteAPIPrefix)
	apiGroup.GET(constants.RouteRoster, handler.GetRoster)
	apiGroup.GET(constants.RouteLeaderboard, handler.GetLeaderboard)

	authed := apiGroup.Group("", api.PlayerRequired())
	authed.POST(constants.RouteQueueJoin, handler.JoinQueue)
	authed.POST(constants.RouteQueueLeave, handler.LeaveQueue)
	authed.GET(constants.RouteQueueStatus, handler.QueueStatus)
	authed.GET(constants.RoutePlayerStats, handler.GetPlayerStats)
	authed.POST(constants.RouteBattleTeam, handler.SubmitTeam)
	authed.POST(constants.RouteBattleTurn, handler.SubmitTurn)
	authed.GET(constants.RouteBattleByID, handler.GetBattle)
	authed.POST(constants.RouteBattleForfeit, handler.Forfeit)

	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: cfg.ServerAddress})
	if err := router.Run(cfg.ServerAddress); err != nil {
		logging.Fatal("Server stopped", err, nil)
	}
}
