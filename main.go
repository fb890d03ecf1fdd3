package main

import (
	"log"

	"github.com/propline/proppool/config"
	_ "github.com/propline/proppool/docs"
	"github.com/propline/proppool/internal/pick"
	"github.com/propline/proppool/internal/pool"
	"github.com/propline/proppool/internal/prop"
	"github.com/propline/proppool/internal/recovery"
	"github.com/propline/proppool/routes"
	"github.com/propline/proppool/utils"
)

// @title PropPool REST API
// @version 1.0
// @description Social prop-betting pools: create a pool, add props, share the invite code, and settle it on the leaderboard.
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey PoolSecret
// @in header
// @name X-Pool-Secret
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	logger, err := utils.InitLogger(cfg.App.Env)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	err = config.DB.AutoMigrate(
		&pool.Pool{}, &pool.Participant{},
		&prop.Prop{}, &pick.Pick{},
		&recovery.RecoveryToken{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	r := routes.SetupRoutes(config.DB, cfg, logger)

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
