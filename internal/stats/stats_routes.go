package stats

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/propline/proppool/config"
	"github.com/propline/proppool/internal/pick"
	"github.com/propline/proppool/internal/pool"
	"github.com/propline/proppool/internal/prop"
)

// RegisterStatsRoutes mounts the public leaderboard endpoint.
func RegisterStatsRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, logger *zap.Logger) {
	pools := pool.NewPoolRepository(db)
	props := prop.NewPropRepository(db)
	picks := pick.NewPickRepository(db)
	controller := NewStatsController(pools, props, picks, logger)

	router.GET("/pools/:code/leaderboard", controller.Leaderboard)
}
