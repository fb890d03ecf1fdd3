package score

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/propline/proppool/config"
	"github.com/propline/proppool/internal/pool"
	"github.com/propline/proppool/internal/prop"
)

// RegisterScoreRoutes mounts the resolution endpoint.
func RegisterScoreRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, logger *zap.Logger) {
	repo := NewScoreRepository(db)
	props := prop.NewPropRepository(db)
	pools := pool.NewPoolRepository(db)
	controller := NewScoreController(repo, props, pools, logger)

	router.POST("/pools/:code/props/:propID/resolve", controller.ResolveProp)
}
