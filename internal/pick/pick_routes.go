package pick

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/propline/proppool/config"
	"github.com/propline/proppool/internal/pool"
	"github.com/propline/proppool/internal/prop"
)

// RegisterPickRoutes mounts pick submission and retrieval endpoints.
func RegisterPickRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, logger *zap.Logger) {
	repo := NewPickRepository(db)
	props := prop.NewPropRepository(db)
	pools := pool.NewPoolRepository(db)
	controller := NewPickController(repo, props, pools, logger)

	picks := router.Group("/pools/:code/picks")
	{
		picks.POST("", controller.SubmitPick)
		picks.GET("/mine", controller.MyPicks)
	}
}
