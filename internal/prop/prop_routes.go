package prop

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/propline/proppool/config"
	"github.com/propline/proppool/internal/pool"
)

// RegisterPropRoutes mounts prop management endpoints. All of them are
// captain-only.
func RegisterPropRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, logger *zap.Logger) {
	repo := NewPropRepository(db)
	pools := pool.NewPoolRepository(db)
	controller := NewPropController(repo, pools, logger)

	props := router.Group("/pools/:code/props")
	{
		props.POST("", controller.AddProp)
		props.PATCH("", controller.ReorderProps)
		props.PATCH("/:propID", controller.UpdateProp)
		props.DELETE("/:propID", controller.DeleteProp)
	}
}
