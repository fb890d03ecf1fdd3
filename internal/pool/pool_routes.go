package pool

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/propline/proppool/config"
)

// RegisterPoolRoutes mounts pool lifecycle and membership endpoints.
func RegisterPoolRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, logger *zap.Logger) {
	repo := NewPoolRepository(db)
	controller := NewPoolController(repo, appConfig, logger)

	pools := router.Group("/pools")
	{
		pools.POST("", controller.CreatePool)
		pools.GET("/:code", controller.GetPool)
		pools.PATCH("/:code", controller.UpdatePool)
		pools.POST("/:code/status", controller.ChangeStatus)
		pools.POST("/:code/join", controller.JoinPool)
		pools.GET("/:code/me", controller.Me)
		pools.DELETE("/:code/participants/:participantID", controller.RemoveParticipant)
	}
}
