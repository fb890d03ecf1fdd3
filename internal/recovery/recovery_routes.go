package recovery

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/propline/proppool/config"
	"github.com/propline/proppool/internal/pool"
)

// RegisterRecoveryRoutes mounts token minting (captain) and redemption
// (public, the token is the credential).
func RegisterRecoveryRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, logger *zap.Logger) {
	repo := NewRecoveryRepository(db)
	pools := pool.NewPoolRepository(db)
	controller := NewRecoveryController(repo, pools, appConfig, logger)

	router.POST("/pools/:code/participants/:participantID/recovery", controller.MintToken)
	router.POST("/pools/:code/recover", controller.Redeem)
}
