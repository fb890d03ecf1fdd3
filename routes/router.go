package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/propline/proppool/config"
	"github.com/propline/proppool/internal/middleware"
	"github.com/propline/proppool/internal/pick"
	"github.com/propline/proppool/internal/pool"
	"github.com/propline/proppool/internal/prop"
	"github.com/propline/proppool/internal/recovery"
	"github.com/propline/proppool/internal/score"
	"github.com/propline/proppool/internal/stats"
	"github.com/propline/proppool/utils"
)

func SetupRoutes(db *gorm.DB, appConfig *config.Config, logger *zap.Logger) *gin.Engine {
	if appConfig.App.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(utils.RequestLogger(logger))

	// The session cookie rides cross-origin requests from the frontend, so
	// origins cannot be wildcarded.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{appConfig.App.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.SecretHeader},
		AllowCredentials: true,
	}))
	r.Use(middleware.SessionLoader(appConfig))

	// Welcome page
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(`
			<html>
				<head><title>PropPool</title></head>
				<body style="text-align:center; margin-top: 40px;">
					<h1>PropPool 🏈</h1>
					<p>Create a pool, share the code, talk trash.</p>
					<a href="/swagger/index.html">API docs</a>
				</body>
			</html>
		`))
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	pool.RegisterPoolRoutes(api, db, appConfig, logger)
	prop.RegisterPropRoutes(api, db, appConfig, logger)
	pick.RegisterPickRoutes(api, db, appConfig, logger)
	score.RegisterScoreRoutes(api, db, appConfig, logger)
	stats.RegisterStatsRoutes(api, db, appConfig, logger)
	recovery.RegisterRecoveryRoutes(api, db, appConfig, logger)

	return r
}
