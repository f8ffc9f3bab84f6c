package presentation

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github-repos-proxy/docs"
	"github-repos-proxy/internal/application/dto"
	"github-repos-proxy/internal/config"
	"github-repos-proxy/internal/middleware"
	"github-repos-proxy/internal/presentation/handlers"
)

// NewRouter assembles the HTTP routes and middleware chain
func NewRouter(
	cfg *config.Config,
	logger logrus.FieldLogger,
	healthHandler *handlers.HealthHandler,
	repositoryHandler *handlers.RepositoryHandler,
) *gin.Engine {
	gin.SetMode(cfg.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(cors.New(corsConfig(cfg.CORS)))

	router.GET("/health", healthHandler.Health)
	router.GET("/users/:username/repositories", repositoryHandler.ListUserRepositories)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}

func corsConfig(cfg config.CORSConfig) cors.Config {
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", dto.APIVersionHeader, middleware.RequestIDHeader},
		ExposeHeaders: []string{dto.APIVersionHeader, middleware.RequestIDHeader},
	}

	for _, origin := range cfg.AllowedOrigins {
		if origin == "*" {
			corsCfg.AllowAllOrigins = true
			return corsCfg
		}
	}
	corsCfg.AllowOrigins = cfg.AllowedOrigins

	return corsCfg
}
