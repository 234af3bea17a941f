// Package https_server builds the gin engine: middleware first, then routes.
package https_server

import (
	"vidcall_server/internal/config"
	"vidcall_server/internal/handler"
	"vidcall_server/internal/infrastructure/logger"
	"vidcall_server/internal/infrastructure/middleware"
	"vidcall_server/internal/router"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Init returns an engine with logging, recovery, CORS and every route.
func Init(cfg *config.MainConfig, handlers *handler.Handlers, resolver middleware.SessionResolver) *gin.Engine {
	if cfg.Mode != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()

	engine.Use(logger.GinLogger())
	engine.Use(logger.GinRecovery(true))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	engine.Use(cors.New(corsConfig))

	// off when a proxy terminates TLS
	if cfg.ForceTLS {
		engine.Use(middleware.TlsHandler(cfg.Host, cfg.Port))
	}

	router.NewRouter(handlers, resolver).RegisterRoutes(engine)
	return engine
}
