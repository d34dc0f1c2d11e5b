package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/relay-race-book/internal/domain/port/core"
	"github.com/amirhossein-jamali/relay-race-book/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/relay-race-book/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	sprinterHandler *handler.SprinterHandler,
	clockHandler *handler.ClockHandler,
) {
	sprinterRoutes := router.Group("/sprinters")
	{
		sprinterRoutes.POST("", sprinterHandler.CreateSprinter)
		sprinterRoutes.GET("", sprinterHandler.ListSprinters)
		sprinterRoutes.GET("/best", sprinterHandler.BestSprinter)
		sprinterRoutes.POST("/:firstName/:lastName/time", sprinterHandler.ModifyTime)
	}

	clockRoutes := router.Group("/clock")
	{
		clockRoutes.GET("/now", clockHandler.Now)
		clockRoutes.POST("/shift", clockHandler.Shift)
		clockRoutes.POST("/gap", clockHandler.Gap)
		clockRoutes.POST("/compare", clockHandler.Compare)
	}

	router.POST("/durations/combine", clockHandler.CombineDurations)
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, middleware.RequestIDHeader)
	corsConfig.ExposeHeaders = []string{middleware.RequestIDHeader}

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(cors.New(corsConfig))
}

// NewRouter builds a gin engine with all middlewares and routes installed
func NewRouter(
	logger coreport.Logger,
	sprinterHandler *handler.SprinterHandler,
	clockHandler *handler.ClockHandler,
) *gin.Engine {
	router := gin.New()
	SetupMiddlewares(router, logger)
	SetupRoutes(router, sprinterHandler, clockHandler)
	return router
}
