package router

import (
	"github.com/gin-gonic/gin"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"go.uber.org/zap"

	"github.com/nightcap/backend/internal/api"
	"github.com/nightcap/backend/internal/middleware"
	"github.com/nightcap/backend/internal/service"
)

// Options controls the cross-cutting parts of the engine
type Options struct {
	Logger         *zap.Logger
	AllowedOrigins []string
	MetricsEnabled bool
}

// SetupRouter configures the application routes
func SetupRouter(opts Options, recipes service.IRecipeService, llm service.LLMServiceInterface) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true

	router.Use(middleware.ZapLogger(logger))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.CORS(opts.AllowedOrigins))

	// Must be applied before the routes, gin copies middleware at registration.
	if opts.MetricsEnabled {
		p := ginprometheus.NewPrometheus("gin")
		p.ReqCntURLLabelMappingFn = routeLabel
		p.Use(router)
	}

	api.RegisterRoutes(router, recipes, llm)

	return router
}

// routeLabel keeps slug values out of the metric label set
func routeLabel(c *gin.Context) string {
	if path := c.FullPath(); path != "" {
		return path
	}
	return "unmatched"
}
