package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nightcap/backend/internal/middleware"
	"github.com/nightcap/backend/internal/service"
)

// HealthCheck returns the health status of the API
func HealthCheck(recipes service.IRecipeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthResponse{
			Status:    "ok",
			Cocktails: recipes.Count(),
		})
	}
}

// NotFound answers requests for unknown routes
func NotFound(c *gin.Context) {
	middleware.Abort(c, http.StatusNotFound, http.StatusText(http.StatusNotFound))
}

// MethodNotAllowed answers known routes requested with the wrong method
func MethodNotAllowed(c *gin.Context) {
	middleware.Abort(c, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, recipes service.IRecipeService, llm service.LLMServiceInterface) {
	health := HealthCheck(recipes)
	router.GET("/health", health)
	router.HEAD("/health", health)

	v := router.Group("/api")
	NewRecipeHandler(recipes).RegisterRoutes(v)
	NewLLMHandler(llm).RegisterRoutes(v)

	router.NoRoute(NotFound)
	router.NoMethod(MethodNotAllowed)
}
