package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nightcap/backend/internal/middleware"
	"github.com/nightcap/backend/internal/service"
)

// LLMHandler handles cocktail generation requests
type LLMHandler struct {
	llmService service.LLMServiceInterface
}

// NewLLMHandler creates a new LLMHandler instance
func NewLLMHandler(llmService service.LLMServiceInterface) *LLMHandler {
	return &LLMHandler{llmService: llmService}
}

// RegisterRoutes registers the generation route
func (h *LLMHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/generate-cocktail", h.GenerateCocktail)
}

// GenerateCocktail proxies the prompt upstream and returns the generated recipe
func (h *LLMHandler) GenerateCocktail(c *gin.Context) {
	var req GenerateCocktailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail := err.Error()
		if errors.Is(err, io.EOF) {
			detail = "request body is required"
		}
		middleware.Abort(c, http.StatusUnprocessableEntity, detail)
		return
	}

	cocktail, err := h.llmService.GenerateCocktail(c.Request.Context(), *req.Prompt)
	if err != nil {
		// Upstream failures are reported with their own message; anything
		// else is unexpected and stays in the logs.
		_ = c.Error(err)
		detail := http.StatusText(http.StatusInternalServerError)
		if errors.Is(err, service.ErrUpstream) {
			detail = err.Error()
		}
		middleware.Abort(c, http.StatusInternalServerError, detail)
		return
	}

	c.JSON(http.StatusOK, GenerateCocktailResponse{Cocktail: cocktail})
}
