package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nightcap/backend/internal/middleware"
	"github.com/nightcap/backend/internal/service"
)

// CocktailNotFound is the detail returned for unknown slugs
const CocktailNotFound = "Cocktail not found"

type RecipeHandler struct {
	recipeService service.IRecipeService
}

func NewRecipeHandler(recipeService service.IRecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	cocktails := router.Group("/cocktails")
	{
		cocktails.GET("", h.ListRecipes)
		cocktails.GET("/:slug", h.GetRecipe)
	}
}

// ListRecipes returns the whole catalog as a JSON array
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	c.JSON(http.StatusOK, h.recipeService.ListRecipes(c.Request.Context()))
}

// GetRecipe returns a single recipe by slug
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipe, err := h.recipeService.GetRecipeBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			middleware.Abort(c, http.StatusNotFound, CocktailNotFound)
			return
		}
		_ = c.Error(err)
		middleware.Abort(c, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusOK, recipe)
}
