package service

import (
	"context"

	"github.com/nightcap/backend/internal/model"
)

// RecipeService serves the read-only cocktail catalog. It is safe for
// concurrent use because nothing mutates the catalog after construction.
type RecipeService struct {
	recipes []model.Recipe
	bySlug  map[string]int
}

// NewRecipeService creates a new RecipeService over a loaded catalog
func NewRecipeService(recipes []model.Recipe) *RecipeService {
	s := &RecipeService{
		recipes: make([]model.Recipe, len(recipes)),
		bySlug:  make(map[string]int, len(recipes)),
	}
	for i, r := range recipes {
		s.recipes[i] = r.Clone()
		// first match wins
		if _, ok := s.bySlug[r.Slug]; !ok {
			s.bySlug[r.Slug] = i
		}
	}
	return s
}

// ListRecipes returns every recipe in catalog order
func (s *RecipeService) ListRecipes(ctx context.Context) []model.Recipe {
	out := make([]model.Recipe, len(s.recipes))
	for i, r := range s.recipes {
		out[i] = r.Clone()
	}
	return out
}

// GetRecipeBySlug returns the recipe whose slug matches exactly
func (s *RecipeService) GetRecipeBySlug(ctx context.Context, slug string) (model.Recipe, error) {
	i, ok := s.bySlug[slug]
	if !ok {
		return model.Recipe{}, ErrRecipeNotFound
	}
	return s.recipes[i].Clone(), nil
}

// Count returns the number of recipes in the catalog
func (s *RecipeService) Count() int {
	return len(s.recipes)
}
