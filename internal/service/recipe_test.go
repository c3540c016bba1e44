package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nightcap/backend/internal/catalog"
	"github.com/nightcap/backend/internal/model"
)

func testCatalog() []model.Recipe {
	return []model.Recipe{
		{Name: "Manhattan", Slug: "manhattan", Ingredients: []string{"2 oz Rye Whiskey", "1 oz Sweet Vermouth"}},
		{Name: "Greenpoint", Slug: "greenpoint", Ingredients: []string{"2 oz Rye Whiskey"}},
		{Name: "Negroni", Slug: "negroni", Ingredients: []string{"1 oz Gin", "1 oz Campari"}},
	}
}

func TestListRecipes(t *testing.T) {
	svc := NewRecipeService(testCatalog())
	ctx := context.Background()

	first := svc.ListRecipes(ctx)
	require.Len(t, first, 3)
	assert.Equal(t, []string{"manhattan", "greenpoint", "negroni"}, slugs(first))

	// mutating a result must not leak into later calls
	first[0].Name = "changed"
	first[0].Ingredients[0] = "changed"

	second := svc.ListRecipes(ctx)
	assert.Equal(t, testCatalog(), second)
	assert.Equal(t, 3, svc.Count())
}

func TestListRecipesEmptyCatalog(t *testing.T) {
	svc := NewRecipeService(nil)
	recipes := svc.ListRecipes(context.Background())
	assert.NotNil(t, recipes)
	assert.Empty(t, recipes)
}

func TestGetRecipeBySlug(t *testing.T) {
	svc := NewRecipeService(testCatalog())

	for _, want := range testCatalog() {
		got, err := svc.GetRecipeBySlug(context.Background(), want.Slug)
		require.NoError(t, err)
		assert.Equal(t, want.Slug, got.Slug)
		assert.Equal(t, want, got)
	}
}

func TestGetRecipeBySlugNotFound(t *testing.T) {
	svc := NewRecipeService(testCatalog())

	for _, slug := range []string{"does-not-exist", "Negroni", "negroni ", ""} {
		got, err := svc.GetRecipeBySlug(context.Background(), slug)
		assert.ErrorIs(t, err, ErrRecipeNotFound, slug)
		assert.Equal(t, model.Recipe{}, got)
	}
}

func TestGetRecipeBySlugFirstMatchWins(t *testing.T) {
	recipes := append(testCatalog(), model.Recipe{Name: "Other Negroni", Slug: "negroni", Ingredients: []string{"x"}})
	svc := NewRecipeService(recipes)

	got, err := svc.GetRecipeBySlug(context.Background(), "negroni")
	require.NoError(t, err)
	assert.Equal(t, "Negroni", got.Name)
}

func TestRecipeServiceOverDefaultCatalog(t *testing.T) {
	recipes, err := catalog.Default()
	require.NoError(t, err)
	svc := NewRecipeService(recipes)

	for _, r := range svc.ListRecipes(context.Background()) {
		got, err := svc.GetRecipeBySlug(context.Background(), r.Slug)
		require.NoError(t, err)
		assert.Equal(t, r.Slug, got.Slug)
	}
}

func slugs(recipes []model.Recipe) []string {
	out := make([]string, len(recipes))
	for i, r := range recipes {
		out[i] = r.Slug
	}
	return out
}
