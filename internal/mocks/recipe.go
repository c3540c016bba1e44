package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nightcap/backend/internal/model"
)

// MockRecipeService is a mock implementation of the recipe service
type MockRecipeService struct {
	mock.Mock
}

// ListRecipes mocks the ListRecipes method
func (m *MockRecipeService) ListRecipes(ctx context.Context) []model.Recipe {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.Recipe)
}

// GetRecipeBySlug mocks the GetRecipeBySlug method
func (m *MockRecipeService) GetRecipeBySlug(ctx context.Context, slug string) (model.Recipe, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).(model.Recipe), args.Error(1)
}

// Count mocks the Count method
func (m *MockRecipeService) Count() int {
	args := m.Called()
	return args.Int(0)
}
