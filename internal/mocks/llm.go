package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockLLMService is a mock implementation of the generation service
type MockLLMService struct {
	mock.Mock
}

// GenerateCocktail mocks the GenerateCocktail method
func (m *MockLLMService) GenerateCocktail(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}
