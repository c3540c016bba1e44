package service

import (
	"context"
	"errors"

	"github.com/sashabaranov/go-openai"

	"github.com/nightcap/backend/internal/model"
)

var (
	// ErrRecipeNotFound is returned when no catalog record has the requested slug
	ErrRecipeNotFound = errors.New("cocktail not found")
	// ErrUpstream wraps every failure of the text-generation API
	ErrUpstream = errors.New("upstream generation failed")
	// ErrEmptyCompletion is returned when the API answers without any choice
	ErrEmptyCompletion = errors.New("no completion choices in response")
)

// IRecipeService defines the read operations on the cocktail catalog
type IRecipeService interface {
	ListRecipes(ctx context.Context) []model.Recipe
	GetRecipeBySlug(ctx context.Context, slug string) (model.Recipe, error)
	Count() int
}

// LLMServiceInterface defines cocktail generation through the upstream API
type LLMServiceInterface interface {
	GenerateCocktail(ctx context.Context, prompt string) (string, error)
}

// ChatCompleter is the subset of the OpenAI client used for generation.
// *openai.Client satisfies it.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}
