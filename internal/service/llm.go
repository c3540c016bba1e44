package service

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/nightcap/backend/config"
)

// mixologistPrompt is the fixed system instruction sent with every generation
const mixologistPrompt = "You are a professional mixologist. Return original cocktail recipes in an inviting tone, " +
	"in this format:\n\n" +
	"**Name**: Cocktail Name\n" +
	"**Type**: Classic or Modern Twist\n" +
	"**Description**: A short poetic sentence\n" +
	"**Ingredients**:\n- Ingredient 1\n- Ingredient 2\n" +
	"**Instructions**: One or two clear sentences"

var (
	generationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nightcap_generation_requests_total",
			Help: "Total number of cocktail generation calls to the upstream API.",
		},
		[]string{"model", "status"},
	)
	generationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nightcap_generation_duration_seconds",
			Help:    "Latency of upstream cocktail generation calls.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"model"},
	)
	generationTokens = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nightcap_generation_tokens_total",
			Help: "Tokens consumed by cocktail generation, by kind (prompt, completion).",
		},
		[]string{"model", "kind"},
	)
)

// UpstreamError reports a failed call to the text-generation API. Its message
// is the underlying error's message, unchanged.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string { return e.Err.Error() }

func (e *UpstreamError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrUpstream) match any UpstreamError
func (e *UpstreamError) Is(target error) bool { return target == ErrUpstream }

// LLMOptions are the request parameters sent upstream
type LLMOptions struct {
	Model     string
	MaxTokens int
}

// LLMService generates cocktail recipes with a chat-completion API
type LLMService struct {
	client ChatCompleter
	opts   LLMOptions
	logger *zap.Logger
}

// NewLLMService creates a new LLMService around an already configured client
func NewLLMService(client ChatCompleter, opts LLMOptions, logger *zap.Logger) *LLMService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LLMService{
		client: client,
		opts:   opts,
		logger: logger.Named("llm"),
	}
}

// NewOpenAIClient builds the upstream client from configuration
func NewOpenAIClient(cfg *config.Config) *openai.Client {
	clientCfg := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		clientCfg.BaseURL = strings.TrimSuffix(cfg.OpenAIBaseURL, "/")
	}
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.OpenAITimeout}
	return openai.NewClientWithConfig(clientCfg)
}

// GenerateCocktail sends the prompt to the upstream API exactly once and
// returns the trimmed text of the first choice
func (s *LLMService) GenerateCocktail(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: s.opts.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: mixologistPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens: s.opts.MaxTokens,
	}

	s.logger.Info("prompt received",
		zap.String("model", s.opts.Model),
		zap.Int("prompt_bytes", len(prompt)),
	)

	start := time.Now()
	resp, err := s.client.CreateChatCompletion(ctx, req)
	elapsed := time.Since(start)
	generationDuration.WithLabelValues(s.opts.Model).Observe(elapsed.Seconds())

	if err != nil {
		generationRequests.WithLabelValues(s.opts.Model, "error").Inc()
		s.logger.Error("upstream call failed", zap.Duration("latency", elapsed), zap.Error(err))
		return "", &UpstreamError{Err: err}
	}

	if len(resp.Choices) == 0 {
		generationRequests.WithLabelValues(s.opts.Model, "empty").Inc()
		s.logger.Error("upstream returned no choices", zap.Duration("latency", elapsed))
		return "", &UpstreamError{Err: ErrEmptyCompletion}
	}

	generationRequests.WithLabelValues(s.opts.Model, "success").Inc()
	generationTokens.WithLabelValues(s.opts.Model, "prompt").Add(float64(resp.Usage.PromptTokens))
	generationTokens.WithLabelValues(s.opts.Model, "completion").Add(float64(resp.Usage.CompletionTokens))

	s.logger.Info("upstream response received",
		zap.Duration("latency", elapsed),
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens),
		zap.String("finish_reason", string(resp.Choices[0].FinishReason)),
	)

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
