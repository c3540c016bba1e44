package testhelpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/nightcap/backend/config"
)

// OpenAIStub is an httptest server speaking the chat-completions wire format.
// Every call is answered with Status and Body.
type OpenAIStub struct {
	URL    string
	Status int
	Body   string

	hits atomic.Int32
	mu   sync.Mutex
	last openai.ChatCompletionRequest
}

// NewOpenAIStub starts a stub answering 200 with body; it is closed with the test
func NewOpenAIStub(t *testing.T, body string) *OpenAIStub {
	t.Helper()
	stub := &OpenAIStub{Status: http.StatusOK, Body: body}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stub.hits.Add(1)
		if r.URL.Path != "/v1/chat/completions" {
			http.NotFound(w, r)
			return
		}

		var req openai.ChatCompletionRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		stub.mu.Lock()
		stub.last = req
		status, body := stub.Status, stub.Body
		stub.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(ts.Close)

	stub.URL = ts.URL
	return stub
}

// Respond changes the answer for subsequent calls
func (s *OpenAIStub) Respond(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Status, s.Body = status, body
}

// Hits returns how many requests reached the stub
func (s *OpenAIStub) Hits() int {
	return int(s.hits.Load())
}

// LastRequest returns the most recent decoded chat-completion request
func (s *OpenAIStub) LastRequest() openai.ChatCompletionRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Config returns an application config pointed at the stub
func (s *OpenAIStub) Config() *config.Config {
	return &config.Config{
		OpenAIAPIKey:    "sk-test",
		OpenAIBaseURL:   s.URL + "/v1/",
		OpenAIModel:     "gpt-3.5-turbo",
		OpenAIMaxTokens: 350,
		OpenAITimeout:   5 * time.Second,
	}
}

// Completion renders a successful response with a single choice
func Completion(content string) string {
	b, _ := json.Marshal(openai.ChatCompletionResponse{
		ID:     "chatcmpl-test",
		Object: "chat.completion",
		Model:  "gpt-3.5-turbo",
		Choices: []openai.ChatCompletionChoice{{
			Message:      openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: content},
			FinishReason: openai.FinishReasonStop,
		}},
		Usage: openai.Usage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
	})
	return string(b)
}
