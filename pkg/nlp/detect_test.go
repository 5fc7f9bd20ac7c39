package nlp

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundprediction/herorag/pkg/config"
)

func TestDetectPriorityOrder(t *testing.T) {
	tests := []struct {
		name        string
		cfg         config.LLMConfig
		wantBackend string
		wantModel   string
	}{
		{
			name: "openai wins over everything",
			cfg: config.LLMConfig{
				OpenAIAPIKey:  "sk-1",
				GroqAPIKey:    "gsk-1",
				OllamaBaseURL: "http://localhost:11434",
			},
			wantBackend: string(BackendOpenAI),
			wantModel:   DefaultOpenAIModel,
		},
		{
			name: "groq wins over ollama",
			cfg: config.LLMConfig{
				GroqAPIKey:    "gsk-1",
				OllamaBaseURL: "http://localhost:11434",
			},
			wantBackend: string(BackendGroq),
			wantModel:   DefaultGroqModel,
		},
		{
			name:        "ollama alone",
			cfg:         config.LLMConfig{OllamaBaseURL: "http://localhost:11434"},
			wantBackend: string(BackendOllama),
			wantModel:   DefaultOllamaModel,
		},
		{
			name:        "model override",
			cfg:         config.LLMConfig{OpenAIAPIKey: "sk-1", Model: "gpt-4o"},
			wantBackend: string(BackendOpenAI),
			wantModel:   "gpt-4o",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := Detect(tt.cfg)
			require.NoError(t, err)
			desc := client.Describe()
			assert.Equal(t, "ready", desc.Status)
			assert.Equal(t, tt.wantBackend, desc.Backend)
			assert.Equal(t, tt.wantModel, desc.Model)
		})
	}
}

func TestDetectNoBackend(t *testing.T) {
	_, err := Detect(config.LLMConfig{})
	require.ErrorIs(t, err, ErrNoBackend)
}

// brokenClient fails every call.
type brokenClient struct{}

func (brokenClient) Generate(context.Context, string, string) (string, error) {
	return "", &UnavailableError{Err: errors.New("connection refused")}
}

func (brokenClient) Describe() Description {
	return Description{Status: "ready", Backend: "test", Model: "test"}
}

func (brokenClient) Close() error { return nil }

func TestCircuitBreakerOpensAfterFailures(t *testing.T) {
	cfg := config.CircuitBreakerConfig{
		Enabled:          true,
		MaxRequests:      1,
		Interval:         60,
		Timeout:          60,
		ReadyToTripRatio: 0.5,
	}
	client := NewCircuitBreakerClient(brokenClient{}, cfg, slog.Default(), "test-backend")

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := client.Generate(ctx, "system", "user")
		require.Error(t, err)
	}

	// Three straight failures trip the breaker; the next call fails fast
	// without reaching the client.
	_, err := client.Generate(ctx, "system", "user")
	require.Error(t, err)
	assert.False(t, errors.Is(err, &UnavailableError{}), "breaker should fail fast, got %v", err)
}
