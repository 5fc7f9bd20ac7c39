package nlp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatClientGenerate(t *testing.T) {
	var gotReq map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"choices": [{"message": {"role": "assistant", "content": "  Clark Kent.  "}}]
		}`))
	}))
	defer server.Close()

	client := NewChatClient(BackendGroq, "test-key", server.URL+"/v1", DefaultGroqModel)
	answer, err := client.Generate(context.Background(), "You answer superhero questions.", "What is Superman's real name?")
	require.NoError(t, err)
	assert.Equal(t, "Clark Kent.", answer)

	// Request shape: system+user messages, bounded tokens, low temperature.
	messages := gotReq["messages"].([]any)
	require.Len(t, messages, 2)
	assert.Equal(t, "system", messages[0].(map[string]any)["role"])
	assert.Equal(t, "user", messages[1].(map[string]any)["role"])
	assert.Equal(t, float64(MaxAnswerTokens), gotReq["max_tokens"])
	assert.InDelta(t, SamplingTemperature, gotReq["temperature"], 0.001)
}

func TestChatClientRequestError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": {"message": "invalid api key", "type": "invalid_request_error"}}`))
	}))
	defer server.Close()

	client := NewChatClient(BackendOpenAI, "bad-key", server.URL+"/v1", DefaultOpenAIModel)
	_, err := client.Generate(context.Background(), "system", "user")
	require.Error(t, err)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusUnauthorized, reqErr.StatusCode)
	assert.Contains(t, reqErr.Message, "invalid api key")
}

func TestChatClientUnavailable(t *testing.T) {
	// Nothing listens here; the dial fails before any HTTP exchange.
	client := NewChatClient(BackendOpenAI, "key", "http://127.0.0.1:1/v1", DefaultOpenAIModel)
	_, err := client.Generate(context.Background(), "system", "user")
	require.Error(t, err)
	assert.True(t, errors.Is(err, &UnavailableError{}), "error = %v, want UnavailableError", err)
}

func TestChatClientDescribe(t *testing.T) {
	client := NewChatClient(BackendGroq, "key", GroqBaseURL, DefaultGroqModel)
	desc := client.Describe()
	assert.Equal(t, "ready", desc.Status)
	assert.Equal(t, string(BackendGroq), desc.Backend)
	assert.Equal(t, DefaultGroqModel, desc.Model)
}
