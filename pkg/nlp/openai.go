package nlp

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// GroqBaseURL is the OpenAI-compatible endpoint of the Groq API.
const GroqBaseURL = "https://api.groq.com/openai/v1"

// chatTimeout bounds a single chat-completion call. There are no retries.
const chatTimeout = 30 * time.Second

// ChatClient implements Client against an OpenAI-compatible
// chat-completion API. It serves both the OpenAI and Groq backends;
// only the base URL and default model differ.
type ChatClient struct {
	client  *openai.Client
	backend Backend
	model   string
}

// NewChatClient creates a chat-completion client. An empty baseURL
// targets the hosted OpenAI API.
func NewChatClient(backend Backend, apiKey, baseURL, model string) *ChatClient {
	var client *openai.Client
	if baseURL != "" {
		clientConfig := openai.DefaultConfig(apiKey)
		clientConfig.BaseURL = baseURL
		client = openai.NewClientWithConfig(clientConfig)
	} else {
		client = openai.NewClient(apiKey)
	}

	return &ChatClient{
		client:  client,
		backend: backend,
		model:   model,
	}
}

// Generate sends a system/user message pair and returns the first
// choice's content, trimmed.
func (c *ChatClient) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, chatTimeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		MaxTokens:   MaxAnswerTokens,
		Temperature: SamplingTemperature,
		Stream:      false,
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", &RequestError{StatusCode: apiErr.HTTPStatusCode, Message: apiErr.Message}
		}
		var reqErr *openai.RequestError
		if errors.As(err, &reqErr) {
			return "", &RequestError{StatusCode: reqErr.HTTPStatusCode, Message: reqErr.Error()}
		}
		return "", &UnavailableError{Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", &RequestError{StatusCode: 200, Message: "no choices returned"}
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Describe implements Client.
func (c *ChatClient) Describe() Description {
	return Description{
		Status:  "ready",
		Backend: string(c.backend),
		Model:   c.model,
	}
}

// Close implements Client.
func (c *ChatClient) Close() error {
	return nil
}
