// Package nlp provides the language-model backends used by the answer
// generator: an OpenAI-compatible chat-completion client (OpenAI, Groq)
// and an Ollama generate client, plus backend detection and a circuit
// breaker wrapper.
package nlp

import "context"

// Backend identifies a language-model backend kind.
type Backend string

const (
	// BackendOpenAI is the hosted OpenAI chat-completion API.
	BackendOpenAI Backend = "openai"
	// BackendGroq is the Groq OpenAI-compatible chat-completion API.
	BackendGroq Backend = "groq"
	// BackendOllama is a local Ollama generation server.
	BackendOllama Backend = "ollama"
)

// Default models per backend, used when the configuration does not name one.
const (
	DefaultOpenAIModel = "gpt-3.5-turbo"
	DefaultGroqModel   = "llama3-8b-8192"
	DefaultOllamaModel = "llama2"
)

// Sampling parameters shared by all backends. Low temperature keeps the
// demo's answers close to the retrieved context.
const (
	SamplingTemperature = 0.3
	SamplingTopP        = 0.9
	MaxAnswerTokens     = 300
)

// Client is the interface for language model operations.
type Client interface {
	// Generate sends the prompts to the backend and returns the trimmed
	// model text. Failures are typed: *RequestError for error statuses,
	// *UnavailableError for transport and timeout failures.
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)

	// Describe reports the backend kind and model for status displays.
	Describe() Description

	// Close cleans up any resources.
	Close() error
}

// Description reports backend status for the UI status panel.
type Description struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
	Model   string `json:"model"`
}

// NotConfigured is the description reported when no backend is available.
func NotConfigured() Description {
	return Description{Status: "not_configured", Backend: "none"}
}
