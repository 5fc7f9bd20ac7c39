package nlp

import "github.com/soundprediction/herorag/pkg/config"

// Detect probes the configured backends in priority order (OpenAI, then
// Groq, then Ollama) and returns a client for the first one present.
// The choice is made once; the returned client is used for the process
// lifetime. When no backend is configured it returns ErrNoBackend,
// which callers treat as non-fatal by running without a model.
func Detect(cfg config.LLMConfig) (Client, error) {
	switch {
	case cfg.OpenAIAPIKey != "":
		return NewChatClient(BackendOpenAI, cfg.OpenAIAPIKey, "", modelOr(cfg.Model, DefaultOpenAIModel)), nil
	case cfg.GroqAPIKey != "":
		return NewChatClient(BackendGroq, cfg.GroqAPIKey, GroqBaseURL, modelOr(cfg.Model, DefaultGroqModel)), nil
	case cfg.OllamaBaseURL != "":
		return NewOllamaClient(cfg.OllamaBaseURL, modelOr(cfg.Model, DefaultOllamaModel)), nil
	default:
		return nil, ErrNoBackend
	}
}

func modelOr(model, fallback string) string {
	if model != "" {
		return model
	}
	return fallback
}
