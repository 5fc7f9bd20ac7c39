package nlp

import (
	"context"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
	"github.com/soundprediction/herorag/pkg/config"
)

// CircuitBreakerClient wraps a Client with circuit breaking so a dead
// backend stops eating its full timeout on every request. While the
// breaker is open, Generate fails fast and the answer generator's
// fallback path engages immediately.
type CircuitBreakerClient struct {
	client Client
	cb     *gobreaker.CircuitBreaker
}

// NewCircuitBreakerClient wraps client with the configured breaker.
func NewCircuitBreakerClient(client Client, cfg config.CircuitBreakerConfig, log *slog.Logger, name string) *CircuitBreakerClient {
	st := gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    time.Duration(cfg.Interval) * time.Second,
		Timeout:     time.Duration(cfg.Timeout) * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= cfg.ReadyToTripRatio
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warn("Circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	}

	return &CircuitBreakerClient{
		client: client,
		cb:     gobreaker.NewCircuitBreaker(st),
	}
}

// Generate implements Client.
func (c *CircuitBreakerClient) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	result, err := c.cb.Execute(func() (interface{}, error) {
		return c.client.Generate(ctx, systemPrompt, userPrompt)
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

// Describe implements Client.
func (c *CircuitBreakerClient) Describe() Description {
	return c.client.Describe()
}

// Close implements Client.
func (c *CircuitBreakerClient) Close() error {
	return c.client.Close()
}
