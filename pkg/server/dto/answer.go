// Package dto defines the request and response shapes of the HTTP API.
package dto

// AnswerRequest is the body of POST /api/v1/answer and /api/v1/search.
type AnswerRequest struct {
	Query string `json:"query" binding:"required"`
	// Mode selects the retrieval strategy: "traditional" (default) or "graph".
	Mode string `json:"mode"`
	// TopK bounds traditional retrieval; <= 0 uses the default.
	TopK int `json:"top_k"`
}

// ErrorResponse is the body of every error status.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// StatusResponse is the body of GET /health.
type StatusResponse struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
	Model   string `json:"model,omitempty"`
}
