package dto

// ChatTurn is one history item as sent by the browser client.
type ChatTurn struct {
	Role    string `json:"role" example:"user"`
	Content string `json:"content" example:"What do you do for fun?"`
}

type ChatRequest struct {
	Message string     `json:"message" validate:"required" example:"What's your favorite color?"`
	History []ChatTurn `json:"history,omitempty" validate:"omitempty,dive"`
}

type ChatResponse struct {
	Response string `json:"response" example:"I like **Deep Space Blue** (#002642)."`
}

type ErrorResponse struct {
	Error string `json:"error" example:"quota_exceeded"`
}

type HealthResponse struct {
	Status          string `json:"status" example:"ok"`
	Entries         int    `json:"entries" example:"42"`
	ModelConfigured bool   `json:"model_configured"`
	StoreEnabled    bool   `json:"store_enabled"`
}
