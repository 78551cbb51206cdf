package dto

import "avoqado-web/internal/models"

// ChatMessage is one turn of history sent back by the chat widget
type ChatMessage struct {
	Role    string `json:"role" validate:"required,chat_role"`
	Content string `json:"content" validate:"max=4000"`
}

// ChatRequest contains a visitor question and the recent conversation
type ChatRequest struct {
	Message string        `json:"message" validate:"required"`
	History []ChatMessage `json:"history" validate:"max=20,dive"`
}

// ChatResponse is the assistant reply shape expected by the chat widget
type ChatResponse struct {
	Success bool   `json:"success"`
	Answer  string `json:"answer,omitempty"`
	Source  string `json:"source,omitempty"`
	Error   string `json:"error,omitempty"`
}

// HistoryModels converts request history to domain messages
func (r *ChatRequest) HistoryModels() []models.ChatMessage {
	history := make([]models.ChatMessage, len(r.History))
	for i, msg := range r.History {
		history[i] = models.ChatMessage{Role: msg.Role, Content: msg.Content}
	}
	return history
}
