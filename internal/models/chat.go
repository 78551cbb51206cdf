package models

// Chat roles accepted in conversation history
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
	ChatRoleSystem    = "system"
)

// Answer sources reported to the chat widget
const (
	ChatSourceLocal    = "local"
	ChatSourceAI       = "ai"
	ChatSourceFallback = "fallback"
	ChatSourceError    = "error"
)

// ChatMessage is a single conversation turn
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatAnswer is the assistant reply together with where it came from
type ChatAnswer struct {
	Answer string `json:"answer"`
	Source string `json:"source"`
}

// FAQEntry is a canned answer triggered by any of its keywords
type FAQEntry struct {
	Keywords []string
	Answer   string
}

// CircuitBreakerState represents the state of a circuit breaker
type CircuitBreakerState int

func (s CircuitBreakerState) String() string {
	switch s {
	case 0:
		return "closed"
	case 1:
		return "open"
	case 2:
		return "half_open"
	default:
		return "unknown"
	}
}
