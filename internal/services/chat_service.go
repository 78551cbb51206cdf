package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"avoqado-web/internal/config"
	"avoqado-web/internal/models"
)

var ErrEmptyMessage = errors.New("message is required")

type faqEntry struct {
	models.FAQEntry
	mentionsBusinessType bool
}

type chatService struct {
	rateService   RateServiceInterface
	aiClient      AIClientInterface
	breaker       CircuitBreakerInterface
	metrics       MetricsRecorderInterface
	events        *ChatEventLogger
	faq           []faqEntry
	systemPrompt  string
	historyWindow int
	pricingWindow int
}

// NewChatService creates the assistant. aiClient may be nil when no provider key is configured;
// breaker and metrics may be nil.
func NewChatService(
	rateService RateServiceInterface,
	aiClient AIClientInterface,
	breaker CircuitBreakerInterface,
	metrics MetricsRecorderInterface,
	cfg config.ChatConfig,
) ChatServiceInterface {
	entries := initFAQEntries()
	faq := make([]faqEntry, len(entries))
	for i, entry := range entries {
		faq[i] = faqEntry{FAQEntry: entry, mentionsBusinessType: mentionsBusinessType(entry.Keywords)}
	}

	return &chatService{
		rateService:   rateService,
		aiClient:      aiClient,
		breaker:       breaker,
		metrics:       metrics,
		events:        NewChatEventLogger(nil),
		faq:           faq,
		systemPrompt:  buildAssistantContext(rateService),
		historyWindow: cfg.HistoryWindow,
		pricingWindow: cfg.PricingContextWindow,
	}
}

// Answer replies to a visitor message. Pricing follow-ups are answered from the rate catalog,
// then the FAQ table is tried, and only then the AI provider.
func (s *chatService) Answer(ctx context.Context, message string, history []models.ChatMessage) (*models.ChatAnswer, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	inPricingContext := s.isPricingContext(history)

	if inPricingContext {
		if answer, ok := s.pricingAnswer(message); ok {
			return s.reply(answer, models.ChatSourceLocal), nil
		}
	}

	if answer, ok := s.matchFAQ(message, inPricingContext); ok {
		return s.reply(answer, models.ChatSourceLocal), nil
	}

	return s.askAI(ctx, message, history), nil
}

func (s *chatService) isPricingContext(history []models.ChatMessage) bool {
	for _, msg := range tail(history, s.pricingWindow) {
		content := strings.ToLower(msg.Content)
		for _, trigger := range pricingTriggers {
			if strings.Contains(content, trigger) {
				return true
			}
		}
	}
	return false
}

func (s *chatService) pricingAnswer(message string) (string, bool) {
	result := s.rateService.Resolve(message)
	if !result.Found || result.Rates == nil {
		return "", false
	}

	return fmt.Sprintf(pricingAnswerTmpl,
		message,
		result.Rates.Debito.StringFixed(2),
		result.Rates.Credito.StringFixed(2),
		result.Rates.Amex.StringFixed(2),
	), true
}

func (s *chatService) matchFAQ(message string, skipBusinessTypes bool) (string, bool) {
	query := strings.ToLower(message)

	for _, entry := range s.faq {
		if skipBusinessTypes && entry.mentionsBusinessType {
			continue
		}
		for _, keyword := range entry.Keywords {
			if strings.Contains(query, keyword) || strings.Contains(keyword, query) {
				return entry.Answer, true
			}
		}
	}

	return "", false
}

func (s *chatService) askAI(ctx context.Context, message string, history []models.ChatMessage) *models.ChatAnswer {
	if s.aiClient == nil {
		s.events.LogProviderMissing(ctx)
		return s.reply(fallbackAnswer, models.ChatSourceFallback)
	}

	if s.breaker != nil && s.breaker.IsOpen() {
		s.events.LogBreakerRejected(ctx, s.aiClient.Provider())
		return s.reply(errorAnswer, models.ChatSourceError)
	}

	start := time.Now()
	turns := s.conversation(message, history)
	answer, err := s.aiClient.Complete(ctx, s.systemPrompt, turns)
	duration := time.Since(start)

	if err != nil {
		if s.breaker != nil {
			s.breaker.RecordFailure()
		}
		s.recordDuration("ai_completion_failed", duration)
		s.events.LogCompletionFailed(ctx, s.aiClient.Provider(), err, duration)
		return s.reply(errorAnswer, models.ChatSourceError)
	}

	if s.breaker != nil {
		s.breaker.RecordSuccess()
	}
	s.recordDuration("ai_completion_success", duration)
	s.events.LogCompletion(ctx, s.aiClient.Provider(), len(turns), duration)

	if answer == "" {
		answer = emptyAnswer
	}
	return s.reply(answer, models.ChatSourceAI)
}

// conversation returns the last turns of history followed by the current message.
// Clients that already appended the message to history do not get it twice.
func (s *chatService) conversation(message string, history []models.ChatMessage) []models.ChatMessage {
	if n := len(history); n > 0 {
		last := history[n-1]
		if last.Role == models.ChatRoleUser && strings.TrimSpace(last.Content) == message {
			history = history[:n-1]
		}
	}

	turns := make([]models.ChatMessage, 0, s.historyWindow+1)
	for _, msg := range tail(history, s.historyWindow) {
		if msg.Role != models.ChatRoleUser && msg.Role != models.ChatRoleAssistant {
			continue
		}
		turns = append(turns, msg)
	}

	return append(turns, models.ChatMessage{Role: models.ChatRoleUser, Content: message})
}

func (s *chatService) reply(answer, source string) *models.ChatAnswer {
	if s.metrics != nil {
		s.metrics.IncrementCounter("chat_answer", map[string]string{"source": source})
	}
	return &models.ChatAnswer{Answer: answer, Source: source}
}

func (s *chatService) recordDuration(name string, duration time.Duration) {
	if s.metrics != nil {
		s.metrics.RecordProcessingTime(name, duration)
	}
}

func mentionsBusinessType(keywords []string) bool {
	for _, businessKeyword := range businessTypeKeywords {
		for _, keyword := range keywords {
			if strings.Contains(keyword, businessKeyword) {
				return true
			}
		}
	}
	return false
}

// buildAssistantContext renders the system prompt with rates read from the shared catalog
func buildAssistantContext(rateService RateServiceInterface) string {
	lines := make([]string, 0, len(initPromptSectors()))
	for _, sector := range initPromptSectors() {
		category, exists := rateService.Category(sector.familia)
		if !exists {
			continue
		}
		rates := ApplyMargin(category.Base)
		lines = append(lines, fmt.Sprintf("- %s: Crédito %s%%, Débito %s%%",
			sector.label, rates.Credito.StringFixed(2), rates.Debito.StringFixed(2)))
	}
	return fmt.Sprintf(assistantContext, strings.Join(lines, "\n"))
}

func tail(history []models.ChatMessage, n int) []models.ChatMessage {
	if n <= 0 {
		return nil
	}
	if len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}
