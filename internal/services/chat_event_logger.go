package services

import (
	"context"
	"log/slog"
	"time"
)

type traceIDKey struct{}

// WithTraceID stores the request trace ID so service logs can be correlated with the access log
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext returns the trace ID stored by WithTraceID, or ""
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	traceID, _ := ctx.Value(traceIDKey{}).(string)
	return traceID
}

// ChatEventLogger writes one structured event per assistant decision that leaves the local knowledge base
type ChatEventLogger struct {
	logger *slog.Logger
}

func NewChatEventLogger(logger *slog.Logger) *ChatEventLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChatEventLogger{logger: logger}
}

func (l *ChatEventLogger) LogProviderMissing(ctx context.Context) {
	l.logger.WarnContext(ctx, "chat fell through to AI but no provider key is configured",
		slog.String("event_type", "ai_provider_missing"),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (l *ChatEventLogger) LogBreakerRejected(ctx context.Context, provider string) {
	l.logger.WarnContext(ctx, "AI provider circuit breaker is open",
		slog.String("event_type", "ai_breaker_rejected"),
		slog.String("provider", provider),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (l *ChatEventLogger) LogCompletion(ctx context.Context, provider string, turns int, duration time.Duration) {
	l.logger.InfoContext(ctx, "AI completion succeeded",
		slog.String("event_type", "ai_completion_succeeded"),
		slog.String("provider", provider),
		slog.Int("turns", turns),
		slog.Int64("duration_ms", duration.Milliseconds()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (l *ChatEventLogger) LogCompletionFailed(ctx context.Context, provider string, err error, duration time.Duration) {
	l.logger.ErrorContext(ctx, "AI completion failed",
		slog.String("event_type", "ai_completion_failed"),
		slog.String("provider", provider),
		slog.String("error", err.Error()),
		slog.Int64("duration_ms", duration.Milliseconds()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}
