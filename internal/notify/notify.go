// Package notify delivers post-commit domain events to out-of-process
// collaborators (email, push, webhooks). Delivery is fire-and-forget: a
// failing or slow handler never affects the operation that raised the event.
package notify

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/vidafit-backend/internal/domain"
)

// Sink accepts events after the originating transaction has committed.
type Sink interface {
	Publish(ctx context.Context, ev domain.Event)
}

// Handler delivers a single event.
type Handler interface {
	Handle(ctx context.Context, ev domain.Event) error
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, ev domain.Event) error

// Handle calls f(ctx, ev).
func (f HandlerFunc) Handle(ctx context.Context, ev domain.Event) error {
	return f(ctx, ev)
}

// LogHandler writes every event to the logger. It is the default delivery
// target until a real notification channel is plugged in.
type LogHandler struct {
	log *slog.Logger
}

// NewLogHandler creates a LogHandler.
func NewLogHandler(log *slog.Logger) *LogHandler {
	return &LogHandler{log: log.With("component", "event_log")}
}

// Handle implements Handler.
func (h *LogHandler) Handle(ctx context.Context, ev domain.Event) error {
	attrs := []any{
		slog.String("type", ev.Type.String()),
		slog.String("entity_id", ev.EntityID.String()),
		slog.String("user_id", ev.UserID.String()),
		slog.Time("occurred_at", ev.OccurredAt),
	}
	for k, v := range ev.Attributes {
		attrs = append(attrs, slog.String(k, v))
	}
	h.log.InfoContext(ctx, "event published", attrs...)
	return nil
}

// Discard is a Sink that drops every event.
type Discard struct{}

// Publish implements Sink.
func (Discard) Publish(context.Context, domain.Event) {}
