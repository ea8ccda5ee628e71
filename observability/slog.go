package observability

import (
	"context"
	"log/slog"
)

// SlogObserver writes events to a structured logger.
//
// Lifecycle events are logged at Info, per-cell events at Debug, so a default
// Info-level handler only reports run boundaries.
//
// Example:
//
//	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
//	gen, err := growtree.New(size, start, growtree.Random, growtree.WithObserver(observability.NewSlogObserver(logger)))
type SlogObserver struct {
	logger *slog.Logger
}

// NewSlogObserver creates a SlogObserver. A nil logger falls back to slog.Default().
func NewSlogObserver(logger *slog.Logger) *SlogObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogObserver{logger: logger}
}

// OnEvent logs the event with type, source and every data field as attributes.
func (o *SlogObserver) OnEvent(ctx context.Context, event Event) {
	level := slog.LevelDebug
	if event.Type.Lifecycle() {
		level = slog.LevelInfo
	}
	if !o.logger.Enabled(ctx, level) {
		return
	}

	attrs := make([]slog.Attr, 0, len(event.Data)+2)
	attrs = append(attrs,
		slog.String("type", string(event.Type)),
		slog.String("source", event.Source),
	)
	for k, v := range event.Data {
		attrs = append(attrs, slog.Any(k, v))
	}
	o.logger.LogAttrs(ctx, level, "Event", attrs...)
}
