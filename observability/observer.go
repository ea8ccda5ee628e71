// Package observability carries generation telemetry out of the growth
// engine without coupling it to a logging backend.
package observability

import (
	"context"
	"time"
)

// Observer receives events from the growth engine.
//
// Observers run synchronously inside Step; they must not call back into the
// generator that emitted the event.
type Observer interface {
	OnEvent(ctx context.Context, event Event)
}

// Event describes one observable occurrence during generation.
type Event struct {
	// Type categorizes the event (cell.visit, passage.carve, ...).
	Type EventType

	// Timestamp records when the event occurred.
	Timestamp time.Time

	// Source identifies the emitting component, e.g. "growtree.Generator".
	Source string

	// Data holds event metadata: run_id, step, coordinates, frontier size.
	Data map[string]any
}

// EventType categorizes observable events.
type EventType string

const (
	EventGenerationStart    EventType = "generation.start"
	EventGenerationComplete EventType = "generation.complete"
	EventCellVisit          EventType = "cell.visit"
	EventCellDeadEnd        EventType = "cell.dead_end"
	EventPassageCarve       EventType = "passage.carve"
)

// Lifecycle reports whether the event marks the start or end of a run as
// opposed to a per-cell event.
func (t EventType) Lifecycle() bool {
	return t == EventGenerationStart || t == EventGenerationComplete
}
