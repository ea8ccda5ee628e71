package observability

import "context"

// NoOpObserver discards all events. It is the generator's default.
type NoOpObserver struct{}

// OnEvent does nothing.
func (NoOpObserver) OnEvent(context.Context, Event) {}
