package notify

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Kind classifies a connection lifecycle event.
type Kind string

const (
	// KindLog carries free-form diagnostics.
	KindLog Kind = "log"
	// KindSuccess marks a lifecycle milestone such as an established connection.
	KindSuccess Kind = "success"
	// KindError carries a failure with the error attached.
	KindError Kind = "error"
)

// Event is a single notification published by a connection manager.
// Name identifies the manager that produced it.
type Event struct {
	ID        string
	Kind      Kind
	Name      string
	Message   string
	Err       error
	Data      map[string]any
	Timestamp time.Time
}

// NewEvent builds an Event with a fresh ID and timestamp.
func NewEvent(kind Kind, name, message string) Event {
	return Event{
		ID:        uuid.New().String(),
		Kind:      kind,
		Name:      name,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithErr attaches an error to the event.
func (e Event) WithErr(err error) Event {
	e.Err = err
	return e
}

// WithData attaches structured data to the event.
func (e Event) WithData(data map[string]any) Event {
	e.Data = data
	return e
}

// Emitter receives lifecycle events. Implementations must be safe for
// concurrent use and must not block the caller for long; event emission sits
// on the connection hot path.
type Emitter interface {
	Emit(ctx context.Context, event Event)
}

// Nop discards every event.
type Nop struct{}

func (Nop) Emit(context.Context, Event) {}
