package connection

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/event"

	"github.com/dmitrymomot/mongokit/pkg/notify"
)

// commandMonitor forwards driver command diagnostics into the notification
// sink as log events.
func (m *Manager) commandMonitor() *event.CommandMonitor {
	return &event.CommandMonitor{
		Started: func(ctx context.Context, e *event.CommandStartedEvent) {
			m.emitter.Emit(ctx, notify.NewEvent(notify.KindLog, m.cfg.Name, "command started").
				WithData(map[string]any{"command": e.CommandName, "request_id": e.RequestID}))
		},
		Succeeded: func(ctx context.Context, e *event.CommandSucceededEvent) {
			m.emitter.Emit(ctx, notify.NewEvent(notify.KindLog, m.cfg.Name, "command succeeded").
				WithData(map[string]any{"command": e.CommandName, "request_id": e.RequestID}))
		},
		Failed: func(ctx context.Context, e *event.CommandFailedEvent) {
			m.emitter.Emit(ctx, notify.NewEvent(notify.KindLog, m.cfg.Name, "command failed").
				WithData(map[string]any{"command": e.CommandName, "request_id": e.RequestID}))
		},
	}
}

// poolMonitor forwards connection-pool state changes into the notification
// sink as log events.
func (m *Manager) poolMonitor() *event.PoolMonitor {
	return &event.PoolMonitor{
		Event: func(e *event.PoolEvent) {
			m.emitter.Emit(context.Background(), notify.NewEvent(notify.KindLog, m.cfg.Name, "pool event").
				WithData(map[string]any{"type": e.Type, "address": e.Address}))
		},
	}
}
