package notify

import (
	"context"
	"log/slog"
)

// LogEmitter forwards events into a slog.Logger: error events at Error
// level, success events at Info, diagnostics at Debug.
type LogEmitter struct {
	log *slog.Logger
}

// NewLogEmitter wraps log into an Emitter. A nil logger falls back to
// slog.Default().
func NewLogEmitter(log *slog.Logger) *LogEmitter {
	if log == nil {
		log = slog.Default()
	}
	return &LogEmitter{log: log}
}

func (l *LogEmitter) Emit(ctx context.Context, event Event) {
	attrs := make([]any, 0, 4)
	attrs = append(attrs, slog.String("connection", event.Name))
	if event.Err != nil {
		attrs = append(attrs, slog.Any("error", event.Err))
	}
	for k, v := range event.Data {
		attrs = append(attrs, slog.Any(k, v))
	}

	switch event.Kind {
	case KindError:
		l.log.ErrorContext(ctx, event.Message, attrs...)
	case KindSuccess:
		l.log.InfoContext(ctx, event.Message, attrs...)
	default:
		l.log.DebugContext(ctx, event.Message, attrs...)
	}
}

// Multi fans a single Emit out to several emitters in order.
type Multi []Emitter

func (m Multi) Emit(ctx context.Context, event Event) {
	for _, e := range m {
		if e != nil {
			e.Emit(ctx, event)
		}
	}
}
