// Package notify is the notification channel for connection lifecycle
// events.
//
// A connection manager publishes three kinds of events through an Emitter:
// free-form diagnostics (KindLog), milestones such as a successfully
// established connection (KindSuccess), and failures with the error value
// attached (KindError). Every event carries the name of the manager that
// produced it, so several managers can share one sink.
//
// Three emitters ship with the package:
//
//   - Broadcaster fans events out to subscribers over buffered channels,
//     dropping events for slow consumers rather than blocking the
//     connection path.
//   - LogEmitter bridges events into a *slog.Logger.
//   - Nop discards everything.
//
// Multi combines emitters, e.g. logging every event while also streaming
// them to an operational dashboard:
//
//	hub := notify.NewBroadcaster(64)
//	sink := notify.Multi{notify.NewLogEmitter(log), hub}
//
//	sub := hub.Subscribe(ctx)
//	for event := range sub.Events() {
//	    // react to reconnects, surface errors, etc.
//	}
package notify
