package connection

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/dmitrymomot/mongokit/pkg/notify"
)

// DialFunc opens a client handle against the assembled target URI.
// The default implementation dials through the driver and performs a ping
// handshake; tests and custom transports may substitute their own.
type DialFunc func(ctx context.Context, uri string, opts *options.ClientOptions) (*mongo.Client, error)

// Option configures a Manager at construction.
type Option func(*Manager)

// WithLogger attaches a structured logger. Without it the manager stays
// silent; events still flow through the notification sink.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log.With(slog.String("connection", m.cfg.Name))
		}
	}
}

// WithEmitter attaches the notification sink receiving log, success and
// error events.
func WithEmitter(emitter notify.Emitter) Option {
	return func(m *Manager) {
		if emitter != nil {
			m.emitter = emitter
		}
	}
}

// WithDialFunc replaces the dialer used for connection attempts.
func WithDialFunc(dial DialFunc) Option {
	return func(m *Manager) {
		if dial != nil {
			m.dial = dial
		}
	}
}

// clientOptions builds the fixed option record for one attempt. The
// replica-set name and auth source patches depend on configuration; command
// and pool monitors are attached here because the driver only accepts them
// before connecting.
func (m *Manager) clientOptions(uri string) *options.ClientOptions {
	opts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(m.cfg.ConnectTimeout).
		SetTimeout(m.cfg.OperationTimeout).
		SetServerSelectionTimeout(m.cfg.ServerSelectionTimeout).
		SetMaxPoolSize(m.cfg.MaxPoolSize).
		SetMinPoolSize(m.cfg.MinPoolSize).
		SetMaxConnIdleTime(m.cfg.MaxConnIdleTime).
		SetRetryWrites(m.cfg.RetryWrites).
		SetRetryReads(m.cfg.RetryReads).
		SetReadPreference(readpref.SecondaryPreferred())

	if m.cfg.ReplicaSet != "" {
		opts.SetReplicaSet(m.cfg.ReplicaSet)
	}
	if m.cfg.Username != "" && m.cfg.AuthSource != "" {
		opts.SetAuth(options.Credential{
			AuthSource: m.cfg.AuthSource,
			Username:   m.cfg.Username,
			Password:   m.cfg.Password,
		})
	}
	if m.cfg.Monitor {
		opts.SetMonitor(m.commandMonitor())
		opts.SetPoolMonitor(m.poolMonitor())
	}

	return opts
}
