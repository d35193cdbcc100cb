package connection

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/dmitrymomot/mongokit/pkg/async"
	"github.com/dmitrymomot/mongokit/pkg/notify"
	"github.com/dmitrymomot/mongokit/pkg/topology"
)

// State is the manager's position in the connection lifecycle.
type State int32

const (
	// StateDisconnected is the initial state, before the first successful Connect.
	StateDisconnected State = iota
	// StateConnecting means a Connect retry loop is active.
	StateConnecting
	// StateConnected means an active client handle is installed and usable.
	StateConnected
	// StateRecovering overlays Connected while HandleTransientError drives a reconnect.
	StateRecovering
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateRecovering:
		return "recovering"
	default:
		return "disconnected"
	}
}

// Manager owns the lifecycle of one logical connection to a MongoDB
// deployment: it assembles the target address from a server-list provider,
// establishes the client with bounded retries and linear backoff, swaps in
// the new handle only after the handshake succeeds, and deduplicates
// recovery when callers report transient errors.
//
// A Manager is created once per logical named connection and lives for the
// process lifetime. All methods are safe for concurrent use, with one
// documented exception: two overlapping top-level Connect calls race each
// other and the later winner's handle sticks. Serialize initial Connect
// calls, and route error-driven reconnects through HandleTransientError,
// which deduplicates internally.
type Manager struct {
	cfg      Config
	provider topology.Provider
	log      *slog.Logger
	emitter  notify.Emitter
	dial     DialFunc

	mu       sync.Mutex
	client   *mongo.Client
	db       *mongo.Database
	healthy  []topology.Host
	recovery *async.Future[struct{}]

	state atomic.Int32
}

// New constructs a Manager over the given server-list provider. The
// connection is not established; call Connect.
func New(cfg Config, provider topology.Provider, opts ...Option) (*Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, ErrNilProvider
	}

	m := &Manager{
		cfg:      cfg,
		provider: provider,
		log:      slog.New(slog.DiscardHandler),
		emitter:  notify.Nop{},
	}
	m.dial = m.defaultDial

	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// Connect establishes (or re-establishes) the connection.
//
// Each attempt builds a fresh target URI from the provider (falling back to
// the healthy-host cache when the provider reports no servers), dials, and
// performs the driver's ping handshake. Retryable failures are reported to
// the notification sink and retried after a backoff of attempt*RetryInterval;
// a non-retryable failure aborts immediately. When every attempt fails
// retryably, Connect returns ErrAttemptsExhausted joined with the last
// error and leaves any previous handle in place.
//
// On success the new client and its derived database handle are installed
// before the success event is emitted, and the superseded client (if any)
// is closed as a detached background task; its close may hang on an
// unreachable peer and is deliberately not part of Connect's contract.
func (m *Manager) Connect(ctx context.Context) error {
	m.mu.Lock()
	prev := m.client
	m.mu.Unlock()

	if State(m.state.Load()) != StateRecovering {
		m.state.Store(int32(StateConnecting))
	}

	var (
		client  *mongo.Client
		lastErr error
	)

	for attempt := 1; attempt <= m.cfg.MaxAttempts; attempt++ {
		c, err := m.attempt(ctx)
		if err == nil {
			client = c
			break
		}

		if !IsRetryable(err) {
			m.restoreState(prev)
			m.emitter.Emit(ctx, notify.NewEvent(notify.KindError, m.cfg.Name, "connect failed").
				WithErr(err).WithData(map[string]any{"attempt": attempt}))
			m.log.Error("connect failed", slog.Any("error", err), slog.Int("attempt", attempt))
			return errors.Join(ErrConnect, err)
		}

		lastErr = err
		m.emitter.Emit(ctx, notify.NewEvent(notify.KindError, m.cfg.Name, "connection attempt failed").
			WithErr(err).WithData(map[string]any{"attempt": attempt, "max_attempts": m.cfg.MaxAttempts}))
		m.log.Warn("connection attempt failed",
			slog.Any("error", err),
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", m.cfg.MaxAttempts))

		if attempt < m.cfg.MaxAttempts {
			if err := m.sleep(ctx, Backoff(attempt, m.cfg.RetryInterval)); err != nil {
				m.restoreState(prev)
				return errors.Join(ErrConnect, err)
			}
		}
	}

	if client == nil {
		m.restoreState(prev)
		return errors.Join(ErrAttemptsExhausted, lastErr)
	}

	m.mu.Lock()
	m.client = client
	m.db = client.Database(m.cfg.Database)
	m.mu.Unlock()
	m.state.Store(int32(StateConnected))

	m.emitter.Emit(ctx, notify.NewEvent(notify.KindSuccess, m.cfg.Name, "connected").
		WithData(map[string]any{"mode": string(m.provider.Mode())}))
	m.log.Info("connected", slog.String("mode", string(m.provider.Mode())))

	if prev != nil {
		// The old handle may belong to a now-unreachable topology member;
		// an awaited close could hang indefinitely.
		async.Detach(func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = prev.Disconnect(closeCtx)
		})
	}

	return nil
}

// attempt performs one connection attempt: target assembly, dial, handshake.
func (m *Manager) attempt(ctx context.Context) (*mongo.Client, error) {
	hosts, err := m.provider.Servers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrServerList, err)
	}

	m.mu.Lock()
	if len(hosts) == 0 {
		hosts = append([]topology.Host(nil), m.healthy...)
	} else {
		m.healthy = append([]topology.Host(nil), hosts...)
	}
	m.mu.Unlock()

	if len(hosts) == 0 {
		return nil, ErrNoServers
	}

	uri := buildURI(m.cfg, hosts)
	return m.dial(ctx, uri, m.clientOptions(uri))
}

// defaultDial opens a client and drives a real round trip so a dead target
// fails here rather than on first use.
func (m *Manager) defaultDial(ctx context.Context, uri string, opts *options.ClientOptions) (*mongo.Client, error) {
	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, m.cfg.ConnectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.SecondaryPreferred()); err != nil {
		async.Detach(func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = client.Disconnect(closeCtx)
		})
		return nil, err
	}

	return client, nil
}

// HandleTransientError is the recovery entry point for errors surfaced by
// the caller's own use of the database handle.
//
// Non-retryable errors are returned unchanged so the caller can decide
// whether they are fatal. A retryable error starts a reconnect, or joins
// the one already in flight: at most one recovery runs per manager, and
// every concurrent reporter awaits the same outcome. A nil return means the
// error was handled and the caller should retry its operation.
func (m *Manager) HandleTransientError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if !IsRetryable(err) {
		return err
	}

	m.mu.Lock()
	f := m.recovery
	if f != nil {
		// A finished recovery is stale even if its watcher has not cleared
		// the marker yet; a fresh report must start a fresh reconnect.
		select {
		case <-f.Done():
			f = nil
		default:
		}
	}
	if f == nil {
		// Install the marker in the same critical section that observed it
		// absent; a suspension point between the check and the set would
		// let two reporters race into two reconnects.
		m.state.Store(int32(StateRecovering))

		// Recovery outlives the reporting caller's request context.
		recoveryCtx := context.WithoutCancel(ctx)
		f = async.Go(recoveryCtx, func(ctx context.Context) (struct{}, error) {
			return struct{}{}, m.Connect(ctx)
		})
		m.recovery = f

		async.Detach(func() {
			<-f.Done()
			m.mu.Lock()
			if m.recovery == f {
				m.recovery = nil
			}
			m.mu.Unlock()
		})

		m.log.Info("recovery started", slog.Any("cause", err))
	}
	m.mu.Unlock()

	_, connectErr := f.Await(ctx)
	return connectErr
}

// Client returns the active raw client handle, nil before the first
// successful Connect.
func (m *Manager) Client() *mongo.Client {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.client
}

// Database returns the derived database handle, nil before the first
// successful Connect.
func (m *Manager) Database() *mongo.Database {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.db
}

// HealthyHosts returns the most recent non-empty host list used to build a
// target, empty if none has been recorded yet.
func (m *Manager) HealthyHosts() []topology.Host {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]topology.Host(nil), m.healthy...)
}

// Name returns the configured connection identity.
func (m *Manager) Name() string {
	return m.cfg.Name
}

// Mode returns the topology mode the manager serves.
func (m *Manager) Mode() topology.Mode {
	return m.provider.Mode()
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	return State(m.state.Load())
}

// Healthcheck returns a probe suitable for readiness/liveness endpoints: it
// pings through the active client without touching any data.
func (m *Manager) Healthcheck() func(context.Context) error {
	return func(ctx context.Context) error {
		client := m.Client()
		if client == nil {
			return ErrNotConnected
		}
		if err := client.Ping(ctx, nil); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}

// Close disconnects the active client. The manager returns to
// StateDisconnected and may be reconnected with Connect.
func (m *Manager) Close(ctx context.Context) error {
	m.mu.Lock()
	client := m.client
	m.client = nil
	m.db = nil
	m.mu.Unlock()

	m.state.Store(int32(StateDisconnected))

	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}

func (m *Manager) sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// restoreState returns the lifecycle state to what the presence of a
// previous handle implies after a failed Connect.
func (m *Manager) restoreState(prev *mongo.Client) {
	if prev != nil {
		m.state.Store(int32(StateConnected))
	} else {
		m.state.Store(int32(StateDisconnected))
	}
}
