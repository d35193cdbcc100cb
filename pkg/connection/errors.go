package connection

import (
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

var (
	// ErrMissingDatabase is returned for configurations without a database name.
	ErrMissingDatabase = errors.New("connection: database name is required")

	// ErrNilProvider is returned when a manager is constructed without a server-list provider.
	ErrNilProvider = errors.New("connection: server-list provider is required")

	// ErrNoServers marks an attempt that had no hosts to target: the
	// provider returned an empty list and no healthy hosts were cached.
	ErrNoServers = errors.New("connection: no servers available")

	// ErrServerList marks a failure of the server-list provider itself.
	ErrServerList = errors.New("connection: server list lookup failed")

	// ErrConnect wraps a non-retryable connection failure.
	ErrConnect = errors.New("connection: connect failed")

	// ErrAttemptsExhausted is returned when every attempt failed with a
	// retryable error and the attempt budget ran out.
	ErrAttemptsExhausted = errors.New("connection: attempts exhausted")

	// ErrNotConnected is returned by operations that need an active client
	// before Connect has succeeded.
	ErrNotConnected = errors.New("connection: not connected")

	// ErrHealthcheckFailed wraps a failed ping probe.
	ErrHealthcheckFailed = errors.New("connection: healthcheck failed")
)

// IsRetryable reports whether err is a transient connection-class failure
// eligible for backoff-and-retry: a missing or failed server list, a driver
// timeout (including server-selection timeouts), a network error, or a
// server error the deployment labeled as network-related. Everything else
// is treated as permanent.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrNoServers) || errors.Is(err, ErrServerList) {
		return true
	}
	if mongo.IsTimeout(err) || mongo.IsNetworkError(err) {
		return true
	}
	var serverErr mongo.ServerError
	if errors.As(err, &serverErr) {
		return serverErr.HasErrorLabel("NetworkError") || serverErr.HasErrorLabel("RetryableWriteError")
	}
	return false
}
