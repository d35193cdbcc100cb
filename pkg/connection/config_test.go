package connection_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mongokit/pkg/connection"
)

func TestConfigValidateDefaults(t *testing.T) {
	t.Parallel()

	cfg := connection.Config{Database: "app"}
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "default", cfg.Name)
	assert.Equal(t, 27017, cfg.Port)
	assert.Equal(t, 10*time.Second, cfg.ConnectTimeout)
	assert.Equal(t, 30*time.Second, cfg.OperationTimeout)
	assert.Equal(t, 5*time.Second, cfg.ServerSelectionTimeout)
	assert.Equal(t, uint64(100), cfg.MaxPoolSize)
	assert.Equal(t, uint64(1), cfg.MinPoolSize)
	assert.Equal(t, 300*time.Second, cfg.MaxConnIdleTime)
	assert.Equal(t, 10, cfg.MaxAttempts)
	assert.Equal(t, 2*time.Second, cfg.RetryInterval)
}

func TestConfigValidateMissingDatabase(t *testing.T) {
	t.Parallel()

	cfg := connection.Config{}
	assert.ErrorIs(t, cfg.Validate(), connection.ErrMissingDatabase)
}

func TestConfigValidateKeepsExplicitValues(t *testing.T) {
	t.Parallel()

	cfg := connection.Config{
		Database:      "app",
		Name:          "analytics",
		MaxAttempts:   4,
		RetryInterval: 500 * time.Millisecond,
	}
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "analytics", cfg.Name)
	assert.Equal(t, 4, cfg.MaxAttempts)
	assert.Equal(t, 500*time.Millisecond, cfg.RetryInterval)
}

func TestBackoffSchedule(t *testing.T) {
	t.Parallel()

	// Linear schedule: k*interval after the k-th failed attempt.
	for k := 1; k <= 9; k++ {
		assert.Equal(t, time.Duration(k)*2*time.Second, connection.Backoff(k, 2*time.Second))
	}
	assert.Equal(t, time.Duration(0), connection.Backoff(0, 2*time.Second))
	assert.Equal(t, time.Duration(0), connection.Backoff(-1, 2*time.Second))
}
