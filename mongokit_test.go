package mongokit_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mongokit"
	"github.com/dmitrymomot/mongokit/pkg/connection"
	"github.com/dmitrymomot/mongokit/pkg/topology"
)

func TestNewSingle(t *testing.T) {
	t.Parallel()

	m, err := mongokit.NewSingle(connection.Config{Database: "app"}, "localhost", 27017)
	require.NoError(t, err)
	assert.Equal(t, topology.ModeSingle, m.Mode())
	assert.Equal(t, connection.StateDisconnected, m.State())
}

func TestNewReplicaSet(t *testing.T) {
	t.Parallel()

	members := []topology.Host{
		{Name: "h1", Port: 27017},
		{Name: "h2", Port: 27018},
	}
	m, err := mongokit.NewReplicaSet(connection.Config{Database: "app"}, "rs0", members)
	require.NoError(t, err)
	assert.Equal(t, topology.ModeReplicaSet, m.Mode())
}

func TestNewReplicaSetRequiresName(t *testing.T) {
	t.Parallel()

	_, err := mongokit.NewReplicaSet(connection.Config{Database: "app"}, "", []topology.Host{{Name: "h", Port: 27017}})
	assert.ErrorIs(t, err, topology.ErrInvalidTopology)
}

func TestNewSharded(t *testing.T) {
	t.Parallel()

	supplier := func(context.Context) ([]topology.Host, error) {
		return []topology.Host{{Name: "mongos-1", Port: 27017}}, nil
	}
	m, err := mongokit.NewSharded(connection.Config{Database: "app"}, supplier)
	require.NoError(t, err)
	assert.Equal(t, topology.ModeSharded, m.Mode())
}

func TestDetectReplicaSet(t *testing.T) {
	t.Parallel()

	cfg := connection.Config{
		Database:   "app",
		ReplicaSet: "rs0",
		Members:    []string{"h1:27017", "h2:27018"},
	}
	topo, err := mongokit.Detect(cfg)
	require.NoError(t, err)
	assert.Equal(t, topology.ModeReplicaSet, topo.Mode())
	assert.Equal(t, "rs0", topo.ReplicaSetName())
	require.Len(t, topo.Hosts(), 2)
}

func TestDetectSingle(t *testing.T) {
	t.Parallel()

	topo, err := mongokit.Detect(connection.Config{Database: "app", Host: "localhost"})
	require.NoError(t, err)
	assert.Equal(t, topology.ModeSingle, topo.Mode())

	hosts := topo.Hosts()
	require.Len(t, hosts, 1)
	assert.Equal(t, "localhost:27017", hosts[0].Address())
}

func TestDetectAmbiguous(t *testing.T) {
	t.Parallel()

	_, err := mongokit.Detect(connection.Config{Database: "app"})
	assert.ErrorIs(t, err, mongokit.ErrAmbiguousTopology)
}

func TestDetectBadMembers(t *testing.T) {
	t.Parallel()

	cfg := connection.Config{Database: "app", ReplicaSet: "rs0", Members: []string{"broken"}}
	_, err := mongokit.Detect(cfg)
	assert.ErrorIs(t, err, topology.ErrInvalidHost)
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("MONGODB_DATABASE", "app")
	t.Setenv("MONGODB_HOST", "db.internal")
	t.Setenv("MONGODB_PORT", "27020")

	m, err := mongokit.NewFromEnv()
	require.NoError(t, err)
	assert.Equal(t, topology.ModeSingle, m.Mode())
}

func TestObjectIDHelpers(t *testing.T) {
	t.Parallel()

	assert.True(t, mongokit.IsValidObjectID("507f1f77bcf86cd799439011"))
	assert.False(t, mongokit.IsValidObjectID("not-an-id"))

	id, err := mongokit.CastObjectID("507f1f77bcf86cd799439011")
	require.NoError(t, err)
	assert.Equal(t, "507f1f77bcf86cd799439011", id.Hex())

	_, err = mongokit.CastObjectID("not-an-id")
	assert.Error(t, err)
}
