package mongokit

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/mongokit/pkg/connection"
	"github.com/dmitrymomot/mongokit/pkg/objectid"
	"github.com/dmitrymomot/mongokit/pkg/topology"
)

// New constructs a connection manager for the given topology descriptor.
// The descriptor selects the server-list provider and, for replica sets,
// patches the replica-set name into the connection options. The connection
// is not established; call Connect on the returned manager.
func New(cfg connection.Config, topo topology.Topology, opts ...connection.Option) (*connection.Manager, error) {
	if err := topo.Validate(); err != nil {
		return nil, err
	}
	if topo.Mode() == topology.ModeReplicaSet {
		cfg.ReplicaSet = topo.ReplicaSetName()
	}
	return connection.New(cfg, topo.Provider(), opts...)
}

// NewSingle constructs a manager for a standalone server.
func NewSingle(cfg connection.Config, host string, port int, opts ...connection.Option) (*connection.Manager, error) {
	return New(cfg, topology.Single(host, port), opts...)
}

// NewReplicaSet constructs a manager for a fixed replica set.
func NewReplicaSet(cfg connection.Config, name string, members []topology.Host, opts ...connection.Option) (*connection.Manager, error) {
	return New(cfg, topology.ReplicaSet(name, members...), opts...)
}

// NewSharded constructs a manager for a sharded cluster whose mongos
// routers come from supplier.
func NewSharded(cfg connection.Config, supplier topology.SupplierFunc, opts ...connection.Option) (*connection.Manager, error) {
	return New(cfg, topology.Sharded(supplier), opts...)
}

// IsValidObjectID reports whether s is a well-formed ObjectID hex string.
func IsValidObjectID(s string) bool {
	return objectid.IsValid(s)
}

// CastObjectID converts a validated hex string into the driver's native
// ObjectID type, failing with a typed error for malformed input.
func CastObjectID(s string) (bson.ObjectID, error) {
	return objectid.Cast(s)
}
