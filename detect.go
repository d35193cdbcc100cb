package mongokit

import (
	"errors"

	"github.com/dmitrymomot/mongokit/pkg/config"
	"github.com/dmitrymomot/mongokit/pkg/connection"
	"github.com/dmitrymomot/mongokit/pkg/topology"
)

// ErrAmbiguousTopology is returned when the configuration shape matches no
// topology: neither a replica-set member list nor a standalone host is set.
var ErrAmbiguousTopology = errors.New("mongokit: cannot infer topology from config")

// Detect infers the topology descriptor from the configuration shape:
// a replica-set name with a member list yields a replica set, a host
// yields a standalone server. A sharded topology can never be inferred;
// it needs the router supplier function, so use NewSharded explicitly.
func Detect(cfg connection.Config) (topology.Topology, error) {
	switch {
	case cfg.ReplicaSet != "" && len(cfg.Members) > 0:
		members, err := topology.ParseHosts(cfg.Members)
		if err != nil {
			return topology.Topology{}, err
		}
		return topology.ReplicaSet(cfg.ReplicaSet, members...), nil
	case cfg.Host != "":
		port := cfg.Port
		if port == 0 {
			port = 27017
		}
		return topology.Single(cfg.Host, port), nil
	default:
		return topology.Topology{}, ErrAmbiguousTopology
	}
}

// NewFromEnv loads the connection configuration from the environment,
// infers the topology from its shape and constructs a manager.
func NewFromEnv(opts ...connection.Option) (*connection.Manager, error) {
	var cfg connection.Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	topo, err := Detect(cfg)
	if err != nil {
		return nil, err
	}
	return New(cfg, topo, opts...)
}
