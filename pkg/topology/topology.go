package topology

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// Mode identifies the deployment shape of the backing MongoDB cluster.
type Mode string

const (
	// ModeSingle is a standalone mongod instance.
	ModeSingle Mode = "single"
	// ModeReplicaSet is a fixed, pre-configured replica set. Member
	// discovery beyond the configured list happens inside the driver.
	ModeReplicaSet Mode = "replica-set"
	// ModeSharded is a sharded cluster reached through mongos routers whose
	// addresses come from an external supplier (e.g. service discovery).
	ModeSharded Mode = "sharded"
)

// Host is a single server address.
type Host struct {
	Name string
	Port int
}

// Address renders the host as "name:port".
func (h Host) Address() string {
	return net.JoinHostPort(h.Name, strconv.Itoa(h.Port))
}

// ParseHost parses a "name:port" pair.
func ParseHost(s string) (Host, error) {
	name, portStr, err := net.SplitHostPort(strings.TrimSpace(s))
	if err != nil {
		return Host{}, fmt.Errorf("%w: %q", ErrInvalidHost, s)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 || port > 65535 {
		return Host{}, fmt.Errorf("%w: %q", ErrInvalidHost, s)
	}
	return Host{Name: name, Port: port}, nil
}

// ParseHosts parses a list of "name:port" pairs, preserving order.
func ParseHosts(in []string) ([]Host, error) {
	hosts := make([]Host, 0, len(in))
	for _, s := range in {
		h, err := ParseHost(s)
		if err != nil {
			return nil, err
		}
		hosts = append(hosts, h)
	}
	return hosts, nil
}

// Topology is an immutable descriptor of the deployment shape. It selects
// which server-list Provider backs a connection manager and carries the
// replica-set name when one applies.
type Topology struct {
	mode       Mode
	replicaSet string
	hosts      []Host
	supplier   SupplierFunc
}

// Single describes a standalone server.
func Single(host string, port int) Topology {
	return Topology{
		mode:  ModeSingle,
		hosts: []Host{{Name: host, Port: port}},
	}
}

// ReplicaSet describes a replica set with a fixed, ordered member list.
func ReplicaSet(name string, members ...Host) Topology {
	return Topology{
		mode:       ModeReplicaSet,
		replicaSet: name,
		hosts:      append([]Host(nil), members...),
	}
}

// Sharded describes a sharded cluster whose mongos routers are resolved
// dynamically through supplier.
func Sharded(supplier SupplierFunc) Topology {
	return Topology{
		mode:     ModeSharded,
		supplier: supplier,
	}
}

// Mode returns the deployment shape tag.
func (t Topology) Mode() Mode {
	return t.mode
}

// ReplicaSetName returns the configured replica-set name, empty for other
// modes.
func (t Topology) ReplicaSetName() string {
	return t.replicaSet
}

// Hosts returns a copy of the statically configured host list. Empty for
// the sharded mode, whose hosts are resolved at connect time.
func (t Topology) Hosts() []Host {
	return append([]Host(nil), t.hosts...)
}

// Validate reports whether the descriptor is complete for its mode.
func (t Topology) Validate() error {
	switch t.mode {
	case ModeSingle, ModeReplicaSet:
		if len(t.hosts) == 0 {
			return fmt.Errorf("%w: %s topology needs at least one host", ErrInvalidTopology, t.mode)
		}
		if t.mode == ModeReplicaSet && t.replicaSet == "" {
			return fmt.Errorf("%w: replica set name is required", ErrInvalidTopology)
		}
	case ModeSharded:
		if t.supplier == nil {
			return fmt.Errorf("%w: sharded topology needs a host supplier", ErrInvalidTopology)
		}
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidTopology, t.mode)
	}
	return nil
}

// Provider returns the server-list provider backing this topology.
func (t Topology) Provider() Provider {
	if t.mode == ModeSharded {
		return &supplierProvider{supplier: t.supplier}
	}
	return &staticProvider{mode: t.mode, hosts: t.hosts}
}
