// Package topology describes the deployment shape of a MongoDB cluster and
// resolves the server addresses a connection attempt should target.
//
// A Topology is an immutable descriptor tagged with one of three modes:
//
//   - Single: one standalone mongod, fixed host and port.
//   - ReplicaSet: a named replica set with a fixed, ordered member list.
//     No discovery happens at this layer; the driver performs its own
//     member discovery after connecting.
//   - Sharded: mongos routers resolved at connect time through a
//     caller-supplied SupplierFunc, usually backed by service discovery.
//     The supplier may legitimately report an empty list when no routers
//     are known.
//
// Topology.Provider() yields the Provider a connection manager polls for
// candidate hosts. There is no provider type hierarchy beyond that: the
// per-mode differences collapse into the descriptor plus the replica-set
// name the manager patches into its client options.
package topology
