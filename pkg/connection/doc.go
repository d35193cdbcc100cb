// Package connection manages the lifecycle of a single logical MongoDB
// connection: target-address assembly from a pluggable server-list
// provider, bounded retry with linear backoff, atomic swap-on-success, and
// deduplicated recovery from transient errors.
//
// The Manager moves through the states Disconnected, Connecting and
// Connected, with Recovering overlaying Connected while an error-driven
// reconnect is in flight. Connect tries up to Config.MaxAttempts times,
// sleeping attempt*RetryInterval between attempts; at the defaults that
// schedule survives a typical rolling restart of the backing cluster.
// Failures the driver classifies as network- or timeout-related are
// retried; anything else aborts immediately.
//
// # Usage
//
//	topo := topology.ReplicaSet("rs0",
//	    topology.Host{Name: "h1", Port: 27017},
//	    topology.Host{Name: "h2", Port: 27017},
//	)
//	cfg := connection.Config{Database: "app", ReplicaSet: topo.ReplicaSetName()}
//
//	manager, err := connection.New(cfg, topo.Provider(),
//	    connection.WithLogger(log),
//	    connection.WithEmitter(sink),
//	)
//	if err != nil {
//	    return err
//	}
//	if err := manager.Connect(ctx); err != nil {
//	    return err
//	}
//
//	users := manager.Database().Collection("users")
//	if _, err := users.InsertOne(ctx, doc); err != nil {
//	    if herr := manager.HandleTransientError(ctx, err); herr == nil {
//	        // reconnected; retry the insert
//	    }
//	}
//
// # Recovery
//
// HandleTransientError is the caller-facing recovery entry point. It
// returns non-retryable errors unchanged, and for retryable ones starts
// (or joins) the single in-flight reconnect, so overlapping reporters
// converge on one Connect instead of stampeding the cluster.
//
// # Healthy-host cache
//
// The most recent non-empty host list is cached and substituted when the
// provider transiently reports no servers, so a blip in service discovery
// does not blank out the connection target. The cache is overwritten by
// every non-empty provider response and never cleared.
package connection
