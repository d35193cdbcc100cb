// Package mongokit manages MongoDB connections across three deployment
// topologies: standalone servers, replica sets and sharded clusters.
//
// The package standardizes connection-string assembly, applies a fixed set
// of client options, retries the initial connection with linear backoff,
// and exposes a deduplicated recovery entry point for transient network
// errors. Everything below that (wire protocol, pooling, query execution)
// belongs to the official driver, which this module wraps but never
// reimplements.
//
// # Quick start
//
//	cfg := connection.Config{Database: "app"}
//	manager, err := mongokit.NewSingle(cfg, "localhost", 27017)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := manager.Connect(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer manager.Close(context.Background())
//
//	users := manager.Database().Collection("users")
//
// For replica sets and sharded clusters use NewReplicaSet and NewSharded,
// or build a topology descriptor directly with the topology package.
// NewFromEnv wires the whole thing from environment variables, inferring
// the topology from which configuration fields are set.
//
// # Recovering from transient errors
//
// When an operation on the database handle fails, feed the error to the
// manager. Non-retryable errors come back unchanged; retryable ones drive
// a reconnect shared by every concurrent reporter:
//
//	if _, err := users.InsertOne(ctx, doc); err != nil {
//	    if herr := manager.HandleTransientError(ctx, err); herr == nil {
//	        // reconnected; retry the insert
//	    }
//	}
//
// # Subpackages
//
//   - pkg/connection: the lifecycle manager itself.
//   - pkg/topology: deployment descriptors and server-list providers.
//   - pkg/notify: the event sink for log/success/error notifications.
//   - pkg/objectid: ObjectID validation and casting helpers.
//   - pkg/config, pkg/logger, pkg/async: environment configuration,
//     slog construction and background-task helpers the other packages
//     build on.
package mongokit
