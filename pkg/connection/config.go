package connection

import "time"

// Config represents the configuration for a managed MongoDB connection.
//
// The topology shape fields (Host/Port, ReplicaSet/Members) are consumed by
// the factory layer for auto-detection; the manager itself only reads
// ReplicaSet to patch its client options.
type Config struct {
	Database string `env:"MONGODB_DATABASE,required"`           // Database is the logical database the manager derives its handle from.
	Name     string `env:"MONGODB_NAME" envDefault:"default"`   // Name identifies this connection in events and logs.
	AppName  string `env:"MONGODB_APP_NAME"`                    // AppName tags the connection string with an application identifier.

	Username   string `env:"MONGODB_USERNAME"`    // Username for authentication; attached to the connection string, never logged.
	Password   string `env:"MONGODB_PASSWORD"`    // Password for authentication; attached to the connection string, never logged.
	AuthSource string `env:"MONGODB_AUTH_SOURCE"` // AuthSource is the database to authenticate against when credentials are set.

	Host       string   `env:"MONGODB_HOST"`                     // Host of a standalone server (single topology).
	Port       int      `env:"MONGODB_PORT" envDefault:"27017"`  // Port of a standalone server (single topology).
	ReplicaSet string   `env:"MONGODB_REPLICA_SET"`              // ReplicaSet is the replica set name (replica-set topology).
	Members    []string `env:"MONGODB_MEMBERS"`                  // Members is the ordered "host:port" member list (replica-set topology).

	ConnectTimeout         time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`         // ConnectTimeout bounds establishing a single connection.
	OperationTimeout       time.Duration `env:"MONGODB_OPERATION_TIMEOUT" envDefault:"30s"`       // OperationTimeout bounds individual driver operations.
	ServerSelectionTimeout time.Duration `env:"MONGODB_SERVER_SELECTION_TIMEOUT" envDefault:"5s"` // ServerSelectionTimeout bounds server selection inside the driver.
	MaxPoolSize            uint64        `env:"MONGODB_MAX_POOL_SIZE" envDefault:"100"`           // MaxPoolSize is the maximum number of pooled connections.
	MinPoolSize            uint64        `env:"MONGODB_MIN_POOL_SIZE" envDefault:"1"`             // MinPoolSize is the minimum number of pooled connections.
	MaxConnIdleTime        time.Duration `env:"MONGODB_MAX_CONN_IDLE_TIME" envDefault:"300s"`     // MaxConnIdleTime caps how long a pooled connection may sit idle.
	RetryWrites            bool          `env:"MONGODB_RETRY_WRITES" envDefault:"true"`           // RetryWrites enables driver-level write retries.
	RetryReads             bool          `env:"MONGODB_RETRY_READS" envDefault:"true"`            // RetryReads enables driver-level read retries.

	// MaxAttempts and RetryInterval shape the connect retry loop: after the
	// k-th failed attempt the manager sleeps k*RetryInterval before the
	// next one. At the defaults (10 attempts, 2s) the worst case spends
	// about 110s sleeping, sized to outlast a rolling restart of the
	// backing cluster.
	MaxAttempts   int           `env:"MONGODB_MAX_ATTEMPTS" envDefault:"10"`
	RetryInterval time.Duration `env:"MONGODB_RETRY_INTERVAL" envDefault:"2s"`

	Monitor bool `env:"MONGODB_MONITOR" envDefault:"false"` // Monitor forwards driver command/pool events into the notification sink.
}

// Validate applies defaults and rejects configurations the manager cannot
// work with.
func (c *Config) Validate() error {
	if c.Database == "" {
		return ErrMissingDatabase
	}
	if c.Name == "" {
		c.Name = "default"
	}
	if c.Port == 0 {
		c.Port = 27017
	}
	if c.ConnectTimeout == 0 {
		c.ConnectTimeout = 10 * time.Second
	}
	if c.OperationTimeout == 0 {
		c.OperationTimeout = 30 * time.Second
	}
	if c.ServerSelectionTimeout == 0 {
		c.ServerSelectionTimeout = 5 * time.Second
	}
	if c.MaxPoolSize == 0 {
		c.MaxPoolSize = 100
	}
	if c.MinPoolSize == 0 {
		c.MinPoolSize = 1
	}
	if c.MaxConnIdleTime == 0 {
		c.MaxConnIdleTime = 300 * time.Second
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 10
	}
	if c.RetryInterval <= 0 {
		c.RetryInterval = 2 * time.Second
	}
	return nil
}
