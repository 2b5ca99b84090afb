package redis

// Config holds Redis connection settings for the durable store.
type Config struct {
	// URL is the Redis connection URL (redis://host:port/db)
	URL string

	// KeyPrefix namespaces every portal key, so one Redis instance can host
	// several deployments.
	KeyPrefix string

	// Connection pool settings
	PoolSize     int
	MinIdleConns int
}

// DefaultConfig returns sensible defaults for Redis configuration.
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379/0",
		KeyPrefix:    "playhub:",
		PoolSize:     10,
		MinIdleConns: 2,
	}
}
