package lookbook

import "time"

// Option configures the Client.
type Option func(*clientConfig)

type clientConfig struct {
	addrs    []string
	username string
	password string
	db       int

	embedder      Embedder
	imageEmbedder ImageEmbedder

	readinessTimeout time.Duration
}

// WithRedis configures the client to connect to a Redis instance.
func WithRedis(addr, password string) Option {
	return func(c *clientConfig) {
		c.addrs = []string{addr}
		c.password = password
	}
}

// WithCredentials sets the Redis ACL username and password.
func WithCredentials(username, password string) Option {
	return func(c *clientConfig) {
		c.username = username
		c.password = password
	}
}

// WithDB selects a Redis logical database.
func WithDB(db int) Option {
	return func(c *clientConfig) {
		c.db = db
	}
}

// WithEmbedder sets the text embedding provider.
// Required for search and text recommendations; browse flows work without it.
func WithEmbedder(e Embedder) Option {
	return func(c *clientConfig) {
		c.embedder = e
	}
}

// WithImageEmbedder sets the image embedding provider.
// Required for image-reference recommendations.
func WithImageEmbedder(e ImageEmbedder) Option {
	return func(c *clientConfig) {
		c.imageEmbedder = e
	}
}

// WithReadinessTimeout bounds the initial database readiness wait.
// Default: 10s.
func WithReadinessTimeout(d time.Duration) Option {
	return func(c *clientConfig) {
		c.readinessTimeout = d
	}
}
