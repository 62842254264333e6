package airating

import (
	"time"

	"go.uber.org/zap"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	addrs    []string
	username string
	password string
	db       int

	scraperAPIKey  string
	scraperBaseURL string
	scraperTimeout time.Duration

	completionAPIKey  string
	completionBaseURL string
	completionModel   string

	readinessTimeout time.Duration
	logger           *zap.Logger
}

// WithRedis configures the client to connect to a Redis instance.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithRedisDB selects a logical Redis database.
func WithRedisDB(db int) Option {
	return optionFunc(func(c *clientConfig) {
		c.db = db
	})
}

// WithScraperProxy routes page fetches through a scraping proxy. An empty
// key fetches pages directly.
func WithScraperProxy(apiKey string) Option {
	return optionFunc(func(c *clientConfig) {
		c.scraperAPIKey = apiKey
	})
}

// WithScraperBaseURL points page fetches at a different proxy endpoint.
func WithScraperBaseURL(baseURL string) Option {
	return optionFunc(func(c *clientConfig) {
		c.scraperBaseURL = baseURL
	})
}

// WithScraperTimeout bounds a single page fetch.
func WithScraperTimeout(d time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.scraperTimeout = d
	})
}

// WithCompletion configures the chat completion provider.
func WithCompletion(apiKey, model string) Option {
	return optionFunc(func(c *clientConfig) {
		c.completionAPIKey = apiKey
		c.completionModel = model
	})
}

// WithCompletionBaseURL points the completion client at an OpenAI-compatible
// endpoint.
func WithCompletionBaseURL(baseURL string) Option {
	return optionFunc(func(c *clientConfig) {
		c.completionBaseURL = baseURL
	})
}

// WithReadinessTimeout bounds the wait for the database on startup.
func WithReadinessTimeout(d time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.readinessTimeout = d
	})
}

// WithLogger attaches a zap logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = logger
	})
}
