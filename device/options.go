package device

import "time"

// Config holds the client configuration.
type Config struct {
	// Logger is used for logging operations (optional)
	Logger Logger

	// CommandDelay is an optional pause after each send, for links that
	// need pacing between write and read
	CommandDelay time.Duration
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{}
}

// Option is a functional option for configuring the Client.
type Option func(*Config)

// WithLogger sets a logger for client operations.
//
// Example:
//
//	client := device.New(link, device.WithLogger(log.Sugar()))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithCommandDelay sets a pause applied after each command send.
//
// Example:
//
//	client := device.New(link, device.WithCommandDelay(5*time.Millisecond))
func WithCommandDelay(delay time.Duration) Option {
	return func(c *Config) {
		if delay >= 0 {
			c.CommandDelay = delay
		}
	}
}

// Logger is an optional logging interface. Its methods match
// *zap.SugaredLogger, so a zap sugared logger plugs in directly; any
// other framework can be adapted.
type Logger interface {
	// Debugw logs a debug message with key-value pairs
	Debugw(msg string, keysAndValues ...interface{})

	// Infow logs an info message with key-value pairs
	Infow(msg string, keysAndValues ...interface{})

	// Errorw logs an error message with key-value pairs
	Errorw(msg string, keysAndValues ...interface{})
}
