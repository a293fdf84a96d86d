// Package logger provides a thin factory around Go's slog package with
// functional options and helper attribute constructors.
//
// New creates a *slog.Logger configured by a set of Option functions. These
// options allow you to:
//
//   - Select an output format (text or json)
//   - Set the minimum log level, by value or by name
//   - Supply default slog.Attr values applied to every record
//   - Apply per-environment defaults (development, staging, production)
//
// Helper constructors such as Key, Reason, Capacity and Error live in
// attr.go and keep attribute naming consistent between the cache and the
// programs embedding it.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "session-cache"),
//	)
//	logger.SetAsDefault(log)
//
//	c, err := cache.New[string, *Session](1000, time.Hour, 15*time.Minute,
//	    cache.WithLogger(log),
//	)
//
// The cache logs evictions at debug level, so development defaults show them
// and production defaults hide them.
//
// # Error Handling
//
// Error produces an attribute only when the supplied error is non-nil:
//
//	log.Info("warmup finished", logger.Error(err))
//
// WithFormat and WithLevelName panic on invalid input so misconfiguration
// stops the program at startup.
package logger
