// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv reads one or more `.env` files into the process environment,
//     later files overriding earlier ones.
//   - Load parses the environment into any struct using `env` field tags and
//     caches the result per type, so each type is parsed once per process.
//   - MustLoad and MustLoadEnv panic on failure for configuration the program
//     cannot start without.
//   - ForceReloadConfig and ResetCache drop cached values, which is handy in
//     tests that change the environment.
//
// # Usage
//
//	import (
//	    "github.com/dmitrymomot/cachemap/pkg/cache"
//	    "github.com/dmitrymomot/cachemap/pkg/config"
//	)
//
//	func main() {
//	    config.MustLoadEnv("./config/.env")
//
//	    var cfg cache.Config // CACHE_CAPACITY, CACHE_MAX_LIVE_TIME, ...
//	    config.MustLoad(&cfg)
//
//	    c, err := cache.NewFromConfig[string, []byte](cfg)
//	    ...
//	}
//
// Load reads the default `.env` file from the working directory once, if it
// exists, before the first parse.
//
// # Error Handling
//
// Sentinel errors can be compared with `errors.Is`:
//
//   - ErrParsingConfig - env vars could not be parsed into the struct
//   - ErrLoadingEnvFile - an env file passed to LoadEnv could not be read
//   - ErrNilPointer - nil pointer passed to Load/MustLoad
//
// A failed parse is not cached; fixing the environment and calling Load again
// succeeds.
package config
