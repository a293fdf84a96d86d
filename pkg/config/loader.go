package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// slot holds the parsed value of one configuration type.
type slot struct {
	once  sync.Once
	value any
	err   error
}

// registry keeps one slot per configuration type so each type is parsed
// once per process unless explicitly reloaded.
type registry struct {
	mu    sync.Mutex
	slots map[reflect.Type]*slot
}

var (
	parsed = &registry{slots: make(map[reflect.Type]*slot)}

	defaultEnvLoaded sync.Once
)

func (r *registry) slot(t reflect.Type) *slot {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.slots[t]
	if !ok {
		s = &slot{}
		r.slots[t] = s
	}
	return s
}

// forget drops the slot for t. A non-nil s is only dropped if it is still
// the current slot, so a concurrent reload is not discarded.
func (r *registry) forget(t reflect.Type, s *slot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s == nil || r.slots[t] == s {
		delete(r.slots, t)
	}
}

func (r *registry) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots = make(map[reflect.Type]*slot)
}

// Load parses environment variables into v according to its `env` tags.
// The default .env file is read once, if present. Each configuration type
// is parsed once; later calls for the same type copy the cached value.
// A failed parse is not cached, so the next call tries again.
//
// Example:
//
//	var cfg cache.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// the default .env file is optional
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	t := reflect.TypeFor[T]()
	s := parsed.slot(t)
	s.once.Do(func() {
		fresh := *v
		if err := env.Parse(&fresh); err != nil {
			s.err = errors.Join(ErrParsingConfig, err)
			return
		}
		s.value = fresh
	})
	if s.err != nil {
		parsed.forget(t, s)
		return s.err
	}

	*v = s.value.(T)
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// ForceReloadConfig discards the cached value for T and parses it again.
func ForceReloadConfig[T any](v *T) error {
	parsed.forget(reflect.TypeFor[T](), nil)
	return Load(v)
}

// ResetCache discards every cached configuration.
func ResetCache() {
	parsed.reset()
}

// LoadEnv reads the given .env files into the process environment, later
// files overriding earlier ones and existing variables. Without arguments
// it reads .env from the working directory.
func LoadEnv(paths ...string) error {
	if err := godotenv.Overload(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("Failed to load env files: %v", err))
	}
}
