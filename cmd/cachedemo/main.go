package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/cachemap/pkg/cache"
	"github.com/dmitrymomot/cachemap/pkg/config"
	"github.com/dmitrymomot/cachemap/pkg/logger"
)

type appConfig struct {
	Env        string        `env:"APP_ENV" envDefault:"development"`
	LogLevel   string        `env:"LOG_LEVEL"`
	Workers    int           `env:"DEMO_WORKERS" envDefault:"8"`
	Sessions   int           `env:"DEMO_SESSIONS" envDefault:"2000"`
	SessionTTL time.Duration `env:"DEMO_SESSION_TTL" envDefault:"150ms"`
	Cache      cache.Config
}

// session carries its own deadline, independent of the cache timers.
type session struct {
	ID        uuid.UUID
	UserID    int
	ExpiresAt time.Time
}

func (s *session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

func main() {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, "cachedemo"),
		logger.WithLevelName(cfg.LogLevel),
	)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runCapacityScenario(log); err != nil {
		log.Error("capacity scenario failed", logger.Error(err))
		os.Exit(1)
	}
	if err := runSessionWorkload(ctx, log, cfg); err != nil {
		log.Error("session workload failed", logger.Error(err))
		os.Exit(1)
	}
}

// runCapacityScenario fills a two-entry cache with three live keys under
// both capacity behaviours.
func runCapacityScenario(log *slog.Logger) error {
	for _, strict := range []bool{false, true} {
		opts := []cache.Option{cache.WithLogger(log)}
		if strict {
			opts = append(opts, cache.WithStrictEviction())
		}
		c, err := cache.New[string, int](2, 0, 0, opts...)
		if err != nil {
			return err
		}
		for i, k := range []string{"a", "b"} {
			if _, _, err := c.Put(k, i+1); err != nil {
				return err
			}
		}
		if _, _, err := c.Get("a"); err != nil {
			return err
		}
		if _, _, err := c.Put("c", 3); err != nil {
			return err
		}
		_, hasB, err := c.Get("b")
		if err != nil {
			return err
		}
		log.Info("capacity scenario",
			slog.Bool("strict", strict),
			logger.Capacity(c.Capacity()),
			logger.Size(c.Len()),
			slog.Bool("b_resident", hasB),
		)
	}
	return nil
}

// runSessionWorkload creates sessions from several workers while reading
// back random earlier ones, then waits for the session deadlines to pass
// and sweeps the cache.
func runSessionWorkload(ctx context.Context, log *slog.Logger, cfg appConfig) error {
	sessions, err := cache.NewFromConfig[uuid.UUID, *session](cfg.Cache, cache.WithLogger(log))
	if err != nil {
		return err
	}

	var hits, misses atomic.Int64
	perWorker := max(cfg.Sessions/max(cfg.Workers, 1), 1)
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	for w := range max(cfg.Workers, 1) {
		g.Go(func() error {
			ids := make([]uuid.UUID, 0, perWorker)
			for i := range perWorker {
				if err := gctx.Err(); err != nil {
					return err
				}
				s := &session{
					ID:        uuid.New(),
					UserID:    w*perWorker + i,
					ExpiresAt: time.Now().Add(cfg.SessionTTL),
				}
				if _, _, err := sessions.Put(s.ID, s); err != nil {
					return err
				}
				ids = append(ids, s.ID)

				_, ok, err := sessions.Get(ids[rand.IntN(len(ids))])
				if err != nil {
					return err
				}
				if ok {
					hits.Add(1)
				} else {
					misses.Add(1)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	log.Info("sessions written",
		logger.Count(perWorker*max(cfg.Workers, 1)),
		logger.Size(sessions.Len()),
		logger.Duration(time.Since(start)),
		slog.Int64("hits", hits.Load()),
		slog.Int64("misses", misses.Load()),
	)

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(cfg.SessionTTL):
	}

	removed := sessions.RemoveExpired()
	log.Info("expired sessions swept",
		slog.Bool("removed", removed),
		logger.Size(sessions.Len()),
	)
	return nil
}
