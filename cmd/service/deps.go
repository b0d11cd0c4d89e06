package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/quotations-service/internal/adapters/cache"
	"github.com/jsamuelsen/quotations-service/internal/adapters/clients"
	"github.com/jsamuelsen/quotations-service/internal/adapters/clients/acl"
	"github.com/jsamuelsen/quotations-service/internal/adapters/events"
	"github.com/jsamuelsen/quotations-service/internal/adapters/repository/memory"
	"github.com/jsamuelsen/quotations-service/internal/adapters/repository/postgres"
	"github.com/jsamuelsen/quotations-service/internal/adapters/search"
	"github.com/jsamuelsen/quotations-service/internal/app"
	"github.com/jsamuelsen/quotations-service/internal/domain"
	"github.com/jsamuelsen/quotations-service/internal/platform/config"
	"github.com/jsamuelsen/quotations-service/internal/platform/metrics"
	"github.com/jsamuelsen/quotations-service/internal/ports"
)

// dependencies holds the adapters selected by configuration. Optional adapters stay nil
// when disabled.
type dependencies struct {
	quotations ports.QuotationRepository
	authors    ports.AuthorRepository
	sources    ports.SourceRepository
	index      ports.QuotationIndex
	cache      ports.Cache
	events     ports.EventPublisher
	directory  ports.AuthorDirectory
	health     *ports.DefaultHealthRegistry

	closers []func() error
}

// openDependencies connects every configured adapter. On error, whatever was already opened
// is closed again.
func openDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (_ *dependencies, err error) {
	deps := &dependencies{health: ports.NewHealthRegistry()}
	defer func() {
		if err != nil {
			_ = deps.Close()
		}
	}()

	if err := deps.openDatabase(ctx, &cfg.Database, logger); err != nil {
		return nil, err
	}

	if cfg.Search.Enabled {
		index := search.NewMeili(&cfg.Search)
		deps.index = index
		deps.onClose(func() error { index.Close(); return nil })
		if err := deps.health.RegisterOptional(index); err != nil {
			return nil, fmt.Errorf("registering search health check: %w", err)
		}
	}

	switch cfg.Cache.Driver {
	case "redis":
		redisCache, err := cache.NewRedis(ctx, cfg.Cache.URL, cfg.Cache.TTL)
		if err != nil {
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}
		deps.cache = redisCache
		deps.onClose(redisCache.Close)
		if err := deps.health.RegisterOptional(redisCache); err != nil {
			return nil, fmt.Errorf("registering cache health check: %w", err)
		}
	case "local":
		deps.cache = cache.NewLocal(cfg.Cache.TTL)
	}

	switch cfg.Events.Driver {
	case "mqtt":
		publisher, err := events.NewMQTTPublisher(&cfg.Events)
		if err != nil {
			return nil, fmt.Errorf("connecting to mqtt broker: %w", err)
		}
		deps.events = publisher
		deps.onClose(func() error { publisher.Close(); return nil })
		if err := deps.health.RegisterOptional(publisher); err != nil {
			return nil, fmt.Errorf("registering events health check: %w", err)
		}
	case "log":
		deps.events = events.LogPublisher{}
	}

	if cfg.Directory.Enabled {
		client, err := clients.New(&cfg.Directory, clients.WithLogger(logger))
		if err != nil {
			return nil, fmt.Errorf("creating author directory client: %w", err)
		}
		directory := acl.NewAuthorDirectory(client)
		deps.directory = directory
		if err := deps.health.RegisterOptional(directory); err != nil {
			return nil, fmt.Errorf("registering directory health check: %w", err)
		}
	}

	logger.Info("dependencies ready",
		slog.String("database", cfg.Database.Driver),
		slog.Bool("search", cfg.Search.Enabled),
		slog.String("cache", cfg.Cache.Driver),
		slog.String("events", cfg.Events.Driver),
		slog.Bool("directory", cfg.Directory.Enabled),
	)

	return deps, nil
}

func (d *dependencies) openDatabase(ctx context.Context, cfg *config.DatabaseConfig, logger *slog.Logger) error {
	if cfg.Driver != "postgres" {
		store := memory.NewStore()
		d.quotations, d.authors, d.sources = store.Quotations(), store.Authors(), store.Sources()
		logger.Warn("using in-memory store, data is lost on restart")
		return nil
	}

	if cfg.MigrateOnStart {
		if err := migrateUp(cfg.URL, logger); err != nil {
			return err
		}
	}

	db, err := postgres.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	d.onClose(db.Close)

	d.quotations = postgres.NewQuotationRepository(db)
	d.authors = postgres.NewAuthorRepository(db)
	d.sources = postgres.NewSourceRepository(db)

	if err := d.health.Register(postgres.NewHealthChecker(db)); err != nil {
		return fmt.Errorf("registering database health check: %w", err)
	}

	return nil
}

func (d *dependencies) onClose(fn func() error) {
	d.closers = append(d.closers, fn)
}

// Close releases adapters in reverse opening order.
func (d *dependencies) Close() error {
	var errs []error
	for _, fn := range slices.Backward(d.closers) {
		if err := fn(); err != nil {
			errs = append(errs, err)
		}
	}
	d.closers = nil

	return errors.Join(errs...)
}

// services builds the application layer over deps. The recorder is registered once per
// process, so tests pass a private registry.
func (d *dependencies) services(cfg *config.Config, reg prometheus.Registerer) (*app.ReviewService, *app.CatalogService, error) {
	strategy, err := domain.NewDuplicateStrategy(cfg.Review.DuplicateStrategy, cfg.Review.LevenshteinThreshold)
	if err != nil {
		return nil, nil, fmt.Errorf("configuring duplicate detection: %w", err)
	}

	recorder := metrics.New(reg)

	review := app.NewReviewService(app.ReviewServiceConfig{
		Quotations: d.quotations,
		Authors:    d.authors,
		Sources:    d.sources,
		Index:      d.index,
		Cache:      d.cache,
		Events:     d.events,
		Duplicates: strategy,
		Metrics:    recorder,
	})

	catalog := app.NewCatalogService(app.CatalogServiceConfig{
		Quotations: d.quotations,
		Authors:    d.authors,
		Sources:    d.sources,
		Index:      d.index,
		Cache:      d.cache,
		Directory:  d.directory,
		CacheTTL:   cfg.Cache.TTL,
		Metrics:    recorder,
	})

	return review, catalog, nil
}

// seeder fills an empty store with the demo catalog.
func (d *dependencies) seeder() *app.Seeder {
	return &app.Seeder{
		Quotations: d.quotations,
		Authors:    d.authors,
		Sources:    d.sources,
		Index:      d.index,
	}
}
