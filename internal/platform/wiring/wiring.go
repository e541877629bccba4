// Package wiring builds the storage, sequence and messaging adapters selected
// by configuration and hands them to the service container. The HTTP server
// and the event worker share it.
package wiring

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
	"github.com/SscSPs/rental_ledger/internal/core/services"
	"github.com/SscSPs/rental_ledger/internal/messaging/amqp"
	"github.com/SscSPs/rental_ledger/internal/platform/chart"
	"github.com/SscSPs/rental_ledger/internal/platform/config"
	"github.com/SscSPs/rental_ledger/internal/repositories/cache"
	"github.com/SscSPs/rental_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/rental_ledger/internal/repositories/memory"
	"github.com/SscSPs/rental_ledger/pkg/database"
)

// App is a fully wired ledger.
type App struct {
	Services *portssvc.ServiceContainer
	// Broker is nil unless AMQP_URL is set.
	Broker  *amqp.Client
	closers []func()
}

// Close releases every connection opened by Build, newest first.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

// Build loads the chart of accounts, connects the configured backends and
// constructs the services. On error everything opened so far is closed.
func Build(ctx context.Context, cfg *config.Config, logger *slog.Logger) (_ *App, err error) {
	app := &App{}
	defer func() {
		if err != nil {
			app.Close()
		}
	}()

	coa, err := chart.Load(cfg.ChartOfAccountsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load chart of accounts: %w", err)
	}

	documents, err := app.documentNumbers(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	var publisher portsrepo.EventPublisher
	if cfg.PublishesEvents() {
		broker, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPEventsQueue, cfg.AMQPPostedRoutingKey)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to AMQP broker: %w", err)
		}
		app.Broker = broker
		app.closers = append(app.closers, func() {
			if cerr := broker.Close(); cerr != nil {
				logger.Error("Error closing AMQP client", slog.String("error", cerr.Error()))
			}
		})
		publisher = broker
		logger.Info("AMQP broker connected", slog.String("exchange", cfg.AMQPExchange))
	}

	repos, err := app.repositories(ctx, cfg, logger, documents, publisher)
	if err != nil {
		return nil, err
	}

	app.Services = services.NewServiceContainer(cfg, coa, repos)
	return app, nil
}

func (a *App) documentNumbers(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.DocumentNumberGenerator, error) {
	switch cfg.DocumentSequence {
	case config.SequenceRedis:
		client, err := cache.New(ctx, cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		a.closers = append(a.closers, func() {
			if cerr := client.Close(); cerr != nil {
				logger.Error("Error closing redis client", slog.String("error", cerr.Error()))
			}
		})
		logger.Info("Using redis document sequence")
		return cache.NewRedisDocumentSequence(client), nil
	default:
		return services.NewUUIDDocumentNumberGenerator(), nil
	}
}

func (a *App) repositories(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	documents portsrepo.DocumentNumberGenerator,
	publisher portsrepo.EventPublisher,
) (portsrepo.RepositoryProvider, error) {
	if cfg.StorageBackend == config.StorageMemory {
		logger.Warn("Using in-memory ledger store")
		return portsrepo.RepositoryProvider{
			LedgerRepo:      memory.NewLedgerRepository(),
			DocumentNumbers: documents,
			Publisher:       publisher,
		}, nil
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return portsrepo.RepositoryProvider{}, fmt.Errorf("failed to initialize database pool: %w", err)
	}
	a.closers = append(a.closers, dbPool.Close)
	logger.Info("Database connection pool established.")

	logger.Info("Running database migrations...")
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		return portsrepo.RepositoryProvider{}, err
	}

	return pgsql.NewRepositoryProvider(dbPool, documents, publisher), nil
}
