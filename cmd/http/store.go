package main

import (
	"context"
	"fmt"

	"github.com/rafaelleal24/catalog/internal/adapters/config"
	"github.com/rafaelleal24/catalog/internal/adapters/memory"
	"github.com/rafaelleal24/catalog/internal/adapters/mongo"
	"github.com/rafaelleal24/catalog/internal/adapters/mongo/repository"
	"github.com/rafaelleal24/catalog/internal/adapters/outbox"
	"github.com/rafaelleal24/catalog/internal/adapters/postgres"
	"github.com/rafaelleal24/catalog/internal/core/logger"
	"github.com/rafaelleal24/catalog/internal/core/port"
)

// store bundles the adapters backing one STORE_DRIVER.
type store struct {
	products  port.ProductPort
	outbox    outbox.Repository
	txManager port.TransactionManager
	ping      func(ctx context.Context) error
	close     func()
}

func openStore(ctx context.Context, cfg *config.Config) (*store, error) {
	switch cfg.Store.Driver {
	case config.StoreMongo:
		return openMongo(ctx, cfg.Mongo)
	case config.StorePostgres:
		return openPostgres(ctx, cfg.Postgres)
	case config.StoreMemory:
		return &store{
			products:  memory.NewProductRepository(),
			outbox:    memory.NewOutboxRepository(),
			txManager: memory.NewTransactionManager(),
			ping:      func(context.Context) error { return nil },
			close:     func() {},
		}, nil
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}
}

func openMongo(ctx context.Context, cfg config.MongoConfig) (*store, error) {
	client, err := mongo.NewConnection(cfg)
	if err != nil {
		return nil, err
	}
	database := client.Database(cfg.Database)
	if err := mongo.EnsureSchema(ctx, database); err != nil {
		_ = mongo.Disconnect(client)
		return nil, err
	}
	logger.Info(ctx, "Connected to MongoDB", map[string]any{"database": cfg.Database})

	return &store{
		products:  repository.NewProductRepository(database),
		outbox:    repository.NewOutboxRepository(database),
		txManager: mongo.NewTransactionManager(client),
		ping:      func(ctx context.Context) error { return client.Ping(ctx, nil) },
		close:     func() { _ = mongo.Disconnect(client) },
	}, nil
}

func openPostgres(ctx context.Context, cfg config.PostgresConfig) (*store, error) {
	if cfg.RunMigrations {
		if err := postgres.RunMigrations(ctx, cfg.URL); err != nil {
			return nil, err
		}
	}
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	logger.Info(ctx, "Connected to PostgreSQL", map[string]any{"max_conns": cfg.MaxConns})

	return &store{
		products:  postgres.NewProductRepository(pool),
		outbox:    postgres.NewOutboxRepository(pool),
		txManager: postgres.NewTransactionManager(pool),
		ping:      pool.Ping,
		close:     pool.Close,
	}, nil
}
