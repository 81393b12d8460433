package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"beer_service/internal/config"
	"beer_service/internal/domain/entity"
	"beer_service/internal/infrastructure/persistence"
	"beer_service/internal/server"
	"beer_service/pkg/application/connectors"
	"beer_service/pkg/application/modules"
	"beer_service/pkg/contextx"
	"beer_service/pkg/logx"
	"beer_service/pkg/metrics"
	"beer_service/pkg/middlewarex"
	"beer_service/pkg/probe"
)

type beerStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (entity.Beer, bool, error)
	Save(ctx context.Context, beer entity.Beer) (entity.Beer, error)
	Ping(ctx context.Context) error
}

// Run поднимает HTTP API, probe и metrics серверы и ждёт их остановки по
// отмене ctx.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	handler, err := logx.NewHandler(os.Stdout, cfg.Log.Format, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("logx.NewHandler: %w", err)
	}

	log := slog.New(handler).With(
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	)
	slog.SetDefault(log)

	ctx = contextx.WithLogger(ctx, log)

	store, closeStore, err := newBeerStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("newBeerStore: %w", err)
	}
	defer closeStore(context.WithoutCancel(ctx))

	log.Info("storage ready", slog.String(logx.FieldStorageDriver, cfg.Storage.Driver))

	registry := metrics.NewRegistry()

	srv := server.NewServer(server.NewBeerServer(store))
	router := srv.Router(
		middlewarex.NewMetrics(registry, cfg.Metrics.Namespace),
		middlewarex.NewHTTPLogging(logx.NewSensitiveDataMasker(), cfg.HTTP.LogFieldMaxLen),
	)

	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{
		ListenAddress:     cfg.HTTP.ListenAddress,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		ShutdownTimeout:   cfg.HTTP.ShutdownTimeout,
	}.Run(ctx, g, router)

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Probe.ListenAddress,
		Checks: map[string]probe.Check{
			cfg.Storage.Driver: store.Ping,
		},
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.Metrics.ListenAddress,
		Gatherer:      registry,
	}.Run(ctx, g)

	if err = g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}

// newBeerStore открывает хранилище выбранного драйвера. Подключения
// создаются коннекторами и паникуют при ошибке: это происходит только при
// старте.
func newBeerStore(ctx context.Context, cfg config.Config) (beerStore, func(context.Context), error) {
	switch cfg.Storage.Driver {
	case config.StoragePostgres, config.StorageMySQL:
		sql := newSQLConnector(cfg)

		return persistence.NewBeerRepository(sql.Client(ctx)), sql.Close, nil
	case config.StorageRedis:
		rdb := &connectors.Redis{
			Address:            cfg.Redis.Address,
			Username:           cfg.Redis.Username,
			Password:           cfg.Redis.Password,
			DatabaseNumber:     cfg.Redis.DatabaseNumber,
			PoolSize:           cfg.Redis.PoolSize,
			MinIdleConnections: cfg.Redis.MinIdleConnections,
			MaxIdleConnections: cfg.Redis.MaxIdleConnections,
		}

		return persistence.NewBeerRedisRepository(rdb.Client(ctx)), rdb.Close, nil
	case config.StorageBolt:
		db := &connectors.Bolt{
			Path:        cfg.Bolt.Path,
			OpenTimeout: cfg.Bolt.OpenTimeout,
		}

		repo, err := persistence.NewBeerBoltRepository(db.Client(ctx))
		if err != nil {
			db.Close(ctx)

			return nil, nil, fmt.Errorf("persistence.NewBeerBoltRepository: %w", err)
		}

		return repo, db.Close, nil
	default:
		return persistence.NewBeerMemoryRepository(), func(context.Context) {}, nil
	}
}

func newSQLConnector(cfg config.Config) *connectors.SQL {
	if cfg.Storage.Driver == config.StorageMySQL {
		return &connectors.SQL{
			Driver:          connectors.DriverMySQL,
			DSN:             cfg.MySQL.DSN,
			MaxIdleConns:    cfg.MySQL.MaxIdleConns,
			MaxOpenConns:    cfg.MySQL.MaxOpenConns,
			ConnMaxLifetime: cfg.MySQL.ConnMaxLifetime,
		}
	}

	return &connectors.SQL{
		Driver:          connectors.DriverPostgres,
		DSN:             cfg.Postgres.DSN,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	}
}
