package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageMySQL    = "mysql"
	StorageRedis    = "redis"
	StorageBolt     = "bolt"
)

var ErrInvalidStorage = errors.New("invalid storage configuration")

type Config struct {
	App      App
	Log      Log
	HTTP     HTTP
	Probe    Probe
	Metrics  Metrics
	Storage  Storage
	Postgres Postgres
	MySQL    MySQL
	Redis    Redis
	Bolt     Bolt
}

type App struct {
	Name    string `env:"APP_NAME"    envDefault:"beer_service"`
	Version string `env:"APP_VERSION" envDefault:"dev"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL"  envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

type HTTP struct {
	ListenAddress     string        `env:"HTTP_LISTEN_ADDRESS"      envDefault:":8080"`
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"5s"`
	ShutdownTimeout   time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT"    envDefault:"10s"`
	LogFieldMaxLen    int           `env:"LOG_FIELD_MAX_LEN"        envDefault:"2048"`
}

type Probe struct {
	ListenAddress string `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081"`
}

type Metrics struct {
	ListenAddress string `env:"METRICS_LISTEN_ADDRESS" envDefault:":9090"`
	Namespace     string `env:"METRICS_NAMESPACE"      envDefault:"beer_service"`
}

// Storage выбирает реализацию хранилища пива.
type Storage struct {
	Driver string `env:"STORAGE_DRIVER" envDefault:"memory"`
}

type MySQL struct {
	DSN             string        `env:"MYSQL_DSN"               json:"-"`
	MaxIdleConns    int           `env:"MYSQL_MAX_IDLE_CONNS"    envDefault:"5"`
	MaxOpenConns    int           `env:"MYSQL_MAX_OPEN_CONNS"    envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"MYSQL_CONN_MAX_LIFETIME" envDefault:"5m"`
}

type Redis struct {
	Address            string `env:"REDIS_ADDR"`
	Username           string `env:"REDIS_USERNAME"`
	Password           string `env:"REDIS_PASSWORD"  json:"-"`
	DatabaseNumber     int    `env:"REDIS_DB"        envDefault:"0"`
	PoolSize           int    `env:"REDIS_POOL_SIZE" envDefault:"10"`
	MinIdleConnections int    `env:"REDIS_MIN_IDLE"  envDefault:"1"`
	MaxIdleConnections int    `env:"REDIS_MAX_IDLE"  envDefault:"5"`
}

type Bolt struct {
	Path        string        `env:"BOLT_PATH"         envDefault:"beers.db"`
	OpenTimeout time.Duration `env:"BOLT_OPEN_TIMEOUT" envDefault:"1s"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if err := config.validateStorage(); err != nil {
		return Config{}, fmt.Errorf("config.validateStorage: %w", err)
	}

	return config, nil
}

// validateStorage проверяет, что для выбранного драйвера заданы его настройки.
func (c Config) validateStorage() error {
	switch c.Storage.Driver {
	case StorageMemory:
		return nil
	case StoragePostgres:
		if c.Postgres.DSN == "" {
			return fmt.Errorf("%w: PG_DSN is required for %s", ErrInvalidStorage, c.Storage.Driver)
		}
	case StorageMySQL:
		if c.MySQL.DSN == "" {
			return fmt.Errorf("%w: MYSQL_DSN is required for %s", ErrInvalidStorage, c.Storage.Driver)
		}
	case StorageRedis:
		if c.Redis.Address == "" {
			return fmt.Errorf("%w: REDIS_ADDR is required for %s", ErrInvalidStorage, c.Storage.Driver)
		}
	case StorageBolt:
		if c.Bolt.Path == "" {
			return fmt.Errorf("%w: BOLT_PATH is required for %s", ErrInvalidStorage, c.Storage.Driver)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorage, c.Storage.Driver)
	}

	return nil
}
