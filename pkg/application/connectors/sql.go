package connectors

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sync"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib" // golang postgres driver
	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"

	"beer_service/pkg/logx"
)

const (
	DriverPostgres = "pgx"
	DriverMySQL    = "mysql"
)

// SQL opens a sqlx pool for either postgres (pgx stdlib) or mysql.
type SQL struct {
	value           *sqlx.DB
	Driver          string
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	init            sync.Once
}

func (s *SQL) Client(ctx context.Context) *sqlx.DB {
	s.init.Do(func() {
		s.value = lo.Must(sqlx.ConnectContext(ctx, s.Driver, lo.Must(s.dsn())))

		s.value.SetMaxOpenConns(s.MaxOpenConns)
		s.value.SetMaxIdleConns(s.MaxIdleConns)
		s.value.SetConnMaxLifetime(s.ConnMaxLifetime)

		logger(ctx).Info(
			"sql connected",
			slog.String("driver", s.Driver),
			slog.String("database", s.database()),
		)
	})

	return s.value
}

func (s *SQL) Close(ctx context.Context) {
	if s.value == nil {
		return
	}

	if err := s.value.Close(); err != nil {
		logger(ctx).Error("sqlClient.Close", logx.Error(err))
	}

	logger(ctx).Info(
		"sql disconnected",
		slog.String("driver", s.Driver),
		slog.String("database", s.database()),
	)
}

// dsn для mysql всегда включает parseTime: без него DATETIME не читается в
// time.Time.
func (s *SQL) dsn() (string, error) {
	if s.Driver != DriverMySQL {
		return s.DSN, nil
	}

	cfg, err := mysql.ParseDSN(s.DSN)
	if err != nil {
		return "", fmt.Errorf("mysql.ParseDSN: %w", err)
	}

	cfg.ParseTime = true

	return cfg.FormatDSN(), nil
}

// database never returns credentials, only the database name.
func (s *SQL) database() string {
	if s.Driver == DriverMySQL {
		cfg, err := mysql.ParseDSN(s.DSN)
		if err != nil {
			return ""
		}

		return cfg.DBName
	}

	u, err := url.Parse(s.DSN)
	if err != nil {
		return ""
	}

	return u.Path
}
