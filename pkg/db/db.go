package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/srinipusuluri/sfdc-adminX/internal/config"
	"github.com/srinipusuluri/sfdc-adminX/pkg/errutils"
)

func OpenDB(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.PgUser, cfg.PgPassword, cfg.PgHost, cfg.PgPort, cfg.PgDatabase, cfg.PgSSLMode,
	)

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, errutils.Wrap("failed to create connection pool", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errutils.Wrap("failed to ping database", err)
	}

	return pool, nil
}
