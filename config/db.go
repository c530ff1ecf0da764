package config

import (
	"context"
	"database/sql"
	"time"

	"github.com/cockroachdb/errors"
	_ "github.com/lib/pq"

	"legislators_dashboard/logger"
)

const retryDelay = 5 * time.Second

// OpenDBWithRetry opens and pings a PostgreSQL database, retrying a few
// times while the server comes up.
func OpenDBWithRetry(ctx context.Context, dsn string, maxRetries int) (*sql.DB, error) {
	var err error
	for i := 0; i < maxRetries; i++ {
		var db *sql.DB
		db, err = OpenDB(ctx, dsn)
		if err == nil {
			return db, nil
		}
		logger.Logger.Warnf("Failed to connect to PostgreSQL (attempt %d/%d): %v", i+1, maxRetries, err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryDelay):
		}
	}
	return nil, errors.Wrapf(err, "connect to PostgreSQL after %d attempts", maxRetries)
}

func OpenDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open PostgreSQL database")
	}

	// datasets are read once at startup
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "ping PostgreSQL database")
	}
	return db, nil
}
