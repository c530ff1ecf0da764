package cmd

import (
	"context"

	"legislators_dashboard/config"
	"legislators_dashboard/store"
)

// loadStore builds the dataset store from the configured source. Any error
// is a startup failure; there is no partial-data fallback.
func loadStore(ctx context.Context, cfg config.Config) (*store.Store, error) {
	var (
		s   *store.Store
		err error
	)
	switch cfg.DataSource {
	case config.SourcePostgres:
		db, dbErr := config.OpenDBWithRetry(ctx, cfg.DatabaseURL, 5)
		if dbErr != nil {
			return nil, &store.LoadError{Source: "postgres", Err: dbErr}
		}
		defer db.Close()
		s, err = store.LoadPostgres(ctx, db)
	default:
		s, err = store.Load(cfg.DataDir)
	}
	if err != nil {
		return nil, err
	}

	if cfg.StrictDatasets {
		if err := store.Validate(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}
