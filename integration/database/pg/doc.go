// Package pg provides PostgreSQL connection management with migrations and
// health checking.
//
// The package wraps the pgx driver with application-level retry logic,
// connection pool tuning, and goose migration support. Connection
// establishment uses exponential backoff to ride out transient network
// issues when services restart.
//
//	cfg := pg.Config{ConnectionString: os.Getenv("PG_CONN_URL")}
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, logger); err != nil {
//		log.Fatal(err)
//	}
//
// Healthcheck returns a probe function for readiness endpoints:
//
//	check := pg.Healthcheck(pool)
//	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
//		if err := check(r.Context()); err != nil {
//			http.Error(w, "database unhealthy", http.StatusServiceUnavailable)
//			return
//		}
//		w.WriteHeader(http.StatusOK)
//	})
//
// Error classification helpers (IsNotFoundError, IsDuplicateKeyError,
// IsForeignKeyViolationError, IsTxClosedError) give stores type-safe checks
// for common PostgreSQL failure patterns.
//
// WithTx and TxFromContext propagate a pgx.Tx through context so multiple
// store calls can share one transaction:
//
//	tx, err := pool.Begin(ctx)
//	if err != nil {
//		return err
//	}
//	defer tx.Rollback(ctx) // safe after commit
//
//	ctx = pg.WithTx(ctx, tx)
//	// ... store calls see the transaction ...
//	return tx.Commit(ctx)
package pg
