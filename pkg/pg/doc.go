// Package pg connects to PostgreSQL through pgx/v5 and applies the goose
// schema used by the Postgres-backed rate limit store.
//
// Config is populated from environment variables (PG_* tags). Connect opens
// a *pgxpool.Pool and retries with linear back-off until the database
// answers a ping. Migrate applies the migrations embedded in this package
// (the rate_limits table) or, when MigrationsPath is set, a directory on
// disk. Healthcheck adapts any Pinger into a readiness check.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, log); err != nil {
//	    return err
//	}
//	store, err := ratelimit.NewPostgresStore(pool, ratelimit.DefaultTable)
//
// Errors are sentinels joined with the driver error, so errors.Is works on
// both.
package pg
