// Package pg implements the session and user stores on PostgreSQL.
//
// Sessions live in a sessions table keyed by the hashed token ID with a
// foreign key to users; deleting a user cascades to their sessions. Session
// lookup joins the owning user's summary in a single round trip.
//
//	pool, err := pg.Connect(ctx, dbCfg) // integration/database/pg
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := sessionpg.Migrate(ctx, pool); err != nil {
//		log.Fatal(err)
//	}
//
//	sessions := session.NewManager(sessionpg.NewStore(pool))
//	users := sessionpg.NewUserStore(pool)
//
// Both stores honor a pgx.Tx carried in the context via the database
// package's WithTx, so account creation and session writes can share one
// transaction. Migrations are embedded and applied with goose.
package pg
