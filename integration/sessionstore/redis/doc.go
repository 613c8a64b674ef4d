// Package redis implements the session store on Redis.
//
// Each session is a hash keyed by the hashed token ID with a TTL matching
// its expiry, so Redis reaps dead sessions without a sweeper. The owning
// user's username is denormalized into the hash at insert time, keeping
// lookup to a single round trip; a per-user set indexes session IDs for
// bulk invalidation.
//
//	client, err := redis.Connect(ctx, cfg) // integration/database/redis
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	store := sessionredis.NewStore(client)
//	_ = store.PutUser(ctx, session.User{ID: userID, Username: "alice"})
//	sessions := session.NewManager(store)
//
// DeleteExpired prunes dangling IDs from the per-user index sets; the
// session keys themselves expire via TTL.
package redis
