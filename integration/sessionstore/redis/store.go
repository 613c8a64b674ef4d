package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/authkit/core/session"
)

const (
	sessionKeyPrefix = "session:"
	userKeyPrefix    = "user:"
	indexKeyPrefix   = "user_sessions:"
)

// Store implements session.Store on Redis. Session rows live in hashes with
// a TTL matching their expiry, the owning user's username is denormalized
// into the session hash at insert time so lookup is a single round trip,
// and a per-user set indexes sessions for bulk invalidation.
type Store struct {
	client *redis.Client
}

// NewStore creates a session store backed by client.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

func sessionKey(id string) string   { return sessionKeyPrefix + id }
func userKey(id string) string      { return userKeyPrefix + id }
func indexKey(userID string) string { return indexKeyPrefix + userID }

// PutUser registers a user summary so inserts can denormalize the username.
// Sessions inserted for unregistered users resolve to an ID-only summary.
func (s *Store) PutUser(ctx context.Context, user session.User) error {
	if err := s.client.HSet(ctx, userKey(user.ID), "username", user.Username).Err(); err != nil {
		return fmt.Errorf("put user: %w", err)
	}
	return nil
}

// insertScript writes the full session row, its TTL, and the index entry in
// one atomic step, with the duplicate check inside it, so a failed insert
// never leaves a partial row behind.
var insertScript = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 1 then
	return 0
end
redis.call("HSET", KEYS[1], "user_id", ARGV[1], "username", ARGV[2], "expires_at", ARGV[3], "created_at", ARGV[4])
redis.call("PEXPIREAT", KEYS[1], ARGV[5])
redis.call("SADD", KEYS[2], ARGV[6])
return 1
`)

// Insert implements session.Store.
func (s *Store) Insert(ctx context.Context, sess session.Session) error {
	username, err := s.client.HGet(ctx, userKey(sess.UserID), "username").Result()
	if err != nil && err != redis.Nil {
		return fmt.Errorf("insert session: %w", err)
	}

	created, err := insertScript.Run(ctx, s.client,
		[]string{sessionKey(sess.ID), indexKey(sess.UserID)},
		sess.UserID,
		username,
		sess.ExpiresAt.UTC().Format(time.RFC3339Nano),
		sess.CreatedAt.UTC().Format(time.RFC3339Nano),
		sess.ExpiresAt.UnixMilli(),
		sess.ID,
	).Int()
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	if created == 0 {
		return session.ErrDuplicateID
	}
	return nil
}

// FindWithUser implements session.Store.
func (s *Store) FindWithUser(ctx context.Context, id string) (session.Session, session.User, error) {
	fields, err := s.client.HGetAll(ctx, sessionKey(id)).Result()
	if err != nil {
		return session.Session{}, session.User{}, fmt.Errorf("find session: %w", err)
	}
	if len(fields) == 0 {
		return session.Session{}, session.User{}, session.ErrNotFound
	}

	raw, ok := fields["expires_at"]
	if !ok {
		// A row with no expiry can never validate and never expires on its
		// own; reap it and report absence.
		if err := s.Delete(ctx, id); err != nil {
			return session.Session{}, session.User{}, err
		}
		return session.Session{}, session.User{}, session.ErrNotFound
	}

	sess := session.Session{ID: id, UserID: fields["user_id"]}
	if sess.ExpiresAt, err = time.Parse(time.RFC3339Nano, raw); err != nil {
		return session.Session{}, session.User{}, fmt.Errorf("find session: parse expires_at: %w", err)
	}
	if sess.CreatedAt, err = time.Parse(time.RFC3339Nano, fields["created_at"]); err != nil {
		return session.Session{}, session.User{}, fmt.Errorf("find session: parse created_at: %w", err)
	}

	return sess, session.User{ID: sess.UserID, Username: fields["username"]}, nil
}

// UpdateExpiry implements session.Store.
func (s *Store) UpdateExpiry(ctx context.Context, id string, expiresAt time.Time) error {
	key := sessionKey(id)

	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("update session expiry: %w", err)
	}
	if exists == 0 {
		return session.ErrNotFound
	}

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, key, "expires_at", expiresAt.UTC().Format(time.RFC3339Nano))
	pipe.ExpireAt(ctx, key, expiresAt)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("update session expiry: %w", err)
	}
	return nil
}

// Delete implements session.Store. Idempotent.
func (s *Store) Delete(ctx context.Context, id string) error {
	key := sessionKey(id)

	userID, err := s.client.HGet(ctx, key, "user_id").Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, indexKey(userID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteByUserID implements session.Store.
func (s *Store) DeleteByUserID(ctx context.Context, userID string) error {
	ids, err := s.client.SMembers(ctx, indexKey(userID)).Result()
	if err != nil {
		return fmt.Errorf("delete user sessions: %w", err)
	}

	pipe := s.client.TxPipeline()
	for _, id := range ids {
		pipe.Del(ctx, sessionKey(id))
	}
	pipe.Del(ctx, indexKey(userID))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("delete user sessions: %w", err)
	}
	return nil
}

// DeleteExpired implements session.Store. Redis reaps expired session keys
// on its own through their TTL; this prunes dangling IDs from the per-user
// index sets.
func (s *Store) DeleteExpired(ctx context.Context, _ time.Time) error {
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, indexKeyPrefix+"*", 100).Result()
		if err != nil {
			return fmt.Errorf("delete expired sessions: %w", err)
		}

		for _, key := range keys {
			ids, err := s.client.SMembers(ctx, key).Result()
			if err != nil {
				return fmt.Errorf("delete expired sessions: %w", err)
			}
			for _, id := range ids {
				exists, err := s.client.Exists(ctx, sessionKey(id)).Result()
				if err != nil {
					return fmt.Errorf("delete expired sessions: %w", err)
				}
				if exists == 0 {
					if err := s.client.SRem(ctx, key, id).Err(); err != nil {
						return fmt.Errorf("delete expired sessions: %w", err)
					}
				}
			}
		}

		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}
