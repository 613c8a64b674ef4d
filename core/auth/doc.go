// Package auth orchestrates account flows: registration, login, credential
// changes, and password reset. It composes the identity validators, the
// argon2id hasher, a user store, and the session manager; it owns no
// transport and sends no email.
//
//	service := auth.NewService(users, hasher, sessions)
//
//	user, err := service.Register(ctx, "a@b.co", "alice", "s3cret!pass1")
//	user, err = service.Login(ctx, "a@b.co", "s3cret!pass1")
//
// Login failures are uniform: unknown email and wrong password both return
// ErrInvalidCredentials, and unknown emails still burn a hash verification
// so response timing does not reveal account existence.
//
// Password reset issues a single-use token whose sha256 hash is stored with
// a one-hour expiry; delivering the token to the user is the caller's
// concern. Confirming a reset, like changing a password, invalidates every
// session belonging to the user.
package auth
