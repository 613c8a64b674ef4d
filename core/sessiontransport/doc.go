// Package sessiontransport binds the session lifecycle to HTTP cookies.
//
// The transport owns the cookie contract: the bearer token travels in a
// cookie (default name "auth-session", path "/") whose Expires mirrors the
// session's server-side expiry. The token is the cookie value; only its
// one-way hash ever reaches the store.
//
//	transport := sessiontransport.New(sessions, cookies)
//
//	// on successful login or registration
//	sess, err := transport.Authenticate(ctx, w, userID)
//
//	// on every request needing the current user
//	sess, user, err := transport.Load(ctx, w, r)
//	if errors.Is(err, sessiontransport.ErrNoSession) {
//		// anonymous request
//	}
//
//	// on explicit logout
//	err = transport.Logout(ctx, w, r)
//
// Load keeps the client cookie synchronized with sliding renewal: when
// validation extends the session, the cookie is rewritten with the new
// expiry. Tokens that fail validation get their cookie cleared immediately,
// so clients do not resend dead tokens.
package sessiontransport
