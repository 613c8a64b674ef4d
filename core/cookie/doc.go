// Package cookie provides HTTP cookie management with optional HMAC signing
// and key rotation.
//
// A Manager carries default attributes (path, HttpOnly, SameSite) applied to
// every cookie it writes, with per-call functional options for overrides:
//
//	manager, err := cookie.New(secrets)
//	if err != nil {
//		return err
//	}
//
//	err = manager.Set(w, "auth-session", token,
//		cookie.WithExpires(sess.ExpiresAt),
//		cookie.WithSecure(true),
//	)
//
// Signed variants protect values against client-side tampering. Multiple
// secrets enable key rotation: the first secret signs, all secrets verify.
// Deletion expires the cookie server-side (MaxAge -1 plus a past Expires),
// not merely client-side.
package cookie
