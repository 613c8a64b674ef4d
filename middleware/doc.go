// Package middleware provides net/http middleware for session resolution,
// request identification, client IP extraction, and request logging.
//
// Middleware composes right to left around a handler:
//
//	transport := sessiontransport.New(sessions, cookies)
//
//	var h http.Handler = mux
//	h = middleware.Session(transport)(h)
//	h = middleware.Logging(log)(h)
//	h = middleware.RequestID()(h)
//
// The session middleware resolves the request's cookie into a session and
// user and stores both in the request context; anonymous requests pass
// through with nothing stored. RequireAuth and RequireGuest wrap individual
// routes to enforce authentication state:
//
//	mux.Handle("/settings", middleware.RequireAuth(settingsHandler))
//	mux.Handle("/login", middleware.RequireGuest(loginHandler))
//
// Handlers read the resolved state through GetSession and GetUser:
//
//	sess, ok := middleware.GetSession(r.Context())
//	user, ok := middleware.GetUser(r.Context())
package middleware
