package sessiontransport

import "errors"

// ErrNoSession is returned when the request carries no cookie, an unknown
// token, or an expired token. The cases are deliberately indistinguishable;
// callers treat all of them as an anonymous request.
var ErrNoSession = errors.New("sessiontransport: no valid session")
