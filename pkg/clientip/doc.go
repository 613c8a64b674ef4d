// Package clientip extracts real client IP addresses from HTTP requests.
//
// Requests arriving through proxies, load balancers, or CDNs carry the
// original client address in forwarding headers rather than in RemoteAddr.
// The package checks headers in priority order:
//
//  1. CF-Connecting-IP (Cloudflare)
//  2. DO-Connecting-IP (DigitalOcean)
//  3. X-Forwarded-For (leftmost entry is the original client)
//  4. X-Real-IP (nginx and other proxies)
//  5. RemoteAddr (direct connection)
//
// Every candidate is validated with net.ParseIP and normalized; the
// unspecified addresses (0.0.0.0, ::) are rejected. IPv6 is fully
// supported. GetIP never panics and always returns a string: when nothing
// validates, the raw RemoteAddr comes back unchanged.
//
//	log.Info("authentication attempt",
//		logger.ClientIP(clientip.GetIP(r)),
//	)
package clientip
