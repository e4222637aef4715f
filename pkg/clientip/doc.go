// Package clientip resolves the address of the client behind an HTTP request.
//
// GetIP checks the proxy headers in DefaultHeaders order and falls back to
// RemoteAddr. Deployments behind a different proxy chain build a Resolver with
// the headers their proxy sets:
//
//	resolve := clientip.NewResolver("X-Forwarded-For")
//	ip := resolve.IP(r)
//
// Proxy headers are client controlled when the service is reachable
// directly; only trust the ones your edge overwrites.
//
// Middleware stores the resolved address in the request context, where
// GetIPFromContext and LoggerExtractor pick it up.
package clientip
