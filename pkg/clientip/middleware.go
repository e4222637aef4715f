package clientip

import "net/http"

// Middleware stores the client IP resolved with DefaultHeaders in context.
func Middleware(next http.Handler) http.Handler {
	return MiddlewareWith(defaultResolver)(next)
}

// MiddlewareWith stores the client IP resolved by res in context.
func MiddlewareWith(res *Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := SetIPToContext(r.Context(), res.IP(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
