// Package csrf generates and compares anti-forgery tokens and provides a
// double-submit cookie middleware.
//
// Tokens are 32 random bytes encoded as 64 hex characters. ValidateToken
// compares a submitted token with the stored one in constant time.
//
//	token, err := csrf.GenerateToken()
//	...
//	if !csrf.ValidateToken(r.FormValue("csrf_token"), stored) {
//	    // reject
//	}
//
// Middleware keeps the token in a cookie, exposes it to handlers through
// TokenFromContext and requires unsafe requests (POST, PUT, PATCH, DELETE) to
// echo it back in the csrf_token form field or the X-CSRF-Token header.
//
// # Limitations
//
// The token is not bound to a user session or signed. A client that can both
// read and write the cookie can forge a matching pair; the middleware only
// stops cross-site form posts that cannot read the cookie value.
package csrf
