package csrf

import "context"

type contextKey struct{}

func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, contextKey{}, token)
}

// TokenFromContext returns the token stored by Middleware, or "".
func TokenFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	token, _ := ctx.Value(contextKey{}).(string)
	return token
}
