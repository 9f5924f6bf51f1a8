package useragent

import "context"

type uaContextKey struct{}

// WithUserAgent adds a parsed user agent to the context
func WithUserAgent(ctx context.Context, ua UserAgent) context.Context {
	return context.WithValue(ctx, uaContextKey{}, ua)
}

// FromContext retrieves a parsed user agent from the context
func FromContext(ctx context.Context) (UserAgent, bool) {
	ua, ok := ctx.Value(uaContextKey{}).(UserAgent)
	return ua, ok
}

// MustFromContext retrieves a parsed user agent from the context or panics
func MustFromContext(ctx context.Context) UserAgent {
	ua, ok := FromContext(ctx)
	if !ok {
		panic("useragent: not found in context")
	}
	return ua
}
