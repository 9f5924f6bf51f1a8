package cookie

import "context"

type jarContextKey struct{}

// WithJar adds a cookie jar to the context
func WithJar(ctx context.Context, jar *Jar) context.Context {
	return context.WithValue(ctx, jarContextKey{}, jar)
}

// FromContext retrieves the cookie jar from the context
func FromContext(ctx context.Context) (*Jar, bool) {
	jar, ok := ctx.Value(jarContextKey{}).(*Jar)
	return jar, ok
}

// MustFromContext retrieves the cookie jar from the context or panics
func MustFromContext(ctx context.Context) *Jar {
	jar, ok := FromContext(ctx)
	if !ok {
		panic("cookie: jar not found in context")
	}
	return jar
}
