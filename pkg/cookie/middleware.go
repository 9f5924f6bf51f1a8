package cookie

import (
	"net/http"
)

// Middleware partitions the request cookies into a Jar and attaches it to
// the request context for downstream handlers. Parsing and verification
// failures are absorbed here: a malformed header or a forged signature
// never fails the request, it only shrinks the jar.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jar := m.Partition(r.Cookies())
		next.ServeHTTP(w, r.WithContext(WithJar(r.Context(), jar)))
	})
}
