package useragent

import "net/http"

// Middleware parses the User-Agent header and attaches the result to the
// request context. Requests without the header pass through untouched;
// parsing is best-effort and never fails the request.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua, err := Parse(r.UserAgent())
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserAgent(r.Context(), ua)))
	})
}
