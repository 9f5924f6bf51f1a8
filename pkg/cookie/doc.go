// Package cookie provides tamper-evident HTTP cookies for net/http services.
//
// It distinguishes two kinds of cookies on the wire. Plain cookies travel
// as-is. Signed cookies carry an HMAC-SHA256 tag and live in a reserved name
// namespace: every signed cookie's name starts with "s.". The prefix is
// managed entirely by this package — callers always work with bare names,
// and the writers reject any attempt to cross the namespace boundary.
//
// # Overview
//
// The `Manager` type is the entry point. It is initialised with zero or more
// secret keys and a set of default cookie `Options`. With no secret, signed
// cookies are disabled: writing one fails and inbound signed cookies are
// ignored. With several secrets, the first signs new cookies and all of them
// are accepted on verification, which allows key rotation without logging
// users out.
//
// Once created you can:
//
//   • Set(), Get(), Delete() – plain cookies
//   • SetSigned(), GetSigned() – signed cookies (integrity only)
//   • Middleware(), Partition() – per-request trusted/untrusted cookie maps
//
// # Wire format
//
// A signed cookie value is "<plaintext>.<tag>" where the tag is the
// base64url-encoded HMAC-SHA256 of the plaintext. The tag alphabet contains
// no dot, so the value is split on the last dot on the way back in. Tags are
// compared in constant time; a naive byte-by-byte comparison would leak
// timing information about the expected tag.
//
// # Middleware
//
// Middleware parses the Cookie header once per request and partitions it
// into a `Jar` with two disjoint maps: `Unsigned` (everything outside the
// signed namespace, verbatim) and `Signed` (prefix-stripped names mapped to
// verified plaintext). A cookie whose signature does not verify is dropped
// before handlers ever see it — a request with a forged cookie behaves
// exactly like a request where that cookie was never sent. The jar is
// reachable downstream via FromContext.
//
//	man, _ := cookie.New([]string{os.Getenv("COOKIE_SECRET")})
//
//	mux := http.NewServeMux()
//	mux.HandleFunc("/me", func(w http.ResponseWriter, r *http.Request) {
//	    jar := cookie.MustFromContext(r.Context())
//	    if uid, ok := jar.GetSigned("session"); ok {
//	        _ = uid // trusted: signature verified
//	    }
//	})
//
//	http.ListenAndServe(":8080", man.Middleware(mux))
//
// # Error Handling
//
// Inbound failures (malformed headers, bad signatures) are absorbed and
// never surface to handlers. Outbound failures are programming errors and
// fail fast: `ErrReservedName` when a name crosses the "s." namespace in
// either direction, `ErrSigningDisabled` when signing is attempted without
// a secret. All sentinels support `errors.Is`.
//
// # Configuration
//
// The `Config` struct allows the manager to be constructed from environment
// variables via github.com/caarlos0/env. An empty COOKIE_SECRETS is a valid
// configuration meaning "signed cookies disabled".
//
//	cfg := cookie.DefaultConfig()
//	_ = env.Parse(&cfg)
//	man, _ := cookie.NewFromConfig(cfg)
package cookie
