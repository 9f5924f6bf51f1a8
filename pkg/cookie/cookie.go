package cookie

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"
)

const (
	minSecretLength = 32

	// SignedPrefix marks a cookie name as carrying a signed value on the
	// wire. Application code must never use it on plain cookies; the
	// writers enforce this in both directions.
	SignedPrefix = "s."
)

type Manager struct {
	secrets  []string
	defaults Options
}

// New creates a cookie manager. An empty secret list is valid and disables
// signed-cookie support: SetSigned fails with ErrSigningDisabled and the
// partitioner leaves the signed map empty. Non-empty secrets must be at
// least 32 characters. The first secret signs new cookies; the rest are
// accepted on verification to support key rotation.
func New(secrets []string, opts ...Option) (*Manager, error) {
	secrets = slices.DeleteFunc(slices.Clone(secrets), func(s string) bool { return s == "" })

	for i, s := range secrets {
		if len(s) < minSecretLength {
			return nil, fmt.Errorf("%w: secret %d has %d chars, need at least %d", ErrSecretTooShort, i, len(s), minSecretLength)
		}
	}

	defaults := Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	defaults = applyOptions(defaults, opts)

	return &Manager{
		secrets:  secrets,
		defaults: defaults,
	}, nil
}

// SigningEnabled reports whether a signing secret is configured.
func (m *Manager) SigningEnabled() bool {
	return len(m.secrets) > 0
}

// Set writes a plain cookie. Names inside the signed namespace are rejected
// with ErrReservedName so an unsigned cookie can never masquerade as a
// signed one.
func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) error {
	if strings.HasPrefix(name, SignedPrefix) {
		return fmt.Errorf("%w: %q collides with the signed namespace", ErrReservedName, name)
	}

	options := applyOptions(m.defaults, opts)
	http.SetCookie(w, newCookie(name, value, options))
	return nil
}

// SetSigned signs value and writes it under the prefixed name. The caller
// supplies the bare name; passing a name that already carries the prefix is
// a programming error and fails with ErrReservedName.
func (m *Manager) SetSigned(w http.ResponseWriter, name, value string, opts ...Option) error {
	if strings.HasPrefix(name, SignedPrefix) {
		return fmt.Errorf("%w: %q already carries the %q prefix", ErrReservedName, name, SignedPrefix)
	}
	if !m.SigningEnabled() {
		return ErrSigningDisabled
	}

	options := applyOptions(m.defaults, opts)
	http.SetCookie(w, newCookie(SignedPrefix+name, m.sign(value), options))
	return nil
}

// Get returns the value of a plain request cookie.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return c.Value, nil
}

// GetSigned returns the verified value of a signed request cookie. The bare
// name is expected; the prefix is added internally. A missing cookie yields
// ErrCookieNotFound, a forged or corrupted one ErrInvalidSignature.
func (m *Manager) GetSigned(r *http.Request, name string) (string, error) {
	if !m.SigningEnabled() {
		return "", ErrSigningDisabled
	}

	wire, err := m.Get(r, SignedPrefix+name)
	if err != nil {
		return "", err
	}

	return m.verify(wire)
}

// Delete expires the plain and signed variants of name, but only those the
// client actually sent on this request. Deleting a cookie that was never
// present is a no-op. A name present in both variants produces two expiry
// headers.
func (m *Manager) Delete(w http.ResponseWriter, r *http.Request, name string) {
	jar, ok := FromContext(r.Context())
	if !ok {
		jar = m.Partition(r.Cookies())
	}

	if _, ok := jar.Unsigned[name]; ok {
		m.expire(w, name)
	}
	if _, ok := jar.Signed[name]; ok {
		m.expire(w, SignedPrefix+name)
	}
}

func (m *Manager) expire(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:        name,
		Value:       "",
		Path:        m.defaults.Path,
		Domain:      m.defaults.Domain,
		MaxAge:      -1,
		Expires:     time.Unix(0, 0),
		Secure:      m.defaults.Secure,
		HttpOnly:    m.defaults.HttpOnly,
		SameSite:    m.defaults.SameSite,
		Partitioned: m.defaults.Partitioned,
	})
}

func newCookie(name, value string, options Options) *http.Cookie {
	return &http.Cookie{
		Name:        name,
		Value:       value,
		Path:        options.Path,
		Domain:      options.Domain,
		MaxAge:      options.MaxAge,
		Secure:      options.Secure,
		HttpOnly:    options.HttpOnly,
		SameSite:    options.SameSite,
		Partitioned: options.Partitioned,
	}
}
