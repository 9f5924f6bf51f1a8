package cookie_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jamesbradlee/fresj/pkg/cookie"
)

const (
	testSecret    = "this-is-a-very-long-secret-key-32-chars-long"
	rotatedSecret = "this-is-old-very-long-secret-key-32-chars-ok"
	otherSecret   = "another-totally-different-secret-key-32-chars"
)

// signValue reproduces the wire format independently of the package under
// test so that format drift shows up as a test failure.
func signValue(secret, value string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(value))
	return value + "." + base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// requestWithCookies builds a request carrying the cookies a recorder wrote.
func requestWithCookies(w *httptest.ResponseRecorder) *http.Request {
	r := &http.Request{Header: http.Header{}}
	for _, c := range w.Result().Cookies() {
		r.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value})
	}
	return r
}

func TestNew(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		secrets []string
		wantErr error
	}{
		{
			name:    "no secrets is valid and disables signing",
			secrets: nil,
			wantErr: nil,
		},
		{
			name:    "blank secrets collapse to disabled",
			secrets: []string{"", ""},
			wantErr: nil,
		},
		{
			name:    "secret too short",
			secrets: []string{"short"},
			wantErr: cookie.ErrSecretTooShort,
		},
		{
			name:    "valid secret",
			secrets: []string{testSecret},
			wantErr: nil,
		},
		{
			name:    "multiple secrets for rotation",
			secrets: []string{testSecret, rotatedSecret},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m, err := cookie.New(tt.secrets)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && m == nil {
				t.Error("New() returned nil manager without error")
			}
		})
	}
}

func TestNew_SigningEnabled(t *testing.T) {
	t.Parallel()

	enabled, _ := cookie.New([]string{testSecret})
	if !enabled.SigningEnabled() {
		t.Error("SigningEnabled() = false with a configured secret")
	}

	disabled, _ := cookie.New(nil)
	if disabled.SigningEnabled() {
		t.Error("SigningEnabled() = true without a secret")
	}
}

func TestManager_SetGet(t *testing.T) {
	t.Parallel()
	m, _ := cookie.New([]string{testSecret})

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"simple", "test", "value"},
		{"empty value", "empty", ""},
		{"value with dots", "dotted", "a.b.c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := httptest.NewRecorder()

			if err := m.Set(w, tt.key, tt.value); err != nil {
				t.Fatalf("Set() error = %v", err)
			}

			got, err := m.Get(requestWithCookies(w), tt.key)
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if got != tt.value {
				t.Errorf("Get() = %q, want %q", got, tt.value)
			}
		})
	}
}

func TestManager_Get_NotFound(t *testing.T) {
	t.Parallel()
	m, _ := cookie.New([]string{testSecret})

	r := &http.Request{Header: http.Header{}}
	if _, err := m.Get(r, "absent"); !errors.Is(err, cookie.ErrCookieNotFound) {
		t.Errorf("Get() error = %v, want ErrCookieNotFound", err)
	}
}

func TestManager_SetGetSigned_RoundTrip(t *testing.T) {
	t.Parallel()
	m, _ := cookie.New([]string{testSecret})

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"simple", "session", "user-42"},
		{"empty value", "flag", ""},
		{"value with dots", "version", "1.2.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := httptest.NewRecorder()

			if err := m.SetSigned(w, tt.key, tt.value); err != nil {
				t.Fatalf("SetSigned() error = %v", err)
			}

			got, err := m.GetSigned(requestWithCookies(w), tt.key)
			if err != nil {
				t.Fatalf("GetSigned() error = %v", err)
			}
			if got != tt.value {
				t.Errorf("GetSigned() = %q, want %q", got, tt.value)
			}
		})
	}
}

func TestManager_SetSigned_WireFormat(t *testing.T) {
	t.Parallel()
	m, _ := cookie.New([]string{testSecret})

	w := httptest.NewRecorder()
	if err := m.SetSigned(w, "session", "user-42"); err != nil {
		t.Fatalf("SetSigned() error = %v", err)
	}

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("got %d cookies, want 1", len(cookies))
	}
	if cookies[0].Name != "s.session" {
		t.Errorf("cookie name = %q, want %q", cookies[0].Name, "s.session")
	}
	if want := signValue(testSecret, "user-42"); cookies[0].Value != want {
		t.Errorf("cookie value = %q, want %q", cookies[0].Value, want)
	}
}

func TestManager_SignedTamperDetection(t *testing.T) {
	t.Parallel()
	m, _ := cookie.New([]string{testSecret})

	wire := signValue(testSecret, "original")
	idx := strings.LastIndex(wire, ".")

	tests := []struct {
		name    string
		value   string
		wantErr error
	}{
		{"tampered payload", "tampered" + wire[idx:], cookie.ErrInvalidSignature},
		{"tampered tag", wire[:idx] + ".AAAA" + wire[idx+5:], cookie.ErrInvalidSignature},
		{"signed with another key", signValue(otherSecret, "original"), cookie.ErrInvalidSignature},
		{"no delimiter", "plainvalue", cookie.ErrInvalidFormat},
		{"empty tag", "original.", cookie.ErrInvalidFormat},
		{"arbitrary garbage", "invalid_signed_value", cookie.ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := &http.Request{Header: http.Header{}}
			r.AddCookie(&http.Cookie{Name: "s.session", Value: tt.value})

			got, err := m.GetSigned(r, "session")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("GetSigned() error = %v, want %v", err, tt.wantErr)
			}
			if got != "" {
				t.Errorf("GetSigned() leaked value %q from unverified cookie", got)
			}
		})
	}
}

func TestManager_SignedKeyRotation(t *testing.T) {
	t.Parallel()

	// Cookie signed with the old key must verify while both keys are live.
	m, _ := cookie.New([]string{testSecret, rotatedSecret})

	r := &http.Request{Header: http.Header{}}
	r.AddCookie(&http.Cookie{Name: "s.session", Value: signValue(rotatedSecret, "user-42")})

	got, err := m.GetSigned(r, "session")
	if err != nil {
		t.Fatalf("GetSigned() error = %v", err)
	}
	if got != "user-42" {
		t.Errorf("GetSigned() = %q, want %q", got, "user-42")
	}
}

func TestManager_ReservedName(t *testing.T) {
	t.Parallel()
	m, _ := cookie.New([]string{testSecret})

	w := httptest.NewRecorder()

	if err := m.Set(w, "s.foo", "value"); !errors.Is(err, cookie.ErrReservedName) {
		t.Errorf("Set(s.foo) error = %v, want ErrReservedName", err)
	}
	if err := m.SetSigned(w, "s.foo", "value"); !errors.Is(err, cookie.ErrReservedName) {
		t.Errorf("SetSigned(s.foo) error = %v, want ErrReservedName", err)
	}
	if got := w.Header().Values("Set-Cookie"); len(got) != 0 {
		t.Errorf("rejected writes still produced %d Set-Cookie headers", len(got))
	}
}

func TestManager_SetSigned_Disabled(t *testing.T) {
	t.Parallel()
	m, _ := cookie.New(nil)

	w := httptest.NewRecorder()
	if err := m.SetSigned(w, "session", "value"); !errors.Is(err, cookie.ErrSigningDisabled) {
		t.Errorf("SetSigned() error = %v, want ErrSigningDisabled", err)
	}
}

func TestManager_SetOptions(t *testing.T) {
	t.Parallel()
	m, _ := cookie.New([]string{testSecret}, cookie.WithSecure(true), cookie.WithDomain("example.com"))

	w := httptest.NewRecorder()
	if err := m.Set(w, "theme", "dark", cookie.WithMaxAge(3600), cookie.WithPath("/app")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	c := w.Result().Cookies()[0]
	if !c.Secure {
		t.Error("Secure default not applied")
	}
	if c.Domain != "example.com" {
		t.Errorf("Domain = %q, want %q", c.Domain, "example.com")
	}
	if c.MaxAge != 3600 {
		t.Errorf("MaxAge = %d, want 3600", c.MaxAge)
	}
	if c.Path != "/app" {
		t.Errorf("Path = %q, want %q", c.Path, "/app")
	}
}
