package cookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"strings"
)

// sign produces the wire form of a signed cookie value: the plaintext, a dot,
// and the base64url-encoded HMAC-SHA256 tag over the plaintext. The tag
// alphabet contains no dot, so the last dot in the wire value always marks
// the plaintext/tag boundary even when the plaintext itself contains dots.
func (m *Manager) sign(value string) string {
	return value + "." + m.tag(value, m.secrets[0])
}

// verify recovers the plaintext from a signed wire value. It splits on the
// last dot, recomputes the tag for every configured secret (the first secret
// signs, all secrets verify, so old cookies stay valid during key rotation)
// and compares in constant time to avoid a timing oracle.
func (m *Manager) verify(wire string) (string, error) {
	idx := strings.LastIndexByte(wire, '.')
	if idx < 0 || idx == len(wire)-1 {
		return "", ErrInvalidFormat
	}

	value, tag := wire[:idx], wire[idx+1:]

	for _, secret := range m.secrets {
		expected := m.tag(value, secret)
		if subtle.ConstantTimeCompare([]byte(tag), []byte(expected)) == 1 {
			return value, nil
		}
	}

	return "", ErrInvalidSignature
}

func (m *Manager) tag(value, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(value))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
