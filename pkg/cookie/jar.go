package cookie

import (
	"net/http"
	"strings"
)

// Jar holds the cookies of a single request, partitioned by trust. Unsigned
// holds plain cookies verbatim; Signed holds only values whose signature
// verified, keyed by the bare name (prefix stripped). The two maps are
// disjoint by construction. A Jar is built once per request and must not be
// shared across requests.
type Jar struct {
	Unsigned map[string]string
	Signed   map[string]string
}

// Get returns a plain cookie value from the jar.
func (j *Jar) Get(name string) (string, bool) {
	v, ok := j.Unsigned[name]
	return v, ok
}

// GetSigned returns a verified signed cookie value from the jar.
func (j *Jar) GetSigned(name string) (string, bool) {
	v, ok := j.Signed[name]
	return v, ok
}

// Partition classifies request cookies into a Jar. Cookies in the signed
// namespace are verified; the ones that fail are dropped silently, so a
// forged cookie is indistinguishable from an absent one. Without a
// configured secret, signed cookies are inert and skipped entirely. Later
// duplicates overwrite earlier ones, matching plain map insertion order.
func (m *Manager) Partition(cookies []*http.Cookie) *Jar {
	jar := &Jar{
		Unsigned: make(map[string]string),
		Signed:   make(map[string]string),
	}

	for _, c := range cookies {
		if c.Name == "" {
			continue
		}

		if strings.HasPrefix(c.Name, SignedPrefix) {
			if !m.SigningEnabled() {
				continue
			}
			name := strings.TrimPrefix(c.Name, SignedPrefix)
			if name == "" {
				continue
			}
			value, err := m.verify(c.Value)
			if err != nil {
				continue
			}
			jar.Signed[name] = value
			continue
		}

		jar.Unsigned[c.Name] = c.Value
	}

	return jar
}
