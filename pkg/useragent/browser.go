package useragent

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Browser holds the detected browser name and version.
type Browser struct {
	Name    string
	Version string
}

// Detection rules in priority order. Chromium-based browsers embed the
// Chrome token, so derived browsers must be checked before Chrome; Chrome
// UAs in turn embed Safari, so Safari goes last.
var browserRules = []struct {
	name   string
	tokens []string
}{
	{BrowserEdge, []string{"edg/", "edge/", "edgios/"}},
	{BrowserOpera, []string{"opr/", "opera/"}},
	{BrowserSamsung, []string{"samsungbrowser/"}},
	{BrowserFirefox, []string{"firefox/", "fxios/"}},
	{BrowserChrome, []string{"chrome/", "crios/"}},
	{BrowserSafari, []string{"safari/"}},
}

func detectBrowser(lower string) Browser {
	for _, rule := range browserRules {
		for _, token := range rule.tokens {
			idx := strings.Index(lower, token)
			if idx < 0 {
				continue
			}

			version := readVersion(lower[idx+len(token):])
			// Safari reports its real version behind a separate token.
			if rule.name == BrowserSafari {
				if v := strings.Index(lower, "version/"); v >= 0 {
					version = readVersion(lower[v+len("version/"):])
				}
			}
			return Browser{Name: rule.name, Version: version}
		}
	}
	return Browser{Name: BrowserUnknown}
}

// readVersion consumes the leading digits-and-dots run of s.
func readVersion(s string) string {
	end := 0
	for end < len(s) && (s[end] == '.' || (s[end] >= '0' && s[end] <= '9')) {
		end++
	}
	return strings.Trim(s[:end], ".")
}

// Well-known bots whose marketing name differs from their UA token.
var botNameOverrides = map[string]string{
	"googlebot":           "Googlebot",
	"bingbot":             "Bingbot",
	"yandexbot":           "Yandexbot",
	"duckduckbot":         "DuckDuckBot",
	"facebookexternalhit": "Facebook",
	"twitterbot":          "Twitterbot",
	"linkedinbot":         "Linkedinbot",
	"slackbot":            "Slackbot",
	"telegrambot":         "Telegrambot",
}

var botNamePattern = regexp.MustCompile(`(?i)([a-z0-9\-_]+(?:bot|spider|crawler))`)

var titleCaser = cases.Title(language.English)

// botName extracts a display name for a bot user agent.
func botName(raw string) string {
	lower := strings.ToLower(raw)

	for keyword, name := range botNameOverrides {
		if strings.Contains(lower, keyword) {
			return name
		}
	}

	if m := botNamePattern.FindStringSubmatch(raw); len(m) > 1 {
		return titleCaser.String(strings.ToLower(m[1]))
	}

	return "Unknown Bot"
}

func titleCase(s string) string {
	if s == "" || s == BrowserUnknown {
		return "Unknown"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
