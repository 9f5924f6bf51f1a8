// Package useragent provides parsing and classification of HTTP User-Agent
// strings, plus a middleware that attaches the result to the request context.
package useragent

import (
	"fmt"
	"strings"
)

// Device type classifications.
const (
	DeviceTypeBot     = "bot"
	DeviceTypeMobile  = "mobile"
	DeviceTypeTablet  = "tablet"
	DeviceTypeDesktop = "desktop"
	DeviceTypeTV      = "tv"
	DeviceTypeConsole = "console"
	DeviceTypeUnknown = "unknown"
)

// Operating system identifiers.
const (
	OSWindows = "windows"
	OSMacOS   = "macos"
	OSiOS     = "ios"
	OSAndroid = "android"
	OSLinux   = "linux"
	OSUnknown = "unknown"
)

// Browser identifiers.
const (
	BrowserChrome  = "chrome"
	BrowserFirefox = "firefox"
	BrowserSafari  = "safari"
	BrowserEdge    = "edge"
	BrowserOpera   = "opera"
	BrowserSamsung = "samsung"
	BrowserUnknown = "unknown"
)

// UserAgent contains the parsed information from a user agent string.
type UserAgent struct {
	raw         string
	deviceType  string
	deviceModel string
	os          string
	browserName string
	browserVer  string
}

// String returns the raw user agent string.
func (ua UserAgent) String() string { return ua.raw }

// DeviceType returns the device type (desktop, mobile, tablet, tv, console, bot, unknown).
func (ua UserAgent) DeviceType() string { return ua.deviceType }

// DeviceModel returns the device brand for mobile and tablet devices, if known.
func (ua UserAgent) DeviceModel() string { return ua.deviceModel }

// OS returns the operating system name.
func (ua UserAgent) OS() string { return ua.os }

// BrowserName returns the browser name.
func (ua UserAgent) BrowserName() string { return ua.browserName }

// BrowserVer returns the browser version.
func (ua UserAgent) BrowserVer() string { return ua.browserVer }

func (ua UserAgent) IsBot() bool     { return ua.deviceType == DeviceTypeBot }
func (ua UserAgent) IsMobile() bool  { return ua.deviceType == DeviceTypeMobile }
func (ua UserAgent) IsTablet() bool  { return ua.deviceType == DeviceTypeTablet }
func (ua UserAgent) IsDesktop() bool { return ua.deviceType == DeviceTypeDesktop }

// IsUnknown returns true when the device type could not be determined.
func (ua UserAgent) IsUnknown() bool {
	return ua.deviceType == "" || ua.deviceType == DeviceTypeUnknown
}

// ShortIdentifier returns a compact human-readable label suitable for
// logging and session listings, e.g. "Chrome/120.0 (Windows, desktop)" or
// "Bot: Googlebot".
func (ua UserAgent) ShortIdentifier() string {
	if ua.IsBot() {
		return "Bot: " + botName(ua.raw)
	}
	if ua.browserName == BrowserUnknown && ua.os == OSUnknown {
		return "Unknown device"
	}

	ver := ua.browserVer
	if ver == "" {
		ver = "?"
	}
	return fmt.Sprintf("%s/%s (%s, %s)", titleCase(ua.browserName), ver, formatOS(ua.os), ua.deviceType)
}

func formatOS(os string) string {
	switch os {
	case OSiOS:
		return "iOS"
	case OSMacOS:
		return "macOS"
	case OSUnknown, "":
		return "Unknown OS"
	default:
		return strings.ToUpper(os[:1]) + os[1:]
	}
}

// Parse classifies a user agent string. An empty input yields
// ErrEmptyUserAgent together with a fully unknown UserAgent; any non-empty
// input is classified best-effort and never fails.
func Parse(ua string) (UserAgent, error) {
	if ua == "" {
		return UserAgent{
			deviceType:  DeviceTypeUnknown,
			os:          OSUnknown,
			browserName: BrowserUnknown,
		}, ErrEmptyUserAgent
	}

	lower := strings.ToLower(ua)
	deviceType := detectDeviceType(lower)
	browser := detectBrowser(lower)

	return UserAgent{
		raw:         ua,
		deviceType:  deviceType,
		deviceModel: detectDeviceModel(lower, deviceType),
		os:          detectOS(lower),
		browserName: browser.Name,
		browserVer:  browser.Version,
	}, nil
}
