package useragent

import "strings"

// Keyword lists for device classification. Bot keywords cover crawlers,
// social media preview fetchers and monitoring tools.
var (
	botKeywords     = []string{"bot", "spider", "crawler", "slurp", "archiver", "lighthouse", "facebookexternalhit", "whatsapp", "telegram", "slack", "monitor", "validator", "fetcher", "scraper"}
	tvKeywords      = []string{"smart-tv", "smarttv", "googletv", "appletv", "android tv", "webos", "tizen"}
	consoleKeywords = []string{"playstation", "xbox", "nintendo"}
	tabletKeywords  = []string{"tablet", "kindle", "silk"}
	mobileKeywords  = []string{"mobile", "iphone", "windows phone", "iemobile", "blackberry", "nokia"}
	desktopKeywords = []string{"windows", "macintosh", "mac os x", "linux", "x11", "cros", "ubuntu", "fedora", "debian"}
)

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// detectDeviceType classifies the device from a lowercased UA string.
// iOS identifiers are unambiguous and checked first; Android tablets are
// told apart from phones by the absence of the "mobile" token.
func detectDeviceType(lower string) string {
	if strings.Contains(lower, "ipad") {
		return DeviceTypeTablet
	}
	if strings.Contains(lower, "iphone") {
		return DeviceTypeMobile
	}
	if containsAny(lower, botKeywords) {
		return DeviceTypeBot
	}
	if strings.Contains(lower, "android") {
		if strings.Contains(lower, "mobile") {
			return DeviceTypeMobile
		}
		return DeviceTypeTablet
	}
	if containsAny(lower, tabletKeywords) {
		return DeviceTypeTablet
	}
	if containsAny(lower, mobileKeywords) {
		return DeviceTypeMobile
	}
	if containsAny(lower, tvKeywords) {
		return DeviceTypeTV
	}
	if containsAny(lower, consoleKeywords) {
		return DeviceTypeConsole
	}
	// Windows tablets identify as desktop Windows plus a touch marker.
	if strings.Contains(lower, "windows") && strings.Contains(lower, "touch") {
		return DeviceTypeTablet
	}
	if containsAny(lower, desktopKeywords) {
		return DeviceTypeDesktop
	}
	return DeviceTypeUnknown
}

// Brand markers for handheld devices, ordered by market share.
var handheldBrands = []struct {
	brand    string
	keywords []string
}{
	{"iphone", []string{"iphone"}},
	{"ipad", []string{"ipad"}},
	{"samsung", []string{"samsung", "sm-g", "sm-a", "sm-n", "sm-t", "gt-p"}},
	{"huawei", []string{"huawei", "honor", "mediapad"}},
	{"xiaomi", []string{"xiaomi", "redmi", "miui"}},
	{"kindle", []string{"kindle", "silk", "kftt"}},
	{"surface", []string{"surface"}},
}

// detectDeviceModel identifies the device brand for mobile and tablet
// devices. Other device types have no meaningful model.
func detectDeviceModel(lower, deviceType string) string {
	if deviceType != DeviceTypeMobile && deviceType != DeviceTypeTablet {
		return ""
	}

	for _, b := range handheldBrands {
		if containsAny(lower, b.keywords) {
			return b.brand
		}
	}
	if strings.Contains(lower, "android") {
		return "android"
	}
	return ""
}

// detectOS identifies the operating system. Windows dominates desktop
// traffic and is checked first; iOS before macOS because iPad UAs may
// mention Mac OS X.
func detectOS(lower string) string {
	switch {
	case strings.Contains(lower, "windows"):
		return OSWindows
	case containsAny(lower, []string{"iphone", "ipad", "ipod"}):
		return OSiOS
	case containsAny(lower, []string{"macintosh", "mac os x"}):
		return OSMacOS
	case strings.Contains(lower, "android"):
		return OSAndroid
	case containsAny(lower, []string{"linux", "x11", "cros", "ubuntu", "fedora", "debian"}):
		return OSLinux
	default:
		return OSUnknown
	}
}
