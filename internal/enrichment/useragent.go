package enrichment

import (
	"github.com/mssola/user_agent"
)

type UAInfo struct {
	Browser    string
	OS         string
	DeviceType string
}

// ParseUserAgent classifies the user-agent header of an auth attempt. Scripted
// clients hitting /signup and /login often send no header at all; those
// classify as unknown rather than polluting the browser breakdown with blanks.
func ParseUserAgent(uaString string) *UAInfo {
	if uaString == "" {
		return &UAInfo{
			Browser:    "unknown",
			OS:         "unknown",
			DeviceType: "unknown",
		}
	}

	ua := user_agent.New(uaString)

	browser, _ := ua.Browser()
	if browser == "" {
		browser = "unknown"
	}

	os := ua.OS()
	if os == "" {
		os = "unknown"
	}

	return &UAInfo{
		Browser:    browser,
		OS:         os,
		DeviceType: classifyDevice(ua),
	}
}

// classifyDevice buckets the client for the device breakdown. Bots are worth
// separating: a burst of login_failed events from bots reads very differently
// from the same burst off desktops.
func classifyDevice(ua *user_agent.UserAgent) string {
	switch {
	case ua.Bot():
		return "bot"
	case ua.Mobile():
		return "mobile"
	default:
		return "desktop"
	}
}
