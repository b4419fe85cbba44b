package enrichment

import "testing"

func TestParseUserAgent(t *testing.T) {
	tests := []struct {
		name       string
		ua         string
		browser    string
		os         string
		deviceType string
	}{
		{
			name:       "desktop chrome",
			ua:         "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			browser:    "Chrome",
			os:         "Windows 10",
			deviceType: "desktop",
		},
		{
			name:       "mobile safari",
			ua:         "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1",
			browser:    "Safari",
			deviceType: "mobile",
		},
		{
			name:       "bot",
			ua:         "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
			deviceType: "bot",
		},
		{
			name:       "empty header",
			ua:         "",
			browser:    "unknown",
			os:         "unknown",
			deviceType: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := ParseUserAgent(tt.ua)

			if tt.browser != "" && info.Browser != tt.browser {
				t.Errorf("expected browser %q, got %q", tt.browser, info.Browser)
			}
			if tt.os != "" && info.OS != tt.os {
				t.Errorf("expected OS %q, got %q", tt.os, info.OS)
			}
			if info.DeviceType != tt.deviceType {
				t.Errorf("expected device type %q, got %q", tt.deviceType, info.DeviceType)
			}
		})
	}
}

func TestParseUserAgent_NeverEmpty(t *testing.T) {
	// Every field feeds a LowCardinality column; blanks must not reach it.
	for _, ua := range []string{"", "garbage-agent/0.1"} {
		info := ParseUserAgent(ua)
		if info.Browser == "" || info.OS == "" || info.DeviceType == "" {
			t.Errorf("empty field for ua %q: %+v", ua, info)
		}
	}
}
