package webdriver

import "errors"

// Well-known capability keys reported by a live session.
const (
	BrowserNameCapability    = "browserName"
	PlatformNameCapability   = "platformName"
	BrowserVersionCapability = "browserVersion"
)

// ErrSessionClosed is returned by drivers whose session has already ended.
var ErrSessionClosed = errors.New("webdriver session is closed")

// WebDriver is an automation session. Implementations are opaque to this
// module; everything beyond this interface is discovered at runtime through
// the optional capability interfaces below.
type WebDriver interface {
	SessionID() string
	Close() error
	Quit() error
}

// HasCapabilities is implemented by sessions which can report the
// capabilities negotiated with the remote end.
type HasCapabilities interface {
	Capabilities() Capabilities
}

// ExecutesScript is implemented by sessions which can run script in the page.
type ExecutesScript interface {
	ExecuteScript(script string, args ...any) (any, error)
}

// TakesScreenshot is implemented by sessions which can capture the viewport.
type TakesScreenshot interface {
	Screenshot() ([]byte, error)
}

// Capabilities is a capability map as reported by a session.
type Capabilities map[string]any

// String returns the capability as a string, or "" when it is missing or
// not a string.
func (c Capabilities) String(key string) string {
	if c == nil {
		return ""
	}
	s, _ := c[key].(string)
	return s
}

// DriverOptions are the options a session was requested with. The browser
// name, platform and version are what was asked for, not necessarily what the
// remote end provided.
type DriverOptions struct {
	BrowserName            string         `yaml:"browserName" toml:"browserName" json:"browserName"`
	PlatformName           string         `yaml:"platformName" toml:"platformName" json:"platformName"`
	BrowserVersion         string         `yaml:"browserVersion" toml:"browserVersion" json:"browserVersion"`
	Arguments              []string       `yaml:"arguments" toml:"arguments" json:"arguments"`
	AdditionalCapabilities map[string]any `yaml:"additionalCapabilities" toml:"additionalCapabilities" json:"additionalCapabilities"`
}

// Clone returns a copy that shares no mutable state with o.
func (o *DriverOptions) Clone() *DriverOptions {
	if o == nil {
		return nil
	}
	clone := *o
	if o.Arguments != nil {
		clone.Arguments = append([]string(nil), o.Arguments...)
	}
	if o.AdditionalCapabilities != nil {
		clone.AdditionalCapabilities = make(map[string]any, len(o.AdditionalCapabilities))
		for k, v := range o.AdditionalCapabilities {
			clone.AdditionalCapabilities[k] = v
		}
	}
	return &clone
}

// ToCapabilities flattens the requested options into a capability map.
func (o *DriverOptions) ToCapabilities() Capabilities {
	caps := Capabilities{}
	if o == nil {
		return caps
	}
	for k, v := range o.AdditionalCapabilities {
		caps[k] = v
	}
	if o.BrowserName != "" {
		caps[BrowserNameCapability] = o.BrowserName
	}
	if o.PlatformName != "" {
		caps[PlatformNameCapability] = o.PlatformName
	}
	if o.BrowserVersion != "" {
		caps[BrowserVersionCapability] = o.BrowserVersion
	}
	return caps
}
