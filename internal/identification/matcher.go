package identification

import (
	"fmt"
	"strings"
)

// BrowserInfo describes a range of browsers: every version of the named
// browser between MinVersion and MaxVersion inclusive, optionally restricted
// to one platform. Empty optional fields are unbounded.
type BrowserInfo struct {
	Name       string `yaml:"name" toml:"name" json:"name"`
	Platform   string `yaml:"platform,omitempty" toml:"platform,omitempty" json:"platform,omitempty"`
	MinVersion string `yaml:"minVersion,omitempty" toml:"minVersion,omitempty" json:"minVersion,omitempty"`
	MaxVersion string `yaml:"maxVersion,omitempty" toml:"maxVersion,omitempty" json:"maxVersion,omitempty"`
}

func (b BrowserInfo) String() string {
	var sb strings.Builder
	sb.WriteString(b.Name)
	if b.Platform != "" {
		fmt.Fprintf(&sb, " (%s)", b.Platform)
	}
	if b.MinVersion != "" || b.MaxVersion != "" {
		fmt.Fprintf(&sb, " [%s, %s]", orAny(b.MinVersion), orAny(b.MaxVersion))
	}
	return sb.String()
}

func orAny(s string) string {
	if s == "" {
		return "*"
	}
	return s
}

// Matcher decides whether a browser identity falls within a BrowserInfo.
type Matcher interface {
	Matches(id *BrowserID, info *BrowserInfo) (bool, error)
}

// BrowserInfoMatcher is the default Matcher.
type BrowserInfoMatcher struct{}

// NewBrowserInfoMatcher creates a matcher.
func NewBrowserInfoMatcher() *BrowserInfoMatcher {
	return &BrowserInfoMatcher{}
}

// Matches reports whether id is described by info. Names and platforms
// compare case-insensitively. Version bounds are inclusive: a version below
// MinVersion or above MaxVersion does not match.
//
// A Missing identity version sorts after every concrete version, so it
// satisfies any MinVersion but never a MaxVersion.
func (m *BrowserInfoMatcher) Matches(id *BrowserID, info *BrowserInfo) (bool, error) {
	switch {
	case id == nil:
		return false, fmt.Errorf("%w: browser id must not be nil", ErrInvalidArgument)
	case info == nil:
		return false, fmt.Errorf("%w: browser info must not be nil", ErrInvalidArgument)
	case info.Name == "":
		return false, fmt.Errorf("%w: browser info must have a name", ErrInvalidArgument)
	}

	if !strings.EqualFold(id.Name(), info.Name) {
		return false, nil
	}
	if info.Platform != "" && !strings.EqualFold(id.Platform(), info.Platform) {
		return false, nil
	}

	version := id.Version()
	if version == nil {
		version = Missing
	}
	if info.MinVersion != "" && version.Compare(NewVersion(info.MinVersion, "")) < 0 {
		return false, nil
	}
	if info.MaxVersion != "" && version.Compare(NewVersion(info.MaxVersion, "")) > 0 {
		return false, nil
	}
	return true, nil
}
