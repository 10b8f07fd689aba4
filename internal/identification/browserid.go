package identification

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArgument is returned when a required argument is nil or empty.
var ErrInvalidArgument = errors.New("invalid argument")

// Names used when a session does not report, and was not requested with, a
// browser name or platform.
const (
	UnknownBrowser  = "Unknown browser"
	UnknownPlatform = "Unknown platform"
)

// BrowserID identifies the browser behind a session. It is immutable; the
// zero value is not a valid identity.
type BrowserID struct {
	name     string
	platform string
	version  Version
}

// NewBrowserID creates a browser identity. Name and platform must be
// non-empty and version must not be nil.
func NewBrowserID(name, platform string, version Version) (BrowserID, error) {
	switch {
	case name == "":
		return BrowserID{}, fmt.Errorf("%w: browser name must not be empty", ErrInvalidArgument)
	case platform == "":
		return BrowserID{}, fmt.Errorf("%w: platform must not be empty", ErrInvalidArgument)
	case version == nil:
		return BrowserID{}, fmt.Errorf("%w: version must not be nil", ErrInvalidArgument)
	}
	return BrowserID{name: name, platform: platform, version: version}, nil
}

func (id BrowserID) Name() string     { return id.name }
func (id BrowserID) Platform() string { return id.platform }
func (id BrowserID) Version() Version { return id.version }

// IsValid reports whether id was created by NewBrowserID.
func (id BrowserID) IsValid() bool {
	return id.name != "" && id.platform != "" && id.version != nil
}

// Equal compares name and platform case-insensitively and versions with
// Version.Equal.
func (id BrowserID) Equal(other BrowserID) bool {
	if !strings.EqualFold(id.name, other.name) || !strings.EqualFold(id.platform, other.platform) {
		return false
	}
	if id.version == nil || other.version == nil {
		return id.version == nil && other.version == nil
	}
	return id.version.Equal(other.version)
}

func (id BrowserID) String() string {
	return fmt.Sprintf("%s (%s): %s", id.name, id.platform, id.version)
}

// HasBrowserID is implemented by sessions which know the identity of their
// browser.
type HasBrowserID interface {
	BrowserID() BrowserID
}
