package factories

import (
	"errors"

	"github.com/csf-dev/webdriverext/internal/shared/id"
	"github.com/csf-dev/webdriverext/internal/webdriver"
)

var (
	ErrInvalidArgument         = errors.New("invalid argument")
	ErrUnknownDriverType       = errors.New("unknown driver type")
	ErrUnknownFactoryType      = errors.New("unknown driver factory type")
	ErrUnknownCustomizer       = errors.New("unknown options customizer")
	ErrUnknownConfiguration    = errors.New("unknown driver configuration")
	ErrGridURLRequired         = errors.New("driver type requires a grid url")
	ErrNoSelectedConfiguration = errors.New("no driver configuration is selected")
)

// CreationOptions describe how to create one driver.
type CreationOptions struct {
	// DriverType names a registered driver type, such as "Chromium". It is
	// required unless DriverFactoryType is set.
	DriverType string

	// GridURL is the remote endpoint to connect to, for driver types which
	// need one.
	GridURL string

	// DriverFactoryType names a registered Creator which takes over creation
	// entirely.
	DriverFactoryType string

	// OptionsCustomizer names a registered OptionsCustomizer applied to the
	// driver options before the driver is created.
	OptionsCustomizer string

	AddBrowserIdentification bool
	AddBrowserQuirks         bool

	// Options are the options requested for the session.
	Options webdriver.DriverOptions
}

// NewCreationOptions returns options with browser identification enabled.
func NewCreationOptions() *CreationOptions {
	return &CreationOptions{AddBrowserIdentification: true}
}

// OptionsCollection holds named driver configurations.
type OptionsCollection struct {
	SelectedConfiguration string
	DriverConfigurations  map[string]*CreationOptions
}

// Names returns the configuration names, sorted.
func (c *OptionsCollection) Names() []string {
	return sortedKeys(c.DriverConfigurations)
}

// DriverAndOptions is a created driver together with the options it was
// actually created with.
type DriverAndOptions struct {
	WebDriver     webdriver.WebDriver
	DriverOptions *webdriver.DriverOptions
	CreationID    id.CreationID
}
