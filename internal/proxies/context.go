package proxies

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/csf-dev/webdriverext/internal/identification"
	"github.com/csf-dev/webdriverext/internal/quirks"
	"github.com/csf-dev/webdriverext/internal/webdriver"
)

var (
	// ErrInvalidArgument is identification.ErrInvalidArgument, so that callers
	// can check for a precondition failure with one sentinel.
	ErrInvalidArgument = identification.ErrInvalidArgument

	// ErrMissingBrowserID is returned when quirks are requested but no
	// browser identity was resolved before the quirks augmenter ran.
	ErrMissingBrowserID = errors.New("quirks require a browser id")

	// ErrUnsupportedInterfaces is returned when the augmenters produce a set
	// of extra interfaces that no proxy type implements.
	ErrUnsupportedInterfaces = errors.New("unsupported combination of proxy interfaces")
)

// HasUnproxiedWebDriver is implemented by proxies, returning the session
// they wrap.
type HasUnproxiedWebDriver interface {
	UnproxiedWebDriver() webdriver.WebDriver
}

var (
	unproxiedType = reflect.TypeOf((*HasUnproxiedWebDriver)(nil)).Elem()
	browserIDType = reflect.TypeOf((*identification.HasBrowserID)(nil)).Elem()
	quirksType    = reflect.TypeOf((*quirks.HasQuirks)(nil)).Elem()
	webDriverType = reflect.TypeOf((*webdriver.WebDriver)(nil)).Elem()
)

// excluded lists the interfaces never copied from a target into a proxy's
// capability table: WebDriver is always forwarded, and the rest are only
// ever provided by augmenters.
var excluded = map[reflect.Type]struct{}{
	webDriverType: {},
	unproxiedType: {},
	browserIDType: {},
	quirksType:    {},
}

// CreationOptions control which capabilities are added to a proxy. The
// unproxy capability is always added.
type CreationOptions struct {
	// DriverOptions are the options the session was requested with, if
	// known. They are used as a fallback when identifying the browser.
	DriverOptions *webdriver.DriverOptions

	AddIdentification bool
	AddQuirks         bool
}

// CreationContext accumulates the interfaces and interceptors for one proxy.
// A context is created per GetProxyWebDriver call, passed to each augmenter
// in turn and then discarded.
type CreationContext struct {
	Driver  webdriver.WebDriver
	Options *CreationOptions

	// Interfaces are the optional capability interfaces the driver itself
	// implements.
	Interfaces map[reflect.Type]struct{}

	// Extra are the interfaces added by augmenters, in the order added.
	Extra        []reflect.Type
	Interceptors []Interceptor

	// BrowserID is set by the identification augmenter.
	BrowserID *identification.BrowserID
}

// NewCreationContext creates a context for driver, discovering the
// capability interfaces it implements. A proxy contributes the interfaces of
// the session it wraps.
func NewCreationContext(driver webdriver.WebDriver, opts *CreationOptions) (*CreationContext, error) {
	if driver == nil {
		return nil, fmt.Errorf("%w: driver must not be nil", ErrInvalidArgument)
	}
	if opts == nil {
		return nil, fmt.Errorf("%w: creation options must not be nil", ErrInvalidArgument)
	}

	found := webdriver.Interfaces(driver)
	if p, ok := driver.(augmented); ok {
		for iface := range p.capabilities() {
			found = append(found, iface)
		}
	}

	interfaces := make(map[reflect.Type]struct{})
	for _, iface := range found {
		if _, skip := excluded[iface]; skip {
			continue
		}
		interfaces[iface] = struct{}{}
	}

	return &CreationContext{
		Driver:     driver,
		Options:    opts,
		Interfaces: interfaces,
	}, nil
}

// Add records an extra interface together with the interceptor serving it.
// Adding the same interface twice replaces its interceptor.
func (c *CreationContext) Add(interceptor Interceptor) {
	iface := interceptor.Interface()
	for i, existing := range c.Interceptors {
		if existing.Interface() == iface {
			c.Interceptors[i] = interceptor
			return
		}
	}
	c.Extra = append(c.Extra, iface)
	c.Interceptors = append(c.Interceptors, interceptor)
}

// HasExtra reports whether an augmenter has added iface.
func (c *CreationContext) HasExtra(iface reflect.Type) bool {
	for _, t := range c.Extra {
		if t == iface {
			return true
		}
	}
	return false
}
