package proxies

import (
	"reflect"
	"sort"

	"github.com/csf-dev/webdriverext/internal/identification"
	"github.com/csf-dev/webdriverext/internal/quirks"
	"github.com/csf-dev/webdriverext/internal/webdriver"
)

// augmented is implemented by every proxy type.
type augmented interface {
	target() webdriver.WebDriver
	capabilities() map[reflect.Type]struct{}
}

// proxy forwards WebDriver calls to the wrapped session and serves extra
// interface accessors from its interceptors.
type proxy struct {
	webdriver.WebDriver

	interfaces   map[reflect.Type]struct{}
	interceptors map[reflect.Type]Interceptor
}

func (p *proxy) target() webdriver.WebDriver { return p.WebDriver }

func (p *proxy) capabilities() map[reflect.Type]struct{} { return p.interfaces }

func (p *proxy) intercept(iface reflect.Type, member string) (any, bool) {
	i, ok := p.interceptors[iface]
	if !ok {
		return nil, false
	}
	return i.Intercept(member)
}

// unproxyingProxy adds HasUnproxiedWebDriver.
type unproxyingProxy struct {
	*proxy
}

func (p unproxyingProxy) UnproxiedWebDriver() webdriver.WebDriver {
	if v, ok := p.intercept(unproxiedType, UnproxiedWebDriverMember); ok {
		if d, ok := v.(webdriver.WebDriver); ok {
			return d
		}
	}
	return p.WebDriver
}

// identifiedProxy adds identification.HasBrowserID.
type identifiedProxy struct {
	unproxyingProxy
}

func (p identifiedProxy) BrowserID() identification.BrowserID {
	if v, ok := p.intercept(browserIDType, BrowserIDMember); ok {
		if id, ok := v.(identification.BrowserID); ok {
			return id
		}
	}
	if h, ok := p.WebDriver.(identification.HasBrowserID); ok {
		return h.BrowserID()
	}
	return identification.BrowserID{}
}

// quirkyProxy adds quirks.HasQuirks.
type quirkyProxy struct {
	identifiedProxy
}

func (p quirkyProxy) AllQuirks() []string {
	return p.quirks().AllQuirks()
}

func (p quirkyProxy) HasQuirk(name string) bool {
	return p.quirks().HasQuirk(name)
}

func (p quirkyProxy) quirks() quirks.HasQuirks {
	if v, ok := p.intercept(quirksType, AllQuirksMember); ok {
		if s, ok := v.(quirks.Set); ok {
			return s
		}
	}
	if h, ok := p.WebDriver.(quirks.HasQuirks); ok {
		return h
	}
	return quirks.NewSet()
}

var (
	_ HasUnproxiedWebDriver       = unproxyingProxy{}
	_ webdriver.Unwrapper         = unproxyingProxy{}
	_ identification.HasBrowserID = identifiedProxy{}
	_ quirks.HasQuirks            = quirkyProxy{}
)

// Unproxy returns the session wrapped by a proxy. Any other session is
// returned unchanged.
func Unproxy(driver webdriver.WebDriver) webdriver.WebDriver {
	if h, ok := driver.(HasUnproxiedWebDriver); ok {
		return h.UnproxiedWebDriver()
	}
	return driver
}

// As returns driver as T. For a proxy, T may be one of the extra interfaces
// the proxy implements or any capability interface of the wrapped session.
func As[T any](driver webdriver.WebDriver) (T, bool) {
	if t, ok := driver.(T); ok {
		return t, true
	}

	var zero T
	p, ok := driver.(augmented)
	if !ok {
		return zero, false
	}
	if _, ok := p.capabilities()[reflect.TypeOf((*T)(nil)).Elem()]; !ok {
		return zero, false
	}
	return As[T](p.target())
}

// Interfaces lists the capability interfaces a session provides, including
// the wrapped session's interfaces when driver is a proxy. The result is
// sorted by name.
func Interfaces(driver webdriver.WebDriver) []reflect.Type {
	if driver == nil {
		return nil
	}

	set := make(map[reflect.Type]struct{})
	if p, ok := driver.(augmented); ok {
		for iface := range p.capabilities() {
			set[iface] = struct{}{}
		}
	}
	for _, iface := range webdriver.Interfaces(driver) {
		set[iface] = struct{}{}
	}
	for _, iface := range []reflect.Type{unproxiedType, browserIDType, quirksType} {
		if reflect.TypeOf(driver).Implements(iface) {
			set[iface] = struct{}{}
		}
	}

	out := make([]reflect.Type, 0, len(set))
	for iface := range set {
		out = append(out, iface)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// BrowserIDOf returns the browser identity of a session, if it has one.
func BrowserIDOf(driver webdriver.WebDriver) (identification.BrowserID, bool) {
	h, ok := As[identification.HasBrowserID](driver)
	if !ok {
		return identification.BrowserID{}, false
	}
	return h.BrowserID(), true
}

// HasQuirk reports whether a session is known to be affected by the named
// quirk. Sessions without quirks information have no quirks.
func HasQuirk(driver webdriver.WebDriver, name string) bool {
	h, ok := As[quirks.HasQuirks](driver)
	return ok && h.HasQuirk(name)
}
