package proxies

import (
	"reflect"

	"github.com/csf-dev/webdriverext/internal/identification"
	"github.com/csf-dev/webdriverext/internal/quirks"
	"github.com/csf-dev/webdriverext/internal/webdriver"
)

// Interceptor serves the accessor of one extra proxy interface.
type Interceptor interface {
	// Interface is the extra interface this interceptor serves.
	Interface() reflect.Type

	// Intercept returns the value of the named accessor. It returns false
	// for any member it was not built for, in which case the proxy falls
	// back to the wrapped session.
	Intercept(member string) (any, bool)
}

// Accessor names served by the built-in interceptors.
const (
	UnproxiedWebDriverMember = "UnproxiedWebDriver"
	BrowserIDMember          = "BrowserID"
	AllQuirksMember          = "AllQuirks"
)

type unproxyingInterceptor struct {
	driver webdriver.WebDriver
}

func (unproxyingInterceptor) Interface() reflect.Type { return unproxiedType }

func (i unproxyingInterceptor) Intercept(member string) (any, bool) {
	if member != UnproxiedWebDriverMember {
		return nil, false
	}
	return i.driver, true
}

type identificationInterceptor struct {
	id identification.BrowserID
}

func (identificationInterceptor) Interface() reflect.Type { return browserIDType }

func (i identificationInterceptor) Intercept(member string) (any, bool) {
	if member != BrowserIDMember {
		return nil, false
	}
	return i.id, true
}

type quirksInterceptor struct {
	quirks quirks.Set
}

func (quirksInterceptor) Interface() reflect.Type { return quirksType }

func (i quirksInterceptor) Intercept(member string) (any, bool) {
	if member != AllQuirksMember {
		return nil, false
	}
	return i.quirks, true
}
