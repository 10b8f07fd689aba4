package webdriver

import (
	"reflect"
	"sync"
)

// registry lists the optional capability interfaces a session may implement.
// Go cannot enumerate the interfaces a value satisfies, so discovery checks
// the value against this compiled list instead.
var registry = struct {
	mu    sync.RWMutex
	types []reflect.Type
}{
	types: []reflect.Type{
		reflect.TypeOf((*HasCapabilities)(nil)).Elem(),
		reflect.TypeOf((*ExecutesScript)(nil)).Elem(),
		reflect.TypeOf((*TakesScreenshot)(nil)).Elem(),
	},
}

// RegisterInterface adds an optional capability interface to the set that
// Interfaces checks. T must be an interface type.
func RegisterInterface[T any]() {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Kind() != reflect.Interface {
		panic("webdriver: RegisterInterface requires an interface type, got " + t.String())
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()

	for _, existing := range registry.types {
		if existing == t {
			return
		}
	}
	registry.types = append(registry.types, t)
}

// KnownInterfaces returns the registered optional capability interfaces.
func KnownInterfaces() []reflect.Type {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	return append([]reflect.Type(nil), registry.types...)
}

// Interfaces returns every registered interface implemented by target.
func Interfaces(target any) []reflect.Type {
	if target == nil {
		return nil
	}
	tt := reflect.TypeOf(target)

	var found []reflect.Type
	for _, iface := range KnownInterfaces() {
		if tt.Implements(iface) {
			found = append(found, iface)
		}
	}
	return found
}

// Unwrapper is implemented by sessions which wrap another session and
// forward to it.
type Unwrapper interface {
	UnproxiedWebDriver() WebDriver
}

// maxUnwrapDepth bounds As against a wrapper which returns itself.
const maxUnwrapDepth = 16

// As returns driver as T, looking through any wrappers around the session
// until one of them implements T.
func As[T any](driver WebDriver) (T, bool) {
	for depth := 0; driver != nil && depth < maxUnwrapDepth; depth++ {
		if t, ok := driver.(T); ok {
			return t, true
		}
		u, ok := driver.(Unwrapper)
		if !ok {
			break
		}
		driver = u.UnproxiedWebDriver()
	}
	var zero T
	return zero, false
}
