package factories

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/csf-dev/webdriverext/internal/webdriver"
)

// NewDriverFunc creates a driver. driverOpts have already been customized
// and are owned by the callee.
type NewDriverFunc func(ctx context.Context, opts *CreationOptions, driverOpts *webdriver.DriverOptions) (webdriver.WebDriver, error)

// Descriptor describes a driver type which can be selected by name from
// configuration.
type Descriptor struct {
	Name    string
	Aliases []string

	// BrowserName is requested when the configuration does not name a
	// browser.
	BrowserName string

	RequiresGridURL bool
	New             NewDriverFunc
}

// OptionsCustomizer adjusts driver options before a driver is created.
type OptionsCustomizer interface {
	CustomizeOptions(opts *webdriver.DriverOptions)
}

// OptionsCustomizerFunc adapts a function to OptionsCustomizer.
type OptionsCustomizerFunc func(opts *webdriver.DriverOptions)

func (f OptionsCustomizerFunc) CustomizeOptions(opts *webdriver.DriverOptions) { f(opts) }

// Registry holds the driver types, factory types and options customizers
// available to configuration.
type Registry struct {
	drivers     sync.Map
	factories   sync.Map
	customizers sync.Map
}

// NewRegistry creates a new, empty registry
func NewRegistry() *Registry {
	return &Registry{}
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry used by
// DefaultTypesProvider.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// RegisterDriverType adds a driver type
func (r *Registry) RegisterDriverType(d Descriptor) error {
	if d.Name == "" {
		return fmt.Errorf("%w: driver type name cannot be empty", ErrInvalidArgument)
	}
	if d.New == nil {
		return fmt.Errorf("%w: driver type %s has no constructor", ErrInvalidArgument, d.Name)
	}

	d.Aliases = append([]string(nil), d.Aliases...)
	r.drivers.Store(key(d.Name), &d)
	return nil
}

// RegisterFactoryType adds a named factory which creates drivers itself
func (r *Registry) RegisterFactoryType(name string, c Creator) error {
	if name == "" {
		return fmt.Errorf("%w: factory type name cannot be empty", ErrInvalidArgument)
	}
	if c == nil {
		return fmt.Errorf("%w: factory type %s is nil", ErrInvalidArgument, name)
	}
	r.factories.Store(key(name), c)
	return nil
}

// RegisterOptionsCustomizer adds a named options customizer
func (r *Registry) RegisterOptionsCustomizer(name string, c OptionsCustomizer) error {
	if name == "" {
		return fmt.Errorf("%w: customizer name cannot be empty", ErrInvalidArgument)
	}
	if c == nil {
		return fmt.Errorf("%w: customizer %s is nil", ErrInvalidArgument, name)
	}
	r.customizers.Store(key(name), c)
	return nil
}

// Descriptors returns all registered driver types sorted by name
func (r *Registry) Descriptors() []Descriptor {
	var out []Descriptor
	r.drivers.Range(func(_, value interface{}) bool {
		out = append(out, *value.(*Descriptor))
		return true
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (r *Registry) factory(name string) (Creator, bool) {
	val, ok := r.factories.Load(key(name))
	if !ok {
		return nil, false
	}
	return val.(Creator), true
}

func (r *Registry) customizer(name string) (OptionsCustomizer, bool) {
	val, ok := r.customizers.Load(key(name))
	if !ok {
		return nil, false
	}
	return val.(OptionsCustomizer), true
}

// RegisterDriverType adds a driver type to the default registry.
func RegisterDriverType(d Descriptor) error { return defaultRegistry.RegisterDriverType(d) }

// RegisterFactoryType adds a factory type to the default registry.
func RegisterFactoryType(name string, c Creator) error {
	return defaultRegistry.RegisterFactoryType(name, c)
}

// RegisterOptionsCustomizer adds an options customizer to the default
// registry.
func RegisterOptionsCustomizer(name string, c OptionsCustomizer) error {
	return defaultRegistry.RegisterOptionsCustomizer(name, c)
}

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
