package factories

import (
	"fmt"
	"sort"
	"sync"
)

// TypesProvider looks up driver types, factory types and options
// customizers by name. Driver types are indexed, including their aliases, the
// first time one is looked up; types registered after that are not seen.
type TypesProvider struct {
	registry *Registry

	once    sync.Once
	drivers map[string]*Descriptor
}

// NewTypesProvider creates a provider over a registry.
func NewTypesProvider(r *Registry) *TypesProvider {
	return &TypesProvider{registry: r}
}

var (
	defaultTypes     *TypesProvider
	defaultTypesOnce sync.Once
)

// DefaultTypesProvider returns the process-wide provider over
// DefaultRegistry. Register driver types from init functions so that they are
// in place before it is first used.
func DefaultTypesProvider() *TypesProvider {
	defaultTypesOnce.Do(func() {
		defaultTypes = NewTypesProvider(DefaultRegistry())
	})
	return defaultTypes
}

func (p *TypesProvider) index() map[string]*Descriptor {
	p.once.Do(func() {
		descriptors := p.registry.Descriptors()
		p.drivers = make(map[string]*Descriptor)
		for i := range descriptors {
			p.drivers[key(descriptors[i].Name)] = &descriptors[i]
		}
		// Names win over aliases.
		for i := range descriptors {
			for _, alias := range descriptors[i].Aliases {
				if _, taken := p.drivers[key(alias)]; !taken {
					p.drivers[key(alias)] = &descriptors[i]
				}
			}
		}
	})
	return p.drivers
}

// GetDriverType returns the driver type registered under name or one of its
// aliases. Names are case-insensitive.
func (p *TypesProvider) GetDriverType(name string) (*Descriptor, error) {
	if key(name) == "" {
		return nil, fmt.Errorf("%w: driver type name cannot be empty", ErrInvalidArgument)
	}
	d, ok := p.index()[key(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriverType, name)
	}
	return d, nil
}

// DriverTypes returns the names of every indexed driver type, without
// aliases, sorted.
func (p *TypesProvider) DriverTypes() []string {
	seen := make(map[string]struct{})
	for _, d := range p.index() {
		seen[d.Name] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetFactoryType returns the factory registered under name.
func (p *TypesProvider) GetFactoryType(name string) (Creator, error) {
	c, ok := p.registry.factory(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFactoryType, name)
	}
	return c, nil
}

// GetOptionsCustomizer returns the customizer registered under name.
func (p *TypesProvider) GetOptionsCustomizer(name string) (OptionsCustomizer, error) {
	c, ok := p.registry.customizer(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCustomizer, name)
	}
	return c, nil
}
