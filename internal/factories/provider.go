package factories

import (
	"context"
	"fmt"

	"github.com/csf-dev/webdriverext/internal/webdriver"
)

// Provider creates drivers from named configurations.
type Provider struct {
	creator Creator
	options *OptionsCollection
}

// NewProvider creates a provider.
func NewProvider(creator Creator, options *OptionsCollection) *Provider {
	if options == nil {
		options = &OptionsCollection{}
	}
	return &Provider{creator: creator, options: options}
}

// Options returns the configurations the provider creates drivers from.
func (p *Provider) Options() *OptionsCollection {
	return p.options
}

// GetDefaultWebDriver creates a driver from the selected configuration.
func (p *Provider) GetDefaultWebDriver(ctx context.Context, supplementary func(*webdriver.DriverOptions)) (*DriverAndOptions, error) {
	if p.options.SelectedConfiguration == "" {
		return nil, ErrNoSelectedConfiguration
	}
	return p.GetWebDriver(ctx, p.options.SelectedConfiguration, supplementary)
}

// GetWebDriver creates a driver from the named configuration.
func (p *Provider) GetWebDriver(ctx context.Context, name string, supplementary func(*webdriver.DriverOptions)) (*DriverAndOptions, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: configuration name must not be empty", ErrInvalidArgument)
	}
	opts, ok := p.options.DriverConfigurations[name]
	if !ok || opts == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownConfiguration, name)
	}
	return p.creator.GetWebDriver(ctx, opts, supplementary)
}
