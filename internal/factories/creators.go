package factories

import (
	"context"
	"errors"
	"fmt"

	"github.com/csf-dev/webdriverext/internal/monitoring"
	"github.com/csf-dev/webdriverext/internal/proxies"
	"github.com/csf-dev/webdriverext/internal/shared/id"
	"github.com/csf-dev/webdriverext/internal/webdriver"
	"go.uber.org/zap"
)

// Creator creates a driver from creation options. supplementary, when not
// nil, may adjust the driver options after any configured customizer.
type Creator interface {
	GetWebDriver(ctx context.Context, opts *CreationOptions, supplementary func(*webdriver.DriverOptions)) (*DriverAndOptions, error)
}

// CreatorFunc adapts a function to Creator.
type CreatorFunc func(ctx context.Context, opts *CreationOptions, supplementary func(*webdriver.DriverOptions)) (*DriverAndOptions, error)

func (f CreatorFunc) GetWebDriver(ctx context.Context, opts *CreationOptions, supplementary func(*webdriver.DriverOptions)) (*DriverAndOptions, error) {
	return f(ctx, opts, supplementary)
}

// ProxyGetter wraps a driver in a proxy.
type ProxyGetter interface {
	GetProxyWebDriver(driver webdriver.WebDriver, opts *proxies.CreationOptions) (webdriver.WebDriver, error)
}

// RegistryFactory creates drivers from the registered driver types.
type RegistryFactory struct {
	types   *TypesProvider
	logger  *zap.Logger
	metrics *monitoring.Metrics
}

// NewRegistryFactory creates a factory. Logger and metrics may be nil.
func NewRegistryFactory(types *TypesProvider, logger *zap.Logger, metrics *monitoring.Metrics) *RegistryFactory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RegistryFactory{types: types, logger: logger, metrics: metrics}
}

func (f *RegistryFactory) GetWebDriver(ctx context.Context, opts *CreationOptions, supplementary func(*webdriver.DriverOptions)) (*DriverAndOptions, error) {
	if opts == nil {
		return nil, fmt.Errorf("%w: creation options must not be nil", ErrInvalidArgument)
	}

	desc, err := f.types.GetDriverType(opts.DriverType)
	if err != nil {
		return nil, err
	}
	if desc.RequiresGridURL && opts.GridURL == "" {
		return nil, fmt.Errorf("%w: %s", ErrGridURLRequired, desc.Name)
	}

	driverOpts := opts.Options.Clone()
	if driverOpts.BrowserName == "" {
		driverOpts.BrowserName = desc.BrowserName
	}
	if opts.OptionsCustomizer != "" {
		customizer, err := f.types.GetOptionsCustomizer(opts.OptionsCustomizer)
		if err != nil {
			return nil, err
		}
		customizer.CustomizeOptions(driverOpts)
	}
	if supplementary != nil {
		supplementary(driverOpts)
	}

	f.logger.Debug("Creating web driver",
		zap.String("driver_type", desc.Name),
		zap.String("browser", driverOpts.BrowserName))

	timer := monitoring.NewTimer(f.metrics, desc.Name)
	driver, err := desc.New(ctx, opts, driverOpts)
	timer.Stop(err)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s driver: %w", desc.Name, err)
	}

	result := &DriverAndOptions{
		WebDriver:     driver,
		DriverOptions: driverOpts,
		CreationID:    id.NewCreationID(),
	}
	f.logger.Info("Driver created",
		zap.Stringer("creation_id", result.CreationID),
		zap.String("driver_type", desc.Name),
		zap.String("session", driver.SessionID()),
		zap.String("grid_url", opts.GridURL))

	return result, nil
}

// ThirdPartyFactory hands creation to a registered factory type when the
// options name one, and to next otherwise.
type ThirdPartyFactory struct {
	next    Creator
	types   *TypesProvider
	logger  *zap.Logger
	metrics *monitoring.Metrics
}

// NewThirdPartyFactory creates a factory. Logger and metrics may be nil.
func NewThirdPartyFactory(next Creator, types *TypesProvider, logger *zap.Logger, metrics *monitoring.Metrics) *ThirdPartyFactory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ThirdPartyFactory{next: next, types: types, logger: logger, metrics: metrics}
}

func (f *ThirdPartyFactory) GetWebDriver(ctx context.Context, opts *CreationOptions, supplementary func(*webdriver.DriverOptions)) (*DriverAndOptions, error) {
	if opts == nil {
		return nil, fmt.Errorf("%w: creation options must not be nil", ErrInvalidArgument)
	}
	if opts.DriverFactoryType == "" {
		return f.next.GetWebDriver(ctx, opts, supplementary)
	}

	f.logger.Debug("Using factory type specified in the configuration",
		zap.String("factory_type", opts.DriverFactoryType))

	factory, err := f.types.GetFactoryType(opts.DriverFactoryType)
	if err != nil {
		return nil, err
	}

	timer := monitoring.NewTimer(f.metrics, opts.DriverFactoryType)
	result, err := factory.GetWebDriver(ctx, opts, supplementary)
	if err == nil && (result == nil || result.WebDriver == nil) {
		err = fmt.Errorf("factory type %s returned no driver", opts.DriverFactoryType)
	}
	timer.Stop(err)
	if err != nil {
		return nil, err
	}

	if result.CreationID == "" {
		result.CreationID = id.NewCreationID()
	}
	if result.DriverOptions == nil {
		result.DriverOptions = opts.Options.Clone()
	}
	f.logger.Info("Driver created via third-party factory",
		zap.Stringer("creation_id", result.CreationID),
		zap.String("factory_type", opts.DriverFactoryType),
		zap.String("session", result.WebDriver.SessionID()))

	return result, nil
}

// ProxyWrappingDecorator wraps created drivers in a proxy when browser
// identification or quirks are requested.
type ProxyWrappingDecorator struct {
	wrapped Creator
	proxies ProxyGetter
	logger  *zap.Logger
}

// NewProxyWrappingDecorator creates a decorator. Logger may be nil.
func NewProxyWrappingDecorator(wrapped Creator, proxyFactory ProxyGetter, logger *zap.Logger) *ProxyWrappingDecorator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProxyWrappingDecorator{wrapped: wrapped, proxies: proxyFactory, logger: logger}
}

// GetWebDriver creates a driver with the wrapped creator and then proxies
// it. If proxying fails the new driver is quit and no driver is returned.
func (d *ProxyWrappingDecorator) GetWebDriver(ctx context.Context, opts *CreationOptions, supplementary func(*webdriver.DriverOptions)) (*DriverAndOptions, error) {
	result, err := d.wrapped.GetWebDriver(ctx, opts, supplementary)
	if err != nil {
		return nil, err
	}

	if !opts.AddBrowserIdentification && !opts.AddBrowserQuirks {
		d.logger.Debug("Skipping proxy, no functionality which requires it is enabled",
			zap.Stringer("creation_id", result.CreationID))
		return result, nil
	}

	proxy, err := d.proxies.GetProxyWebDriver(result.WebDriver, &proxies.CreationOptions{
		DriverOptions:     result.DriverOptions,
		AddIdentification: opts.AddBrowserIdentification,
		AddQuirks:         opts.AddBrowserQuirks,
	})
	if err != nil {
		if quitErr := result.WebDriver.Quit(); quitErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to quit driver: %w", quitErr))
		}
		return nil, fmt.Errorf("failed to proxy driver %s: %w", result.CreationID, err)
	}

	return &DriverAndOptions{
		WebDriver:     proxy,
		DriverOptions: result.DriverOptions,
		CreationID:    result.CreationID,
	}, nil
}

// NewChain assembles the standard creation chain: third-party factories,
// then registered driver types, with proxy wrapping on top.
func NewChain(types *TypesProvider, proxyFactory ProxyGetter, logger *zap.Logger, metrics *monitoring.Metrics) Creator {
	registry := NewRegistryFactory(types, logger, metrics)
	thirdParty := NewThirdPartyFactory(registry, types, logger, metrics)
	return NewProxyWrappingDecorator(thirdParty, proxyFactory, logger)
}
