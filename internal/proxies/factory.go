package proxies

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/csf-dev/webdriverext/internal/monitoring"
	"github.com/csf-dev/webdriverext/internal/quirks"
	"github.com/csf-dev/webdriverext/internal/webdriver"
	"go.uber.org/zap"
)

// Factory wraps sessions in proxies which add identity, quirks and unproxy
// capabilities.
type Factory struct {
	augmenters []Augmenter
	logger     *zap.Logger
	metrics    *monitoring.Metrics
}

// NewFactory creates a proxy factory with the built-in augmenters. ids and
// resolver are only needed when identification or quirks are requested;
// logger and metrics may be nil.
func NewFactory(ids BrowserIDGetter, resolver quirks.Resolver, logger *zap.Logger, metrics *monitoring.Metrics) *Factory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Factory{
		// Quirks resolution reads the BrowserID set by the identification
		// augmenter, so the order here must not change.
		augmenters: []Augmenter{
			UnproxyingAugmenter{},
			NewIdentificationAugmenter(ids),
			NewQuirksAugmenter(resolver),
		},
		logger:  logger,
		metrics: metrics,
	}
}

// GetProxyWebDriver wraps driver in a proxy. Nothing is returned unless every
// augmenter succeeds.
func (f *Factory) GetProxyWebDriver(driver webdriver.WebDriver, opts *CreationOptions) (webdriver.WebDriver, error) {
	ctx, err := NewCreationContext(driver, opts)
	if err != nil {
		return nil, err
	}

	for _, a := range f.augmenters {
		if err := a.Augment(ctx); err != nil {
			return nil, err
		}
	}

	wrapped, err := generate(ctx)
	if err != nil {
		return nil, err
	}

	label := augmentationLabel(ctx.Extra)
	f.metrics.RecordProxy(label)
	f.logger.Debug("Created proxy web driver",
		zap.String("session", driver.SessionID()),
		zap.String("augmentation", label),
		zap.Int("interfaces", len(ctx.Interfaces)))

	return wrapped, nil
}

// generate builds the proxy type matching the extra interfaces in ctx.
func generate(ctx *CreationContext) (webdriver.WebDriver, error) {
	interceptors := make(map[reflect.Type]Interceptor, len(ctx.Interceptors))
	for _, i := range ctx.Interceptors {
		interceptors[i.Interface()] = i
	}

	base := unproxyingProxy{&proxy{
		WebDriver:    ctx.Driver,
		interfaces:   ctx.Interfaces,
		interceptors: interceptors,
	}}

	unproxy := ctx.HasExtra(unproxiedType)
	identified := ctx.HasExtra(browserIDType)
	quirky := ctx.HasExtra(quirksType)

	switch {
	case len(ctx.Extra) != len(interceptors):
		return nil, fmt.Errorf("%w: %d interfaces but %d interceptors", ErrUnsupportedInterfaces, len(ctx.Extra), len(interceptors))
	case unproxy && identified && quirky && len(ctx.Extra) == 3:
		return quirkyProxy{identifiedProxy{base}}, nil
	case unproxy && identified && !quirky && len(ctx.Extra) == 2:
		return identifiedProxy{base}, nil
	case unproxy && !identified && !quirky && len(ctx.Extra) == 1:
		return base, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedInterfaces, augmentationLabel(ctx.Extra))
	}
}

func augmentationLabel(extra []reflect.Type) string {
	names := make([]string, 0, len(extra))
	for _, t := range extra {
		switch t {
		case unproxiedType:
			names = append(names, "unproxy")
		case browserIDType:
			names = append(names, "identification")
		case quirksType:
			names = append(names, "quirks")
		default:
			names = append(names, t.String())
		}
	}
	return strings.Join(names, "+")
}
