package playwrightdriver

import (
	"context"
	"fmt"
	"sync"

	"github.com/csf-dev/webdriverext/internal/factories"
	"github.com/csf-dev/webdriverext/internal/webdriver"
	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"
)

// Runtime starts the Playwright driver process on first use and shares it
// between every driver type registered against it.
type Runtime struct {
	start  func() (*playwright.Playwright, error)
	logger *zap.Logger

	once sync.Once
	pw   *playwright.Playwright
	err  error
}

// NewRuntime creates a runtime which runs the installed Playwright driver.
func NewRuntime(logger *zap.Logger) *Runtime {
	return NewRuntimeWith(func() (*playwright.Playwright, error) { return playwright.Run() }, logger)
}

// NewRuntimeWith creates a runtime which obtains Playwright from start.
func NewRuntimeWith(start func() (*playwright.Playwright, error), logger *zap.Logger) *Runtime {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runtime{start: start, logger: logger}
}

func (r *Runtime) instance() (*playwright.Playwright, error) {
	r.once.Do(func() {
		r.logger.Debug("Starting playwright")
		r.pw, r.err = r.start()
		if r.err != nil {
			r.err = fmt.Errorf("failed to start playwright: %w", r.err)
		}
	})
	return r.pw, r.err
}

// Stop stops Playwright if it was started.
func (r *Runtime) Stop() error {
	if r.pw == nil {
		return nil
	}
	return r.pw.Stop()
}

type browserKind struct {
	name        string
	aliases     []string
	browserName string
	get         func(*playwright.Playwright) playwright.BrowserType
}

var kinds = []browserKind{
	{"Chromium", []string{"chrome", "msedge"}, "chromium", func(pw *playwright.Playwright) playwright.BrowserType { return pw.Chromium }},
	{"Firefox", []string{"ff"}, "firefox", func(pw *playwright.Playwright) playwright.BrowserType { return pw.Firefox }},
	{"WebKit", []string{"safari"}, "webkit", func(pw *playwright.Playwright) playwright.BrowserType { return pw.WebKit }},
}

// Register adds the Chromium, Firefox and WebKit driver types to r. Each
// connects to the remote Playwright server at the configuration's grid URL.
func Register(r *factories.Registry, rt *Runtime) error {
	for _, kind := range kinds {
		kind := kind
		err := r.RegisterDriverType(factories.Descriptor{
			Name:        kind.name,
			Aliases:     kind.aliases,
			BrowserName: kind.browserName,

			RequiresGridURL: true,
			New: func(ctx context.Context, opts *factories.CreationOptions, driverOpts *webdriver.DriverOptions) (webdriver.WebDriver, error) {
				return rt.newDriver(ctx, kind, opts, driverOpts)
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Runtime) newDriver(ctx context.Context, kind browserKind, opts *factories.CreationOptions, driverOpts *webdriver.DriverOptions) (webdriver.WebDriver, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	pw, err := r.instance()
	if err != nil {
		return nil, err
	}
	browserType := kind.get(pw)
	if browserType == nil {
		return nil, fmt.Errorf("playwright has no %s browser type", kind.name)
	}

	r.logger.Debug("Connecting to playwright server",
		zap.String("browser", kind.name),
		zap.String("grid_url", opts.GridURL))
	if driverOpts == nil {
		driverOpts = &webdriver.DriverOptions{}
	}
	if len(driverOpts.Arguments) > 0 || len(driverOpts.AdditionalCapabilities) > 0 {
		r.logger.Warn("Browser arguments and capabilities are not sent when connecting to a playwright server",
			zap.String("browser", kind.name),
			zap.Strings("arguments", driverOpts.Arguments),
			zap.Int("capabilities", len(driverOpts.AdditionalCapabilities)))
	}

	browser, err := browserType.Connect(opts.GridURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", opts.GridURL, err)
	}
	// A remote server does not report its platform, so the requested one
	// stands in for it.
	return NewDriver(browser, driverOpts.PlatformName), nil
}
