package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/csf-dev/webdriverext/internal/config"
	"github.com/csf-dev/webdriverext/internal/factories"
	"github.com/csf-dev/webdriverext/internal/identification"
	"github.com/csf-dev/webdriverext/internal/logging"
	"github.com/csf-dev/webdriverext/internal/monitoring"
	"github.com/csf-dev/webdriverext/internal/playwrightdriver"
	"github.com/csf-dev/webdriverext/internal/proxies"
	"github.com/csf-dev/webdriverext/internal/quirks"
	"github.com/csf-dev/webdriverext/internal/shared/formats"
	"go.uber.org/zap"
)

// app holds what every command shares. Quirks data and driver
// configurations are loaded on first use.
type app struct {
	cfg     *config.Config
	format  formats.Format
	out     io.Writer
	logger  *logging.Logger
	metrics *monitoring.Metrics

	types   *factories.TypesProvider
	runtime *playwrightdriver.Runtime

	quirksData *quirks.Data
}

func newApp(cfg *config.Config, format formats.Format, out io.Writer) (*app, error) {
	logger, err := logging.New(logging.ConfigFor(cfg.Logging.Level, cfg.Logging.Development))
	if err != nil {
		return nil, err
	}

	registry := factories.NewRegistry()
	runtime := playwrightdriver.NewRuntime(logger.Component("playwright"))
	if err := playwrightdriver.Register(registry, runtime); err != nil {
		return nil, err
	}

	return &app{
		cfg:     cfg,
		format:  format,
		out:     out,
		logger:  logger,
		metrics: monitoring.NewMetrics(nil),
		types:   factories.NewTypesProvider(registry),
		runtime: runtime,
	}, nil
}

// loadQuirks reads the quirks file over the data matched by the quirks glob.
func (a *app) loadQuirks() (*quirks.Data, error) {
	if a.quirksData != nil {
		return a.quirksData, nil
	}

	var configured, shipped *quirks.Data
	if a.cfg.Quirks.File != "" {
		d, err := quirks.LoadFile(a.cfg.Quirks.File)
		if err != nil {
			return nil, err
		}
		configured = d
	}
	if a.cfg.Quirks.Glob != "" {
		d, err := quirks.LoadGlob(os.DirFS(a.cfg.Quirks.Dir), a.cfg.Quirks.Glob)
		if err != nil {
			return nil, err
		}
		shipped = d
	}

	a.quirksData = quirks.NewDataProvider(configured, shipped).GetQuirksData()
	a.metrics.SetQuirksLoaded(a.quirksData.Len())
	a.logger.Debug("Quirks loaded",
		zap.Int("count", a.quirksData.Len()),
		zap.String("file", a.cfg.Quirks.File),
		zap.String("glob", a.cfg.Quirks.Glob))
	return a.quirksData, nil
}

func (a *app) proxyFactory() (*proxies.Factory, error) {
	data, err := a.loadQuirks()
	if err != nil {
		return nil, err
	}
	resolver := quirks.NewApplicableQuirksProvider(
		identification.NewBrowserInfoMatcher(),
		quirks.NewDataProvider(data, nil),
		a.logger.Component("quirks"),
		a.metrics)
	ids := identification.NewBrowserIDFactory(a.logger.Component("identification"), a.metrics)
	return proxies.NewFactory(ids, resolver, a.logger.Component("proxies"), a.metrics), nil
}

// driverOptions loads the driver configurations file, if one is configured.
func (a *app) driverOptions() (*factories.OptionsCollection, error) {
	if a.cfg.Drivers.File == "" {
		return &factories.OptionsCollection{SelectedConfiguration: a.cfg.Drivers.Selected}, nil
	}
	parser := factories.NewConfigurationParser(a.types, a.logger.Component("factories"), a.metrics)
	collection, err := parser.Load(a.cfg.Drivers.File)
	if err != nil {
		return nil, err
	}
	if a.cfg.Drivers.Selected != "" {
		collection.SelectedConfiguration = a.cfg.Drivers.Selected
	}
	return collection, nil
}

func (a *app) provider(collection *factories.OptionsCollection) (*factories.Provider, error) {
	proxyFactory, err := a.proxyFactory()
	if err != nil {
		return nil, err
	}
	chain := factories.NewChain(a.types, proxyFactory, a.logger.Component("factories"), a.metrics)
	return factories.NewProvider(chain, collection), nil
}

func (a *app) print(v any) error {
	data, err := formats.Marshal(a.format, v)
	if err != nil {
		return err
	}
	if _, err := a.out.Write(data); err != nil {
		return err
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		_, err = io.WriteString(a.out, "\n")
	}
	return err
}

// finish stops Playwright and prints the metrics snapshot when enabled. It
// runs after every command, whether or not the command failed.
func (a *app) finish(stderr io.Writer) error {
	if a == nil {
		return nil
	}
	defer a.logger.Sync()

	err := a.runtime.Stop()
	if a.cfg.Metrics.Enabled {
		data, marshalErr := formats.Marshal(a.format, a.metrics.Snapshot())
		if marshalErr != nil {
			return errors.Join(err, marshalErr)
		}
		fmt.Fprintln(stderr, string(data))
	}
	return err
}
