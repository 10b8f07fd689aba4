package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/csf-dev/webdriverext/internal/factories"
	"github.com/csf-dev/webdriverext/internal/proxies"
	"github.com/csf-dev/webdriverext/internal/quirks"
	"github.com/csf-dev/webdriverext/internal/webdriver"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type identityReport struct {
	CreationID string   `json:"creationId,omitempty" yaml:"creationId,omitempty" toml:"creationId,omitempty"`
	CreatedAt  string   `json:"createdAt,omitempty" yaml:"createdAt,omitempty" toml:"createdAt,omitempty"`
	BrowserID  string   `json:"browserId" yaml:"browserId" toml:"browserId"`
	Name       string   `json:"name" yaml:"name" toml:"name"`
	Platform   string   `json:"platform" yaml:"platform" toml:"platform"`
	Version    string   `json:"version" yaml:"version" toml:"version"`
	Presumed   bool     `json:"presumed" yaml:"presumed" toml:"presumed"`
	Quirks     []string `json:"quirks" yaml:"quirks" toml:"quirks"`
}

func newIdentityReport(driver webdriver.WebDriver) (*identityReport, error) {
	id, ok := proxies.BrowserIDOf(driver)
	if !ok || !id.IsValid() {
		return nil, errors.New("driver was not identified")
	}
	report := &identityReport{
		BrowserID: id.String(),
		Name:      id.Name(),
		Platform:  id.Platform(),
		Version:   id.Version().String(),
		Presumed:  id.Version().IsPresumed(),
		Quirks:    []string{},
	}
	if q, ok := proxies.As[quirks.HasQuirks](driver); ok {
		report.Quirks = append(report.Quirks, q.AllQuirks()...)
	}
	return report, nil
}

// staticDriver is a session which exists only as the capabilities given on
// the command line.
type staticDriver struct {
	caps webdriver.Capabilities
}

func (d *staticDriver) SessionID() string                    { return "static" }
func (d *staticDriver) Close() error                         { return nil }
func (d *staticDriver) Quit() error                          { return nil }
func (d *staticDriver) Capabilities() webdriver.Capabilities { return d.caps }

func identifyCmd(appFn func() *app) *cobra.Command {
	var (
		browser          string
		platform         string
		version          string
		requestedVersion string
	)

	cmd := &cobra.Command{
		Use:   "identify [configuration]",
		Short: "Identify a browser and list the quirks which apply to it",
		Long: `Identify a browser and list the quirks which apply to it.

With a configuration name, or --selected, a session is created from the driver
configurations file and identified. Otherwise the browser described by
--browser, --platform and --version is identified without starting a session.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFn()
			if len(args) == 1 || a.cfg.Drivers.Selected != "" {
				return identifyLive(cmd.Context(), a, args)
			}
			if browser == "" {
				return fmt.Errorf("--browser is required unless a driver configuration is given")
			}

			reported := &webdriver.DriverOptions{BrowserName: browser, PlatformName: platform, BrowserVersion: version}

			factory, err := a.proxyFactory()
			if err != nil {
				return err
			}
			driver, err := factory.GetProxyWebDriver(&staticDriver{caps: reported.ToCapabilities()}, &proxies.CreationOptions{
				DriverOptions: &webdriver.DriverOptions{BrowserName: browser, BrowserVersion: requestedVersion},
				AddQuirks:     true,
			})
			if err != nil {
				return err
			}
			report, err := newIdentityReport(driver)
			if err != nil {
				return err
			}
			return a.print(report)
		},
	}

	cmd.Flags().StringVar(&browser, "browser", "", "Browser name as a session would report it")
	cmd.Flags().StringVar(&platform, "platform", "", "Platform name as a session would report it")
	cmd.Flags().StringVar(&version, "version", "", "Browser version as a session would report it")
	cmd.Flags().StringVar(&requestedVersion, "requested-version", "", "Browser version requested, used when no version is reported")
	return cmd
}

func identifyLive(ctx context.Context, a *app, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	collection, err := a.driverOptions()
	if err != nil {
		return err
	}
	for _, opts := range collection.DriverConfigurations {
		opts.AddBrowserIdentification = true
		opts.AddBrowserQuirks = true
	}
	provider, err := a.provider(collection)
	if err != nil {
		return err
	}

	var created *factories.DriverAndOptions
	if len(args) == 1 {
		created, err = provider.GetWebDriver(ctx, args[0], nil)
	} else {
		created, err = provider.GetDefaultWebDriver(ctx, nil)
	}
	if err != nil {
		return err
	}
	defer func() {
		if err := created.WebDriver.Quit(); err != nil {
			a.logger.Warn("Failed to quit driver", zap.Error(err))
		}
	}()

	report, err := newIdentityReport(created.WebDriver)
	if err != nil {
		return err
	}
	report.CreationID = created.CreationID.String()
	if at, err := created.CreationID.Time(); err == nil {
		report.CreatedAt = at.UTC().Format(time.RFC3339Nano)
	}
	return a.print(report)
}
