package main

import (
	"errors"

	"github.com/csf-dev/webdriverext/internal/config"
	"github.com/csf-dev/webdriverext/internal/shared/formats"
	"github.com/spf13/cobra"
)

func newRootCmd(cfg *config.Config) *cobra.Command {
	var (
		a      *app
		output string
	)

	rootCmd := &cobra.Command{
		Use:           "webdriverx",
		Short:         "Identify browsers, resolve their quirks and create WebDriver sessions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			format, err := formats.Parse(output)
			if err != nil {
				return err
			}
			a, err = newApp(cfg, format, cmd.OutOrStdout())
			return err
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&output, "output", "o", string(formats.JSON), "Output format: json, yaml or toml")
	flags.StringVar(&cfg.Drivers.File, "config", cfg.Drivers.File, "Driver configurations file (WEBDRIVER_CONFIG)")
	flags.StringVar(&cfg.Drivers.Selected, "selected", cfg.Drivers.Selected, "Selected driver configuration (WEBDRIVER_SELECTED)")
	flags.StringVar(&cfg.Quirks.File, "quirks-file", cfg.Quirks.File, "Quirks data file (QUIRKS_FILE)")
	flags.StringVar(&cfg.Quirks.Dir, "quirks-dir", cfg.Quirks.Dir, "Directory quirks-glob is matched in (QUIRKS_DIR)")
	flags.StringVar(&cfg.Quirks.Glob, "quirks-glob", cfg.Quirks.Glob, "Pattern of quirks data files, such as quirks/**/*.yaml (QUIRKS_GLOB)")
	flags.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "Log level (LOG_LEVEL)")
	flags.BoolVar(&cfg.Logging.Development, "log-dev", cfg.Logging.Development, "Human readable logs (LOG_DEV)")
	flags.BoolVar(&cfg.Metrics.Enabled, "metrics", cfg.Metrics.Enabled, "Print metrics to stderr when done (METRICS_ENABLED)")

	appFn := func() *app { return a }
	rootCmd.AddCommand(identifyCmd(appFn))
	rootCmd.AddCommand(quirksCmd(appFn))
	rootCmd.AddCommand(compareCmd(appFn))
	rootCmd.AddCommand(driversCmd(appFn))

	// Persistent post-run hooks are skipped when RunE fails, so cleanup
	// is deferred inside each command instead.
	for _, sub := range rootCmd.Commands() {
		runE := sub.RunE
		sub.RunE = func(cmd *cobra.Command, args []string) (err error) {
			defer func() {
				err = errors.Join(err, a.finish(cmd.ErrOrStderr()))
			}()
			return runE(cmd, args)
		}
	}

	return rootCmd
}
