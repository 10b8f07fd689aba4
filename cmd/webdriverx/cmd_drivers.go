package main

import (
	"github.com/spf13/cobra"
)

type driverType struct {
	Name            string   `json:"name" yaml:"name" toml:"name"`
	Aliases         []string `json:"aliases" yaml:"aliases" toml:"aliases"`
	BrowserName     string   `json:"browserName" yaml:"browserName" toml:"browserName"`
	RequiresGridURL bool     `json:"requiresGridUrl" yaml:"requiresGridUrl" toml:"requiresGridUrl"`
}

type driverConfiguration struct {
	Name              string `json:"name" yaml:"name" toml:"name"`
	DriverType        string `json:"driverType,omitempty" yaml:"driverType,omitempty" toml:"driverType,omitempty"`
	DriverFactoryType string `json:"driverFactoryType,omitempty" yaml:"driverFactoryType,omitempty" toml:"driverFactoryType,omitempty"`
	GridURL           string `json:"gridUrl,omitempty" yaml:"gridUrl,omitempty" toml:"gridUrl,omitempty"`
	Identification    bool   `json:"addBrowserIdentification" yaml:"addBrowserIdentification" toml:"addBrowserIdentification"`
	Quirks            bool   `json:"addBrowserQuirks" yaml:"addBrowserQuirks" toml:"addBrowserQuirks"`
}

type driversReport struct {
	DriverTypes           []driverType          `json:"driverTypes" yaml:"driverTypes" toml:"driverTypes"`
	SelectedConfiguration string                `json:"selectedConfiguration,omitempty" yaml:"selectedConfiguration,omitempty" toml:"selectedConfiguration,omitempty"`
	Configurations        []driverConfiguration `json:"configurations" yaml:"configurations" toml:"configurations"`
}

func driversCmd(appFn func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "drivers",
		Short: "List driver types and the usable driver configurations",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			a := appFn()
			collection, err := a.driverOptions()
			if err != nil {
				return err
			}

			report := driversReport{
				DriverTypes:           []driverType{},
				SelectedConfiguration: collection.SelectedConfiguration,
				Configurations:        []driverConfiguration{},
			}
			for _, name := range a.types.DriverTypes() {
				d, err := a.types.GetDriverType(name)
				if err != nil {
					return err
				}
				aliases := d.Aliases
				if aliases == nil {
					aliases = []string{}
				}
				report.DriverTypes = append(report.DriverTypes, driverType{
					Name:            d.Name,
					Aliases:         aliases,
					BrowserName:     d.BrowserName,
					RequiresGridURL: d.RequiresGridURL,
				})
			}
			for _, name := range collection.Names() {
				opts := collection.DriverConfigurations[name]
				report.Configurations = append(report.Configurations, driverConfiguration{
					Name:              name,
					DriverType:        opts.DriverType,
					DriverFactoryType: opts.DriverFactoryType,
					GridURL:           opts.GridURL,
					Identification:    opts.AddBrowserIdentification,
					Quirks:            opts.AddBrowserQuirks,
				})
			}
			return a.print(report)
		},
	}
}
