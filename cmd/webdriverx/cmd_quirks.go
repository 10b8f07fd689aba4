package main

import (
	"github.com/spf13/cobra"
)

type quirkNames struct {
	Quirks []string `json:"quirks" yaml:"quirks" toml:"quirks"`
}

func quirksCmd(appFn func() *app) *cobra.Command {
	var namesOnly bool

	cmd := &cobra.Command{
		Use:   "quirks",
		Short: "Print the merged quirks data",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			a := appFn()
			data, err := a.loadQuirks()
			if err != nil {
				return err
			}
			if namesOnly {
				return a.print(quirkNames{Quirks: data.Names()})
			}
			return a.print(data)
		},
	}

	cmd.Flags().BoolVar(&namesOnly, "names", false, "Print only the quirk names")
	return cmd
}
