package main

import (
	"github.com/csf-dev/webdriverext/internal/identification"
	"github.com/spf13/cobra"
)

type versionReport struct {
	Input   string `json:"input" yaml:"input" toml:"input"`
	Kind    string `json:"kind" yaml:"kind" toml:"kind"`
	Version string `json:"version" yaml:"version" toml:"version"`
}

type comparison struct {
	A      versionReport `json:"a" yaml:"a" toml:"a"`
	B      versionReport `json:"b" yaml:"b" toml:"b"`
	Result int           `json:"result" yaml:"result" toml:"result"`
	Equal  bool          `json:"equal" yaml:"equal" toml:"equal"`
}

func versionKind(v identification.Version) string {
	switch v.(type) {
	case identification.SemanticVersion:
		return "semantic"
	case identification.DottedNumericVersion:
		return "dotted"
	case identification.UnrecognisedVersion:
		return "unrecognised"
	default:
		return "missing"
	}
}

func newVersionReport(input string) (identification.Version, versionReport) {
	v := identification.NewVersion(input, "")
	return v, versionReport{Input: input, Kind: versionKind(v), Version: v.String()}
}

func compareCmd(appFn func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Compare two browser versions",
		Long: `Compare two browser versions the way quirk rules compare them.

Result is -1 when a sorts before b, 0 when they are equal and 1 when a sorts
after b. An empty version is a missing version, which sorts after every other.`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			a, reportA := newVersionReport(args[0])
			b, reportB := newVersionReport(args[1])
			return appFn().print(comparison{
				A:      reportA,
				B:      reportB,
				Result: a.Compare(b),
				Equal:  a.Equal(b),
			})
		},
	}
}
