package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/csf-dev/webdriverext/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testQuirks = `
quirks:
  CannotDisplayYellow:
    affectedBrowsers:
      - name: FooBrowser
        minVersion: "1.2.3"
        maxVersion: "4.5.6"
  NoScrollbars:
    affectedBrowsers:
      - name: FooBrowser
        platform: Linux
`

const shippedQuirks = `{
  "quirks": {
    "NoScrollbars": {"affectedBrowsers": [{"name": "BarBrowser"}]},
    "SlowStartup": {"affectedBrowsers": [{"name": "FooBrowser", "maxVersion": "2"}]}
  }
}`

const testDrivers = `
selectedConfiguration: Local
driverConfigurations:
  Local:
    driverType: chrome
  Remote:
    driverType: Firefox
    gridUrl: ws://grid:3000/
    addBrowserQuirks: true
  Broken:
    driverType: Opera
`

func run(t *testing.T, cfg *config.Config, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(cfg)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Logging.Level = "error"
	cfg.Quirks.File = writeFile(t, dir, "quirks.yaml", testQuirks)
	cfg.Quirks.Dir = dir
	cfg.Quirks.Glob = "shipped/**/*.json"
	writeFile(t, dir, "shipped/base/quirks.json", shippedQuirks)
	cfg.Drivers.File = writeFile(t, dir, "drivers.yaml", testDrivers)
	return cfg
}

func TestCompareCommand(t *testing.T) {
	tests := []struct {
		a, b       string
		wantResult int
		wantKindA  string
		wantKindB  string
	}{
		{"1.2.3", "128.0.6613.84", -1, "semantic", "dotted"},
		{"v2.0.0", "2", 0, "semantic", "semantic"},
		{"", "1.0", 1, "missing", "semantic"},
		{"nightly", "1.0", -1, "unrecognised", "semantic"},
	}

	for _, tt := range tests {
		t.Run(tt.a+" vs "+tt.b, func(t *testing.T) {
			out, err := run(t, config.Default(), "compare", tt.a, tt.b)
			require.NoError(t, err)

			var got comparison
			require.NoError(t, sonic.UnmarshalString(out, &got))
			assert.Equal(t, tt.wantResult, got.Result)
			assert.Equal(t, tt.wantResult == 0, got.Equal)
			assert.Equal(t, tt.wantKindA, got.A.Kind)
			assert.Equal(t, tt.wantKindB, got.B.Kind)
		})
	}
}

func TestCompareRequiresTwoVersions(t *testing.T) {
	_, err := run(t, config.Default(), "compare", "1.0")
	assert.Error(t, err)
}

func TestQuirksCommand(t *testing.T) {
	out, err := run(t, testConfig(t), "quirks", "--names")
	require.NoError(t, err)

	var got quirkNames
	require.NoError(t, sonic.UnmarshalString(out, &got))
	assert.Equal(t, []string{"CannotDisplayYellow", "NoScrollbars", "SlowStartup"}, got.Quirks)

	out, err = run(t, testConfig(t), "-o", "yaml", "quirks")
	require.NoError(t, err)
	assert.Contains(t, out, "affectedBrowsers")
	// The quirks file replaces the shipped definition of NoScrollbars.
	assert.NotContains(t, out, "BarBrowser")
}

func TestIdentifyCommand(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantID     string
		wantQuirks []string
	}{
		{
			name:       "reported version",
			args:       []string{"--browser", "FooBrowser", "--platform", "Linux", "--version", "2.0"},
			wantID:     "FooBrowser (Linux): 2.0.0",
			wantQuirks: []string{"CannotDisplayYellow", "NoScrollbars", "SlowStartup"},
		},
		{
			name:       "presumed version",
			args:       []string{"--browser", "FooBrowser", "--platform", "Windows", "--requested-version", "5"},
			wantID:     "FooBrowser (Windows): 5.0.0 (presumed)",
			wantQuirks: []string{},
		},
		{
			name:       "no version",
			args:       []string{"--browser", "FooBrowser", "--platform", "Linux"},
			wantID:     "FooBrowser (Linux): [Missing version]",
			wantQuirks: []string{"NoScrollbars"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.Drivers.Selected = ""
			out, err := run(t, cfg, append([]string{"identify"}, tt.args...)...)
			require.NoError(t, err)

			var got identityReport
			require.NoError(t, sonic.UnmarshalString(out, &got))
			assert.Equal(t, tt.wantID, got.BrowserID)
			assert.Equal(t, tt.wantQuirks, got.Quirks)
			assert.Empty(t, got.CreationID)
		})
	}
}

func TestIdentifyRequiresBrowser(t *testing.T) {
	_, err := run(t, testConfig(t), "identify")
	assert.ErrorContains(t, err, "--browser is required")
}

func TestIdentifyUnknownConfiguration(t *testing.T) {
	_, err := run(t, testConfig(t), "identify", "Broken")
	assert.ErrorContains(t, err, "unknown driver configuration")
}

func TestDriversCommand(t *testing.T) {
	out, err := run(t, testConfig(t), "drivers")
	require.NoError(t, err)

	var got driversReport
	require.NoError(t, sonic.UnmarshalString(out, &got))

	var names []string
	for _, d := range got.DriverTypes {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"Chromium", "Firefox", "WebKit"}, names)

	assert.Equal(t, "Local", got.SelectedConfiguration)
	require.Len(t, got.Configurations, 2)
	assert.Equal(t, "Local", got.Configurations[0].Name)
	assert.True(t, got.Configurations[0].Identification)
	assert.False(t, got.Configurations[0].Quirks)
	assert.Equal(t, "Remote", got.Configurations[1].Name)
	assert.Equal(t, "ws://grid:3000/", got.Configurations[1].GridURL)
	assert.True(t, got.Configurations[1].Quirks)
}

func TestSelectedFlagOverridesFile(t *testing.T) {
	out, err := run(t, testConfig(t), "--selected", "Remote", "-o", "toml", "drivers")
	require.NoError(t, err)
	assert.Regexp(t, `selectedConfiguration = ["']Remote["']`, out)
}

func TestInvalidOutputFormat(t *testing.T) {
	_, err := run(t, config.Default(), "-o", "xml", "compare", "1", "2")
	assert.Error(t, err)
}

func TestMetricsPrinted(t *testing.T) {
	cfg := testConfig(t)
	cfg.Metrics.Enabled = true

	cmd := newRootCmd(cfg)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"identify", "--browser", "FooBrowser", "--version", "2.0"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, errOut.String(), `"identities": 1`)
	assert.Contains(t, errOut.String(), `"proxies": 1`)
}

func TestMetricsPrintedWhenCommandFails(t *testing.T) {
	cfg := testConfig(t)
	cfg.Metrics.Enabled = true

	cmd := newRootCmd(cfg)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"identify", "Broken"})

	assert.ErrorContains(t, cmd.Execute(), "unknown driver configuration")
	assert.Contains(t, errOut.String(), `"configsOmitted": 1`)
}
