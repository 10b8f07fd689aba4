package factories

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/csf-dev/webdriverext/internal/monitoring"
	"github.com/csf-dev/webdriverext/internal/shared/formats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlConfig = `
selectedConfiguration: Local
driverConfigurations:
  Local:
    driverType: chrome
    optionsCustomizer: Headless
    addBrowserQuirks: true
    options:
      browserVersion: "118"
      arguments: ["--lang=en"]
  NoIdentity:
    driverType: Chromium
    addBrowserIdentification: false
  Custom:
    driverFactoryType: SomeFactory
  MissingType:
    gridUrl: ws://grid:3000/
  UnknownType:
    driverType: Opera
  UnknownCustomizer:
    driverType: Chromium
    optionsCustomizer: Mobile
`

const tomlConfig = `
selectedConfiguration = "Local"

[driverConfigurations.Local]
driverType = "chrome"
optionsCustomizer = "Headless"
addBrowserQuirks = true

[driverConfigurations.Local.options]
browserVersion = "118"
arguments = ["--lang=en"]

[driverConfigurations.NoIdentity]
driverType = "Chromium"
addBrowserIdentification = false

[driverConfigurations.Custom]
driverFactoryType = "SomeFactory"

[driverConfigurations.MissingType]
gridUrl = "ws://grid:3000/"

[driverConfigurations.UnknownType]
driverType = "Opera"

[driverConfigurations.UnknownCustomizer]
driverType = "Chromium"
optionsCustomizer = "Mobile"
`

const jsonConfig = `{
  "selectedConfiguration": "Local",
  "driverConfigurations": {
    "Local": {
      "driverType": "chrome",
      "optionsCustomizer": "Headless",
      "addBrowserQuirks": true,
      "options": {"browserVersion": "118", "arguments": ["--lang=en"]}
    },
    "NoIdentity": {"driverType": "Chromium", "addBrowserIdentification": false},
    "Custom": {"driverFactoryType": "SomeFactory"},
    "MissingType": {"gridUrl": "ws://grid:3000/"},
    "UnknownType": {"driverType": "Opera"},
    "UnknownCustomizer": {"driverType": "Chromium", "optionsCustomizer": "Mobile"}
  }
}`

func TestConfigurationParserOmitsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		format formats.Format
		data   string
	}{
		{"yaml", formats.YAML, yamlConfig},
		{"toml", formats.TOML, tomlConfig},
		{"json", formats.JSON, jsonConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, types := newTestTypes(t)
			metrics := monitoring.NewMetrics(nil)

			collection, err := NewConfigurationParser(types, nil, metrics).Parse(tt.format, []byte(tt.data))
			require.NoError(t, err)

			assert.Equal(t, "Local", collection.SelectedConfiguration)
			assert.Equal(t, []string{"Custom", "Local", "NoIdentity"}, collection.Names())
			assert.Equal(t, int64(3), metrics.Snapshot().ConfigsOmitted)

			local := collection.DriverConfigurations["Local"]
			assert.Equal(t, "chrome", local.DriverType)
			assert.Equal(t, "Headless", local.OptionsCustomizer)
			assert.True(t, local.AddBrowserIdentification, "identification defaults to on")
			assert.True(t, local.AddBrowserQuirks)
			assert.Equal(t, "118", local.Options.BrowserVersion)
			assert.Equal(t, []string{"--lang=en"}, local.Options.Arguments)

			assert.False(t, collection.DriverConfigurations["NoIdentity"].AddBrowserIdentification)
			assert.False(t, collection.DriverConfigurations["NoIdentity"].AddBrowserQuirks)
			assert.Equal(t, "SomeFactory", collection.DriverConfigurations["Custom"].DriverFactoryType)
		})
	}
}

func TestConfigurationParserDecodeError(t *testing.T) {
	_, types := newTestTypes(t)
	_, err := NewConfigurationParser(types, nil, nil).Parse(formats.JSON, []byte(`{"driverConfigurations": [`))
	assert.Error(t, err)
}

func TestDriverConfigurationErrors(t *testing.T) {
	_, types := newTestTypes(t)
	parser := NewConfigurationParser(types, nil, nil)

	_, err := parser.driverConfiguration(nil)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = parser.driverConfiguration(&creationOptionsDocument{})
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = parser.driverConfiguration(&creationOptionsDocument{DriverType: "Opera"})
	assert.True(t, errors.Is(err, ErrUnknownDriverType))

	_, err = parser.driverConfiguration(&creationOptionsDocument{DriverType: "Chromium", OptionsCustomizer: "Mobile"})
	assert.True(t, errors.Is(err, ErrUnknownCustomizer))
}

func TestConfigurationParserLoad(t *testing.T) {
	_, types := newTestTypes(t)
	parser := NewConfigurationParser(types, nil, nil)
	dir := t.TempDir()

	path := filepath.Join(dir, "drivers.yml")
	require.NoError(t, os.WriteFile(path, []byte(yamlConfig), 0o644))

	collection, err := parser.Load(path)
	require.NoError(t, err)
	assert.Len(t, collection.DriverConfigurations, 3)

	_, err = parser.Load(filepath.Join(dir, "drivers.ini"))
	assert.True(t, errors.Is(err, formats.ErrUnsupportedFormat))

	_, err = parser.Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
