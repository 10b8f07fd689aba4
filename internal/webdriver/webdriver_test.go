package webdriver

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type plainDriver struct{}

func (plainDriver) SessionID() string { return "plain" }
func (plainDriver) Close() error      { return nil }
func (plainDriver) Quit() error       { return nil }

type capableDriver struct {
	plainDriver
	caps Capabilities
}

func (d capableDriver) Capabilities() Capabilities { return d.caps }
func (capableDriver) Screenshot() ([]byte, error)  { return []byte("png"), nil }

type logsConsole interface {
	ConsoleLog() []string
}

type consoleDriver struct{ plainDriver }

func (consoleDriver) ConsoleLog() []string { return nil }

func TestCapabilitiesString(t *testing.T) {
	caps := Capabilities{
		BrowserNameCapability: "firefox",
		"acceptInsecureCerts": true,
	}

	assert.Equal(t, "firefox", caps.String(BrowserNameCapability))
	assert.Equal(t, "", caps.String("acceptInsecureCerts"))
	assert.Equal(t, "", caps.String(BrowserVersionCapability))

	var nilCaps Capabilities
	assert.Equal(t, "", nilCaps.String(BrowserNameCapability))
}

func TestDriverOptionsClone(t *testing.T) {
	original := &DriverOptions{
		BrowserName:            "chrome",
		Arguments:              []string{"--headless"},
		AdditionalCapabilities: map[string]any{"se:recordVideo": true},
	}

	clone := original.Clone()
	clone.Arguments[0] = "--window-size=800,600"
	clone.AdditionalCapabilities["se:recordVideo"] = false

	assert.Equal(t, "--headless", original.Arguments[0])
	assert.Equal(t, true, original.AdditionalCapabilities["se:recordVideo"])

	var nilOpts *DriverOptions
	assert.Nil(t, nilOpts.Clone())
}

func TestDriverOptionsToCapabilities(t *testing.T) {
	opts := &DriverOptions{
		BrowserName:            "chrome",
		BrowserVersion:         "120",
		AdditionalCapabilities: map[string]any{"browserName": "ignored", "goog:loggingPrefs": "all"},
	}

	caps := opts.ToCapabilities()
	assert.Equal(t, "chrome", caps.String(BrowserNameCapability))
	assert.Equal(t, "120", caps.String(BrowserVersionCapability))
	assert.Equal(t, "", caps.String(PlatformNameCapability))
	assert.Equal(t, "all", caps["goog:loggingPrefs"])
}

func TestInterfaces(t *testing.T) {
	tests := []struct {
		name   string
		target any
		want   []reflect.Type
	}{
		{name: "nil", target: nil, want: nil},
		{name: "plain driver", target: plainDriver{}, want: nil},
		{
			name:   "capable driver",
			target: capableDriver{},
			want: []reflect.Type{
				reflect.TypeOf((*HasCapabilities)(nil)).Elem(),
				reflect.TypeOf((*TakesScreenshot)(nil)).Elem(),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Interfaces(tt.target))
		})
	}
}

func TestRegisterInterface(t *testing.T) {
	assert.NotContains(t, Interfaces(consoleDriver{}), reflect.TypeOf((*logsConsole)(nil)).Elem())

	RegisterInterface[logsConsole]()
	RegisterInterface[logsConsole]()

	count := 0
	for _, iface := range KnownInterfaces() {
		if iface == reflect.TypeOf((*logsConsole)(nil)).Elem() {
			count++
		}
	}
	require.Equal(t, 1, count)
	assert.Contains(t, Interfaces(consoleDriver{}), reflect.TypeOf((*logsConsole)(nil)).Elem())

	assert.Panics(t, func() { RegisterInterface[plainDriver]() })
}

type wrappingDriver struct {
	plainDriver
	inner WebDriver
}

func (d wrappingDriver) UnproxiedWebDriver() WebDriver { return d.inner }

type selfWrappingDriver struct{ plainDriver }

func (d *selfWrappingDriver) UnproxiedWebDriver() WebDriver { return d }

func TestAsLooksThroughWrappers(t *testing.T) {
	inner := capableDriver{caps: Capabilities{BrowserNameCapability: "chrome"}}
	wrapped := wrappingDriver{inner: wrappingDriver{inner: inner}}

	hc, ok := As[HasCapabilities](wrapped)
	require.True(t, ok)
	assert.Equal(t, "chrome", hc.Capabilities().String(BrowserNameCapability))

	_, ok = As[HasCapabilities](wrappingDriver{inner: plainDriver{}})
	assert.False(t, ok)

	_, ok = As[HasCapabilities](&selfWrappingDriver{})
	assert.False(t, ok)

	_, ok = As[HasCapabilities](nil)
	assert.False(t, ok)
}
