package proxies

import (
	"errors"
	"reflect"
	"testing"

	"github.com/csf-dev/webdriverext/internal/identification"
	"github.com/csf-dev/webdriverext/internal/monitoring"
	"github.com/csf-dev/webdriverext/internal/quirks"
	"github.com/csf-dev/webdriverext/internal/webdriver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type plainDriver struct {
	closed bool
}

func (d *plainDriver) SessionID() string { return "plain" }
func (d *plainDriver) Close() error      { d.closed = true; return nil }
func (d *plainDriver) Quit() error       { return nil }

type screenshotDriver struct {
	plainDriver
	caps webdriver.Capabilities
}

func (d *screenshotDriver) Capabilities() webdriver.Capabilities { return d.caps }
func (d *screenshotDriver) Screenshot() ([]byte, error)          { return []byte("png"), nil }

func newScreenshotDriver() *screenshotDriver {
	return &screenshotDriver{caps: webdriver.Capabilities{
		webdriver.BrowserNameCapability:    "FooBrowser",
		webdriver.PlatformNameCapability:   "Windows",
		webdriver.BrowserVersionCapability: "2.3.4",
	}}
}

func newTestFactory(metrics *monitoring.Metrics) *Factory {
	data := &quirks.Data{Quirks: map[string]*quirks.BrowserInfoCollection{
		"A": {AffectedBrowsers: []identification.BrowserInfo{{Name: "FooBrowser", MinVersion: "1.2.3", MaxVersion: "4.5.6"}}},
		"B": {AffectedBrowsers: []identification.BrowserInfo{{Name: "FooBrowser", MinVersion: "4.5.6", MaxVersion: "7.8.9"}}},
	}}
	resolver := quirks.NewApplicableQuirksProvider(identification.NewBrowserInfoMatcher(), quirks.NewDataProvider(data, nil), nil, metrics)
	return NewFactory(identification.NewBrowserIDFactory(nil, metrics), resolver, nil, metrics)
}

func TestProxyWithoutIdentification(t *testing.T) {
	original := newScreenshotDriver()

	proxy, err := newTestFactory(nil).GetProxyWebDriver(original, &CreationOptions{})
	require.NoError(t, err)

	_, ok := proxy.(identification.HasBrowserID)
	assert.False(t, ok, "identity must not be exposed")
	_, ok = proxy.(quirks.HasQuirks)
	assert.False(t, ok)

	_, ok = BrowserIDOf(proxy)
	assert.False(t, ok)

	unproxied, ok := proxy.(HasUnproxiedWebDriver)
	require.True(t, ok)
	assert.Same(t, original, unproxied.UnproxiedWebDriver())
}

func TestProxyWithIdentification(t *testing.T) {
	original := newScreenshotDriver()

	proxy, err := newTestFactory(nil).GetProxyWebDriver(original, &CreationOptions{AddIdentification: true})
	require.NoError(t, err)

	h, ok := proxy.(identification.HasBrowserID)
	require.True(t, ok)
	assert.Equal(t, "FooBrowser (Windows): 2.3.4", h.BrowserID().String())

	_, ok = proxy.(quirks.HasQuirks)
	assert.False(t, ok)

	assert.Same(t, original, Unproxy(proxy))
}

func TestProxyWithQuirks(t *testing.T) {
	metrics := monitoring.NewMetrics(nil)
	original := newScreenshotDriver()

	proxy, err := newTestFactory(metrics).GetProxyWebDriver(original, &CreationOptions{AddQuirks: true})
	require.NoError(t, err)

	h, ok := proxy.(quirks.HasQuirks)
	require.True(t, ok)
	assert.Equal(t, []string{"A"}, h.AllQuirks())
	assert.True(t, h.HasQuirk("A"))
	assert.False(t, h.HasQuirk("B"))
	assert.True(t, HasQuirk(proxy, "A"))

	id, ok := BrowserIDOf(proxy)
	require.True(t, ok, "quirks imply identification")
	assert.Equal(t, "FooBrowser", id.Name())

	snap := metrics.Snapshot()
	assert.Equal(t, int64(1), snap.Proxies)
	assert.Equal(t, int64(1), snap.Identities)
}

func TestProxyForwardsToOriginal(t *testing.T) {
	original := newScreenshotDriver()

	proxy, err := newTestFactory(nil).GetProxyWebDriver(original, &CreationOptions{AddQuirks: true})
	require.NoError(t, err)

	assert.Equal(t, "plain", proxy.SessionID())
	require.NoError(t, proxy.Close())
	assert.True(t, original.closed)
}

func TestProxyPreservesOriginalInterfaces(t *testing.T) {
	original := newScreenshotDriver()

	proxy, err := newTestFactory(nil).GetProxyWebDriver(original, &CreationOptions{AddIdentification: true})
	require.NoError(t, err)

	shooter, ok := As[webdriver.TakesScreenshot](proxy)
	require.True(t, ok)
	png, err := shooter.Screenshot()
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)

	_, ok = As[webdriver.HasCapabilities](proxy)
	assert.True(t, ok)

	_, ok = As[webdriver.ExecutesScript](proxy)
	assert.False(t, ok, "the original does not execute script")

	_, ok = As[identification.HasBrowserID](proxy)
	assert.True(t, ok)

	got := Interfaces(proxy)
	assert.Equal(t, []reflect.Type{
		reflect.TypeOf((*identification.HasBrowserID)(nil)).Elem(),
		reflect.TypeOf((*HasUnproxiedWebDriver)(nil)).Elem(),
		reflect.TypeOf((*webdriver.HasCapabilities)(nil)).Elem(),
		reflect.TypeOf((*webdriver.TakesScreenshot)(nil)).Elem(),
	}, got)
}

func TestProxyOfProxyKeepsTargetCapabilities(t *testing.T) {
	original := newScreenshotDriver()
	f := newTestFactory(nil)

	inner, err := f.GetProxyWebDriver(original, &CreationOptions{})
	require.NoError(t, err)

	outer, err := f.GetProxyWebDriver(inner, &CreationOptions{AddQuirks: true})
	require.NoError(t, err)

	id, ok := BrowserIDOf(outer)
	require.True(t, ok)
	assert.Equal(t, "FooBrowser (Windows): 2.3.4", id.String())
	assert.False(t, id.Version().IsPresumed())
	assert.True(t, HasQuirk(outer, "A"))
	assert.False(t, HasQuirk(outer, "B"))

	shooter, ok := As[webdriver.TakesScreenshot](outer)
	require.True(t, ok)
	png, err := shooter.Screenshot()
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)

	_, ok = As[webdriver.HasCapabilities](outer)
	assert.True(t, ok)

	assert.Equal(t, inner, Unproxy(outer))
	assert.Same(t, original, Unproxy(Unproxy(outer)))
}

func TestUnproxyIsIdempotentOnPlainDrivers(t *testing.T) {
	original := &plainDriver{}
	assert.Same(t, original, Unproxy(original))
	assert.Nil(t, Unproxy(nil))
}

func TestAsOnPlainDrivers(t *testing.T) {
	d := newScreenshotDriver()
	_, ok := As[webdriver.TakesScreenshot](d)
	assert.True(t, ok)

	_, ok = As[webdriver.TakesScreenshot](&plainDriver{})
	assert.False(t, ok)

	assert.False(t, HasQuirk(d, "A"))
}

func TestIdentityWithoutCapabilities(t *testing.T) {
	proxy, err := newTestFactory(nil).GetProxyWebDriver(&plainDriver{}, &CreationOptions{
		AddQuirks:     true,
		DriverOptions: &webdriver.DriverOptions{BrowserName: "FooBrowser", BrowserVersion: "5.0"},
	})
	require.NoError(t, err)

	id, ok := BrowserIDOf(proxy)
	require.True(t, ok)
	assert.Equal(t, "FooBrowser", id.Name())
	assert.Equal(t, identification.UnknownPlatform, id.Platform())
	assert.True(t, id.Version().IsPresumed())
	assert.True(t, HasQuirk(proxy, "B"))
}

func TestGetProxyWebDriverInvalidArguments(t *testing.T) {
	f := newTestFactory(nil)

	_, err := f.GetProxyWebDriver(nil, &CreationOptions{})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = f.GetProxyWebDriver(&plainDriver{}, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

type failingIDs struct{}

func (failingIDs) GetBrowserID(webdriver.WebDriver, *webdriver.DriverOptions) (identification.BrowserID, error) {
	return identification.BrowserID{}, errors.New("no session")
}

func TestAugmenterFailureReturnsNoProxy(t *testing.T) {
	f := NewFactory(failingIDs{}, nil, nil, nil)

	proxy, err := f.GetProxyWebDriver(&plainDriver{}, &CreationOptions{AddIdentification: true})
	assert.Error(t, err)
	assert.Nil(t, proxy)

	proxy, err = f.GetProxyWebDriver(&plainDriver{}, &CreationOptions{})
	require.NoError(t, err, "identification is not attempted unless requested")
	assert.NotNil(t, proxy)
}

func TestQuirksAugmenterRequiresBrowserID(t *testing.T) {
	ctx, err := NewCreationContext(&plainDriver{}, &CreationOptions{AddQuirks: true})
	require.NoError(t, err)

	err = NewQuirksAugmenter(nil).Augment(ctx)
	assert.ErrorIs(t, err, ErrMissingBrowserID)
}

func TestCreationContext(t *testing.T) {
	ctx, err := NewCreationContext(newScreenshotDriver(), &CreationOptions{})
	require.NoError(t, err)

	assert.Contains(t, ctx.Interfaces, reflect.TypeOf((*webdriver.TakesScreenshot)(nil)).Elem())
	assert.Contains(t, ctx.Interfaces, reflect.TypeOf((*webdriver.HasCapabilities)(nil)).Elem())
	assert.Len(t, ctx.Interfaces, 2)

	first := unproxyingInterceptor{driver: &plainDriver{}}
	second := unproxyingInterceptor{driver: &plainDriver{}}
	ctx.Add(first)
	ctx.Add(second)
	assert.Len(t, ctx.Extra, 1)
	assert.Len(t, ctx.Interceptors, 1)
	assert.True(t, ctx.HasExtra(unproxiedType))
	assert.False(t, ctx.HasExtra(quirksType))
}

func TestGenerateRejectsUnsupportedCombinations(t *testing.T) {
	ctx, err := NewCreationContext(&plainDriver{}, &CreationOptions{})
	require.NoError(t, err)

	ctx.Add(quirksInterceptor{quirks: quirks.NewSet("A")})
	_, err = generate(ctx)
	assert.ErrorIs(t, err, ErrUnsupportedInterfaces)
}

func TestInterceptorsOnlyAnswerTheirAccessor(t *testing.T) {
	driver := &plainDriver{}
	i := unproxyingInterceptor{driver: driver}

	v, ok := i.Intercept(UnproxiedWebDriverMember)
	require.True(t, ok)
	assert.Same(t, driver, v)

	_, ok = i.Intercept("SessionID")
	assert.False(t, ok)

	_, ok = identificationInterceptor{}.Intercept(AllQuirksMember)
	assert.False(t, ok)
	_, ok = quirksInterceptor{}.Intercept(BrowserIDMember)
	assert.False(t, ok)
}
