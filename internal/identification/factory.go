package identification

import (
	"fmt"

	"github.com/csf-dev/webdriverext/internal/monitoring"
	"github.com/csf-dev/webdriverext/internal/webdriver"
	"go.uber.org/zap"
)

// BrowserIDFactory derives the identity of the browser behind a session.
type BrowserIDFactory struct {
	logger  *zap.Logger
	metrics *monitoring.Metrics
}

// NewBrowserIDFactory creates a factory. Both arguments may be nil.
func NewBrowserIDFactory(logger *zap.Logger, metrics *monitoring.Metrics) *BrowserIDFactory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BrowserIDFactory{logger: logger, metrics: metrics}
}

// GetBrowserID reads the browser name, platform and version from the
// capabilities the session reports. Anything the session does not report is
// taken from the options it was requested with, when those are available;
// otherwise the Unknown names and the Missing version are used. When driver
// wraps another session, the innermost session reporting capabilities is
// used.
func (f *BrowserIDFactory) GetBrowserID(driver webdriver.WebDriver, requested *webdriver.DriverOptions) (BrowserID, error) {
	if driver == nil {
		return BrowserID{}, fmt.Errorf("%w: driver must not be nil", ErrInvalidArgument)
	}

	var caps webdriver.Capabilities
	if hc, ok := webdriver.As[webdriver.HasCapabilities](driver); ok {
		caps = hc.Capabilities()
	}
	if requested == nil {
		requested = &webdriver.DriverOptions{}
	}

	name := firstNonEmpty(caps.String(webdriver.BrowserNameCapability), requested.BrowserName, UnknownBrowser)
	platform := firstNonEmpty(caps.String(webdriver.PlatformNameCapability), requested.PlatformName, UnknownPlatform)
	version := NewVersion(caps.String(webdriver.BrowserVersionCapability), requested.BrowserVersion)

	id, err := NewBrowserID(name, platform, version)
	if err != nil {
		return BrowserID{}, err
	}

	f.metrics.RecordIdentity(versionSource(version))
	f.logger.Debug("Identified browser",
		zap.String("session", driver.SessionID()),
		zap.String("browser", id.Name()),
		zap.String("platform", id.Platform()),
		zap.Stringer("version", id.Version()),
		zap.Bool("presumed", version.IsPresumed()))

	return id, nil
}

func versionSource(v Version) string {
	switch {
	case v.Equal(Missing):
		return monitoring.SourceMissing
	case v.IsPresumed():
		return monitoring.SourcePresumed
	default:
		return monitoring.SourceReported
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
