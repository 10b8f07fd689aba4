package playwrightdriver

import (
	"fmt"
	"sync"

	"github.com/csf-dev/webdriverext/internal/webdriver"
	"github.com/google/uuid"
	"github.com/playwright-community/playwright-go"
)

// Driver is a WebDriver session backed by a Playwright browser. Script and
// screenshot calls run against a page which is opened on first use.
type Driver struct {
	browser  playwright.Browser
	session  string
	platform string

	mu     sync.Mutex
	page   playwright.Page
	closed bool
}

// NewDriver wraps a connected browser. platform is reported as the
// platformName capability when not empty.
func NewDriver(browser playwright.Browser, platform string) *Driver {
	return &Driver{
		browser:  browser,
		session:  uuid.New().String(),
		platform: platform,
	}
}

// Browser returns the underlying Playwright browser.
func (d *Driver) Browser() playwright.Browser {
	return d.browser
}

func (d *Driver) SessionID() string {
	return d.session
}

// Capabilities reports the browser name and version from the browser
// itself.
func (d *Driver) Capabilities() webdriver.Capabilities {
	caps := webdriver.Capabilities{}
	if bt := d.browser.BrowserType(); bt != nil {
		caps[webdriver.BrowserNameCapability] = bt.Name()
	}
	if v := d.browser.Version(); v != "" {
		caps[webdriver.BrowserVersionCapability] = v
	}
	if d.platform != "" {
		caps[webdriver.PlatformNameCapability] = d.platform
	}
	return caps
}

// Close closes the current page, leaving the browser running.
func (d *Driver) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return webdriver.ErrSessionClosed
	}
	if d.page == nil {
		return nil
	}
	page := d.page
	d.page = nil
	if err := page.Close(); err != nil {
		return fmt.Errorf("failed to close page: %w", err)
	}
	return nil
}

// Quit closes the browser. Calling Quit again does nothing.
func (d *Driver) Quit() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil
	}
	d.closed = true
	d.page = nil
	if err := d.browser.Close(); err != nil {
		return fmt.Errorf("failed to close browser: %w", err)
	}
	return nil
}

func (d *Driver) ExecuteScript(script string, args ...any) (any, error) {
	page, err := d.currentPage()
	if err != nil {
		return nil, err
	}
	if len(args) == 0 {
		return page.Evaluate(script)
	}
	return page.Evaluate(script, args)
}

func (d *Driver) Screenshot() ([]byte, error) {
	page, err := d.currentPage()
	if err != nil {
		return nil, err
	}
	return page.Screenshot()
}

func (d *Driver) currentPage() (playwright.Page, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil, webdriver.ErrSessionClosed
	}
	if d.page != nil {
		return d.page, nil
	}
	page, err := d.browser.NewPage()
	if err != nil {
		return nil, fmt.Errorf("failed to open page: %w", err)
	}
	d.page = page
	return page, nil
}
