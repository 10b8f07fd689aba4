// Package webdriver defines the boundary between this module and a concrete
// browser-automation driver.
//
// A session is only known through the WebDriver interface plus whichever
// optional capability interfaces it happens to implement (HasCapabilities,
// ExecutesScript, TakesScreenshot, or any interface added with
// RegisterInterface). Nothing in this module depends on a concrete driver
// type.
//
// Example Usage:
//
//	if caps, ok := driver.(webdriver.HasCapabilities); ok {
//		name := caps.Capabilities().String(webdriver.BrowserNameCapability)
//	}
package webdriver
