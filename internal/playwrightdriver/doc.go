// Package playwrightdriver provides Playwright-backed driver types for the
// factories registry.
package playwrightdriver
