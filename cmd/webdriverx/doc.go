/*
Webdriverx identifies browsers, resolves the quirks which apply to them and
creates Playwright-backed sessions from driver configuration files.

Usage:

	webdriverx [flags] <command>

The commands are:

	identify   identify a browser and list its quirks
	quirks     print the merged quirks data
	compare    compare two browser versions
	drivers    list driver types and driver configurations

Every flag can also be set from the environment; see package config.
*/
package main
