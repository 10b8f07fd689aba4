/*
Package proxies adds capabilities to a browser session without changing the
session itself.

Factory.GetProxyWebDriver wraps a session in a proxy. The proxy forwards
every WebDriver call to the session and implements extra interfaces:

  - HasUnproxiedWebDriver, always, returning the wrapped session
  - identification.HasBrowserID, when identification or quirks are requested
  - quirks.HasQuirks, when quirks are requested

# Pipeline

Each call builds a CreationContext holding the session, the capability
interfaces it implements and the extra interfaces and interceptors added so
far. The augmenters then run in a fixed order: unproxying, identification,
quirks. The quirks augmenter reads the identity recorded by the
identification augmenter. Finally the context is turned into one of three
proxy types depending on the extra interfaces it collected. If any step
fails no proxy is returned.

# Using a proxy

A proxy cannot implement the optional interfaces of the session it wraps,
so query capabilities with As rather than a type assertion:

	driver, err := factory.GetProxyWebDriver(session, &proxies.CreationOptions{AddQuirks: true})
	if err != nil {
		return err
	}

	if proxies.HasQuirk(driver, "CannotDisplayYellow") {
		// work around it
	}
	if shooter, ok := proxies.As[webdriver.TakesScreenshot](driver); ok {
		png, err := shooter.Screenshot()
		...
	}
	original := proxies.Unproxy(driver)
*/
package proxies
