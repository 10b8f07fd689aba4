/*
Package identification works out which browser a session is driving and
whether it falls within a described range of browsers.

# Versions

Browsers report versions in many shapes. NewVersion tries, in order: a
semantic version reported by the session, a dotted-numeric version reported
by the session, then the same two parses of the version the session was
requested with (marking the result presumed). If nothing parses the raw
string is kept as an UnrecognisedVersion, and with no string at all the
result is Missing. NewVersion never fails.

All versions share one total order:

	UnrecognisedVersion < SemanticVersion, DottedNumericVersion < Missing

Semantic and dotted-numeric versions compare on their numeric components,
so "128.0.6613.84" sorts after a bound written as "120".

# Identity and matching

A BrowserID is the name, platform and version of a browser. BrowserIDFactory
builds one from the capabilities a session reports, falling back to the
options it was requested with. BrowserInfoMatcher checks a BrowserID against
a BrowserInfo range, with inclusive version bounds:

	id, _ := factory.GetBrowserID(driver, requestedOptions)
	ok, err := matcher.Matches(&id, &identification.BrowserInfo{
		Name:       "Firefox",
		MinVersion: "115",
		MaxVersion: "128.0.1",
	})
*/
package identification
