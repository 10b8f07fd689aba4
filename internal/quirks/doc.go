// Package quirks records known deviations in browser behaviour and works
// out which of them affect a given browser.
//
// A quirk is a named flag, such as "CannotDisplayYellow", associated with
// one or more ranges of affected browsers. Quirks data usually comes from
// configuration files:
//
//	quirks:
//	  CannotDisplayYellow:
//	    affectedBrowsers:
//	      - name: FooBrowser
//	        minVersion: "1.2.3"
//	        maxVersion: "4.5.6"
//
// Data from several sources is combined with Merge, where a quirk in the
// primary source replaces the whole entry of the same name in the secondary
// source. ApplicableQuirksProvider then resolves the quirks affecting an
// identification.BrowserID.
package quirks
