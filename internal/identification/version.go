package identification

import "cmp"

const presumedSuffix = " (presumed)"

// Version is a browser version. The set of implementations is closed:
// SemanticVersion, DottedNumericVersion, UnrecognisedVersion and
// MissingVersion.
//
// Versions are totally ordered and Compare(a, b) == 0 exactly when
// a.Equal(b). Whether a version is presumed never affects ordering or
// equality.
type Version interface {
	// Compare returns a negative number when the receiver sorts before
	// other, zero when they are equal and a positive number otherwise.
	// A nil other sorts before everything.
	Compare(other Version) int
	Equal(other Version) bool

	// IsPresumed reports whether the version came from the options the
	// session was requested with rather than from the live session.
	IsPresumed() bool
	String() string

	rank() int
}

// Ranks order the variants relative to one another. Semantic and
// dotted-numeric versions share a rank because they compare numerically.
const (
	rankUnrecognised = iota
	rankNumeric
	rankMissing
)

// numericVersion is implemented by the variants that have numeric
// components.
type numericVersion interface {
	Version
	Components() []int
}

// NewVersion returns the best version that can be derived from the version
// reported by a live session and the version that was requested when the
// session was created. It never fails: structured versions are preferred
// over opaque strings and reported values over requested ones, and when
// neither value is usable the result is Missing.
func NewVersion(reported, requested string) Version {
	if v, ok := ParseSemantic(reported, false); ok {
		return v
	}
	if v, ok := ParseDottedNumeric(reported, false); ok {
		return v
	}
	if v, ok := ParseSemantic(requested, true); ok {
		return v
	}
	if v, ok := ParseDottedNumeric(requested, true); ok {
		return v
	}
	if v, err := NewUnrecognisedVersion(reported, false); err == nil {
		return v
	}
	if v, err := NewUnrecognisedVersion(requested, true); err == nil {
		return v
	}
	return Missing
}

// compareAcross orders two versions of different variants.
func compareAcross(a, b Version) int {
	if b == nil {
		return 1
	}
	if c := cmp.Compare(a.rank(), b.rank()); c != 0 {
		return c
	}

	an, aok := a.(numericVersion)
	bn, bok := b.(numericVersion)
	if !aok || !bok {
		return 0
	}
	if c := compareComponents(an.Components(), bn.Components()); c != 0 {
		return c
	}

	// Same numbers, different notation: dotted-numeric sorts first.
	_, aDotted := a.(DottedNumericVersion)
	_, bDotted := b.(DottedNumericVersion)
	switch {
	case aDotted && !bDotted:
		return -1
	case !aDotted && bDotted:
		return 1
	default:
		return 0
	}
}

// compareComponents compares numeric components position by position. A
// missing component is less than any present one, so when one slice is a
// prefix of the other the longer slice is greater.
func compareComponents(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := cmp.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func suffix(presumed bool) string {
	if presumed {
		return presumedSuffix
	}
	return ""
}
