package identification

import (
	"fmt"
	"strings"
)

// UnrecognisedVersion is a version string with no numeric structure that
// could be recognised. Unrecognised versions are ordered by ordinal string
// comparison.
type UnrecognisedVersion struct {
	raw      string
	presumed bool
}

// NewUnrecognisedVersion wraps a non-empty version string.
func NewUnrecognisedVersion(version string, presumed bool) (UnrecognisedVersion, error) {
	if version == "" {
		return UnrecognisedVersion{}, fmt.Errorf("%w: version must not be empty", ErrInvalidArgument)
	}
	return UnrecognisedVersion{raw: version, presumed: presumed}, nil
}

// Raw returns the version string exactly as it was supplied.
func (v UnrecognisedVersion) Raw() string { return v.raw }

func (v UnrecognisedVersion) Compare(other Version) int {
	o, ok := other.(UnrecognisedVersion)
	if !ok {
		return compareAcross(v, other)
	}
	return strings.Compare(v.raw, o.raw)
}

func (v UnrecognisedVersion) Equal(other Version) bool {
	o, ok := other.(UnrecognisedVersion)
	return ok && v.raw == o.raw
}

func (v UnrecognisedVersion) IsPresumed() bool { return v.presumed }

func (v UnrecognisedVersion) String() string { return v.raw + suffix(v.presumed) }

func (UnrecognisedVersion) rank() int { return rankUnrecognised }

// MissingVersion means that no version could be determined at all. Its
// only value is Missing.
type MissingVersion struct{}

// Missing is the version of a browser whose version is not known. It sorts
// after every other version.
var Missing = MissingVersion{}

func (MissingVersion) Compare(other Version) int {
	if _, ok := other.(MissingVersion); ok {
		return 0
	}
	return 1
}

func (MissingVersion) Equal(other Version) bool {
	_, ok := other.(MissingVersion)
	return ok
}

func (MissingVersion) IsPresumed() bool { return false }

func (MissingVersion) String() string { return "[Missing version]" }

func (MissingVersion) rank() int { return rankMissing }
