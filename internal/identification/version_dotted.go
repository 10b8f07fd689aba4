package identification

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

var dottedNumericPattern = regexp.MustCompile(`\d+(?:\.\d+)*`)

// DottedNumericVersion is a version made of one or more non-negative
// integers separated by dots, such as "128.0.6613.84".
type DottedNumericVersion struct {
	components []int
	presumed   bool
}

// NewDottedNumericVersion creates a version from its components.
func NewDottedNumericVersion(components []int, presumed bool) (DottedNumericVersion, error) {
	if len(components) == 0 {
		return DottedNumericVersion{}, fmt.Errorf("%w: a dotted-numeric version needs at least one component", ErrInvalidArgument)
	}
	for _, c := range components {
		if c < 0 {
			return DottedNumericVersion{}, fmt.Errorf("%w: version component %d is negative", ErrInvalidArgument, c)
		}
	}
	return DottedNumericVersion{components: slices.Clone(components), presumed: presumed}, nil
}

// ParseDottedNumeric finds the first run of dot-separated integers anywhere
// in version. Text before and after the run is ignored, so
// "SomeKindOfPrefix3.4.5AVeryLongSuffix" parses as 3.4.5.
func ParseDottedNumeric(version string, presumed bool) (DottedNumericVersion, bool) {
	match := dottedNumericPattern.FindString(version)
	if match == "" {
		return DottedNumericVersion{}, false
	}

	parts := strings.Split(match, ".")
	components := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return DottedNumericVersion{}, false
		}
		components = append(components, n)
	}

	v, err := NewDottedNumericVersion(components, presumed)
	return v, err == nil
}

// Components returns a copy of the version components.
func (v DottedNumericVersion) Components() []int {
	return slices.Clone(v.components)
}

func (v DottedNumericVersion) Compare(other Version) int {
	o, ok := other.(DottedNumericVersion)
	if !ok {
		return compareAcross(v, other)
	}
	return compareComponents(v.components, o.components)
}

func (v DottedNumericVersion) Equal(other Version) bool {
	o, ok := other.(DottedNumericVersion)
	return ok && slices.Equal(v.components, o.components)
}

func (v DottedNumericVersion) IsPresumed() bool { return v.presumed }

func (v DottedNumericVersion) String() string {
	parts := make([]string, len(v.components))
	for i, c := range v.components {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, ".") + suffix(v.presumed)
}

func (DottedNumericVersion) rank() int { return rankNumeric }
