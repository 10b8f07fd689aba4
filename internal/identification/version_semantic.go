package identification

import (
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// SemanticVersion is a version which follows semantic versioning
// precedence rules.
type SemanticVersion struct {
	// value is the normalised form accepted by x/mod/semver: a leading "v",
	// optionally shorthand ("v1", "v1.2"), with pre-release and build parts.
	value      string
	components []int
	presumed   bool
}

// ParseSemantic parses a semantic version leniently: a leading "v" or "V" is
// optional and the minor and patch numbers may be omitted.
func ParseSemantic(version string, presumed bool) (SemanticVersion, bool) {
	trimmed := strings.TrimSpace(version)
	if trimmed == "" {
		return SemanticVersion{}, false
	}
	if trimmed[0] == 'v' || trimmed[0] == 'V' {
		trimmed = trimmed[1:]
	}

	value := "v" + trimmed
	if !semver.IsValid(value) {
		return SemanticVersion{}, false
	}

	components, err := semanticComponents(value)
	if err != nil {
		return SemanticVersion{}, false
	}

	return SemanticVersion{value: value, components: components, presumed: presumed}, true
}

func semanticComponents(value string) ([]int, error) {
	core := strings.TrimPrefix(semver.Canonical(value), "v")
	if i := strings.IndexByte(core, '-'); i >= 0 {
		core = core[:i]
	}

	parts := strings.Split(core, ".")
	components := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		components = append(components, n)
	}
	return components, nil
}

// Components returns major, minor and patch.
func (v SemanticVersion) Components() []int {
	return append([]int(nil), v.components...)
}

// Prerelease returns the pre-release part without its leading "-", if any.
func (v SemanticVersion) Prerelease() string {
	return strings.TrimPrefix(semver.Prerelease(v.value), "-")
}

// Build returns the build metadata without its leading "+", if any.
func (v SemanticVersion) Build() string {
	return strings.TrimPrefix(semver.Build(v.value), "+")
}

func (v SemanticVersion) Compare(other Version) int {
	o, ok := other.(SemanticVersion)
	if !ok {
		return compareAcross(v, other)
	}
	if c := semver.Compare(v.value, o.value); c != 0 {
		return c
	}
	// Precedence ignores build metadata; order on it so that only equal
	// versions compare as zero.
	return strings.Compare(semver.Build(v.value), semver.Build(o.value))
}

func (v SemanticVersion) Equal(other Version) bool {
	if _, ok := other.(SemanticVersion); !ok {
		return false
	}
	return v.Compare(other) == 0
}

func (v SemanticVersion) IsPresumed() bool { return v.presumed }

func (v SemanticVersion) String() string {
	return strings.TrimPrefix(semver.Canonical(v.value), "v") + semver.Build(v.value) + suffix(v.presumed)
}

func (SemanticVersion) rank() int { return rankNumeric }
