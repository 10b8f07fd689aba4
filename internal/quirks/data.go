package quirks

import (
	"slices"
	"sort"

	"github.com/csf-dev/webdriverext/internal/identification"
)

// Data maps quirk names to the browsers which are affected by each quirk.
type Data struct {
	Quirks map[string]*BrowserInfoCollection `yaml:"quirks" toml:"quirks" json:"quirks"`
}

// BrowserInfoCollection is the set of browser ranges affected by one quirk.
type BrowserInfoCollection struct {
	AffectedBrowsers []identification.BrowserInfo `yaml:"affectedBrowsers" toml:"affectedBrowsers" json:"affectedBrowsers"`
}

// Empty returns quirks data with no quirks.
func Empty() *Data {
	return &Data{Quirks: map[string]*BrowserInfoCollection{}}
}

// DeepCopy returns a copy of d which shares no mutable state with it.
func (d *Data) DeepCopy() *Data {
	if d == nil {
		return Empty()
	}
	out := &Data{Quirks: make(map[string]*BrowserInfoCollection, len(d.Quirks))}
	for name, browsers := range d.Quirks {
		out.Quirks[name] = browsers.DeepCopy()
	}
	return out
}

// Names returns the quirk names in d, sorted.
func (d *Data) Names() []string {
	if d == nil {
		return nil
	}
	names := make([]string, 0, len(d.Quirks))
	for name := range d.Quirks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of quirks in d.
func (d *Data) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Quirks)
}

// normalize removes nil collections and duplicate browser ranges, leaving d
// as a map of quirk names to sets.
func (d *Data) normalize() {
	if d.Quirks == nil {
		d.Quirks = map[string]*BrowserInfoCollection{}
	}
	for name, browsers := range d.Quirks {
		if browsers == nil {
			d.Quirks[name] = &BrowserInfoCollection{}
			continue
		}
		browsers.dedupe()
	}
}

// DeepCopy returns a copy of c.
func (c *BrowserInfoCollection) DeepCopy() *BrowserInfoCollection {
	if c == nil {
		return &BrowserInfoCollection{}
	}
	return &BrowserInfoCollection{AffectedBrowsers: slices.Clone(c.AffectedBrowsers)}
}

func (c *BrowserInfoCollection) dedupe() {
	seen := make(map[identification.BrowserInfo]struct{}, len(c.AffectedBrowsers))
	unique := c.AffectedBrowsers[:0]
	for _, info := range c.AffectedBrowsers {
		if _, ok := seen[info]; ok {
			continue
		}
		seen[info] = struct{}{}
		unique = append(unique, info)
	}
	c.AffectedBrowsers = unique
}

// Merge combines two sets of quirks data. The result starts as a copy of
// secondary; each quirk in primary then replaces the quirk of the same name
// entirely. Neither argument is modified.
func Merge(primary, secondary *Data) *Data {
	result := secondary.DeepCopy()
	if primary == nil {
		return result
	}
	for name, browsers := range primary.Quirks {
		result.Quirks[name] = browsers.DeepCopy()
	}
	return result
}
