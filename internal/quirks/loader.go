package quirks

import (
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/csf-dev/webdriverext/internal/shared/formats"
)

// Decode parses quirks data in the given format.
func Decode(format formats.Format, data []byte) (*Data, error) {
	d := &Data{}
	if err := formats.Unmarshal(format, data, d); err != nil {
		return nil, fmt.Errorf("failed to decode quirks: %w", err)
	}
	d.normalize()
	return d, nil
}

// LoadFile reads quirks data from a file. The format is taken from the file
// extension.
func LoadFile(path string) (*Data, error) {
	format, err := formats.FromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read quirks file: %w", err)
	}
	d, err := Decode(format, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// LoadGlob loads every file in fsys matching a doublestar pattern such as
// "quirks/**/*.yaml" and merges them. Files are merged in lexical order of
// their paths; a quirk in a later file replaces the same quirk from an
// earlier one. No matching files gives empty data.
func LoadGlob(fsys fs.FS, pattern string) (*Data, error) {
	matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob failed: %w", err)
	}
	sort.Strings(matches)

	result := Empty()
	for _, path := range matches {
		format, err := formats.FromPath(path)
		if err != nil {
			return nil, err
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("failed to read quirks file: %w", err)
		}
		d, err := Decode(format, data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		result = Merge(d, result)
	}
	return result, nil
}
