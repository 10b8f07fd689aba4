package quirks

// DataSource provides the quirks data to resolve quirks against.
type DataSource interface {
	GetQuirksData() *Data
}

// DataProvider serves quirks data merged from the data an application
// configures and the data it ships with.
type DataProvider struct {
	data *Data
}

// NewDataProvider merges configured over static, so that a quirk defined
// in configured replaces the static quirk of the same name. Either may be
// nil.
func NewDataProvider(configured, static *Data) *DataProvider {
	return &DataProvider{data: Merge(configured, static)}
}

// GetQuirksData returns the merged data. Callers must not modify it.
func (p *DataProvider) GetQuirksData() *Data {
	return p.data
}
