package factories

import (
	"fmt"
	"os"

	"github.com/csf-dev/webdriverext/internal/monitoring"
	"github.com/csf-dev/webdriverext/internal/shared/formats"
	"github.com/csf-dev/webdriverext/internal/webdriver"
	"go.uber.org/zap"
)

// optionsDocument is the file form of an OptionsCollection:
//
//	selectedConfiguration: LocalChrome
//	driverConfigurations:
//	  LocalChrome:
//	    driverType: Chromium
//	    gridUrl: ws://localhost:3000/
//	    addBrowserQuirks: true
//	    options:
//	      browserVersion: "128"
type optionsDocument struct {
	SelectedConfiguration string                              `yaml:"selectedConfiguration" toml:"selectedConfiguration" json:"selectedConfiguration"`
	DriverConfigurations  map[string]*creationOptionsDocument `yaml:"driverConfigurations" toml:"driverConfigurations" json:"driverConfigurations"`
}

type creationOptionsDocument struct {
	DriverType        string `yaml:"driverType" toml:"driverType" json:"driverType"`
	GridURL           string `yaml:"gridUrl" toml:"gridUrl" json:"gridUrl"`
	DriverFactoryType string `yaml:"driverFactoryType" toml:"driverFactoryType" json:"driverFactoryType"`
	OptionsCustomizer string `yaml:"optionsCustomizer" toml:"optionsCustomizer" json:"optionsCustomizer"`

	// Pointers distinguish an absent flag, which keeps its default, from an
	// explicit false.
	AddBrowserIdentification *bool `yaml:"addBrowserIdentification" toml:"addBrowserIdentification" json:"addBrowserIdentification"`
	AddBrowserQuirks         *bool `yaml:"addBrowserQuirks" toml:"addBrowserQuirks" json:"addBrowserQuirks"`

	Options webdriver.DriverOptions `yaml:"options" toml:"options" json:"options"`
}

// ConfigurationParser reads driver configurations. Configurations which
// cannot be used are logged and left out rather than failing the whole
// document.
type ConfigurationParser struct {
	types   *TypesProvider
	logger  *zap.Logger
	metrics *monitoring.Metrics
}

// NewConfigurationParser creates a parser. Logger and metrics may be nil.
func NewConfigurationParser(types *TypesProvider, logger *zap.Logger, metrics *monitoring.Metrics) *ConfigurationParser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConfigurationParser{types: types, logger: logger, metrics: metrics}
}

// Parse decodes a document in the given format.
func (p *ConfigurationParser) Parse(format formats.Format, data []byte) (*OptionsCollection, error) {
	var doc optionsDocument
	if err := formats.Unmarshal(format, data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode driver configuration: %w", err)
	}

	collection := &OptionsCollection{
		SelectedConfiguration: doc.SelectedConfiguration,
		DriverConfigurations:  make(map[string]*CreationOptions, len(doc.DriverConfigurations)),
	}
	for _, name := range sortedKeys(doc.DriverConfigurations) {
		opts, err := p.driverConfiguration(doc.DriverConfigurations[name])
		if err != nil {
			p.logger.Error("Invalid driver configuration will be omitted",
				zap.String("configuration", name),
				zap.Error(err))
			p.metrics.IncConfigsOmitted()
			continue
		}
		collection.DriverConfigurations[name] = opts
	}

	return collection, nil
}

// Load reads a configuration file. The format is taken from the file
// extension.
func (p *ConfigurationParser) Load(path string) (*OptionsCollection, error) {
	format, err := formats.FromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read driver configuration: %w", err)
	}
	collection, err := p.Parse(format, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return collection, nil
}

// driverConfiguration validates one configuration. A configuration
// needs either a DriverFactoryType or a known DriverType, and any named
// options customizer must be registered.
func (p *ConfigurationParser) driverConfiguration(doc *creationOptionsDocument) (*CreationOptions, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: configuration is empty", ErrInvalidArgument)
	}

	opts := NewCreationOptions()
	opts.DriverType = doc.DriverType
	opts.GridURL = doc.GridURL
	opts.DriverFactoryType = doc.DriverFactoryType
	opts.OptionsCustomizer = doc.OptionsCustomizer
	opts.Options = *doc.Options.Clone()
	if doc.AddBrowserIdentification != nil {
		opts.AddBrowserIdentification = *doc.AddBrowserIdentification
	}
	if doc.AddBrowserQuirks != nil {
		opts.AddBrowserQuirks = *doc.AddBrowserQuirks
	}

	if opts.DriverFactoryType == "" {
		if opts.DriverType == "" {
			return nil, fmt.Errorf("%w: driverType is mandatory unless driverFactoryType is specified", ErrInvalidArgument)
		}
		if _, err := p.types.GetDriverType(opts.DriverType); err != nil {
			return nil, err
		}
	}
	if opts.OptionsCustomizer != "" {
		if _, err := p.types.GetOptionsCustomizer(opts.OptionsCustomizer); err != nil {
			return nil, err
		}
	}

	return opts, nil
}
