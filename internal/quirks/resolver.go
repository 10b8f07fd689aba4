package quirks

import (
	"fmt"
	"slices"
	"sort"

	"github.com/csf-dev/webdriverext/internal/identification"
	"github.com/csf-dev/webdriverext/internal/monitoring"
	"go.uber.org/zap"
)

// Resolver finds the quirks which affect a browser.
type Resolver interface {
	GetApplicableQuirks(id *identification.BrowserID) ([]string, error)
}

// HasQuirks is implemented by sessions which know the quirks affecting
// their browser.
type HasQuirks interface {
	// AllQuirks returns the names of every quirk affecting the browser.
	AllQuirks() []string
	// HasQuirk reports whether the named quirk affects the browser. Names
	// are case-sensitive.
	HasQuirk(name string) bool
}

// Set is a sorted, duplicate-free list of quirk names. It implements
// HasQuirks.
type Set []string

// NewSet creates a set from names.
func NewSet(names ...string) Set {
	s := slices.Clone(names)
	sort.Strings(s)
	return Set(slices.Compact(s))
}

func (s Set) AllQuirks() []string { return slices.Clone(s) }

func (s Set) HasQuirk(name string) bool {
	_, found := slices.BinarySearch(s, name)
	return found
}

// ApplicableQuirksProvider resolves quirks by matching a browser against
// every affected browser range of every quirk.
type ApplicableQuirksProvider struct {
	matcher identification.Matcher
	source  DataSource
	logger  *zap.Logger
	metrics *monitoring.Metrics
}

// NewApplicableQuirksProvider creates a resolver. Logger and metrics may be
// nil.
func NewApplicableQuirksProvider(matcher identification.Matcher, source DataSource, logger *zap.Logger, metrics *monitoring.Metrics) *ApplicableQuirksProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ApplicableQuirksProvider{
		matcher: matcher,
		source:  source,
		logger:  logger,
		metrics: metrics,
	}
}

// GetApplicableQuirks returns the sorted names of the quirks affecting id.
// A quirk is included once even when several of its ranges match.
func (p *ApplicableQuirksProvider) GetApplicableQuirks(id *identification.BrowserID) ([]string, error) {
	if id == nil {
		return nil, fmt.Errorf("%w: browser id must not be nil", identification.ErrInvalidArgument)
	}

	data := p.source.GetQuirksData()
	applicable := []string{}
	for _, name := range data.Names() {
		browsers := data.Quirks[name]
		if browsers == nil {
			continue
		}
		for i := range browsers.AffectedBrowsers {
			ok, err := p.matcher.Matches(id, &browsers.AffectedBrowsers[i])
			if err != nil {
				return nil, fmt.Errorf("quirk %q: %w", name, err)
			}
			if ok {
				applicable = append(applicable, name)
				break
			}
		}
	}

	p.metrics.RecordQuirks(applicable)
	p.logger.Debug("Resolved applicable quirks",
		zap.Stringer("browser", id),
		zap.Strings("quirks", applicable))

	return applicable, nil
}
