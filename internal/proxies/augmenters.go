package proxies

import (
	"fmt"

	"github.com/csf-dev/webdriverext/internal/identification"
	"github.com/csf-dev/webdriverext/internal/quirks"
	"github.com/csf-dev/webdriverext/internal/webdriver"
)

// Augmenter contributes at most one extra interface, and the interceptor
// serving it, to a CreationContext.
type Augmenter interface {
	Augment(ctx *CreationContext) error
}

// BrowserIDGetter identifies the browser behind a session.
type BrowserIDGetter interface {
	GetBrowserID(driver webdriver.WebDriver, requested *webdriver.DriverOptions) (identification.BrowserID, error)
}

// UnproxyingAugmenter adds HasUnproxiedWebDriver. It always applies.
type UnproxyingAugmenter struct{}

func (UnproxyingAugmenter) Augment(ctx *CreationContext) error {
	if ctx == nil {
		return fmt.Errorf("%w: context must not be nil", ErrInvalidArgument)
	}
	ctx.Add(unproxyingInterceptor{driver: ctx.Driver})
	return nil
}

// IdentificationAugmenter adds identification.HasBrowserID and records the
// identity on the context. It applies when identification or quirks are
// requested, because quirks cannot be resolved without an identity.
type IdentificationAugmenter struct {
	ids BrowserIDGetter
}

// NewIdentificationAugmenter creates an augmenter using ids.
func NewIdentificationAugmenter(ids BrowserIDGetter) *IdentificationAugmenter {
	return &IdentificationAugmenter{ids: ids}
}

func (a *IdentificationAugmenter) Augment(ctx *CreationContext) error {
	if ctx == nil {
		return fmt.Errorf("%w: context must not be nil", ErrInvalidArgument)
	}
	if !ctx.Options.AddIdentification && !ctx.Options.AddQuirks {
		return nil
	}
	if a.ids == nil {
		return fmt.Errorf("%w: no browser id factory configured", ErrInvalidArgument)
	}

	id, err := a.ids.GetBrowserID(ctx.Driver, ctx.Options.DriverOptions)
	if err != nil {
		return fmt.Errorf("failed to identify browser: %w", err)
	}

	ctx.BrowserID = &id
	ctx.Add(identificationInterceptor{id: id})
	return nil
}

// QuirksAugmenter adds quirks.HasQuirks. It must run after
// IdentificationAugmenter.
type QuirksAugmenter struct {
	resolver quirks.Resolver
}

// NewQuirksAugmenter creates an augmenter using resolver.
func NewQuirksAugmenter(resolver quirks.Resolver) *QuirksAugmenter {
	return &QuirksAugmenter{resolver: resolver}
}

func (a *QuirksAugmenter) Augment(ctx *CreationContext) error {
	if ctx == nil {
		return fmt.Errorf("%w: context must not be nil", ErrInvalidArgument)
	}
	if !ctx.Options.AddQuirks {
		return nil
	}
	if ctx.BrowserID == nil {
		return ErrMissingBrowserID
	}
	if a.resolver == nil {
		return fmt.Errorf("%w: no quirks resolver configured", ErrInvalidArgument)
	}

	names, err := a.resolver.GetApplicableQuirks(ctx.BrowserID)
	if err != nil {
		return fmt.Errorf("failed to resolve quirks: %w", err)
	}

	ctx.Add(quirksInterceptor{quirks: quirks.NewSet(names...)})
	return nil
}
