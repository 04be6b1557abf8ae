package autolink

import (
	"fmt"
	"sync"
)

// Option configures the extractor returned by New.
type Option func(*extractorConfig)

type extractorConfig struct {
	kinds             []LinkKind
	domainMustHaveDot bool
	localPart         LocalPartMode
}

func defaultExtractorConfig() extractorConfig {
	return extractorConfig{
		kinds:             AllKinds(),
		domainMustHaveDot: true,
		localPart:         LocalPartLax,
	}
}

// WithKinds restricts extraction to the given kinds. Duplicates are ignored.
func WithKinds(kinds ...LinkKind) Option {
	return func(cfg *extractorConfig) {
		cfg.kinds = append([]LinkKind(nil), kinds...)
	}
}

// WithEmailDomainMustHaveDot controls whether email domains need a dot. It defaults to
// true, so "foo@localhost" is not a link.
func WithEmailDomainMustHaveDot(enabled bool) Option {
	return func(cfg *extractorConfig) {
		cfg.domainMustHaveDot = enabled
	}
}

// WithEmailLocalPart selects the local-part validation mode for email addresses.
func WithEmailLocalPart(mode LocalPartMode) Option {
	return func(cfg *extractorConfig) {
		cfg.localPart = mode
	}
}

// New returns an Extractor with the standard scanners for the configured kinds.
func New(opts ...Option) (*Extractor, error) {
	cfg := defaultExtractorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	b := NewBuilder()
	seen := make(map[LinkKind]bool, len(cfg.kinds))
	for _, kind := range cfg.kinds {
		if seen[kind] {
			continue
		}
		seen[kind] = true
		switch kind {
		case KindURL:
			b.WithScanner(':', URLScanner{})
		case KindWWW:
			b.WithScanner('w', WWWScanner{}).WithScanner('W', WWWScanner{})
		case KindEmail:
			b.WithScanner('@', EmailScanner{
				DomainMustHaveDot: cfg.domainMustHaveDot,
				LocalPart:         cfg.localPart,
			})
		default:
			return nil, fmt.Errorf("autolink: invalid link kind %d", uint8(kind))
		}
	}
	return b.Build()
}

var (
	defaultOnce      sync.Once
	defaultExtractor *Extractor
)

// Default returns a shared Extractor for all link kinds with default options.
func Default() *Extractor {
	defaultOnce.Do(func() {
		ex, err := New()
		if err != nil {
			panic(err)
		}
		defaultExtractor = ex
	})
	return defaultExtractor
}
