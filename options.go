package rhymecore

import (
	"github.com/rs/zerolog"

	"github.com/rhymetrace/rhymecore/common"
	"github.com/rhymetrace/rhymecore/internal/english"
)

// config holds every injected collaborator Analyze's pipeline can consult.
// It is private and rebuilt fresh on every call: the pipeline itself is
// purely functional, so nothing here is allowed to carry state across
// calls except through whatever the caller's own Dictionary, Oracle, or
// CacheStore values do internally.
type config struct {
	dictionary common.Dictionary
	oracle     common.Oracle
	cacheStore common.CacheStore
	language   string
}

// Option configures an optional collaborator injected into Analyze.
// Functional options keep the zero-collaborator call trivial while letting
// embedding callers wire in a dictionary, oracle, cache store, or logger.
type Option func(*config)

// WithDictionary injects the read-only English pronunciation dictionary
// consulted for English-routed tokens. Omitting it (or passing nil) routes
// every such token through letter-fallback G2P.
func WithDictionary(dict common.Dictionary) Option {
	return func(c *config) { c.dictionary = dict }
}

// WithOracle injects the optional external classifier used to rescue
// low-confidence or tail-less tokens when AnalysisFlags.Oracle is set. Has
// no effect if that flag is off.
func WithOracle(o common.Oracle) Option {
	return func(c *config) { c.oracle = o }
}

// WithCacheStore injects the backing key→blob store ResultCache reads and
// writes through when AnalysisFlags.Cache is set. Has no effect if that
// flag is off.
func WithCacheStore(store common.CacheStore) Option {
	return func(c *config) { c.cacheStore = store }
}

// WithLanguageHint records which dictionary language a call was run
// against, normalized to ISO 639-3 (e.g. "en" and "eng" both resolve to
// "eng") and surfaced back via AnalysisResult.Meta.Language. It is purely
// informational: Indic routing is driven entirely by per-token script
// detection, never by this hint.
func WithLanguageHint(code string) Option {
	return func(c *config) {
		canon, _ := english.CanonicalLanguageCode(code)
		c.language = canon
	}
}

// WithLogger replaces the package-level logger used by rhymecore and all
// of its internal components for the remainder of the process, mirroring
// common.SetLogger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) {
		common.SetLogger(l)
	}
}

func buildConfig(opts []Option) config {
	cfg := config{language: english.DefaultLanguage}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
