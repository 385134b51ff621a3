//go:generate go run ./generator

// Package rhymecore is the rhyme-detection core: it turns raw lyric text
// in English, Devanagari Hindi, romanized Hinglish, or casual slang into a
// uniform phoneme space, extracts comparable rhyme tails, and clusters
// tokens into stable rhyme classes that a renderer can color-highlight.
//
// The package is purely functional over its inputs: the same lyrics,
// flags, and injected collaborators always produce the same
// AnalysisResult. Collaborators (a pronunciation dictionary, an external
// oracle, a cache store) are supplied through Option values rather than
// package-level globals.
package rhymecore

import (
	"context"

	"github.com/rhymetrace/rhymecore/common"
	"github.com/rhymetrace/rhymecore/internal/cache"

	// internal/script registers the script detector that common.Tokenize
	// calls through common.SetScriptDetector; importing it for side
	// effects keeps common free of a dependency on its own internal
	// consumer (see common/tokenize.go's SetScriptDetector doc).
	_ "github.com/rhymetrace/rhymecore/internal/script"
)

// Re-exported data-model types so callers only need to import this one
// package for the common case; common remains the canonical definition
// site and the type to use for injected-collaborator interfaces.
type (
	AnalysisFlags    = common.AnalysisFlags
	AnalysisResult   = common.AnalysisResult
	AnalysisMeta     = common.AnalysisMeta
	Token            = common.Token
	Cluster          = common.Cluster
	WordClusterEntry = common.WordClusterEntry
	Dictionary       = common.Dictionary
	MapDictionary    = common.MapDictionary
	Oracle           = common.Oracle
	CacheStore       = common.CacheStore
)

// Analyze runs the rhyme-detection pipeline over lyrics with no
// cancellation deadline. It is a thin wrapper over AnalyzeWithContext using
// context.Background(), for callers that don't need to bound the Oracle
// call.
func Analyze(lyrics string, flags AnalysisFlags, opts ...Option) (*AnalysisResult, error) {
	return AnalyzeWithContext(context.Background(), lyrics, flags, opts...)
}

// AnalyzeWithContext runs the full analysis pipeline over lyrics. ctx
// bounds only the Oracle calls; cache reads and writes go through the
// CacheStore without it, and the local phoneme pipeline never blocks on it. A failing external collaborator never fails the
// overall call: the result comes back with Meta.Degraded set and
// machine-readable Reasons instead.
func AnalyzeWithContext(ctx context.Context, lyrics string, flags AnalysisFlags, opts ...Option) (*AnalysisResult, error) {
	cfg := buildConfig(opts)

	tokens := common.Tokenize(lyrics)
	if len(tokens) == 0 {
		// Empty lyrics, or lyrics with no tokenizable characters, is the
		// success path, not an error.
		return &common.AnalysisResult{
			Tokens:   []common.Token{},
			Clusters: []common.Cluster{},
			Meta:     common.AnalysisMeta{Language: cfg.language, ProviderVersion: common.ProviderVersion},
		}, nil
	}

	meta := common.AnalysisMeta{Language: cfg.language, ProviderVersion: common.ProviderVersion}

	var resultCache *cache.ResultCache
	if flags.Cache && cfg.cacheStore != nil {
		resultCache = cache.NewResultCache(cfg.cacheStore)

		lookup := resultCache.Lookup(lyrics, flags)
		if lookup.Hit {
			return &common.AnalysisResult{Tokens: tokens, Clusters: lookup.Clusters, Meta: meta}, nil
		}
		if lookup.Corrupted {
			// A corrupted entry is treated as a miss: recompute and
			// overwrite, but record that it happened.
			meta.Degraded = true
			meta.Reasons = append(meta.Reasons, "cache_read_corruption")
		}
	}

	clusters, reasons := computeClusters(ctx, tokens, flags, cfg)
	if len(reasons) > 0 {
		meta.Degraded = true
		meta.Reasons = append(meta.Reasons, reasons...)
	}

	if resultCache != nil {
		if err := resultCache.Store(lyrics, flags, clusters); err != nil {
			// Log and return the computed result anyway; a cache write is
			// never allowed to fail Analyze.
			logger := common.Logger()
			logger.Warn().Err(err).Int("tokens", len(tokens)).Msg("rhymecore: cache write failed")
			meta.Degraded = true
			meta.Reasons = append(meta.Reasons, "cache_write_failure")
		}
	}

	return &common.AnalysisResult{Tokens: tokens, Clusters: clusters, Meta: meta}, nil
}
