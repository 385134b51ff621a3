package rhymecore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rhymecore "github.com/rhymetrace/rhymecore"
	"github.com/rhymetrace/rhymecore/common"
	"github.com/rhymetrace/rhymecore/internal/cache"
)

func surfacesOf(cluster rhymecore.Cluster) []string {
	out := make([]string, len(cluster.Members))
	for i, m := range cluster.Members {
		out[i] = m.Surface
	}
	return out
}

func clusterContaining(t *testing.T, clusters []rhymecore.Cluster, surface string) rhymecore.Cluster {
	t.Helper()
	for _, c := range clusters {
		for _, m := range c.Members {
			if m.Surface == surface {
				return c
			}
		}
	}
	t.Fatalf("no cluster contains %q", surface)
	return rhymecore.Cluster{}
}

// Basic rhyme detection over plain English lyrics with no injected
// dictionary (letter-fallback G2P only).
func TestAnalyze_BasicEnglishScenario(t *testing.T) {
	result, err := rhymecore.Analyze("cat hat bat dog log fog car star bar", rhymecore.AnalysisFlags{})
	require.NoError(t, err)
	require.Len(t, result.Tokens, 9)
	require.Len(t, result.Clusters, 3)

	assert.Equal(t, []string{"cat", "hat", "bat"}, surfacesOf(result.Clusters[0]))
	assert.Equal(t, []string{"dog", "log", "fog"}, surfacesOf(result.Clusters[1]))
	assert.Equal(t, []string{"car", "star", "bar"}, surfacesOf(result.Clusters[2]))
}

// Empty lyrics produce an empty result, not an error.
func TestAnalyze_EmptyLyrics(t *testing.T) {
	result, err := rhymecore.Analyze("", rhymecore.AnalysisFlags{})
	require.NoError(t, err)
	assert.Empty(t, result.Tokens)
	assert.Empty(t, result.Clusters)
}

// A single word never forms a (suppressed) class.
func TestAnalyze_SingleWordHasNoClusters(t *testing.T) {
	result, err := rhymecore.Analyze("cat", rhymecore.AnalysisFlags{})
	require.NoError(t, err)
	require.Len(t, result.Tokens, 1)
	assert.Empty(t, result.Clusters)
}

// A token whose letter-fallback G2P produces no phonemes at all (digits,
// which the tokenizer accepts as lexical content but no G2P rule covers)
// collapses to an empty tail and NoRhymeClass, never surviving to the
// clustered output even when repeated verbatim.
func TestAnalyze_EmptyTailTokensSuppressed(t *testing.T) {
	result, err := rhymecore.Analyze("123 123", rhymecore.AnalysisFlags{})
	require.NoError(t, err)
	assert.Empty(t, result.Clusters)
}

// Hinglish routing through transliteration and the Hindi phoneme mapper
// clusters "tera" and "mera" together.
func TestAnalyze_HinglishScenario(t *testing.T) {
	result, err := rhymecore.Analyze("tera mera", rhymecore.AnalysisFlags{Multilingual: true})
	require.NoError(t, err)
	require.Len(t, result.Clusters, 1)
	assert.Equal(t, []string{"tera", "mera"}, surfacesOf(result.Clusters[0]))
}

// Devanagari-only input routes through the Hindi phoneme mapper directly
// and clusters on the shared tail.
func TestAnalyze_DevanagariScenario(t *testing.T) {
	result, err := rhymecore.Analyze("काला गला", rhymecore.AnalysisFlags{Multilingual: true})
	require.NoError(t, err)
	require.Len(t, result.Clusters, 1)
	assert.Equal(t, []string{"काला", "गला"}, surfacesOf(result.Clusters[0]))
}

// Devanagari input with multilingual off is routed as English
// letter-fallback and must not crash; it simply won't find a meaningful
// English pronunciation for non-Latin letters.
func TestAnalyze_DevanagariWithoutMultilingualDoesNotCrash(t *testing.T) {
	assert.NotPanics(t, func() {
		_, err := rhymecore.Analyze("काला गला", rhymecore.AnalysisFlags{})
		require.NoError(t, err)
	})
}

// A second cached call with the same lyrics+flags returns the same
// clusters and performs zero further dictionary lookups.
func TestAnalyze_CacheRoundTripSkipsPhonemeWork(t *testing.T) {
	dict := newCountingDictionary(common.MapDictionary{})
	store := cache.NewMemoryCacheStore()

	flags := rhymecore.AnalysisFlags{Cache: true}
	first, err := rhymecore.Analyze("cat hat", flags, rhymecore.WithDictionary(dict), rhymecore.WithCacheStore(store))
	require.NoError(t, err)
	require.Len(t, first.Clusters, 1)

	callsAfterFirst := dict.calls

	second, err := rhymecore.Analyze("cat hat", flags, rhymecore.WithDictionary(dict), rhymecore.WithCacheStore(store))
	require.NoError(t, err)

	assert.Equal(t, first.Clusters, second.Clusters)
	assert.Equal(t, callsAfterFirst, dict.calls, "cache hit must not re-run the phoneme pipeline")
}

// An oracle rescues a vowel-less out-of-vocabulary token (letter-fallback,
// so low-confidence) by assigning it to an already-formed class.
func TestAnalyze_OracleMergesUnknownWordIntoExistingClass(t *testing.T) {
	baseline, err := rhymecore.Analyze("cat hat", rhymecore.AnalysisFlags{})
	require.NoError(t, err)
	require.Len(t, baseline.Clusters, 1)
	existingClassID := baseline.Clusters[0].ClassID

	stub := &stubOracle{
		assignments: map[string]common.OracleAssignment{
			"skrrt": {ExistingClassID: existingClassID, IsNew: false},
		},
	}

	result, err := rhymecore.Analyze(
		"cat hat skrrt",
		rhymecore.AnalysisFlags{Oracle: true},
		rhymecore.WithOracle(stub),
	)
	require.NoError(t, err)
	require.Len(t, result.Clusters, 1)

	merged := clusterContaining(t, result.Clusters, "skrrt")
	assert.Equal(t, []string{"cat", "hat", "skrrt"}, surfacesOf(merged))
}

// A canceled context must fail the Oracle call open: augmentation is
// skipped and the non-augmented result is returned, never a partial mix.
func TestAnalyze_OracleSkippedOnCanceledContext(t *testing.T) {
	stub := &stubOracle{
		assignments: map[string]common.OracleAssignment{
			"skrrt": {IsNew: false, ExistingClassID: 999},
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := rhymecore.AnalyzeWithContext(
		ctx,
		"cat hat skrrt",
		rhymecore.AnalysisFlags{Oracle: true},
		rhymecore.WithOracle(stub),
	)
	require.NoError(t, err)
	require.Len(t, result.Clusters, 1)
	assert.Equal(t, []string{"cat", "hat"}, surfacesOf(result.Clusters[0]))
	assert.True(t, result.Meta.Degraded)
	assert.Contains(t, result.Meta.Reasons, "oracle_failure")
}

// Multisyllable clusters coexist alongside basic clusters: repeating a
// two-word phrase produces both a basic class (cat/hat share a tail) and a
// distinct multisyllable class for the repeated two-syllable window.
func TestAnalyze_MultisyllableCoexistsWithBasic(t *testing.T) {
	result, err := rhymecore.Analyze("cat hat cat hat", rhymecore.AnalysisFlags{Multisyllable: true})
	require.NoError(t, err)
	require.Len(t, result.Clusters, 2)

	for _, c := range result.Clusters {
		assert.Equal(t, []string{"cat", "hat", "cat", "hat"}, surfacesOf(c))
	}
	assert.NotEqual(t, result.Clusters[0].ClassID, result.Clusters[1].ClassID)
}

// countingDictionary instruments Lookup so TestAnalyze_CacheRoundTripSkipsPhonemeWork
// can observe whether a cache hit really skipped the phoneme pipeline.
type countingDictionary struct {
	inner common.MapDictionary
	calls int
}

func newCountingDictionary(inner common.MapDictionary) *countingDictionary {
	return &countingDictionary{inner: inner}
}

func (d *countingDictionary) Lookup(word string) ([]common.PhonemeSequence, bool) {
	d.calls++
	seqs, ok := d.inner[word]
	return seqs, ok
}

// stubOracle is a minimal common.Oracle for tests: Classify returns a fixed
// map, GuessPhonemes is never exercised by these scenarios.
type stubOracle struct {
	assignments map[string]common.OracleAssignment
}

func (o *stubOracle) Classify(_ context.Context, words []string, _ []common.ExistingClassesSummary) (map[string]common.OracleAssignment, error) {
	out := make(map[string]common.OracleAssignment, len(words))
	for _, w := range words {
		if a, ok := o.assignments[w]; ok {
			out[w] = a
		}
	}
	return out, nil
}

func (o *stubOracle) GuessPhonemes(_ context.Context, _ string) (common.PhonemeSequence, error) {
	return common.PhonemeSequence{}, nil
}
