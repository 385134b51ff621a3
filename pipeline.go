package rhymecore

import (
	"context"

	"github.com/rhymetrace/rhymecore/common"
	"github.com/rhymetrace/rhymecore/internal/cluster"
	"github.com/rhymetrace/rhymecore/internal/english"
	"github.com/rhymetrace/rhymecore/internal/hindi"
	"github.com/rhymetrace/rhymecore/internal/hinglish"
	"github.com/rhymetrace/rhymecore/internal/oracle"
	"github.com/rhymetrace/rhymecore/internal/tail"
	"github.com/rhymetrace/rhymecore/internal/unify"
)

// tokenState is the per-token working state threaded through the pipeline:
// the unified projection of whichever leaf mapper handled the token's
// script, the extracted tail, and whether the phoneme sequence came from
// low-confidence letter-fallback G2P (the signal that decides oracle
// eligibility).
type tokenState struct {
	unified       common.UnifiedSequence
	tail          common.RhymeTail
	lowConfidence bool
}

// buildTokenStates runs the per-token half of the pipeline: transliterate
// then hindi.Map for Hinglish tokens, hindi.Map directly for Devanagari
// tokens, english.Map otherwise, then unification and tail extraction for
// all three. When flags.Multilingual is off every token is routed as
// English regardless of its detected Script, without mutating the token's
// own immutable Script field.
func buildTokenStates(tokens []common.Token, flags common.AnalysisFlags, dict common.Dictionary) []tokenState {
	states := make([]tokenState, len(tokens))

	for i, tok := range tokens {
		routeAs := tok.Script
		if !flags.Multilingual {
			routeAs = common.ScriptEnglish
		}

		var seq common.PhonemeSequence
		lowConfidence := false

		switch routeAs {
		case common.ScriptDevanagari:
			seq = hindi.Map(tok.Normalized)
		case common.ScriptHinglish:
			seq = hindi.Map(hinglish.Transliterate(tok.Normalized))
		default:
			seq, lowConfidence = english.MapWithConfidence(dict, tok.Normalized)
		}

		unified := unify.Map(seq, len(tok.Surface))
		rhymeTail := tail.Extract(unified)

		states[i] = tokenState{
			unified:       unified,
			tail:          rhymeTail,
			lowConfidence: lowConfidence || len(rhymeTail) == 0,
		}
	}

	return states
}

// computeClusters runs the full local pipeline plus, when requested,
// oracle augmentation, and returns the combined basic+multisyllable
// cluster list in deterministic order, along with any degradation reasons
// encountered.
func computeClusters(ctx context.Context, tokens []common.Token, flags common.AnalysisFlags, cfg config) ([]common.Cluster, []string) {
	states := buildTokenStates(tokens, flags, cfg.dictionary)

	classIDs := make([]common.RhymeClassID, len(tokens))
	for i, st := range states {
		classIDs[i] = cluster.ClassIDOf(st.tail)
	}

	var reasons []string
	if flags.Oracle && cfg.oracle != nil {
		var degraded bool
		classIDs, degraded = augmentWithOracle(ctx, tokens, states, classIDs, cfg.oracle)
		if degraded {
			reasons = append(reasons, "oracle_failure")
		}
	}

	basic := cluster.FromClassIDs(tokens, classIDs)

	clusters := basic
	if flags.Multisyllable {
		multi := computeMultisyllable(tokens, states)
		clusters = mergeClusterSets(basic, multi)
	}

	return clusters, reasons
}

// augmentWithOracle offers only the tokens flagged low-confidence by
// buildTokenStates to the oracle. A returned existing class ID reassigns
// the token outright; a "new" verdict asks for a phoneme guess that
// re-enters unification, tail extraction, and class-id hashing before
// being folded back in, so the normal collision logic applies to oracle
// guesses exactly as it would to any other tail. Any oracle failure
// (including a canceled ctx) leaves classIDs untouched and is reported as
// degraded.
func augmentWithOracle(ctx context.Context, tokens []common.Token, states []tokenState, classIDs []common.RhymeClassID, o common.Oracle) ([]common.RhymeClassID, bool) {
	var unknownIdx []int
	var unknownWords []string
	for i, st := range states {
		if st.lowConfidence {
			unknownIdx = append(unknownIdx, i)
			unknownWords = append(unknownWords, tokens[i].Normalized)
		}
	}
	if len(unknownWords) == 0 {
		return classIDs, false
	}

	augmentor := oracle.New(o)
	assignments, ok := augmentor.Classify(ctx, unknownWords, summarizeClasses(tokens, classIDs))
	if !ok {
		return classIDs, true
	}

	out := append([]common.RhymeClassID(nil), classIDs...)
	for _, i := range unknownIdx {
		word := tokens[i].Normalized
		assignment, found := assignments[word]
		if !found {
			continue
		}

		if !assignment.IsNew {
			out[i] = assignment.ExistingClassID
			continue
		}

		guess, ok := augmentor.GuessPhonemes(ctx, word)
		if !ok {
			// Never a partial mix: a failed guess mid-merge abandons the
			// whole augmentation pass, not just this word.
			return classIDs, true
		}
		unified := unify.Map(guess, len(tokens[i].Surface))
		out[i] = cluster.ClassIDOf(tail.Extract(unified))
	}

	return out, false
}

// summarizeClasses builds the compact existing-classes summary the Oracle
// interface expects, capped at a handful of sample words per class so the
// payload handed to an external classifier stays small.
func summarizeClasses(tokens []common.Token, classIDs []common.RhymeClassID) []common.ExistingClassesSummary {
	const maxSamples = 3

	order := make([]common.RhymeClassID, 0)
	samples := make(map[common.RhymeClassID][]string)
	seen := make(map[common.RhymeClassID]bool)

	for i, classID := range classIDs {
		if classID == common.NoRhymeClass {
			continue
		}
		if !seen[classID] {
			seen[classID] = true
			order = append(order, classID)
		}
		if len(samples[classID]) < maxSamples {
			samples[classID] = append(samples[classID], tokens[i].Surface)
		}
	}

	summaries := make([]common.ExistingClassesSummary, 0, len(order))
	for _, classID := range order {
		summaries = append(summaries, common.ExistingClassesSummary{
			ClassID:     classID,
			SampleWords: samples[classID],
		})
	}
	return summaries
}

// computeMultisyllable syllabifies every token's unified sequence,
// flattens the result in token-index order (tokens arrive already sorted
// by Index, as Tokenize assigns them), and slides the syllable-window
// clusterer across the whole stream.
func computeMultisyllable(tokens []common.Token, states []tokenState) []common.Cluster {
	var syllables []cluster.Syllable
	surfaceByWord := make(map[int]string, len(tokens))

	for i, tok := range tokens {
		surfaceByWord[tok.Index] = tok.Surface
		syllables = append(syllables, cluster.Syllabify(tok.Index, states[i].unified)...)
	}

	return cluster.Multisyllable(syllables, surfaceByWord)
}

// mergeClusterSets combines basic and multisyllable clusters into the
// single ordered list AnalysisResult.Clusters carries. Both sets are
// present: basic clusters for a given leading word index sort ahead of a
// multisyllable cluster with the same leading index, and every cluster is
// otherwise ordered by its smallest member's word index.
func mergeClusterSets(basic, multi []common.Cluster) []common.Cluster {
	combined := make([]common.Cluster, 0, len(basic)+len(multi))
	combined = append(combined, basic...)
	combined = append(combined, multi...)

	stableSortClusters(combined)
	return combined
}

func stableSortClusters(clusters []common.Cluster) {
	// insertion sort: the input lists are already individually sorted and
	// short relative to typical lyrics, and stability (basic before
	// multisyllable on a tie) matters more than asymptotic complexity here.
	for i := 1; i < len(clusters); i++ {
		for j := i; j > 0 && leadIndex(clusters[j]) < leadIndex(clusters[j-1]); j-- {
			clusters[j], clusters[j-1] = clusters[j-1], clusters[j]
		}
	}
}

func leadIndex(c common.Cluster) int {
	if len(c.Members) == 0 {
		return -1
	}
	return c.Members[0].WordIndex
}
