package unify

import (
	"strings"

	"github.com/rhymetrace/rhymecore/common"
)

// Map projects seq onto the coarse alphabet, producing one UnifiedSequence
// symbol per coarse output (a single dictionary/IPA phoneme may expand to
// more than one coarse symbol, as with the AW/AY glide retention).
//
// surfaceLen is the byte length of the owning token's surface text.
// CharStart/CharEnd are recovered by evenly dividing surfaceLen across the
// unified symbols rather than threading exact per-phoneme byte offsets
// through dictionary lookups (which carry no spelling alignment at all) and
// cross-script transliteration (where the phoneme-producing string isn't
// the original surface); see DESIGN.md for why this approximation was
// chosen over exact tracking.
func Map(seq common.PhonemeSequence, surfaceLen int) common.UnifiedSequence {
	type expansion struct {
		coarse []common.CoarseSymbol
		stress bool
	}

	var expansions []expansion
	for i, ph := range seq.Phonemes {
		stress := seq.StressIndex != nil && *seq.StressIndex == i
		coarse := lookupCoarse(seq.Alphabet, ph.Symbol)
		if len(coarse) == 0 {
			continue
		}
		expansions = append(expansions, expansion{coarse: coarse, stress: stress})
	}

	total := 0
	for _, e := range expansions {
		total += len(e.coarse)
	}
	if total == 0 {
		return nil
	}

	out := make(common.UnifiedSequence, 0, total)
	emitted := 0
	for _, e := range expansions {
		for j, c := range e.coarse {
			start, end := span(emitted, total, surfaceLen)
			out = append(out, common.UnifiedSymbol{
				Coarse: c,
				Vowel:  c.IsVowelClass(),
				// Only the head symbol of a multi-symbol expansion (e.g.
				// the "A" in AY's A+Y glide) carries the source phoneme's
				// stress; the glide tail never does.
				Stress:    e.stress && j == 0,
				CharStart: start,
				CharEnd:   end,
			})
			emitted++
		}
	}

	return out
}

func lookupCoarse(alphabet common.Alphabet, symbol string) []common.CoarseSymbol {
	switch alphabet {
	case common.DictionaryAlphabet:
		return dictToCoarse[symbol]
	case common.IPAAlphabet:
		if c, ok := ipaToCoarse[stripNasal(symbol)]; ok {
			return []common.CoarseSymbol{c}
		}
		return nil
	default:
		return nil
	}
}

// stripNasal removes a trailing combining-tilde nasalization mark (added by
// internal/hindi for anusvara/chandrabindu) before table lookup, so a
// nasalized vowel collides with its plain counterpart.
func stripNasal(symbol string) string {
	return strings.TrimSuffix(symbol, "̃")
}

// span divides [0, surfaceLen) into total equal parts and returns the
// half-open byte range of the i-th part.
func span(i, total, surfaceLen int) (int, int) {
	if total == 0 {
		return 0, 0
	}
	start := i * surfaceLen / total
	end := (i + 1) * surfaceLen / total
	if end < start {
		end = start
	}
	return start, end
}
