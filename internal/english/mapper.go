package english

import (
	"strings"

	"github.com/rhymetrace/rhymecore/common"
)

// Map looks word up in dict first and falls back to letter G2P on a miss
// or when dict is nil. The first returned pronunciation is used on a
// dictionary hit.
func Map(dict common.Dictionary, word string) common.PhonemeSequence {
	seq, _ := MapWithConfidence(dict, word)
	return seq
}

// MapWithConfidence additionally reports whether the result came from
// letter-fallback G2P rather than a dictionary hit, the low-confidence
// signal that decides which tokens are worth handing to the Oracle.
func MapWithConfidence(dict common.Dictionary, word string) (seq common.PhonemeSequence, usedFallback bool) {
	lower := strings.ToLower(word)

	if dict != nil {
		if seqs, ok := dict.Lookup(lower); ok && len(seqs) > 0 {
			return seqs[0], false
		}
	}

	return GuessPhonemes(lower), true
}
