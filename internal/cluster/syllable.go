// Package cluster groups tokens (or syllable windows) that share a rhyme
// class, assigns stable class IDs via common.StableHash, and suppresses
// singleton/no-rhyme output.
package cluster

import "github.com/rhymetrace/rhymecore/common"

// Syllable is one CV-preference syllable of a token's UnifiedSequence,
// carrying the coarse-symbol key used for window hashing and the
// character span it covers in the owning token's surface.
type Syllable struct {
	WordIndex int
	Key       string
	CharStart int
	CharEnd   int
}

// Syllabify splits seq into syllables. Consonant runs between two vowels
// are divided with a CV preference: a single intervening
// consonant becomes the following syllable's onset outright, while a
// longer run keeps everything but its last consonant as the previous
// syllable's coda and hands only the last one to the next onset. Leading
// consonants before the first vowel are the first syllable's onset;
// trailing consonants after the last vowel are the last syllable's coda.
//
// A vowel-less sequence (pure-consonant token) is returned as a single
// syllable spanning the whole thing, so it still participates in window
// hashing instead of silently vanishing from the stream.
func Syllabify(wordIndex int, seq common.UnifiedSequence) []Syllable {
	if len(seq) == 0 {
		return nil
	}

	var vowelIdxs []int
	for i, s := range seq {
		if s.Vowel {
			vowelIdxs = append(vowelIdxs, i)
		}
	}

	if len(vowelIdxs) == 0 {
		return []Syllable{{
			WordIndex: wordIndex,
			Key:       seq.Key(),
			CharStart: seq[0].CharStart,
			CharEnd:   seq[len(seq)-1].CharEnd,
		}}
	}

	n := len(vowelIdxs)
	starts := make([]int, n)
	ends := make([]int, n)
	starts[0] = 0
	ends[n-1] = len(seq)

	for k := 1; k < n; k++ {
		runStart := vowelIdxs[k-1] + 1
		runEnd := vowelIdxs[k]
		runLen := runEnd - runStart

		boundary := runStart
		if runLen > 1 {
			boundary = runEnd - 1
		}
		ends[k-1] = boundary
		starts[k] = boundary
	}

	syllables := make([]Syllable, n)
	for k := 0; k < n; k++ {
		segment := seq[starts[k]:ends[k]]
		syllables[k] = Syllable{
			WordIndex: wordIndex,
			Key:       segment.Key(),
			CharStart: seq[starts[k]].CharStart,
			CharEnd:   seq[ends[k]-1].CharEnd,
		}
	}

	return syllables
}
