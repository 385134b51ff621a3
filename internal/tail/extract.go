// Package tail slices a UnifiedSequence down to the rhyme tail: the suffix
// that rhyme comparison is performed over.
package tail

import "github.com/rhymetrace/rhymecore/common"

// Extract scans seq backwards for the last vowel symbol that carried
// primary stress in its source phoneme, falling back to the last vowel
// overall, and finally to the whole sequence if it contains no vowel at
// all. The returned RhymeTail always shares backing storage with seq (it is
// a slice, not a copy).
func Extract(seq common.UnifiedSequence) common.RhymeTail {
	if len(seq) == 0 {
		return seq
	}

	for i := len(seq) - 1; i >= 0; i-- {
		if seq[i].Vowel && seq[i].Stress {
			return seq[i:]
		}
	}

	for i := len(seq) - 1; i >= 0; i-- {
		if seq[i].Vowel {
			return seq[i:]
		}
	}

	return seq
}
