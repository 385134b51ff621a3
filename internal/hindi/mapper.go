package hindi

import (
	"github.com/rhymetrace/rhymecore/common"
	"github.com/rivo/uniseg"
)

// unit is one grapheme cluster's worth of parsed Devanagari: at most one
// consonant, at most one vowel (independent or matra), and the modifiers
// that change how it is realized.
type unit struct {
	consonantIPA string
	vowelIPA     string
	hasVirama    bool
	nasal        bool
	aspirated    bool // visarga: trailing voiceless breath, realized as "h"
}

func (u unit) isConsonant() bool { return u.consonantIPA != "" }
func (u unit) isEmpty() bool     { return u.consonantIPA == "" && u.vowelIPA == "" }

// Map transcribes a Devanagari string into an IPA PhonemeSequence. It
// never fails: runes it doesn't recognize (Latin letters, digits,
// punctuation that survived tokenization, codepoints outside the tables
// in tables.go) are simply skipped.
func Map(devanagari string) common.PhonemeSequence {
	units := parseUnits(devanagari)

	var phonemes []common.Phoneme
	for i, u := range units {
		if u.isEmpty() {
			continue
		}

		if u.isConsonant() {
			phonemes = append(phonemes, common.Phoneme{Symbol: u.consonantIPA, Vowel: false})

			switch {
			case u.vowelIPA != "":
				phonemes = append(phonemes, common.Phoneme{Symbol: nasalize(u.vowelIPA, u.nasal), Vowel: true})
			case u.hasVirama:
				// consonant cluster: no vowel between this and the next unit.
			default:
				// Bare consonant carries the inherent schwa, except at the
				// very end of the word (schwa-deletion heuristic).
				if i != len(units)-1 {
					phonemes = append(phonemes, common.Phoneme{Symbol: "ə", Vowel: true})
				}
			}
		} else {
			phonemes = append(phonemes, common.Phoneme{Symbol: nasalize(u.vowelIPA, u.nasal), Vowel: true})
		}

		if u.aspirated {
			phonemes = append(phonemes, common.Phoneme{Symbol: "h", Vowel: false})
		}
	}

	return common.PhonemeSequence{
		Alphabet:    common.IPAAlphabet,
		Phonemes:    phonemes,
		StressIndex: nil, // Hindi carries no distinctive lexical stress to mark.
	}
}

func nasalize(symbol string, nasal bool) string {
	if !nasal {
		return symbol
	}
	return symbol + "̃"
}

// parseUnits walks devanagari grapheme cluster by grapheme cluster via
// uniseg, so a consonant+virama+vowel-sign+anusvara sequence that Unicode
// keeps together as one extended grapheme cluster is parsed as one unit
// instead of being torn apart by naive rune iteration.
func parseUnits(devanagari string) []unit {
	var units []unit
	state := -1
	remaining := devanagari

	for len(remaining) > 0 {
		cluster, rest, _, newState := uniseg.FirstGraphemeClusterInString(remaining, state)
		remaining = rest
		state = newState

		if u, ok := parseCluster(cluster); ok {
			units = append(units, u)
		}
	}

	return units
}

func parseCluster(cluster string) (unit, bool) {
	runes := []rune(cluster)
	if len(runes) == 0 {
		return unit{}, false
	}

	var u unit
	matched := false

	if ipa, ok := consonants[runes[0]]; ok {
		u.consonantIPA = ipa
		matched = true
	} else if ipa, ok := independentVowels[runes[0]]; ok {
		u.vowelIPA = ipa
		matched = true
	}

	if !matched {
		return unit{}, false
	}

	for _, r := range runes[1:] {
		switch {
		case r == virama:
			u.hasVirama = true
		case r == visarga:
			u.aspirated = true
		case r == nukta:
			if v, ok := nuktaForms[u.consonantIPA]; ok {
				u.consonantIPA = v
			}
		case nasalMarks[r]:
			u.nasal = true
		default:
			if ipa, ok := vowelSigns[r]; ok && u.vowelIPA == "" {
				u.vowelIPA = ipa
			}
			// Any other combining mark (e.g. a stray diacritic) is ignored
			// silently rather than treated as a parse failure.
		}
	}

	return u, true
}
