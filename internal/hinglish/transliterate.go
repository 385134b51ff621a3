// Package hinglish turns a romanized Hindi/Hinglish surface into an
// approximate Devanagari string so internal/hindi's phoneme mapper can be
// reused unchanged for Hinglish tokens instead of duplicating phoneme
// logic for a second script.
//
// The lexicon and rule table here are compiled by the repo's go:generate
// command from generator/data/hinglish.yaml into lexicon_gen.go.
package hinglish

import "strings"

var vowelASCII = map[string]bool{
	"a": true, "aa": true, "i": true, "ee": true, "u": true, "oo": true,
	"e": true, "ai": true, "o": true, "au": true, "iya": true, "yaa": true,
}

// Transliterate renders ascii (a single lowercase Hinglish token, already
// normalized by common.Tokenize) as Devanagari text.
//
// The closed Lexicon is checked first since it carries hand-checked forms
// for the system's most common words; everything else falls through to a
// greedy longest-match scan over DigraphTable, alternating independent and
// matra (vowel-sign) forms depending on whether the previous unit emitted a
// consonant. This is a practical approximation, not a linguistically
// complete romanization scheme: consonant clusters that would take a
// virama in real Devanagari are rendered as adjacent bare consonants,
// which is enough for internal/hindi's grapheme walk to recover a coarse
// phoneme sequence but would not round-trip to "correct" spelling.
func Transliterate(ascii string) string {
	lower := strings.ToLower(ascii)
	if dev, ok := Lexicon[lower]; ok {
		return dev
	}

	var b strings.Builder
	prevConsonant := false

	for i := 0; i < len(lower); {
		unit, matched := matchLongest(lower[i:])
		if !matched {
			// Unknown ASCII byte (digit, stray punctuation survived
			// tokenization): dropped, not copied into the Devanagari
			// output.
			i++
			prevConsonant = false
			continue
		}

		isVowel := vowelASCII[unit.ASCII]
		if isVowel && prevConsonant {
			// An empty Matra means the preceding consonant carries this
			// vowel inherently; nothing is appended.
			b.WriteString(unit.Matra)
		} else {
			b.WriteString(unit.Indep)
		}

		prevConsonant = !isVowel
		i += len(unit.ASCII)
	}

	return b.String()
}

func matchLongest(s string) (DigraphUnit, bool) {
	for _, unit := range DigraphTable {
		if strings.HasPrefix(s, unit.ASCII) {
			return unit, true
		}
	}
	return DigraphUnit{}, false
}
