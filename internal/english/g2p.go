package english

import (
	"strings"

	"github.com/rhymetrace/rhymecore/common"
)

// rule is one entry of the greedy, longest-match-first letter-to-phoneme
// table used when a word misses the dictionary. The table rewrites English
// spelling through ordered digraph/trigraph entries, Metaphone-style, but
// emits dictionary-alphabet phoneme symbols instead of a hash code.
type rule struct {
	letters string
	symbols []string // zero or more ARPABET-style symbols, in emission order
	vowel   bool     // true iff this rule produces a vowel nucleus
}

// rules is scanned in table order and the first prefix match wins. Every
// rule is listed before any shorter rule whose letters are a prefix of its
// own ("are" before "ar", digraphs before their single letters), so the
// first match is also the longest.
var rules = []rule{
	// consonant digraphs
	{"tch", []string{"CH"}, false},
	{"dge", []string{"JH"}, false},
	{"sh", []string{"SH"}, false},
	{"ch", []string{"CH"}, false},
	{"th", []string{"TH"}, false},
	{"ph", []string{"F"}, false},
	{"ng", []string{"NG"}, false},
	{"ck", []string{"K"}, false},
	{"qu", []string{"K", "W"}, false},
	{"wh", []string{"W"}, false},
	// r-colored vowels
	{"are", []string{"EH", "R"}, true},
	{"ar", []string{"AA", "R"}, true},
	{"er", []string{"ER"}, true},
	{"ir", []string{"ER"}, true},
	{"ur", []string{"ER"}, true},
	{"or", []string{"AO", "R"}, true},
	// vowel digraphs / diphthongs
	{"eigh", []string{"EY"}, true},
	{"igh", []string{"AY"}, true},
	{"ai", []string{"EY"}, true},
	{"ay", []string{"EY"}, true},
	{"ea", []string{"IY"}, true},
	{"ee", []string{"IY"}, true},
	{"oa", []string{"OW"}, true},
	{"oe", []string{"OW"}, true},
	{"ow", []string{"OW"}, true},
	{"oo", []string{"UW"}, true},
	{"ou", []string{"AW"}, true},
	{"oi", []string{"OY"}, true},
	{"oy", []string{"OY"}, true},
	{"au", []string{"AO"}, true},
	{"aw", []string{"AO"}, true},
	{"ue", []string{"UW"}, true},
	// single vowels
	{"a", []string{"AE"}, true},
	{"e", []string{"EH"}, true},
	{"i", []string{"IH"}, true},
	{"o", []string{"AA"}, true},
	{"u", []string{"AH"}, true},
	{"y", []string{"IY"}, true},
	// single consonants
	{"b", []string{"B"}, false},
	{"c", []string{"K"}, false},
	{"d", []string{"D"}, false},
	{"f", []string{"F"}, false},
	{"g", []string{"G"}, false},
	{"h", []string{"HH"}, false},
	{"j", []string{"JH"}, false},
	{"k", []string{"K"}, false},
	{"l", []string{"L"}, false},
	{"m", []string{"M"}, false},
	{"n", []string{"N"}, false},
	{"p", []string{"P"}, false},
	{"q", []string{"K"}, false},
	{"r", []string{"R"}, false},
	{"s", []string{"S"}, false},
	{"t", []string{"T"}, false},
	{"v", []string{"V"}, false},
	{"w", []string{"W"}, false},
	{"x", []string{"K", "S"}, false},
	{"z", []string{"Z"}, false},
}

// GuessPhonemes is the letter-fallback G2P used when word is not present
// in the injected Dictionary. It never fails: any leftover byte that
// matches nothing in rules is simply dropped from the output. The first
// vowel nucleus produced is marked as primary stress.
func GuessPhonemes(word string) common.PhonemeSequence {
	lower := strings.ToLower(word)
	lower = dropSilentE(lower)
	lower = collapseDoubledConsonants(lower)

	var phonemes []common.Phoneme
	var stressIndex *int

	for i := 0; i < len(lower); {
		r, matched := matchLongest(lower[i:])
		if !matched {
			i++
			continue
		}

		for _, sym := range r.symbols {
			isVowel := vowelSymbols[sym]
			phonemes = append(phonemes, common.Phoneme{Symbol: sym, Vowel: isVowel})
			if isVowel && stressIndex == nil {
				idx := len(phonemes) - 1
				stressIndex = &idx
			}
		}
		i += len(r.letters)
	}

	return common.PhonemeSequence{
		Alphabet:    common.DictionaryAlphabet,
		Phonemes:    phonemes,
		StressIndex: stressIndex,
	}
}

func matchLongest(s string) (rule, bool) {
	for _, r := range rules {
		if strings.HasPrefix(s, r.letters) {
			return r, true
		}
	}
	return rule{}, false
}

// dropSilentE removes a word-final "e" that follows a consonant, provided
// the word is long enough that the "e" isn't the only vowel (e.g. "bike" →
// "bik", but "be" is left alone).
func dropSilentE(word string) string {
	n := len(word)
	if n < 3 || word[n-1] != 'e' {
		return word
	}
	if isVowelLetter(word[n-2]) {
		return word
	}
	if !hasEarlierVowel(word[:n-1]) {
		return word
	}
	return word[:n-1]
}

func hasEarlierVowel(s string) bool {
	for i := 0; i < len(s); i++ {
		if isVowelLetter(s[i]) {
			return true
		}
	}
	return false
}

func isVowelLetter(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	default:
		return false
	}
}

// collapseDoubledConsonants normalizes "ll", "tt", "ss" etc. down to a
// single letter before rule matching, e.g. "attack" → "atack".
func collapseDoubledConsonants(word string) string {
	if len(word) < 2 {
		return word
	}
	var b strings.Builder
	b.Grow(len(word))
	b.WriteByte(word[0])
	for i := 1; i < len(word); i++ {
		if word[i] == word[i-1] && !isVowelLetter(word[i]) {
			continue
		}
		b.WriteByte(word[i])
	}
	return b.String()
}
