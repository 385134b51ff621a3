// Package english maps English tokens to phoneme sequences: dictionary
// lookup with deterministic letter-fallback G2P when a word is unknown.
//
// LoadCMUDict parses the CMU Pronouncing Dictionary format
// (word/phoneme-column splitting, comment-line skipping, stress digit
// stripped from the bare symbol but kept as the stress annotation). The
// dictionary-alphabet (ARPABET) symbols are kept as-is rather than
// converted to IPA, since internal/unify's dictionary-alphabet
// coarse-mapping table expects ARPABET spelling.
package english

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rhymetrace/rhymecore/common"
)

// vowelSymbols is the closed ARPABET vowel set (stress digit already
// stripped), used to tag Phoneme.Vowel and to locate the stress index.
var vowelSymbols = map[string]bool{
	"AA": true, "AE": true, "AH": true, "AO": true, "AW": true, "AY": true,
	"EH": true, "ER": true, "EY": true, "IH": true, "IY": true,
	"OW": true, "OY": true, "UH": true, "UW": true,
}

// LoadCMUDict parses a CMU-Pronouncing-Dictionary-formatted stream ("WORD
// PH0 PH1 ...", comment lines starting with ";;;") into a common.Dictionary.
// Parenthesized variant suffixes ("WORD(2)") are folded into the base word's
// pronunciation list rather than kept as separate entries, since
// common.Dictionary.Lookup returns every pronunciation for a word at once.
func LoadCMUDict(r io.Reader) (common.Dictionary, error) {
	dict := make(common.MapDictionary)
	scanner := bufio.NewScanner(r)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, ";;;") {
			continue
		}

		word, seq, ok := parseCMULine(line)
		if !ok {
			continue
		}

		dict[word] = append(dict[word], seq)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("english: reading CMU dictionary: %w", err)
	}

	return dict, nil
}

func parseCMULine(line string) (string, common.PhonemeSequence, bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return "", common.PhonemeSequence{}, false
	}

	rawWord := strings.ToLower(fields[0])
	word := stripVariantSuffix(rawWord)

	phonemes := make([]common.Phoneme, 0, len(fields)-1)
	var stressIndex *int

	for i, tok := range fields[1:] {
		symbol, stress := splitStress(tok)
		isVowel := vowelSymbols[symbol]
		phonemes = append(phonemes, common.Phoneme{Symbol: symbol, Vowel: isVowel})
		if isVowel && stress == 1 {
			idx := i
			stressIndex = &idx
		}
	}

	return word, common.PhonemeSequence{
		Alphabet:    common.DictionaryAlphabet,
		Phonemes:    phonemes,
		StressIndex: stressIndex,
	}, true
}

// stripVariantSuffix removes a CMU-style "(2)" pronunciation-variant suffix
// from a dictionary word, e.g. "tomato(2)" → "tomato".
func stripVariantSuffix(word string) string {
	if i := strings.IndexByte(word, '('); i >= 0 {
		return word[:i]
	}
	return word
}

// splitStress strips a trailing ARPABET stress digit (0, 1, 2) from a raw
// phoneme token, returning the bare symbol and the stress value (-1 if the
// token carried no digit at all).
func splitStress(tok string) (string, int) {
	if tok == "" {
		return tok, -1
	}
	last := tok[len(tok)-1]
	if last < '0' || last > '2' {
		return tok, -1
	}
	stress, err := strconv.Atoi(string(last))
	if err != nil {
		return tok, -1
	}
	return tok[:len(tok)-1], stress
}
