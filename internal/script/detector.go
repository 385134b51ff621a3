// Package script classifies a token's surface as Devanagari, Hinglish
// (romanized Indic), or English. A single decisive range check is enough
// for the Devanagari case, since rhyme detection only ever needs to tell
// Devanagari apart from everything else.
package script

import (
	"strings"
	"unicode"

	"github.com/rhymetrace/rhymecore/common"
	"github.com/rhymetrace/rhymecore/internal/hinglish"
)

func init() {
	common.SetScriptDetector(Detect)
}

// Detect returns Devanagari if any rune falls in the Devanagari block,
// else Hinglish if the ASCII heuristic fires, else English. It never
// fails; uncertain input resolves to English.
func Detect(surface string) common.Script {
	for _, r := range surface {
		if unicode.Is(unicode.Devanagari, r) {
			return common.ScriptDevanagari
		}
	}

	if isASCIILetters(surface) && looksHinglish(surface) {
		return common.ScriptHinglish
	}

	return common.ScriptEnglish
}

func isASCIILetters(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func looksHinglish(s string) bool {
	lower := strings.ToLower(s)

	if _, ok := hinglish.Lexicon[lower]; ok {
		return true
	}

	hits := 0
	for _, cue := range hinglish.Cues() {
		if strings.Contains(lower, cue) {
			hits++
			if hits >= 2 {
				return true
			}
		}
	}

	for _, suf := range hinglish.Suffixes() {
		if strings.HasSuffix(lower, suf) {
			return true
		}
	}

	return false
}
