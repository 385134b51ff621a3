package common

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Tokenize segments lyrics on whitespace and punctuation. Each surviving
// token preserves its original surface, and Index is assigned
// left-to-right starting at 0 over the lexical tokens only (punctuation
// and whitespace are not tokens).
//
// Segmentation uses uniseg's word-boundary algorithm instead of a
// hand-rolled ASCII scanner, so that Devanagari grapheme clusters and
// punctuation adjacent to non-Latin scripts split correctly.
func Tokenize(lyrics string) []Token {
	var tokens []Token
	remaining := lyrics
	state := -1
	idx := 0

	for len(remaining) > 0 {
		word, rest, newState := uniseg.FirstWordInString(remaining, state)
		remaining = rest
		state = newState

		if word == "" {
			continue
		}
		if !hasLexicalContent(word) {
			continue
		}

		tokens = append(tokens, Token{
			Surface:    word,
			Index:      idx,
			Script:     DetectScript(word),
			Normalized: strings.ToLower(word),
		})
		idx++
	}

	return tokens
}

// hasLexicalContent reports whether a segment produced by uniseg's word
// splitter contains at least one letter, combining mark (such as a
// Devanagari vowel sign), or digit, as opposed to being pure whitespace or
// punctuation.
func hasLexicalContent(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// DetectScript is re-exported from internal/script for convenience so
// Tokenize doesn't need to import a sibling internal package that in turn
// depends on common (which would be a cycle); the real implementation is
// wired in by internal/script's init via SetScriptDetector.
var DetectScript = func(surface string) Script {
	return ScriptEnglish
}

// SetScriptDetector overrides the detector Tokenize uses to tag each token.
// internal/script calls this from its own init function; a single function
// slot is enough since there is exactly one detector in this system (no
// runtime swapping).
func SetScriptDetector(fn func(string) Script) {
	DetectScript = fn
}
