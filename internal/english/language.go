package english

import (
	iso "github.com/barbashov/iso639-3"
)

// DefaultLanguage is the ISO 639-3 code assumed for the English phoneme
// mapper when no language hint is supplied.
const DefaultLanguage = "eng"

// CanonicalLanguageCode normalizes an arbitrary ISO 639 code (639-1, 639-2,
// or 639-3) to its ISO 639-3 form, e.g. "en" and "eng" both resolve to
// "eng". An unrecognized code is returned unchanged with ok=false.
func CanonicalLanguageCode(code string) (string, bool) {
	if code == "" {
		return DefaultLanguage, true
	}
	lang := iso.FromAnyCode(code)
	if lang == nil {
		return code, false
	}
	return lang.Part3, true
}
