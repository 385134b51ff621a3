// Package hindi walks a Devanagari string grapheme cluster by grapheme
// cluster and emits an IPA-style PhonemeSequence, including the
// inherent-schwa insertion and final-schwa-deletion heuristics.
package hindi

// consonants maps a bare Devanagari consonant letter to its IPA base form
// (aspirated and retroflex consonants included directly).
var consonants = map[rune]string{
	'क': "k", 'ख': "kʰ", 'ग': "g", 'घ': "gʰ", 'ङ': "ŋ",
	'च': "tʃ", 'छ': "tʃʰ", 'ज': "dʒ", 'झ': "dʒʰ", 'ञ': "ɲ",
	'ट': "ʈ", 'ठ': "ʈʰ", 'ड': "ɖ", 'ढ': "ɖʰ", 'ण': "ɳ",
	'त': "t̪", 'थ': "t̪ʰ", 'द': "d̪", 'ध': "d̪ʰ", 'न': "n",
	'प': "p", 'फ': "pʰ", 'ब': "b", 'भ': "bʰ", 'म': "m",
	'य': "j", 'र': "r", 'ल': "l", 'व': "v",
	'श': "ʃ", 'ष': "ʂ", 'स': "s", 'ह': "h",
	'क़': "q", 'ख़': "x", 'ग़': "ɣ", 'ज़': "z", 'ड़': "ɽ", 'ढ़': "ɽʰ", 'फ़': "f",
}

// independentVowels maps a standalone (word- or syllable-initial) vowel
// letter to its IPA form.
var independentVowels = map[rune]string{
	'अ': "ə", 'आ': "aː", 'इ': "i", 'ई': "iː", 'उ': "u", 'ऊ': "uː",
	'ऋ': "r̩", 'ए': "eː", 'ऐ': "ɛː", 'ओ': "oː", 'औ': "ɔː",
}

// vowelSigns maps a dependent vowel sign (matra), attached to a preceding
// consonant, to its IPA form, long vowels (ा→aː, ी→iː) and the short and
// diphthong signs alike.
var vowelSigns = map[rune]string{
	'ा': "aː", 'ि': "i", 'ी': "iː", 'ु': "u", 'ू': "uː",
	'ृ': "r̩", 'े': "eː", 'ै': "ɛː", 'ो': "oː", 'ौ': "ɔː",
}

const virama = '्'

// nasalMarks are combining/standalone marks that nasalize the preceding
// vowel; visarga is recorded on the same unit as a trailing aspiration
// marker and emitted by Map as a separate "h" phoneme after that unit.
var nasalMarks = map[rune]bool{
	'ं': true, // anusvara
	'ँ': true, // chandrabindu
}

const visarga = 'ः'

// nukta is the combining dot that turns a base consonant into its
// Perso-Arabic loan sound. NFC text arrives as the precomposed codepoints
// in the consonants table; NFD text arrives as base consonant + this mark
// inside one grapheme cluster, resolved through nuktaForms instead.
const nukta = '़'

var nuktaForms = map[string]string{
	"k":  "q",
	"kʰ": "x",
	"g":  "ɣ",
	"dʒ": "z",
	"ɖ":  "ɽ",
	"ɖʰ": "ɽʰ",
	"pʰ": "f",
}
