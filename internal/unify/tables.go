// Package unify projects both the dictionary-alphabet (ARPABET-style) and
// IPA phoneme streams onto the fixed, schema-versioned coarse alphabet
// defined in common.CoarseSymbol, so rhyme comparison never needs to know
// which script or alphabet a token started in.
//
// The two tables below are the knobs that tune the false-positive versus
// false-negative trade-off, and must stay fixed within a schema version.
package unify

import "github.com/rhymetrace/rhymecore/common"

// dictToCoarse maps a bare (stress-stripped) ARPABET symbol to one or more
// coarse symbols. AW and AY keep a trailing glide (W/Y) for discrimination;
// every other vowel group collapses to a single coarse vowel.
var dictToCoarse = map[string][]common.CoarseSymbol{
	"AA": {common.CoarseA},
	"AE": {common.CoarseA},
	"AH": {common.CoarseA},
	"AO": {common.CoarseA},
	"AW": {common.CoarseA, common.CoarseW},
	"AY": {common.CoarseA, common.CoarseY},

	"EH": {common.CoarseE},
	"ER": {common.CoarseE},
	"EY": {common.CoarseE},

	"IH": {common.CoarseI},
	"IY": {common.CoarseI},

	"OW": {common.CoarseO},
	"OY": {common.CoarseO},
	"UH": {common.CoarseU},
	"UW": {common.CoarseU},

	"R": {common.CoarseR}, "L": {common.CoarseL}, "M": {common.CoarseM},
	"N": {common.CoarseN}, "NG": {common.CoarseNG},
	"S": {common.CoarseS}, "Z": {common.CoarseZ},
	"SH": {common.CoarseSH}, "ZH": {common.CoarseZH},
	"F": {common.CoarseF}, "V": {common.CoarseV},
	"TH": {common.CoarseTH}, "DH": {common.CoarseDH},
	"P": {common.CoarseP}, "B": {common.CoarseB},
	"T": {common.CoarseT}, "D": {common.CoarseD},
	"K": {common.CoarseK}, "G": {common.CoarseG},
	"CH": {common.CoarseCH}, "JH": {common.CoarseJH},
	"Y": {common.CoarseY}, "W": {common.CoarseW},
	"HH": {common.CoarseHH},
}

// ipaToCoarse maps an IPA symbol (as emitted by internal/hindi, including
// aspirated and retroflex consonants) to a single coarse symbol. Aspirated
// variants lose aspiration and retroflexes merge with their dental/alveolar
// counterparts; a nasalization combining mark is stripped by stripNasal
// before this table is consulted, so nasalized and plain vowels always
// collide.
var ipaToCoarse = map[string]common.CoarseSymbol{
	"a": common.CoarseA, "aː": common.CoarseA, "ə": common.CoarseA, "ɑ": common.CoarseA,
	"e": common.CoarseE, "eː": common.CoarseE, "ɛ": common.CoarseE, "ɛː": common.CoarseE,
	"i": common.CoarseI, "iː": common.CoarseI, "ɪ": common.CoarseI,
	"o": common.CoarseO, "oː": common.CoarseO, "ɔ": common.CoarseO, "ɔː": common.CoarseO,
	"u": common.CoarseU, "uː": common.CoarseU, "ʊ": common.CoarseU,

	"r̩": common.CoarseR,

	"k": common.CoarseK, "kʰ": common.CoarseK, "q": common.CoarseK, "x": common.CoarseK,
	"g": common.CoarseG, "gʰ": common.CoarseG, "ɣ": common.CoarseG,
	"ŋ": common.CoarseNG,
	"tʃ": common.CoarseCH, "tʃʰ": common.CoarseCH,
	"dʒ": common.CoarseJH, "dʒʰ": common.CoarseJH,
	"ɲ": common.CoarseN,
	"ʈ": common.CoarseT, "ʈʰ": common.CoarseT,
	"ɖ": common.CoarseD, "ɖʰ": common.CoarseD,
	"ɳ": common.CoarseN,
	"t̪": common.CoarseT, "t̪ʰ": common.CoarseT,
	"d̪": common.CoarseD, "d̪ʰ": common.CoarseD,
	"n": common.CoarseN,
	"p": common.CoarseP, "pʰ": common.CoarseP,
	"b": common.CoarseB, "bʰ": common.CoarseB,
	"m": common.CoarseM,
	"j": common.CoarseY, "r": common.CoarseR, "l": common.CoarseL, "v": common.CoarseV,
	"ʃ": common.CoarseSH, "ʂ": common.CoarseSH,
	"s": common.CoarseS, "h": common.CoarseHH,
	"ɽ": common.CoarseR, "ɽʰ": common.CoarseR,
	"z": common.CoarseZ, "f": common.CoarseF,
}
