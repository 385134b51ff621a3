package english

import (
	"testing"

	"github.com/rhymetrace/rhymecore/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lastSymbols(seq common.PhonemeSequence, n int) []string {
	start := len(seq.Phonemes) - n
	if start < 0 {
		start = 0
	}
	out := make([]string, 0, len(seq.Phonemes)-start)
	for _, p := range seq.Phonemes[start:] {
		out = append(out, p.Symbol)
	}
	return out
}

func TestGuessPhonemes_RhymingPairShareTail(t *testing.T) {
	cat := GuessPhonemes("cat")
	hat := GuessPhonemes("hat")

	require.NotEmpty(t, cat.Phonemes)
	require.NotEmpty(t, hat.Phonemes)

	assert.Equal(t, lastSymbols(cat, 2), lastSymbols(hat, 2))
}

func TestGuessPhonemes_NeverPanics(t *testing.T) {
	assert.NotPanics(t, func() {
		GuessPhonemes("")
		GuessPhonemes("xyz123")
		GuessPhonemes("Attack")
	})
}

func TestGuessPhonemes_StressOnFirstVowel(t *testing.T) {
	seq := GuessPhonemes("track")
	require.NotNil(t, seq.StressIndex)
	assert.True(t, seq.Phonemes[*seq.StressIndex].Vowel)
}

func TestGuessPhonemes_DoubledConsonantCollapsed(t *testing.T) {
	attack := GuessPhonemes("attack")
	atack := GuessPhonemes("atack")
	assert.Equal(t, attack.Phonemes, atack.Phonemes)
}

func TestGuessPhonemes_SilentE(t *testing.T) {
	bike := GuessPhonemes("bike")
	for _, p := range bike.Phonemes {
		assert.NotEqual(t, "EH", p.Symbol, "trailing silent e should not surface as a phoneme")
	}
}
