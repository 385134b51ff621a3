package hinglish

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransliterate_LexiconHit(t *testing.T) {
	assert.Equal(t, "तेरा", Transliterate("tera"))
	assert.Equal(t, "मेरा", Transliterate("Mera"))
}

func TestTransliterate_RuleFallbackNonEmpty(t *testing.T) {
	// Not in the closed lexicon; the rule-based path must still produce
	// some Devanagari rather than an empty or untransformed string.
	got := Transliterate("karaata")
	assert.NotEmpty(t, got)
	assert.NotEqual(t, "karaata", got)
}

func TestTransliterate_UnknownBytesDropped(t *testing.T) {
	got := Transliterate("kara2ta")
	assert.NotContains(t, got, "2")
}
