package cluster

import (
	"testing"

	"github.com/rhymetrace/rhymecore/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tailOf(symbols ...common.CoarseSymbol) common.RhymeTail {
	out := make(common.UnifiedSequence, len(symbols))
	for i, s := range symbols {
		out[i] = common.UnifiedSymbol{Coarse: s, Vowel: s.IsVowelClass()}
	}
	return out
}

func TestBasic_GroupsSharedTails(t *testing.T) {
	tokens := []common.Token{
		{Surface: "cat", Index: 0}, {Surface: "hat", Index: 1}, {Surface: "dog", Index: 2},
	}
	tails := []common.RhymeTail{
		tailOf(common.CoarseA, common.CoarseT),
		tailOf(common.CoarseA, common.CoarseT),
		tailOf(common.CoarseO, common.CoarseG),
	}

	clusters := Basic(tokens, tails)
	require.Len(t, clusters, 1)
	assert.Len(t, clusters[0].Members, 2)
	assert.Equal(t, 0, clusters[0].Members[0].WordIndex)
	assert.Equal(t, 1, clusters[0].Members[1].WordIndex)
}

func TestBasic_SingletonsSuppressed(t *testing.T) {
	tokens := []common.Token{{Surface: "cat", Index: 0}, {Surface: "dog", Index: 1}}
	tails := []common.RhymeTail{tailOf(common.CoarseA, common.CoarseT), tailOf(common.CoarseO, common.CoarseG)}

	assert.Empty(t, Basic(tokens, tails))
}

func TestBasic_EmptyTailsSuppressedAsNoRhymeClass(t *testing.T) {
	tokens := []common.Token{{Surface: "hmm", Index: 0}, {Surface: "shh", Index: 1}}
	tails := []common.RhymeTail{{}, {}}

	assert.Empty(t, Basic(tokens, tails))
}

func TestBasic_DeterministicOrdering(t *testing.T) {
	tokens := []common.Token{
		{Surface: "star", Index: 2}, {Surface: "bar", Index: 3},
		{Surface: "cat", Index: 0}, {Surface: "hat", Index: 1},
	}
	tails := []common.RhymeTail{
		tailOf(common.CoarseA, common.CoarseR), tailOf(common.CoarseA, common.CoarseR),
		tailOf(common.CoarseA, common.CoarseT), tailOf(common.CoarseA, common.CoarseT),
	}

	clusters := Basic(tokens, tails)
	require.Len(t, clusters, 2)
	assert.Equal(t, 0, clusters[0].Members[0].WordIndex)
	assert.Equal(t, 2, clusters[1].Members[0].WordIndex)
}
