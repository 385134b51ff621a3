package cluster

import (
	"sort"

	"github.com/rhymetrace/rhymecore/common"
)

// ClassIDOf derives the class ID for a single tail: a pure function of
// the tail's coarse-symbol content, never of token order or position. An
// empty tail always yields common.NoRhymeClass.
func ClassIDOf(tail common.RhymeTail) common.RhymeClassID {
	if len(tail) == 0 {
		return common.NoRhymeClass
	}
	return common.StableHash(tail.Key())
}

// Basic groups tokens whose extracted tails collide. tails[i] must be the
// RhymeTail extracted for tokens[i]; the two slices are parallel.
func Basic(tokens []common.Token, tails []common.RhymeTail) []common.Cluster {
	classIDs := make([]common.RhymeClassID, len(tokens))
	for i, tail := range tails {
		classIDs[i] = ClassIDOf(tail)
	}
	return FromClassIDs(tokens, classIDs)
}

// FromClassIDs groups tokens by a precomputed classIDs[i] (one entry per
// token, parallel to tokens) instead of deriving it from a tail. This is
// what oracle augmentation uses to rebuild cluster output once reassigned
// tokens have overridden a handful of class IDs; the grouping,
// singleton-suppression, and ordering rules are identical either way, so
// both entry points share this one implementation.
func FromClassIDs(tokens []common.Token, classIDs []common.RhymeClassID) []common.Cluster {
	groups := make(map[common.RhymeClassID][]common.WordClusterEntry)

	for i, tok := range tokens {
		classID := classIDs[i]
		groups[classID] = append(groups[classID], common.WordClusterEntry{
			WordIndex: tok.Index,
			Surface:   tok.Surface,
			ClassID:   classID,
			Spans:     []common.Span{{Start: 0, End: len(tok.Surface)}},
		})
	}

	var clusters []common.Cluster
	for classID, members := range groups {
		if classID == common.NoRhymeClass || len(members) < 2 {
			continue
		}
		sort.Slice(members, func(a, b int) bool { return members[a].WordIndex < members[b].WordIndex })
		clusters = append(clusters, common.Cluster{ClassID: classID, Members: members})
	}

	sort.Slice(clusters, func(a, b int) bool {
		return clusters[a].Members[0].WordIndex < clusters[b].Members[0].WordIndex
	})

	return clusters
}
