package cluster

import (
	"sort"
	"strings"

	"github.com/rhymetrace/rhymecore/common"
)

// windowSizes are the sliding-window widths (in syllables) slid across the
// whole lyrics' syllable stream.
var windowSizes = []int{2, 3}

// Multisyllable slides 2- and 3-syllable windows across the syllable
// stream of every token (syllables, the flattened argument, must already
// be in token order: each token's syllables consecutive and tokens ordered
// by Index), crossing word boundaries freely. A window hash with two or
// more occurrences
// becomes a class with one WordClusterEntry per distinct word any of its
// occurrences touches; each occurrence adds to that entry the char span
// the window covers in that word.
func Multisyllable(syllables []Syllable, surfaceByWord map[int]string) []common.Cluster {
	byHash := make(map[common.RhymeClassID][][]Syllable)

	for _, size := range windowSizes {
		for start := 0; start+size <= len(syllables); start++ {
			window := syllables[start : start+size]
			classID := common.StableHash(windowKey(window))
			byHash[classID] = append(byHash[classID], window)
		}
	}

	entriesByClass := make(map[common.RhymeClassID]map[int]*common.WordClusterEntry)

	for classID, windows := range byHash {
		if len(windows) < 2 {
			continue
		}

		for _, window := range windows {
			perWord := make(map[int]common.Span)
			order := make([]int, 0, len(window))
			for _, syl := range window {
				if sp, ok := perWord[syl.WordIndex]; ok {
					if syl.CharStart < sp.Start {
						sp.Start = syl.CharStart
					}
					if syl.CharEnd > sp.End {
						sp.End = syl.CharEnd
					}
					perWord[syl.WordIndex] = sp
				} else {
					perWord[syl.WordIndex] = common.Span{Start: syl.CharStart, End: syl.CharEnd}
					order = append(order, syl.WordIndex)
				}
			}

			if entriesByClass[classID] == nil {
				entriesByClass[classID] = make(map[int]*common.WordClusterEntry)
			}
			for _, wordIndex := range order {
				sp := perWord[wordIndex]
				entry, ok := entriesByClass[classID][wordIndex]
				if !ok {
					entry = &common.WordClusterEntry{
						WordIndex: wordIndex,
						Surface:   surfaceByWord[wordIndex],
						ClassID:   classID,
					}
					entriesByClass[classID][wordIndex] = entry
				}
				entry.Spans = append(entry.Spans, sp)
			}
		}
	}

	var clusters []common.Cluster
	for classID, members := range entriesByClass {
		entries := make([]common.WordClusterEntry, 0, len(members))
		for _, e := range members {
			sort.Slice(e.Spans, func(a, b int) bool {
				if e.Spans[a].Start != e.Spans[b].Start {
					return e.Spans[a].Start < e.Spans[b].Start
				}
				return e.Spans[a].End < e.Spans[b].End
			})
			entries = append(entries, *e)
		}
		sort.Slice(entries, func(a, b int) bool { return entries[a].WordIndex < entries[b].WordIndex })
		clusters = append(clusters, common.Cluster{ClassID: classID, Members: entries})
	}

	// Two classes can lead with the same word (a 2-window and a 3-window
	// starting on the same syllable); ClassID breaks the tie so output order
	// never depends on map iteration.
	sort.Slice(clusters, func(a, b int) bool {
		ai, bi := clusters[a].Members[0].WordIndex, clusters[b].Members[0].WordIndex
		if ai != bi {
			return ai < bi
		}
		return clusters[a].ClassID < clusters[b].ClassID
	})

	return clusters
}

func windowKey(window []Syllable) string {
	keys := make([]string, len(window))
	for i, s := range window {
		keys[i] = s.Key
	}
	return strings.Join(keys, "|")
}
