package cache

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/rhymetrace/rhymecore/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleClusters() []common.Cluster {
	return []common.Cluster{{
		ClassID: 42,
		Members: []common.WordClusterEntry{
			{WordIndex: 0, Surface: "cat", ClassID: 42, Spans: []common.Span{{Start: 0, End: 3}}},
			{WordIndex: 1, Surface: "hat", ClassID: 42, Spans: []common.Span{{Start: 0, End: 3}}},
		},
	}}
}

func TestResultCache_MemoryRoundTrip(t *testing.T) {
	rc := NewResultCache(NewMemoryCacheStore())
	flags := common.AnalysisFlags{Cache: true}

	miss := rc.Lookup("cat hat", flags)
	assert.False(t, miss.Hit)

	require.NoError(t, rc.Store("cat hat", flags, sampleClusters()))

	lookup := rc.Lookup("cat hat", flags)
	require.True(t, lookup.Hit)
	assert.Equal(t, sampleClusters(), lookup.Clusters)
}

func TestResultCache_FileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	rc := NewResultCache(NewFileCacheStore(dir))
	flags := common.AnalysisFlags{Cache: true}

	require.NoError(t, rc.Store("cat hat", flags, sampleClusters()))

	lookup := rc.Lookup("cat hat", flags)
	require.True(t, lookup.Hit)
	assert.Equal(t, sampleClusters(), lookup.Clusters)
}

func TestResultCache_VersionMismatchIsMiss(t *testing.T) {
	store := NewMemoryCacheStore()
	rc := NewResultCache(store)
	flags := common.AnalysisFlags{Cache: true}

	key := common.CacheKey("cat hat", flags)
	stale := common.CacheEntry{KeyHash: key, Version: common.SchemaVersion + 1}
	blob, err := json.Marshal(stale)
	require.NoError(t, err)
	require.NoError(t, store.Put(key, blob))

	lookup := rc.Lookup("cat hat", flags)
	assert.False(t, lookup.Hit)
}

func TestResultCache_CorruptEntryIsMiss(t *testing.T) {
	store := NewMemoryCacheStore()
	rc := NewResultCache(store)
	flags := common.AnalysisFlags{Cache: true}

	key := common.CacheKey("cat hat", flags)
	require.NoError(t, store.Put(key, []byte("not json")))

	lookup := rc.Lookup("cat hat", flags)
	assert.False(t, lookup.Hit)
}

func TestFileCacheStore_UsesHexKeyFilename(t *testing.T) {
	dir := t.TempDir()
	store := NewFileCacheStore(dir)
	require.NoError(t, store.Put("deadbeef", []byte("{}")))

	blob, ok, err := store.Get("deadbeef")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "{}", string(blob))
	assert.FileExists(t, filepath.Join(dir, "deadbeef.json"))
}
