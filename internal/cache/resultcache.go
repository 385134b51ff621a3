package cache

import (
	"encoding/json"

	"github.com/rhymetrace/rhymecore/common"
)

// ResultCache is the consult/populate layer sitting in front of a
// CacheStore: it owns key derivation, schema-version gating, and JSON
// encoding so callers (rhymecore.Analyze) never touch a CacheStore's raw
// []byte contract directly.
type ResultCache struct {
	store common.CacheStore
}

func NewResultCache(store common.CacheStore) *ResultCache {
	return &ResultCache{store: store}
}

// LookupResult reports the outcome of a Lookup: Hit distinguishes "found
// and usable" from everything else, and Corrupted further distinguishes a
// present-but-unusable entry (bad JSON, schema version drift, key mismatch)
// from a plain absence, so the caller can record a CacheReadCorruption
// diagnostic only when there really was something to be corrupted.
type LookupResult struct {
	Clusters  []common.Cluster
	Hit       bool
	Corrupted bool
}

// Lookup returns the cached clusters for lyrics+flags. A miss, a corrupted
// entry, and a store read error are all treated as "recompute"; Corrupted
// is set when an entry was present but unusable or when the store read
// itself failed, and stays false for a plain absence.
func (c *ResultCache) Lookup(lyrics string, flags common.AnalysisFlags) LookupResult {
	if c == nil || c.store == nil {
		return LookupResult{}
	}

	key := common.CacheKey(lyrics, flags)
	blob, found, err := c.store.Get(key)
	if err != nil {
		return LookupResult{Corrupted: true}
	}
	if !found {
		return LookupResult{}
	}

	var entry common.CacheEntry
	if err := json.Unmarshal(blob, &entry); err != nil {
		return LookupResult{Corrupted: true}
	}
	if entry.Version != common.SchemaVersion || entry.KeyHash != key {
		return LookupResult{Corrupted: true}
	}

	return LookupResult{Clusters: entry.Clusters, Hit: true}
}

// Store persists clusters under lyrics+flags' cache key. Write failures
// are returned for the caller to log; a cache write is never allowed to
// fail the overall Analyze call.
func (c *ResultCache) Store(lyrics string, flags common.AnalysisFlags, clusters []common.Cluster) error {
	if c == nil || c.store == nil {
		return nil
	}

	key := common.CacheKey(lyrics, flags)
	entry := common.CacheEntry{
		KeyHash:      key,
		FeatureFlags: flags,
		Clusters:     clusters,
		Version:      common.SchemaVersion,
	}

	blob, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return c.store.Put(key, blob)
}
