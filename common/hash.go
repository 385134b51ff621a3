package common

import "hash/fnv"

// StableHash derives a deterministic, order-independent RhymeClassID from a
// string key. It is a pure function of the key's bytes; FNV-1a is enough
// since class IDs need no cryptographic property, only determinism.
func StableHash(key string) RhymeClassID {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key))
	return RhymeClassID(h.Sum64())
}

// CacheKey builds the ResultCache key: a stable hash of
// lyrics || 0x00 || canonical flag encoding || 0x00 || schema version.
func CacheKey(lyrics string, flags AnalysisFlags) string {
	buf := make([]byte, 0, len(lyrics)+8)
	buf = append(buf, lyrics...)
	buf = append(buf, 0)
	buf = append(buf, flags.CanonicalEncoding()...)
	buf = append(buf, 0)
	buf = append(buf, byte(SchemaVersion))
	h := fnv.New64a()
	_, _ = h.Write(buf)
	return hex64(h.Sum64())
}

const hexDigits = "0123456789abcdef"

func hex64(v uint64) string {
	b := make([]byte, 16)
	for i := 15; i >= 0; i-- {
		b[i] = hexDigits[v&0xf]
		v >>= 4
	}
	return string(b)
}
