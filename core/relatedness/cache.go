package relatedness

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/dgraph-io/ristretto"
)

// pairCache memoizes pairwise relatedness decisions. The rule tables
// and threshold are fixed for the lifetime of an Engine, so a cached
// decision never goes stale within one engine instance.
type pairCache struct {
	cache *ristretto.Cache
}

func newPairCache(cfg Config) (*pairCache, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: cfg.CacheNumCounters,
		MaxCost:     cfg.CacheMaxCost,
		BufferItems: cfg.CacheBufferItems,
	})
	if err != nil {
		return nil, err
	}
	return &pairCache{cache: cache}, nil
}

func (pc *pairCache) get(key string) (bool, bool) {
	value, found := pc.cache.Get(key)
	if !found {
		return false, false
	}
	related, ok := value.(bool)
	return related, ok
}

func (pc *pairCache) set(key string, related bool) {
	pc.cache.Set(key, related, 1)
}

// wait blocks until buffered writes are applied. Test support.
func (pc *pairCache) wait() {
	pc.cache.Wait()
}

func (pc *pairCache) close() {
	pc.cache.Close()
}

// pairKey hashes the ordered pair of contents and modalities. Order
// matters: continuation rules distinguish the new input from the
// prior turn.
func pairKey(newContent, newModality, priorContent, priorModality string) string {
	h := sha256.New()
	h.Write([]byte(newContent))
	h.Write([]byte{0})
	h.Write([]byte(newModality))
	h.Write([]byte{0})
	h.Write([]byte(priorContent))
	h.Write([]byte{0})
	h.Write([]byte(priorModality))
	return hex.EncodeToString(h.Sum(nil))
}
