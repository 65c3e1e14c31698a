package recommend

import (
	"context"
	"encoding/json"
	"sync"
)

// Cache remembers, per logical call, the fingerprint of the inputs that
// produced the last output. A matching fingerprint short-circuits the remote
// call; a failed fetch never touches the stored entry, so a retry with the
// same inputs hits the provider again.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	fingerprint string
	output      any
}

func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]cacheEntry),
	}
}

// Fingerprint structurally serializes the relevant input subset. Map keys
// are sorted by the JSON encoder, so equal inputs always produce equal
// fingerprints.
func Fingerprint(inputs any) string {
	raw, err := json.Marshal(inputs)
	if err != nil {
		// Unserializable inputs never match anything, forcing a refetch.
		return ""
	}
	return string(raw)
}

func (c *Cache) lookup(key, fingerprint string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || e.fingerprint != fingerprint || fingerprint == "" || e.output == nil {
		return nil, false
	}
	return e.output, true
}

func (c *Cache) store(key, fingerprint string, output any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{fingerprint: fingerprint, output: output}
}

// getOrRefresh returns the cached output when the fingerprint still matches,
// otherwise fetches, stores on success and returns. The bool reports a cache
// hit.
func getOrRefresh[T any](ctx context.Context, c *Cache, key, fingerprint string, fetch func(context.Context) (T, error)) (T, bool, error) {
	if cached, ok := c.lookup(key, fingerprint); ok {
		if out, ok := cached.(T); ok {
			return out, true, nil
		}
	}

	out, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, false, err
	}

	c.store(key, fingerprint, out)
	return out, false, nil
}
