package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/coocood/freecache"
)

type Cache interface {
	// Get unmarshals the cached value of key into dest and reports whether it was found.
	Get(key string, dest any) (bool, error)
	Set(key string, value any, ttl time.Duration) error
	Del(key string) bool
	Clear()
}

var _ Cache = (*JSONCache)(nil)

// JSONCache keeps JSON encoded values in a freecache (in-process, off heap) cache.
type JSONCache struct {
	mainCache *freecache.Cache
}

func NewJSONCache(sizeMB int) *JSONCache {
	if sizeMB <= 0 {
		sizeMB = 1
	}
	return &JSONCache{
		// freecache has a minimal size of 512KB
		mainCache: freecache.NewCache(sizeMB * 1024 * 1024),
	}
}

func (c *JSONCache) Get(key string, dest any) (bool, error) {
	valueBytes, err := c.mainCache.Get([]byte(key))
	if errors.Is(err, freecache.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache get [%s]: %w", key, err)
	}

	if err := json.Unmarshal(valueBytes, dest); err != nil {
		return false, fmt.Errorf("unmarshal cached [%s]: %w", key, err)
	}
	return true, nil
}

func (c *JSONCache) Set(key string, value any, ttl time.Duration) error {
	valueBytes, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal [%s]: %w", key, err)
	}
	if err := c.mainCache.Set([]byte(key), valueBytes, int(ttl.Seconds())); err != nil {
		return fmt.Errorf("cache set [%s]: %w", key, err)
	}
	return nil
}

func (c *JSONCache) Del(key string) bool {
	return c.mainCache.Del([]byte(key))
}

func (c *JSONCache) Clear() {
	c.mainCache.Clear()
}

func (c *JSONCache) EntryCount() int64 {
	return c.mainCache.EntryCount()
}
