package mediatype

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache memoizes successful parses of frequently repeated media-type
// strings, such as Content-Type header values, which tend to come from a
// small working set. Cached results are owned (MediaTypeBuf), so the
// cache never pins a caller's buffer. Cache is safe for concurrent use.
//
// Parse failures are not cached; malformed input pays the parse cost on
// every call.
type Cache struct {
	entries *lru.Cache[string, MediaTypeBuf]
}

// NewCache returns a cache holding at most size parsed media types,
// evicting the least recently used entry when full.
func NewCache(size int) (*Cache, error) {
	entries, err := lru.New[string, MediaTypeBuf](size)
	if err != nil {
		return nil, err
	}
	return &Cache{entries: entries}, nil
}

// Parse returns the owned media type for s, reusing an earlier result
// when s has been seen before.
func (c *Cache) Parse(s string) (MediaTypeBuf, error) {
	if buf, ok := c.entries.Get(s); ok {
		return buf, nil
	}
	buf, err := ParseBuf(s)
	if err != nil {
		return MediaTypeBuf{}, err
	}
	// Clone the key: s may be a slice of a larger buffer the cache must
	// not keep alive.
	c.entries.Add(strings.Clone(s), buf)
	return buf, nil
}

// Len returns the number of cached media types.
func (c *Cache) Len() int { return c.entries.Len() }
