package mcpserver

import (
	"container/list"
	"context"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/erraggy/oasdocs/parser"
)

// cacheKey identifies one parsed document. File inputs carry their absolute
// path and modification time so an edited file misses; inline content is
// identified by its digest and has a zero stamp.
type cacheKey struct {
	kind  string
	id    string
	stamp int64
}

func (k cacheKey) String() string {
	return k.kind + ":" + k.id + "@" + strconv.FormatInt(k.stamp, 10)
}

type cacheItem struct {
	key     cacheKey
	result  *parser.ParseResult
	expires time.Time
}

// parseCache holds parse results for the MCP session. The least recently
// used document is dropped once limit is reached, and concurrent misses for
// the same key share one parse.
type parseCache struct {
	mu      sync.Mutex
	recent  *list.List // of *cacheItem, most recently used first
	items   map[cacheKey]*list.Element
	limit   int
	flights singleflight.Group
	pruning atomic.Bool
}

func newParseCache(limit int) *parseCache {
	return &parseCache{
		recent: list.New(),
		items:  make(map[cacheKey]*list.Element),
		limit:  limit,
	}
}

var sessionCache = newParseCache(cfg.CacheMaxSize)

// lookup returns the cached result for k, dropping it instead if it has expired.
func (c *parseCache) lookup(k cacheKey) (*parser.ParseResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.items[k]
	if !ok {
		return nil, false
	}
	item := el.Value.(*cacheItem)
	if time.Now().After(item.expires) {
		c.drop(el)
		return nil, false
	}
	c.recent.MoveToFront(el)
	return item.result, true
}

func (c *parseCache) store(k cacheKey, result *parser.ParseResult, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	item := &cacheItem{key: k, result: result, expires: time.Now().Add(ttl)}
	if el, ok := c.items[k]; ok {
		el.Value = item
		c.recent.MoveToFront(el)
		return
	}
	for c.limit > 0 && c.recent.Len() >= c.limit {
		c.drop(c.recent.Back())
	}
	c.items[k] = c.recent.PushFront(item)
}

// load returns the cached result for k or runs parse once for all callers
// waiting on k, caching a successful result for ttl.
func (c *parseCache) load(k cacheKey, ttl time.Duration, parse func() (*parser.ParseResult, error)) (*parser.ParseResult, error) {
	if result, ok := c.lookup(k); ok {
		return result, nil
	}
	v, err, _ := c.flights.Do(k.String(), func() (any, error) {
		result, err := parse()
		if err != nil {
			return nil, err
		}
		c.store(k, result, ttl)
		return result, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*parser.ParseResult), nil
}

// drop must be called with mu held.
func (c *parseCache) drop(el *list.Element) {
	delete(c.items, el.Value.(*cacheItem).key)
	c.recent.Remove(el)
}

// prune drops every entry expired at now and reports how many went.
func (c *parseCache) prune(now time.Time) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for el := c.recent.Front(); el != nil; {
		next := el.Next()
		if now.After(el.Value.(*cacheItem).expires) {
			c.drop(el)
			n++
		}
		el = next
	}
	return n
}

// runPruner prunes the cache every interval until ctx is done. Only one
// pruner runs at a time; extra calls return immediately.
func (c *parseCache) runPruner(ctx context.Context, interval time.Duration) {
	if interval <= 0 || !c.pruning.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer c.pruning.Store(false)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				c.prune(now)
			}
		}
	}()
}

func (c *parseCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recent.Init()
	clear(c.items)
}

func (c *parseCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.recent.Len()
}
