// Package cache keeps computed analytics rows in a bounded TTL cache.
package cache

import (
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/dgraph-io/ristretto"
	"github.com/prometheus/client_golang/prometheus"
)

type Config struct {
	TTL time.Duration
	// MaxRows bounds the total number of cached rows across entries.
	MaxRows int64
}

type entry struct {
	key   string
	value any
}

// ResultCache stores values under the 64-bit xxhash of their key. The full
// key is kept with the value so a hash collision reads as a miss.
type ResultCache struct {
	cache    *ristretto.Cache
	ttl      time.Duration
	requests *prometheus.CounterVec
}

// New builds the cache and registers its hit/miss counter with reg when reg
// is not nil.
func New(cfg Config, reg prometheus.Registerer) (*ResultCache, error) {
	maxRows := cfg.MaxRows
	if maxRows <= 0 {
		maxRows = 100_000
	}
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: maxRows * 10,
		MaxCost:     maxRows,
		BufferItems: 64,
		// cost is measured in rows only
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "analytics_cache_requests_total",
		Help: "Analytics result cache lookups by result.",
	}, []string{"result"})
	if reg != nil {
		if err := reg.Register(requests); err != nil {
			c.Close()
			return nil, err
		}
	}

	return &ResultCache{cache: c, ttl: cfg.TTL, requests: requests}, nil
}

func (c *ResultCache) Get(key string) (any, bool) {
	v, ok := c.cache.Get(xxhash.Sum64String(key))
	if ok {
		if e, isEntry := v.(entry); isEntry && e.key == key {
			c.requests.WithLabelValues("hit").Inc()
			return e.value, true
		}
	}
	c.requests.WithLabelValues("miss").Inc()
	return nil, false
}

// Set stores value with the given cost. Ristretto admits writes
// asynchronously, so a Get right after Set may still miss.
func (c *ResultCache) Set(key string, value any, cost int64) {
	c.cache.SetWithTTL(xxhash.Sum64String(key), entry{key: key, value: value}, cost, c.ttl)
}

// Wait blocks until buffered writes are applied.
func (c *ResultCache) Wait() {
	c.cache.Wait()
}

func (c *ResultCache) Close() {
	c.cache.Close()
}
