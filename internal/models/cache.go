package models

import (
	"sync"
)

const defaultCacheMaxEntries = 100_000

// Cache keeps analyses in memory. It is safe for concurrent use.
type Cache struct {
	// data stores the underlying map
	data map[Job]Analysis

	// maxEntries bounds the size of data, the cache is cleared when it is full
	maxEntries int

	// dataMutex protects data
	dataMutex sync.Mutex
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return NewCacheWithSize(defaultCacheMaxEntries)
}

// NewCacheWithSize creates a new cache holding at most maxEntries analyses.
func NewCacheWithSize(maxEntries int) *Cache {
	return &Cache{
		data:       make(map[Job]Analysis),
		maxEntries: maxEntries,
	}
}

// Upsert will add or replace an entry in the cache.
func (c *Cache) Upsert(analysis Analysis) {
	c.dataMutex.Lock()
	defer c.dataMutex.Unlock()

	c.upsert(analysis)
}

// BulkUpsert works like Upsert, but for multiple analyses.
func (c *Cache) BulkUpsert(analyses []Analysis) {
	c.dataMutex.Lock()
	defer c.dataMutex.Unlock()

	for _, analysis := range analyses {
		c.upsert(analysis)
	}
}

// upsert does an actual upsert. It assumes dataMutex is locked.
func (c *Cache) upsert(analysis Analysis) {
	job := analysis.Job()

	if _, ok := c.data[job]; !ok && len(c.data) >= c.maxEntries {
		clear(c.data)
	}

	c.data[job] = analysis
}

// Lookup looks up the analysis of a job.
func (c *Cache) Lookup(job Job) (Analysis, bool) {
	if !job.Board.HasAnyLegalMove(job.Side) {
		return c.getPass(job), true
	}

	c.dataMutex.Lock()
	defer c.dataMutex.Unlock()

	analysis, ok := c.data[job]
	return analysis, ok
}

// getPass creates an Analysis for a side without moves from scratch.
func (c *Cache) getPass(job Job) Analysis {
	return Analysis{
		Board:   job.Board,
		Side:    job.Side,
		Depth:   job.Depth,
		HasMove: false,
	}
}

// Len returns the number of items in the cache.
func (c *Cache) Len() int {
	c.dataMutex.Lock()
	defer c.dataMutex.Unlock()

	return len(c.data)
}
