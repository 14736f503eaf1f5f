package models

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func testAnalysis(depth int) Analysis {
	return Analysis{
		Board:   NewBoardStart(),
		Side:    BLACK,
		Depth:   depth,
		HasMove: true,
		Move:    NewMove(2, 3),
		Score:   1.5,
		Nodes:   42,
	}
}

func TestCache_UpsertLookup(t *testing.T) {
	cache := NewCache()

	analysis := testAnalysis(3)
	_, ok := cache.Lookup(analysis.Job())
	require.False(t, ok)

	cache.Upsert(analysis)
	got, ok := cache.Lookup(analysis.Job())
	require.True(t, ok)
	require.Equal(t, analysis, got)

	// Other depths are separate entries
	_, ok = cache.Lookup(testAnalysis(2).Job())
	require.False(t, ok)

	cache.BulkUpsert([]Analysis{testAnalysis(2), testAnalysis(4)})
	require.Equal(t, 3, cache.Len())
}

func TestCache_LookupPass(t *testing.T) {
	cache := NewCache()

	job := Job{Board: NewBoardEmpty(), Side: WHITE, Depth: 3}
	got, ok := cache.Lookup(job)
	require.True(t, ok)
	require.False(t, got.HasMove)
	require.Equal(t, 0, cache.Len())
}

func TestCache_MaxEntries(t *testing.T) {
	cache := NewCacheWithSize(2)

	cache.Upsert(testAnalysis(1))
	cache.Upsert(testAnalysis(2))
	require.Equal(t, 2, cache.Len())

	// Replacing does not clear
	cache.Upsert(testAnalysis(2))
	require.Equal(t, 2, cache.Len())

	cache.Upsert(testAnalysis(3))
	require.Equal(t, 1, cache.Len())
}

func TestCache_Concurrent(t *testing.T) {
	cache := NewCache()

	var wg sync.WaitGroup
	for depth := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cache.Upsert(testAnalysis(depth))
			_, _ = cache.Lookup(testAnalysis(depth).Job())
		}()
	}
	wg.Wait()

	require.Equal(t, 16, cache.Len())
}
