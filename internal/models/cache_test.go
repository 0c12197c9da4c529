package models

import (
	"sync"
	"testing"

	"github.com/lk16/reversi/internal/othello"
	"github.com/stretchr/testify/require"
)

func TestCache_UpsertLookup(t *testing.T) {
	cache := NewCache(10)
	analysis := NewAnalysis(othello.NewBoardStart(), othello.Black)

	_, ok := cache.Lookup(analysis.CacheKey())
	require.False(t, ok)

	cache.Upsert(analysis)
	cache.Upsert(analysis)
	require.Equal(t, 1, cache.Len())

	found, ok := cache.Lookup(analysis.CacheKey())
	require.True(t, ok)
	require.Equal(t, analysis.Moves, found.Moves)
}

func TestCache_Evicts(t *testing.T) {
	cache := NewCache(2)

	a := NewAnalysis(othello.NewBoardStart(), othello.Black)
	b := NewAnalysis(othello.NewBoardStart(), othello.White)
	c := NewAnalysis(othello.ParseBoardMust("WB/BW"), othello.Black)

	cache.Upsert(a)
	cache.Upsert(b)

	// Touch a, so b is the least recently used.
	_, ok := cache.Lookup(a.CacheKey())
	require.True(t, ok)

	cache.Upsert(c)
	require.Equal(t, 2, cache.Len())

	_, ok = cache.Lookup(b.CacheKey())
	require.False(t, ok)
	_, ok = cache.Lookup(a.CacheKey())
	require.True(t, ok)
	_, ok = cache.Lookup(c.CacheKey())
	require.True(t, ok)
}

func TestCache_Concurrent(t *testing.T) {
	cache := NewCache(100)
	board := othello.NewBoardStart()

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func(color othello.Color) {
			defer wg.Done()
			for range 100 {
				cache.Upsert(NewAnalysis(board, color))
				cache.Lookup(AnalysisCacheKey(board, color))
			}
		}(othello.Black + othello.Color(i%2))
	}
	wg.Wait()

	require.Equal(t, 2, cache.Len())
}

func TestNewCache_InvalidCapacity(t *testing.T) {
	require.Panics(t, func() { NewCache(0) })
}
