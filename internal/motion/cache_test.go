package motion

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReconstructCacheGetPutRoundTrip(t *testing.T) {
	c := NewReconstructCache(2)
	_, ok := c.Get(100, 0.5, 0.5)
	require.False(t, ok)

	c.Put(100, 0.5, 0.5, Point{X: 1, Y: 2})
	p, ok := c.Get(100, 0.5, 0.5)
	require.True(t, ok)
	require.Equal(t, Point{X: 1, Y: 2}, p)
}

func TestReconstructCacheEvictsLRU(t *testing.T) {
	c := NewReconstructCache(1)
	c.Put(1, 0, 0, Point{X: 1})
	c.Put(2, 0, 0, Point{X: 2})

	_, ok := c.Get(1, 0, 0)
	require.False(t, ok, "oldest entry should have been evicted once capacity was exceeded")

	p, ok := c.Get(2, 0, 0)
	require.True(t, ok)
	require.Equal(t, Point{X: 2}, p)
}
