package basiscache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-chemsp/dsp/graph"
	"github.com/cwbudde/algo-chemsp/internal/testutil"
)

func openCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, c.Close()) })
	return c
}

func TestKey(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{1, 2, 2, 1})
	b := mat.NewDense(2, 2, []float64{1, 2, 2, 1.0000001})

	require.Equal(t, Key("laplacian", a), Key("laplacian", a))
	require.NotEqual(t, Key("laplacian", a), Key("laplacian", b))
	require.NotEqual(t, Key("laplacian", a), Key("adjacency", a))
}

func TestFourierBasisCachesResult(t *testing.T) {
	ctx := context.Background()
	c := openCache(t)

	adj, err := graph.FromRows(testutil.Ring(6), 0)
	require.NoError(t, err)
	l := graph.Laplacian(adj)

	first, hit, err := FourierBasis(ctx, c, "laplacian", l)
	require.NoError(t, err)
	require.False(t, hit)

	second, hit, err := FourierBasis(ctx, c, "laplacian", l)
	require.NoError(t, err)
	require.True(t, hit)

	testutil.RequireSliceNearlyEqual(t, second.Values, first.Values, 0)
	testutil.RequireMatrixNearlyEqual(t, second.Vectors, first.Vectors, 0)
}

func TestGetMiss(t *testing.T) {
	c := openCache(t)
	_, ok, err := c.Get(context.Background(), "laplacian:missing")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestNilCacheIsNoop(t *testing.T) {
	var c *Cache
	ctx := context.Background()

	adj, err := graph.FromRows(testutil.Ring(4), 0)
	require.NoError(t, err)

	b, hit, err := FourierBasis(ctx, c, "adjacency", adj)
	require.NoError(t, err)
	require.False(t, hit)
	require.Equal(t, 4, b.Dim())

	require.NoError(t, c.Put(ctx, "k", b))
	require.NoError(t, c.Close())
}

func TestCanceledContext(t *testing.T) {
	c := openCache(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := c.Get(ctx, "x")
	require.ErrorIs(t, err, context.Canceled)
}
