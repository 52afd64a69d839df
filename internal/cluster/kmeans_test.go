package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKMeans_InvalidK(t *testing.T) {
	c, err := NewKMeans(0)
	require.NoError(t, err)
	_, err = c.Cluster([][]float64{{1}}, 0)
	assert.Error(t, err)
}

func TestKMeans_EmptyInput(t *testing.T) {
	c, err := NewKMeans(0)
	require.NoError(t, err)
	ids, err := c.Cluster(nil, 3)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestKMeans_DimensionMismatch(t *testing.T) {
	c, err := NewKMeans(0)
	require.NoError(t, err)
	_, err = c.Cluster([][]float64{{1, 0}, {1}}, 2)
	assert.Error(t, err)
}

func TestKMeans_SingleCluster(t *testing.T) {
	c, err := NewKMeans(0)
	require.NoError(t, err)
	ids, err := c.Cluster([][]float64{{1, 0}, {0, 1}, {0, 0}}, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0}, ids)
}

func TestKMeans_IDsInRange(t *testing.T) {
	c, err := NewKMeans(0.01)
	require.NoError(t, err)
	vectors := [][]float64{
		{1, 0}, {0.9, 0.1}, {0.95, 0},
		{0, 1}, {0.1, 0.9}, {0, 0.95},
	}
	ids, err := c.Cluster(vectors, 2)
	require.NoError(t, err)
	require.Len(t, ids, len(vectors))
	for _, id := range ids {
		assert.GreaterOrEqual(t, id, 0)
		assert.Less(t, id, 2)
	}
}

func TestKMeans_KClampedToInputSize(t *testing.T) {
	c, err := NewKMeans(0)
	require.NoError(t, err)
	ids, err := c.Cluster([][]float64{{1, 0}, {0, 1}}, 5)
	require.NoError(t, err)
	require.Len(t, ids, 2)
	for _, id := range ids {
		assert.Less(t, id, 2)
	}
}
