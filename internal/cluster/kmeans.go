// Package cluster groups note vectors with k-means.
package cluster

import (
	"errors"
	"fmt"

	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// KMeans partitions vectors with Lloyd's algorithm. Initial centroids are
// random, so assignments may differ between runs.
type KMeans struct {
	km kmeans.Kmeans
}

// NewKMeans creates a clusterer. deltaThreshold is the fraction of points
// allowed to change cluster in the final iteration; 0 uses the library default.
func NewKMeans(deltaThreshold float64) (*KMeans, error) {
	if deltaThreshold == 0 {
		return &KMeans{km: kmeans.New()}, nil
	}
	km, err := kmeans.NewWithOptions(deltaThreshold, nil)
	if err != nil {
		return nil, err
	}
	return &KMeans{km: km}, nil
}

// Cluster returns one id per vector in [0, min(k, len(vectors))).
func (c *KMeans) Cluster(vectors [][]float64, k int) ([]int, error) {
	if k <= 0 {
		return nil, fmt.Errorf("cluster count must be positive, got %d", k)
	}
	if len(vectors) == 0 {
		return []int{}, nil
	}
	dim := len(vectors[0])
	for _, v := range vectors {
		if len(v) != dim {
			return nil, errors.New("vector dimension mismatch")
		}
	}
	if k > len(vectors) {
		k = len(vectors)
	}
	ids := make([]int, len(vectors))
	if k == 1 {
		return ids, nil
	}

	dataset := make(clusters.Observations, len(vectors))
	for i, v := range vectors {
		dataset[i] = clusters.Coordinates(v)
	}
	cc, err := c.km.Partition(dataset, k)
	if err != nil {
		return nil, err
	}
	for i, v := range vectors {
		ids[i] = nearest(cc, clusters.Coordinates(v))
	}
	return ids, nil
}

func nearest(cc clusters.Clusters, p clusters.Coordinates) int {
	best := 0
	bestDist := -1.0
	for i, c := range cc {
		d := p.Distance(c.Center)
		if bestDist < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}
