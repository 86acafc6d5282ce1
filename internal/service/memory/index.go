package memory

import (
	"fmt"
	"sort"
)

// FlatIndex is an append-only brute-force nearest-neighbor index over
// fixed-length vectors using squared Euclidean distance. It trades scan cost
// for simplicity: session histories are small enough that a linear pass per
// query is cheaper than maintaining any real ANN structure.
type FlatIndex struct {
	dim     int
	vectors [][]float32
}

func NewFlatIndex(dim int) *FlatIndex {
	return &FlatIndex{dim: dim}
}

func (ix *FlatIndex) Len() int {
	return len(ix.vectors)
}

func (ix *FlatIndex) Add(vecs ...[]float32) error {
	for _, v := range vecs {
		if len(v) != ix.dim {
			return fmt.Errorf("vector dimension %d does not match index dimension %d", len(v), ix.dim)
		}
	}
	ix.vectors = append(ix.vectors, vecs...)
	return nil
}

// Search returns the positions of the k vectors closest to query, nearest
// first. Fewer than k positions come back when the index is smaller than k.
func (ix *FlatIndex) Search(query []float32, k int) ([]int, error) {
	if len(query) != ix.dim {
		return nil, fmt.Errorf("query dimension %d does not match index dimension %d", len(query), ix.dim)
	}
	if k <= 0 || len(ix.vectors) == 0 {
		return nil, nil
	}

	type hit struct {
		pos  int
		dist float32
	}
	hits := make([]hit, len(ix.vectors))
	for i, v := range ix.vectors {
		hits[i] = hit{pos: i, dist: sqDist(query, v)}
	}

	sort.SliceStable(hits, func(a, b int) bool {
		return hits[a].dist < hits[b].dist
	})

	if k > len(hits) {
		k = len(hits)
	}
	out := make([]int, k)
	for i := 0; i < k; i++ {
		out[i] = hits[i].pos
	}
	return out, nil
}

// sqDist is squared L2 distance. The square root is monotone, so skipping it
// does not change the ranking.
func sqDist(a, b []float32) float32 {
	var sum float32
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
