// SPDX-License-Identifier: MIT
// Package: depdecode/bucket
//
// bucket.go — length k-means over distinct values.
//
// Algorithm:
//  1. Collapse lengths to sorted distinct values with their frequencies.
//  2. Draw min(k, #distinct) distinct values at random as initial centroids.
//  3. Repeat until the centroid vector is bit-for-bit unchanged:
//     a. Refill every empty cluster with the member of the currently biggest
//        cluster that lies farthest from its centroid.
//     b. Move each centroid to the frequency-weighted mean of its values.
//     c. Reassign each value to its nearest centroid (first on ties).
//  4. Broadcast value labels back to sentence indices and drop clusters that
//     ended empty.
//
// Complexity: O(I·d·k) for I rounds over d distinct values, plus O(n log n)
// for the distinct-value collapse.

package bucket

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrEmptyInput is returned for an empty length list.
	ErrEmptyInput = errors.New("bucket: empty length list")

	// ErrBadK indicates a requested cluster count below 1.
	ErrBadK = errors.New("bucket: k must be >= 1")

	// ErrBadBatchSize indicates a mini-batch size below 1.
	ErrBadBatchSize = errors.New("bucket: batch size must be >= 1")
)

// Result is a bucket assignment.
//
//   - Clusters[c] lists sentence indices (ascending) of cluster c.
//   - Centroids[c] is the representative length of cluster c.
//   - Labels[i] is the cluster of sentence i.
//
// Clusters are non-empty and ordered by their internal cluster id; together
// they partition 0..len(lengths)-1.
type Result struct {
	Centroids []float64
	Clusters  [][]int
	Labels    []int
}

// Cluster groups sentence indices by similar length into at most k clusters.
// The effective k is capped at the number of distinct lengths.
//
// Membership depends on the initial centroid draw; pass WithSeed or WithRand
// for reproducible output.
//
// Errors:
//   - ErrEmptyInput: len(lengths) == 0.
//   - ErrBadK: k < 1.
func Cluster(lengths []int, k int, opts ...Option) (*Result, error) {
	if len(lengths) == 0 {
		return nil, ErrEmptyInput
	}
	if k < 1 {
		return nil, fmt.Errorf("Cluster(k=%d): %w", k, ErrBadK)
	}
	cfg := newConfig(opts...)

	values, freq, inverse := distinct(lengths)
	k = min(k, len(values))

	perm := cfg.rng.Perm(len(values))
	centroids := make([]float64, k)
	for c := range centroids {
		centroids[c] = values[perm[c]]
	}
	labels, dists := assign(values, centroids)

	var old []float64
	for it := 0; it < cfg.maxIter && (old == nil || !floats.Equal(centroids, old)); it++ {
		repair(labels, dists, k)
		old = centroids
		centroids = update(values, freq, labels, k)
		labels, dists = assign(values, centroids)
	}

	return collect(labels, inverse, centroids), nil
}

// distinct returns the sorted distinct values of xs, their frequencies, and
// for every input position the index of its value.
func distinct(xs []int) (values, freq []float64, inverse []int) {
	sorted := append([]int(nil), xs...)
	sort.Ints(sorted)

	pos := make(map[int]int, len(sorted))
	for _, x := range sorted {
		if p, ok := pos[x]; ok {
			freq[p]++
			continue
		}
		pos[x] = len(values)
		values = append(values, float64(x))
		freq = append(freq, 1)
	}

	inverse = make([]int, len(xs))
	for i, x := range xs {
		inverse[i] = pos[x]
	}

	return values, freq, inverse
}

// assign labels every value with its nearest centroid (first on ties) and
// records that distance.
func assign(values, centroids []float64) (labels []int, dists []float64) {
	labels = make([]int, len(values))
	dists = make([]float64, len(values))
	gap := make([]float64, len(centroids))
	for v, x := range values {
		for c, m := range centroids {
			gap[c] = math.Abs(x - m)
		}
		labels[v] = floats.MinIdx(gap)
		dists[v] = gap[labels[v]]
	}

	return labels, dists
}

// repair moves one value into each empty cluster: the value of the biggest
// cluster lying farthest from its centroid. dists are those of the last
// assignment. With k ≤ len(labels), an empty cluster implies the biggest
// cluster has at least two members, so the donor never empties.
func repair(labels []int, dists []float64, k int) {
	sizes := make([]float64, k)
	for c := 0; c < k; c++ {
		for i := range sizes {
			sizes[i] = 0
		}
		for _, l := range labels {
			sizes[l]++
		}
		if sizes[c] > 0 {
			continue
		}
		biggest := floats.MaxIdx(sizes)
		farthest, best := -1, 0.0
		for v, l := range labels {
			if l == biggest && (farthest < 0 || dists[v] > best) {
				farthest, best = v, dists[v]
			}
		}
		labels[farthest] = c
	}
}

// update returns the frequency-weighted mean value of every cluster.
// All k clusters must be non-empty.
func update(values, freq []float64, labels []int, k int) []float64 {
	centroids := make([]float64, k)
	xs := make([]float64, 0, len(values))
	ws := make([]float64, 0, len(values))
	for c := 0; c < k; c++ {
		xs, ws = xs[:0], ws[:0]
		for v, l := range labels {
			if l == c {
				xs = append(xs, values[v])
				ws = append(ws, freq[v])
			}
		}
		centroids[c] = stat.Mean(xs, ws)
	}

	return centroids
}

// collect broadcasts value labels to sentence indices and keeps only the
// clusters that received at least one sentence, in cluster-id order.
func collect(valueLabels, inverse []int, centroids []float64) *Result {
	members := make([][]int, len(centroids))
	for i, v := range inverse {
		c := valueLabels[v]
		members[c] = append(members[c], i)
	}

	res := &Result{Labels: make([]int, len(inverse))}
	for c, idx := range members {
		if len(idx) == 0 {
			continue
		}
		pos := len(res.Clusters)
		res.Clusters = append(res.Clusters, idx)
		res.Centroids = append(res.Centroids, centroids[c])
		for _, i := range idx {
			res.Labels[i] = pos
		}
	}

	return res
}

// Batches splits every cluster into consecutive mini-batches of at most size
// sentence indices, cluster by cluster.
//
// Errors:
//   - ErrBadBatchSize: size < 1.
func (r *Result) Batches(size int) ([][]int, error) {
	if size < 1 {
		return nil, fmt.Errorf("Batches(size=%d): %w", size, ErrBadBatchSize)
	}
	var out [][]int
	for _, idx := range r.Clusters {
		for lo := 0; lo < len(idx); lo += size {
			hi := min(lo+size, len(idx))
			out = append(out, idx[lo:hi:hi])
		}
	}

	return out, nil
}
