// Package bucket groups sentences of similar length so that mini-batches
// waste little padding.
//
// Cluster runs a one-dimensional, frequency-weighted k-means over the
// distinct length values (corpora repeat lengths heavily, so clustering the
// distinct values is far cheaper than clustering every sentence), repairs
// empty clusters by stealing the farthest member of the biggest cluster, and
// broadcasts the result back to sentence indices.
//
//	res, err := bucket.Cluster(lengths, 32, bucket.WithSeed(1))
//	batches, err := res.Batches(64)
//
// Guarantees:
//   - every index 0..len(lengths)-1 is in exactly one returned cluster;
//   - every returned cluster is non-empty;
//   - len(res.Clusters) ≤ min(k, number of distinct lengths).
//
// Initial centroids are drawn at random; membership is reproducible only
// with WithSeed or WithRand.
package bucket
