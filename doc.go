// Package depdecode turns arc scores into projective dependency trees and
// keeps the surrounding data honest.
//
// 🚀 What is depdecode?
//
//	A small toolkit for graph-based dependency parsing:
//		• Decoding: Eisner's O(n³) algorithm over padded score batches
//		• Validation: single-rooted projective tree checks on head arrays
//		• Bucketing: length k-means that groups sentences into mini-batches
//		• Corpora: CoNLL-U / CoNLL-X reading and a depcheck CLI
//
// Under the hood, everything is organized in subpackages:
//
//	matrix/  — Dense, Tensor and Mask: score storage with a strict numeric policy
//	eisner/  — Decode and DecodeSentence
//	deptree/ — arena trees, in-order traversal, IsProjectiveTree
//	bucket/  — Cluster and Result.Batches
//	builder/ — seeded fixtures: random projective trees, score tensors, lengths
//	conllu/  — corpus reader
//	cmd/depcheck — corpus checks and bucket previews
//
// Quick example ("The dog barked"): token 3 hangs off the root, 2 off 3,
// 1 off 2.
//
//	The ◄── dog ◄── barked ◄── <root>
//	 1       2        3          0
//
//	heads = [-1, 2, 3, 0]
//
//	go get github.com/katalvlaran/depdecode/eisner
package depdecode
