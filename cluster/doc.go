// Package cluster holds what the one-dimensional clustering engines share:
// sample preparation, the error taxonomy and the Clustering capability.
//
// 🚀 What is here?
//
//	• Prepare sorts and validates a sample and counts its distinct values.
//	• ValidateRange / ValidateClasses check cluster-count parameters.
//	• Clusterer is the minimal contract an engine fulfils (Data + Bounds);
//	  Classify and Intervals are written once against it.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/onedcluster/cluster"
//
//	var c cluster.Clusterer = engine // *ckmeans.Ckmeans or *jenks.Jenks
//	idx, err := cluster.Classify(c, 100)
//	ivs, err := cluster.Intervals(c)
//
// Bounds convention:
//
//	bounds[0] is always the sentinel 0, followed by the maximum of each
//	cluster in ascending order; the last bound is the sample maximum.
package cluster
