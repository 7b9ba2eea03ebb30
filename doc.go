// Package onedcluster partitions a one-dimensional sample of real numbers
// into a few contiguous clusters of least within-cluster variance.
//
// Two engines share one clustering surface:
//
//	ckmeans/  exact Ckmeans.1d.dp dynamic program; picks k in [kmin, kmax]
//	          by Bayesian information criterion
//	jenks/    Jenks natural breaks for a fixed class count
//	cluster/  sample preparation, errors, Classify/Intervals/Partition
//	matrix/   bounds-checked dense tables backing both programs
//
// Both engines sort a copy of the input, fill their tables on first access
// and memoize the result, so repeated calls are cheap:
//
//	ck, err := ckmeans.New([]float64{1, 2, 3, 100, 101}, 1, 3)
//	if err != nil { ... }
//	clusters, _ := ck.Clusters() // [[1 2 3] [100 101]]
//	bounds, _ := ck.Bounds()     // [0 3 101]
//
// bounds[0] is always a 0 sentinel and bounds[i] is the maximum of cluster i.
//
//	go get github.com/katalvlaran/onedcluster
package onedcluster
