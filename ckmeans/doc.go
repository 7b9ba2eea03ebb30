// Package ckmeans computes optimal one-dimensional k-means clusterings by
// dynamic programming, the Ckmeans.1d.dp method of Wang & Song.
//
// 🚀 What is Ckmeans?
//
//	Given n real numbers, Ckmeans splits the sorted sample into k contiguous
//	clusters with the least total within-cluster sum of squared deviations
//	("withinss"). Unlike heuristic k-means or Jenks natural breaks, the
//	result is provably optimal. It is useful for choropleth classes, colour
//	ramps, histogram binning and any place a continuous variable needs to be
//	represented by a few homogeneous groups.
//
// ✨ Key features:
//   - exact O(k·n²) dynamic program over a distance table D and a backtrack
//     table B, both (kmax+1)×(n+1);
//   - automatic choice of k in [kmin, kmax] by the Bayesian Information
//     Criterion, with a Gaussian (default) or uniform likelihood model;
//   - lazy, memoized evaluation: the tables are filled on the first call to a
//     result accessor and reused afterwards;
//   - shared Classify/Intervals semantics with the jenks package via
//     cluster.Clusterer.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/onedcluster/ckmeans"
//
//	ck, err := ckmeans.New(data, 1, 5) // pick the best k in [1,5]
//	if err != nil {
//	  // cluster.ErrInvalidArgument
//	}
//	clusters, err := ck.Clusters()
//	bounds, err := ck.Bounds() // [0, max(c1), ..., max(ck)]
//	k, err := ck.K()
//
// Performance:
//
//   - Time:   O(kmax·n²)
//   - Memory: O(kmax·n)
//
// References:
//
//	Haizhou Wang and Mingzhou Song, "Ckmeans.1d.dp: Optimal k-means Clustering
//	in One Dimension by Dynamic Programming", The R Journal 3/2, 2011.
package ckmeans
