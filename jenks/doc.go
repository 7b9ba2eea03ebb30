// Package jenks classifies a one-dimensional sample with Jenks natural
// breaks: contiguous classes that minimize the total within-class variance.
//
// 🚀 What are natural breaks?
//
//	George Jenks' method for choropleth maps. The sorted sample is cut into
//	a fixed number of classes so that values inside a class are as close as
//	possible and classes are as far apart as possible.
//
// ✨ Key features:
//   - O(k·n²) dynamic program over the lower-class-limit table LC and the
//     variance-combination table OP, both (n+1)×(k+1);
//   - k is clamped to the number of distinct values, so no class is empty
//     and a repeated value is never split;
//   - the tables built for k classes answer every class count m ≤ k
//     (BoundsN/ClustersN) without being rebuilt;
//   - the k-class partition is kept with the tables, smaller ones in a
//     bounded LRU;
//   - shared Classify/Intervals semantics with the ckmeans package via
//     cluster.Clusterer.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/onedcluster/jenks"
//
//	jk, err := jenks.New(data, 4)
//	bounds, err := jk.Bounds()       // [0, max(c1), ..., max(c4)]
//	three, err := jk.ClustersN(3)    // same tables, three classes
//
// Performance:
//
//   - Time:   O(k·n²) once, O(k + n) per uncached BoundsN/ClustersN
//   - Memory: O(k·n)
package jenks
