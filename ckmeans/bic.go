// SPDX-License-Identifier: MIT

package ckmeans

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/onedcluster/cluster"
	"github.com/katalvlaran/onedcluster/matrix"
)

// Score is the model-selection outcome for one candidate cluster count.
type Score struct {
	K             int     // candidate number of clusters
	LogLikelihood float64 // summed per-cluster log-likelihood
	BIC           float64 // 2·LogLikelihood − (3K−1)·ln(n)
}

// selectLevels picks the k in [kmin, kmax] with the largest BIC.
// Ties keep the smaller k. When kmin == kmax no scoring happens.
//
// x is the 1-based sorted sample, b the filled backtrack table.
//
// Complexity: O((kmax-kmin+1)·(n + kmax)).
func selectLevels(x []float64, b *matrix.Dense[int], kmin, kmax int, model Likelihood, log zerolog.Logger) (int, []Score, error) {
	if kmin == kmax {
		return kmin, nil, nil
	}

	n := len(x) - 1
	lnN := math.Log(float64(n))

	kopt := kmin
	maxBIC := 0.0
	scores := make([]Score, 0, kmax-kmin+1)
	for k := kmin; k <= kmax; k++ {
		spans, err := recoverSpans(b, k, n)
		if err != nil {
			return 0, nil, err
		}

		likelihood := 0.0
		for _, s := range spans {
			lo, hi, err := bin(x, s)
			if err != nil {
				return 0, nil, err
			}
			likelihood += logLikelihood(model, x[s.left:s.left+s.size()], hi-lo, n)
		}

		bic := 2*likelihood - float64(3*k-1)*lnN
		scores = append(scores, Score{K: k, LogLikelihood: likelihood, BIC: bic})
		log.Debug().
			Int("k", k).
			Float64("loglik", likelihood).
			Float64("bic", bic).
			Msg("bic candidate")

		if k == kmin || bic > maxBIC {
			maxBIC = bic
			kopt = k
		}
	}

	log.Debug().Int("k", kopt).Float64("bic", maxBIC).Msg("selected cluster count")

	return kopt, scores, nil
}

// bin returns the interval used to estimate a cluster's density.
//
//   - distinct endpoints: the cluster's own min and max;
//   - a run of one repeated value: widened to the midpoints with its
//     neighbours, or to the sample extreme when the run touches an end.
//
// A lower edge above the upper edge means the sample was not sorted.
func bin(x []float64, s span) (lo, hi float64, err error) {
	n := len(x) - 1
	left, right := x[s.left], x[s.right]

	switch {
	case left < right:
		return left, right, nil
	case left == right:
		if s.left == 1 {
			lo = x[1]
		} else {
			lo = (x[s.left-1] + x[s.left]) / 2
		}
		if s.right < n {
			hi = (x[s.right] + x[s.right+1]) / 2
		} else {
			hi = x[n]
		}

		return lo, hi, nil
	default:
		return 0, 0, fmt.Errorf("ckmeans: bin [%d,%d] left %v > right %v: %w",
			s.left, s.right, left, right, cluster.ErrInternalInvariant)
	}
}

// logLikelihood scores one cluster of a sample of n points under model.
// width is the cluster's bin width.
func logLikelihood(model Likelihood, values []float64, width float64, n int) float64 {
	size := float64(len(values))
	fn := float64(n)

	if model == Uniform {
		return size * math.Log(size/width/fn)
	}

	variance := 0.0
	mean := values[0]
	if len(values) > 1 && values[0] != values[len(values)-1] {
		mean, variance = stat.MeanVariance(values, nil)
	}
	if variance <= 0 {
		return size * math.Log(1.0/width/fn)
	}

	component := distuv.Normal{Mu: mean, Sigma: math.Sqrt(variance)}
	ll := 0.0
	for _, v := range values {
		ll += component.LogProb(v)
	}

	// Mixture weight of the component.
	return ll + size*math.Log(size/fn)
}
