// Package loglik accumulates copula log-likelihoods over datasets.
//
// The kernels in [copula] are pure and reentrant, so a sample can be
// split into chunks evaluated by parallel workers and the partial sums
// combined:
//
//	total, err := loglik.Accumulate(ctx, sample, 0.5, 0)
//
// A worker count of 0 uses one worker per CPU.
package loglik

import (
	"context"
	"math"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/copula/internal/copula"
)

// PairSample holds a bivariate copula-scale dataset.
type PairSample struct {
	U, V []float64
}

// Len returns the number of pairs.
func (s PairSample) Len() int { return len(s.U) }

// Accumulate returns the total Gaussian copula log-likelihood of the
// sample at correlation rho, evaluated over parallel chunks.
func Accumulate(ctx context.Context, sample PairSample, rho float64, workers int) (float64, error) {
	if len(sample.U) != len(sample.V) {
		return 0, copula.ErrLengthMismatch
	}
	n := sample.Len()
	if n == 0 {
		return 0, nil
	}

	workers = clampWorkers(workers, n)
	chunk := (n + workers - 1) / workers

	partials := make([]float64, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		if lo >= n {
			break
		}
		hi := lo + chunk
		if hi > n {
			hi = n
		}

		wg.Add(1)
		go func(idx, lo, hi int) {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				errs[idx] = err
				return
			}
			partials[idx], errs[idx] = copula.BivariateLogPDFBatch(sample.U[lo:hi], sample.V[lo:hi], rho)
		}(w, lo, hi)
	}
	wg.Wait()

	var total float64
	for i := range partials {
		if errs[i] != nil {
			return 0, errs[i]
		}
		total += partials[i]
	}
	return total, nil
}

// AccumulateMatrix returns the total multivariate copula
// log-likelihood of the K x N observation matrix under the given
// lower Cholesky factor, with columns split across parallel chunks.
func AccumulateMatrix(ctx context.Context, obs *mat.Dense, chol *mat.TriDense, workers int) (float64, error) {
	k, n := obs.Dims()
	if ck, kind := chol.Triangle(); kind != mat.Lower {
		return 0, copula.ErrNotLower
	} else if ck != k {
		return 0, copula.ErrShapeMismatch
	}
	if n == 0 || k <= 1 {
		return 0, nil
	}

	workers = clampWorkers(workers, n)
	chunk := (n + workers - 1) / workers

	partials := make([]float64, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		if lo >= n {
			break
		}
		hi := lo + chunk
		if hi > n {
			hi = n
		}

		wg.Add(1)
		go func(idx, lo, hi int) {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				errs[idx] = err
				return
			}
			cols := obs.Slice(0, k, lo, hi).(*mat.Dense)
			partials[idx], errs[idx] = copula.MultivariateLogPDF(cols, chol)
		}(w, lo, hi)
	}
	wg.Wait()

	var total float64
	for i := range partials {
		if errs[i] != nil {
			return 0, errs[i]
		}
		total += partials[i]
	}
	return total, nil
}

func clampWorkers(workers, n int) int {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}
	return workers
}

// Grid describes an evenly spaced correlation sweep.
type Grid struct {
	Min, Max float64
	Steps    int
}

// Values expands the grid into its correlation values. Steps < 2
// collapses to the single point Min.
func (g Grid) Values() []float64 {
	if g.Steps < 2 {
		return []float64{g.Min}
	}
	vals := make([]float64, g.Steps)
	step := (g.Max - g.Min) / float64(g.Steps-1)
	for i := range vals {
		vals[i] = g.Min + float64(i)*step
	}
	return vals
}

// Profile evaluates the sample log-likelihood across a correlation
// grid and returns the rho values with their log-likelihoods, for
// profile plots and crude maximum-likelihood scans.
func Profile(ctx context.Context, sample PairSample, grid Grid, workers int) ([]float64, []float64, error) {
	rhos := grid.Values()
	lls := make([]float64, len(rhos))
	for i, rho := range rhos {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		ll, err := Accumulate(ctx, sample, rho, workers)
		if err != nil {
			return nil, nil, err
		}
		lls[i] = ll
	}
	return rhos, lls, nil
}

// ArgMax returns the rho attaining the highest log-likelihood in a
// profile. NaN entries never win.
func ArgMax(rhos, lls []float64) (float64, float64) {
	best, bestLL := 0.0, math.Inf(-1)
	for i, ll := range lls {
		if ll > bestLL {
			best, bestLL = rhos[i], ll
		}
	}
	return best, bestLL
}
