package utils

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/gwpop/internal/compute"
)

// Linspace returns n evenly spaced values over [start, stop] inclusive.
func Linspace(start, stop float64, n int) []float64 {
	if n == 1 {
		return []float64{start}
	}
	return floats.Span(make([]float64, n), start, stop)
}

// Interp linearly interpolates fp at each query in x against the
// increasing sample points xp. Queries outside the range clamp to the
// first and last sample values, the usual convention for tabulated
// cosmology grids.
func Interp(x, xp, fp []float64) []float64 {
	out := make([]float64, len(x))
	for i, q := range x {
		out[i] = interpOne(q, xp, fp)
	}
	return out
}

func interpOne(q float64, xp, fp []float64) float64 {
	n := len(xp)
	if q <= xp[0] {
		return fp[0]
	}
	if q >= xp[n-1] {
		return fp[n-1]
	}
	hi := sort.SearchFloat64s(xp, q)
	if xp[hi] == q {
		return fp[hi]
	}
	lo := hi - 1
	t := (q - xp[lo]) / (xp[hi] - xp[lo])
	return fp[lo] + t*(fp[hi]-fp[lo])
}

// Powerlaw evaluates the normalized truncated power-law density
// x^alpha on [low, high], zero outside, on the active backend.
func Powerlaw(x compute.Array, alpha, low, high float64) compute.Array {
	xp := compute.Active()
	var norm float64
	if alpha == -1 {
		norm = 1 / math.Log(high/low)
	} else {
		norm = (1 + alpha) / (math.Pow(high, 1+alpha) - math.Pow(low, 1+alpha))
	}
	prob := xp.Scale(xp.Pow(x, alpha), norm)
	return xp.Mul(prob, xp.Window(x, low, high))
}

// TruncNorm evaluates the truncated Gaussian density with mean mu and
// width sigma on [low, high], zero outside.
func TruncNorm(x compute.Array, mu, sigma, low, high float64) compute.Array {
	xp := compute.Active()
	scs := compute.ActiveSpecial()
	norm := 2 / (scs.Erf((high-mu)/(math.Sqrt2*sigma)) - scs.Erf((low-mu)/(math.Sqrt2*sigma)))
	dev := xp.Shift(x, -mu)
	arg := xp.Scale(xp.Pow(dev, 2), -1/(2*sigma*sigma))
	prob := xp.Scale(xp.Exp(arg), norm/(math.Sqrt(2*math.Pi)*sigma))
	return xp.Mul(prob, xp.Window(x, low, high))
}

// BetaDist evaluates the Beta density with shape parameters alpha and
// beta stretched onto [0, scale], zero outside.
func BetaDist(x compute.Array, alpha, beta, scale float64) compute.Array {
	xp := compute.Active()
	scs := compute.ActiveSpecial()
	norm := math.Exp(-scs.Lbeta(alpha, beta) - (alpha+beta-1)*math.Log(scale))
	left := xp.Pow(x, alpha-1)
	right := xp.Pow(xp.Shift(xp.Scale(x, -1), scale), beta-1)
	prob := xp.Scale(xp.Mul(left, right), norm)
	return xp.Mul(prob, xp.Window(x, 0, scale))
}
