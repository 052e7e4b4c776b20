package compute

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// stdSpecial serves every CPU-resident engine. A cuda-native special
// function module would slot in here if the kernels ever grow one.
type stdSpecial struct{}

func (stdSpecial) Erf(x float64) float64 { return math.Erf(x) }

func (stdSpecial) Gammaln(x float64) float64 {
	v, _ := math.Lgamma(x)
	return v
}

func (stdSpecial) Lbeta(a, b float64) float64 { return mathext.Lbeta(a, b) }
