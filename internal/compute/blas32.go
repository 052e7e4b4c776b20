package compute

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/blas/blas32"
)

// BLAS32 stores arrays as float32 vectors and runs the level 1
// operations through gonum's blas32 wrappers.
//
// High precision mode switches element storage to float64, trading the
// blas kernels for exactness. It must be enabled before the first array
// is created: values already rounded to float32 cannot be widened back,
// so flipping the mode later would silently mix precisions. The
// registry always enables it before activating this backend.
type BLAS32 struct {
	highPrecision bool
	used          bool
}

func NewBLAS32() *BLAS32 { return &BLAS32{} }

// EnableHighPrecision switches to float64 element storage. Fails if any
// array was already created under this engine.
func (b *BLAS32) EnableHighPrecision() error {
	if b.used {
		return errors.New("high precision requested after arrays were created")
	}
	b.highPrecision = true
	return nil
}

type blas32Array struct {
	v blas32.Vector
}

func (a blas32Array) Len() int { return a.v.N }

func (a blas32Array) Float64s() []float64 {
	out := make([]float64, a.v.N)
	for i, v := range a.v.Data {
		out[i] = float64(v)
	}
	return out
}

func (a blas32Array) clone() blas32Array {
	data := make([]float32, a.v.N)
	copy(data, a.v.Data)
	return blas32Array{v: blas32.Vector{N: a.v.N, Inc: 1, Data: data}}
}

type blas64Array struct {
	data []float64
}

func (a blas64Array) Len() int { return len(a.data) }

func (a blas64Array) Float64s() []float64 {
	out := make([]float64, len(a.data))
	copy(out, a.data)
	return out
}

func (b *BLAS32) Name() string    { return "blas32" }
func (b *BLAS32) Available() bool { return true }
func (b *BLAS32) Cleanup()        {}

func (b *BLAS32) Asarray(data []float64) Array {
	return b.fromFloat64(data)
}

func (b *BLAS32) fromFloat64(data []float64) Array {
	b.used = true
	if b.highPrecision {
		d := make([]float64, len(data))
		copy(d, data)
		return blas64Array{data: d}
	}
	f := make([]float32, len(data))
	for i, v := range data {
		f[i] = float32(v)
	}
	return blas32Array{v: blas32.Vector{N: len(data), Inc: 1, Data: f}}
}

func (b *BLAS32) apply(x Array, f func(float64) float64) Array {
	in := x.Float64s()
	for i, v := range in {
		in[i] = f(v)
	}
	return b.fromFloat64(in)
}

func (b *BLAS32) zip(x, y Array, f func(a, b float64) float64) Array {
	xs := x.Float64s()
	ys := y.Float64s()
	for i := range xs {
		xs[i] = f(xs[i], ys[i])
	}
	return b.fromFloat64(xs)
}

func (b *BLAS32) Pow(x Array, p float64) Array {
	return b.apply(x, func(v float64) float64 { return math.Pow(v, p) })
}

func (b *BLAS32) Exp(x Array) Array {
	return b.apply(x, math.Exp)
}

func (b *BLAS32) Add(x, y Array) Array {
	return b.zip(x, y, func(a, c float64) float64 { return a + c })
}

func (b *BLAS32) Mul(x, y Array) Array {
	return b.zip(x, y, func(a, c float64) float64 { return a * c })
}

func (b *BLAS32) Div(x, y Array) Array {
	return b.zip(x, y, func(a, c float64) float64 { return a / c })
}

func (b *BLAS32) Scale(x Array, s float64) Array {
	if a, ok := x.(blas32Array); ok {
		out := a.clone()
		blas32.Scal(float32(s), out.v)
		return out
	}
	return b.apply(x, func(v float64) float64 { return v * s })
}

func (b *BLAS32) Shift(x Array, s float64) Array {
	if a, ok := x.(blas32Array); ok {
		ones := make([]float32, a.v.N)
		for i := range ones {
			ones[i] = 1
		}
		out := a.clone()
		blas32.Axpy(float32(s), blas32.Vector{N: a.v.N, Inc: 1, Data: ones}, out.v)
		return out
	}
	return b.apply(x, func(v float64) float64 { return v + s })
}

func (b *BLAS32) Window(x Array, low, high float64) Array {
	return b.apply(x, func(v float64) float64 {
		if v >= low && v <= high {
			return 1
		}
		return 0
	})
}
