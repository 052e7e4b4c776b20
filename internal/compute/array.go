package compute

import "gonum.org/v1/gonum/integrate"

// Array is an opaque handle to a one dimensional array owned by a
// specific backend.
type Array interface {
	Len() int
	// Float64s returns the contents as a plain float64 slice. The
	// returned slice is a copy.
	Float64s() []float64
}

// engine is the capability set every backend must implement. Trapz is
// deliberately absent: engines without a native integration primitive
// get one bolted on by the registry (see trapzShim).
type engine interface {
	Name() string
	Available() bool

	Asarray(data []float64) Array

	Pow(x Array, p float64) Array
	Exp(x Array) Array
	Add(a, b Array) Array
	Mul(a, b Array) Array
	Div(a, b Array) Array
	Scale(x Array, s float64) Array
	Shift(x Array, s float64) Array
	// Window returns 1 where low <= x <= high and 0 elsewhere.
	Window(x Array, low, high float64) Array

	Cleanup()
}

// Backend is the full interface consumers program against.
type Backend interface {
	engine
	// Trapz integrates y over x with the trapezoidal rule.
	Trapz(y, x Array) float64
}

// Special provides the special functions population models need.
type Special interface {
	Erf(x float64) float64
	Gammaln(x float64) float64
	Lbeta(a, b float64) float64
}

// trapzShim wraps an engine that lacks a native trapezoid primitive so
// downstream code always finds Trapz under the same name.
type trapzShim struct{ engine }

func (s trapzShim) Trapz(y, x Array) float64 {
	return integrate.Trapezoidal(x.Float64s(), y.Float64s())
}
