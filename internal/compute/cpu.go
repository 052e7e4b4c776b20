package compute

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// CPU is the default engine: plain float64 slices with gonum for the
// vectorized pieces. Always available.
type CPU struct{}

func NewCPU() *CPU { return &CPU{} }

type cpuArray struct {
	data []float64
}

func (a cpuArray) Len() int { return len(a.data) }

func (a cpuArray) Float64s() []float64 {
	out := make([]float64, len(a.data))
	copy(out, a.data)
	return out
}

func (c *CPU) Name() string    { return "cpu" }
func (c *CPU) Available() bool { return true }
func (c *CPU) Cleanup()        {}

func (c *CPU) Asarray(data []float64) Array {
	d := make([]float64, len(data))
	copy(d, data)
	return cpuArray{data: d}
}

// values fast-paths arrays owned by this engine. Arrays constructed
// under a previously active backend go through the generic copy.
func (c *CPU) values(x Array) []float64 {
	if a, ok := x.(cpuArray); ok {
		return a.data
	}
	return x.Float64s()
}

func (c *CPU) Pow(x Array, p float64) Array {
	in := c.values(x)
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = math.Pow(v, p)
	}
	return cpuArray{data: out}
}

func (c *CPU) Exp(x Array) Array {
	in := c.values(x)
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = math.Exp(v)
	}
	return cpuArray{data: out}
}

func (c *CPU) Add(a, b Array) Array {
	out := make([]float64, a.Len())
	copy(out, c.values(a))
	floats.Add(out, c.values(b))
	return cpuArray{data: out}
}

func (c *CPU) Mul(a, b Array) Array {
	out := make([]float64, a.Len())
	copy(out, c.values(a))
	floats.Mul(out, c.values(b))
	return cpuArray{data: out}
}

func (c *CPU) Div(a, b Array) Array {
	out := make([]float64, a.Len())
	copy(out, c.values(a))
	floats.Div(out, c.values(b))
	return cpuArray{data: out}
}

func (c *CPU) Scale(x Array, s float64) Array {
	out := make([]float64, x.Len())
	floats.ScaleTo(out, s, c.values(x))
	return cpuArray{data: out}
}

func (c *CPU) Shift(x Array, s float64) Array {
	out := make([]float64, x.Len())
	copy(out, c.values(x))
	floats.AddConst(s, out)
	return cpuArray{data: out}
}

func (c *CPU) Window(x Array, low, high float64) Array {
	in := c.values(x)
	out := make([]float64, len(in))
	for i, v := range in {
		if v >= low && v <= high {
			out[i] = 1
		}
	}
	return cpuArray{data: out}
}

func (c *CPU) Trapz(y, x Array) float64 {
	return integrate.Trapezoidal(c.values(x), c.values(y))
}
