//go:build !cuda

package compute

// CUDA placeholder for builds without the cuda tag. It reports
// unavailable, which the registry maps to ErrBackendUnavailable, and
// falls back to the cpu engine if used directly.
type CUDA struct {
	cpu *CPU
}

func NewCUDA() (*CUDA, error) {
	return &CUDA{cpu: NewCPU()}, nil
}

func (c *CUDA) Name() string    { return "cuda (not available)" }
func (c *CUDA) Available() bool { return false }
func (c *CUDA) Cleanup()        {}

func (c *CUDA) Asarray(data []float64) Array { return c.cpu.Asarray(data) }

func (c *CUDA) Pow(x Array, p float64) Array { return c.cpu.Pow(x, p) }
func (c *CUDA) Exp(x Array) Array            { return c.cpu.Exp(x) }
func (c *CUDA) Add(a, b Array) Array         { return c.cpu.Add(a, b) }
func (c *CUDA) Mul(a, b Array) Array         { return c.cpu.Mul(a, b) }
func (c *CUDA) Div(a, b Array) Array         { return c.cpu.Div(a, b) }

func (c *CUDA) Scale(x Array, s float64) Array { return c.cpu.Scale(x, s) }
func (c *CUDA) Shift(x Array, s float64) Array { return c.cpu.Shift(x, s) }

func (c *CUDA) Window(x Array, low, high float64) Array {
	return c.cpu.Window(x, low, high)
}

func (c *CUDA) Trapz(y, x Array) float64 { return c.cpu.Trapz(y, x) }
