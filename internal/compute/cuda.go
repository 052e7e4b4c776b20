//go:build cuda

package compute

/*
#cgo CFLAGS: -I/opt/cuda/include
#cgo LDFLAGS: -L/opt/cuda/lib64 -L${SRCDIR} -lcudart -lkernels -lstdc++
#include <stdlib.h>

extern int cuda_device_count();
extern void vec_pow_gpu(float* x, float* out, int n, float p);
extern void vec_exp_gpu(float* x, float* out, int n);
extern void vec_add_gpu(float* a, float* b, float* out, int n);
extern void vec_mul_gpu(float* a, float* b, float* out, int n);
extern void vec_div_gpu(float* a, float* b, float* out, int n);
extern void vec_scale_gpu(float* x, float* out, int n, float s);
extern void vec_shift_gpu(float* x, float* out, int n, float s);
extern void vec_window_gpu(float* x, float* out, int n, float low, float high);
*/
import "C"
import "unsafe"

// CUDA runs elementwise operations on the GPU through the kernels
// shipped alongside the cgo bindings. Host-side arrays stay float32;
// integration falls through to the generic trapezoid shim.
type CUDA struct {
	available bool
	cpu       *CPU
}

func NewCUDA() (*CUDA, error) {
	return &CUDA{
		available: int(C.cuda_device_count()) > 0,
		cpu:       NewCPU(),
	}, nil
}

type cudaArray struct {
	data []float32
}

func (a cudaArray) Len() int { return len(a.data) }

func (a cudaArray) Float64s() []float64 {
	out := make([]float64, len(a.data))
	for i, v := range a.data {
		out[i] = float64(v)
	}
	return out
}

func (c *CUDA) Name() string    { return "cuda" }
func (c *CUDA) Available() bool { return c.available }
func (c *CUDA) Cleanup()        {}

func (c *CUDA) Asarray(data []float64) Array {
	f := make([]float32, len(data))
	for i, v := range data {
		f[i] = float32(v)
	}
	return cudaArray{data: f}
}

func (c *CUDA) values(x Array) []float32 {
	if a, ok := x.(cudaArray); ok {
		return a.data
	}
	in := x.Float64s()
	f := make([]float32, len(in))
	for i, v := range in {
		f[i] = float32(v)
	}
	return f
}

func ptr(f []float32) *C.float {
	if len(f) == 0 {
		return nil
	}
	return (*C.float)(unsafe.Pointer(&f[0]))
}

func (c *CUDA) Pow(x Array, p float64) Array {
	in := c.values(x)
	out := make([]float32, len(in))
	C.vec_pow_gpu(ptr(in), ptr(out), C.int(len(in)), C.float(p))
	return cudaArray{data: out}
}

func (c *CUDA) Exp(x Array) Array {
	in := c.values(x)
	out := make([]float32, len(in))
	C.vec_exp_gpu(ptr(in), ptr(out), C.int(len(in)))
	return cudaArray{data: out}
}

func (c *CUDA) Add(a, b Array) Array {
	av, bv := c.values(a), c.values(b)
	out := make([]float32, len(av))
	C.vec_add_gpu(ptr(av), ptr(bv), ptr(out), C.int(len(av)))
	return cudaArray{data: out}
}

func (c *CUDA) Mul(a, b Array) Array {
	av, bv := c.values(a), c.values(b)
	out := make([]float32, len(av))
	C.vec_mul_gpu(ptr(av), ptr(bv), ptr(out), C.int(len(av)))
	return cudaArray{data: out}
}

func (c *CUDA) Div(a, b Array) Array {
	av, bv := c.values(a), c.values(b)
	out := make([]float32, len(av))
	C.vec_div_gpu(ptr(av), ptr(bv), ptr(out), C.int(len(av)))
	return cudaArray{data: out}
}

func (c *CUDA) Scale(x Array, s float64) Array {
	in := c.values(x)
	out := make([]float32, len(in))
	C.vec_scale_gpu(ptr(in), ptr(out), C.int(len(in)), C.float(s))
	return cudaArray{data: out}
}

func (c *CUDA) Shift(x Array, s float64) Array {
	in := c.values(x)
	out := make([]float32, len(in))
	C.vec_shift_gpu(ptr(in), ptr(out), C.int(len(in)), C.float(s))
	return cudaArray{data: out}
}

func (c *CUDA) Window(x Array, low, high float64) Array {
	in := c.values(x)
	out := make([]float32, len(in))
	C.vec_window_gpu(ptr(in), ptr(out), C.int(len(in)), C.float(low), C.float(high))
	return cudaArray{data: out}
}
