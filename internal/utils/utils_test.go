package utils_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gwpop/internal/compute"
	"github.com/san-kum/gwpop/internal/utils"
)

func trapz(x, y []float64) float64 {
	total := 0.0
	for i := 1; i < len(x); i++ {
		total += (x[i] - x[i-1]) * (y[i] + y[i-1]) / 2
	}
	return total
}

var _ = BeforeEach(func() {
	Expect(compute.SetBackend("cpu")).To(Succeed())
})

var _ = Describe("Linspace", func() {
	It("spans the range inclusively", func() {
		got := utils.Linspace(0, 1, 5)
		Expect(got).To(Equal([]float64{0, 0.25, 0.5, 0.75, 1}))
	})

	It("handles a single point", func() {
		Expect(utils.Linspace(2, 9, 1)).To(Equal([]float64{2}))
	})
})

var _ = Describe("Interp", func() {
	xp := []float64{0, 1, 2}
	fp := []float64{0, 10, 40}

	It("is exact at the sample points", func() {
		Expect(utils.Interp([]float64{0, 1, 2}, xp, fp)).To(Equal([]float64{0, 10, 40}))
	})

	It("interpolates linearly between samples", func() {
		got := utils.Interp([]float64{0.5, 1.5}, xp, fp)
		Expect(got[0]).To(BeNumerically("~", 5, 1e-12))
		Expect(got[1]).To(BeNumerically("~", 25, 1e-12))
	})

	It("clamps outside the sample range", func() {
		got := utils.Interp([]float64{-1, 3}, xp, fp)
		Expect(got).To(Equal([]float64{0, 40}))
	})
})

var _ = Describe("Powerlaw", func() {
	It("integrates to one over its window", func() {
		for _, alpha := range []float64{0, 2.5, -2.3} {
			grid := utils.Linspace(1, 2, 5001)
			got := utils.Powerlaw(compute.Active().Asarray(grid), alpha, 1, 2)
			Expect(trapz(grid, got.Float64s())).To(BeNumerically("~", 1, 1e-4),
				"alpha %v", alpha)
		}
	})

	It("uses the log normalization at alpha = -1", func() {
		x := compute.Active().Asarray([]float64{2})
		got := utils.Powerlaw(x, -1, 1, math.E)
		Expect(got.Float64s()[0]).To(BeNumerically("~", 0.5, 1e-12))
	})

	It("is zero outside the window", func() {
		x := compute.Active().Asarray([]float64{0.5, 1.5, 2.5})
		got := utils.Powerlaw(x, 2, 1, 2).Float64s()
		Expect(got[0]).To(BeZero())
		Expect(got[1]).To(BeNumerically(">", 0))
		Expect(got[2]).To(BeZero())
	})
})

var _ = Describe("TruncNorm", func() {
	It("integrates to one over its window", func() {
		grid := utils.Linspace(0, 1, 5001)
		got := utils.TruncNorm(compute.Active().Asarray(grid), 0.5, 2, 0, 1)
		Expect(trapz(grid, got.Float64s())).To(BeNumerically("~", 1, 1e-4))
	})

	It("peaks at the mean", func() {
		x := compute.Active().Asarray([]float64{0.2, 0.5, 0.8})
		got := utils.TruncNorm(x, 0.5, 0.1, 0, 1).Float64s()
		Expect(got[1]).To(BeNumerically(">", got[0]))
		Expect(got[1]).To(BeNumerically(">", got[2]))
	})
})

var _ = Describe("BetaDist", func() {
	It("matches the analytic Beta(2, 3) density", func() {
		// p(x) = 12 x (1-x)^2
		x := compute.Active().Asarray([]float64{0.5})
		got := utils.BetaDist(x, 2, 3, 1)
		Expect(got.Float64s()[0]).To(BeNumerically("~", 1.5, 1e-12))
	})

	It("integrates to one over [0, scale]", func() {
		grid := utils.Linspace(0, 0.8, 5001)
		got := utils.BetaDist(compute.Active().Asarray(grid), 2, 3, 0.8)
		Expect(trapz(grid, got.Float64s())).To(BeNumerically("~", 1, 1e-4))
	})
})
