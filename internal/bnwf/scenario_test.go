package bnwf

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/alexiusacademia/gopile/internal/soil"
)

var _ = Describe("Laterally loaded pile in sand", func() {
	const (
		embedment = 20.0
		lateral   = 5000.0
	)
	var (
		solver *Direct
		opts   Options
		loads  Loads
	)

	BeforeEach(func() {
		solver = NewDirect()
		opts = scenarioOptions()
		loads = Loads{Lateral: lateral, Type: Static}
	})

	Context("with a free head", func() {
		It("should converge with a positive ground-line deflection under 2 inches", func() {
			r := solver.Solve(sandProfile(), testPile(), embedment, loads, opts)

			Expect(r.Converged).To(BeTrue())
			Expect(r.Iterations).To(BeNumerically("<=", 150))
			Expect(r.YGroundLateral).To(BeNumerically(">", 0))
			Expect(r.YGroundLateral).To(BeNumerically("<", 2))
			Expect(r.DepthMMax).To(BeNumerically(">", 0))
		})

		It("should report a symmetric, positive head stiffness and a buckling load", func() {
			r := solver.Solve(sandProfile(), testPile(), embedment, loads, opts)

			Expect(r.HeadStiffness).NotTo(BeNil())
			k := *r.HeadStiffness
			Expect(k[1][2]).To(BeNumerically("~", k[2][1], 1e-9*k[2][2]))
			Expect(k[0][0]).To(BeNumerically(">", 0))
			Expect(r.PCritical).NotTo(BeNil())
			Expect(*r.PCritical).To(BeNumerically(">", 0))
		})
	})

	Context("with a fixed head", func() {
		It("should deflect less than the free head", func() {
			free := solver.Solve(sandProfile(), testPile(), embedment, loads, opts)
			opts.Head = Fixed
			fixed := solver.Solve(sandProfile(), testPile(), embedment, loads, opts)

			Expect(fixed.Converged).To(BeTrue())
			Expect(fixed.YGroundLateral).To(BeNumerically("<", free.YGroundLateral))
			Expect(fixed.YGroundLateral).To(BeNumerically(">", 0))
		})
	})

	Context("with cyclic loading", func() {
		It("should not be stiffer than static loading", func() {
			static := solver.Solve(sandProfile(), testPile(), embedment, loads, opts)
			opts.Cyclic = true
			cyclic := solver.Solve(sandProfile(), testPile(), embedment, loads, opts)

			Expect(cyclic.Converged).To(BeTrue())
			Expect(cyclic.YGroundLateral).To(BeNumerically(">=", static.YGroundLateral))
		})
	})

	Context("with P-delta under axial compression", func() {
		It("should amplify the lateral deflection", func() {
			loads.Axial = 60000
			opts.Tol = 1e-7
			opts.PDelta = false
			linear := solver.Solve(sandProfile(), testPile(), embedment, loads, opts)
			opts.PDelta = true
			pdelta := solver.Solve(sandProfile(), testPile(), embedment, loads, opts)

			Expect(linear.Converged).To(BeTrue())
			Expect(pdelta.Converged).To(BeTrue())
			Expect(pdelta.YGroundLateral).To(BeNumerically(">", linear.YGroundLateral))
			Expect(pdelta.Notes).To(ContainElement("P-delta: enabled"))
		})
	})
})

var _ = Describe("Degenerate soil profiles", func() {
	It("should return a failed result without soil layers", func() {
		r := NewDirect().Solve(soil.NewProfile(nil, nil), testPile(), 20, Loads{Lateral: 5000}, scenarioOptions())

		Expect(r).NotTo(BeNil())
		Expect(r.Converged).To(BeFalse())
		Expect(r.State).To(Equal(Failed))
		Expect(r.Notes).NotTo(BeEmpty())
	})

	It("should treat depths below the last layer as unsupported", func() {
		shallow := soil.NewProfile([]soil.Layer{
			{TopDepth: 0, Thickness: 10, Type: soil.Sand, Phi: ptr(30), Gamma: ptr(115)},
		}, nil)
		r := NewDirect().Solve(shallow, testPile(), 20, Loads{Lateral: 1000}, scenarioOptions())

		Expect(r.Converged).To(BeTrue())
		Expect(r.SoilP[len(r.SoilP)-1]).To(BeZero())
		Expect(r.TipQ).To(BeZero())
	})
})
