package world_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/world2/internal/chart"
	"github.com/san-kum/world2/internal/world"
)

// Column positions read off Figure 4-1 of World Dynamics, sampled every
// 20th tick. They pin the whole standard run: a single wrong
// coefficient anywhere in the model shifts at least one column.
var (
	expectedPColumns = []int{ // P on a 0..8e9 scale, 60 divisions
		12, 12, 12, 13, 13, 14, 15, 16, 17, 18,
		19, 20, 21, 22, 23, 25, 26, 27, 28, 30,
		31, 32, 34, 35, 36, 37, 38, 39, 39, 40,
		40, 40, 39, 39, 39, 38, 37, 37, 36, 35,
		34, 34, 33, 32, 32, 31, 30, 30, 29, 28,
		28,
	}
	expectedPOLRColumns = []int{ // POLR on a 0..40 scale, 60 divisions
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 1, 1, 1, 1, 1, 1, 1, 1, 2,
		2, 2, 2, 3, 3, 4, 4, 4, 5, 5,
		6, 6, 7, 7, 8, 8, 8, 9, 9, 8,
		8, 8, 8, 7, 7, 6, 6, 5, 5, 4,
		4,
	}
)

func runToCompletion(c world.Constants) []world.Vars {
	m := world.New(c)
	var history []world.Vars
	for !m.Done() {
		v, err := m.Advance()
		Expect(err).NotTo(HaveOccurred())
		history = append(history, v)
	}
	return history
}

var _ = Describe("standard run", func() {
	var history []world.Vars

	BeforeEach(func() {
		history = runToCompletion(world.DefaultConstants())
	})

	It("spans 1900 to just past 2100", func() {
		Expect(history).To(HaveLen(1002))
		Expect(history[0].Time).To(Equal(1900.0))
		Expect(history[len(history)-1].Time).To(BeNumerically(">", 2100))
		Expect(history[len(history)-2].Time).To(BeNumerically("<=", 2100))
	})

	It("reproduces the published population trace", func() {
		var cols []int
		for i := 0; i < len(history); i += 20 {
			cols = append(cols, chart.Column(history[i].P, 0, 8e9, 60))
		}
		Expect(cols).To(Equal(expectedPColumns))
	})

	It("reproduces the published pollution-ratio trace", func() {
		var cols []int
		for i := 0; i < len(history); i += 20 {
			cols = append(cols, chart.Column(history[i].POLR, 0, 40, 60))
		}
		Expect(cols).To(Equal(expectedPOLRColumns))
	})
})

var _ = Describe("reduced resource usage", func() {
	It("trades the resource decline for a pollution crisis", func() {
		peak := func(history []world.Vars) float64 {
			var max float64
			for _, v := range history {
				if v.POLR > max {
					max = v.POLR
				}
			}
			return max
		}

		standard := peak(runToCompletion(world.DefaultConstants()))
		c := world.DefaultConstants()
		c.NRUN1 = 0.25
		reduced := peak(runToCompletion(c))

		Expect(standard).To(BeNumerically("<", 8))
		Expect(reduced).To(BeNumerically(">", 15))
		Expect(reduced).To(BeNumerically("<", 60), "pollution ratio must stay inside its table domain")
	})
})
