package chart

import (
	"fmt"

	"github.com/san-kum/world2/internal/world"
)

// Figure is a named reproduction of one of the World Dynamics plots:
// the constants that produced it, the series drawn on it, and the
// book's own caption for what the run shows.
type Figure struct {
	Name      string
	Title     string
	Caption   string
	Constants func() world.Constants
	Series    []Series
}

// Plot builds a fresh plot carrying the figure's series.
func (f Figure) Plot() *Plot { return New(f.Series...) }

// Registry maps figure names to their definitions, preserving the
// order they appear in the book.
type Registry struct {
	figures map[string]Figure
	order   []string
}

func (r *Registry) add(f Figure) {
	r.figures[f.Name] = f
	r.order = append(r.order, f.Name)
}

func (r *Registry) Get(name string) (Figure, error) {
	f, ok := r.figures[name]
	if !ok {
		return Figure{}, fmt.Errorf("unknown figure: %s", name)
	}
	return f, nil
}

func (r *Registry) List() []Figure {
	out := make([]Figure, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.figures[name])
	}
	return out
}

// NewRegistry returns the figures of chapter 4 of World Dynamics.
// Figures 4-1 through 4-4 are views of the standard run; 4-5 through
// 4-7 rerun it with the natural-resource-usage rate cut to a quarter
// after 1970.
func NewRegistry() *Registry {
	r := &Registry{figures: make(map[string]Figure)}

	standard := world.DefaultConstants
	reduced := func() world.Constants {
		c := world.DefaultConstants()
		c.NRUN1 = 0.25
		return c
	}

	r.add(Figure{
		Name:      "4-1",
		Title:     "World Dynamics, Figure 4-1",
		Caption:   "Basic behavior of the world model, showing the mode in which industrialization and population are suppressed by falling natural resources.",
		Constants: standard,
		Series: []Series{
			{Field: "P", Symbol: 'P', Lo: 0, Hi: 8e9},
			{Field: "POLR", Symbol: '2', Lo: 0, Hi: 40},
			{Field: "CI", Symbol: 'C', Lo: 0, Hi: 20e9},
			{Field: "QL", Symbol: 'Q', Lo: 0, Hi: 2},
			{Field: "NR", Symbol: 'N', Lo: 0, Hi: 1000e9},
		},
	})
	r.add(Figure{
		Name:      "4-2",
		Title:     "World Dynamics, Figure 4-2",
		Caption:   "Original model as in Figure 4-1. Material standard of living reaches a maximum and then declines as natural resources are depleted.",
		Constants: standard,
		Series: []Series{
			{Field: "FR", Symbol: 'F', Lo: 0, Hi: 2},
			{Field: "MSL", Symbol: 'M', Lo: 0, Hi: 2},
			{Field: "QLC", Symbol: '4', Lo: 0, Hi: 2},
			{Field: "QLP", Symbol: '5', Lo: 0, Hi: 2},
			{Field: "CIAF", Symbol: 'A', Lo: .2, Hi: .6},
		},
	})
	r.add(Figure{
		Name:      "4-3",
		Title:     "World Dynamics, Figure 4-3",
		Caption:   "Original model as in Figure 4-1. Natural-resource-usage rate reaches a peak about year 2010 and declines as natural resources, population, and capital investment decline.",
		Constants: standard,
		Series: []Series{
			{Field: "NR", Symbol: 'N', Lo: 0, Hi: 1e12},
			{Field: "NRUR", Symbol: 'U', Lo: 0, Hi: 8e9},
		},
	})
	r.add(Figure{
		Name:      "4-4",
		Title:     "World Dynamics, Figure 4-4",
		Caption:   "Original model as in Figure 4-1. The rate of capital-investment generation declines after 2010 but does not fall below the rate of capital-investment discard until 2040, at which time the level of capital investment begins to decline.",
		Constants: standard,
		Series: []Series{
			{Field: "CI", Symbol: 'C', Lo: 0, Hi: 20e9},
			{Field: "CIG", Symbol: 'G', Lo: 0, Hi: 400e6},
			{Field: "CID", Symbol: 'D', Lo: 0, Hi: 400e6},
		},
	})
	r.add(Figure{
		Name:      "4-5",
		Title:     "World Dynamics, Figure 4-5 (NRUN1 reduced to 0.25)",
		Caption:   "Reduced usage rate of natural resources leads to a pollution crisis.",
		Constants: reduced,
		Series: []Series{
			{Field: "P", Symbol: 'P', Lo: 0, Hi: 8e9},
			{Field: "POLR", Symbol: '2', Lo: 0, Hi: 40},
			{Field: "CI", Symbol: 'C', Lo: 0, Hi: 20e9},
			{Field: "QL", Symbol: 'Q', Lo: 0, Hi: 2},
			{Field: "NR", Symbol: 'N', Lo: 0, Hi: 1000e9},
		},
	})
	r.add(Figure{
		Name:      "4-6",
		Title:     "World Dynamics, Figure 4-6 (NRUN1 reduced to 0.25)",
		Caption:   "System ratios during the pollution mode of growth suppression.",
		Constants: reduced,
		Series: []Series{
			{Field: "FR", Symbol: 'F', Lo: 0, Hi: 2},
			{Field: "MSL", Symbol: 'M', Lo: 0, Hi: 2},
			{Field: "QLC", Symbol: '4', Lo: 0, Hi: 2},
			{Field: "QLP", Symbol: '5', Lo: 0, Hi: 2},
			{Field: "CIAF", Symbol: 'A', Lo: .2, Hi: .6},
		},
	})
	r.add(Figure{
		Name:      "4-7",
		Title:     "World Dynamics, Figure 4-7 (NRUN1 reduced to 0.25)",
		Caption:   "Dynamics of the pollution sector. A positive-feedback growth in pollution occurs when the pollution-absorption time increases faster than the pollution.",
		Constants: reduced,
		Series: []Series{
			{Field: "POLR", Symbol: '2', Lo: 0, Hi: 40},
			{Field: "POLAT", Symbol: 'T', Lo: 0, Hi: 16},
			{Field: "POLG", Symbol: 'G', Lo: 0, Hi: 20e9},
			{Field: "POLA", Symbol: 'A', Lo: 0, Hi: 20e9},
		},
	})

	return r
}
