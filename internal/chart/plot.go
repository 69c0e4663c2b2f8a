package chart

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/san-kum/world2/internal/world"
)

// Layout of the printer plot: a 60-column chart with a dotted grid line
// every 15 columns, a dashed rule with a year label every 10th sample,
// and one sample row every 20 ticks (four years at the standard DT).
const (
	Width        = 60
	SampleEvery  = 20
	labelWidth   = 8
	dashInterval = 10
	dotInterval  = 15
)

// Column projects v onto an axis running lo..hi across the given number
// of divisions, rounded to the nearest column. Off-scale values land
// outside 0..divisions and are the caller's problem.
func Column(v, lo, hi float64, divisions int) int {
	return int(math.Round((v - lo) / (hi - lo) * float64(divisions)))
}

// Series is one curve on a plot: a snapshot field drawn with a single
// symbol against its own vertical scale.
type Series struct {
	Field  string
	Symbol byte
	Lo, Hi float64
}

// Plot renders run histories the way the DYNAMO print plotter did:
// years run down the page, each series is scaled independently onto the
// same 61 columns, and colliding symbols are pushed into an overflow
// note at the right margin.
type Plot struct {
	series []Series
}

func New(series ...Series) *Plot {
	return &Plot{series: series}
}

func (p *Plot) Add(s Series) { p.series = append(p.series, s) }

// Render draws the history, sampled every [SampleEvery] ticks. The
// output is the legend, one scale row per series, then the sample rows.
func (p *Plot) Render(history []world.Vars) (string, error) {
	for _, s := range p.series {
		if _, ok := (world.Vars{}).Value(s.Field); !ok {
			return "", fmt.Errorf("chart: unknown field %q", s.Field)
		}
	}

	var legend strings.Builder
	for i, s := range p.series {
		if i > 0 {
			legend.WriteByte(',')
		}
		fmt.Fprintf(&legend, "%s=%c", s.Field, s.Symbol)
	}

	scales := make([]string, 0, len(p.series))
	for _, s := range p.series {
		var row strings.Builder
		row.WriteString(strings.Repeat(" ", labelWidth-2))
		row.WriteByte(s.Symbol)
		row.WriteByte(' ')
		steps := Width / dotInterval
		step := (s.Hi - s.Lo) / float64(steps)
		label := s.Lo
		for i := 0; i < steps; i++ {
			fmt.Fprintf(&row, "%-*s", dotInterval, FormatNumber(label))
			label += step
		}
		row.WriteString(FormatNumber(s.Hi))
		scales = append(scales, row.String())
	}

	var rows []string
	for tick := 0; tick < len(history); tick += SampleEvery {
		v := history[tick]

		line := make([]byte, Width+1)
		for i := range line {
			line[i] = ' '
		}
		for i := 0; i < len(line); i += dotInterval {
			line[i] = '.'
		}
		label := strings.Repeat(" ", labelWidth)
		if len(rows)%dashInterval == 0 {
			for i := 0; i < len(line); i += 2 {
				line[i] = '-'
				if i < Width {
					line[i+1] = ' '
				}
			}
			label = fmt.Sprintf("%7.0f.", v.Time)
		}

		// Later series never displace an earlier symbol; they are
		// recorded against the occupant and printed past the margin.
		overlaps := make(map[byte][]byte)
		for _, s := range p.series {
			val, _ := v.Value(s.Field)
			y := Column(val, s.Lo, s.Hi, Width)
			if y < 0 || y > Width {
				continue
			}
			switch line[y] {
			case ' ', '-', '.':
				line[y] = s.Symbol
			default:
				overlaps[line[y]] = append(overlaps[line[y]], s.Symbol)
			}
		}

		row := label + string(line)
		if len(overlaps) > 0 {
			occupants := make([]byte, 0, len(overlaps))
			for b := range overlaps {
				occupants = append(occupants, b)
			}
			sort.Slice(occupants, func(i, j int) bool { return occupants[i] < occupants[j] })
			notes := make([]string, 0, len(occupants))
			for _, b := range occupants {
				notes = append(notes, string(b)+string(overlaps[b]))
			}
			row += " " + strings.Join(notes, ",")
		}
		rows = append(rows, row)
	}

	return legend.String() + "\n\n" + strings.Join(scales, "\n") + "\n" + strings.Join(rows, "\n"), nil
}
