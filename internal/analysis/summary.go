// Package analysis characterizes completed runs: where each quantity
// peaked, where it ended up, and the headline facts of the scenario.
package analysis

import (
	"fmt"

	"github.com/san-kum/world2/internal/world"
)

// DefaultFields are the quantities summarized when the caller does not
// ask for specific ones.
var DefaultFields = []string{"P", "POLR", "CI", "QL", "NR"}

// FieldStat describes one field over a whole run.
type FieldStat struct {
	Field   string
	Max     float64
	MaxYear float64
	Final   float64
}

// Summary condenses a run history into its extremes and end state.
type Summary struct {
	Start, End float64
	Ticks      int

	// ResourceFraction is the fraction of initial natural resources
	// still in the ground at the end of the run.
	ResourceFraction float64

	Fields []FieldStat
}

// Summarize scans a completed history. With no explicit fields it
// reports DefaultFields; an unknown field name is an error.
func Summarize(history []world.Vars, fields ...string) (*Summary, error) {
	if len(history) == 0 {
		return nil, fmt.Errorf("analysis: empty history")
	}
	if len(fields) == 0 {
		fields = DefaultFields
	}

	last := history[len(history)-1]
	s := &Summary{
		Start:            history[0].Time,
		End:              last.Time,
		Ticks:            len(history),
		ResourceFraction: last.NRFR,
		Fields:           make([]FieldStat, 0, len(fields)),
	}

	for _, field := range fields {
		first, ok := history[0].Value(field)
		if !ok {
			return nil, fmt.Errorf("analysis: unknown field %q", field)
		}
		stat := FieldStat{Field: field, Max: first, MaxYear: history[0].Time}
		for _, v := range history[1:] {
			val, _ := v.Value(field)
			if val > stat.Max {
				stat.Max = val
				stat.MaxYear = v.Time
			}
		}
		final, _ := last.Value(field)
		stat.Final = final
		s.Fields = append(s.Fields, stat)
	}

	return s, nil
}

// Stat returns the summary entry for a field, if it was tracked.
func (s *Summary) Stat(field string) (FieldStat, bool) {
	for _, f := range s.Fields {
		if f.Field == field {
			return f, true
		}
	}
	return FieldStat{}, false
}
