package chart

import (
	"fmt"
	"math"
	"strings"
)

// FormatNumber renders an axis value in the compact style of the
// original plotter output: three decimals with trailing zeros stripped
// and a T/M/B magnitude suffix. The decimal point always stays, so
// whole numbers come out as "5." and "10.B". Values past a trillion
// fall back to %g.
func FormatNumber(v float64) string {
	if math.Abs(v) > 1e12 {
		return fmt.Sprintf("%g", v)
	}
	var magnitude string
	switch {
	case math.Abs(v) >= 1e9:
		v /= 1e9
		magnitude = "B"
	case math.Abs(v) >= 1e6:
		v /= 1e6
		magnitude = "M"
	case math.Abs(v) >= 1e3:
		v /= 1e3
		magnitude = "T"
	}
	return strings.TrimRight(fmt.Sprintf("%.3f", v), "0") + magnitude
}
