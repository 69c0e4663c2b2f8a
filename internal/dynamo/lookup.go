package dynamo

// Clip selects between two policy values on a time threshold: a while
// c >= d, b once the current time d has passed the switch time c. The
// model always calls it as Clip(before, after, switchTime, time).
func Clip(a, b, c, d float64) float64 {
	if c >= d {
		return a
	}
	return b
}

// Tabhl looks up x in tbl by piecewise-linear interpolation, clamping to
// the boundary entries outside the domain. The required table length is
// int((xEnd-xStart)/xStep + 1); the truncation matters and must not be
// replaced with rounding.
func Tabhl(tbl []float64, x, xStart, xEnd, xStep float64) (float64, error) {
	n := int((xEnd-xStart)/xStep + 1)
	if len(tbl) != n {
		return 0, &DomainSizeError{Len: len(tbl), Want: n}
	}

	if xStart < xEnd {
		if x < xStart {
			return tbl[0], nil
		}
		if x > xEnd {
			return tbl[n-1], nil
		}
	} else {
		if x < xEnd {
			return tbl[n-1], nil
		}
		if x > xStart {
			return tbl[0], nil
		}
	}

	i := int((x - xStart) / xStep)
	if i == n-1 {
		return tbl[i], nil
	}
	return tbl[i] + (x-xStart-xStep*float64(i))*(tbl[i+1]-tbl[i])/xStep, nil
}

// Table is Tabhl without the clamping: an x outside the closed domain is
// a DomainRangeError. The range check runs before the table length is
// examined.
func Table(tbl []float64, x, xStart, xEnd, xStep float64) (float64, error) {
	if xStart < xEnd {
		if x < xStart || x > xEnd {
			return 0, &DomainRangeError{X: x, Lo: xStart, Hi: xEnd}
		}
	} else {
		if x < xEnd || x > xStart {
			return 0, &DomainRangeError{X: x, Lo: xEnd, Hi: xStart}
		}
	}
	return Tabhl(tbl, x, xStart, xEnd, xStep)
}
