package dynamo

import "fmt"

// DomainSizeError indicates a lookup table whose length does not match
// the length implied by its declared domain and step. It points at a bad
// coefficient table, not a runtime condition.
type DomainSizeError struct {
	Len  int
	Want int
}

func (e *DomainSizeError) Error() string {
	return fmt.Sprintf("dynamo: table length %d does not match domain (want %d)", e.Len, e.Want)
}

// DomainRangeError indicates an x outside the closed domain of a
// bounds-checked lookup: a driving ratio has left its calibrated range.
type DomainRangeError struct {
	X  float64
	Lo float64
	Hi float64
}

func (e *DomainRangeError) Error() string {
	return fmt.Sprintf("dynamo: x = %g outside table domain [%g, %g]", e.X, e.Lo, e.Hi)
}
