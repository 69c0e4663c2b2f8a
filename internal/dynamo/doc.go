// Package dynamo implements the DYNAMO-language primitives the world
// model equations are built from.
//
// Three pure functions cover every nonlinear term in the model:
//
//   - [Clip]: two-way switch keyed on simulated time
//   - [Tabhl]: clamped piecewise-linear table lookup
//   - [Table]: bounds-checked piecewise-linear table lookup
//
// A lookup table holds y values at evenly spaced x grid points from
// xStart to xEnd inclusive, spacing xStep. Ascending (xStart < xEnd) and
// descending (xStart > xEnd) domains are both supported. A table whose
// length does not match its declared domain fails with
// [DomainSizeError]; an x outside the domain of [Table] fails with
// [DomainRangeError]. [Tabhl] never fails on x: out-of-domain inputs
// take the boundary entry nearest the exceeded end.
//
// # Numerics
//
// The lookups do not guard against NaN or Inf. Such values propagate
// through the interpolation arithmetic as IEEE-754 dictates, matching
// the original model runs.
package dynamo
