// Package world implements Forrester's World2 model from World
// Dynamics (1971): five coupled stocks covering population, capital
// investment, natural resources, pollution and the fraction of capital
// in agriculture, closed through some thirty nonlinear feedback
// multipliers.
//
// A [Model] advances in fixed steps of DT years. Each [Model.Advance]
// integrates the levels from the previous tick's rates, evaluates the
// auxiliaries in dependency order, then the seven rates for the coming
// interval, and returns the full [Vars] snapshot. The engine keeps only
// the previous snapshot; history belongs to the caller.
//
// The equation set, coefficient tables and calibration constants
// reproduce the published listing digit for digit. A deviation in any
// single coefficient changes the simulated trajectory, so the tables in
// this package are load-bearing data, not tunables.
//
// # Numerics
//
// Level integration is explicit Euler with the exact arithmetic order
// of the published model, including the repeated time addition and the
// one-interval lag on the agricultural-capital level. Runs with equal
// constants are bit-for-bit reproducible.
package world
