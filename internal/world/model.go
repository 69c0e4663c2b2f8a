package world

import (
	"github.com/san-kum/world2/internal/dynamo"
)

// Vars is the complete set of model variables at one instant. Snapshots
// are plain values: once returned from [Model.Advance] they are never
// touched again and can be shared freely.
type Vars struct {
	// levels
	P    float64 // population (people)
	NR   float64 // natural resources (natural resource units)
	CI   float64 // capital investment (capital units)
	POL  float64 // pollution (pollution units)
	CIAF float64 // capital-investment-in-agriculture fraction

	// rates for the coming interval
	BR   float64 // birth rate (people/year)
	DR   float64 // death rate (people/year)
	NRUR float64 // natural-resource usage rate (natural resource units/year)
	CIG  float64 // capital-investment generation (capital units/year)
	CID  float64 // capital-investment discard (capital units/year)
	POLG float64 // pollution generation (pollution units/year)
	POLA float64 // pollution absorption (pollution units/year)

	// auxiliaries
	NRFR  float64 // natural-resource fraction remaining
	NREM  float64 // natural-resource-extraction multiplier
	CIR   float64 // capital-investment ratio (capital units/person)
	ECIR  float64 // effective-capital-investment ratio (capital units/person)
	MSL   float64 // material standard of living
	BRMM  float64 // birth-rate-from-material multiplier
	DRMM  float64 // death-rate-from-material multiplier
	CR    float64 // crowding ratio
	DRCM  float64 // death-rate-from-crowding multiplier
	BRCM  float64 // birth-rate-from-crowding multiplier
	FCM   float64 // food-from-crowding multiplier
	QLC   float64 // quality of life from crowding
	CIM   float64 // capital-investment multiplier
	POLR  float64 // pollution ratio
	FPM   float64 // food-from-pollution multiplier
	DRPM  float64 // death-rate-from-pollution multiplier
	BRPM  float64 // birth-rate-from-pollution multiplier
	POLCM float64 // pollution-from-capital multiplier
	POLAT float64 // pollution-absorption time (years)
	QLM   float64 // quality of life from material
	QLP   float64 // quality of life from pollution
	NRMM  float64 // natural-resource-from-material multiplier
	CIRA  float64 // capital-investment ratio in agriculture (capital units/person)
	FPCI  float64 // food potential from capital investment (food units/person/year)
	FR    float64 // food ratio
	DRFM  float64 // death-rate-from-food multiplier
	BRFM  float64 // birth-rate-from-food multiplier
	CFIFR float64 // capital fraction indicated by food ratio
	QLF   float64 // quality of life from food
	CIQR  float64 // capital-investment-from-quality ratio
	QL    float64 // quality of life

	Time float64 // calendar time (years)
}

// Model advances the world system one tick at a time. It holds the run
// constants and exactly one previous snapshot; it is not safe for
// concurrent use and is meant for a single owner driving it in a loop.
type Model struct {
	c       Constants
	prev    Vars
	started bool
}

// New returns a Model ready for its first Advance. No computation
// happens here.
func New(c Constants) *Model {
	return &Model{c: c}
}

// Constants returns the parameter set the model was built with.
func (m *Model) Constants() Constants { return m.c }

// Done reports whether the run is complete: a snapshot exists and its
// time has passed EndTime. The tick that first passes EndTime is still
// produced and returned before Done turns true.
func (m *Model) Done() bool {
	return m.started && m.prev.Time > m.c.EndTime
}

// Advance computes the next snapshot and installs it as the model's
// previous state. The first call sets the levels to their initial
// constants; later calls integrate them from the previous tick's rates.
// On a lookup failure the error is returned as-is and the previous
// snapshot is left untouched.
func (m *Model) Advance() (Vars, error) {
	c := &m.c
	var k Vars

	if m.started {
		j := &m.prev
		// Levels at time K from the previous tick's rates. CIAF relaxes
		// toward the previous tick's CFIFR*CIQR target: the one-interval
		// lag is part of the model, not an oversight.
		k.P = j.P + c.DT*(j.BR-j.DR)
		k.NR = j.NR + c.DT*-j.NRUR
		k.CI = j.CI + c.DT*(j.CIG-j.CID)
		k.POL = j.POL + c.DT*(j.POLG-j.POLA)
		k.CIAF = j.CIAF + (c.DT/c.CIAFT)*(j.CFIFR*j.CIQR-j.CIAF)

		k.Time = j.Time + c.DT
	} else {
		k.P = c.PI
		k.NR = c.NRI
		k.CI = c.CII
		k.POL = c.POLI
		k.CIAF = c.CIAFI

		k.Time = c.Time
	}

	// Auxiliaries in dependency order: each line reads only levels,
	// constants and auxiliaries above it.
	var lk lookup
	k.NRFR = k.NR / c.NRI
	k.NREM = lk.table(nremt, k.NRFR, 0, 1, .25)
	k.CIR = k.CI / k.P
	k.ECIR = k.CIR * (1 - k.CIAF) * k.NREM / (1 - c.CIAFN)
	k.MSL = k.ECIR / c.ECIRN
	k.BRMM = lk.tabhl(brmmt, k.MSL, 0, 5, 1)
	k.DRMM = lk.tabhl(drmmt, k.MSL, 0, 5, .5)
	k.CR = k.P / (c.LA * c.PDN)
	k.DRCM = lk.table(drcmt, k.CR, 0, 5, 1)
	k.BRCM = lk.table(brcmt, k.CR, 0, 5, 1)
	k.FCM = lk.table(fcmt, k.CR, 0, 5, 1)
	k.QLC = lk.table(qlct, k.CR, 0, 5, .5)
	k.CIM = lk.tabhl(cimt, k.MSL, 0, 5, 1)
	k.POLR = k.POL / c.POLS
	k.FPM = lk.table(fpmt, k.POLR, 0, 60, 10)
	k.DRPM = lk.table(drpmt, k.POLR, 0, 60, 10)
	k.BRPM = lk.table(brpmt, k.POLR, 0, 60, 10)
	k.POLCM = lk.tabhl(polcmt, k.CIR, 0, 5, 1)
	k.POLAT = lk.table(polatt, k.POLR, 0, 60, 10)
	k.QLM = lk.tabhl(qlmt, k.MSL, 0, 5, 1)
	k.QLP = lk.table(qlpt, k.POLR, 0, 60, 10)
	k.NRMM = lk.tabhl(nrmmt, k.MSL, 0, 10, 1)
	k.CIRA = k.CIR * k.CIAF / c.CIAFN
	k.FPCI = lk.tabhl(fpcit, k.CIRA, 0, 6, 1)
	k.FR = k.FPCI * k.FCM * k.FPM * dynamo.Clip(c.FC, c.FC1, c.SWT7, k.Time) / c.FN
	k.DRFM = lk.tabhl(drfmt, k.FR, 0, 2, .25)
	k.BRFM = lk.tabhl(brfmt, k.FR, 0, 4, 1)
	k.CFIFR = lk.tabhl(cfifrt, k.FR, 0, 2, .5)
	k.QLF = lk.tabhl(qlft, k.FR, 0, 4, 1)
	k.CIQR = lk.tabhl(ciqrt, k.QLM/k.QLF, 0, 2, .5)
	k.QL = c.QLS * k.QLM * k.QLC * k.QLF * k.QLP

	// Rates for the interval KL, each gated on its policy switch year.
	k.BR = k.P * dynamo.Clip(c.BRN, c.BRN1, c.SWT1, k.Time) * k.BRFM * k.BRMM * k.BRCM * k.BRPM
	k.NRUR = k.P * dynamo.Clip(c.NRUN, c.NRUN1, c.SWT2, k.Time) * k.NRMM
	k.DR = k.P * dynamo.Clip(c.DRN, c.DRN1, c.SWT3, k.Time) * k.DRMM * k.DRPM * k.DRFM * k.DRCM
	k.CIG = k.P * k.CIM * dynamo.Clip(c.CIGN, c.CIGN1, c.SWT4, k.Time)
	k.CID = k.CI * dynamo.Clip(c.CIDN, c.CIDN1, c.SWT5, k.Time)
	k.POLG = k.P * dynamo.Clip(c.POLN, c.POLN1, c.SWT6, k.Time) * k.POLCM
	k.POLA = k.POL / k.POLAT

	if lk.err != nil {
		return Vars{}, lk.err
	}

	m.prev = k
	m.started = true
	return k, nil
}

// lookup carries the first failed table lookup through the auxiliary
// pass so the equations above read as straight-line assignments.
type lookup struct {
	err error
}

func (l *lookup) table(tbl []float64, x, xStart, xEnd, xStep float64) float64 {
	if l.err != nil {
		return 0
	}
	y, err := dynamo.Table(tbl, x, xStart, xEnd, xStep)
	if err != nil {
		l.err = err
	}
	return y
}

func (l *lookup) tabhl(tbl []float64, x, xStart, xEnd, xStep float64) float64 {
	if l.err != nil {
		return 0
	}
	y, err := dynamo.Tabhl(tbl, x, xStart, xEnd, xStep)
	if err != nil {
		l.err = err
	}
	return y
}
