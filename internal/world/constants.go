package world

// Constants is the calibrated parameter set for one run. Values are
// fixed at construction; a Model never mutates them. The yaml tags let
// scenario files override any subset of the calibration.
type Constants struct {
	BRN   float64 `yaml:"brn"`   // birth rate normal (fraction/year)
	BRN1  float64 `yaml:"brn1"`  // birth rate normal after SWT1 (fraction/year)
	CIAFI float64 `yaml:"ciafi"` // capital-investment-in-agriculture fraction, initial
	CIAFN float64 `yaml:"ciafn"` // capital-investment-in-agriculture fraction normal
	CIAFT float64 `yaml:"ciaft"` // capital-investment-in-agriculture-fraction adjustment time (years)
	CIDN  float64 `yaml:"cidn"`  // capital-investment discard normal (fraction/year)
	CIDN1 float64 `yaml:"cidn1"` // capital-investment discard normal after SWT5 (fraction/year)
	CIGN  float64 `yaml:"cign"`  // capital-investment generation normal (capital units/person/year)
	CIGN1 float64 `yaml:"cign1"` // capital-investment generation normal after SWT4 (capital units/person/year)
	CII   float64 `yaml:"cii"`   // capital investment, initial (capital units)
	DRN   float64 `yaml:"drn"`   // death rate normal (fraction/year)
	DRN1  float64 `yaml:"drn1"`  // death rate normal after SWT3 (fraction/year)
	ECIRN float64 `yaml:"ecirn"` // effective-capital-investment ratio normal (capital units/person)
	FC    float64 `yaml:"fc"`    // food coefficient
	FC1   float64 `yaml:"fc1"`   // food coefficient after SWT7
	FN    float64 `yaml:"fn"`    // food normal (food units/person/year)
	LA    float64 `yaml:"la"`    // land area (square kilometers)
	NRI   float64 `yaml:"nri"`   // natural resources, initial (natural resource units)
	NRUN  float64 `yaml:"nrun"`  // natural-resource usage normal (natural resource units/person/year)
	NRUN1 float64 `yaml:"nrun1"` // natural-resource usage normal after SWT2 (natural resource units/person/year)
	PDN   float64 `yaml:"pdn"`   // population density normal (people/square kilometer)
	PI    float64 `yaml:"pi"`    // population, initial (people)
	POLI  float64 `yaml:"poli"`  // pollution, initial (pollution units)
	POLN  float64 `yaml:"poln"`  // pollution normal (pollution units/person/year)
	POLN1 float64 `yaml:"poln1"` // pollution normal after SWT6 (pollution units/person/year)
	POLS  float64 `yaml:"pols"`  // pollution standard (pollution units)
	QLS   float64 `yaml:"qls"`   // quality-of-life standard (satisfaction units)
	SWT1  float64 `yaml:"swt1"`  // switch time for BRN (calendar year)
	SWT2  float64 `yaml:"swt2"`  // switch time for NRUN (calendar year)
	SWT3  float64 `yaml:"swt3"`  // switch time for DRN (calendar year)
	SWT4  float64 `yaml:"swt4"`  // switch time for CIGN (calendar year)
	SWT5  float64 `yaml:"swt5"`  // switch time for CIDN (calendar year)
	SWT6  float64 `yaml:"swt6"`  // switch time for POLN (calendar year)
	SWT7  float64 `yaml:"swt7"`  // switch time for FC (calendar year)

	Time    float64 `yaml:"time"`     // initial calendar time (years)
	DT      float64 `yaml:"dt"`       // integration step (years)
	EndTime float64 `yaml:"end_time"` // run terminates once time passes this year
}

// DefaultConstants returns the 1971 calibration: the standard run that
// produces Figure 4-1 of World Dynamics.
func DefaultConstants() Constants {
	return Constants{
		BRN:   .04,
		BRN1:  .04,
		CIAFI: .2,
		CIAFN: .3,
		CIAFT: 15,
		CIDN:  .025,
		CIDN1: .025,
		CIGN:  .05,
		CIGN1: .05,
		CII:   .4e9,
		DRN:   .028,
		DRN1:  .028,
		ECIRN: 1,
		FC:    1,
		FC1:   1,
		FN:    1,
		LA:    135e6,
		NRI:   900e9,
		NRUN:  1,
		NRUN1: 1,
		PDN:   26.5,
		PI:    1.65e9,
		POLI:  .2e9,
		POLN:  1,
		POLN1: 1,
		POLS:  3.6e9,
		QLS:   1,
		SWT1:  1970,
		SWT2:  1970,
		SWT3:  1970,
		SWT4:  1970,
		SWT5:  1970,
		SWT6:  1970,
		SWT7:  1970,

		Time:    1900,
		DT:      .2,
		EndTime: 2100,
	}
}
