package world

// Coefficient tables from the published model, one per DYNAMO T card,
// named after the auxiliary they drive. Immutable data: every value is
// calibration, not tuning.
var (
	brmmt  = []float64{1.2, 1, .85, .75, .7, .7}
	nremt  = []float64{0, .15, .5, .85, 1}
	drmmt  = []float64{3, 1.8, 1, .8, .7, .6, .53, .5, .5, .5, .5}
	drpmt  = []float64{.92, 1.3, 2, 3.2, 4.8, 6.8, 9.2}
	drfmt  = []float64{30, 3, 2, 1.4, 1, .7, .6, .5, .5}
	drcmt  = []float64{.9, 1, 1.2, 1.5, 1.9, 3}
	brcmt  = []float64{1.05, 1, .9, .7, .6, .55}
	brfmt  = []float64{0, 1, 1.6, 1.9, 2}
	brpmt  = []float64{1.02, .9, .7, .4, .25, .15, .1}
	fcmt   = []float64{2.4, 1, .6, .4, .3, .2}
	fpcit  = []float64{.5, 1, 1.4, 1.7, 1.9, 2.05, 2.2}
	cimt   = []float64{.1, 1, 1.8, 2.4, 2.8, 3}
	fpmt   = []float64{1.02, .9, .65, .35, .2, .1, .05}
	polcmt = []float64{.05, 1, 3, 5.4, 7.4, 8}
	polatt = []float64{.6, 2.5, 5, 8, 11.5, 15.5, 20}
	cfifrt = []float64{1, .6, .3, .15, .1}
	qlmt   = []float64{.2, 1, 1.7, 2.3, 2.7, 2.9}
	qlct   = []float64{2, 1.3, 1, .75, .55, .45, .38, .3, .25, .22, .2}
	qlft   = []float64{0, 1, 1.8, 2.4, 2.7}
	qlpt   = []float64{1.04, .85, .6, .3, .15, .05, .02}
	nrmmt  = []float64{0, 1, 1.8, 2.4, 2.9, 3.3, 3.6, 3.8, 3.9, 3.95, 4}
	ciqrt  = []float64{.7, .8, 1, 1.5, 2}
)
