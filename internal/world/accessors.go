package world

// fieldNames lists every snapshot field in Vars declaration order:
// levels, rates, auxiliaries, time.
var fieldNames = []string{
	"P", "NR", "CI", "POL", "CIAF",
	"BR", "DR", "NRUR", "CIG", "CID", "POLG", "POLA",
	"NRFR", "NREM", "CIR", "ECIR", "MSL", "BRMM", "DRMM", "CR",
	"DRCM", "BRCM", "FCM", "QLC", "CIM", "POLR", "FPM", "DRPM",
	"BRPM", "POLCM", "POLAT", "QLM", "QLP", "NRMM", "CIRA", "FPCI",
	"FR", "DRFM", "BRFM", "CFIFR", "QLF", "CIQR", "QL",
	"TIME",
}

var accessors = map[string]func(Vars) float64{
	"P":    func(v Vars) float64 { return v.P },
	"NR":   func(v Vars) float64 { return v.NR },
	"CI":   func(v Vars) float64 { return v.CI },
	"POL":  func(v Vars) float64 { return v.POL },
	"CIAF": func(v Vars) float64 { return v.CIAF },

	"BR":   func(v Vars) float64 { return v.BR },
	"DR":   func(v Vars) float64 { return v.DR },
	"NRUR": func(v Vars) float64 { return v.NRUR },
	"CIG":  func(v Vars) float64 { return v.CIG },
	"CID":  func(v Vars) float64 { return v.CID },
	"POLG": func(v Vars) float64 { return v.POLG },
	"POLA": func(v Vars) float64 { return v.POLA },

	"NRFR":  func(v Vars) float64 { return v.NRFR },
	"NREM":  func(v Vars) float64 { return v.NREM },
	"CIR":   func(v Vars) float64 { return v.CIR },
	"ECIR":  func(v Vars) float64 { return v.ECIR },
	"MSL":   func(v Vars) float64 { return v.MSL },
	"BRMM":  func(v Vars) float64 { return v.BRMM },
	"DRMM":  func(v Vars) float64 { return v.DRMM },
	"CR":    func(v Vars) float64 { return v.CR },
	"DRCM":  func(v Vars) float64 { return v.DRCM },
	"BRCM":  func(v Vars) float64 { return v.BRCM },
	"FCM":   func(v Vars) float64 { return v.FCM },
	"QLC":   func(v Vars) float64 { return v.QLC },
	"CIM":   func(v Vars) float64 { return v.CIM },
	"POLR":  func(v Vars) float64 { return v.POLR },
	"FPM":   func(v Vars) float64 { return v.FPM },
	"DRPM":  func(v Vars) float64 { return v.DRPM },
	"BRPM":  func(v Vars) float64 { return v.BRPM },
	"POLCM": func(v Vars) float64 { return v.POLCM },
	"POLAT": func(v Vars) float64 { return v.POLAT },
	"QLM":   func(v Vars) float64 { return v.QLM },
	"QLP":   func(v Vars) float64 { return v.QLP },
	"NRMM":  func(v Vars) float64 { return v.NRMM },
	"CIRA":  func(v Vars) float64 { return v.CIRA },
	"FPCI":  func(v Vars) float64 { return v.FPCI },
	"FR":    func(v Vars) float64 { return v.FR },
	"DRFM":  func(v Vars) float64 { return v.DRFM },
	"BRFM":  func(v Vars) float64 { return v.BRFM },
	"CFIFR": func(v Vars) float64 { return v.CFIFR },
	"QLF":   func(v Vars) float64 { return v.QLF },
	"CIQR":  func(v Vars) float64 { return v.CIQR },
	"QL":    func(v Vars) float64 { return v.QL },

	"TIME": func(v Vars) float64 { return v.Time },
}

// FieldNames returns the symbolic name of every snapshot field, in a
// stable order. The slice is a copy and may be kept.
func FieldNames() []string {
	return append([]string(nil), fieldNames...)
}

// Value looks up a snapshot field by symbolic name ("P", "POLR", "QL",
// ...). The second result is false for names the snapshot does not
// have.
func (v Vars) Value(name string) (float64, bool) {
	fn, ok := accessors[name]
	if !ok {
		return 0, false
	}
	return fn(v), true
}
