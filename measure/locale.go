package measure

import (
	"math"
	"sync"
)

var (
	sepOnce    = new(sync.Once)
	decimalSep string
	listSep    string
)

// DecimalSeparator reports the canonical decimal separator for the host's
// locale, '.' or ','. Detection is a best-effort probe: the literal "1.0"
// is pushed through the host length parser, and a parse failure is taken to
// mean a comma-decimal locale. Resolved once per process.
func DecimalSeparator() string {
	sepOnce.Do(resolveSeparators)

	return decimalSep
}

// ListSeparator is ';' when the decimal separator is ',', otherwise ','.
func ListSeparator() string {
	sepOnce.Do(resolveSeparators)

	return listSep
}

func resolveSeparators() {
	decimalSep, listSep = ".", ","

	lv, err := CurrentHost().ParseLength("1.0")
	if err != nil || lv == nil {
		decimalSep, listSep = ",", ";"

		getLogger().Debug("comma decimal locale detected")

		return
	}

	if math.IsNaN(lv.BaseUnits()) || math.IsInf(lv.BaseUnits(), 0) {
		decimalSep, listSep = ",", ";"
	}
}

// resetSeparatorCache forces the next access to re-probe. Test hook only.
func resetSeparatorCache() {
	sepOnce = new(sync.Once)
}
