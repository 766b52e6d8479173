package measure

import "math"

// unitRatio reports one unit of the symbol, raised to the dimension
// exponent, expressed in base units. Area constructors use exp 2, Volume
// constructors use exp 3.
func unitRatio(u UnitSymbol, exp int) float64 {
	return math.Pow(CurrentHost().UnitInBaseUnits(u), float64(exp))
}
