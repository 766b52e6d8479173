package measure

import (
	"fmt"
	"math"

	"github.com/spf13/cast"
)

// Area is an immutable two-dimensional quantity stored in squared base
// length units. Every operation returns a new value.
type Area struct {
	v float64
}

// NewArea wraps a raw squared-base-unit scalar. Anything cast can not turn
// into a float fails with ErrInvalidOperand.
func NewArea(value interface{}) (Area, error) {
	f, err := cast.ToFloat64E(value)
	if err != nil {
		return Area{}, fmt.Errorf("%w: %v", ErrInvalidOperand, value)
	}

	return Area{v: f}, nil
}

func AreaFromBaseUnits(v float64) Area {
	return Area{v: v}
}

func (a Area) BaseUnits() float64 {
	return a.v
}

func AreaFromMillimeters2(v float64) Area { return Area{v: v * unitRatio(UnitMillimeter, 2)} }
func AreaFromCentimeters2(v float64) Area { return Area{v: v * unitRatio(UnitCentimeter, 2)} }
func AreaFromMeters2(v float64) Area      { return Area{v: v * unitRatio(UnitMeter, 2)} }
func AreaFromKilometers2(v float64) Area  { return Area{v: v * unitRatio(UnitKilometer, 2)} }
func AreaFromInches2(v float64) Area      { return Area{v: v * unitRatio(UnitInch, 2)} }
func AreaFromFeet2(v float64) Area        { return Area{v: v * unitRatio(UnitFoot, 2)} }
func AreaFromYards2(v float64) Area       { return Area{v: v * unitRatio(UnitYard, 2)} }
func AreaFromMiles2(v float64) Area       { return Area{v: v * unitRatio(UnitMile, 2)} }

func (a Area) Millimeters2() float64 { return a.v / unitRatio(UnitMillimeter, 2) }
func (a Area) Centimeters2() float64 { return a.v / unitRatio(UnitCentimeter, 2) }
func (a Area) Meters2() float64      { return a.v / unitRatio(UnitMeter, 2) }
func (a Area) Kilometers2() float64  { return a.v / unitRatio(UnitKilometer, 2) }
func (a Area) Inches2() float64      { return a.v / unitRatio(UnitInch, 2) }
func (a Area) Feet2() float64        { return a.v / unitRatio(UnitFoot, 2) }
func (a Area) Yards2() float64       { return a.v / unitRatio(UnitYard, 2) }
func (a Area) Miles2() float64       { return a.v / unitRatio(UnitMile, 2) }

func (a Area) Add(o Area) Area {
	return Area{v: a.v + o.v}
}

func (a Area) Sub(o Area) Area {
	return Area{v: a.v - o.v}
}

func (a Area) MulScalar(k float64) Area {
	return Area{v: a.v * k}
}

// MulLength raises the dimension: area times length is a volume.
func (a Area) MulLength(lv Length) Volume {
	return Volume{v: a.v * lv.BaseUnits()}
}

func (a Area) DivScalar(k float64) (Area, error) {
	if k == 0 {
		return Area{}, fmt.Errorf("%w: area %v / 0", ErrDivisionByZero, a.v)
	}

	return Area{v: a.v / k}, nil
}

// DivLength reduces the dimension: the stored scalar is divided by the
// length's base value and reinterpreted as a length.
func (a Area) DivLength(lv Length) (Length, error) {
	b := lv.BaseUnits()
	if b == 0 {
		return nil, fmt.Errorf("%w: area %v / zero length", ErrDivisionByZero, a.v)
	}

	return CurrentHost().LengthFromBaseUnits(a.v / b), nil
}

// SquareRoot returns the length whose square equals this area.
func (a Area) SquareRoot() (Length, error) {
	if a.v < 0 {
		return nil, fmt.Errorf("%w: square root of negative area %v", ErrInvalidOperand, a.v)
	}

	return CurrentHost().LengthFromBaseUnits(math.Sqrt(a.v)), nil
}

func (a Area) Cmp(o Area) int {
	switch {
	case a.v < o.v:
		return -1
	case a.v > o.v:
		return 1
	}

	return 0
}

func (a Area) Less(o Area) bool {
	return a.v < o.v
}

func (a Area) Equal(o Area) bool {
	return a.v == o.v
}

// DisplayString delegates to the host's area formatter.
func (a Area) DisplayString() string {
	return CurrentHost().FormatArea(a.v)
}
