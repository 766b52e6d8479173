package measure

import (
	"fmt"
	"math"
	"regexp"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/spf13/cast"
)

// Volume is an immutable three-dimensional quantity stored in cubed base
// length units.
type Volume struct {
	v float64
}

func NewVolume(value interface{}) (Volume, error) {
	f, err := cast.ToFloat64E(value)
	if err != nil {
		return Volume{}, fmt.Errorf("%w: %v", ErrInvalidOperand, value)
	}

	return Volume{v: f}, nil
}

func VolumeFromBaseUnits(v float64) Volume {
	return Volume{v: v}
}

func (vq Volume) BaseUnits() float64 {
	return vq.v
}

func VolumeFromMillimeters3(v float64) Volume { return Volume{v: v * unitRatio(UnitMillimeter, 3)} }
func VolumeFromCentimeters3(v float64) Volume { return Volume{v: v * unitRatio(UnitCentimeter, 3)} }
func VolumeFromMeters3(v float64) Volume      { return Volume{v: v * unitRatio(UnitMeter, 3)} }
func VolumeFromKilometers3(v float64) Volume  { return Volume{v: v * unitRatio(UnitKilometer, 3)} }
func VolumeFromInches3(v float64) Volume      { return Volume{v: v * unitRatio(UnitInch, 3)} }
func VolumeFromFeet3(v float64) Volume        { return Volume{v: v * unitRatio(UnitFoot, 3)} }
func VolumeFromYards3(v float64) Volume       { return Volume{v: v * unitRatio(UnitYard, 3)} }
func VolumeFromMiles3(v float64) Volume       { return Volume{v: v * unitRatio(UnitMile, 3)} }

func (vq Volume) Millimeters3() float64 { return vq.v / unitRatio(UnitMillimeter, 3) }
func (vq Volume) Centimeters3() float64 { return vq.v / unitRatio(UnitCentimeter, 3) }
func (vq Volume) Meters3() float64      { return vq.v / unitRatio(UnitMeter, 3) }
func (vq Volume) Kilometers3() float64  { return vq.v / unitRatio(UnitKilometer, 3) }
func (vq Volume) Inches3() float64      { return vq.v / unitRatio(UnitInch, 3) }
func (vq Volume) Feet3() float64        { return vq.v / unitRatio(UnitFoot, 3) }
func (vq Volume) Yards3() float64       { return vq.v / unitRatio(UnitYard, 3) }
func (vq Volume) Miles3() float64       { return vq.v / unitRatio(UnitMile, 3) }

func (vq Volume) Add(o Volume) Volume {
	return Volume{v: vq.v + o.v}
}

func (vq Volume) Sub(o Volume) Volume {
	return Volume{v: vq.v - o.v}
}

func (vq Volume) MulScalar(k float64) Volume {
	return Volume{v: vq.v * k}
}

func (vq Volume) DivScalar(k float64) (Volume, error) {
	if k == 0 {
		return Volume{}, fmt.Errorf("%w: volume %v / 0", ErrDivisionByZero, vq.v)
	}

	return Volume{v: vq.v / k}, nil
}

// DivLength reduces the dimension by one: volume over length is an area.
func (vq Volume) DivLength(lv Length) (Area, error) {
	b := lv.BaseUnits()
	if b == 0 {
		return Area{}, fmt.Errorf("%w: volume %v / zero length", ErrDivisionByZero, vq.v)
	}

	return Area{v: vq.v / b}, nil
}

// DivArea reduces the dimension by two: volume over area is a length.
func (vq Volume) DivArea(a Area) (Length, error) {
	if a.v == 0 {
		return nil, fmt.Errorf("%w: volume %v / zero area", ErrDivisionByZero, vq.v)
	}

	return CurrentHost().LengthFromBaseUnits(vq.v / a.v), nil
}

// CubeRoot returns the length whose cube equals this volume. math.Cbrt is
// sign-correct, so negative volumes yield negative lengths.
func (vq Volume) CubeRoot() Length {
	return CurrentHost().LengthFromBaseUnits(math.Cbrt(vq.v))
}

func (vq Volume) Cmp(o Volume) int {
	switch {
	case vq.v < o.v:
		return -1
	case vq.v > o.v:
		return 1
	}

	return 0
}

func (vq Volume) Less(o Volume) bool {
	return vq.v < o.v
}

func (vq Volume) Equal(o Volume) bool {
	return vq.v == o.v
}

// DisplayString renders the volume following the model's length display
// configuration: decimal picks the configured unit, architectural uses feet
// but drops to inches below one foot, engineering always feet, fractional
// always inches. The localized unit name comes from probing the host's area
// formatter with a zero value, since the host has no volume formatter of
// its own.
func (vq Volume) DisplayString() (string, error) {
	host := CurrentHost()

	cfg, err := host.GetDisplayConfig()
	if err != nil {
		return "", err
	}

	var value float64

	var postfix string

	switch cfg.Format {
	case FormatArchitectural:
		value = vq.Feet3()
		postfix = "Feet"

		if value < 1.0 {
			value = vq.Inches3()
			postfix = "Inches"
		}
	case FormatEngineering:
		value = vq.Feet3()
		postfix = "Feet"
	case FormatFractional:
		value = vq.Inches3()
		postfix = "Inches"
	default:
		switch cfg.Unit {
		case UnitInch:
			value = vq.Inches3()
			postfix = "Inches"
		case UnitFoot:
			value = vq.Feet3()
			postfix = "Feet"
		case UnitMillimeter:
			value = vq.Millimeters3()
			postfix = "Millimeters"
		case UnitCentimeter:
			value = vq.Centimeters3()
			postfix = "Centimeters"
		default:
			value = vq.Meters3()
			postfix = "Meters"
		}
	}

	if name, ok := probeAreaUnitName(host); ok {
		postfix = name
	}

	return FormatFloat(value, true, cfg.Precision) + " " + postfix + "³", nil
}

const areaUnitNameCacheKey = "areaUnitName"

var (
	unitNameCache  = cache.New(30*time.Second, time.Minute)
	areaUnitNameRe = regexp.MustCompile(`^[-+]?[\d.,\s]*([^\s\d.,²³]+)`)
)

// probeAreaUnitName scrapes the localized unit-name token out of the host's
// formatted zero area. The host translates unit names; this package must
// not carry its own translation table.
func probeAreaUnitName(host Host) (string, bool) {
	if x, ok := unitNameCache.Get(areaUnitNameCacheKey); ok {
		name, _ := x.(string)

		return name, name != ""
	}

	m := areaUnitNameRe.FindStringSubmatch(host.FormatArea(0))

	name := ""
	if m != nil {
		name = m[1]
	}

	unitNameCache.Set(areaUnitNameCacheKey, name, cache.DefaultExpiration)

	return name, name != ""
}
