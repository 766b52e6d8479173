package measure

import (
	"fmt"
	"regexp"
	"strconv"
)

// NewBuiltinHost returns a self-contained metric host: lengths are stored
// in meters, the length parser accepts "<number><unit>" with '.' as the
// decimal separator, and areas format as "<value> <UnitName>²". A nil cfg
// falls back to the default display configuration. It makes the package
// usable without a real host behind it.
func NewBuiltinHost(cfg DisplayConfigProvider) Host {
	if cfg == nil {
		cfg = NewStaticDisplayConfig(DefaultDisplayConfig())
	}

	return &builtinHost{
		cfg: cfg,
	}
}

type builtinHost struct {
	cfg DisplayConfigProvider
}

type builtinLength struct {
	v float64
}

func (lv builtinLength) BaseUnits() float64 {
	return lv.v
}

var builtinLengthRe = regexp.MustCompile(`^([+-]?\d+(?:\.\d+)?)(mm|cm|km|mi|in|ft|yd|m|"|')?$`)

func (impl *builtinHost) ParseLength(s string) (Length, error) {
	m := builtinLengthRe.FindStringSubmatch(s)
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrExternalParseFailure, s)
	}

	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrExternalParseFailure, s)
	}

	unit := UnitMeter

	switch m[2] {
	case "":
	case `"`:
		unit = UnitInch
	case `'`:
		unit = UnitFoot
	default:
		unit = UnitSymbol(m[2])
	}

	return builtinLength{v: v * impl.UnitInBaseUnits(unit)}, nil
}

func (impl *builtinHost) LengthFromBaseUnits(v float64) Length {
	return builtinLength{v: v}
}

func (impl *builtinHost) UnitInBaseUnits(u UnitSymbol) float64 {
	switch u {
	case UnitMillimeter:
		return 0.001
	case UnitCentimeter:
		return 0.01
	case UnitKilometer:
		return 1000
	case UnitInch:
		return 0.0254
	case UnitFoot:
		return 0.3048
	case UnitYard:
		return 0.9144
	case UnitMile:
		return 1609.344
	}

	return 1
}

func unitDisplayName(u UnitSymbol) string {
	switch u {
	case UnitMillimeter:
		return "Millimeters"
	case UnitCentimeter:
		return "Centimeters"
	case UnitKilometer:
		return "Kilometers"
	case UnitInch:
		return "Inches"
	case UnitFoot:
		return "Feet"
	case UnitYard:
		return "Yards"
	case UnitMile:
		return "Miles"
	}

	return "Meters"
}

func (impl *builtinHost) FormatArea(baseUnits float64) string {
	cfg, err := impl.GetDisplayConfig()
	if err != nil {
		cfg = DefaultDisplayConfig()
	}

	unit := cfg.Unit
	if unit == "" {
		unit = UnitMeter
	}

	ratio := impl.UnitInBaseUnits(unit)

	return FormatFloat(baseUnits/(ratio*ratio), false, cfg.Precision) + " " + unitDisplayName(unit) + "²"
}

func (impl *builtinHost) GetDisplayConfig() (DisplayConfig, error) {
	return impl.cfg.GetDisplayConfig()
}
