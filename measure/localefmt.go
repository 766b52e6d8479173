package measure

import (
	"math"
	"strconv"
	"strings"
)

// FormatFloat renders value with exactly precision fractional digits,
// rounding half away from zero, then substitutes the locale's decimal
// separator. With trim set, trailing fractional zeros disappear, and so
// does the separator once nothing follows it.
func FormatFloat(value float64, trim bool, precision int) string {
	if precision < 0 {
		precision = 0
	}

	scale := math.Pow(10, float64(precision))
	s := strconv.FormatFloat(math.Round(value*scale)/scale, 'f', precision, 64)

	if trim && precision > 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}

	if sep := DecimalSeparator(); sep != "." {
		s = strings.Replace(s, ".", sep, 1)
	}

	return s
}

// FormatFloatCfg is FormatFloat at the precision the model's display
// configuration asks for.
func FormatFloatCfg(value float64, trim bool) (string, error) {
	cfg, err := CurrentHost().GetDisplayConfig()
	if err != nil {
		return "", err
	}

	return FormatFloat(value, trim, cfg.Precision), nil
}
