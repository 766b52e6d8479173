package measure

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/sgostarter/i/l"
)

// unitStringRe: optional sign, digits, optional fractional part with '.' or
// ',', optional unit token built from quote/m/c characters, optional
// trailing dimension digit.
var unitStringRe = regexp.MustCompile(`^([+-]?\d+(?:[.,]\d+)?)(["'mc]*)(\d?)$`)

var areaUnitCtors = map[string]func(float64) Area{
	`"`:  AreaFromInches2,
	`'`:  AreaFromFeet2,
	"m":  AreaFromMeters2,
	"cm": AreaFromCentimeters2,
	"mm": AreaFromMillimeters2,
}

var volumeUnitCtors = map[string]func(float64) Volume{
	`"`:  VolumeFromInches3,
	`'`:  VolumeFromFeet3,
	"m":  VolumeFromMeters3,
	"cm": VolumeFromCentimeters3,
	"mm": VolumeFromMillimeters3,
}

// ParseUnitString turns a free-form unit string into a Length, Area or
// Volume. A trailing 2 or 3 (also accepted as ² or ³) selects the
// dimension; without one the whole string goes to the host length parser
// with the locale's canonical decimal separator substituted in.
func ParseUnitString(s string) (Quantity, error) {
	normalized := normalizeUnitString(s)

	m := unitStringRe.FindStringSubmatch(normalized)
	if m == nil {
		getLogger().WithFields(l.StringField("input", s)).Debug("unit string rejected")

		return nil, fmt.Errorf("%w: %q", ErrUnparsableUnitString, s)
	}

	numText, token, dimText := m[1], m[2], m[3]

	dim := 0
	if dimText != "" {
		dim = int(dimText[0] - '0')
	}

	switch dim {
	case 0:
		return parseAsLength(s, normalized)
	case 2:
		v, err := parseCanonicalFloat(s, numText)
		if err != nil {
			return nil, err
		}

		ctor, ok := areaUnitCtors[token]
		if !ok {
			return nil, fmt.Errorf("%w: %q in %q", ErrUnknownUnitSymbol, token, s)
		}

		return ctor(v), nil
	case 3:
		v, err := parseCanonicalFloat(s, numText)
		if err != nil {
			return nil, err
		}

		ctor, ok := volumeUnitCtors[token]
		if !ok {
			return nil, fmt.Errorf("%w: %q in %q", ErrUnknownUnitSymbol, token, s)
		}

		return ctor(v), nil
	default:
		return nil, fmt.Errorf("%w: dimension %d in %q", ErrInvalidUnitFormat, dim, s)
	}
}

func parseAsLength(original, normalized string) (Quantity, error) {
	var from, to string

	if DecimalSeparator() == "," {
		from, to = ".", ","
	} else {
		from, to = ",", "."
	}

	lv, err := CurrentHost().ParseLength(strings.ReplaceAll(normalized, from, to))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrExternalParseFailure, original, err)
	}

	return lv, nil
}

// parseCanonicalFloat parses the numeric text of an explicit area/volume
// token with '.' as the only separator. Locale substitution does not apply
// on this path.
func parseCanonicalFloat(original, numText string) (float64, error) {
	v, err := strconv.ParseFloat(numText, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnparsableUnitString, original)
	}

	return v, nil
}

func normalizeUnitString(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, s)

	s = strings.ReplaceAll(s, "²", "2")
	s = strings.ReplaceAll(s, "³", "3")

	return s
}
