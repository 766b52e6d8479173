package measure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFloatPeriodLocale(t *testing.T) {
	withHost(t, NewBuiltinHost(nil))

	assert.EqualValues(t, "1", FormatFloat(1.0, true, 3))
	assert.EqualValues(t, "1.50", FormatFloat(1.5, false, 2))
	assert.EqualValues(t, "1.5", FormatFloat(1.5, true, 2))
	assert.EqualValues(t, "1.25", FormatFloat(1.25, true, 3))
	assert.EqualValues(t, "2", FormatFloat(2, false, 0))
	assert.EqualValues(t, "-1.5", FormatFloat(-1.5, true, 2))
}

func TestFormatFloatRoundsHalfAwayFromZero(t *testing.T) {
	withHost(t, NewBuiltinHost(nil))

	assert.EqualValues(t, "0.13", FormatFloat(0.125, false, 2))
	assert.EqualValues(t, "-0.13", FormatFloat(-0.125, false, 2))
	assert.EqualValues(t, "3", FormatFloat(2.5, false, 0))
	assert.EqualValues(t, "-3", FormatFloat(-2.5, false, 0))
}

func TestFormatFloatNegativePrecision(t *testing.T) {
	withHost(t, NewBuiltinHost(nil))

	assert.EqualValues(t, "2", FormatFloat(1.6, false, -1))
}

func TestFormatFloatCommaLocale(t *testing.T) {
	withHost(t, newCommaHost(nil))

	assert.EqualValues(t, "1", FormatFloat(1.0, true, 3))
	assert.EqualValues(t, "1,50", FormatFloat(1.5, false, 2))
	assert.EqualValues(t, "1,5", FormatFloat(1.5, true, 2))
}

func TestFormatFloatCfg(t *testing.T) {
	cfg := NewStaticDisplayConfig(DisplayConfig{
		Format:    FormatDecimal,
		Unit:      UnitMeter,
		Precision: 3,
	})

	withHost(t, NewBuiltinHost(cfg))

	s, err := FormatFloatCfg(1.06, false)
	assert.Nil(t, err)
	assert.EqualValues(t, "1.060", s)
}
