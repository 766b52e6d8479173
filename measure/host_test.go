package measure

import (
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/stretchr/testify/assert"
)

func TestSetHost(t *testing.T) {
	withHost(t, NewBuiltinHost(nil))

	assert.ErrorIs(t, SetHost(nil), commerr.ErrInvalidArgument)
	assert.NotNil(t, CurrentHost())

	h := newCommaHost(nil)
	assert.Nil(t, SetHost(h))
	assert.Equal(t, h, CurrentHost())
}

func TestBuiltinHostParseLength(t *testing.T) {
	h := NewBuiltinHost(nil)

	lv, err := h.ParseLength("2.5m")
	assert.Nil(t, err)
	assert.InDelta(t, 2.5, lv.BaseUnits(), 1e-9)

	lv, err = h.ParseLength("30cm")
	assert.Nil(t, err)
	assert.InDelta(t, 0.3, lv.BaseUnits(), 1e-9)

	lv, err = h.ParseLength(`6"`)
	assert.Nil(t, err)
	assert.InDelta(t, 6*0.0254, lv.BaseUnits(), 1e-9)

	_, err = h.ParseLength("1,0")
	assert.ErrorIs(t, err, ErrExternalParseFailure)
}
