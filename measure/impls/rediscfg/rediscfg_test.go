// nolint
package rediscfg

import (
	"context"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libquantity/measure"
	"github.com/stretchr/testify/assert"
)

func TestRedisDisplayConfig(t *testing.T) {
	opts, err := redis.ParseURL("redis://:@127.0.0.1:6379")
	assert.Nil(t, err)

	redisCli := redis.NewClient(opts)

	if redisCli.Ping(context.Background()).Err() != nil {
		t.Skip("no local redis")
	}

	redisCli.FlushDB(context.Background())

	stg := NewRedisDisplayConfig("x", redisCli, nil)

	_, err = stg.GetDisplayConfig()
	assert.ErrorIs(t, err, commerr.ErrNotFound)

	want := measure.DisplayConfig{
		Format:    measure.FormatDecimal,
		Unit:      measure.UnitCentimeter,
		Precision: 4,
	}

	assert.Nil(t, stg.SetDisplayConfig(want))

	cfg, err := stg.GetDisplayConfig()
	assert.Nil(t, err)
	assert.EqualValues(t, want, cfg)
}
