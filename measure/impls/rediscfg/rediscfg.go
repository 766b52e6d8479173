package rediscfg

import (
	"context"

	"github.com/go-redis/redis/v8"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libquantity/measure"
	"github.com/spf13/cast"
)

type DisplayConfigStorage interface {
	measure.DisplayConfigProvider

	SetDisplayConfig(cfg measure.DisplayConfig) error
}

// NewRedisDisplayConfig shares one model's display configuration across
// processes through a redis hash.
func NewRedisDisplayConfig(preKey string, redisCli *redis.Client, logger l.Wrapper) DisplayConfigStorage {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "displayConfigStorage"))

	if redisCli == nil {
		logger.Fatal("no redis client")
	}

	return &displayConfigStorage{
		logger:   logger,
		preKey:   preKey,
		redisCli: redisCli,
	}
}

type displayConfigStorage struct {
	logger   l.Wrapper
	preKey   string
	redisCli *redis.Client
}

func (impl *displayConfigStorage) GetDisplayConfig() (cfg measure.DisplayConfig, err error) {
	vals, err := impl.redisCli.HGetAll(context.Background(), impl.configKey()).Result()
	if err != nil {
		return
	}

	if len(vals) == 0 {
		err = commerr.ErrNotFound

		return
	}

	cfg.Format = measure.LengthFormat(vals["format"])
	cfg.Unit = measure.UnitSymbol(vals["unit"])
	cfg.Precision = cast.ToInt(vals["precision"])

	return
}

func (impl *displayConfigStorage) SetDisplayConfig(cfg measure.DisplayConfig) error {
	return impl.redisCli.HSet(context.Background(), impl.configKey(),
		"format", string(cfg.Format), "unit", string(cfg.Unit), "precision", cfg.Precision).Err()
}

func (impl *displayConfigStorage) configKey() string {
	if impl.preKey == "" {
		return "displayConfig"
	}

	return impl.preKey + ":" + "displayConfig"
}
