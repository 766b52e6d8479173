package measure

import "sync"

// StaticDisplayConfig is an in-memory DisplayConfigProvider.
type StaticDisplayConfig struct {
	lock sync.RWMutex
	cfg  DisplayConfig
}

func NewStaticDisplayConfig(cfg DisplayConfig) *StaticDisplayConfig {
	return &StaticDisplayConfig{
		cfg: cfg,
	}
}

func (p *StaticDisplayConfig) GetDisplayConfig() (DisplayConfig, error) {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return p.cfg, nil
}

func (p *StaticDisplayConfig) SetDisplayConfig(cfg DisplayConfig) {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.cfg = cfg
}
