package yamlcfg

import (
	"os"
	"path"
	"sync"

	"github.com/sgostarter/libquantity/measure"
	"gopkg.in/yaml.v3"
)

// NewFileDisplayConfig loads the display configuration from fileName,
// falling back to def when the file does not exist or does not parse.
// SetDisplayConfig writes through to the file.
func NewFileDisplayConfig(fileName string, def measure.DisplayConfig) *FileDisplayConfig {
	p := &FileDisplayConfig{
		fileName: fileName,
		cfg:      def,
	}

	if cfg, err := p.load(); err == nil {
		p.cfg = cfg
	}

	return p
}

type FileDisplayConfig struct {
	lock     sync.RWMutex
	fileName string
	cfg      measure.DisplayConfig
}

func (p *FileDisplayConfig) GetDisplayConfig() (measure.DisplayConfig, error) {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return p.cfg, nil
}

func (p *FileDisplayConfig) SetDisplayConfig(cfg measure.DisplayConfig) (err error) {
	p.lock.Lock()
	defer p.lock.Unlock()

	_ = os.MkdirAll(path.Dir(p.fileName), 0700)

	d, err := yaml.Marshal(&cfg)
	if err != nil {
		return
	}

	err = os.WriteFile(p.fileName, d, 0600)
	if err != nil {
		return
	}

	p.cfg = cfg

	return
}

func (p *FileDisplayConfig) load() (cfg measure.DisplayConfig, err error) {
	d, err := os.ReadFile(p.fileName)
	if err != nil {
		return
	}

	err = yaml.Unmarshal(d, &cfg)

	return
}
