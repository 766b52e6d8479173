package measure

import (
	"sync"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
)

var (
	hostLock  sync.RWMutex
	curHost   Host      = NewBuiltinHost(nil)
	curLogger l.Wrapper = l.NewNopLoggerWrapper()
)

// SetHost installs the host the whole package computes against. The locale
// separator cache is resolved once per process and not re-probed after a
// host change, so install the host before the first parse or format call.
func SetHost(h Host) error {
	if h == nil {
		return commerr.ErrInvalidArgument
	}

	hostLock.Lock()
	defer hostLock.Unlock()

	curHost = h

	return nil
}

func CurrentHost() Host {
	hostLock.RLock()
	defer hostLock.RUnlock()

	return curHost
}

func SetLogger(logger l.Wrapper) {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	hostLock.Lock()
	defer hostLock.Unlock()

	curLogger = logger.WithFields(l.StringField(l.ClsKey, "measure"))
}

func getLogger() l.Wrapper {
	hostLock.RLock()
	defer hostLock.RUnlock()

	return curLogger
}
