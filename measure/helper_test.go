package measure

import (
	"fmt"
	"strings"
	"testing"
)

// withHost swaps the process host for one test, clearing the locale and
// unit-name caches on the way in and out.
func withHost(t *testing.T, h Host) {
	t.Helper()

	old := CurrentHost()

	_ = SetHost(h)

	resetSeparatorCache()
	unitNameCache.Flush()

	t.Cleanup(func() {
		_ = SetHost(old)

		resetSeparatorCache()
		unitNameCache.Flush()
	})
}

// commaHost behaves like a comma-decimal locale: '.' numbers fail to parse,
// ',' numbers succeed.
type commaHost struct {
	Host
}

func newCommaHost(cfg DisplayConfigProvider) Host {
	return &commaHost{
		Host: NewBuiltinHost(cfg),
	}
}

func (h *commaHost) ParseLength(s string) (Length, error) {
	if strings.Contains(s, ".") {
		return nil, fmt.Errorf("%w: %q", ErrExternalParseFailure, s)
	}

	return h.Host.ParseLength(strings.ReplaceAll(s, ",", "."))
}

// bareAreaHost formats areas without any unit name, so the volume display
// probe finds nothing to scrape.
type bareAreaHost struct {
	Host
}

func newBareAreaHost(cfg DisplayConfigProvider) Host {
	return &bareAreaHost{
		Host: NewBuiltinHost(cfg),
	}
}

func (h *bareAreaHost) FormatArea(baseUnits float64) string {
	return FormatFloat(baseUnits, false, 2)
}
