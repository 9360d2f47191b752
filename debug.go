package radial

import (
	"fmt"
	"os"
)

// SetDebugMode enables or disables debug mode. When enabled, capture, release,
// press, band switch, and cancel transitions are printed to stderr.
func (t *Tracker) SetDebugMode(enabled bool) {
	t.debug = enabled
}

// debugf prints one drag-lifecycle line to stderr.
func (t *Tracker) debugf(format string, args ...any) {
	if !t.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[radial] "+format+"\n", args...)
}
