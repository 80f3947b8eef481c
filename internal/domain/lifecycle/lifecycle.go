// Package lifecycle holds process-wide start/stop settings.
package lifecycle

import (
	"time"
)

// DefaultTimeout bounds every OnStart/OnStop hook.
const DefaultTimeout = 15 * time.Second
