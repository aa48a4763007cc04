package lifecycle

import "time"

// DefaultTimeout bounds every fx start/stop hook.
const DefaultTimeout = 10 * time.Second
