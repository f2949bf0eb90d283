package runner

import "time"

// shutdownTimeout bounds the final metrics flush. A var for tests to override.
var shutdownTimeout = 10 * time.Second
