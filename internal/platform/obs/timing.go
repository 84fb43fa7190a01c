package obs

import (
	"log/slog"
	"time"
)

// Time records the duration of an operation. Use with defer:
//
//	defer obs.Time("users.FindUser")(&err)
//
// Failures log at warn with the error; successes at debug.
func Time(op string) func(errp *error) {
	start := time.Now()

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			slog.Warn("op failed", "op", op, "dur_ms", dur.Milliseconds(), "error", *errp)
			return
		}
		slog.Debug("op done", "op", op, "dur_ms", dur.Milliseconds())
	}
}
