package ai

import "sync/atomic"

// debugLoggingEnabled guards per-candidate logging in the decision loop.
var debugLoggingEnabled atomic.Bool

// EnableDebugLogging turns per-candidate AI logs on or off.
// Call it once at startup after the log level is known.
func EnableDebugLogging(enabled bool) {
	debugLoggingEnabled.Store(enabled)
}

// IsDebugEnabled reports whether per-candidate AI logs are on:
//
//	if ai.IsDebugEnabled() {
//	    slog.Debug("AI candidate goal", "goal", g.Describe())
//	}
func IsDebugEnabled() bool {
	return debugLoggingEnabled.Load()
}
