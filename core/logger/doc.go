// Package logger provides a structured logging facility based on Zap.
//
// All output is written to stderr so the single startup line on stdout stays
// machine readable.
//
// # Context Awareness
//
// WithRayID extracts the RayID stored by the rayid middleware from a Fiber
// context and attaches it to the log entry, so every line emitted while serving
// one request can be correlated.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: json or console
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Server started")
package logger
