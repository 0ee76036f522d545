// Package services defines shared utilities consumed by the suggestion engine
// and the commit phase.
//
// Key responsibilities:
//   - Context helpers that stamp gallery identifiers, operation names, and
//     correlation identifiers for logging.
//   - Structured error markers plus the Wrap helper that translate failures
//     into the engine's error taxonomy (not-found, analysis, create, assign).
//
// Use these helpers when wiring new engine logic so operational behaviour
// (error handling, observability) stays uniform across operations.
package services
