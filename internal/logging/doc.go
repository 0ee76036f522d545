// Package logging wraps log/slog with prooflab's handler setup and attribute
// conventions.
//
// Loggers are constructed from config (console or JSON format, optional log
// file under the log directory) and carry standardized field keys for the
// component, gallery, operation, and correlation id so engine boundaries can
// be traced from structured output. ContextFields/WithContext derive those
// attributes from a request context stamped via the services package.
package logging
