// Package api converts engine and store results into transport-friendly DTO
// payloads and hosts the service facades the CLI talks to. Conversions are
// lossless where the caller needs the data back (asset ids in suggestions)
// and cosmetic elsewhere (RFC3339 timestamps, string enums).
package api
