// Package suggest implements the smart collection suggestion engine: three
// independent grouping strategies over asset metadata (capture date, filename
// prefix, camera) plus the ranker that filters, deduplicates, sorts, and caps
// the resulting suggestions.
//
// Each strategy is a single linear pass over the uncategorized asset list;
// buckets keep first-seen order so ranking ties are stable. Suggestions are
// transient values built fresh on every call and never persisted. All policy
// (minimum group sizes, suggestion cap, overlap suppression) arrives through
// Thresholds and OverlapPolicy so behaviour can be tuned without touching
// grouping logic.
package suggest
