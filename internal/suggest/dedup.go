package suggest

import "prooflab/internal/config"

// OverlapPolicy decides whether a filename suggestion is already represented
// by one of the surviving date suggestions and should be dropped. Both
// behaviours stay available so either can be selected and tested.
type OverlapPolicy interface {
	Suppress(filename Suggestion, dates []Suggestion) bool
}

// NoSuppression keeps every filename suggestion.
type NoSuppression struct{}

func (NoSuppression) Suppress(Suggestion, []Suggestion) bool { return false }

// MemberOverlap suppresses a filename suggestion when at least Threshold of
// its members appear in a single date suggestion.
type MemberOverlap struct {
	Threshold float64
}

func (p MemberOverlap) Suppress(filename Suggestion, dates []Suggestion) bool {
	if filename.PhotoCount == 0 {
		return false
	}
	members := make(map[string]struct{}, len(filename.AssetIDs))
	for _, id := range filename.AssetIDs {
		members[id] = struct{}{}
	}
	for _, date := range dates {
		shared := 0
		for _, id := range date.AssetIDs {
			if _, ok := members[id]; ok {
				shared++
			}
		}
		if float64(shared) >= p.Threshold*float64(len(members)) {
			return true
		}
	}
	return false
}

// PolicyFromConfig selects the overlap policy the config asks for.
func PolicyFromConfig(cfg *config.Config) OverlapPolicy {
	if cfg == nil || !cfg.Suggestions.SuppressOverlappingFilenameGroups {
		return NoSuppression{}
	}
	return MemberOverlap{Threshold: cfg.Suggestions.FilenameOverlapThreshold}
}
