package commit

// ClaimedSet tracks asset identifiers already committed to a collection
// within one apply-all batch. Threading it through the batch as an explicit
// accumulator keeps the sequential-dependency invariant visible: each
// suggestion's availability depends on every prior one.
type ClaimedSet map[string]struct{}

// NewClaimedSet returns an empty accumulator.
func NewClaimedSet() ClaimedSet {
	return make(ClaimedSet)
}

// Available returns ids minus the already-claimed ones, preserving order and
// dropping duplicates within ids itself.
func (c ClaimedSet) Available(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, claimed := c[id]; claimed {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// Claim marks ids as assigned.
func (c ClaimedSet) Claim(ids []string) {
	for _, id := range ids {
		c[id] = struct{}{}
	}
}
