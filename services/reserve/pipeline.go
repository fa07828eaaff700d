package reserve

import (
	"context"
	"time"

	"elicense-watch/lib/scrapers/elicense"
)

// Collect reduces the pages of one run to the final ordered list of
// labels to report: pages are flattened in fetch order, parsed, filtered
// against the single now snapshot and deduplicated by label keeping the
// first occurrence. An empty result means nothing to report, it is not
// an error.
func Collect(ctx context.Context, pages [][]elicense.RawSlot, now time.Time) []string {
	var slots []Slot
	for _, page := range pages {
		slots = append(slots, ParseSlots(ctx, page)...)
	}

	seen := map[string]bool{}
	var labels []string
	for _, s := range slots {
		if !Eligible(s, now) {
			continue
		}
		if seen[s.Label] {
			continue
		}
		seen[s.Label] = true
		labels = append(labels, s.Label)
	}
	return labels
}
