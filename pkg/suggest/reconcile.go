package suggest

import "strings"

// Reconcile cross-references the model's ranking against the original
// candidate records. Title, description and category are always recovered
// from the store, never taken from the model's claim.
//
// Guarantees: every output item corresponds 1:1 to a real, niche-matching
// candidate; output dates are a subset of the candidate dates; duplicates are
// collapsed to the first occurrence. The second return value lists the ranked
// items that were discarded (hallucinated dates or niche drift) so the caller
// can log them; discarding is never fatal.
func Reconcile(ranked []RankedDate, candidates []CandidateDate, labels []string) ([]FormattedDate, []RankedDate) {
	byDate := make(map[string]CandidateDate, len(candidates))
	for _, c := range candidates {
		if _, ok := byDate[c.Date]; !ok {
			byDate[c.Date] = c
		}
	}

	formatted := make([]FormattedDate, 0, len(ranked))
	dropped := make([]RankedDate, 0)
	emitted := make(map[string]bool, len(ranked))

	for _, r := range ranked {
		candidate, ok := byDate[r.Date]
		if !ok {
			// Date the store never held: hallucination, discard.
			dropped = append(dropped, r)
			continue
		}

		// Defensive double-filtering: the model may drift from the niche
		// constraint even when the date itself is real.
		if !MatchesNiche(candidate, labels) {
			dropped = append(dropped, r)
			continue
		}

		if emitted[r.Date] {
			continue
		}
		emitted[r.Date] = true

		formatted = append(formatted, FormattedDate{
			Date:        candidate.Date,
			Title:       candidate.Description,
			Category:    normalizeCategory(candidate.Type),
			Description: candidate.Description,
		})
	}

	return formatted, dropped
}

func normalizeCategory(rawType string) string {
	switch strings.ToLower(strings.TrimSpace(rawType)) {
	case CategoryHoliday, "feriado":
		return CategoryHoliday
	case CategoryOptional, "opcional":
		return CategoryOptional
	case CategoryCommemorative, "comemorativa":
		return CategoryCommemorative
	default:
		return CategoryCommemorative
	}
}
