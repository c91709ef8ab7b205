package suggest

import "strings"

// MatchesNiche reports whether any of the candidate's tags contains one of
// the translated labels. Substring containment (not equality) is intentional:
// it tolerates plural and compound tag forms in the seed data ("pet" matches
// "petshop"), at the cost of occasional false positives.
func MatchesNiche(candidate CandidateDate, labels []string) bool {
	for _, tag := range candidate.Niches {
		tag = strings.ToLower(tag)
		if tag == "" {
			continue
		}
		for _, label := range labels {
			if label == "" {
				continue
			}
			if strings.Contains(tag, strings.ToLower(label)) {
				return true
			}
		}
	}
	return false
}

// FilterByNiches narrows the candidate list to those tagged with at least one
// of the translated labels, preserving input order.
func FilterByNiches(candidates []CandidateDate, labels []string) []CandidateDate {
	filtered := make([]CandidateDate, 0, len(candidates))
	for _, c := range candidates {
		if MatchesNiche(c, labels) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
