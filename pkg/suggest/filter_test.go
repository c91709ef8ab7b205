package suggest

import "testing"

func TestFilterByNiches(t *testing.T) {
	candidates := []CandidateDate{
		{Date: "2025-05-11", Description: "Dia das Mães", Type: "holiday", Niches: []string{"moda", "varejo"}},
		{Date: "2025-06-12", Description: "Dia dos Namorados", Type: "commemorative", Niches: []string{"gastronomia"}},
		{Date: "2025-10-04", Description: "Dia dos Animais", Type: "commemorative", Niches: []string{"petshop"}},
		{Date: "2025-01-01", Description: "Ano Novo", Type: "holiday", Niches: []string{""}},
	}

	tests := []struct {
		name      string
		labels    []string
		wantDates []string
	}{
		{
			name:      "exact tag match",
			labels:    []string{"moda"},
			wantDates: []string{"2025-05-11"},
		},
		{
			name:      "substring tolerates compound tags",
			labels:    []string{"pet"},
			wantDates: []string{"2025-10-04"},
		},
		{
			name:      "case insensitive",
			labels:    []string{"MODA"},
			wantDates: []string{"2025-05-11"},
		},
		{
			name:      "multiple labels union",
			labels:    []string{"moda", "gastronomia"},
			wantDates: []string{"2025-05-11", "2025-06-12"},
		},
		{
			name:      "no match",
			labels:    []string{"tecnologia"},
			wantDates: []string{},
		},
		{
			name:      "empty label never matches",
			labels:    []string{""},
			wantDates: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByNiches(candidates, tt.labels)
			if len(got) != len(tt.wantDates) {
				t.Fatalf("got %d candidates, want %d", len(got), len(tt.wantDates))
			}
			for i, c := range got {
				if c.Date != tt.wantDates[i] {
					t.Errorf("candidate[%d].Date = %q, want %q", i, c.Date, tt.wantDates[i])
				}
			}
		})
	}
}

// Inclusion property: whenever a translated niche is a case-insensitive
// substring of any tag, the filter must keep the record.
func TestFilterInclusionProperty(t *testing.T) {
	c := CandidateDate{Date: "2025-09-15", Description: "Dia do Cliente", Niches: []string{"Varejo", "e-commerce", "serviços"}}
	for _, label := range []string{"varejo", "commerce", "serviços", "e-com"} {
		if !MatchesNiche(c, []string{label}) {
			t.Errorf("MatchesNiche should include candidate for label %q", label)
		}
	}
}
