package suggest

import "testing"

func TestReconcile(t *testing.T) {
	candidates := []CandidateDate{
		{Date: "2025-05-11", Description: "Dia das Mães", Type: "holiday", Niches: []string{"moda"}},
		{Date: "2025-06-12", Description: "Dia dos Namorados", Type: "comemorativa", Niches: []string{"gastronomia"}},
		{Date: "2025-08-15", Description: "Dia do Solteiro", Type: "estranho", Niches: []string{"moda"}},
	}
	labels := []string{"moda"}

	t.Run("canonical fields recovered from store", func(t *testing.T) {
		ranked := []RankedDate{
			{Date: "2025-05-11", Relevance: RelevanceHigh, Reason: "invented title by model"},
		}
		got, dropped := Reconcile(ranked, candidates, labels)
		if len(dropped) != 0 {
			t.Fatalf("unexpected drops: %v", dropped)
		}
		if len(got) != 1 {
			t.Fatalf("got %d items, want 1", len(got))
		}
		want := FormattedDate{
			Date:        "2025-05-11",
			Title:       "Dia das Mães",
			Category:    "holiday",
			Description: "Dia das Mães",
		}
		if got[0] != want {
			t.Errorf("got %+v, want %+v", got[0], want)
		}
	})

	t.Run("hallucinated date dropped, never fatal", func(t *testing.T) {
		ranked := []RankedDate{
			{Date: "2025-12-25", Relevance: RelevanceHigh, Reason: "not in store"},
			{Date: "2025-05-11", Relevance: RelevanceMedium, Reason: "real"},
		}
		got, dropped := Reconcile(ranked, candidates, labels)
		if len(got) != 1 || got[0].Date != "2025-05-11" {
			t.Errorf("got %+v, want only 2025-05-11", got)
		}
		if len(dropped) != 1 || dropped[0].Date != "2025-12-25" {
			t.Errorf("dropped %+v, want the hallucinated date", dropped)
		}
	})

	t.Run("niche drift dropped by double filtering", func(t *testing.T) {
		ranked := []RankedDate{
			{Date: "2025-06-12", Relevance: RelevanceHigh, Reason: "real date, wrong niche"},
		}
		got, dropped := Reconcile(ranked, candidates, labels)
		if len(got) != 0 {
			t.Errorf("got %+v, want empty", got)
		}
		if len(dropped) != 1 {
			t.Errorf("dropped %d, want 1", len(dropped))
		}
	})

	t.Run("duplicates collapsed to first occurrence", func(t *testing.T) {
		ranked := []RankedDate{
			{Date: "2025-05-11", Relevance: RelevanceHigh, Reason: "a"},
			{Date: "2025-05-11", Relevance: RelevanceLow, Reason: "b"},
		}
		got, _ := Reconcile(ranked, candidates, labels)
		if len(got) != 1 {
			t.Errorf("got %d items, want 1", len(got))
		}
	})

	t.Run("unrecognized type defaults to commemorative", func(t *testing.T) {
		ranked := []RankedDate{
			{Date: "2025-08-15", Relevance: RelevanceLow, Reason: "odd type"},
		}
		got, _ := Reconcile(ranked, candidates, labels)
		if len(got) != 1 || got[0].Category != CategoryCommemorative {
			t.Errorf("got %+v, want category %q", got, CategoryCommemorative)
		}
	})

	t.Run("output is a subset of candidate dates", func(t *testing.T) {
		ranked := []RankedDate{
			{Date: "2025-05-11", Relevance: RelevanceHigh, Reason: "x"},
			{Date: "2025-08-15", Relevance: RelevanceLow, Reason: "y"},
			{Date: "2030-01-01", Relevance: RelevanceHigh, Reason: "invented"},
		}
		got, _ := Reconcile(ranked, candidates, labels)
		inStore := make(map[string]bool)
		for _, c := range candidates {
			inStore[c.Date] = true
		}
		for _, f := range got {
			if !inStore[f.Date] {
				t.Errorf("output date %q not present in candidate store", f.Date)
			}
		}
		if len(got) > len(candidates) {
			t.Errorf("output larger than candidate set: %d > %d", len(got), len(candidates))
		}
	})
}
