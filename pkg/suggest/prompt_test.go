package suggest

import (
	"strings"
	"testing"
)

func TestRankingBuilderBlocks(t *testing.T) {
	candidates := []CandidateDate{
		{Date: "2025-05-11", Description: "Dia das Mães", Type: "holiday", Niches: []string{"moda", "varejo"}},
		{Date: "2025-06-12", Description: "Dia dos Namorados", Type: "commemorative", Niches: []string{"gastronomia"}},
	}

	out := NewRankingBuilder(candidates, []string{"moda"}).Build()

	for _, want := range []string{
		"<niches>\nmoda\n</niches>",
		"Data: 2025-05-11",
		"Descrição: Dia das Mães",
		"Tipo: holiday",
		"Nichos: moda, varejo",
		"Data: 2025-06-12",
		"<task>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("prompt missing %q:\n%s", want, out)
		}
	}

	// Blocks separated by a blank line.
	if !strings.Contains(out, "Nichos: moda, varejo\n\nData: 2025-06-12") {
		t.Errorf("blocks not separated by blank line:\n%s", out)
	}

	if strings.Contains(out, "format_reminder") {
		t.Errorf("non-strict prompt must not carry the reminder")
	}
}

func TestRankingBuilderStrict(t *testing.T) {
	candidates := []CandidateDate{
		{Date: "2025-05-11", Description: "Dia das Mães", Type: "holiday", Niches: []string{"moda"}},
	}

	out := NewRankingBuilder(candidates, []string{"moda"}).Strict().Build()
	if !strings.Contains(out, "<format_reminder>") {
		t.Errorf("strict prompt missing format reminder:\n%s", out)
	}
}

func TestRankingBuilderIsPure(t *testing.T) {
	candidates := []CandidateDate{
		{Date: "2025-05-11", Description: "Dia das Mães", Type: "holiday", Niches: []string{"moda"}},
	}
	b := NewRankingBuilder(candidates, []string{"moda"})
	if b.Build() != b.Build() {
		t.Error("Build must be deterministic")
	}
}
