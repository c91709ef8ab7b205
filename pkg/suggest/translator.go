package suggest

import "strings"

// nicheTranslations maps the UI niche codes to the vocabulary used in the
// stored date records (the seed data is tagged in Portuguese).
var nicheTranslations = map[string]string{
	"fashion":    "moda",
	"healthcare": "saúde",
	"food":       "alimentação",
	"gastronomy": "gastronomia",
	"beauty":     "beleza",
	"fitness":    "fitness",
	"education":  "educação",
	"technology": "tecnologia",
	"pets":       "pet",
	"decor":      "decoração",
	"tourism":    "turismo",
	"finance":    "finanças",
	"automotive": "automotivo",
	"kids":       "infantil",
	"sports":     "esporte",
	"ecommerce":  "e-commerce",
	"services":   "serviços",
	"retail":     "varejo",
}

// TranslateNiche maps a UI niche code to the stored label, lower-cased.
// Unknown codes fall back to the lower-cased code itself, so the function is
// total and never fails.
func TranslateNiche(code string) string {
	key := strings.ToLower(strings.TrimSpace(code))
	if label, ok := nicheTranslations[key]; ok {
		return label
	}
	return key
}

// TranslateNiches translates every code, preserving order and dropping
// duplicates after translation.
func TranslateNiches(codes []string) []string {
	seen := make(map[string]bool, len(codes))
	labels := make([]string, 0, len(codes))
	for _, code := range codes {
		label := TranslateNiche(code)
		if label == "" || seen[label] {
			continue
		}
		seen[label] = true
		labels = append(labels, label)
	}
	return labels
}
