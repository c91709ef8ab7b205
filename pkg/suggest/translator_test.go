package suggest

import (
	"reflect"
	"testing"
)

func TestTranslateNiche(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{name: "mapped code", code: "fashion", want: "moda"},
		{name: "mapped code uppercase", code: "Healthcare", want: "saúde"},
		{name: "unmapped code falls back lowercased", code: "Barbearia", want: "barbearia"},
		{name: "whitespace trimmed", code: "  pets ", want: "pet"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TranslateNiche(tt.code); got != tt.want {
				t.Errorf("TranslateNiche(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestTranslateNiches(t *testing.T) {
	got := TranslateNiches([]string{"fashion", "Fashion", "pets", ""})
	want := []string{"moda", "pet"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TranslateNiches = %v, want %v", got, want)
	}
}
