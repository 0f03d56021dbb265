package analysis

import (
	"testing"
)

func TestIsPhraseyName(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want bool
	}{
		{"single noun", "pizza", false},
		{"two-word dish", "arroz branco", false},
		{"four tokens ok", "bolo de chocolate caseiro", false},
		{"five tokens rejected", "comidinhas praticas de festa brasileira", true},
		{"connective para", "comida para festa", true},
		{"connective com as", "comer com as maos", true},
		{"connective tipo", "massa tipo caseira", true},
		{"connective em", "bolinho frito em casa", true},
		{"connective needs padding", "parana", false},
		{"empty", "", false},
		{"classic phrasey translation", "comidinhas para comer com as maos", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsPhraseyName(tc.in); got != tc.want {
				t.Fatalf("IsPhraseyName(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
