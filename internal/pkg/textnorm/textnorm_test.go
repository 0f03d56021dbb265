package textnorm

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"punctuation stripped", "Arroz Branco!!", "arroz branco"},
		{"whitespace collapsed", "arroz   branco", "arroz branco"},
		{"accents stripped", "Feijão à Brasileira", "feijao a brasileira"},
		{"mixed", "  Pão-de-Queijo  ", "pao de queijo"},
		{"cedilla", "Açaí", "acai"},
		{"empty", "", ""},
		{"only punctuation", "!!!", ""},
		{"digits and underscore kept", "item_2 x", "item_2 x"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeEquivalence(t *testing.T) {
	if Normalize("Arroz Branco!!") != Normalize("arroz   branco") {
		t.Fatalf("expected both spellings to normalize identically")
	}
}

func TestFoodKey(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"arroz branco", "arroz"},
		{"Arroz Integral Cozido", "arroz"},
		{"pizza", "pizza"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := FoodKey(tc.in); got != tc.want {
			t.Fatalf("FoodKey(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
