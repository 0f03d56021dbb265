package nutrition

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "alimentos.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write catalog file: %v", err)
	}
	return path
}

func TestLoadBareArray(t *testing.T) {
	path := writeCatalogFile(t, `[
		{"id": 1, "description": "Pizza", "category": "Preparações", "energy_kcal": 289.0}
	]`)

	catalog, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if catalog.Len() != 1 {
		t.Fatalf("expected 1 record, got %d", catalog.Len())
	}
}

func TestLoadWrappedArray(t *testing.T) {
	path := writeCatalogFile(t, `{"alimentos": [
		{"id": 1, "description": "Pizza", "energy_kcal": 289.0},
		{"id": 2, "description": "Banana prata", "energy_kcal": 98}
	]}`)

	catalog, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if catalog.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", catalog.Len())
	}
}

func TestLoadMalformedDegradesToEmpty(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"not json", "not json at all"},
		{"wrong shape", `{"foods": 42}`},
		{"scalar", `17`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			catalog, err := Load(writeCatalogFile(t, tc.content))
			if err != nil {
				t.Fatalf("malformed payload must not fail the load: %v", err)
			}
			if catalog.Len() != 0 {
				t.Fatalf("expected empty catalog, got %d records", catalog.Len())
			}
			if _, ok := catalog.Match("pizza"); ok {
				t.Fatalf("empty catalog must never match")
			}
		})
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected error for missing catalog file")
	}
}

func TestKcalStringCoercion(t *testing.T) {
	path := writeCatalogFile(t, `[
		{"id": 1, "description": "Queijo minas", "energy_kcal": "264"},
		{"id": 2, "description": "Brigadeiro", "energy_kcal": "370.5"},
		{"id": 3, "description": "Misterioso", "energy_kcal": "n/a"}
	]`)

	catalog, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	info, ok := catalog.Match("queijo minas")
	if !ok || info.CaloriesPer100g != 264 {
		t.Fatalf("string kcal not coerced: %+v ok=%v", info, ok)
	}

	info, ok = catalog.Match("brigadeiro")
	if !ok || info.CaloriesPer100g != 371 {
		t.Fatalf("expected 370.5 rounded to 371, got %+v ok=%v", info, ok)
	}

	info, ok = catalog.Match("misterioso")
	if !ok || info.CaloriesPer100g != 0 {
		t.Fatalf("unparsable kcal must coerce to 0, got %+v ok=%v", info, ok)
	}
}

func TestMatchTierPriority(t *testing.T) {
	catalog := FromRecords([]Record{
		// Word overlap with "arroz branco": 2 tokens.
		{ID: 1, Description: "Bolinho de arroz com queijo branco", EnergyKcal: 200},
		// Substring containment.
		{ID: 2, Description: "Arroz branco cozido", EnergyKcal: 128},
		// Exact match.
		{ID: 3, Description: "Arroz branco", EnergyKcal: 130},
	})

	info, ok := catalog.Match("arroz branco")
	if !ok {
		t.Fatalf("expected a match")
	}
	if info.Description != "Arroz branco" {
		t.Fatalf("exact match must beat substring and overlap, got %q", info.Description)
	}
}

func TestMatchSubstringBeatsOverlap(t *testing.T) {
	catalog := FromRecords([]Record{
		{ID: 1, Description: "Torta de frango com milho e ervilha", EnergyKcal: 250},
		{ID: 2, Description: "Frango grelhado", EnergyKcal: 159},
	})

	info, ok := catalog.Match("frango grelhado temperado")
	if !ok {
		t.Fatalf("expected a match")
	}
	// "frango grelhado" is contained in the query (score 2); the torta only
	// overlaps on tokens (score 1).
	if info.Description != "Frango grelhado" {
		t.Fatalf("substring must beat word overlap, got %q", info.Description)
	}
}

func TestMatchTieKeepsCatalogOrder(t *testing.T) {
	catalog := FromRecords([]Record{
		{ID: 1, Description: "Suco de laranja", EnergyKcal: 41},
		{ID: 2, Description: "Bolo de laranja", EnergyKcal: 310},
	})

	// Both records overlap only on "laranja" (score 1 each).
	info, ok := catalog.Match("laranja doce")
	if !ok {
		t.Fatalf("expected a match")
	}
	if info.Description != "Suco de laranja" {
		t.Fatalf("tie must keep first record in catalog order, got %q", info.Description)
	}
}

func TestMatchEmptyQuery(t *testing.T) {
	catalog := FromRecords([]Record{
		{ID: 1, Description: "Pizza", EnergyKcal: 289},
	})

	if _, ok := catalog.Match("   "); ok {
		t.Fatalf("blank query must not match")
	}
	if _, ok := catalog.Match("!!!"); ok {
		t.Fatalf("punctuation-only query must not match")
	}
}

func TestMatchNoScoreReturnsFalse(t *testing.T) {
	catalog := FromRecords([]Record{
		{ID: 1, Description: "Pizza", EnergyKcal: 289},
	})

	if _, ok := catalog.Match("sushi"); ok {
		t.Fatalf("unrelated query must not match")
	}
}

func TestMatchDefaultPortion(t *testing.T) {
	catalog := FromRecords([]Record{
		{ID: 1, Description: "Pizza", EnergyKcal: 289.4},
	})

	info, ok := catalog.Match("pizza")
	if !ok {
		t.Fatalf("expected a match")
	}
	if info.DefaultPortionGrams != 100 {
		t.Fatalf("expected default portion 100g, got %d", info.DefaultPortionGrams)
	}
	if info.CaloriesPer100g != 289 {
		t.Fatalf("expected 289.4 rounded to 289, got %d", info.CaloriesPer100g)
	}
}
