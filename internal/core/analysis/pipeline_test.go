package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"nutrilens-api/internal/core/nutrition"
)

// stubTranslator maps source names to fixed translations.
type stubTranslator struct {
	translations map[string]string
	err          error
	calls        atomic.Int32
}

func (s *stubTranslator) Translate(_ context.Context, text string) (string, error) {
	s.calls.Add(1)
	if s.err != nil {
		return "", s.err
	}
	if translated, ok := s.translations[text]; ok {
		return translated, nil
	}
	return strings.ToLower(text), nil
}

func testCatalog() *nutrition.Catalog {
	return nutrition.FromRecords([]nutrition.Record{
		{ID: 1, Description: "Pizza", EnergyKcal: 100},
		{ID: 2, Description: "Arroz branco cozido", EnergyKcal: 128.3},
		{ID: 3, Description: "Banana prata", EnergyKcal: 98},
	})
}

func TestAnalyzeHappyPath(t *testing.T) {
	translator := &stubTranslator{translations: map[string]string{"Pizza": "pizza"}}
	p := NewPipeline(translator, testCatalog())

	result := p.Analyze(context.Background(),
		[]Label{{Description: "food", Score: 0.9}},
		[]Object{{Name: "Pizza", Score: 0.85}},
	)

	if len(result.Items) != 1 {
		t.Fatalf("expected 1 item, got %d (%+v)", len(result.Items), result)
	}
	item := result.Items[0]
	if item.Name != "pizza" {
		t.Fatalf("expected translated name, got %q", item.Name)
	}
	if item.CaloriesPerPortion != 100 {
		t.Fatalf("expected 100 kcal, got %d", item.CaloriesPerPortion)
	}
	if item.PortionDescription != "100g (porção padrão)" {
		t.Fatalf("unexpected portion description: %q", item.PortionDescription)
	}
	if item.Confidence != 0.85 {
		t.Fatalf("expected confidence 0.85, got %v", item.Confidence)
	}
	if result.Message != MsgItemsFound {
		t.Fatalf("unexpected message: %q", result.Message)
	}
}

func TestAnalyzeGateRejects(t *testing.T) {
	translator := &stubTranslator{}
	p := NewPipeline(translator, testCatalog())

	result := p.Analyze(context.Background(),
		[]Label{{Description: "person", Score: 0.95}},
		nil,
	)

	if len(result.Items) != 0 {
		t.Fatalf("expected no items, got %+v", result.Items)
	}
	if result.Message != MsgNoFood {
		t.Fatalf("expected no-food message, got %q", result.Message)
	}
	// Gate short-circuits before any paid call.
	if translator.calls.Load() != 0 {
		t.Fatalf("expected no translation calls, got %d", translator.calls.Load())
	}
}

func TestAnalyzePhraseyTranslationUnmapped(t *testing.T) {
	translator := &stubTranslator{translations: map[string]string{
		"Comfort food": "comidinhas para comer com as maos",
	}}
	p := NewPipeline(translator, testCatalog())

	result := p.Analyze(context.Background(),
		[]Label{
			{Description: "food", Score: 0.9},
			{Description: "Comfort food", Score: 0.8},
		},
		nil,
	)

	if len(result.Items) != 0 {
		t.Fatalf("expected no items, got %+v", result.Items)
	}
	if result.Message != MsgNoCatalogMatch {
		t.Fatalf("expected unmapped message, got %q", result.Message)
	}
	if result.Message == MsgNoFood {
		t.Fatalf("unmapped message must differ from no-food message")
	}
}

func TestAnalyzeTranslationFailureFallsBack(t *testing.T) {
	translator := &stubTranslator{err: errors.New("quota exceeded")}
	p := NewPipeline(translator, testCatalog())

	// Untranslated "Pizza" still matches the catalog.
	result := p.Analyze(context.Background(),
		nil,
		[]Object{{Name: "Pizza", Score: 0.9}},
	)

	if len(result.Items) != 1 {
		t.Fatalf("expected fallback item, got %+v", result)
	}
	if result.Items[0].Name != "Pizza" {
		t.Fatalf("expected untranslated name kept, got %q", result.Items[0].Name)
	}
}

func TestAnalyzeCapsCandidates(t *testing.T) {
	translator := &stubTranslator{}
	p := NewPipeline(translator, testCatalog())

	objects := make([]Object, 0, 20)
	for i := 0; i < 20; i++ {
		objects = append(objects, Object{
			Name:  fmt.Sprintf("Unknown dish %d", i),
			Score: 0.61 + float64(i)*0.01,
		})
	}

	p.Analyze(context.Background(), nil, objects)

	if got := translator.calls.Load(); got != 12 {
		t.Fatalf("expected exactly 12 translation calls, got %d", got)
	}
}

func TestAnalyzeDedupesByFoodKey(t *testing.T) {
	translator := &stubTranslator{translations: map[string]string{
		"White rice": "arroz branco",
		"Rice":       "arroz",
	}}
	p := NewPipeline(translator, testCatalog())

	result := p.Analyze(context.Background(),
		[]Label{
			{Description: "food", Score: 0.9},
			{Description: "White rice", Score: 0.8},
			{Description: "Rice", Score: 0.7},
		},
		nil,
	)

	if len(result.Items) != 1 {
		t.Fatalf("expected duplicates collapsed to 1 item, got %+v", result.Items)
	}
	if result.Items[0].Confidence != 0.8 {
		t.Fatalf("expected highest-confidence instance kept, got %+v", result.Items[0])
	}
}
