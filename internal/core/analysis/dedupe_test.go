package analysis

import (
	"reflect"
	"testing"
)

func TestDedupeKeepsHighestConfidence(t *testing.T) {
	items := []Item{
		{Name: "Arroz branco", Confidence: 0.6},
		{Name: "Arroz integral", Confidence: 0.9},
	}

	got := Dedupe(items)
	if len(got) != 1 {
		t.Fatalf("expected 1 item, got %d", len(got))
	}
	if got[0].Name != "Arroz integral" {
		t.Fatalf("expected higher-confidence item kept, got %+v", got[0])
	}
}

func TestDedupeTieKeepsFirst(t *testing.T) {
	items := []Item{
		{Name: "Arroz branco", Confidence: 0.8},
		{Name: "Arroz integral", Confidence: 0.8},
	}

	got := Dedupe(items)
	if len(got) != 1 || got[0].Name != "Arroz branco" {
		t.Fatalf("expected first item kept on tie, got %+v", got)
	}
}

func TestDedupePreservesFirstSeenOrder(t *testing.T) {
	items := []Item{
		{Name: "Feijão preto", Confidence: 0.5},
		{Name: "Pizza de mussarela", Confidence: 0.99},
		{Name: "Feijão carioca", Confidence: 0.95},
	}

	got := Dedupe(items)
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	// "feijao" was seen first, so it stays first even though the kept
	// instance has higher confidence than pizza.
	if got[0].Name != "Feijão carioca" || got[1].Name != "Pizza de mussarela" {
		t.Fatalf("unexpected order: %+v", got)
	}
}

func TestDedupeIdempotent(t *testing.T) {
	items := []Item{
		{Name: "Arroz branco", Confidence: 0.6},
		{Name: "Arroz integral", Confidence: 0.9},
		{Name: "Pizza", Confidence: 0.7},
	}

	once := Dedupe(items)
	twice := Dedupe(once)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("dedupe not idempotent: %+v vs %+v", once, twice)
	}
}

func TestDedupeEmpty(t *testing.T) {
	if got := Dedupe(nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}
