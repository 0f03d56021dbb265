package analysis

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"nutrilens-api/internal/core/nutrition"
	"nutrilens-api/internal/pkg/common"

	"go.uber.org/zap"
)

// maxCandidates caps how many ranked candidates get translated. Translation
// is a paid call, so the cap bounds cost per request.
const maxCandidates = 12

// Translator converts a source-language name to the display language.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// Pipeline turns raw annotator output into a deduplicated list of food
// items with calorie estimates.
type Pipeline struct {
	translator Translator
	catalog    *nutrition.Catalog
}

// NewPipeline wires the pipeline with its collaborators. The catalog must
// already be loaded; it is shared read-only across concurrent runs.
func NewPipeline(translator Translator, catalog *nutrition.Catalog) *Pipeline {
	return &Pipeline{
		translator: translator,
		catalog:    catalog,
	}
}

// Analyze runs the full pipeline: food gate, candidate ranking, concurrent
// per-candidate translation, phrase filtering, nutrition matching and
// deduplication. It never fails on data-quality issues; the result message
// distinguishes "no food detected" from "food detected but unmapped".
func (p *Pipeline) Analyze(ctx context.Context, labels []Label, objects []Object) Result {
	common.LogDebug("Annotator output",
		zap.String("labels", formatLabels(labels)),
		zap.String("objects", formatObjects(objects)),
	)

	// Gate first: if it does not look like food, skip all paid calls.
	if !IsFoodGatePositive(labels, objects) {
		return Result{Items: []Item{}, Message: MsgNoFood}
	}

	candidates := PickCandidates(labels, objects)
	if len(candidates) > maxCandidates {
		candidates = candidates[:maxCandidates]
	}

	// Candidates are independent: fan out one translation per candidate and
	// join before deduplication. A failure for one candidate must not abort
	// the others.
	resolved := make([]*Item, len(candidates))
	var wg sync.WaitGroup
	for i, candidate := range candidates {
		wg.Add(1)
		go func(i int, candidate Candidate) {
			defer wg.Done()
			resolved[i] = p.resolveCandidate(ctx, candidate)
		}(i, candidate)
	}
	wg.Wait()

	items := make([]Item, 0, len(resolved))
	for _, item := range resolved {
		if item != nil {
			items = append(items, *item)
		}
	}

	items = Dedupe(items)

	message := MsgItemsFound
	if len(items) == 0 {
		message = MsgNoCatalogMatch
	}

	return Result{Items: items, Message: message}
}

// resolveCandidate translates one candidate and resolves it against the
// nutrition catalog. Returns nil when the candidate is filtered out.
func (p *Pipeline) resolveCandidate(ctx context.Context, candidate Candidate) *Item {
	name, err := p.translator.Translate(ctx, candidate.Name)
	if err != nil || strings.TrimSpace(name) == "" {
		// Translation failure degrades to the untranslated name.
		common.LogWarn("Translation failed, keeping source name",
			zap.String("name", candidate.Name),
			zap.Error(err),
		)
		name = candidate.Name
	}

	if IsPhraseyName(name) {
		common.LogDebug("Dropping phrasey translation",
			zap.String("source", candidate.Name),
			zap.String("translated", name),
		)
		return nil
	}

	// Hard filter: only keep candidates present in the local catalog.
	info, ok := p.catalog.Match(name)
	if !ok {
		return nil
	}

	common.LogDebug("Candidate resolved",
		zap.String("source", candidate.Name),
		zap.String("name", name),
		zap.Int("kcal_per_100g", info.CaloriesPer100g),
		zap.Int("portion_grams", info.DefaultPortionGrams),
	)

	return &Item{
		Name:               name,
		CaloriesPerPortion: info.CaloriesPer100g,
		PortionDescription: fmt.Sprintf("%dg (porção padrão)", info.DefaultPortionGrams),
		Confidence:         candidate.Score,
	}
}

func formatLabels(labels []Label) string {
	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		parts = append(parts, fmt.Sprintf("%s (%.2f)", l.Description, l.Score))
	}
	return strings.Join(parts, ", ")
}

func formatObjects(objects []Object) string {
	parts := make([]string, 0, len(objects))
	for _, o := range objects {
		parts = append(parts, fmt.Sprintf("%s (%.2f)", o.Name, o.Score))
	}
	return strings.Join(parts, ", ")
}
