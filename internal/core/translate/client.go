// Package translate is the HTTP client for the Google Translate v2 REST API,
// fronted by an optional Redis cache.
package translate

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"nutrilens-api/internal/infrastructure/config"
	"nutrilens-api/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const baseURL = "https://translation.googleapis.com/language/translate/v2"

// Service translates annotator names into the display language. Failures
// are returned to the caller, which falls back to the source name; a
// translation error never aborts a pipeline run.
type Service struct {
	client *resty.Client
	apiKey string
	target string
	cache  *Cache
}

// NewService builds the translation service. cache may be nil.
func NewService(cfg *config.Config, cache *Cache) *Service {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Google.Timeout)

	return &Service{
		client: client,
		apiKey: cfg.Google.APIKey,
		target: cfg.Google.TargetLanguage,
		cache:  cache,
	}
}

type translateResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText string `json:"translatedText"`
		} `json:"translations"`
	} `json:"data"`
}

// Translate converts text to the configured target language. Identical
// names recur across photos, so results are cached when Redis is available.
func (s *Service) Translate(ctx context.Context, text string) (string, error) {
	value := strings.TrimSpace(text)
	if value == "" {
		return value, nil
	}

	if cached, ok := s.cache.Get(ctx, s.target, value); ok {
		return cached, nil
	}

	start := time.Now()
	var result translateResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("key", s.apiKey).
		SetBody(map[string]string{
			"q":      value,
			"target": s.target,
			"format": "text",
		}).
		SetResult(&result).
		Post("")

	if err != nil {
		return "", fmt.Errorf("failed to call Translate API: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("Translate API returned status %d: %s", resp.StatusCode(), resp.String())
	}

	if len(result.Data.Translations) == 0 {
		return "", fmt.Errorf("no translations in Translate API response")
	}

	translated := result.Data.Translations[0].TranslatedText

	common.LogDebug("Translated name",
		zap.String("source", value),
		zap.String("translated", translated),
		zap.Duration("latency", time.Since(start)),
	)

	s.cache.Set(ctx, s.target, value, translated)

	return translated, nil
}
