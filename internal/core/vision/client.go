// Package vision is the HTTP client for the Google Cloud Vision REST API.
package vision

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"

	"nutrilens-api/internal/core/analysis"
	"nutrilens-api/internal/infrastructure/config"
	"nutrilens-api/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	baseURL    = "https://vision.googleapis.com/v1"
	maxResults = 25
)

// Client calls the images:annotate endpoint with API-key auth.
type Client struct {
	client *resty.Client
	apiKey string
}

// NewClient builds a Vision client from config.
func NewClient(cfg *config.Config) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Google.Timeout)

	return &Client{
		client: client,
		apiKey: cfg.Google.APIKey,
	}
}

type annotateRequest struct {
	Requests []annotateEntry `json:"requests"`
}

type annotateEntry struct {
	Image    imageContent `json:"image"`
	Features []feature    `json:"features"`
}

type imageContent struct {
	Content string `json:"content"`
}

type feature struct {
	Type       string `json:"type"`
	MaxResults int    `json:"maxResults"`
}

type annotateResponse struct {
	Responses []struct {
		LabelAnnotations           []analysis.Label  `json:"labelAnnotations"`
		LocalizedObjectAnnotations []analysis.Object `json:"localizedObjectAnnotations"`
		Error                      *struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	} `json:"responses"`
}

// Annotate submits one image for label detection and object localization.
// Absent annotation arrays are valid empty inputs, not errors.
func (c *Client) Annotate(ctx context.Context, image []byte) ([]analysis.Label, []analysis.Object, error) {
	common.LogInfo("Sending image to Google Cloud Vision",
		zap.Int("bytes", len(image)),
	)

	body := annotateRequest{
		Requests: []annotateEntry{
			{
				Image: imageContent{Content: base64.StdEncoding.EncodeToString(image)},
				Features: []feature{
					{Type: "LABEL_DETECTION", MaxResults: maxResults},
					{Type: "OBJECT_LOCALIZATION", MaxResults: maxResults},
				},
			},
		},
	}

	var result annotateResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetBody(body).
		SetResult(&result).
		Post("/images:annotate")

	if err != nil {
		return nil, nil, fmt.Errorf("failed to call Vision API: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, nil, fmt.Errorf("Vision API returned status %d: %s", resp.StatusCode(), resp.String())
	}

	if len(result.Responses) == 0 {
		return nil, nil, nil
	}

	annotation := result.Responses[0]
	if annotation.Error != nil {
		return nil, nil, fmt.Errorf("Vision API error %d: %s", annotation.Error.Code, annotation.Error.Message)
	}

	return annotation.LabelAnnotations, annotation.LocalizedObjectAnnotations, nil
}
