package content

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mribera/penjat3d/internal/model"
)

// HTTPProvider calls an external content-generation service over JSON HTTP.
// Failures surface with the upstream status and body in the error message so
// ClassifyError can recognize permission and quota conditions.
type HTTPProvider struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewHTTPProvider creates an HTTPProvider for the given endpoint
func NewHTTPProvider(baseURL, apiKey string) *HTTPProvider {
	return &HTTPProvider{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

var _ Provider = (*HTTPProvider)(nil)

type wordRequest struct {
	Exclude []string `json:"exclude,omitempty"`
}

type wordResponse struct {
	Word             string `json:"word"`
	Hint             string `json:"hint"`
	ImageDescription string `json:"image_description"`
}

type imageRequest struct {
	Word        string `json:"word"`
	Description string `json:"description"`
}

type imageResponse struct {
	Image string `json:"image"`
}

// GenerateWord requests a new word, hint and image description
func (p *HTTPProvider) GenerateWord(ctx context.Context, exclude []string) (*model.WordContent, error) {
	var resp wordResponse
	if err := p.post(ctx, "/word", wordRequest{Exclude: exclude}, &resp); err != nil {
		return nil, err
	}

	word, err := Normalize(resp.Word)
	if err != nil {
		return nil, fmt.Errorf("unusable word from provider: %w", err)
	}

	return &model.WordContent{
		Word:             word,
		Hint:             resp.Hint,
		ImageDescription: resp.ImageDescription,
	}, nil
}

// GenerateHiddenImage requests an illustration for the word
func (p *HTTPProvider) GenerateHiddenImage(ctx context.Context, word, description string) (string, error) {
	var resp imageResponse
	if err := p.post(ctx, "/image", imageRequest{Word: word, Description: description}, &resp); err != nil {
		return "", err
	}
	if resp.Image == "" {
		return "", model.ErrContentFailed
	}
	return resp.Image, nil
}

// post performs a JSON POST against the provider
func (p *HTTPProvider) post(ctx context.Context, path string, body, result any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return nil
}
