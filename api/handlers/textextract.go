package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

// TextExtractor turns a prescription image URL into raw text
type TextExtractor interface {
	ExtractText(ctx context.Context, imageURL string) (string, error)
}

// HTTPTextExtractor calls an external OCR service over HTTP
type HTTPTextExtractor struct {
	Endpoint string
	Client   *http.Client
}

// NewHTTPTextExtractor creates an extractor pointed at OCR_API_URL
func NewHTTPTextExtractor() *HTTPTextExtractor {
	return &HTTPTextExtractor{
		Endpoint: os.Getenv("OCR_API_URL"),
		Client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// ExtractText posts the image URL to the OCR service and returns the
// recognized text
func (e *HTTPTextExtractor) ExtractText(ctx context.Context, imageURL string) (string, error) {
	body, err := json.Marshal(map[string]string{"url": imageURL})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("ocr service returned status %d", resp.StatusCode)
	}

	var parsed struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	return parsed.Text, nil
}
