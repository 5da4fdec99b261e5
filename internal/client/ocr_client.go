package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"plate-check-service/internal/config"
)

const (
	ocrLanguage    = "eng"
	ocrEngine      = "2"
	ocrScale       = "true"
	jpegDataPrefix = "image/jpeg;base64,"

	maxResponseBytes = 1 << 20
)

type ParsedResult struct {
	ParsedText        string `json:"ParsedText"`
	FileParseExitCode int    `json:"FileParseExitCode"`
	ErrorMessage      string `json:"ErrorMessage"`
}

type OCRResult struct {
	ParsedResults         []ParsedResult  `json:"ParsedResults"`
	OCRExitCode           int             `json:"OCRExitCode"`
	IsErroredOnProcessing bool            `json:"IsErroredOnProcessing"`
	ErrorMessage          json.RawMessage `json:"ErrorMessage"`
}

// Text returns the first parsed text block or an empty string.
func (r *OCRResult) Text() string {
	if r == nil || len(r.ParsedResults) == 0 {
		return ""
	}
	return r.ParsedResults[0].ParsedText
}

// errorMessage flattens ErrorMessage, which the provider sends either as a
// string or as a list of strings.
func (r *OCRResult) errorMessage() string {
	if len(r.ErrorMessage) == 0 {
		return ""
	}
	var list []string
	if err := json.Unmarshal(r.ErrorMessage, &list); err == nil {
		return strings.Join(list, "; ")
	}
	var single string
	if err := json.Unmarshal(r.ErrorMessage, &single); err == nil {
		return single
	}
	return string(r.ErrorMessage)
}

type OCRSpaceClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewOCRSpaceClient(cfg *config.Config) *OCRSpaceClient {
	return &OCRSpaceClient{
		baseURL: cfg.OCR.URL,
		httpClient: &http.Client{
			Timeout: cfg.OCR.Timeout,
		},
	}
}

// ParseImage отправляет base64 изображение в OCR.space и возвращает разобранный ответ
func (c *OCRSpaceClient) ParseImage(ctx context.Context, apiKey, base64Image string) (*OCRResult, error) {
	form := url.Values{}
	form.Set("apikey", apiKey)
	form.Set("base64Image", jpegDataPrefix+base64Image)
	form.Set("language", ocrLanguage)
	form.Set("OCREngine", ocrEngine)
	form.Set("scale", ocrScale)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if len(body) > maxResponseBytes {
		return nil, fmt.Errorf("OCR response exceeds %d bytes", maxResponseBytes)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("OCR service returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var result OCRResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if result.IsErroredOnProcessing {
		msg := result.errorMessage()
		if msg == "" {
			msg = fmt.Sprintf("exit code %d", result.OCRExitCode)
		}
		return nil, fmt.Errorf("OCR processing failed: %s", msg)
	}

	return &result, nil
}
