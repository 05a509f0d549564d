// Package gemini implements the genai.Completer contract against the Google
// generateContent HTTP API.
package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/krishimitra/krishimitra/internal/genai"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// request types mirror the generateContent API structure. Parts are ordered:
// the model treats prompt text and an inlined image as one multimodal input.
type request struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"`
}

type response struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type Client struct {
	apiKey  string
	model   string
	client  *http.Client
	baseURL string
}

func New(apiKey, model string) *Client {
	return &Client{
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{},
		baseURL: defaultBaseURL,
	}
}

func (c *Client) Complete(ctx context.Context, prompt string, image *genai.Image) (string, error) {
	parts := []part{{Text: prompt}}
	if image != nil {
		parts = append(parts, part{InlineData: &inlineData{
			MIMEType: image.MIMEType,
			Data:     base64.StdEncoding.EncodeToString(image.Data),
		}})
	}

	payload, err := json.Marshal(request{Contents: []content{{Parts: parts}}})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call gemini: %v: %w", err, genai.ErrUpstream)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Error("failed to close gemini response body", "error", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		errBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("gemini returned status %d: %s: %w", resp.StatusCode, errBody, genai.ErrUpstream)
	}

	var respBody response
	if err := json.NewDecoder(resp.Body).Decode(&respBody); err != nil {
		return "", fmt.Errorf("failed to decode response: %v: %w", err, genai.ErrUpstream)
	}

	// The completion lives at candidates[0].content.parts[0].text. Its
	// absence is an upstream error, never a panic.
	if len(respBody.Candidates) == 0 || len(respBody.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini response has no candidate content: %w", genai.ErrUpstream)
	}
	return respBody.Candidates[0].Content.Parts[0].Text, nil
}
