// README: Hunyuan chat-completions client with TC3-signed requests.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"voyago/internal/config"
)

const (
	hunyuanAction  = "ChatCompletions"
	hunyuanVersion = "2023-09-01"
)

// HunyuanProvider implements LLMProvider against the Tencent Hunyuan API.
type HunyuanProvider struct {
	cfg     config.TencentConfig
	hc      *http.Client
	now     func() time.Time
	baseURL string
}

// NewHunyuanProvider creates a provider from the given credentials.
// It fails fast when the secret pair is absent so misconfiguration surfaces
// at startup instead of deep inside the enrichment pipeline.
func NewHunyuanProvider(cfg config.TencentConfig) (*HunyuanProvider, error) {
	if !cfg.Configured() {
		return nil, ErrMissingCredentials
	}
	return &HunyuanProvider{
		cfg:     cfg,
		hc:      &http.Client{Timeout: 60 * time.Second},
		now:     time.Now,
		baseURL: "https://" + cfg.Endpoint + "/",
	}, nil
}

type chatMessage struct {
	Role    string `json:"Role"`
	Content string `json:"Content"`
}

type chatRequest struct {
	Model    string        `json:"Model"`
	Messages []chatMessage `json:"Messages"`
}

type apiError struct {
	Code    string `json:"Code"`
	Message string `json:"Message"`
}

type chatEnvelope struct {
	Response struct {
		Error   *apiError `json:"Error,omitempty"`
		Choices []struct {
			Message struct {
				Content string `json:"Content"`
			} `json:"Message"`
		} `json:"Choices"`
	} `json:"Response"`
}

// Generate sends a signed ChatCompletions request and returns the first
// completion's text. An envelope Error becomes an ErrUpstream; an absent
// completion degrades to "{}" so downstream JSON parsing fails explicitly
// rather than the client inventing content.
func (p *HunyuanProvider) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model: p.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("hunyuan: marshal request: %w", err)
	}

	now := p.now()
	authorization, err := BuildAuthorization(
		p.cfg.SecretID, p.cfg.SecretKey, p.cfg.Endpoint, "hunyuan", payload, now)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("hunyuan: build request: %w", err)
	}
	req.Header.Set("Authorization", authorization)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Host", p.cfg.Endpoint)
	req.Header.Set("X-TC-Action", hunyuanAction)
	req.Header.Set("X-TC-Version", hunyuanVersion)
	req.Header.Set("X-TC-Region", p.cfg.Region)
	req.Header.Set("X-TC-Timestamp", strconv.FormatInt(now.Unix(), 10))

	resp, err := p.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("hunyuan: request failed: %w", err)
	}
	defer resp.Body.Close()

	var envelope chatEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return "", fmt.Errorf("hunyuan: decode envelope: %w", err)
	}

	if apiErr := envelope.Response.Error; apiErr != nil {
		return "", fmt.Errorf("%w: %s: %s", ErrUpstream, apiErr.Code, apiErr.Message)
	}

	if len(envelope.Response.Choices) == 0 {
		return "{}", nil
	}
	content := envelope.Response.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "{}", nil
	}
	return content, nil
}
