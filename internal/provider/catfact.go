package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// CatFactProvider fetches random cat facts from catfact.ninja.
// The API is unauthenticated and returns {"fact": "...", "length": N}.
type CatFactProvider struct {
	url    string
	client *http.Client
	logger *zap.Logger
}

// NewCatFactProvider creates a provider for the given endpoint URL.
// The timeout bounds the whole outbound call — connect, headers, and body.
func NewCatFactProvider(url string, timeout time.Duration, logger *zap.Logger) *CatFactProvider {
	return &CatFactProvider{
		url: url,
		client: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

func (p *CatFactProvider) Name() string {
	return "catfact"
}

// catFactResponse mirrors the catfact.ninja response body. We only keep the
// field we extract — encoding/json silently ignores the rest.
type catFactResponse struct {
	Fact string `json:"fact"`
}

// RandomFact performs one GET against the endpoint and extracts the fact.
func (p *CatFactProvider) RandomFact(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", p.url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "profile-service/1.0")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching fact: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fact API returned %d", resp.StatusCode)
	}

	// Limit read to 1MB — a fact API should never send more, and
	// io.LimitReader is a cheap guard against a misbehaving upstream.
	var body catFactResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&body); err != nil {
		return "", fmt.Errorf("decoding fact: %w", err)
	}

	if body.Fact == "" {
		return "", fmt.Errorf("fact API returned an empty fact")
	}

	p.logger.Debug("fetched fact", zap.String("provider", p.Name()))
	return body.Fact, nil
}
