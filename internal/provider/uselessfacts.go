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

// UselessFactsProvider fetches random facts from uselessfacts.jsph.pl.
// Same contract as CatFactProvider, different response schema: the fact
// lives under "text" here.
type UselessFactsProvider struct {
	url    string
	client *http.Client
	logger *zap.Logger
}

// NewUselessFactsProvider creates a provider for the given endpoint URL.
func NewUselessFactsProvider(url string, timeout time.Duration, logger *zap.Logger) *UselessFactsProvider {
	return &UselessFactsProvider{
		url: url,
		client: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

func (p *UselessFactsProvider) Name() string {
	return "uselessfacts"
}

type uselessFactResponse struct {
	Text string `json:"text"`
}

// RandomFact performs one GET against the endpoint and extracts the fact.
func (p *UselessFactsProvider) RandomFact(ctx context.Context) (string, error) {
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

	var body uselessFactResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&body); err != nil {
		return "", fmt.Errorf("decoding fact: %w", err)
	}

	if body.Text == "" {
		return "", fmt.Errorf("fact API returned an empty fact")
	}

	p.logger.Debug("fetched fact", zap.String("provider", p.Name()))
	return body.Text, nil
}
