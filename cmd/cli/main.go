// Package main provides the CLI tool for the profile-service.
// Uses Cobra for command parsing — Cobra is the standard Go CLI framework
// (used by kubectl, docker, hugo, and many others).
//
// Run with: go run ./cmd/cli show --url http://localhost:8080
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fleveque/profile-service/internal/config"
	"github.com/fleveque/profile-service/internal/provider"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// rootCmd creates the root command. Cobra builds a tree of commands:
// profile-cli show --url http://localhost:8080
// profile-cli fact
func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "profile-cli",
		Short: "Profile service CLI tools",
	}

	root.AddCommand(showCmd())
	root.AddCommand(factCmd())
	return root
}

func showCmd() *cobra.Command {
	var url string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Fetch the profile from a running server and print it",
		// RunE returns an error (vs Run which doesn't). Cobra prints the error automatically.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(url)
		},
	}

	cmd.Flags().StringVar(&url, "url", "http://localhost:8080", "Base URL of the profile server")
	return cmd
}

func factCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fact",
		Short: "Fetch one fact straight from the configured providers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFact()
		},
	}
}

// runShow performs one GET against the server's profile route and
// pretty-prints the JSON body.
func runShow(baseURL string) error {
	client := &http.Client{Timeout: 10 * time.Second}

	req, err := http.NewRequest("GET", baseURL+"/api/v1/profile", nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "profile-cli/1.0")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("fetching profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, string(body))
	}

	// Re-indent the body instead of decoding into a struct — the CLI
	// shouldn't need updating every time a profile field is added.
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("reading body: %w", err)
	}

	var pretty map[string]any
	if err := json.Unmarshal(body, &pretty); err != nil {
		return fmt.Errorf("decoding profile: %w", err)
	}

	out, err := json.MarshalIndent(pretty, "", "  ")
	if err != nil {
		return fmt.Errorf("formatting profile: %w", err)
	}

	fmt.Println(string(out))
	return nil
}

// runFact queries the provider chain directly, bypassing the server.
// Handy for checking whether the external fact APIs are reachable.
func runFact() error {
	configPath := os.Getenv("PROFILE_CONFIG_PATH")
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Set up logger (always use development mode for CLI)
	logger, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	providers := provider.FromConfig(cfg.Facts, logger)
	if len(providers) == 0 {
		return fmt.Errorf("no fact providers configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Facts.Timeout())
	defer cancel()

	for _, p := range providers {
		fact, err := p.RandomFact(ctx)
		if err != nil {
			logger.Warn("provider failed",
				zap.String("provider", p.Name()),
				zap.Error(err),
			)
			continue
		}
		fmt.Println(fact)
		return nil
	}

	return fmt.Errorf("all fact providers failed")
}
