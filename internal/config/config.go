package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds everything the bot needs for one run, read from environment
// variables. The four credentials are required; absence aborts startup.
type Config struct {
	GeminiAPIKey    string
	SlackWebhookURL string
	SpreadsheetID   string
	GoogleCredsJSON string

	// Ordered fallback lists: each model is tried in turn until one answers.
	AnalysisModels []string
	ContentModels  []string

	// Optional xlsx artifact of the run; empty disables it.
	ReportPath string
}

const (
	defaultAnalysisModels = "gemini-2.5-flash"
	defaultContentModels  = "gemini-2.5-pro,gemini-2.5-flash"
)

func Load() (Config, error) {
	cfg := Config{
		AnalysisModels: splitModels(getEnv("GEMINI_ANALYSIS_MODELS", defaultAnalysisModels)),
		ContentModels:  splitModels(getEnv("GEMINI_CONTENT_MODELS", defaultContentModels)),
		ReportPath:     os.Getenv("REPORT_PATH"),
	}

	var err error
	if cfg.GeminiAPIKey, err = requireEnv("GEMINI_API_KEY"); err != nil {
		return Config{}, err
	}
	if cfg.SlackWebhookURL, err = requireEnv("SLACK_WEBHOOK_URL"); err != nil {
		return Config{}, err
	}
	if cfg.SpreadsheetID, err = requireEnv("SPREADSHEET_ID"); err != nil {
		return Config{}, err
	}
	if cfg.GoogleCredsJSON, err = requireEnv("GOOGLE_CREDS_JSON"); err != nil {
		return Config{}, err
	}
	if len(cfg.AnalysisModels) == 0 {
		cfg.AnalysisModels = splitModels(defaultAnalysisModels)
	}
	if len(cfg.ContentModels) == 0 {
		cfg.ContentModels = splitModels(defaultContentModels)
	}
	return cfg, nil
}

func requireEnv(key string) (string, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return "", fmt.Errorf("required environment variable %s is not set", key)
	}
	return v, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitModels(raw string) []string {
	var out []string
	for _, m := range strings.Split(raw, ",") {
		m = strings.TrimSpace(m)
		if m == "" {
			continue
		}
		out = append(out, m)
	}
	return out
}
