// Package config assembles the runtime configuration: built-in defaults,
// overridden by an optional ~/.temposcrape/config.yaml, with the session
// credential taken from the environment.
package config

import (
	"os"
)

// sessionTokenEnv names the environment variable carrying the opaque site
// credential for premium content. It is usually supplied via a .env file.
const sessionTokenEnv = "TEMPO_SESSION"

// Config is the merged runtime configuration.
type Config struct {
	BaseURL      string
	FeedURL      string
	OutputDir    string
	UserAgent    string
	LogLevel     string
	SessionToken string
}

// defaults returns the built-in configuration.
func defaults() *Config {
	return &Config{
		BaseURL:   "https://tempo.co/indeks",
		FeedURL:   "https://rss.tempo.co",
		OutputDir: "data/output",
		LogLevel:  "info",
	}
}

// Load builds the effective configuration. A missing config file is fine;
// a malformed one is an error. An absent session token is not an error:
// the fetch layer degrades to anonymous access with a warning.
func Load() (*Config, error) {
	cfg := defaults()

	file, err := LoadConfigFile()
	if err != nil {
		return nil, err
	}
	if file != nil {
		applyFile(cfg, file)
	}

	cfg.SessionToken = os.Getenv(sessionTokenEnv)
	return cfg, nil
}

func applyFile(cfg *Config, file *FileConfig) {
	if file.Scraper.BaseURL != "" {
		cfg.BaseURL = file.Scraper.BaseURL
	}
	if file.Scraper.FeedURL != "" {
		cfg.FeedURL = file.Scraper.FeedURL
	}
	if file.Scraper.UserAgent != "" {
		cfg.UserAgent = file.Scraper.UserAgent
	}
	if file.Output.Dir != "" {
		cfg.OutputDir = file.Output.Dir
	}
	if file.Logging.Level != "" {
		cfg.LogLevel = file.Logging.Level
	}
}
