package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Load reads and parses the configuration file
func Load(path string) (*Config, error) {
	// Expand path
	expandedPath, err := expandPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}

	// Read file
	data, err := os.ReadFile(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s (run 'loket config init' to create)", expandedPath)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// Parse TOML
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Expand paths in config
	if err := cfg.expandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads config or exits with error
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// expandPath expands ~ to home directory
func expandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}

// expandPaths expands ~ in all path fields
func (c *Config) expandPaths() error {
	var err error

	c.Catalog.Path, err = expandPath(c.Catalog.Path)
	if err != nil {
		return err
	}

	c.Database.Path, err = expandPath(c.Database.Path)
	if err != nil {
		return err
	}

	return nil
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	// Catalog validation
	if c.Catalog.Path == "" {
		errs = append(errs, errors.New("catalog.path is required"))
	}

	// Database validation
	if c.Database.Path == "" {
		errs = append(errs, errors.New("database.path is required"))
	}

	// Server validation
	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}
	if c.Server.PageSize < 1 || c.Server.PageSize > 100 {
		errs = append(errs, errors.New("server.page_size must be between 1 and 100"))
	}

	// Matching validation
	validScorers := map[string]bool{"keyword": true, "structural": true}
	if !validScorers[c.Matching.Scorer] {
		errs = append(errs, fmt.Errorf("matching.scorer must be 'keyword' or 'structural', got '%s'", c.Matching.Scorer))
	}
	validMatchers := map[string]bool{"keyword": true, "structured": true}
	if !validMatchers[c.Matching.FacetMatcher] {
		errs = append(errs, fmt.Errorf("matching.facet_matcher must be 'keyword' or 'structured', got '%s'", c.Matching.FacetMatcher))
	}

	// Notifier validation
	if c.Notifier.Enabled && c.Notifier.IntervalSeconds < 1 {
		errs = append(errs, errors.New("notifier.interval_seconds must be at least 1"))
	}

	// Log validation
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Log.Level] {
		errs = append(errs, fmt.Errorf("log.level must be one of debug, info, warn, error, got '%s'", c.Log.Level))
	}
	validFormats := map[string]bool{"console": true, "json": true}
	if !validFormats[c.Log.Format] {
		errs = append(errs, fmt.Errorf("log.format must be 'console' or 'json', got '%s'", c.Log.Format))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// EnsureDirectories creates necessary directories for the database
func (c *Config) EnsureDirectories() error {
	dirs := []string{
		filepath.Dir(c.Database.Path),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}
