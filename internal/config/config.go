package config

// Config represents the portal configuration
type Config struct {
	Catalog  CatalogConfig  `toml:"catalog"`
	Database DatabaseConfig `toml:"database"`
	Server   ServerConfig   `toml:"server"`
	Matching MatchingConfig `toml:"matching"`
	Notifier NotifierConfig `toml:"notifier"`
	Log      LogConfig      `toml:"log"`
}

// CatalogConfig points at the program catalog file
type CatalogConfig struct {
	Path string `toml:"path"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Addr     string `toml:"addr"`
	PageSize int    `toml:"page_size"`
}

// MatchingConfig selects the filtering and scoring strategies.
// Strategy choice follows the catalog schema: keyword strategies for
// free-text catalogs, structured/structural for catalogs with structured
// eligibility fields. The two families are never mixed in one pass.
type MatchingConfig struct {
	Scorer       string `toml:"scorer"`        // "keyword" or "structural"
	FacetMatcher string `toml:"facet_matcher"` // "keyword" or "structured"
}

// NotifierConfig contains websocket message sidecar settings
type NotifierConfig struct {
	Enabled         bool `toml:"enabled"`
	IntervalSeconds int  `toml:"interval_seconds"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Default returns a Config with sensible defaults
func Default() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Path: "data/programs.json",
		},
		Database: DatabaseConfig{
			Path: "~/.local/share/loket/loket.db",
		},
		Server: ServerConfig{
			Addr:     ":8080",
			PageSize: 10,
		},
		Matching: MatchingConfig{
			Scorer:       "keyword",
			FacetMatcher: "keyword",
		},
		Notifier: NotifierConfig{
			Enabled:         true,
			IntervalSeconds: 45,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
