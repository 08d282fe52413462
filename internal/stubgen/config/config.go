package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads and parses a YAML config file, applies defaults, and validates.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.ConfigDir = filepath.Dir(path)
	ApplyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	// Resolve relative paths against config directory
	resolvePaths(&cfg)

	return &cfg, nil
}

// ApplyEnvOverrides lets the deploy environment override the values that
// differ between preview and production builds.
func ApplyEnvOverrides(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("STUBGEN_BASE_URL")); v != "" {
		cfg.Site.BaseURL = strings.TrimRight(v, "/")
	}
	if v := strings.TrimSpace(os.Getenv("STUBGEN_OUTPUT")); v != "" {
		cfg.Paths.Output = v
		cfg.Paths.Entry = filepath.Join(v, "index.html")
	}
}

// ApplyDefaults fills in every optional field the build relies on.
func ApplyDefaults(cfg *Config) {
	if cfg.Site.Language == "" {
		cfg.Site.Language = "pt-BR"
	}
	if cfg.Site.Artist == "" {
		cfg.Site.Artist = cfg.Site.Name
	}
	cfg.Site.BaseURL = strings.TrimRight(cfg.Site.BaseURL, "/")
	if cfg.Paths.Output == "" {
		cfg.Paths.Output = "dist"
	}
	if cfg.Paths.Entry == "" {
		cfg.Paths.Entry = filepath.Join(cfg.Paths.Output, "index.html")
	}
	if cfg.Search.Target == "" {
		cfg.Search.Target = "/buscar"
	}
	if cfg.Search.Param == "" {
		cfg.Search.Param = "q"
	}
	if cfg.Feed.MainFeed == "" {
		cfg.Feed.MainFeed = "feed.xml"
	}
	if cfg.Manifest.ThemeColor == "" {
		cfg.Manifest.ThemeColor = "#1a1a2e"
	}
	if cfg.Manifest.BackgroundColor == "" {
		cfg.Manifest.BackgroundColor = "#ffffff"
	}
	if cfg.Patch.PreconnectAnchor == "" {
		cfg.Patch.PreconnectAnchor = `<link rel="preconnect" href="https://i.ytimg.com">`
	}
	if cfg.Patch.NavAnchor == "" {
		cfg.Patch.NavAnchor = "<nav"
	}
}

func validate(cfg *Config) error {
	if cfg.Site.Name == "" {
		return fmt.Errorf("site.name is required")
	}
	if cfg.Site.BaseURL == "" {
		return fmt.Errorf("site.base_url is required")
	}
	if cfg.Paths.Songs == "" {
		return fmt.Errorf("paths.songs is required")
	}
	return nil
}

func resolvePaths(cfg *Config) {
	resolve := func(p string) string {
		if filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(cfg.ConfigDir, p)
	}

	cfg.Paths.Songs = resolve(cfg.Paths.Songs)
	cfg.Paths.Output = resolve(cfg.Paths.Output)
	cfg.Paths.Entry = resolve(cfg.Paths.Entry)
}
