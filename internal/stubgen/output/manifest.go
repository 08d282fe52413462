package output

import (
	"encoding/json"

	"github.com/amusicadasegunda/stubgen/internal/stubgen/config"
)

// GenerateManifest generates the PWA manifest.json.
func GenerateManifest(cfg *config.Config) string {
	manifest := map[string]interface{}{
		"name":             cfg.Site.Name,
		"short_name":       cfg.Site.Name,
		"description":      cfg.Site.Description,
		"lang":             cfg.Site.Language,
		"start_url":        "/",
		"display":          "standalone",
		"background_color": cfg.Manifest.BackgroundColor,
		"theme_color":      cfg.Manifest.ThemeColor,
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}
