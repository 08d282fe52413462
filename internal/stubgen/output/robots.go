package output

import (
	"fmt"
	"strings"

	"github.com/amusicadasegunda/stubgen/internal/stubgen/config"
)

// GenerateRobotsTxt generates a robots.txt file pointing at the sitemap.
func GenerateRobotsTxt(cfg *config.Config) string {
	var lines []string

	lines = append(lines, "User-agent: *")
	if cfg.Robots.AllowAll {
		lines = append(lines, "Allow: /")
	}
	lines = append(lines, "")

	for _, bot := range cfg.Robots.ExtraBots {
		lines = append(lines, fmt.Sprintf("User-agent: %s", bot))
		lines = append(lines, "Allow: /")
		lines = append(lines, "")
	}

	lines = append(lines, fmt.Sprintf("Sitemap: %s/sitemap.xml", cfg.Site.BaseURL))

	return strings.Join(lines, "\n") + "\n"
}
