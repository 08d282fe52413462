package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/amusicadasegunda/stubgen/internal/stubgen/config"
	"github.com/amusicadasegunda/stubgen/internal/stubgen/song"
)

// GenerateLlmsTxt generates an llms.txt file in the llmstxt.org format.
func GenerateLlmsTxt(cfg *config.Config, songs []*song.Song, songURL func(*song.Song) string) string {
	var lines []string

	lines = append(lines, fmt.Sprintf("# %s", cfg.Site.Name))
	lines = append(lines, "")

	if cfg.LlmsTxt.Tagline != "" {
		lines = append(lines, fmt.Sprintf("> %s", cfg.LlmsTxt.Tagline))
		lines = append(lines, "")
	}

	lines = append(lines, "## Músicas")

	sorted := make([]*song.Song, len(songs))
	copy(sorted, songs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	for _, s := range sorted {
		entry := fmt.Sprintf("- [%s](%s)", s.Name, songURL(s))
		if s.Description != "" {
			entry += ": " + s.Description
		}
		lines = append(lines, entry)
	}
	lines = append(lines, "")

	return strings.Join(lines, "\n")
}
