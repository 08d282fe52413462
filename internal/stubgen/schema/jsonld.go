// Package schema builds the JSON-LD structured data embedded in every
// generated document. Factories are pure: plain options in, a plain
// serializable map out. Optional values that are absent omit the key rather
// than emit a null, so every output round-trips through encoding/json.
package schema

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/amusicadasegunda/stubgen/internal/stubgen/song"
)

// BreadcrumbFallbackName labels the song crumb when neither a name nor a
// parseable URL is available. Search consoles warn on empty crumb names.
const BreadcrumbFallbackName = "Música"

// OrganizationOptions configures the Organization schema.
type OrganizationOptions struct {
	Name string
	URL  string
	Logo string
}

// Organization builds a minimal Organization descriptor.
func Organization(opts OrganizationOptions) map[string]interface{} {
	s := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     opts.Name,
		"url":      opts.URL,
	}
	if opts.Logo != "" {
		s["logo"] = opts.Logo
	}
	return s
}

// SearchOptions configures the optional SearchAction on the WebSite schema.
type SearchOptions struct {
	Enabled bool
	Target  string // site-relative path, e.g. "/buscar"
	Param   string // query parameter name, e.g. "q"
}

// WebsiteOptions configures the WebSite schema.
type WebsiteOptions struct {
	Name   string
	URL    string
	Search SearchOptions
}

// Website builds the WebSite descriptor, attaching a SearchAction when the
// site search is enabled.
func Website(opts WebsiteOptions) map[string]interface{} {
	s := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"url":      opts.URL,
	}
	if opts.Name != "" {
		s["name"] = opts.Name
	}
	if opts.Search.Enabled {
		s["potentialAction"] = map[string]interface{}{
			"@type": "SearchAction",
			"target": map[string]interface{}{
				"@type":       "EntryPoint",
				"urlTemplate": fmt.Sprintf("%s%s?%s={search_term_string}", opts.URL, opts.Search.Target, opts.Search.Param),
			},
			"query-input": "required name=search_term_string",
		}
	}
	return s
}

// Track is one entry of a MusicPlaylist.
type Track struct {
	Name   string
	URL    string
	Artist string
}

// PlaylistOptions configures the MusicPlaylist schema.
type PlaylistOptions struct {
	Name          string
	URL           string
	Image         string
	Tracks        []Track
	DefaultArtist string
}

// MusicPlaylist builds the playlist descriptor. numTracks always equals the
// track count; it is computed here so the two can never drift. Tracks without
// an attributed artist fall back to the house artist.
func MusicPlaylist(opts PlaylistOptions) map[string]interface{} {
	tracks := make([]map[string]interface{}, 0, len(opts.Tracks))
	for _, t := range opts.Tracks {
		artist := t.Artist
		if artist == "" {
			artist = opts.DefaultArtist
		}
		tracks = append(tracks, map[string]interface{}{
			"@type": "MusicRecording",
			"name":  t.Name,
			"url":   t.URL,
			"byArtist": map[string]interface{}{
				"@type": "MusicGroup",
				"name":  artist,
			},
		})
	}

	s := map[string]interface{}{
		"@context":  "https://schema.org",
		"@type":     "MusicPlaylist",
		"name":      opts.Name,
		"url":       opts.URL,
		"numTracks": len(opts.Tracks),
		"track":     tracks,
	}
	if opts.Image != "" {
		s["image"] = opts.Image
	}
	return s
}

// RecordingOptions configures the MusicRecording schema.
type RecordingOptions struct {
	Name          string
	URL           string
	DatePublished string
	AudioURL      string
	Image         string
	Duration      string
	InLanguage    string
	Artist        string
	Description   string
}

// MusicRecording builds the recording descriptor for a song page. A
// ListenAction is attached only when the song has an audio URL; an action
// with an empty target would be worse than none.
func MusicRecording(opts RecordingOptions) map[string]interface{} {
	s := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "MusicRecording",
		"name":     opts.Name,
		"url":      opts.URL,
	}
	if opts.Artist != "" {
		s["byArtist"] = map[string]interface{}{
			"@type": "MusicGroup",
			"name":  opts.Artist,
		}
	}
	if opts.DatePublished != "" {
		s["datePublished"] = opts.DatePublished
	}
	if opts.Image != "" {
		s["image"] = opts.Image
	}
	if opts.Duration != "" {
		s["duration"] = opts.Duration
	}
	if opts.InLanguage != "" {
		s["inLanguage"] = opts.InLanguage
	}
	if opts.Description != "" {
		s["description"] = opts.Description
	}
	if opts.AudioURL != "" {
		offer := map[string]interface{}{
			"@type":    "Offer",
			"category": "free",
		}
		if opts.DatePublished != "" {
			offer["availabilityStarts"] = opts.DatePublished
		}
		s["potentialAction"] = map[string]interface{}{
			"@type": "ListenAction",
			"target": []interface{}{
				map[string]interface{}{
					"@type":       "EntryPoint",
					"urlTemplate": opts.AudioURL,
					"actionPlatform": []interface{}{
						"https://schema.org/DesktopWebPlatform",
						"https://schema.org/MobileWebPlatform",
						"https://schema.org/IOSPlatform",
						"https://schema.org/AndroidPlatform",
					},
				},
			},
			"expectsAcceptanceOf": offer,
		}
	}
	return s
}

// BreadcrumbOptions configures the BreadcrumbList schema.
type BreadcrumbOptions struct {
	SongName string
	SongURL  string
	HomeURL  string
	ListURL  string
}

var songSlugPattern = regexp.MustCompile(`/musica/([^/]+?)/?$`)

// BreadcrumbList builds the three-crumb trail home -> listing -> song. The
// song crumb's name must never be empty: use the given name, else title-case
// the slug parsed from the song URL, else a fixed fallback label.
func BreadcrumbList(opts BreadcrumbOptions) map[string]interface{} {
	name := opts.SongName
	if name == "" {
		if m := songSlugPattern.FindStringSubmatch(opts.SongURL); m != nil {
			name = song.TitleFromSlug(m[1])
		}
	}
	if name == "" {
		name = BreadcrumbFallbackName
	}

	items := []map[string]interface{}{
		{"@type": "ListItem", "position": 1, "name": "Início", "item": opts.HomeURL},
		{"@type": "ListItem", "position": 2, "name": "Músicas", "item": opts.ListURL},
		{"@type": "ListItem", "position": 3, "name": name},
	}
	if opts.SongURL != "" {
		items[2]["item"] = opts.SongURL
	}

	return map[string]interface{}{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": items,
	}
}

// MarshalSchemas encodes one or more schemas as JSON-LD script blocks, in
// caller-supplied order.
func MarshalSchemas(schemas ...map[string]interface{}) string {
	var parts []string
	for _, s := range schemas {
		if s == nil {
			continue
		}
		data, err := json.Marshal(s)
		if err != nil {
			continue
		}
		parts = append(parts, fmt.Sprintf(`<script type="application/ld+json">%s</script>`, string(data)))
	}
	return strings.Join(parts, "\n")
}
