// Package youtube derives canonical 11-character video identifiers from the
// URL shapes found in the content file and synthesizes the URLs the generated
// documents need. The resolved ID only ever feeds a crawlable iframe and a
// MusicRecording schema; pages deliberately carry no VideoObject schema,
// which search engines flag on pages that are not watch pages.
package youtube

import (
	"fmt"
	"regexp"
)

const idAlphabet = `[A-Za-z0-9_-]{11}`

// Tried in order; the first match wins.
var idPatterns = []*regexp.Regexp{
	regexp.MustCompile(`/shorts/(` + idAlphabet + `)`),
	regexp.MustCompile(`(?:youtube\.com/(?:watch\?(?:.*&)?v=|embed/)|youtu\.be/)(` + idAlphabet + `)`),
	regexp.MustCompile(`music\.youtube\.com/watch\?(?:.*&)?v=(` + idAlphabet + `)`),
	regexp.MustCompile(`[?&]v=(` + idAlphabet + `)`),
	regexp.MustCompile(`^(` + idAlphabet + `)$`),
}

var validID = regexp.MustCompile(`^` + idAlphabet + `$`)

// VideoID extracts a canonical video ID from a URL or a bare ID.
// Returns empty when nothing matches; callers treat that as "no embeddable
// video", never as an error.
func VideoID(raw string) string {
	if raw == "" {
		return ""
	}
	for _, p := range idPatterns {
		if m := p.FindStringSubmatch(raw); m != nil {
			return m[1]
		}
	}
	return ""
}

// Links holds the three URLs synthesized for a resolved video ID.
type Links struct {
	Watch     string
	Embed     string
	Thumbnail string
}

// BuildLinks synthesizes watch, privacy-enhanced embed, and thumbnail URLs.
// The ID shape is validated first; anything not exactly 11 characters from
// the ID alphabet is rejected.
func BuildLinks(id string) (Links, bool) {
	if !validID.MatchString(id) {
		return Links{}, false
	}
	return Links{
		Watch:     fmt.Sprintf("https://www.youtube.com/watch?v=%s", id),
		Embed:     fmt.Sprintf("https://www.youtube-nocookie.com/embed/%s", id),
		Thumbnail: fmt.Sprintf("https://i.ytimg.com/vi/%s/hqdefault.jpg", id),
	}, true
}
