package song

import (
	"encoding/json"
	"sort"
)

// Song is one content item from the songs file. Every field beyond Slug and
// Name is optional; absent fields stay zero-valued and consumers omit them
// from the documents they emit.
type Song struct {
	Slug            string  `json:"slug"`
	Name            string  `json:"name"`
	Artist          *Artist `json:"byArtist,omitempty"`
	DatePublished   string  `json:"datePublished,omitempty"`
	AudioURL        string  `json:"audioUrl,omitempty"`
	Image           string  `json:"image,omitempty"`
	Duration        string  `json:"duration,omitempty"`
	InLanguage      string  `json:"inLanguage,omitempty"`
	Description     string  `json:"description,omitempty"`
	YouTubeURL      string  `json:"youtube_url,omitempty"`
	YouTubeMusicURL string  `json:"youtube_music_url,omitempty"`
}

// Artist is the song attribution. The content file stores it either as a
// plain string or as a {"name": ...} object.
type Artist struct {
	Name string `json:"name"`
}

// UnmarshalJSON accepts both attribution shapes.
func (a *Artist) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		a.Name = s
		return nil
	}
	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	a.Name = obj.Name
	return nil
}

// ArtistName returns the attributed artist, or empty when unattributed.
func (s *Song) ArtistName() string {
	if s.Artist == nil {
		return ""
	}
	return s.Artist.Name
}

// VideoURL returns the URL a YouTube ID should be derived from.
// youtube_music_url takes priority when both are present.
func (s *Song) VideoURL() string {
	if s.YouTubeMusicURL != "" {
		return s.YouTubeMusicURL
	}
	return s.YouTubeURL
}

// SortByPublishDateDescending orders songs newest first by datePublished.
// The sort is stable: songs sharing a date keep their input order, and songs
// without a date sort last.
func SortByPublishDateDescending(songs []*Song) {
	sort.SliceStable(songs, func(i, j int) bool {
		a, b := songs[i].DatePublished, songs[j].DatePublished
		if a == "" {
			return false
		}
		if b == "" {
			return true
		}
		return a > b
	})
}

// MostRecent returns the song with the latest datePublished, or nil for an
// empty list.
func MostRecent(songs []*Song) *Song {
	var best *Song
	for _, s := range songs {
		if best == nil {
			best = s
			continue
		}
		if s.DatePublished != "" && (best.DatePublished == "" || s.DatePublished > best.DatePublished) {
			best = s
		}
	}
	return best
}
