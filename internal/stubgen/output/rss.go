package output

import (
	"encoding/xml"
	"strings"
	"time"

	"github.com/amusicadasegunda/stubgen/internal/stubgen/config"
	"github.com/amusicadasegunda/stubgen/internal/stubgen/song"
)

type rssDoc struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	Language      string    `xml:"language"`
	LastBuildDate string    `xml:"lastBuildDate"`
	Items         []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	Category    string `xml:"category,omitempty"`
	GUID        string `xml:"guid"`
	PubDate     string `xml:"pubDate"`
}

// GenerateFeed generates the RSS feed with songs newest first. songURL maps a
// song to its canonical page URL.
func GenerateFeed(cfg *config.Config, songs []*song.Song, songURL func(*song.Song) string, now time.Time) string {
	if !cfg.Feed.Enabled {
		return ""
	}

	buildDate := now.UTC().Format(time.RFC1123Z)
	channel := rssChannel{
		Title:         xmlEscape(cfg.Site.Name),
		Link:          cfg.Site.BaseURL,
		Description:   xmlEscape(cfg.Site.Description),
		Language:      cfg.Site.Language,
		LastBuildDate: buildDate,
	}

	ordered := make([]*song.Song, len(songs))
	copy(ordered, songs)
	song.SortByPublishDateDescending(ordered)

	for _, s := range ordered {
		link := songURL(s)
		item := rssItem{
			Title:       xmlEscape(s.Name),
			Link:        link,
			Description: xmlEscape(s.Description),
			GUID:        link,
			PubDate:     pubDate(s.DatePublished, buildDate),
		}
		if artist := s.ArtistName(); artist != "" {
			item.Category = xmlEscape(artist)
		}
		channel.Items = append(channel.Items, item)
	}

	doc := rssDoc{Version: "2.0", Channel: channel}
	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return ""
	}
	return xml.Header + string(data)
}

// pubDate converts the content file's ISO date into the RFC 1123 form RSS
// readers expect, falling back to the build date for undated songs.
func pubDate(iso, fallback string) string {
	if iso == "" {
		return fallback
	}
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		if t, err = time.Parse(time.RFC3339, iso); err != nil {
			return fallback
		}
	}
	return t.UTC().Format(time.RFC1123Z)
}

func xmlEscape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	return s
}
