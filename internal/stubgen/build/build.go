// Package build orchestrates the full stub generation run: load songs, emit
// every prerendered document, write the SEO side files, patch the SPA entry
// document, and clean up output left behind by removed songs. The run is
// strictly sequential; it is a build step gating deployment, so any failure
// aborts with an error and partial output is acceptable.
package build

import (
	"fmt"
	"html"
	"html/template"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/amusicadasegunda/stubgen/internal/stubgen/archive"
	"github.com/amusicadasegunda/stubgen/internal/stubgen/assets"
	"github.com/amusicadasegunda/stubgen/internal/stubgen/config"
	"github.com/amusicadasegunda/stubgen/internal/stubgen/loader"
	"github.com/amusicadasegunda/stubgen/internal/stubgen/output"
	"github.com/amusicadasegunda/stubgen/internal/stubgen/render"
	"github.com/amusicadasegunda/stubgen/internal/stubgen/schema"
	"github.com/amusicadasegunda/stubgen/internal/stubgen/song"
	"github.com/amusicadasegunda/stubgen/internal/stubgen/youtube"
)

const noscriptMessage = "Este site precisa de JavaScript para a experiência completa."

// Builder orchestrates the stub generation pipeline.
type Builder struct {
	cfg     *config.Config
	engine  *render.Engine
	stamp   time.Time
	tags    assets.Tags
	written map[string]bool // output-relative paths written this run
}

// NewBuilder creates a builder for one run. The build stamp is fixed here so
// every document written by the run carries the same freshness marker.
func NewBuilder(cfg *config.Config) (*Builder, error) {
	engine, err := render.NewEngine()
	if err != nil {
		return nil, err
	}
	return &Builder{
		cfg:     cfg,
		engine:  engine,
		stamp:   time.Now(),
		written: make(map[string]bool),
	}, nil
}

// Build runs the complete pipeline.
func (b *Builder) Build() error {
	start := time.Now()
	log.Printf("Generating stubs for %s", b.cfg.Site.Name)

	outDir := b.cfg.Paths.Output
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	log.Printf("Loading songs from %s...", b.cfg.Paths.Songs)
	songs, err := loader.New(b.cfg).Load()
	if err != nil {
		return fmt.Errorf("loading songs: %w", err)
	}
	log.Printf("Loaded %d songs", len(songs))

	ordered := make([]*song.Song, len(songs))
	copy(ordered, songs)
	song.SortByPublishDateDescending(ordered)

	b.tags = b.extractEntryTags()

	if err := b.buildPlaylistPage(ordered); err != nil {
		return fmt.Errorf("rendering playlist page: %w", err)
	}

	if err := b.buildFixedRedirects(); err != nil {
		return fmt.Errorf("rendering fixed redirects: %w", err)
	}

	log.Printf("Rendering %d song pages...", len(ordered))
	for _, s := range ordered {
		if err := b.buildLegacyRedirect(s); err != nil {
			return fmt.Errorf("rendering legacy redirect for %s: %w", s.Slug, err)
		}
		if err := b.buildSongPages(s); err != nil {
			return fmt.Errorf("rendering song %s: %w", s.Slug, err)
		}
	}

	months := b.buildMonths(ordered)

	if err := b.buildSideFiles(ordered, months); err != nil {
		return err
	}

	b.patchEntryDocument(ordered)

	if err := b.cleanupStale(outDir); err != nil {
		return err
	}

	log.Printf("Stub generation complete")
	log.Printf("  Songs:    %d", len(ordered))
	log.Printf("  Files:    %d", len(b.written))
	log.Printf("  Output:   %s", outDir)
	log.Printf("  Duration: %s", time.Since(start).Round(time.Millisecond))
	return nil
}

// extractEntryTags pulls the compiled bundle tags out of the already-built
// SPA entry document. An absent entry document is non-fatal: the prerendered
// pages still render, just without booting the interactive app.
func (b *Builder) extractEntryTags() assets.Tags {
	data, err := os.ReadFile(b.cfg.Paths.Entry)
	if err != nil {
		log.Printf("Warning: entry document %s not readable, stubs will carry no bundle tags: %v", b.cfg.Paths.Entry, err)
		return assets.Tags{}
	}
	tags := assets.ExtractTags(string(data))
	if tags.Script == "" {
		log.Printf("Warning: no module script tag found in %s", b.cfg.Paths.Entry)
	}
	return tags
}

func (b *Builder) buildPlaylistPage(songs []*song.Song) error {
	items := make([]render.ListItem, 0, len(songs))
	tracks := make([]schema.Track, 0, len(songs))
	for _, s := range songs {
		items = append(items, render.ListItem{
			Name:   s.Name,
			URL:    b.songURL(s),
			Artist: s.ArtistName(),
		})
		tracks = append(tracks, schema.Track{
			Name:   s.Name,
			URL:    b.songURL(s),
			Artist: s.ArtistName(),
		})
	}

	body, err := b.engine.RenderListBody(render.ListBodyContext{
		Title: b.cfg.Site.Name,
		Intro: b.cfg.Site.Description,
		Items: items,
	})
	if err != nil {
		return err
	}

	org := schema.Organization(schema.OrganizationOptions{
		Name: b.cfg.Site.Name,
		URL:  b.cfg.Site.BaseURL,
		Logo: b.absURL(b.cfg.Site.Logo),
	})
	website := schema.Website(schema.WebsiteOptions{
		Name: b.cfg.Site.Name,
		URL:  b.cfg.Site.BaseURL,
		Search: schema.SearchOptions{
			Enabled: b.cfg.Search.Enabled,
			Target:  b.cfg.Search.Target,
			Param:   b.cfg.Search.Param,
		},
	})
	playlist := schema.MusicPlaylist(schema.PlaylistOptions{
		Name:          b.cfg.Site.Name,
		URL:           b.playlistURL(),
		Image:         b.absURL(b.cfg.Site.ShareImage),
		Tracks:        tracks,
		DefaultArtist: b.cfg.Site.Artist,
	})

	doc, err := b.engine.RenderPage(render.PageContext{
		Lang:         b.cfg.Site.Language,
		SiteName:     b.cfg.Site.Name,
		Title:        b.cfg.Site.Name,
		Description:  b.cfg.Site.Description,
		CanonicalURL: b.playlistURL(),
		Image:        b.absURL(b.cfg.Site.ShareImage),
		OGType:       "website",
		JsonLD:       trusted(schema.MarshalSchemas(org, website, playlist)),
		Body:         body,
		ScriptTag:    trusted(b.tags.Script),
		StyleTag:     trusted(b.tags.Style),
		Noscript:     noscriptMessage,
	})
	if err != nil {
		return err
	}

	return b.writePage(filepath.Join("musica", "index.html"), doc)
}

func (b *Builder) buildFixedRedirects() error {
	redirects := []struct {
		path   string
		target string
	}{
		{filepath.Join("home", "index.html"), b.cfg.Site.BaseURL + "/"},
		{filepath.Join("playlist", "index.html"), b.playlistURL()},
		{filepath.Join("chansons", "index.html"), b.playlistURL()},
	}
	for _, r := range redirects {
		if err := b.writeRedirect(r.path, r.target); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) buildLegacyRedirect(s *song.Song) error {
	return b.writeRedirect(filepath.Join("chansons", s.Slug, "index.html"), b.songURL(s))
}

func (b *Builder) writeRedirect(relPath, target string) error {
	doc, err := b.engine.RenderRedirect(render.RedirectContext{
		Lang:      b.cfg.Site.Language,
		Title:     b.cfg.Site.Name,
		TargetURL: target,
		Label:     b.cfg.Site.Name,
	})
	if err != nil {
		return err
	}
	return b.writePage(relPath, doc)
}

// buildSongPages emits a song's canonical document plus the flat .html alias.
// Both carry the trailing-slash canonical URL so the two paths never compete
// in the index.
func (b *Builder) buildSongPages(s *song.Song) error {
	canonical := b.songURL(s)

	var links youtube.Links
	var embedded bool
	if id := youtube.VideoID(s.VideoURL()); id != "" {
		links, embedded = youtube.BuildLinks(id)
	}

	body, err := b.engine.RenderSongBody(render.SongBodyContext{
		Name:          s.Name,
		ArtistName:    s.ArtistName(),
		DatePublished: s.DatePublished,
		Description:   s.Description,
		AudioURL:      s.AudioURL,
		Embed:         links.Embed,
		Watch:         links.Watch,
	})
	if err != nil {
		return err
	}

	recording := schema.MusicRecording(schema.RecordingOptions{
		Name:          s.Name,
		URL:           canonical,
		DatePublished: s.DatePublished,
		AudioURL:      s.AudioURL,
		Image:         b.heroImage(s, links, embedded),
		Duration:      s.Duration,
		InLanguage:    s.InLanguage,
		Artist:        artistOrHouse(s, b.cfg.Site.Artist),
		Description:   s.Description,
	})
	breadcrumb := schema.BreadcrumbList(schema.BreadcrumbOptions{
		SongName: s.Name,
		SongURL:  canonical,
		HomeURL:  b.cfg.Site.BaseURL + "/",
		ListURL:  b.playlistURL(),
	})

	title := s.Name
	if artist := artistOrHouse(s, b.cfg.Site.Artist); artist != "" {
		title = fmt.Sprintf("%s | %s", s.Name, artist)
	}

	doc, err := b.engine.RenderPage(render.PageContext{
		Lang:         b.cfg.Site.Language,
		SiteName:     b.cfg.Site.Name,
		Title:        title,
		Description:  s.Description,
		CanonicalURL: canonical,
		Image:        b.heroImage(s, links, embedded),
		OGType:       "music.song",
		JsonLD:       trusted(schema.MarshalSchemas(recording, breadcrumb)),
		Body:         body,
		ScriptTag:    trusted(b.tags.Script),
		StyleTag:     trusted(b.tags.Style),
		Noscript:     noscriptMessage,
	})
	if err != nil {
		return err
	}

	if err := b.writePage(filepath.Join("musica", s.Slug, "index.html"), doc); err != nil {
		return err
	}
	return b.writePage(filepath.Join("musica", s.Slug+".html"), doc)
}

func (b *Builder) buildMonths(songs []*song.Song) []archive.Month {
	if !b.cfg.Archive.Enabled {
		return nil
	}

	months := archive.GroupByMonth(songs)
	log.Printf("Rendering %d archive pages...", len(months))

	indexItems := make([]render.ListItem, 0, len(months))
	for _, m := range months {
		if err := b.buildMonthPage(m); err != nil {
			log.Printf("Warning: failed to render archive %s: %v", m.Key, err)
			continue
		}
		indexItems = append(indexItems, render.ListItem{
			Name: m.Label,
			URL:  b.archiveURL(m.Key),
		})
	}

	body, err := b.engine.RenderListBody(render.ListBodyContext{
		Title: "Calendário",
		Items: indexItems,
	})
	if err != nil {
		log.Printf("Warning: failed to render archive index: %v", err)
		return months
	}

	doc, err := b.engine.RenderPage(render.PageContext{
		Lang:         b.cfg.Site.Language,
		SiteName:     b.cfg.Site.Name,
		Title:        fmt.Sprintf("Calendário | %s", b.cfg.Site.Name),
		Description:  b.cfg.Site.Description,
		CanonicalURL: b.cfg.Site.BaseURL + "/calendario/",
		Image:        b.absURL(b.cfg.Site.ShareImage),
		OGType:       "website",
		JsonLD:       "",
		Body:         body,
		ScriptTag:    trusted(b.tags.Script),
		StyleTag:     trusted(b.tags.Style),
		Noscript:     noscriptMessage,
	})
	if err != nil {
		log.Printf("Warning: failed to render archive index: %v", err)
		return months
	}
	if err := b.writePage(filepath.Join("calendario", "index.html"), doc); err != nil {
		log.Printf("Warning: failed to write archive index: %v", err)
	}
	return months
}

func (b *Builder) buildMonthPage(m archive.Month) error {
	items := make([]render.ListItem, 0, len(m.Songs))
	tracks := make([]schema.Track, 0, len(m.Songs))
	for _, s := range m.Songs {
		items = append(items, render.ListItem{Name: s.Name, URL: b.songURL(s), Artist: s.ArtistName()})
		tracks = append(tracks, schema.Track{Name: s.Name, URL: b.songURL(s), Artist: s.ArtistName()})
	}

	body, err := b.engine.RenderListBody(render.ListBodyContext{
		Title: m.Label,
		Items: items,
	})
	if err != nil {
		return err
	}

	title := fmt.Sprintf("%s | %s", m.Label, b.cfg.Site.Name)
	playlist := schema.MusicPlaylist(schema.PlaylistOptions{
		Name:          title,
		URL:           b.archiveURL(m.Key),
		Tracks:        tracks,
		DefaultArtist: b.cfg.Site.Artist,
	})

	doc, err := b.engine.RenderPage(render.PageContext{
		Lang:         b.cfg.Site.Language,
		SiteName:     b.cfg.Site.Name,
		Title:        title,
		Description:  fmt.Sprintf("Músicas publicadas em %s.", m.Label),
		CanonicalURL: b.archiveURL(m.Key),
		Image:        b.absURL(b.cfg.Site.ShareImage),
		OGType:       "website",
		JsonLD:       trusted(schema.MarshalSchemas(playlist)),
		Body:         body,
		ScriptTag:    trusted(b.tags.Script),
		StyleTag:     trusted(b.tags.Style),
		Noscript:     noscriptMessage,
	})
	if err != nil {
		return err
	}
	return b.writePage(filepath.Join("calendario", m.Key, "index.html"), doc)
}

// buildSideFiles writes the non-HTML SEO artifacts: sitemap, robots.txt,
// RSS feed, PWA manifest, and llms.txt.
func (b *Builder) buildSideFiles(songs []*song.Song, months []archive.Month) error {
	today := b.stamp.UTC().Format("2006-01-02")

	entries := []output.SitemapEntry{
		{Loc: b.cfg.Site.BaseURL + "/", Lastmod: today},
		{Loc: b.playlistURL(), Lastmod: today},
	}
	for _, s := range songs {
		lastmod := s.DatePublished
		if lastmod == "" {
			lastmod = today
		}
		entries = append(entries, output.SitemapEntry{Loc: b.songURL(s), Lastmod: lastmod})
	}
	for _, m := range months {
		entries = append(entries, output.SitemapEntry{Loc: b.archiveURL(m.Key), Lastmod: today})
	}

	files := output.GenerateSitemapFiles(entries, b.cfg.Site.BaseURL, 0)
	for _, f := range files {
		if err := b.writeRaw(f.Filename, f.Content); err != nil {
			return fmt.Errorf("writing %s: %w", f.Filename, err)
		}
	}
	log.Printf("Generated sitemap (%d URLs in %d file(s))", len(entries), len(files))

	if err := b.writeRaw("robots.txt", output.GenerateRobotsTxt(b.cfg)); err != nil {
		return fmt.Errorf("writing robots.txt: %w", err)
	}

	if b.cfg.Feed.Enabled {
		feed := output.GenerateFeed(b.cfg, songs, b.songURL, b.stamp)
		if err := b.writeRaw(b.cfg.Feed.MainFeed, feed); err != nil {
			return fmt.Errorf("writing feed: %w", err)
		}
	}

	if b.cfg.Manifest.Enabled {
		if err := b.writeRaw("manifest.json", output.GenerateManifest(b.cfg)); err != nil {
			return fmt.Errorf("writing manifest.json: %w", err)
		}
	}

	if b.cfg.LlmsTxt.Enabled {
		if err := b.writeRaw("llms.txt", output.GenerateLlmsTxt(b.cfg, songs, b.songURL)); err != nil {
			return fmt.Errorf("writing llms.txt: %w", err)
		}
	}

	return nil
}

// patchEntryDocument splices a thumbnail preload hint and a static LCP image
// for the most recent song into the SPA entry document. Every miss is a
// logged no-op: the entry document's structure is owned by another tool.
func (b *Builder) patchEntryDocument(songs []*song.Song) {
	latest := song.MostRecent(songs)
	if latest == nil {
		return
	}
	id := youtube.VideoID(latest.VideoURL())
	if id == "" {
		log.Printf("Warning: most recent song %s has no video, skipping entry patch", latest.Slug)
		return
	}
	links, ok := youtube.BuildLinks(id)
	if !ok {
		return
	}

	data, err := os.ReadFile(b.cfg.Paths.Entry)
	if err != nil {
		log.Printf("Warning: entry document not readable, skipping patch: %v", err)
		return
	}
	doc := string(data)

	preload := fmt.Sprintf(`<link rel="preload" as="image" href="%s" fetchpriority="high">`, html.EscapeString(links.Thumbnail))
	if strings.Contains(doc, preload) {
		log.Printf("Entry document already carries the preload hint, skipping")
	} else if patched, found := assets.InjectAfter(doc, b.cfg.Patch.PreconnectAnchor, preload); found {
		doc = patched
	} else {
		log.Printf("Warning: preconnect anchor not found in entry document, preload hint skipped")
	}

	lcp := fmt.Sprintf(
		`<div class="lcp-hero"><img src="%s" alt="%s" width="480" height="360" fetchpriority="high" decoding="async"><span class="play-overlay" aria-hidden="true"></span></div>`,
		html.EscapeString(links.Thumbnail), html.EscapeString(latest.Name),
	)
	if strings.Contains(doc, `class="lcp-hero"`) {
		log.Printf("Entry document already carries the LCP image, skipping")
	} else if patched, found := assets.InjectBefore(doc, b.cfg.Patch.NavAnchor, lcp); found {
		doc = patched
	} else {
		log.Printf("Warning: nav anchor not found in entry document, LCP image skipped")
	}

	if err := os.WriteFile(b.cfg.Paths.Entry, []byte(doc), 0644); err != nil {
		log.Printf("Warning: failed to write patched entry document: %v", err)
	}
}

// cleanupStale deletes output written by a previous run for songs no longer
// in the content file, then records this run's paths.
func (b *Builder) cleanupStale(outDir string) error {
	if b.cfg.Clean.Enabled {
		prev := output.ReadTracker(outDir)
		for _, rel := range output.StalePaths(prev, b.written) {
			abs := filepath.Join(outDir, rel)
			if err := os.Remove(abs); err != nil && !os.IsNotExist(err) {
				log.Printf("Warning: failed to remove stale %s: %v", rel, err)
				continue
			}
			log.Printf("Removed stale %s", rel)
			// Drop the directory too once it is empty.
			os.Remove(filepath.Dir(abs))
		}
	}
	if err := output.WriteTracker(outDir, b.written, b.stamp); err != nil {
		return fmt.Errorf("writing tracker: %w", err)
	}
	return nil
}

// writePage writes an HTML document prefixed with the run's build stamp.
func (b *Builder) writePage(relPath, doc string) error {
	stamped := fmt.Sprintf("<!-- build:%s -->\n%s", b.stamp.UTC().Format(time.RFC3339), doc)
	return b.writeRaw(relPath, stamped)
}

func (b *Builder) writeRaw(relPath, content string) error {
	abs := filepath.Join(b.cfg.Paths.Output, relPath)
	if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
		return fmt.Errorf("creating dir for %s: %w", relPath, err)
	}
	if err := os.WriteFile(abs, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", relPath, err)
	}
	b.written[filepath.ToSlash(relPath)] = true
	return nil
}

func (b *Builder) songURL(s *song.Song) string {
	return fmt.Sprintf("%s/musica/%s/", b.cfg.Site.BaseURL, s.Slug)
}

func (b *Builder) playlistURL() string {
	return b.cfg.Site.BaseURL + "/musica/"
}

func (b *Builder) archiveURL(key string) string {
	return fmt.Sprintf("%s/calendario/%s/", b.cfg.Site.BaseURL, key)
}

// absURL resolves a site-relative asset path against the base URL. Absolute
// URLs pass through; empty stays empty so callers can omit the field.
func (b *Builder) absURL(p string) string {
	if p == "" || strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		return p
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return b.cfg.Site.BaseURL + p
}

// heroImage picks the page image: the song's own image, else the video
// thumbnail, else the site's default share image. Empty means no image and
// the shell omits the tags.
func (b *Builder) heroImage(s *song.Song, links youtube.Links, embedded bool) string {
	if s.Image != "" {
		return b.absURL(s.Image)
	}
	if embedded {
		return links.Thumbnail
	}
	return b.absURL(b.cfg.Site.ShareImage)
}

func artistOrHouse(s *song.Song, house string) string {
	if a := s.ArtistName(); a != "" {
		return a
	}
	return house
}

// trusted marks pre-rendered markup for the shell's trusted-fragment slots.
func trusted(s string) template.HTML {
	return template.HTML(s)
}
