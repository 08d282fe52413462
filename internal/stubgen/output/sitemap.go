package output

import (
	"encoding/xml"
	"fmt"
)

// SitemapEntry represents a single URL in the sitemap.
type SitemapEntry struct {
	Loc     string
	Lastmod string
}

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	XMLNS   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

type urlEntry struct {
	Loc     string `xml:"loc"`
	Lastmod string `xml:"lastmod,omitempty"`
}

type sitemapIndex struct {
	XMLName  xml.Name       `xml:"sitemapindex"`
	XMLNS    string         `xml:"xmlns,attr"`
	Sitemaps []sitemapEntry `xml:"sitemap"`
}

type sitemapEntry struct {
	Loc     string `xml:"loc"`
	Lastmod string `xml:"lastmod,omitempty"`
}

// SitemapFile is a filename + content pair.
type SitemapFile struct {
	Filename string
	Content  string
}

// GenerateSitemapFiles generates sitemap XML files, splitting at maxPerFile
// URLs and prepending an index file when more than one sitemap is needed.
func GenerateSitemapFiles(entries []SitemapEntry, baseURL string, maxPerFile int) []SitemapFile {
	if maxPerFile <= 0 {
		maxPerFile = 50000
	}

	if len(entries) <= maxPerFile {
		return []SitemapFile{{Filename: "sitemap.xml", Content: generateSitemap(entries)}}
	}

	var files []SitemapFile
	var indexEntries []sitemapEntry
	lastmod := ""
	if len(entries) > 0 {
		lastmod = entries[0].Lastmod
	}

	for i := 0; i < len(entries); i += maxPerFile {
		end := i + maxPerFile
		if end > len(entries) {
			end = len(entries)
		}
		filename := fmt.Sprintf("sitemap-%d.xml", i/maxPerFile+1)
		files = append(files, SitemapFile{
			Filename: filename,
			Content:  generateSitemap(entries[i:end]),
		})
		indexEntries = append(indexEntries, sitemapEntry{
			Loc:     fmt.Sprintf("%s/%s", baseURL, filename),
			Lastmod: lastmod,
		})
	}

	index := SitemapFile{Filename: "sitemap.xml", Content: generateSitemapIndex(indexEntries)}
	return append([]SitemapFile{index}, files...)
}

func generateSitemap(entries []SitemapEntry) string {
	us := urlSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, e := range entries {
		us.URLs = append(us.URLs, urlEntry{Loc: e.Loc, Lastmod: e.Lastmod})
	}

	data, err := xml.MarshalIndent(us, "", "  ")
	if err != nil {
		return ""
	}
	return xml.Header + string(data)
}

func generateSitemapIndex(entries []sitemapEntry) string {
	si := sitemapIndex{
		XMLNS:    "http://www.sitemaps.org/schemas/sitemap/0.9",
		Sitemaps: entries,
	}

	data, err := xml.MarshalIndent(si, "", "  ")
	if err != nil {
		return ""
	}
	return xml.Header + string(data)
}
