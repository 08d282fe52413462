// Package assets is the narrow port onto the SPA's built entry document.
// The entry document is produced by another build tool, so everything here
// treats its shape as untrusted: extraction may come back empty and
// injections report whether the anchor was found instead of failing.
package assets

import (
	"regexp"
	"strings"
)

var (
	scriptTagPattern = regexp.MustCompile(`<script type="module" crossorigin src="[^"]+"></script>`)
	styleTagPattern  = regexp.MustCompile(`<link rel="stylesheet" crossorigin href="[^"]+">`)
)

// Tags holds the compiled bundle references extracted from the entry document.
type Tags struct {
	Script string
	Style  string
}

// ExtractTags pulls the compiled bundle's script and stylesheet tags out of
// the built entry document. Missing tags come back empty; prerendered pages
// then still render, just without booting the interactive app.
func ExtractTags(doc string) Tags {
	var t Tags
	if m := scriptTagPattern.FindString(doc); m != "" {
		t.Script = m
	}
	if m := styleTagPattern.FindString(doc); m != "" {
		t.Style = m
	}
	return t
}

// InjectAfter inserts markup immediately after the first occurrence of
// anchor. Returns the document unchanged and false when the anchor is absent.
func InjectAfter(doc, anchor, insertion string) (string, bool) {
	idx := strings.Index(doc, anchor)
	if idx < 0 {
		return doc, false
	}
	pos := idx + len(anchor)
	return doc[:pos] + insertion + doc[pos:], true
}

// InjectBefore inserts markup immediately before the first occurrence of
// anchor. Returns the document unchanged and false when the anchor is absent.
func InjectBefore(doc, anchor, insertion string) (string, bool) {
	idx := strings.Index(doc, anchor)
	if idx < 0 {
		return doc, false
	}
	return doc[:idx] + insertion + doc[idx:], true
}
