package schema

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roundTrip asserts the factory output survives serialization unchanged.
func roundTrip(t *testing.T, s map[string]interface{}) map[string]interface{} {
	t.Helper()
	data, err := json.Marshal(s)
	require.NoError(t, err)
	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &parsed))
	reencoded, err := json.Marshal(parsed)
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(reencoded))
	return parsed
}

func TestOrganization(t *testing.T) {
	s := Organization(OrganizationOptions{
		Name: "A Música da Segunda",
		URL:  "https://example.com",
		Logo: "https://example.com/logo.png",
	})
	parsed := roundTrip(t, s)
	assert.Equal(t, "Organization", parsed["@type"])
	assert.Equal(t, "https://example.com/logo.png", parsed["logo"])

	bare := Organization(OrganizationOptions{Name: "x", URL: "https://example.com"})
	_, hasLogo := bare["logo"]
	assert.False(t, hasLogo)
	roundTrip(t, bare)
}

func TestWebsiteSearchAction(t *testing.T) {
	s := Website(WebsiteOptions{
		Name: "site",
		URL:  "https://example.com",
		Search: SearchOptions{Enabled: true, Target: "/buscar", Param: "q"},
	})
	parsed := roundTrip(t, s)
	action := parsed["potentialAction"].(map[string]interface{})
	target := action["target"].(map[string]interface{})
	assert.Equal(t, "https://example.com/buscar?q={search_term_string}", target["urlTemplate"])

	disabled := Website(WebsiteOptions{URL: "https://example.com"})
	_, has := disabled["potentialAction"]
	assert.False(t, has)
}

func TestMusicPlaylistNumTracks(t *testing.T) {
	for _, n := range []int{0, 1, 3, 12} {
		tracks := make([]Track, n)
		for i := range tracks {
			tracks[i] = Track{Name: fmt.Sprintf("song %d", i), URL: fmt.Sprintf("https://example.com/musica/s%d/", i)}
		}
		s := MusicPlaylist(PlaylistOptions{
			Name:          "playlist",
			URL:           "https://example.com/musica/",
			Tracks:        tracks,
			DefaultArtist: "A Música da Segunda",
		})
		assert.Equal(t, n, s["numTracks"])
		roundTrip(t, s)
	}
}

func TestMusicPlaylistDefaultArtist(t *testing.T) {
	s := MusicPlaylist(PlaylistOptions{
		Name:          "p",
		URL:           "https://example.com/musica/",
		Tracks:        []Track{{Name: "a", URL: "https://example.com/musica/a/"}, {Name: "b", URL: "https://example.com/musica/b/", Artist: "Convidado"}},
		DefaultArtist: "Casa",
	})
	tracks := s["track"].([]map[string]interface{})
	assert.Equal(t, "Casa", tracks[0]["byArtist"].(map[string]interface{})["name"])
	assert.Equal(t, "Convidado", tracks[1]["byArtist"].(map[string]interface{})["name"])
}

func TestMusicRecordingConditionalKeys(t *testing.T) {
	s := MusicRecording(RecordingOptions{
		Name: "Teste",
		URL:  "https://example.com/musica/teste/",
	})
	for _, key := range []string{"potentialAction", "image", "duration", "description", "datePublished", "inLanguage", "byArtist"} {
		_, has := s[key]
		assert.False(t, has, "key %q should be absent", key)
	}
	roundTrip(t, s)
}

func TestMusicRecordingListenAction(t *testing.T) {
	s := MusicRecording(RecordingOptions{
		Name:          "Teste",
		URL:           "https://example.com/musica/teste/",
		AudioURL:      "https://cdn.example.com/teste.mp3",
		DatePublished: "2024-01-01",
		Artist:        "A Música da Segunda",
	})
	parsed := roundTrip(t, s)
	action := parsed["potentialAction"].(map[string]interface{})
	assert.Equal(t, "ListenAction", action["@type"])
	targets := action["target"].([]interface{})
	require.Len(t, targets, 1)
	assert.Equal(t, "https://cdn.example.com/teste.mp3", targets[0].(map[string]interface{})["urlTemplate"])
	offer := action["expectsAcceptanceOf"].(map[string]interface{})
	assert.Equal(t, "free", offer["category"])
	assert.Equal(t, "2024-01-01", offer["availabilityStarts"])
}

func TestBreadcrumbNameFallbackChain(t *testing.T) {
	opts := BreadcrumbOptions{
		HomeURL: "https://x/",
		ListURL: "https://x/musica/",
	}

	verbatim := opts
	verbatim.SongName = "Nome Dado"
	verbatim.SongURL = "https://x/musica/outra-coisa/"
	assert.Equal(t, "Nome Dado", thirdCrumbName(t, BreadcrumbList(verbatim)))

	fromSlug := opts
	fromSlug.SongURL = "https://x/musica/my-cool-song/"
	assert.Equal(t, "My Cool Song", thirdCrumbName(t, BreadcrumbList(fromSlug)))

	fallback := opts
	assert.Equal(t, BreadcrumbFallbackName, thirdCrumbName(t, BreadcrumbList(fallback)))
}

func TestBreadcrumbShape(t *testing.T) {
	s := BreadcrumbList(BreadcrumbOptions{
		SongName: "Teste",
		SongURL:  "https://x/musica/teste/",
		HomeURL:  "https://x/",
		ListURL:  "https://x/musica/",
	})
	parsed := roundTrip(t, s)
	items := parsed["itemListElement"].([]interface{})
	require.Len(t, items, 3)
	for i, item := range items {
		assert.Equal(t, float64(i+1), item.(map[string]interface{})["position"])
	}
}

func thirdCrumbName(t *testing.T, s map[string]interface{}) string {
	t.Helper()
	items := s["itemListElement"].([]map[string]interface{})
	require.Len(t, items, 3)
	name, _ := items[2]["name"].(string)
	return name
}

func TestMarshalSchemasOrderAndNilSkip(t *testing.T) {
	a := Organization(OrganizationOptions{Name: "a", URL: "https://a"})
	b := Website(WebsiteOptions{URL: "https://b"})
	out := MarshalSchemas(a, nil, b)
	assert.Contains(t, out, `<script type="application/ld+json">`)
	assert.Less(t, strings.Index(out, "Organization"), strings.Index(out, "WebSite"))
}
