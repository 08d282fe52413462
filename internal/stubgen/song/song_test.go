package song

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtistUnmarshalBothShapes(t *testing.T) {
	var fromObject Song
	require.NoError(t, json.Unmarshal([]byte(`{"slug":"a","name":"A","byArtist":{"name":"Banda"}}`), &fromObject))
	assert.Equal(t, "Banda", fromObject.ArtistName())

	var fromString Song
	require.NoError(t, json.Unmarshal([]byte(`{"slug":"b","name":"B","byArtist":"Solo"}`), &fromString))
	assert.Equal(t, "Solo", fromString.ArtistName())

	var absent Song
	require.NoError(t, json.Unmarshal([]byte(`{"slug":"c","name":"C"}`), &absent))
	assert.Equal(t, "", absent.ArtistName())
}

func TestVideoURLPriority(t *testing.T) {
	s := &Song{YouTubeURL: "watch", YouTubeMusicURL: "music"}
	assert.Equal(t, "music", s.VideoURL())

	s = &Song{YouTubeURL: "watch"}
	assert.Equal(t, "watch", s.VideoURL())
}

func TestSortByPublishDateDescending(t *testing.T) {
	songs := []*Song{
		{Slug: "old", DatePublished: "2023-05-01"},
		{Slug: "undated"},
		{Slug: "new", DatePublished: "2024-02-05"},
		{Slug: "mid", DatePublished: "2023-11-20"},
	}
	SortByPublishDateDescending(songs)

	var slugs []string
	for _, s := range songs {
		slugs = append(slugs, s.Slug)
	}
	assert.Equal(t, []string{"new", "mid", "old", "undated"}, slugs)
}

func TestSortTieBreakKeepsInputOrder(t *testing.T) {
	songs := []*Song{
		{Slug: "first", DatePublished: "2024-01-01"},
		{Slug: "second", DatePublished: "2024-01-01"},
		{Slug: "third", DatePublished: "2024-01-01"},
	}
	SortByPublishDateDescending(songs)
	assert.Equal(t, "first", songs[0].Slug)
	assert.Equal(t, "second", songs[1].Slug)
	assert.Equal(t, "third", songs[2].Slug)
}

func TestMostRecent(t *testing.T) {
	assert.Nil(t, MostRecent(nil))

	songs := []*Song{
		{Slug: "a", DatePublished: "2024-01-01"},
		{Slug: "b", DatePublished: "2024-03-01"},
		{Slug: "c"},
	}
	assert.Equal(t, "b", MostRecent(songs).Slug)

	undatedOnly := []*Song{{Slug: "x"}, {Slug: "y"}}
	assert.Equal(t, "x", MostRecent(undatedOnly).Slug)
}

func TestToSlug(t *testing.T) {
	assert.Equal(t, "segunda-sem-lei", ToSlug("Segunda Sem Lei!"))
	assert.Equal(t, "a-b-c", ToSlug("  a//b__c  "))
}

func TestTitleFromSlug(t *testing.T) {
	assert.Equal(t, "My Cool Song", TitleFromSlug("my-cool-song"))
	assert.Equal(t, "Teste", TitleFromSlug("teste"))
	assert.Equal(t, "", TitleFromSlug(""))
}
