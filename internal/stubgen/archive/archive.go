// Package archive groups songs into publish-month buckets for the
// prerendered calendar pages.
package archive

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/amusicadasegunda/stubgen/internal/stubgen/song"
)

// Month is one archive bucket.
type Month struct {
	Key   string // "2024-01", used as the path segment
	Label string // "Janeiro 2024"
	Songs []*song.Song
}

var monthNames = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// GroupByMonth buckets dated songs by publish month, newest month first and
// songs within each month newest first. Undated songs have no place on a
// calendar and are left out.
func GroupByMonth(songs []*song.Song) []Month {
	buckets := make(map[string][]*song.Song)
	for _, s := range songs {
		key := monthKey(s.DatePublished)
		if key == "" {
			continue
		}
		buckets[key] = append(buckets[key], s)
	}

	months := make([]Month, 0, len(buckets))
	for key, group := range buckets {
		song.SortByPublishDateDescending(group)
		months = append(months, Month{
			Key:   key,
			Label: monthLabel(key),
			Songs: group,
		})
	}

	sort.Slice(months, func(i, j int) bool {
		return months[i].Key > months[j].Key
	})
	return months
}

// monthKey extracts "yyyy-mm" from an ISO-ish date, or empty when the date is
// absent or too short to carry a month.
func monthKey(date string) string {
	if len(date) < 7 || date[4] != '-' {
		return ""
	}
	return date[:7]
}

func monthLabel(key string) string {
	parts := strings.SplitN(key, "-", 2)
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 1 || m > 12 {
		return key
	}
	return fmt.Sprintf("%s %s", monthNames[m-1], parts[0])
}
